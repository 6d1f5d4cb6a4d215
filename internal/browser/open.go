package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

var (
	ErrNoURL       = errors.New("problem has no url")
	ErrUnsupported = errors.New("opening a browser is not supported on this platform")
)

// Opener launches a URL in the user's browser.
type Opener interface {
	Open(rawURL string) error
}

// System opens URLs with the platform's default handler.
type System struct{}

func (System) Open(rawURL string) error {
	name, args, err := command(runtime.GOOS, rawURL)
	if err != nil {
		return err
	}
	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("launch %s: %w", name, err)
	}
	return nil
}

// command returns the launcher for goos. Only absolute http(s) URLs are accepted.
func command(goos, rawURL string) (string, []string, error) {
	if rawURL == "" {
		return "", nil, ErrNoURL
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", nil, fmt.Errorf("refusing to open %q: not an http(s) url", rawURL)
	}

	switch goos {
	case "darwin":
		return "open", []string{rawURL}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{rawURL}, nil
	}
	return "", nil, ErrUnsupported
}
