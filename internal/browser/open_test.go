package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	const link = "https://leetcode.com/problems/two-sum/"

	tests := []struct {
		goos string
		name string
		args []string
	}{
		{"darwin", "open", []string{link}},
		{"linux", "xdg-open", []string{link}},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", link}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args, err := command(tt.goos, link)
			require.NoError(t, err)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestCommand_Rejects(t *testing.T) {
	_, _, err := command("linux", "")
	assert.ErrorIs(t, err, ErrNoURL)

	_, _, err = command("linux", "file:///etc/passwd")
	assert.Error(t, err)

	_, _, err = command("linux", "not a url")
	assert.Error(t, err)

	_, _, err = command("plan9", "https://leetcode.com")
	assert.ErrorIs(t, err, ErrUnsupported)
}
