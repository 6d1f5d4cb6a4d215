package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"
	"github.com/vytor/leetrecall/internal/logger"
)

// FileBackend keeps the document in a single file on an afero filesystem.
// Writes go to a temp file in the same directory which is synced and then
// renamed over the target. On the OS filesystem the directory is synced
// after the rename so the new entry is durable too.
type FileBackend struct {
	fs   afero.Fs
	path string
	perm os.FileMode
}

func NewFileBackend(fs afero.Fs, path string) *FileBackend {
	return &FileBackend{fs: fs, path: path, perm: 0o644}
}

// NewOSFileBackend is a FileBackend over the real filesystem.
func NewOSFileBackend(path string) *FileBackend {
	return NewFileBackend(afero.NewOsFs(), path)
}

func (b *FileBackend) Location() string { return b.path }

func (b *FileBackend) Read(ctx context.Context) ([]byte, error) {
	log := logger.FromContext(ctx).WithPrefix("storage")

	data, err := afero.ReadFile(b.fs, b.path)
	if os.IsNotExist(err) {
		log.Debug("no document at %s yet", b.path)
		return nil, ErrNotExist
	}
	if err != nil {
		log.Error("failed to read %s: %v", b.path, err)
		return nil, fmt.Errorf("read %s: %w", b.path, err)
	}
	log.Debug("read %d bytes from %s", len(data), b.path)
	return data, nil
}

func (b *FileBackend) Write(ctx context.Context, data []byte) (err error) {
	log := logger.FromContext(ctx).WithPrefix("storage")

	dir := filepath.Dir(b.path)
	if err := b.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(b.fs, dir, "."+filepath.Base(b.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = b.fs.Remove(tmpName)
			log.Error("write to %s aborted: %v", b.path, err)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = b.fs.Chmod(tmpName, b.perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = b.fs.Rename(tmpName, b.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmpName, err)
	}
	if err = b.syncDir(dir); err != nil {
		return fmt.Errorf("sync dir %s: %w", dir, err)
	}

	log.Debug("wrote %d bytes to %s", len(data), b.path)
	return nil
}

// syncDir flushes the directory entry after a rename. Only the OS filesystem
// has one to flush; Windows cannot sync a directory handle.
func (b *FileBackend) syncDir(dir string) error {
	if _, ok := b.fs.(*afero.OsFs); !ok || runtime.GOOS == "windows" {
		return nil
	}
	d, err := b.fs.Open(dir)
	if err != nil {
		return err
	}
	if err := d.Sync(); err != nil {
		_ = d.Close()
		return err
	}
	return d.Close()
}
