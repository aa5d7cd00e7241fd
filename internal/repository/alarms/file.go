package alarms

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// DefaultFilePermissions is the permission of record files.
const DefaultFilePermissions = 0o600

// defaultDirPermissions is the permission of the storage directory.
const defaultDirPermissions = 0o700

// FileBackend stores every blob as a file in the root of an afero filesystem.
type FileBackend struct {
	// fs is the filesystem holding the record files.
	fs afero.Fs
	// mu serializes file access.
	mu sync.Mutex
}

// NewFileBackend creates a backend on the provided filesystem.
func NewFileBackend(fs afero.Fs) *FileBackend {
	return &FileBackend{
		fs: fs,
	}
}

// OpenFileBackend creates a backend rooted at dir on the OS filesystem,
// creating the directory when needed.
func OpenFileBackend(dir string) (*FileBackend, error) {
	dir = filepath.Clean(dir)

	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, defaultDirPermissions); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	return NewFileBackend(afero.NewBasePathFs(osFs, dir)), nil
}

// Read returns the content of the file.
func (b *FileBackend) Read(_ context.Context, name string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := afero.ReadFile(b.fs, name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	return data, nil
}

// Write replaces the file through a temporary file and a rename, so readers
// never observe a partially written record.
func (b *FileBackend) Write(_ context.Context, name string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	tmp := name + ".tmp"
	if err := afero.WriteFile(b.fs, tmp, data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}

	if err := b.fs.Rename(tmp, name); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}

	return nil
}

// Delete removes the file.
func (b *FileBackend) Delete(_ context.Context, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.fs.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", name, err)
	}

	return nil
}
