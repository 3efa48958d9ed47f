package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

const fileExt = ".json"

//nolint:gochecknoglobals // compiled once
var validKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// FileBackend stores one file per key in a directory.
type FileBackend struct {
	basePath string
}

// NewFileBackend creates a FileBackend rooted at path. The directory is
// created on the first write.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{basePath: path}
}

// BasePath returns the directory values are stored in.
func (f *FileBackend) BasePath() string {
	return f.basePath
}

// keyPath returns the full path for a key's file.
func (f *FileBackend) keyPath(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", InvalidKeyError{Key: key}
	}
	return filepath.Join(f.basePath, key+fileExt), nil
}

// Get reads the value for key from disk.
func (f *FileBackend) Get(_ context.Context, key string) ([]byte, error) {
	path, err := f.keyPath(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, KeyNotFoundError{Key: key}
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return data, nil
}

// Set writes value to a temp file and renames it over the key's file so
// readers never observe a partial write.
func (f *FileBackend) Set(_ context.Context, key string, value []byte) error {
	path, err := f.keyPath(key)
	if err != nil {
		return err
	}
	//nolint:gosec // G301: 0755 is appropriate for a user data directory
	if err = os.MkdirAll(f.basePath, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", f.basePath, err)
	}

	tmp, err := os.CreateTemp(f.basePath, "."+key+"-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // already renamed on success

	if _, err = tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Delete removes the key's file.
func (f *FileBackend) Delete(_ context.Context, key string) error {
	path, err := f.keyPath(key)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	return fmt.Errorf("delete %s: %w", key, err)
}

// Close is a no-op.
func (f *FileBackend) Close() error {
	return nil
}
