// File: /services/storage.go
package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage keeps uploaded images on the local filesystem and hands out the
// public /uploads paths the API serves them under.
type Storage struct {
	dir string
}

func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Storage{dir: dir}, nil
}

// NewFilename allocates a unique file name for an upload with the given
// extension (".jpg" etc).
func (s *Storage) NewFilename(ext string) string {
	return uuid.New().String() + strings.ToLower(ext)
}

// Path returns the on-disk destination for a file name.
func (s *Storage) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}

// PublicPath returns the URL path a stored file is served under.
func (s *Storage) PublicPath(name string) string {
	return "/uploads/" + filepath.Base(name)
}

// Remove deletes the stored file behind a public path. External image URLs
// and already-missing files are not errors.
func (s *Storage) Remove(publicPath string) error {
	if !strings.HasPrefix(publicPath, "/uploads/") {
		return nil
	}
	err := os.Remove(s.Path(strings.TrimPrefix(publicPath, "/uploads/")))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// List returns the file names currently stored.
func (s *Storage) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
