// Package routes implements the route dump source backed by a flat text file
// regenerated from the application's routes command.
package routes

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/routelens/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store reads and writes one route dump file.
type Store struct {
	path string
}

// NewStore creates a Store for the dump at path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Path returns the location of the dump file.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the dump file is present.
func (s *Store) Exists() (bool, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrRouteDumpReadFailed.Error()), "path", s.path)
	}
	return true, nil
}

// Load returns the dump contents.
func (s *Store) Load() (string, error) {
	//nolint:gosec // Path is cleaned and derived from the workspace root
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(err, domain.ErrRouteDumpMissing.Error()), "path", s.path)
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrRouteDumpReadFailed.Error()), "path", s.path)
	}
	return string(data), nil
}

// Save replaces the dump contents, creating parent directories as needed.
func (s *Store) Save(content string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRouteDumpWriteFailed.Error()), "path", dir)
	}

	//nolint:gosec // Path is cleaned and derived from the workspace root
	if err := os.WriteFile(s.path, []byte(content), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRouteDumpWriteFailed.Error()), "path", s.path)
	}
	return nil
}
