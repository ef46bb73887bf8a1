package fs

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/routelens/internal/core/domain"
	"go.trai.ch/zerr"
)

// Verifier checks for the presence of regular files.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Exists reports whether path names a regular file. A missing file is not an error.
func (v *Verifier) Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrViewLookupFailed.Error()), "path", path)
	}
	return info.Mode().IsRegular(), nil
}
