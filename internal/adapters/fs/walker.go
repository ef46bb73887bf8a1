// Package fs provides file system adapters for locating views, walking
// controller trees and fingerprinting files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/routelens/internal/core/domain"
)

// DefaultIgnores lists directory names never descended into.
var DefaultIgnores = []string{"node_modules", "vendor", "tmp", "log"}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files under root, skipping VCS metadata and ignored
// directories. Yielded paths include root as a prefix.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && w.skipDir(d.Name(), ignores) {
					return filepath.SkipDir
				}
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// ControllerFiles yields every controller file under root.
func (w *Walker) ControllerFiles(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range w.WalkFiles(root, DefaultIgnores) {
			if !domain.IsControllerFile(path) {
				continue
			}
			if !yield(path) {
				return
			}
		}
	}
}

func (w *Walker) skipDir(name string, ignores []string) bool {
	if name == ".git" || name == ".jj" {
		return true
	}
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
