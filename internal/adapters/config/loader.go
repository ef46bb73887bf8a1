// Package config provides the workspace settings loader for routelens.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/routelens/internal/core/domain"
	"go.trai.ch/routelens/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file at the workspace root.
// Settings are read once per workspace and kept for the life of the process.
type Loader struct {
	Filename string

	mu    sync.Mutex
	cache map[string]domain.Settings
}

// NewLoader creates a Loader reading domain.ConfigFileName.
func NewLoader() *Loader {
	return &Loader{
		Filename: domain.ConfigFileName,
		cache:    make(map[string]domain.Settings),
	}
}

// SetFilename changes the config file name and drops cached settings.
func (l *Loader) SetFilename(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.Filename = name
	clear(l.cache)
}

// Load returns the settings of the workspace.
func (l *Loader) Load(workspace string) (domain.Settings, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if s, ok := l.cache[workspace]; ok {
		return s, nil
	}

	s, err := l.read(filepath.Join(workspace, l.Filename))
	if err != nil {
		return domain.Settings{}, err
	}
	if l.cache == nil {
		l.cache = make(map[string]domain.Settings)
	}
	l.cache[workspace] = s
	return s, nil
}

func (l *Loader) read(path string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the workspace root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return apply(settings, &file, path)
}

func apply(s domain.Settings, file *File, path string) (domain.Settings, error) {
	if file.DumpPath != "" {
		s.DumpPath = file.DumpPath
	}
	if len(file.RoutesCommand) > 0 {
		s.RoutesCommand = file.RoutesCommand
	}
	if file.RoutesFilter != nil {
		s.RoutesFilter = *file.RoutesFilter
	}
	if file.ViewsDir != "" {
		s.ViewsDir = file.ViewsDir
	}
	if len(file.ViewSuffixes) > 0 {
		s.ViewSuffixes = file.ViewSuffixes
	}
	if file.Debounce != "" {
		d, err := time.ParseDuration(file.Debounce)
		if err != nil || d < 0 {
			return domain.Settings{}, zerr.With(zerr.With(domain.ErrInvalidConfig, "field", "debounce"), "path", path)
		}
		s.Debounce = d
	}
	if filepath.IsAbs(s.DumpPath) {
		return domain.Settings{}, zerr.With(zerr.With(domain.ErrInvalidConfig, "field", "dumpPath"), "path", path)
	}
	return s, nil
}
