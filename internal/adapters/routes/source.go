package routes

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/routelens/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RouteSource = (*DumpSource)(nil)

// DumpSource implements ports.RouteSource over the workspace route dump.
type DumpSource struct {
	config   ports.ConfigLoader
	executor ports.Executor
	logger   ports.Logger
}

// NewDumpSource creates a new DumpSource.
func NewDumpSource(config ports.ConfigLoader, executor ports.Executor, logger ports.Logger) *DumpSource {
	return &DumpSource{
		config:   config,
		executor: executor,
		logger:   logger,
	}
}

func (s *DumpSource) store(workspace string) (*Store, error) {
	settings, err := s.config.Load(workspace)
	if err != nil {
		return nil, err
	}
	return NewStore(filepath.Join(workspace, settings.DumpPath)), nil
}

// FetchRawRouteLines returns the dump lines mentioning controller followed by '#'.
func (s *DumpSource) FetchRawRouteLines(_ context.Context, workspace, controller string) (string, error) {
	store, err := s.store(workspace)
	if err != nil {
		return "", err
	}

	dump, err := store.Load()
	if err != nil {
		return "", zerr.With(err, "controller", controller)
	}

	return filterLines(dump, controller+"#"), nil
}

// RegenerateRouteDump runs the routes command in the workspace, keeps the
// lines matching the configured filter and writes them to the dump file.
func (s *DumpSource) RegenerateRouteDump(ctx context.Context, workspace string) (string, error) {
	settings, err := s.config.Load(workspace)
	if err != nil {
		return "", err
	}

	s.logger.Info("regenerating route dump: " + strings.Join(settings.RoutesCommand, " "))

	out, err := s.executor.Run(ctx, workspace, settings.RoutesCommand)
	if err != nil {
		return "", zerr.With(err, "workspace", workspace)
	}

	dump := out
	if settings.RoutesFilter != "" {
		dump = filterLines(out, settings.RoutesFilter)
		if dump != "" {
			dump += "\n"
		}
	}

	store := NewStore(filepath.Join(workspace, settings.DumpPath))
	if err := store.Save(dump); err != nil {
		return "", err
	}

	s.logger.Info("route dump written to " + store.Path())
	return dump, nil
}

// DumpExists reports whether the workspace has a route dump.
func (s *DumpSource) DumpExists(workspace string) (bool, error) {
	store, err := s.store(workspace)
	if err != nil {
		return false, err
	}
	return store.Exists()
}

// filterLines keeps the lines of text containing needle, joined by '\n'.
func filterLines(text, needle string) string {
	var kept []string
	for line := range strings.Lines(text) {
		line = strings.TrimRight(line, "\r\n")
		if strings.Contains(line, needle) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
