// Package app implements the application layer for routelens.
package app

import (
	"context"
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/routelens/internal/adapters/telemetry"
	"go.trai.ch/routelens/internal/adapters/watcher"
	"go.trai.ch/routelens/internal/core/domain"
	"go.trai.ch/routelens/internal/core/ports"
	"go.trai.ch/routelens/internal/engine/resolver"
	"go.trai.ch/routelens/internal/engine/routeindex"
	"go.trai.ch/zerr"
)

// App plays the host role for the annotation core: it owns the workspace
// lifecycle, turns files into documents and reacts to file events.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	routes       ports.RouteSource
	index        *routeindex.Index
	resolver     *resolver.Resolver
	navigator    ports.Navigator
	watcher      ports.Watcher
	changes      ports.ChangeDetector
	controllers  ControllerLister
}

// ControllerLister enumerates the controller files of a workspace.
type ControllerLister interface {
	ControllerFiles(root string) iter.Seq[string]
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	routes ports.RouteSource,
	index *routeindex.Index,
	res *resolver.Resolver,
	navigator ports.Navigator,
	w ports.Watcher,
	changes ports.ChangeDetector,
	controllers ControllerLister,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		routes:       routes,
		index:        index,
		resolver:     res,
		navigator:    navigator,
		watcher:      w,
		changes:      changes,
		controllers:  controllers,
	}
}

// Options holds the global CLI switches.
type Options struct {
	ConfigFile string
	LogJSON    bool
	Trace      bool
}

// Configure applies global options to the collaborators that support them.
// The returned function releases what Configure set up.
func (a *App) Configure(opts Options) func(context.Context) error {
	if opts.ConfigFile != "" {
		if l, ok := a.configLoader.(interface{ SetFilename(string) }); ok {
			l.SetFilename(opts.ConfigFile)
		}
	}
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(opts.LogJSON)
	}
	if opts.Trace {
		return telemetry.EnableSpanLog(a.logger)
	}
	return func(context.Context) error { return nil }
}

// Workspace resolves dir to the absolute workspace root.
func Workspace(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve workspace"), "path", dir)
	}
	return abs, nil
}

// Startup prepares a workspace: the route dump is generated when missing.
// Failures are logged and never stop the host.
func (a *App) Startup(ctx context.Context, workspace string) {
	exists, err := a.routes.DumpExists(workspace)
	if err != nil {
		a.logger.Error(err)
		return
	}
	if exists {
		return
	}
	if err := a.Regenerate(ctx, workspace); err != nil {
		a.logger.Error(err)
	}
}

// Regenerate rebuilds the route dump and drops every cached result that
// was derived from the previous dump.
func (a *App) Regenerate(ctx context.Context, workspace string) error {
	if _, err := a.routes.RegenerateRouteDump(ctx, workspace); err != nil {
		return err
	}
	a.index.Refresh(ctx, workspace)
	a.resolver.Reset()
	return nil
}

// FileSaved handles a save of path. Saving the routes file regenerates the
// dump; regeneration errors are logged.
func (a *App) FileSaved(ctx context.Context, workspace, path string) {
	if !domain.IsRoutesFile(path) {
		return
	}
	if err := a.Regenerate(ctx, workspace); err != nil {
		a.logger.Error(err)
	}
}

// ContextChanged drops the cached annotations of the document at path.
func (a *App) ContextChanged(path string) {
	a.resolver.Invalidate(domain.NewDocumentID(path))
}

// Annotate returns the annotations of the file at path.
func (a *App) Annotate(ctx context.Context, workspace, path string) ([]domain.Annotation, error) {
	doc, err := a.load(workspace, path)
	if err != nil {
		return nil, err
	}
	return a.resolver.Resolve(ctx, doc), nil
}

// OpenView opens the view of the annotation on line (zero-based) of path.
func (a *App) OpenView(ctx context.Context, workspace, path string, line int) error {
	annotations, err := a.Annotate(ctx, workspace, path)
	if err != nil {
		return err
	}

	for _, ann := range annotations {
		if ann.Line != line {
			continue
		}
		if !ann.HasView() {
			return zerr.With(zerr.With(domain.ErrNoViewForAnnotation, "path", path), "line", line)
		}
		if err := a.navigator.Open(ctx, ann.ViewPath); err != nil {
			return err
		}
		return nil
	}
	return zerr.With(zerr.With(domain.ErrNoAnnotationOnLine, "path", path), "line", line)
}

// ControllerFiles lists the controller files of the workspace.
func (a *App) ControllerFiles(workspace string) []string {
	return slices.Sorted(a.controllers.ControllerFiles(workspace))
}

// UpdateFunc receives freshly computed annotations in watch mode.
type UpdateFunc func(path string, annotations []domain.Annotation)

// Watch watches the workspace until ctx is done. Saves of the routes file
// regenerate the dump; controller edits invalidate and re-resolve the
// document, and update is called with the new annotations.
func (a *App) Watch(ctx context.Context, workspace string, update UpdateFunc) error {
	settings, err := a.configLoader.Load(workspace)
	if err != nil {
		return err
	}

	for path := range a.controllers.ControllerFiles(workspace) {
		if _, err := a.changes.Changed(path); err != nil {
			a.logger.Error(err)
		}
	}

	if err := a.watcher.Start(ctx, workspace); err != nil {
		return err
	}
	defer func() {
		if err := a.watcher.Stop(); err != nil {
			a.logger.Error(err)
		}
	}()

	a.logger.Info("watching " + workspace)

	debouncer := watcher.NewDebouncer(settings.Debounce, func(paths []string) {
		a.handleBatch(ctx, workspace, paths, update)
	})

	for event := range a.watcher.Events() {
		if domain.IsRoutesFile(event.Path) || domain.IsControllerFile(event.Path) {
			debouncer.Add(event.Path)
		}
	}
	debouncer.Flush()

	return nil
}

func (a *App) handleBatch(ctx context.Context, workspace string, paths []string, update UpdateFunc) {
	for _, path := range paths {
		if ctx.Err() != nil {
			return
		}

		if domain.IsRoutesFile(path) {
			a.FileSaved(ctx, workspace, path)
			continue
		}

		changed, err := a.changes.Changed(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				a.changes.Forget(path)
				a.ContextChanged(path)
				continue
			}
			a.logger.Error(err)
			continue
		}
		if !changed {
			continue
		}

		a.ContextChanged(path)
		annotations, err := a.Annotate(ctx, workspace, path)
		if err != nil {
			a.logger.Error(err)
			continue
		}
		if update != nil {
			update(path, annotations)
		}
	}
}

func (a *App) load(workspace, path string) (domain.Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return domain.Document{}, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", path)
	}
	//nolint:gosec // documents are files the user asked to annotate
	text, err := os.ReadFile(abs)
	if err != nil {
		return domain.Document{}, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", abs)
	}
	return domain.NewDocument(workspace, abs, string(text)), nil
}
