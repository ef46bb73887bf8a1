// Package routeindex caches parsed routes per workspace and controller.
package routeindex

import (
	"context"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/routelens/internal/core/domain"
	"go.trai.ch/routelens/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// RetrieveWarning is shown to the user when routes cannot be retrieved.
const RetrieveWarning = "An error occurred while retrieving routes information."

var _ ports.RouteLookup = (*Index)(nil)

// Index implements ports.RouteLookup over a ports.RouteSource.
// Entries are only ever replaced whole, never edited.
type Index struct {
	source   ports.RouteSource
	logger   ports.Logger
	notifier ports.Notifier
	tracer   ports.Tracer

	mu      sync.RWMutex
	entries map[string][]domain.Route

	requestGroup singleflight.Group
}

// NewIndex creates an empty Index.
func NewIndex(source ports.RouteSource, logger ports.Logger, notifier ports.Notifier, tracer ports.Tracer) *Index {
	return &Index{
		source:   source,
		logger:   logger,
		notifier: notifier,
		tracer:   tracer,
		entries:  make(map[string][]domain.Route),
	}
}

// CacheKey returns the cache key of controller within workspace.
func CacheKey(workspace, controller string) string {
	return workspace + ":" + controller
}

// Routes returns the routes of controller in workspace. On failure the error
// is logged, the user is warned once and an empty slice is returned; nothing
// is cached so the next call retries.
func (x *Index) Routes(ctx context.Context, workspace, controller string) []domain.Route {
	key := CacheKey(workspace, controller)

	if routes, ok := x.lookup(key); ok {
		return slices.Clone(routes)
	}

	v, _, _ := x.requestGroup.Do(key, func() (any, error) {
		if routes, ok := x.lookup(key); ok {
			return routes, nil
		}

		routes, err := x.fetch(ctx, workspace, controller)
		if err != nil {
			x.logger.Error(err)
			x.notifier.Warn(RetrieveWarning)
			return []domain.Route{}, nil
		}

		x.store(key, routes)
		return routes, nil
	})

	return slices.Clone(v.([]domain.Route))
}

// Refresh re-fetches every cached controller of workspace and replaces its
// entry. Entries whose fetch fails keep their previous routes.
func (x *Index) Refresh(ctx context.Context, workspace string) {
	prefix := workspace + ":"

	x.mu.RLock()
	var controllers []string
	for key := range x.entries {
		if controller, ok := strings.CutPrefix(key, prefix); ok {
			controllers = append(controllers, controller)
		}
	}
	x.mu.RUnlock()

	slices.Sort(controllers)
	for _, controller := range controllers {
		routes, err := x.fetch(ctx, workspace, controller)
		if err != nil {
			x.logger.Error(err)
			continue
		}
		x.store(CacheKey(workspace, controller), routes)
	}
}

// Forget drops the entry of controller in workspace.
func (x *Index) Forget(workspace, controller string) {
	x.mu.Lock()
	defer x.mu.Unlock()

	delete(x.entries, CacheKey(workspace, controller))
}

// Len returns the number of cached entries.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()

	return len(x.entries)
}

func (x *Index) lookup(key string) ([]domain.Route, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	routes, ok := x.entries[key]
	return routes, ok
}

func (x *Index) store(key string, routes []domain.Route) {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.entries[key] = routes
}

func (x *Index) fetch(ctx context.Context, workspace, controller string) ([]domain.Route, error) {
	ctx, span := x.tracer.Start(ctx, "routeindex.fetch",
		ports.WithAttribute("routelens.workspace", workspace),
		ports.WithAttribute("routelens.controller", controller),
	)
	defer span.End()

	raw, err := x.source.FetchRawRouteLines(ctx, workspace, controller)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	routes := domain.ParseRoutes(raw)
	if routes == nil {
		routes = []domain.Route{}
	}
	span.SetAttribute("routelens.routes", len(routes))
	return routes, nil
}
