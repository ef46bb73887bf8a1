// Package resolver computes and caches per-document route annotations.
package resolver

import (
	"context"
	"runtime"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/routelens/internal/core/domain"
	"go.trai.ch/routelens/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// GenerateWarning is shown to the user when annotations cannot be computed.
const GenerateWarning = "An error occurred while generating annotations."

// Resolver turns controller documents into annotations.
type Resolver struct {
	routes   ports.RouteLookup
	views    ports.ViewLocator
	logger   ports.Logger
	notifier ports.Notifier
	tracer   ports.Tracer

	mu    sync.RWMutex
	cache map[domain.DocumentID][]domain.Annotation
}

// NewResolver creates a Resolver with an empty cache.
func NewResolver(
	routes ports.RouteLookup,
	views ports.ViewLocator,
	logger ports.Logger,
	notifier ports.Notifier,
	tracer ports.Tracer,
) *Resolver {
	return &Resolver{
		routes:   routes,
		views:    views,
		logger:   logger,
		notifier: notifier,
		tracer:   tracer,
		cache:    make(map[domain.DocumentID][]domain.Annotation),
	}
}

// Resolve returns the annotations of doc in ascending line order.
//
// Documents that are not controllers yield an empty result that is not cached.
// Failures are logged, reported through the notifier and yield an empty,
// uncached result.
func (r *Resolver) Resolve(ctx context.Context, doc domain.Document) []domain.Annotation {
	if !domain.IsControllerFile(doc.Path) {
		return []domain.Annotation{}
	}

	if cached, ok := r.lookup(doc.ID); ok {
		return slices.Clone(cached)
	}

	annotations, err := r.generate(ctx, doc)
	if err != nil {
		r.logger.Error(err)
		r.notifier.Warn(GenerateWarning)
		return []domain.Annotation{}
	}

	r.mu.Lock()
	r.cache[doc.ID] = annotations
	r.mu.Unlock()

	return slices.Clone(annotations)
}

// Invalidate clears the cached annotations of one document.
func (r *Resolver) Invalidate(id domain.DocumentID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.cache, id)
}

// Reset clears every cached document.
func (r *Resolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.cache)
}

// Len returns the number of cached documents.
func (r *Resolver) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.cache)
}

func (r *Resolver) lookup(id domain.DocumentID) ([]domain.Annotation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.cache[id]
	return a, ok
}

func (r *Resolver) generate(ctx context.Context, doc domain.Document) ([]domain.Annotation, error) {
	ctx, span := r.tracer.Start(ctx, "resolver.generate",
		ports.WithAttribute("routelens.document", doc.ID.String()),
	)
	defer span.End()

	controller, ok := domain.ControllerName(doc.Path)
	if !ok {
		err := zerr.With(domain.ErrNotControllerPath, "path", doc.Path)
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("routelens.controller", controller)

	routes := r.routes.Routes(ctx, doc.Workspace, controller)
	if len(routes) == 0 {
		return []domain.Annotation{}, nil
	}

	lines := strings.Split(doc.Text, "\n")
	slots := make([]*domain.Annotation, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, line := range lines {
		action, ok := domain.ActionName(line)
		if !ok {
			continue
		}
		route, ok := domain.FindRouteForAction(routes, controller, action)
		if !ok {
			continue
		}

		g.Go(func() error {
			view, err := r.views.LocateViewFile(gctx, doc.Workspace, route.Controller, route.Action)
			if err != nil {
				return zerr.With(err, "line", i)
			}
			a := domain.NewAnnotation(i, route, view)
			slots[i] = &a
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	annotations := make([]domain.Annotation, 0, len(slots))
	for _, a := range slots {
		if a != nil {
			annotations = append(annotations, *a)
		}
	}
	span.SetAttribute("routelens.annotations", len(annotations))
	return annotations, nil
}
