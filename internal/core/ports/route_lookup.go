package ports

import (
	"context"

	"go.trai.ch/routelens/internal/core/domain"
)

// RouteLookup returns the routes of a controller, served from cache when possible.
//
//go:generate go run go.uber.org/mock/mockgen -source=route_lookup.go -destination=mocks/mock_route_lookup.go -package=mocks
type RouteLookup interface {
	// Routes returns the routes of controller in workspace. Failures are
	// reported by the implementation and surface as an empty result.
	Routes(ctx context.Context, workspace, controller string) []domain.Route
}
