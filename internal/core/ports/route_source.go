package ports

import "context"

// RouteSource gives access to the authoritative route dump of a workspace.
//
//go:generate go run go.uber.org/mock/mockgen -source=route_source.go -destination=mocks/mock_route_source.go -package=mocks
type RouteSource interface {
	// FetchRawRouteLines returns the dump lines that mention controller#.
	//
	// It fails when the dump is absent or cannot be read. A dump without
	// matching lines yields an empty string and no error.
	FetchRawRouteLines(ctx context.Context, workspace, controller string) (string, error)

	// RegenerateRouteDump rebuilds the dump from the application and returns
	// the dump contents.
	RegenerateRouteDump(ctx context.Context, workspace string) (string, error)

	// DumpExists reports whether the dump is present for the workspace.
	DumpExists(workspace string) (bool, error)
}
