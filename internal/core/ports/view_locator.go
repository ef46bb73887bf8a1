package ports

import "context"

// ViewLocator finds the view file rendered by an action.
//
//go:generate go run go.uber.org/mock/mockgen -source=view_locator.go -destination=mocks/mock_view_locator.go -package=mocks
type ViewLocator interface {
	// LocateViewFile returns the path of the view for controller#action, or an
	// empty string when no view exists. Suffixes are tried in priority order:
	// templates first, then JSON builders.
	LocateViewFile(ctx context.Context, workspace, controller, action string) (string, error)
}
