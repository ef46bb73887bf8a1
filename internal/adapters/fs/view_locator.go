package fs

import (
	"context"
	"path/filepath"

	"go.trai.ch/routelens/internal/core/ports"
)

var _ ports.ViewLocator = (*ViewLocator)(nil)

// ViewLocator resolves controller#action to a view file on disk.
type ViewLocator struct {
	config   ports.ConfigLoader
	verifier *Verifier
}

// NewViewLocator creates a new ViewLocator.
func NewViewLocator(config ports.ConfigLoader, verifier *Verifier) *ViewLocator {
	return &ViewLocator{config: config, verifier: verifier}
}

// LocateViewFile returns the first existing view for controller#action in
// suffix order, or "" when none exists.
func (l *ViewLocator) LocateViewFile(ctx context.Context, workspace, controller, action string) (string, error) {
	settings, err := l.config.Load(workspace)
	if err != nil {
		return "", err
	}

	base := filepath.Join(workspace, settings.ViewsDir, filepath.FromSlash(controller), action)
	for _, suffix := range settings.ViewSuffixes {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		candidate := base + suffix
		ok, err := l.verifier.Exists(candidate)
		if err != nil {
			return "", err
		}
		if ok {
			return candidate, nil
		}
	}
	return "", nil
}
