package ports

import "context"

// Notifier surfaces messages to the user, as opposed to the log.
//
//go:generate go run go.uber.org/mock/mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	// Warn shows a warning to the user.
	Warn(msg string)
}

// Navigator opens files on behalf of the host's navigation command.
type Navigator interface {
	// Open opens the file at path.
	Open(ctx context.Context, path string) error
}
