// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
)

// Executor defines the interface for running external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes argv in dir and returns its standard output.
	//
	// Standard error is streamed to the logger. A non-zero exit status is
	// reported as an error carrying the exit code.
	Run(ctx context.Context, dir string, argv []string) (string, error)
}
