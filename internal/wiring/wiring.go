// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/routelens/internal/adapters/config"
	_ "go.trai.ch/routelens/internal/adapters/fs"
	_ "go.trai.ch/routelens/internal/adapters/logger"
	_ "go.trai.ch/routelens/internal/adapters/notify"
	_ "go.trai.ch/routelens/internal/adapters/routes"
	_ "go.trai.ch/routelens/internal/adapters/shell"
	_ "go.trai.ch/routelens/internal/adapters/telemetry"
	_ "go.trai.ch/routelens/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/routelens/internal/app"
	_ "go.trai.ch/routelens/internal/engine/resolver"
	_ "go.trai.ch/routelens/internal/engine/routeindex"
)
