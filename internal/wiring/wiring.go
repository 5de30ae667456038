// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/relock/internal/adapters/config"
	_ "go.trai.ch/relock/internal/adapters/fs"
	_ "go.trai.ch/relock/internal/adapters/logger"
	_ "go.trai.ch/relock/internal/adapters/piptools"
	_ "go.trai.ch/relock/internal/adapters/shell"
	_ "go.trai.ch/relock/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/relock/internal/app"
)
