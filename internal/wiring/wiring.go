// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/antscan/internal/adapters/ant"
	_ "go.trai.ch/antscan/internal/adapters/config"
	_ "go.trai.ch/antscan/internal/adapters/detector"
	_ "go.trai.ch/antscan/internal/adapters/fs"
	_ "go.trai.ch/antscan/internal/adapters/logger"
	_ "go.trai.ch/antscan/internal/adapters/shell"
	_ "go.trai.ch/antscan/internal/adapters/telemetry"
	_ "go.trai.ch/antscan/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/antscan/internal/app"
)
