// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/jig/internal/adapters/config"
	_ "go.trai.ch/jig/internal/adapters/env"
	_ "go.trai.ch/jig/internal/adapters/logger"
	_ "go.trai.ch/jig/internal/adapters/manifest"
	_ "go.trai.ch/jig/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/jig/internal/app"
	_ "go.trai.ch/jig/internal/engine/dispatch"
)
