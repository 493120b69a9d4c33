// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/plank/internal/adapters/config"
	_ "go.trai.ch/plank/internal/adapters/fs"
	_ "go.trai.ch/plank/internal/adapters/logger"
	_ "go.trai.ch/plank/internal/adapters/sdk"
	_ "go.trai.ch/plank/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/plank/internal/app"
)
