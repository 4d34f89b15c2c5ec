// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/spmlink/internal/adapters/config"
	_ "go.trai.ch/spmlink/internal/adapters/fs"
	_ "go.trai.ch/spmlink/internal/adapters/idgen"
	_ "go.trai.ch/spmlink/internal/adapters/logger"
	_ "go.trai.ch/spmlink/internal/adapters/pbxproj"
	_ "go.trai.ch/spmlink/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/spmlink/internal/app"
)
