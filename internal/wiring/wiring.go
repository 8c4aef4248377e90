// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/cpavlidis/nx-monorepo/internal/adapters/cas"
	_ "github.com/cpavlidis/nx-monorepo/internal/adapters/config"
	_ "github.com/cpavlidis/nx-monorepo/internal/adapters/console"
	_ "github.com/cpavlidis/nx-monorepo/internal/adapters/fs"
	_ "github.com/cpavlidis/nx-monorepo/internal/adapters/logger"
	_ "github.com/cpavlidis/nx-monorepo/internal/adapters/manifest"
	_ "github.com/cpavlidis/nx-monorepo/internal/adapters/shell"
	_ "github.com/cpavlidis/nx-monorepo/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/cpavlidis/nx-monorepo/internal/app"
	_ "github.com/cpavlidis/nx-monorepo/internal/engine/patcher"
)
