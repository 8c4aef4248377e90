package app

import (
	"context"

	"github.com/cpavlidis/nx-monorepo/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"github.com/cpavlidis/nx-monorepo/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"github.com/cpavlidis/nx-monorepo/internal/adapters/console"            //nolint:depguard // Wired in app layer
	"github.com/cpavlidis/nx-monorepo/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"github.com/cpavlidis/nx-monorepo/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"github.com/cpavlidis/nx-monorepo/internal/adapters/manifest"           //nolint:depguard // Wired in app layer
	"github.com/cpavlidis/nx-monorepo/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"github.com/cpavlidis/nx-monorepo/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"github.com/cpavlidis/nx-monorepo/internal/core/ports"
	"github.com/cpavlidis/nx-monorepo/internal/engine/patcher"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			manifest.NodeID,
			shell.NodeID,
			shell.DryRunNodeID,
			cas.NodeID,
			fs.NodeID,
			patcher.NodeID,
			console.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	manifests, err := graft.Dep[ports.ManifestReader](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	dryRun, err := graft.Dep[shell.DryRun](ctx)
	if err != nil {
		return nil, err
	}

	journals, err := graft.Dep[ports.JournalOpener](ctx)
	if err != nil {
		return nil, err
	}

	fsys, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	p, err := graft.Dep[*patcher.Patcher](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, manifests, executor, dryRun, journals, fsys, p, reporter, log, telemetry), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, telemetry), nil
}
