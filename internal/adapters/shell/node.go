package shell

import (
	"context"

	"github.com/cpavlidis/nx-monorepo/internal/adapters/console"
	"github.com/cpavlidis/nx-monorepo/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// NodeID is the unique identifier for the command executor node.
	NodeID graft.ID = "adapter.executor"

	// DryRunNodeID is the unique identifier for the dry-run executor node.
	DryRunNodeID graft.ID = "adapter.executor.dry_run"
)

// DryRun wraps the dry-run executor so it resolves separately from the real one.
type DryRun struct {
	ports.Executor
}

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Executor, error) {
			return NewExecutor(), nil
		},
	})

	graft.Register(graft.Node[DryRun]{
		ID:        DryRunNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{console.NodeID},
		Run: func(ctx context.Context) (DryRun, error) {
			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return DryRun{}, err
			}
			return DryRun{Executor: NewDryRunExecutor(reporter)}, nil
		},
	})
}
