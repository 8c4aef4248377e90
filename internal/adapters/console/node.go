package console

import (
	"context"

	"github.com/cpavlidis/nx-monorepo/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the console reporter node.
const NodeID graft.ID = "adapter.reporter"

func init() {
	graft.Register(graft.Node[ports.Reporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Reporter, error) {
			return NewReporter(nil), nil
		},
	})
}
