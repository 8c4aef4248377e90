package cas

import (
	"context"

	"github.com/cpavlidis/nx-monorepo/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the patch journal opener node.
const NodeID graft.ID = "adapter.patch_journal"

func init() {
	graft.Register(graft.Node[ports.JournalOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.JournalOpener, error) {
			return Opener{}, nil
		},
	})
}
