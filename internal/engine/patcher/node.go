package patcher

import (
	"context"

	"github.com/cpavlidis/nx-monorepo/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"github.com/cpavlidis/nx-monorepo/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"github.com/cpavlidis/nx-monorepo/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the patcher node.
const NodeID graft.ID = "engine.patcher"

func init() {
	graft.Register(graft.Node[*Patcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, fs.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Patcher, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(fsys, hasher, log), nil
		},
	})
}
