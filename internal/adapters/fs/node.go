package fs

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/distroeng/eebuild/internal/core/ports"
)

const NodeID graft.ID = "adapter.workspace"

func init() {
	graft.Register(graft.Node[ports.Workspace]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Workspace, error) {
			return NewWorkspace(), nil
		},
	})
}
