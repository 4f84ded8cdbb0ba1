package ant

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/antscan/internal/core/ports"
)

// RunnerNodeID is the unique identifier for the Ant runner Graft node.
const RunnerNodeID graft.ID = "adapter.ant.runner"

func init() {
	graft.Register(graft.Node[ports.ToolRunner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ToolRunner, error) {
			return NewRunner(), nil
		},
	})
}
