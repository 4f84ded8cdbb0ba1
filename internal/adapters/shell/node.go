package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/antscan/internal/adapters/detector"
	"go.trai.ch/antscan/internal/adapters/logger"
	"go.trai.ch/antscan/internal/core/ports"
)

// ExecutorNodeID is the unique identifier for the shell executor Graft node.
const ExecutorNodeID graft.ID = "adapter.shell"

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        ExecutorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, detector.NodeID},
		Run: func(ctx context.Context) (ports.Executor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			env, err := graft.Dep[detector.Environment](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log, env.OutputMode() == detector.ModePTY), nil
		},
	})
}
