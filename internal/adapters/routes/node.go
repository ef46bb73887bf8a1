package routes

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/routelens/internal/adapters/config"
	"go.trai.ch/routelens/internal/adapters/logger"
	"go.trai.ch/routelens/internal/adapters/shell"
	"go.trai.ch/routelens/internal/core/ports"
)

// NodeID is the unique identifier for the route source Graft node.
const NodeID graft.ID = "adapter.route_source"

func init() {
	graft.Register(graft.Node[ports.RouteSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.RouteSource, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDumpSource(loader, executor, log), nil
		},
	})
}
