package routeindex

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/routelens/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/routelens/internal/adapters/notify"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/routelens/internal/adapters/routes"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/routelens/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/routelens/internal/core/ports"
)

// NodeID is the unique identifier for the route index Graft node.
const NodeID graft.ID = "engine.routeindex"

func init() {
	graft.Register(graft.Node[*Index]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			routes.NodeID,
			logger.NodeID,
			notify.NotifierNodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Index, error) {
			source, err := graft.Dep[ports.RouteSource](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			notifier, err := graft.Dep[ports.Notifier](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewIndex(source, log, notifier, tracer), nil
		},
	})
}
