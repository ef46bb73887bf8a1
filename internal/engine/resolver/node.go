package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/routelens/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/routelens/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/routelens/internal/adapters/notify"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/routelens/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/routelens/internal/core/ports"
	"go.trai.ch/routelens/internal/engine/routeindex"
)

// NodeID is the unique identifier for the annotation resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			routeindex.NodeID,
			fs.ViewLocatorNodeID,
			logger.NodeID,
			notify.NotifierNodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			index, err := graft.Dep[*routeindex.Index](ctx)
			if err != nil {
				return nil, err
			}

			views, err := graft.Dep[ports.ViewLocator](ctx)
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

			return NewResolver(index, views, log, notifier, tracer), nil
		},
	})
}
