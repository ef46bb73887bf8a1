package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/routelens/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/routelens/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/routelens/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/routelens/internal/adapters/notify"  //nolint:depguard // Wired in app layer
	"go.trai.ch/routelens/internal/adapters/routes"  //nolint:depguard // Wired in app layer
	"go.trai.ch/routelens/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/routelens/internal/core/ports"
	"go.trai.ch/routelens/internal/engine/resolver"
	"go.trai.ch/routelens/internal/engine/routeindex"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			routes.NodeID,
			routeindex.NodeID,
			resolver.NodeID,
			notify.NavigatorNodeID,
			watcher.WatcherNodeID,
			watcher.ChangeCacheNodeID,
			fs.WalkerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(a, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	source, err := graft.Dep[ports.RouteSource](ctx)
	if err != nil {
		return nil, err
	}

	index, err := graft.Dep[*routeindex.Index](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	navigator, err := graft.Dep[ports.Navigator](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	changes, err := graft.Dep[ports.ChangeDetector](ctx)
	if err != nil {
		return nil, err
	}

	walker, err := graft.Dep[*fs.Walker](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, source, index, res, navigator, w, changes, walker), nil
}
