package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/routelens/internal/adapters/fs"
	"go.trai.ch/routelens/internal/adapters/logger"
	"go.trai.ch/routelens/internal/core/ports"
)

const (
	// WatcherNodeID is the unique identifier for the file watcher Graft node.
	WatcherNodeID graft.ID = "adapter.watcher"
	// ChangeCacheNodeID is the unique identifier for the change detector Graft node.
	ChangeCacheNodeID graft.ID = "adapter.change_cache"
)

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        WatcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Watcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(log), nil
		},
	})

	graft.Register(graft.Node[ports.ChangeDetector]{
		ID:        ChangeCacheNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.ChangeDetector, error) {
			hasher, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}
			return NewChangeCache(hasher), nil
		},
	})
}
