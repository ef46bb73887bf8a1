package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/routelens/internal/adapters/config"
	"go.trai.ch/routelens/internal/core/ports"
)

const (
	WalkerNodeID      graft.ID = "adapter.fs.walker"
	HasherNodeID      graft.ID = "adapter.fs.hasher"
	ViewLocatorNodeID graft.ID = "adapter.fs.view_locator"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Fingerprinter, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.ViewLocator]{
		ID:        ViewLocatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ViewLocator, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			return NewViewLocator(loader, NewVerifier()), nil
		},
	})
}
