package notify

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/routelens/internal/core/ports"
)

const (
	// NotifierNodeID is the unique identifier for the notifier Graft node.
	NotifierNodeID graft.ID = "adapter.notifier"
	// NavigatorNodeID is the unique identifier for the navigator Graft node.
	NavigatorNodeID graft.ID = "adapter.navigator"
)

func init() {
	graft.Register(graft.Node[ports.Notifier]{
		ID:        NotifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Notifier, error) {
			return NewNotifier(), nil
		},
	})

	graft.Register(graft.Node[ports.Navigator]{
		ID:        NavigatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Navigator, error) {
			return NewEditorNavigator(), nil
		},
	})
}
