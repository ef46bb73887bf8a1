// Package notify implements the user-facing warning channel and the
// navigation target for view files.
package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"go.trai.ch/routelens/internal/core/ports"
)

var _ ports.Notifier = (*Notifier)(nil)

// Notifier prints warnings to the terminal, separate from the log stream.
type Notifier struct {
	mu     sync.Mutex
	out    io.Writer
	marker *color.Color
}

// NewNotifier creates a Notifier writing to stderr.
func NewNotifier() *Notifier {
	return NewNotifierTo(os.Stderr)
}

// NewNotifierTo creates a Notifier writing to w.
func NewNotifierTo(w io.Writer) *Notifier {
	return &Notifier{
		out:    w,
		marker: color.New(color.FgYellow, color.Bold),
	}
}

// Warn shows msg as a warning.
func (n *Notifier) Warn(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	_, _ = n.marker.Fprint(n.out, "! ")
	_, _ = fmt.Fprintln(n.out, msg)
}
