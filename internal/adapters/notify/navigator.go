package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"

	"go.trai.ch/routelens/internal/core/domain"
	"go.trai.ch/routelens/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Navigator = (*EditorNavigator)(nil)

// EditorNavigator opens files in the user's editor. Without an editor it
// prints the path so another tool can pick it up.
type EditorNavigator struct {
	Getenv func(string) string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewEditorNavigator creates a navigator bound to the process environment and terminal.
func NewEditorNavigator() *EditorNavigator {
	return &EditorNavigator{
		Getenv: os.Getenv,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Editor returns the editor command line from $VISUAL or $EDITOR.
func (n *EditorNavigator) Editor() []string {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(n.Getenv(key)); len(fields) > 0 {
			return fields
		}
	}
	return nil
}

// Open opens path in the editor, or prints it when no editor is configured.
func (n *EditorNavigator) Open(ctx context.Context, path string) error {
	editor := n.Editor()
	if len(editor) == 0 {
		_, err := fmt.Fprintln(n.Stdout, path)
		return err
	}

	args := append(slices.Clone(editor[1:]), path)
	cmd := exec.CommandContext(ctx, editor[0], args...) //nolint:gosec // editor comes from the user's environment
	cmd.Stdin = n.Stdin
	cmd.Stdout = n.Stdout
	cmd.Stderr = n.Stderr

	if err := cmd.Run(); err != nil {
		err = zerr.Wrap(err, domain.ErrOpenViewFailed.Error())
		err = zerr.With(err, "editor", editor[0])
		return zerr.With(err, "path", path)
	}
	return nil
}
