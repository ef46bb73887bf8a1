package notify_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/routelens/internal/adapters/notify"
	"go.trai.ch/routelens/internal/core/domain"
)

func TestNotifier_Warn(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	n := notify.NewNotifierTo(&buf)

	n.Warn("An error occurred while retrieving routes information.")
	n.Warn("An error occurred while generating annotations.")

	assert.Equal(t,
		"! An error occurred while retrieving routes information.\n"+
			"! An error occurred while generating annotations.\n",
		buf.String())
}

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestEditorNavigator_Editor(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want []string
	}{
		{name: "none", env: nil, want: nil},
		{name: "editor", env: map[string]string{"EDITOR": "vim"}, want: []string{"vim"}},
		{name: "visual wins", env: map[string]string{"EDITOR": "vim", "VISUAL": "code -w"}, want: []string{"code", "-w"}},
		{name: "blank visual falls back", env: map[string]string{"VISUAL": "  ", "EDITOR": "nano"}, want: []string{"nano"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &notify.EditorNavigator{Getenv: envFrom(tt.env)}
			assert.Equal(t, tt.want, n.Editor())
		})
	}
}

func TestEditorNavigator_Open_PrintsWithoutEditor(t *testing.T) {
	var out bytes.Buffer
	n := &notify.EditorNavigator{Getenv: envFrom(nil), Stdout: &out}

	require.NoError(t, n.Open(context.Background(), "/ws/app/views/posts/index.html.erb"))
	assert.Equal(t, "/ws/app/views/posts/index.html.erb\n", out.String())
}

func TestEditorNavigator_Open_RunsEditor(t *testing.T) {
	var out bytes.Buffer
	n := &notify.EditorNavigator{
		Getenv: envFrom(map[string]string{"EDITOR": "echo opening"}),
		Stdin:  strings.NewReader(""),
		Stdout: &out,
		Stderr: &out,
	}

	require.NoError(t, n.Open(context.Background(), "/ws/app/views/posts/index.html.erb"))
	assert.Equal(t, "opening /ws/app/views/posts/index.html.erb\n", out.String())
}

func TestEditorNavigator_Open_EditorFails(t *testing.T) {
	var out bytes.Buffer
	n := &notify.EditorNavigator{
		Getenv: envFrom(map[string]string{"EDITOR": "false"}),
		Stdin:  strings.NewReader(""),
		Stdout: &out,
		Stderr: &out,
	}

	err := n.Open(context.Background(), "/ws/view.html.erb")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrOpenViewFailed.Error())
}
