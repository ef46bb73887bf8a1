package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/routelens/internal/core/domain"
)

func TestDocumentID(t *testing.T) {
	a := domain.NewDocumentID("/app/controllers/posts_controller.rb")
	b := domain.NewDocumentID("/app/controllers/../controllers/posts_controller.rb")
	c := domain.NewDocumentID("/app/controllers/users_controller.rb")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "file:///app/controllers/posts_controller.rb", a.String())
	assert.False(t, a.IsZero())
	assert.True(t, domain.DocumentID{}.IsZero())
	assert.Empty(t, domain.DocumentID{}.String())
}

func TestDocumentID_JSON(t *testing.T) {
	id := domain.NewDocumentID("/w/app/controllers/posts_controller.rb")

	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.JSONEq(t, `"file:///w/app/controllers/posts_controller.rb"`, string(data))

	var decoded domain.DocumentID
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, id, decoded)
}

func TestIsControllerFile(t *testing.T) {
	assert.True(t, domain.IsControllerFile("/w/app/controllers/posts_controller.rb"))
	assert.False(t, domain.IsControllerFile("/w/app/models/post.rb"))
	assert.False(t, domain.IsControllerFile("/w/app/controllers/posts_controller.rb.bak"))
}

func TestControllerName(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{path: "/w/app/controllers/posts_controller.rb", want: "posts", ok: true},
		{path: "/w/app/controllers/admin/users_controller.rb", want: "admin/users", ok: true},
		{path: "app/controllers/application_controller.rb", want: "application", ok: true},
		{path: "/w/lib/posts_controller.rb", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := domain.ControllerName(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActionName(t *testing.T) {
	tests := []struct {
		line string
		want string
		ok   bool
	}{
		{line: "  def index", want: "index", ok: true},
		{line: "def show_all(params)", want: "show_all", ok: true},
		{line: "\tdef\tcreate", want: "create", ok: true},
		{line: "  # nothing here", ok: false},
		{line: "  define_method :x", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := domain.ActionName(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsRoutesFile(t *testing.T) {
	assert.True(t, domain.IsRoutesFile("/w/config/routes.rb"))
	assert.False(t, domain.IsRoutesFile("/w/config/routes.rb.swp"))
	assert.False(t, domain.IsRoutesFile("/w/config/application.rb"))
}

func TestNewAnnotation(t *testing.T) {
	route := domain.Route{Verb: "GET", URL: "/posts", Pattern: "posts", Controller: "posts", Action: "index"}

	t.Run("without view", func(t *testing.T) {
		a := domain.NewAnnotation(9, route, "")
		assert.Equal(t, 9, a.Line)
		assert.Equal(t, "🌐 /posts | posts | GET", a.Title)
		assert.Empty(t, a.Command)
		assert.Empty(t, a.Tooltip)
		assert.False(t, a.HasView())
	})

	t.Run("with view", func(t *testing.T) {
		a := domain.NewAnnotation(9, route, "/w/app/views/posts/index.html.erb")
		assert.Equal(t, "🌐 /posts | posts | GET 👁️", a.Title)
		assert.Equal(t, domain.OpenViewCommand, a.Command)
		assert.Equal(t, "/w/app/views/posts/index.html.erb", a.ViewPath)
		assert.Equal(t, "navigate to view: posts#index", a.Tooltip)
		assert.True(t, a.HasView())
	})
}
