package app_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/routelens/internal/adapters/fs"
	"go.trai.ch/routelens/internal/adapters/telemetry"
	"go.trai.ch/routelens/internal/app"
	"go.trai.ch/routelens/internal/core/domain"
	"go.trai.ch/routelens/internal/core/ports"
	"go.trai.ch/routelens/internal/core/ports/mocks"
	"go.trai.ch/routelens/internal/engine/resolver"
	"go.trai.ch/routelens/internal/engine/routeindex"
	"go.uber.org/mock/gomock"
)

const postsDump = "    posts GET /posts(.:format) posts#index\n" +
	"          POST /posts(.:format) posts#create\n"

const postsSource = "class PostsController < ApplicationController\n" +
	"  def index\n" +
	"  end\n" +
	"\n" +
	"  def create\n" +
	"  end\n" +
	"end\n"

type fixture struct {
	ws        string
	postsPath string
	indexView string

	loader    *mocks.MockConfigLoader
	logger    *mocks.MockLogger
	source    *mocks.MockRouteSource
	views     *mocks.MockViewLocator
	notifier  *mocks.MockNotifier
	navigator *mocks.MockNavigator
	watcher   *mocks.MockWatcher
	changes   *mocks.MockChangeDetector

	app *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	ws := t.TempDir()
	f := &fixture{
		ws:        ws,
		postsPath: filepath.Join(ws, "app", "controllers", "posts_controller.rb"),
		indexView: filepath.Join(ws, "app", "views", "posts", "index.html.erb"),
		loader:    mocks.NewMockConfigLoader(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		source:    mocks.NewMockRouteSource(ctrl),
		views:     mocks.NewMockViewLocator(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
		navigator: mocks.NewMockNavigator(ctrl),
		watcher:   mocks.NewMockWatcher(ctrl),
		changes:   mocks.NewMockChangeDetector(ctrl),
	}

	require.NoError(t, os.MkdirAll(filepath.Dir(f.postsPath), domain.DirPerm))
	require.NoError(t, os.WriteFile(f.postsPath, []byte(postsSource), domain.FilePerm))

	tracer := telemetry.NewNoOpTracer()
	index := routeindex.NewIndex(f.source, f.logger, f.notifier, tracer)
	res := resolver.NewResolver(index, f.views, f.logger, f.notifier, tracer)

	f.app = app.New(f.loader, f.logger, f.source, index, res, f.navigator, f.watcher, f.changes, fs.NewWalker())
	return f
}

func (f *fixture) expectViews(times int) {
	f.views.EXPECT().LocateViewFile(gomock.Any(), f.ws, "posts", "index").Return(f.indexView, nil).Times(times)
	f.views.EXPECT().LocateViewFile(gomock.Any(), f.ws, "posts", "create").Return("", nil).Times(times)
}

func TestApp_Startup_DumpPresent(t *testing.T) {
	f := newFixture(t)
	f.source.EXPECT().DumpExists(f.ws).Return(true, nil)

	f.app.Startup(context.Background(), f.ws)
}

func TestApp_Startup_RegeneratesMissingDump(t *testing.T) {
	f := newFixture(t)
	f.source.EXPECT().DumpExists(f.ws).Return(false, nil)
	f.source.EXPECT().RegenerateRouteDump(gomock.Any(), f.ws).Return(postsDump, nil).Times(1)

	f.app.Startup(context.Background(), f.ws)
}

func TestApp_Startup_RegenerationFailureIsLogged(t *testing.T) {
	f := newFixture(t)
	f.source.EXPECT().DumpExists(f.ws).Return(false, nil)
	f.source.EXPECT().RegenerateRouteDump(gomock.Any(), f.ws).Return("", domain.ErrRouteCommandFailed)
	f.logger.EXPECT().Error(domain.ErrRouteCommandFailed).Times(1)

	f.app.Startup(context.Background(), f.ws)
}

func TestApp_Annotate(t *testing.T) {
	f := newFixture(t)
	f.source.EXPECT().FetchRawRouteLines(gomock.Any(), f.ws, "posts").Return(postsDump, nil).Times(1)
	f.expectViews(1)

	got, err := f.app.Annotate(context.Background(), f.ws, f.postsPath)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Line)
	assert.Equal(t, "🌐 GET | /posts(.:format) | posts 👁️", got[0].Title)
	assert.Equal(t, f.indexView, got[0].ViewPath)
	assert.Equal(t, 4, got[1].Line)
	assert.Equal(t, "🌐 POST | /posts(.:format) | ", got[1].Title)

	again, err := f.app.Annotate(context.Background(), f.ws, f.postsPath)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestApp_Annotate_MissingFile(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Annotate(context.Background(), f.ws, filepath.Join(f.ws, "missing_controller.rb"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDocumentReadFailed.Error())
}

func TestApp_ContextChanged(t *testing.T) {
	f := newFixture(t)
	f.source.EXPECT().FetchRawRouteLines(gomock.Any(), f.ws, "posts").Return(postsDump, nil).Times(1)
	f.expectViews(2)

	_, err := f.app.Annotate(context.Background(), f.ws, f.postsPath)
	require.NoError(t, err)

	f.app.ContextChanged(f.postsPath)

	_, err = f.app.Annotate(context.Background(), f.ws, f.postsPath)
	require.NoError(t, err)
}

func TestApp_FileSaved_RoutesFile(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.source.EXPECT().FetchRawRouteLines(gomock.Any(), f.ws, "posts").Return(postsDump, nil),
		f.source.EXPECT().RegenerateRouteDump(gomock.Any(), f.ws).Return(postsDump, nil),
		f.source.EXPECT().FetchRawRouteLines(gomock.Any(), f.ws, "posts").
			Return("    posts GET /posts(.:format) posts#index\n", nil),
	)
	f.views.EXPECT().LocateViewFile(gomock.Any(), f.ws, "posts", "index").Return(f.indexView, nil).Times(2)
	f.views.EXPECT().LocateViewFile(gomock.Any(), f.ws, "posts", "create").Return("", nil).Times(1)

	before, err := f.app.Annotate(context.Background(), f.ws, f.postsPath)
	require.NoError(t, err)
	require.Len(t, before, 2)

	f.app.FileSaved(context.Background(), f.ws, filepath.Join(f.ws, "config", "routes.rb"))

	after, err := f.app.Annotate(context.Background(), f.ws, f.postsPath)
	require.NoError(t, err)
	assert.Len(t, after, 1)
}

func TestApp_FileSaved_OtherFile(t *testing.T) {
	f := newFixture(t)

	f.app.FileSaved(context.Background(), f.ws, f.postsPath)
}

func TestApp_Regenerate_Failure(t *testing.T) {
	f := newFixture(t)
	f.source.EXPECT().RegenerateRouteDump(gomock.Any(), f.ws).Return("", domain.ErrRouteCommandFailed)

	err := f.app.Regenerate(context.Background(), f.ws)
	require.ErrorIs(t, err, domain.ErrRouteCommandFailed)
}

func TestApp_OpenView(t *testing.T) {
	f := newFixture(t)
	f.source.EXPECT().FetchRawRouteLines(gomock.Any(), f.ws, "posts").Return(postsDump, nil).Times(1)
	f.expectViews(1)
	f.navigator.EXPECT().Open(gomock.Any(), f.indexView).Return(nil).Times(1)

	require.NoError(t, f.app.OpenView(context.Background(), f.ws, f.postsPath, 1))

	err := f.app.OpenView(context.Background(), f.ws, f.postsPath, 4)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrNoViewForAnnotation.Error())

	err = f.app.OpenView(context.Background(), f.ws, f.postsPath, 2)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrNoAnnotationOnLine.Error())
}

func TestApp_ControllerFiles(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, []string{f.postsPath}, f.app.ControllerFiles(f.ws))
}

func TestApp_Watch(t *testing.T) {
	f := newFixture(t)

	settings := domain.DefaultSettings()
	settings.Debounce = time.Hour
	f.loader.EXPECT().Load(f.ws).Return(settings, nil)

	routesPath := filepath.Join(f.ws, "config", "routes.rb")
	events := []ports.WatchEvent{
		{Path: f.postsPath, Operation: ports.OpWrite},
		{Path: filepath.Join(f.ws, "README.md"), Operation: ports.OpWrite},
		{Path: f.postsPath, Operation: ports.OpWrite},
		{Path: routesPath, Operation: ports.OpWrite},
	}

	gomock.InOrder(
		// Priming pass over existing controllers.
		f.changes.EXPECT().Changed(f.postsPath).Return(true, nil),
		f.watcher.EXPECT().Start(gomock.Any(), f.ws).Return(nil),
		f.watcher.EXPECT().Events().Return(slices.Values(events)),
		// Batch is sorted: the controller comes before config/routes.rb.
		f.changes.EXPECT().Changed(f.postsPath).Return(true, nil),
		f.source.EXPECT().FetchRawRouteLines(gomock.Any(), f.ws, "posts").Return(postsDump, nil),
		f.source.EXPECT().RegenerateRouteDump(gomock.Any(), f.ws).Return(postsDump, nil),
		f.watcher.EXPECT().Stop().Return(nil),
	)
	f.source.EXPECT().FetchRawRouteLines(gomock.Any(), f.ws, "posts").Return(postsDump, nil).AnyTimes()
	f.expectViews(1)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	var updates []string
	err := f.app.Watch(context.Background(), f.ws, func(path string, annotations []domain.Annotation) {
		updates = append(updates, path)
		assert.Len(t, annotations, 2)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{f.postsPath}, updates)
}

func TestApp_Watch_UnchangedContentIsSkipped(t *testing.T) {
	f := newFixture(t)

	settings := domain.DefaultSettings()
	settings.Debounce = time.Hour
	f.loader.EXPECT().Load(f.ws).Return(settings, nil)

	f.changes.EXPECT().Changed(f.postsPath).Return(true, nil)
	f.watcher.EXPECT().Start(gomock.Any(), f.ws).Return(nil)
	f.watcher.EXPECT().Events().Return(slices.Values([]ports.WatchEvent{{Path: f.postsPath, Operation: ports.OpWrite}}))
	f.changes.EXPECT().Changed(f.postsPath).Return(false, nil)
	f.watcher.EXPECT().Stop().Return(nil)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	err := f.app.Watch(context.Background(), f.ws, func(string, []domain.Annotation) {
		t.Fatal("unchanged content must not trigger an update")
	})
	require.NoError(t, err)
}

func TestApp_Watch_StartFailure(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(f.ws).Return(domain.DefaultSettings(), nil)
	f.changes.EXPECT().Changed(f.postsPath).Return(true, nil)
	f.watcher.EXPECT().Start(gomock.Any(), f.ws).Return(domain.ErrWatcherFailed)

	err := f.app.Watch(context.Background(), f.ws, nil)
	require.ErrorIs(t, err, domain.ErrWatcherFailed)
}

func TestApp_Configure(t *testing.T) {
	f := newFixture(t)

	release := f.app.Configure(app.Options{ConfigFile: "custom.yaml"})
	require.NoError(t, release(context.Background()))
}
