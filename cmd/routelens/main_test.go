package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/routelens/internal/adapters/fs"
	"go.trai.ch/routelens/internal/adapters/telemetry"
	"go.trai.ch/routelens/internal/app"
	"go.trai.ch/routelens/internal/core/domain"
	"go.trai.ch/routelens/internal/core/ports/mocks"
	"go.trai.ch/routelens/internal/engine/resolver"
	"go.trai.ch/routelens/internal/engine/routeindex"
	"go.uber.org/mock/gomock"
)

type harness struct {
	logger *mocks.MockLogger
	source *mocks.MockRouteSource
	app    *app.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		logger: mocks.NewMockLogger(ctrl),
		source: mocks.NewMockRouteSource(ctrl),
	}
	notifier := mocks.NewMockNotifier(ctrl)
	tracer := telemetry.NewNoOpTracer()
	index := routeindex.NewIndex(h.source, h.logger, notifier, tracer)
	res := resolver.NewResolver(index, mocks.NewMockViewLocator(ctrl), h.logger, notifier, tracer)

	h.app = app.New(
		mocks.NewMockConfigLoader(ctrl),
		h.logger,
		h.source,
		index,
		res,
		mocks.NewMockNavigator(ctrl),
		mocks.NewMockWatcher(ctrl),
		mocks.NewMockChangeDetector(ctrl),
		fs.NewWalker(),
	)
	return h
}

func (h *harness) provider(_ context.Context) (*app.Components, func(), error) {
	return &app.Components{App: h.app, Logger: h.logger}, func() {}, nil
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	h := newHarness(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), h.provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "routelens version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	h := newHarness(t)
	ws := t.TempDir()

	h.source.EXPECT().DumpExists(ws).Return(true, nil)
	h.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrInvalidLine.Error())
	})

	exitCode := run(context.Background(), []string{"open", "-w", ws, "posts_controller.rb", "zero"},
		new(bytes.Buffer), new(bytes.Buffer), h.provider)
	assert.Equal(t, 1, exitCode)
}
