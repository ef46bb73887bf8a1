package shell_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/routelens/internal/adapters/shell"
	"go.trai.ch/routelens/internal/core/domain"
	"go.trai.ch/routelens/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Run_CapturesStdout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger)

	out, err := executor.Run(context.Background(), t.TempDir(), []string{"sh", "-c", "echo line1; echo line2"})
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\n", out)
}

func TestExecutor_Run_WorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	executor := shell.NewExecutor(mockLogger)

	out, err := executor.Run(context.Background(), dir, []string{"sh", "-c", "ls"})
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = executor.Run(context.Background(), dir, []string{"sh", "-c", "touch marker && ls"})
	require.NoError(t, err)
	assert.Equal(t, "marker\n", out)
}

func TestExecutor_Run_StreamsStderrToLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		mockLogger.EXPECT().Warn("warn1").Times(1),
		mockLogger.EXPECT().Warn("part1part2").Times(1),
		mockLogger.EXPECT().Warn("tail").Times(1),
	)

	executor := shell.NewExecutor(mockLogger)

	script := "echo warn1 >&2; printf part1 >&2; sleep 0.1; echo part2 >&2; printf tail >&2; echo ok"
	out, err := executor.Run(context.Background(), t.TempDir(), []string{"sh", "-c", script})
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestExecutor_Run_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("boom").Times(1)

	executor := shell.NewExecutor(mockLogger)

	_, err := executor.Run(context.Background(), t.TempDir(), []string{"sh", "-c", "echo boom >&2; exit 3"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRouteCommandFailed.Error())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])
}

func TestExecutor_Run_InvalidCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger)

	_, err := executor.Run(context.Background(), t.TempDir(), []string{"routelens-command-that-does-not-exist"})
	require.Error(t, err)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, -1, zErr.Metadata()["exit_code"])
}

func TestExecutor_Run_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger)

	_, err := executor.Run(context.Background(), t.TempDir(), nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRouteCommandFailed.Error())
}

func TestExecutor_Run_Canceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := executor.Run(ctx, t.TempDir(), []string{"sh", "-c", "sleep 5"})
	require.Error(t, err)
}
