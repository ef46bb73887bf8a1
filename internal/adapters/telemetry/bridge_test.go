package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/routelens/internal/adapters/telemetry"
	"go.trai.ch/routelens/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLogBridge_LogsFinishedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	var infos []string
	logger.EXPECT().Info(gomock.Any()).Do(func(msg string) { infos = append(infos, msg) }).Times(1)
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Contains(t, err.Error(), "resolver.generate: boom")
	}).Times(1)

	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(logger)))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	tracer := telemetry.NewOTelTracerWithProvider(provider, "test")

	_, ok := tracer.Start(context.Background(), "routeindex.fetch")
	ok.End()

	_, failed := tracer.Start(context.Background(), "resolver.generate")
	failed.RecordError(errors.New("boom"))
	failed.End()

	if assert.Len(t, infos, 1) {
		assert.True(t, strings.HasPrefix(infos[0], "trace routeindex.fetch "))
	}
}
