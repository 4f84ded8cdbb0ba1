package telemetry_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/antscan/internal/adapters/telemetry"
	"go.trai.ch/antscan/internal/core/domain"
	"go.trai.ch/antscan/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_RecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracer(tp)

	ctx, parent := tracer.Start(t.Context(), "discover")
	_, child := tracer.Start(ctx, "extract")
	child.SetAttribute("file", "/ws/build.xml")
	child.SetAttribute("targets", 3)
	child.SetAttribute("tool", true)
	child.SetAttribute("source", domain.SourceMarkup)
	child.RecordError(errors.New("tool missing"))
	child.RecordError(nil)
	child.End()
	parent.End()

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	extract := spans[0]
	assert.Equal(t, "extract", extract.Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), extract.Parent().SpanID())
	assert.Equal(t, codes.Error, extract.Status().Code)
	assert.Equal(t, "tool missing", extract.Status().Description)
	assert.Contains(t, extract.Attributes(), attribute.String("file", "/ws/build.xml"))
	assert.Contains(t, extract.Attributes(), attribute.Int("targets", 3))
	assert.Contains(t, extract.Attributes(), attribute.Bool("tool", true))
	assert.Contains(t, extract.Attributes(), attribute.String("source", "markup"))
}

func TestBridge_LogsEndedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var logged string
	mockLogger.EXPECT().Debug(gomock.Any()).Do(func(msg string) { logged = msg }).Times(1)

	tracer := telemetry.NewOTelTracer(telemetry.NewTracerProvider(telemetry.NewBridge(mockLogger)))
	_, span := tracer.Start(t.Context(), "invalidate")
	span.SetAttribute("file", "/ws/build.xml")
	span.RecordError(errors.New("boom"))
	span.End()

	assert.True(t, strings.HasPrefix(logged, "invalidate took "), logged)
	assert.Contains(t, logged, "file=/ws/build.xml")
	assert.Contains(t, logged, `error="boom"`)
}

func TestBridge_NilLogger(t *testing.T) {
	tracer := telemetry.NewOTelTracer(telemetry.NewTracerProvider(telemetry.NewBridge(nil)))
	assert.NotPanics(t, func() {
		_, span := tracer.Start(t.Context(), "noop")
		span.End()
	})
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx, span := tracer.Start(t.Context(), "noop")
	assert.Equal(t, t.Context(), ctx)

	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}
