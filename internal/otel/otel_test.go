package otel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/hanpama/trailgen/internal/eventbus"
	"github.com/hanpama/trailgen/internal/events"
	"github.com/hanpama/trailgen/internal/ir"
	"github.com/hanpama/trailgen/internal/otel"
	"github.com/hanpama/trailgen/internal/runid"
)

func TestAttachRecordsCompileSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	bus := eventbus.New()
	detach := otel.Attach(bus, tp.Tracer("test"))
	defer detach()

	ctx, _ := runid.NewContext(context.Background())
	eventbus.Publish(ctx, bus, events.CompileStart{Package: "graph", Sources: []string{"schema.graphql"}})
	eventbus.Publish(ctx, bus, events.PassStart{Pass: "unions"})
	eventbus.Publish(ctx, bus, events.DiagnosticRecorded{Pass: "unions", Diagnostic: ir.Diagnostic{Kind: ir.UnionFieldTypeMismatch}})
	eventbus.Publish(ctx, bus, events.PassFinish{Pass: "unions", Diagnostics: 1})
	eventbus.Publish(ctx, bus, events.CompileFinish{Package: "graph", Diagnostics: 1, Err: errors.New("boom")})

	spans := rec.Ended()
	require.Len(t, spans, 2)
	pass, compile := spans[0], spans[1]
	require.Equal(t, "trailgen.pass.unions", pass.Name())
	require.Equal(t, "trailgen.compile", compile.Name())
	require.Equal(t, compile.SpanContext().SpanID(), pass.Parent().SpanID())
	require.Len(t, pass.Events(), 1)
	require.Equal(t, codes.Error, compile.Status().Code)
}

func TestAttachSeparatesRuns(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	bus := eventbus.New()
	detach := otel.Attach(bus, tp.Tracer("test"))

	first, _ := runid.NewContext(context.Background())
	second, _ := runid.NewContext(context.Background())
	eventbus.Publish(first, bus, events.CompileStart{Package: "a"})
	eventbus.Publish(second, bus, events.CompileStart{Package: "b"})
	eventbus.Publish(second, bus, events.CompileFinish{Package: "b"})
	require.Len(t, rec.Ended(), 1)
	eventbus.Publish(first, bus, events.CompileFinish{Package: "a"})
	require.Len(t, rec.Ended(), 2)

	detach()
	eventbus.Publish(first, bus, events.CompileStart{Package: "a"})
	eventbus.Publish(first, bus, events.CompileFinish{Package: "a"})
	require.Len(t, rec.Ended(), 2)
}

func TestSetupWithoutEndpoint(t *testing.T) {
	shutdown, err := otel.Setup(context.Background(), "", "trailgen", eventbus.New())
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
