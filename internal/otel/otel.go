package otel

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/hanpama/trailgen/internal/eventbus"
	"github.com/hanpama/trailgen/internal/events"
	"github.com/hanpama/trailgen/internal/runid"
)

// Setup configures OpenTelemetry and attaches bus subscribers that trace
// compilations. If endpoint is empty, no telemetry is configured.
func Setup(ctx context.Context, endpoint, service string, bus *eventbus.Bus) (func(context.Context) error, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	exp, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(service),
		)),
	)
	otel.SetTracerProvider(tp)

	detach := Attach(bus, otel.Tracer("trailgen"))
	return func(ctx context.Context) error {
		detach()
		return tp.Shutdown(ctx)
	}, nil
}

// Attach subscribes tracer to the compile events of bus. Spans are keyed by
// the run ID of the event context; pass spans are children of the compile
// span of the same run.
func Attach(bus *eventbus.Bus, tracer trace.Tracer) (detach func()) {
	s := &subscriber{tracer: tracer}
	return s.register(bus)
}

type subscriber struct {
	tracer       trace.Tracer
	compileSpans sync.Map // rid -> trace.Span
	passSpans    sync.Map // rid/pass -> trace.Span
}

func (s *subscriber) register(bus *eventbus.Bus) func() {
	unsubs := []func(){
		eventbus.Subscribe(bus, func(ctx context.Context, e events.CompileStart) {
			rid, _ := runid.FromContext(ctx)
			_, span := s.tracer.Start(ctx, "trailgen.compile")
			span.SetAttributes(
				attribute.String("trailgen.run_id", rid),
				attribute.String("trailgen.package", e.Package),
				attribute.StringSlice("trailgen.sources", e.Sources),
			)
			s.compileSpans.Store(rid, span)
		}),

		eventbus.Subscribe(bus, func(ctx context.Context, e events.CompileFinish) {
			rid, _ := runid.FromContext(ctx)
			v, ok := s.compileSpans.LoadAndDelete(rid)
			if !ok {
				return
			}
			span := v.(trace.Span)
			span.SetAttributes(
				attribute.Int("trailgen.diagnostics", e.Diagnostics),
				attribute.Int("trailgen.bytes", e.Bytes),
			)
			if e.Err != nil {
				span.RecordError(e.Err)
				span.SetStatus(codes.Error, e.Err.Error())
			}
			span.End()
		}),

		eventbus.Subscribe(bus, func(ctx context.Context, e events.PassStart) {
			rid, _ := runid.FromContext(ctx)
			parent := ctx
			if v, ok := s.compileSpans.Load(rid); ok {
				parent = trace.ContextWithSpan(ctx, v.(trace.Span))
			}
			_, span := s.tracer.Start(parent, "trailgen.pass."+e.Pass)
			s.passSpans.Store(rid+"/"+e.Pass, span)
		}),

		eventbus.Subscribe(bus, func(ctx context.Context, e events.PassFinish) {
			rid, _ := runid.FromContext(ctx)
			v, ok := s.passSpans.LoadAndDelete(rid + "/" + e.Pass)
			if !ok {
				return
			}
			span := v.(trace.Span)
			span.SetAttributes(attribute.Int("trailgen.diagnostics", e.Diagnostics))
			span.End()
		}),

		eventbus.Subscribe(bus, func(ctx context.Context, e events.DiagnosticRecorded) {
			rid, _ := runid.FromContext(ctx)
			v, ok := s.passSpans.Load(rid + "/" + e.Pass)
			if !ok {
				return
			}
			v.(trace.Span).AddEvent("diagnostic", trace.WithAttributes(
				attribute.String("trailgen.diagnostic.kind", string(e.Diagnostic.Kind)),
				attribute.String("trailgen.diagnostic.message", e.Diagnostic.String()),
			))
		}),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
