// Package telemetry provides OpenTelemetry tracing for game sessions.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "guessnumber"
	serviceVersion = "0.1.0"
)

// Options configures the OTLP exporter.
type Options struct {
	// Enabled is the master switch. When false, Setup is a no-op.
	Enabled bool
	// Endpoint is the full OTLP/HTTP URL, e.g. https://api.honeycomb.io.
	Endpoint string
	// Headers are sent with every export request (Honeycomb team/dataset).
	Headers map[string]string
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter.
//
// Tracing is opt-in: when opts.Enabled is false or no endpoint is set, Setup
// returns a no-op shutdown and leaves the global provider untouched.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	noopShutdown := func(context.Context) error { return nil }
	if !opts.Enabled || opts.Endpoint == "" {
		return noopShutdown, nil
	}

	exporterOpts := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(opts.Endpoint)}
	if len(opts.Headers) > 0 {
		exporterOpts = append(exporterOpts, otlptracehttp.WithHeaders(opts.Headers))
	}

	exporter, err := otlptracehttp.New(ctx, exporterOpts...)
	if err != nil {
		return noopShutdown, err
	}

	// Built without merging resource.Default() to avoid schema URL conflicts.
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("telemetry.sdk.name", "opentelemetry"),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return noopShutdown, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("guessnumber/" + name)
}

// NoopTracer returns a no-op tracer for use when telemetry is disabled.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("guessnumber/noop")
}

func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
