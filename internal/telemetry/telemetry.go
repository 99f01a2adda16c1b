// Package telemetry wires OpenTelemetry tracing for command dispatch.
// Spans are exported to the app's log sink; when disabled, a noop
// provider is installed so instrumented code pays nothing.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// EnableEnv turns span export on when set to a non-empty value.
const EnableEnv = "CLICK2RUN_TRACE"

// Enabled reports whether tracing is requested via the environment.
func Enabled() bool {
	return os.Getenv(EnableEnv) != ""
}

// Setup installs the global tracer provider. Spans are written to w
// (the log sink). Returns a shutdown function to flush on exit.
func Setup(w io.Writer, enabled bool) (func(context.Context) error, error) {
	if !enabled {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
