// Package otel wires OpenTelemetry tracing for the uuidgen process.
package otel

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/uuidgen/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Settings are read from UUIDGEN_OTEL_* variables.
type Settings struct {
	Endpoint string `env:"OTEL_ENDPOINT"`
	// Enabled switches tracing off when set to "false"; any other value
	// defers to Endpoint.
	Enabled string `env:"OTEL_ENABLED"`
	// SampleRatio is the fraction of root traces kept, in [0, 1].
	SampleRatio float64 `env:"OTEL_SAMPLE_RATIO" envDefault:"1"`
}

func (s Settings) active() bool {
	if strings.EqualFold(strings.TrimSpace(s.Enabled), "false") {
		return false
	}
	return strings.TrimSpace(s.Endpoint) != ""
}

// Shutdown flushes pending spans.
type Shutdown func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Setup installs a global OTLP/HTTP tracer provider for serviceName when
// UUIDGEN_OTEL_ENDPOINT is set. Otherwise it returns a no-op Shutdown and
// leaves the global provider untouched.
func Setup(ctx context.Context, serviceName string) (Shutdown, error) {
	var settings Settings
	if err := config.ParseEnv(&settings); err != nil {
		return noopShutdown, fmt.Errorf("load otel settings: %w", err)
	}
	if !settings.active() {
		return noopShutdown, nil
	}
	tp, err := newProvider(ctx, serviceName, settings)
	if err != nil {
		return noopShutdown, err
	}
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp.Shutdown, nil
}

func newProvider(ctx context.Context, serviceName string, settings Settings) (*sdktrace.TracerProvider, error) {
	if settings.SampleRatio < 0 || settings.SampleRatio > 1 {
		return nil, fmt.Errorf("otel sample ratio %v outside [0, 1]", settings.SampleRatio)
	}
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(strings.TrimSpace(settings.Endpoint)))
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return nil, fmt.Errorf("build otel resource: %w", err)
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(settings.SampleRatio))),
	), nil
}
