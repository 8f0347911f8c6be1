// Package telemetry wires OpenTelemetry tracing for the HTTP edge and the database pool.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/config"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

type ShutdownFunc func(ctx context.Context) error

var excludedPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// Init installs the global tracer provider. Without an exporter endpoint spans
// are still sampled and propagated but never exported.
func Init(ctx context.Context, cfg config.OtelConfig, env string) (ShutdownFunc, error) {

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			semconv.DeploymentEnvironmentKey.String(env),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SamplerRatio))),
	}

	if cfg.ExporterEndpoint != "" {
		exporter, err := otlptracehttp.New(ctx,
			otlptracehttp.WithEndpointURL(cfg.ExporterEndpoint),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	slog.Info("🔭 Tracing initialized",
		slog.String("service", cfg.ServiceName),
		slog.Bool("exporting", cfg.ExporterEndpoint != ""),
		slog.Float64("sampler_ratio", cfg.SamplerRatio),
	)

	return tp.Shutdown, nil
}

// Middleware starts a server span per request named after the matched route.
func Middleware(serviceName string) func(http.Handler) http.Handler {

	opts := []otelhttp.Option{
		otelhttp.WithFilter(func(r *http.Request) bool {
			return !excludedPaths[r.URL.Path]
		}),
		otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
			return "HTTP " + r.Method + " " + r.URL.Path
		}),
	}

	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, serviceName, opts...)
	}
}
