// Package tracing installs the global OpenTelemetry tracer provider.
package tracing

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"reclaim/config"
	"reclaim/internal/domain/constants"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New returns the provider registered as the otel global.
// A noop provider is used unless tracing.enabled is set.
func New(params Params) (trace.TracerProvider, error) {
	tp, shutdown, err := Init(params.Config, os.Stdout)
	if err != nil {
		return nil, err
	}

	if params.Config.Tracing != nil && params.Config.Tracing.Enabled {
		params.Logger.Info("Tracing enabled", slog.String("exporter", params.Config.Tracing.Exporter))
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})

	return tp, nil
}

// Init builds the provider and sets it as the otel global.
func Init(cfg *config.Config, out io.Writer) (trace.TracerProvider, func(context.Context) error, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if cfg.Tracing == nil || !cfg.Tracing.Enabled {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)

		return tp, func(context.Context) error { return nil }, nil
	}

	exporter, err := newExporter(cfg.Tracing.Exporter, out)
	if err != nil {
		return nil, nil, err
	}

	serviceName := cfg.Env.ServiceName
	if serviceName == "" {
		serviceName = "reclaim"
	}
	res := resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("deployment.environment", cfg.Env.Env),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp, tp.Shutdown, nil
}

func newExporter(name string, out io.Writer) (sdktrace.SpanExporter, error) {
	switch strings.ToLower(name) {
	case "", constants.TracingExporterStdout:
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(out), stdouttrace.WithoutTimestamps())
		if err != nil {
			return nil, errors.Wrap(err, "create stdout exporter")
		}

		return exporter, nil
	default:
		return nil, errors.Errorf("unsupported tracing exporter: %s", name)
	}
}

//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
