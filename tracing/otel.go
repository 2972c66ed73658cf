package tracing

import (
	"context"

	"github.com/bsv-blockchain/ringselect/errors"
	"github.com/bsv-blockchain/ringselect/settings"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
)

// InitOtelTracer installs a global tracer provider exporting spans over OTLP/HTTP to the
// configured collector. It returns the provider's shutdown function, or nil when tracing
// is disabled.
func InitOtelTracer(ctx context.Context, tSettings *settings.Settings) (func(context.Context) error, error) {
	if !tSettings.Tracing.Enabled {
		return nil, nil
	}

	collector := tSettings.Tracing.CollectorURL
	if collector == nil {
		return nil, errors.NewConfigurationError("no tracing collector configured")
	}

	exporterOpts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(collector.Host),
	}

	if collector.Path != "" && collector.Path != "/" {
		exporterOpts = append(exporterOpts, otlptracehttp.WithURLPath(collector.Path))
	}

	if collector.Scheme == "http" {
		exporterOpts = append(exporterOpts, otlptracehttp.WithInsecure())
	}

	exp, err := otlptracehttp.New(ctx, exporterOpts...)
	if err != nil {
		return nil, errors.NewConfigurationError("cannot create otlp trace exporter", err)
	}

	tp := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exp),
		tracesdk.WithSampler(tracesdk.ParentBased(tracesdk.TraceIDRatioBased(tSettings.Tracing.SampleRate))),
		tracesdk.WithResource(resource.NewSchemaless(
			attribute.String("service.name", tSettings.ServiceName),
			attribute.String("network", tSettings.ChainCfgParams.Name),
		)),
	)

	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
