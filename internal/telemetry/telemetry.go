// Package telemetry содержит инициализацию трассировки и метрик.
package telemetry

import (
	"context"
	"errors"
	"net/http"

	"github.com/RoGogDBD/items/internal/config"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Providers содержит активные компоненты телеметрии.
type Providers struct {
	MetricsHandler http.Handler
	shutdowns      []func(context.Context) error
}

// Shutdown корректно завершает все провайдеры.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	var joined error
	for _, shutdown := range p.shutdowns {
		if err := shutdown(ctx); err != nil {
			joined = errors.Join(joined, err)
		}
	}
	return joined
}

// Init инициализирует трассировку и метрики.
func Init(ctx context.Context, cfg config.TelemetryConfig) (*Providers, error) {
	p := &Providers{}
	if !cfg.TracesEnabled && !cfg.MetricsEnabled {
		return p, nil
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			attribute.String("service.name", cfg.ServiceName),
			attribute.String("deployment.environment", cfg.Environment),
		),
	)
	if err != nil {
		return nil, err
	}

	if cfg.TracesEnabled {
		if err := p.initTraces(ctx, cfg, res); err != nil {
			return nil, err
		}
	}
	if cfg.MetricsEnabled {
		if err := p.initMetrics(res); err != nil {
			return nil, err
		}
	}

	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	return p, nil
}

func (p *Providers) initTraces(ctx context.Context, cfg config.TelemetryConfig, res *resource.Resource) error {
	options := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(cfg.OTLPEndpoint),
	}
	if cfg.OTLPInsecure {
		options = append(options, otlptracehttp.WithInsecure())
	}

	traceExporter, err := otlptracehttp.New(ctx, options...)
	if err != nil {
		return err
	}

	sampler := sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.TraceSampleRatio))
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	)
	otel.SetTracerProvider(traceProvider)
	p.shutdowns = append(p.shutdowns, traceProvider.Shutdown)
	return nil
}

func (p *Providers) initMetrics(res *resource.Resource) error {
	registry := prom.NewRegistry()
	metricExporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return err
	}

	metricProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(metricExporter),
	)
	otel.SetMeterProvider(metricProvider)
	p.MetricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	p.shutdowns = append(p.shutdowns, metricProvider.Shutdown)
	return nil
}
