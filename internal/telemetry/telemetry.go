// Package telemetry builds the OpenTelemetry providers shared by the HTTP
// server, the home service and the media server client.
package telemetry

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"jellyfront/internal/config"
)

// Options configures trace export.
type Options struct {
	// ServiceName is reported as the service.name resource attribute.
	ServiceName string
	// Endpoint is the OTLP/HTTP collector URL. Spans are recorded but not
	// exported when empty.
	Endpoint string
	// SampleRatio is the fraction of root traces that are sampled.
	SampleRatio float64
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
	}
}

// NewTracerProvider builds an SDK tracer provider and installs it, together
// with the W3C trace context propagator, as the global one. The caller owns
// the provider and must shut it down to flush pending spans.
func NewTracerProvider(ctx context.Context, opts Options) (*sdktrace.TracerProvider, error) {
	name := opts.ServiceName
	if name == "" {
		name = "jellyfront"
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(name),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create otel resource: %w", err)
	}

	tpOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(opts.SampleRatio))),
	}
	if opts.Endpoint != "" {
		exporter, err := otlptracehttp.New(ctx,
			otlptracehttp.WithEndpointURL(opts.Endpoint),
		)
		if err != nil {
			return nil, fmt.Errorf("could not create otlp trace exporter: %w", err)
		}
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(tpOpts...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp, nil
}

// NewMeterProvider builds a meter provider whose instruments are exported
// through registerer. Nil means prometheus.DefaultRegisterer.
func NewMeterProvider(registerer prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}
