package tracing

import (
	"context"
	"fmt"

	"dispatch/internal/pkg/config"
	"dispatch/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

type Controller struct {
	traceProvider *sdktrace.TracerProvider
}

// Init регистрирует глобальный TracerProvider с экспортом в Jaeger.
// Пропагатор W3C ставится всегда, чтобы контекст проходил через Kafka и HTTP
// даже при выключенном экспорте.
func Init(log logger.Logger, cfg *config.Tracing) (*Controller, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !cfg.Enabled {
		log.Info("tracing disabled")
		return &Controller{}, nil
	}

	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(
		jaeger.WithEndpoint(cfg.JaegerEndpoint),
	))
	if err != nil {
		return nil, fmt.Errorf("create jaeger exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(cfg.ServiceName),
		)),
	)
	otel.SetTracerProvider(tp)

	log.With(
		logger.NewField("endpoint", cfg.JaegerEndpoint),
		logger.NewField("service", cfg.ServiceName),
	).Info("tracing enabled")

	return &Controller{traceProvider: tp}, nil
}

// Shutdown выгружает накопленные спаны.
func (c *Controller) Shutdown(ctx context.Context) error {
	if c.traceProvider == nil {
		return nil
	}
	return c.traceProvider.Shutdown(ctx)
}
