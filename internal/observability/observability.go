package observability

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/observability/logging"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/observability/metrics"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/observability/tracing"
)

const meterName = "github.com/KasumiMercury/campus-copilot-reminder"

type Config struct {
	ServiceInfo   logging.ServiceInfo
	Environment   logging.Environment
	GCPProjectID  string
	SamplingRate  float64
	LogLevel      slog.Level
	DefaultModule logging.Module
}

// Resources owns the process-wide telemetry providers.
type Resources struct {
	Logger   *slog.Logger
	tracing  *tracing.Provider
	metrics  *metrics.Provider
	httpMet  *metrics.HTTPMetrics
	scanMet  *metrics.ScanMetrics
	shutdown []func(context.Context) error
}

// Init installs the slog default logger and the global otel providers.
func Init(ctx context.Context, cfg Config) (*Resources, error) {
	logger := slog.New(logging.NewHandler(os.Stdout, logging.HandlerConfig{
		Level:         cfg.LogLevel,
		Service:       cfg.ServiceInfo,
		Environment:   cfg.Environment,
		GCPProjectID:  cfg.GCPProjectID,
		DefaultModule: cfg.DefaultModule,
	}))
	slog.SetDefault(logger)

	samplingRate := cfg.SamplingRate
	if samplingRate <= 0 {
		samplingRate = 1.0
	}

	tp, err := tracing.NewProvider(ctx, tracing.Config{
		ServiceName:    cfg.ServiceInfo.Name,
		ServiceVersion: cfg.ServiceInfo.Version,
		Environment:    string(cfg.Environment),
		SamplingRate:   samplingRate,
	})
	if err != nil {
		return nil, err
	}

	mp, err := metrics.NewProvider(ctx, metrics.Config{
		ServiceName:    cfg.ServiceInfo.Name,
		ServiceVersion: cfg.ServiceInfo.Version,
		Environment:    string(cfg.Environment),
	})
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}

	otel.SetTracerProvider(tp.TracerProvider())
	otel.SetMeterProvider(mp.MeterProvider())
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	meter := mp.MeterProvider().Meter(meterName)

	httpMet, err := metrics.NewHTTPMetrics(meter)
	if err != nil {
		return nil, err
	}

	scanMet, err := metrics.NewScanMetrics(meter)
	if err != nil {
		return nil, err
	}

	slog.Info("observability initialized",
		slog.String("event", "observability.init"),
		slog.String("service", cfg.ServiceInfo.Name),
		slog.String("env", string(cfg.Environment)),
	)

	return &Resources{
		Logger:   logger,
		tracing:  tp,
		metrics:  mp,
		httpMet:  httpMet,
		scanMet:  scanMet,
		shutdown: []func(context.Context) error{mp.Shutdown, tp.Shutdown},
	}, nil
}

func (r *Resources) HTTPMetrics() *metrics.HTTPMetrics {
	return r.httpMet
}

func (r *Resources) ScanMetrics() *metrics.ScanMetrics {
	return r.scanMet
}

func (r *Resources) Meter(name string) metric.Meter {
	return r.metrics.MeterProvider().Meter(name)
}

// Shutdown flushes metrics before spans.
func (r *Resources) Shutdown(ctx context.Context) error {
	var errs []error

	for _, fn := range r.shutdown {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
