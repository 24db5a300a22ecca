package tracing

import (
	"context"

	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
)

type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	// SamplingRate applies to locally started root spans. Values outside
	// (0, 1) sample everything.
	SamplingRate float64
}

type Provider struct {
	tp *sdktrace.TracerProvider
}

func (p *Provider) TracerProvider() *sdktrace.TracerProvider {
	return p.tp
}

func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}

func newResource(cfg Config) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
		semconv.DeploymentEnvironmentName(cfg.Environment),
	)
}

// newSampler honors an upstream sampling decision, such as the one Cloud
// Scheduler makes for the scan job, and samples root spans by ratio.
func newSampler(rate float64) sdktrace.Sampler {
	root := sdktrace.AlwaysSample()
	if rate > 0 && rate < 1 {
		root = sdktrace.TraceIDRatioBased(rate)
	}

	return sdktrace.ParentBased(root)
}
