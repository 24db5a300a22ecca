//go:build !gcloud

package tracing

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewProvider creates a TracerProvider without an exporter. Spans still
// carry IDs, so logs and outgoing messages stay correlated.
func NewProvider(_ context.Context, cfg Config) (*Provider, error) {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(newResource(cfg)),
		sdktrace.WithSampler(newSampler(cfg.SamplingRate)),
	)

	return &Provider{tp: tp}, nil
}
