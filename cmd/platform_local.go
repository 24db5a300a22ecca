//go:build !gcloud

package main

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/config"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/infra/pubsub"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/observability"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/observability/logging"
)

func initPublisher(ctx context.Context, cfg *config.Config) (pubsub.Publisher, error) {
	if cfg.PubSub.NATSURL == "" {
		slog.Warn("NATS_URL not set, push/sms/in-app notifications are only logged")
		return nil, nil
	}

	publisher, err := pubsub.NewNATSPublisherWithStream(ctx, pubsub.NATSPublisherConfig{
		URL: cfg.PubSub.NATSURL,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("NATS publisher initialized", "url", cfg.PubSub.NATSURL)

	return publisher, nil
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    "campus-copilot-reminder",
			Version: Version,
		},
		Environment:   logging.EnvDev,
		SamplingRate:  1.0,
		LogLevel:      logging.ParseLevel(cfg.Log.Level),
		DefaultModule: logging.ModuleReminder,
	})
}
