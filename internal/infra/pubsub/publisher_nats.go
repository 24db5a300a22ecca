//go:build !gcloud

package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const streamName = "REMINDER_NOTIFICATIONS"

type NATSPublisher struct {
	publisher message.Publisher
	logger    watermill.LoggerAdapter
}

type NATSPublisherConfig struct {
	URL string
}

func natsPublisherConfig(url string, autoProvision bool) nats.PublisherConfig {
	return nats.PublisherConfig{
		URL:         url,
		NatsOptions: []nc.Option{nc.Timeout(10 * time.Second)},
		JetStream: nats.JetStreamConfig{
			Disabled:      false,
			AutoProvision: autoProvision,
		},
		Marshaler: &nats.NATSMarshaler{},
	}
}

func NewNATSPublisher(cfg NATSPublisherConfig) (*NATSPublisher, error) {
	logger := watermill.NewSlogLogger(slog.Default())

	publisher, err := nats.NewPublisher(natsPublisherConfig(cfg.URL, true), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	return &NATSPublisher{
		publisher: publisher,
		logger:    logger,
	}, nil
}

// NewNATSPublisherWithStream provisions one JetStream stream covering every
// notification channel subject before creating the publisher.
func NewNATSPublisherWithStream(ctx context.Context, cfg NATSPublisherConfig) (*NATSPublisher, error) {
	logger := watermill.NewSlogLogger(slog.Default())

	conn, err := nc.Connect(cfg.URL, nc.Timeout(10*time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	defer conn.Close()

	js, err := jetstream.New(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        streamName,
		Description: "Reminder notifications awaiting delivery",
		Subjects:    []string{TopicNotificationAll},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      24 * time.Hour,
		MaxBytes:    100 * 1024 * 1024,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create stream: %w", err)
	}

	slog.Info("NATS JetStream stream configured",
		slog.String("stream", streamName),
		slog.String("subjects", TopicNotificationAll),
	)

	publisher, err := nats.NewPublisher(natsPublisherConfig(cfg.URL, false), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	return &NATSPublisher{
		publisher: publisher,
		logger:    logger,
	}, nil
}

func (p *NATSPublisher) PublishNotificationRequested(ctx context.Context, ev *NotificationEvent) error {
	return publish(ctx, p.publisher, ev)
}

func (p *NATSPublisher) Close() error {
	return p.publisher.Close()
}
