//go:build gcloud

package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-googlecloud/pkg/googlecloud"
	"github.com/ThreeDotsLabs/watermill/message"
)

type GCloudPublisher struct {
	publisher message.Publisher
	logger    watermill.LoggerAdapter
}

type GCloudPublisherConfig struct {
	ProjectID string
}

func NewGCloudPublisher(_ context.Context, cfg GCloudPublisherConfig) (*GCloudPublisher, error) {
	logger := watermill.NewSlogLogger(slog.Default())

	publisher, err := googlecloud.NewPublisher(
		googlecloud.PublisherConfig{
			ProjectID: cfg.ProjectID,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Cloud publisher: %w", err)
	}

	return &GCloudPublisher{
		publisher: publisher,
		logger:    logger,
	}, nil
}

func (p *GCloudPublisher) PublishNotificationRequested(ctx context.Context, ev *NotificationEvent) error {
	return publish(ctx, p.publisher, ev)
}

func (p *GCloudPublisher) Close() error {
	return p.publisher.Close()
}
