package pubsub

import (
	"context"
	"io"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=pubsub

type Publisher interface {
	PublishNotificationRequested(ctx context.Context, ev *NotificationEvent) error
	io.Closer
}
