package contracts

import (
	"context"
	"medplan-service/internal/app/models"
)

// Channel is a single notification delivery mechanism. Implementations
// own their retry policy; the dispatcher never retries.
type Channel interface {
	Name() string
	Send(ctx context.Context, recipient, message string) error
}

// NotificationDispatcher fans a request out to every requested channel
// independently. One channel failing never blocks another.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, request *models.NotificationRequest) *models.DispatchReport
}
