package notifier

import (
	"context"
	"fmt"
	"medplan-service/internal/app/contracts"
	"medplan-service/internal/pkg/constvars"
	"medplan-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type InAppPayload struct {
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// inAppChannel appends notifications to a per-recipient redis inbox list
// that the application frontend drains.
type inAppChannel struct {
	RedisRepository contracts.RedisRepository
}

func NewInAppChannel(redisRepository contracts.RedisRepository) contracts.Channel {
	return &inAppChannel{RedisRepository: redisRepository}
}

func (c *inAppChannel) Name() string {
	return constvars.NotificationChannelInApp
}

func (c *inAppChannel) Send(ctx context.Context, recipient, message string) error {
	payload, err := json.Marshal(&InAppPayload{
		Message:   message,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	key := fmt.Sprintf(constvars.RedisKeyInAppInboxFormat, recipient)
	return c.RedisRepository.PushToList(ctx, key, payload)
}
