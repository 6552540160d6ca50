package notifier

import (
	"context"
	"medplan-service/internal/app/contracts"
	"medplan-service/internal/pkg/constvars"
	"medplan-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type SMSPayload struct {
	PhoneOrStaffID string `json:"phone_or_staff_id"`
	Message        string `json:"message"`
}

type smsChannel struct {
	Channel *amqp091.Channel
	Queue   string
}

func NewSMSChannel(rabbitMQConnection *amqp091.Connection, queue string) (contracts.Channel, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	return &smsChannel{
		Channel: channel,
		Queue:   queue,
	}, nil
}

func (c *smsChannel) Name() string {
	return constvars.NotificationChannelSMS
}

func (c *smsChannel) Send(ctx context.Context, recipient, message string) error {
	body, err := json.Marshal(&SMSPayload{
		PhoneOrStaffID: recipient,
		Message:        message,
	})
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	publishing := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
		},
	}

	err = c.Channel.PublishWithContext(ctx, "", c.Queue, false, false, publishing)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}
	return nil
}
