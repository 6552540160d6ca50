package notifier

import (
	"context"
	"medplan-service/internal/app/contracts"
	"medplan-service/internal/pkg/constvars"
	"medplan-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

// EmailPayload is consumed by the separate mail worker reading the queue.
// To carries a deliverable address; the channel resolves it from the
// recipient staff id before publishing.
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type queuePublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type emailChannel struct {
	Publisher       queuePublisher
	Queue           string
	Subject         string
	StaffRepository contracts.StaffRepository
}

func NewEmailChannel(rabbitMQConnection *amqp091.Connection, queue string, staffRepository contracts.StaffRepository) (contracts.Channel, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	return &emailChannel{
		Publisher:       channel,
		Queue:           queue,
		Subject:         "Medical event notification",
		StaffRepository: staffRepository,
	}, nil
}

func (c *emailChannel) Name() string {
	return constvars.NotificationChannelEmail
}

func (c *emailChannel) Send(ctx context.Context, recipient, message string) error {
	staffMember, err := c.StaffRepository.FindByID(ctx, recipient)
	if err != nil {
		return err
	}
	if staffMember == nil {
		return exceptions.ErrStaffNotFound(nil)
	}

	body, err := json.Marshal(&EmailPayload{
		To:      staffMember.Email,
		Subject: c.Subject,
		Body:    message,
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

	err = c.Publisher.PublishWithContext(ctx, "", c.Queue, false, false, publishing)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}
	return nil
}
