package main

import (
	"medplan-service/internal/app/config"
	"medplan-service/internal/app/drivers/logger"
	"medplan-service/internal/app/drivers/mailer"
	"medplan-service/internal/app/drivers/messaging"
	"medplan-service/internal/app/services/shared/notifier"
	"medplan-service/internal/pkg/constvars"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// The mail worker drains the email queue filled by the notification
// dispatcher and hands each payload to the SMTP relay. Failed sends are
// dropped after logging, matching the queue's requeue strategy.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitBootstrapLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	smtpClient := mailer.NewSMTPClient(driverConfig)

	channel, err := rabbitMQ.Channel()
	if err != nil {
		logrus.Fatalf("Error opening channel: %v", err)
	}

	queue, err := channel.QueueDeclare(internalConfig.App.MailQueue, true, false, false, false, nil)
	if err != nil {
		logrus.Fatalf("Error declaring queue: %v", err)
	}

	deliveries, err := channel.Consume(queue.Name, "", false, false, false, false, nil)
	if err != nil {
		logrus.Fatalf("Error registering consumer: %v", err)
	}

	go func() {
		for delivery := range deliveries {
			payload := new(notifier.EmailPayload)
			if err := json.Unmarshal(delivery.Body, payload); err != nil {
				zapLogger.Error("mailworker cannot decode payload", zap.Error(err))
				delivery.Nack(false, false)
				continue
			}

			if err := smtpClient.SendEmail(payload.To, payload.Subject, payload.Body); err != nil {
				zapLogger.Error("mailworker failed to send email",
					zap.String(constvars.LoggingRecipientKey, payload.To),
					zap.Error(err),
				)
				delivery.Nack(false, false)
				continue
			}

			zapLogger.Info("mailworker email sent",
				zap.String(constvars.LoggingRecipientKey, payload.To),
			)
			delivery.Ack(false)
		}
	}()

	logrus.Printf("Mail worker consuming queue %s", queue.Name)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	if err := channel.Close(); err != nil {
		logrus.Fatalf("Error closing channel: %v", err)
	}
	if err := rabbitMQ.Close(); err != nil {
		logrus.Fatalf("Error closing connection: %v", err)
	}

	logrus.Println("Mail worker exiting")
}
