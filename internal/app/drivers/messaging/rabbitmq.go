package messaging

import (
	"fmt"
	"log"
	"medplan-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)

	// the connection name shows up in the management UI, which is how we
	// tell the API publisher apart from the mail worker
	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName("medplan-service")

	conn, err := amqp091.DialConfig(connectionString, amqp091.Config{
		Properties: properties,
	})
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}
