package main

import (
	"context"
	"medplan-service/internal/app/config"
	"medplan-service/internal/app/delivery/http/controllers"
	"medplan-service/internal/app/delivery/http/middlewares"
	"medplan-service/internal/app/delivery/http/routers"
	"medplan-service/internal/app/drivers/database"
	"medplan-service/internal/app/drivers/logger"
	"medplan-service/internal/app/drivers/messaging"
	"medplan-service/internal/app/services/core/auth"
	"medplan-service/internal/app/services/core/events"
	"medplan-service/internal/app/services/core/oncall"
	"medplan-service/internal/app/services/core/scheduling"
	"medplan-service/internal/app/services/core/staff"
	"medplan-service/internal/app/services/shared/locker"
	"medplan-service/internal/app/services/shared/notifier"
	"medplan-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitBootstrapLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Error closing application resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.New(bootstrap.Logger, bootstrap.InternalConfig)

	// Staff
	staffMongoRepository := staff.NewStaffMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Notification channels
	emailChannel, err := notifier.NewEmailChannel(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.MailQueue, staffMongoRepository)
	if err != nil {
		logrus.Fatalf("Error creating email channel: %v", err)
	}
	smsChannel, err := notifier.NewSMSChannel(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.SMSQueue)
	if err != nil {
		logrus.Fatalf("Error creating sms channel: %v", err)
	}
	inAppChannel := notifier.NewInAppChannel(redisRepository)
	dispatcher := notifier.NewNotificationDispatcher(bootstrap.Logger, emailChannel, smsChannel, inAppChannel)

	// Auth
	authUsecase := auth.NewAuthUsecase(staffMongoRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig.App.RequestTimeoutInSeconds)

	// On-call roster
	onCallService := oncall.NewOnCallService(redisRepository, bootstrap.Logger)
	onCallController := controllers.NewOnCallController(bootstrap.Logger, onCallService, bootstrap.InternalConfig.App.RequestTimeoutInSeconds)

	// Scheduling
	eventMongoRepository := events.NewEventMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	schedulingUsecase := scheduling.NewSchedulingUsecase(
		staffMongoRepository,
		eventMongoRepository,
		onCallService,
		dispatcher,
		lockService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	eventController := controllers.NewEventController(bootstrap.Logger, schedulingUsecase, bootstrap.InternalConfig.App.RequestTimeoutInSeconds)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		eventController,
		onCallController,
	)
}
