package config

import (
	"medplan-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medplan"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "smtp_host"),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", ""),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                     utils.GetEnvString("APP_ENV", "development"),
			Port:                    utils.GetEnvString("APP_PORT", ":8080"),
			Version:                 utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                utils.GetEnvString("APP_TIMEZONE", "America/Bogota"),
			EndpointPrefix:          utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			ShutdownTimeout:         utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			MailQueue:               utils.GetEnvString("APP_RABBITMQ_MAIL_QUEUE", "medplan.mail"),
			SMSQueue:                utils.GetEnvString("APP_RABBITMQ_SMS_QUEUE", "medplan.sms"),
		},
		Quota: Quota{
			GuardMaxRollingHours: utils.GetEnvFloat("APP_GUARD_MAX_ROLLING_HOURS", 48),
			GuardMaxWeeklyCount:  utils.GetEnvInt("APP_GUARD_MAX_WEEKLY_COUNT", 3),
			LockTTLInSeconds:     utils.GetEnvInt("APP_SCHEDULE_LOCK_TTL_IN_SECONDS", 15),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
	}
}
