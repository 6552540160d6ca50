package config

type (
	InternalConfig struct {
		App   App
		JWT   JWT
		Quota Quota
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		SMTP     SMTP
		Logger   Logger
	}

	App struct {
		Env                     string
		Port                    string
		Version                 string
		Timezone                string
		EndpointPrefix          string
		ShutdownTimeout         int
		RequestTimeoutInSeconds int
		MailQueue               string
		SMSQueue                string
	}

	// Quota holds the guard-shift limits enforced by the conflict checker.
	// Injected, not hardcoded: per-role thresholds are still an open
	// product question.
	Quota struct {
		GuardMaxRollingHours float64
		GuardMaxWeeklyCount  int
		LockTTLInSeconds     int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
