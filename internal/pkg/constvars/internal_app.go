package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "isClientRequestID"
	CONTEXT_STAFF_ID_KEY             ContextKey = "staffID"
	CONTEXT_STAFF_ROLE_KEY           ContextKey = "staffRole"
)

const (
	MongoCollectionStaff  = "staff"
	MongoCollectionEvents = "medical_events"
)

const (
	RedisKeyScheduleLockFormat = "schedule-lock:%s"
	RedisKeyOnCallStaffSet     = "oncall:staff"
	RedisKeyInAppInboxFormat   = "inbox:%s"
)

const (
	NotificationChannelEmail = "email"
	NotificationChannelInApp = "inapp"
	NotificationChannelSMS   = "sms"
)
