package constvars

// Validation messages, mapped by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of %s",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"

	ErrClientStaffNotFound         = "staff member not found"
	ErrClientStaffInactive         = "staff member is not active"
	ErrClientScheduleConflict      = "the requested time window overlaps an existing commitment"
	ErrClientGuardHoursExceeded    = "weekly guard-shift hours limit exceeded"
	ErrClientGuardCountExceeded    = "weekly guard-shift count limit exceeded"
	ErrClientEventNotFound         = "event not found"
	ErrClientEventAlreadyCancelled = "event is already cancelled"
	ErrClientEndBeforeStart        = "event end must be after its start"
	ErrClientDescriptionRequired   = "a description is required for this event type"
	ErrClientGuardRequiresMedical  = "guard shifts can only be assigned to physicians or residents"
)

// Error messages for developers
const (
	ErrDevInvalidInput          = "invalid input"
	ErrDevCannotParseJSON       = "cannot parse JSON"
	ErrDevValidationFailed      = "validation failed"
	ErrDevInvalidRequestPayload = "invalid request payload"
	ErrDevMissingRequestID      = "request id missing from context"
	ErrDevCannotParseTime       = "cannot parse time value"

	ErrDevStaffNotFound         = "staff member not found"
	ErrDevStaffInactive         = "staff member inactive"
	ErrDevScheduleConflict      = "schedule window conflict"
	ErrDevGuardRequiresMedical  = "guard shift assigned to a non-medical role"
	ErrDevGuardHoursExceeded    = "rolling 7-day guard hours quota exceeded"
	ErrDevGuardCountExceeded    = "iso-week guard count quota exceeded"
	ErrDevEventNotFound         = "event not found"
	ErrDevEventAlreadyCancelled = "event already cancelled"
	ErrDevLockNotAcquired       = "per-staff schedule lock not acquired"

	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevInvalidCredentials   = "invalid credentials"
	ErrDevAuthSigningMethod    = "unexpected signing method"
	ErrDevAuthTokenInvalid     = "invalid token"
	ErrDevAuthTokenMissing     = "token missing"
	ErrDevAuthGenerateToken    = "failed to generate token"
	ErrDevAuthInsufficientRole = "staff role not allowed for this endpoint"

	// Mongo DB
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBStringNotObjectID        = "string is not a valid object id"

	// Redis
	ErrDevRedisSet       = "failed to set value to redis"
	ErrDevRedisGet       = "failed to get value from redis with key: %s"
	ErrDevRedisDelete    = "failed to delete value from redis"
	ErrDevRedisSetNX     = "failed to setnx value to redis"
	ErrDevRedisPush      = "failed to push value to redis list"
	ErrDevRedisSetMember = "failed to mutate redis set"
	ErrDevRedisUnlock    = "failed to release redis lock"
	ErrDevRedisRefresh   = "failed to refresh redis lock ttl"

	// RabbitMQ
	ErrDevRabbitMQPublish = "failed to publish message to queue"

	ErrDevServerDeadlineExceeded = "server deadline exceeded"
)

const ResponseUnknown = "unknown"
