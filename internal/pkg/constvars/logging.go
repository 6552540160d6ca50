package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingStaffIDKey        = "staff_id"
	LoggingEventIDKey        = "event_id"
	LoggingEventTypeKey      = "event_type"
	LoggingChannelKey        = "channel"
	LoggingRecipientKey      = "recipient"
	LoggingDataKey           = "data"
	LoggingQueryParamsKey    = "query_params"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingResponseLengthKey = "response_length"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
)

const (
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "stored_value"
	LoggingLockExpectedValueKey  = "expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration"
)

const (
	LoggingChannelCountKey         = "channel_count"
	LoggingFailedChannelCountKey   = "failed_channel_count"
	LoggingScheduledEventsCountKey = "scheduled_events_count"
	LoggingOnCallStaffCountKey     = "oncall_staff_count"
	LoggingConflictingEventIDKey   = "conflicting_event_id"
	LoggingQuotaComputedKey        = "quota_computed"
	LoggingQuotaLimitKey           = "quota_limit"
)
