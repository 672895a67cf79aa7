package constvars

const (
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingQueryKey      = "query"
	LoggingSuccessKey    = "success"
	LoggingResourceKey   = "resource"
	LoggingCountKey      = "count"
	LoggingUsernameKey   = "username"
	LoggingRoleKey       = "role"
	LoggingPageKey       = "page"
	LoggingSearchKey     = "search"
	LoggingGenerationKey = "generation"
)
