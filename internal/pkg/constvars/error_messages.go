package constvars

// Client-facing messages.
const (
	ErrClientSomethingWrongWithApplication = "Something is wrong with the application, please contact admin!"
	ErrClientCannotProcessRequest          = "Cannot process request, please try again!"
	ErrClientInvalidUsernameOrPassword     = "Invalid username or password. Please try again."
	ErrClientNotAuthorizedAdminOnly        = "You are not authorized to access the admin portal. Please use an administrator account."
	ErrClientNotLoggedIn                   = "Your session has expired, please sign in again."
	ErrClientTokenMissingInLogin           = "Login successful but token is missing from response."
	ErrClientFeatureUnavailable            = "This feature is not supported by the connected backend."
	ErrClientPasswordsDoNotMatch           = "New passwords do not match."
	ErrClientPasswordTooShort              = "Password must be at least 8 characters."
	ErrClientPasswordFieldsRequired        = "All password fields are required."
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again!"
)

// Developer-facing messages.
const (
	ErrDevCannotParseJSON       = "Failed to parse JSON body"
	ErrDevCannotMarshalJSON     = "Failed to marshal value to JSON"
	ErrDevValidationFailed      = "Request validation failed"
	ErrDevCreateHTTPRequest     = "Failed to create HTTP request"
	ErrDevSendHTTPRequest       = "Failed to send HTTP request"
	ErrDevReadResponseBody      = "Failed to read upstream response body"
	ErrDevDecodeResponse        = "Failed to decode upstream response for resource: %s"
	ErrDevUpstreamStatus        = "Upstream returned status %d for %s"
	ErrDevUpstreamUnauthorized  = "Upstream rejected the session token (401)"
	ErrDevAuthLoginRejected     = "Upstream login reported failure"
	ErrDevAuthRoleNotAllowed    = "Resolved role %q is not permitted in the admin console"
	ErrDevAuthTokenMissing      = "Login envelope carried no token"
	ErrDevFeatureUnavailable    = "Endpoint %s is not implemented by this deployment"
	ErrDevSessionSave           = "Failed to persist session"
	ErrDevSessionClear          = "Failed to clear session"
	ErrDevRedisSetData          = "Failed to set data to redis"
	ErrDevRedisGetData          = "Failed to get data from redis"
	ErrDevRedisDeleteData       = "Failed to delete data from redis"
	ErrDevServerDeadlineExceed  = "Server deadline exceeded"
	ErrDevPasswordsDoNotMatch   = "Password confirmation does not match"
	ErrDevPasswordTooShort      = "New password shorter than 8 characters"
	ErrDevPasswordFieldsMissing = "One or more password fields empty"
)
