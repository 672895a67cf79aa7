package exceptions

import (
	"fmt"
	"healthapp-admin/internal/pkg/constvars"
)

var (
	ErrCannotParseJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrInputValidation = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevValidationFailed)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceed)
	}

	// HTTP transport
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadResponseBody = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, constvars.ErrDevReadResponseBody)
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}
	ErrUpstreamStatus = func(statusCode int, resource string) *CustomError {
		return WrapWithoutError(statusCode, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUpstreamStatus, statusCode, resource))
	}
	ErrUpstreamUnauthorized = func() *CustomError {
		return WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevUpstreamUnauthorized)
	}

	// Auth
	ErrAuthLoginRejected = func(message string) *CustomError {
		if message == "" {
			message = constvars.ErrClientInvalidUsernameOrPassword
		}
		return WrapWithoutError(constvars.StatusUnauthorized, message, constvars.ErrDevAuthLoginRejected)
	}
	ErrAuthRoleNotAllowed = func(role string) *CustomError {
		return WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorizedAdminOnly, fmt.Sprintf(constvars.ErrDevAuthRoleNotAllowed, role))
	}
	ErrAuthTokenMissing = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadGateway, constvars.ErrClientTokenMissingInLogin, constvars.ErrDevAuthTokenMissing)
	}
	ErrFeatureUnavailable = func(endpoint string) *CustomError {
		return WrapWithoutError(constvars.StatusNotImplemented, constvars.ErrClientFeatureUnavailable, fmt.Sprintf(constvars.ErrDevFeatureUnavailable, endpoint))
	}

	// Client-side validation, checked before any network call.
	ErrPasswordFieldsRequired = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientPasswordFieldsRequired, constvars.ErrDevPasswordFieldsMissing)
	}
	ErrPasswordsDoNotMatch = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientPasswordsDoNotMatch, constvars.ErrDevPasswordsDoNotMatch)
	}
	ErrPasswordTooShort = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientPasswordTooShort, constvars.ErrDevPasswordTooShort)
	}

	// Session store
	ErrSessionSave = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionSave)
	}
	ErrSessionClear = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionClear)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisGet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
)
