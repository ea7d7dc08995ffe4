package api

import (
	"log/slog"
	"net/http"
)

// ErrorKey is a type alias for string, used to reference a specific
// standardized error message in the errorMessages map.
type ErrorKey string

// These constants define unique keys for each error variant.
// You can have multiple variants under the same HTTP status code.
const (
	ErrInvalidJSON  ErrorKey = "invalid_json"
	ErrValidation   ErrorKey = "validation_failed"
	ErrInternal     ErrorKey = "internal_error"
	ErrCredentials  ErrorKey = "invalid_credentials"
	ErrAuthRequired ErrorKey = "auth_required"
	ErrAccessDenied ErrorKey = "access_denied"
	ErrNotFound     ErrorKey = "not_found"
	ErrUpstream     ErrorKey = "upstream_error"
)

// errorMessages is the centralized map of all standard error texts.
// The key is an ErrorKey constant, and the value is the message shown
// in the "error" field of the JSON response.
var errorMessages = map[ErrorKey]string{
	ErrInvalidJSON:  "invalid JSON format",
	ErrValidation:   "validation failed",
	ErrInternal:     "internal server error",
	ErrCredentials:  "invalid credentials",
	ErrAuthRequired: "authentication required",
	ErrAccessDenied: "access denied",
	ErrNotFound:     "resource not found",
	ErrUpstream:     "upstream service error",
}

// ErrorResponse represents the JSON body returned for an error.
// - Error:   short machine-readable summary of the problem
// - Details: optional human-readable explanation
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// NewError creates an ErrorResponse for a given HTTP status, error key, and details.
// It looks up the short error message from the errorMessages map using the provided key.
// If the key is not found, it falls back to "unknown error".
func NewError(status int, key ErrorKey, details string) (int, ErrorResponse) {
	msg, ok := errorMessages[key]
	if !ok {
		msg = "unknown error"
	}
	return status, ErrorResponse{
		Error:   msg,
		Details: details,
	}
}

// BadRequestInvalidJSON returns a 400 error for unparseable request bodies.
func BadRequestInvalidJSON() (int, ErrorResponse) {
	return NewError(http.StatusBadRequest, ErrInvalidJSON, "expected valid JSON object")
}

// BadRequestValidation returns a 400 error for failed validation,
// allowing optional custom details for more context.
func BadRequestValidation(details string) (int, ErrorResponse) {
	return NewError(http.StatusBadRequest, ErrValidation, details)
}

// InternalServerError returns a 500 error with a generic details message.
// Used for upstream network failures as well; internal detail never reaches
// the client.
func InternalServerError() (int, ErrorResponse) {
	return NewError(http.StatusInternalServerError, ErrInternal, "an unexpected error occurred")
}

// NotFound returns a 404 error with optional custom details.
func NotFound(details string) (int, ErrorResponse) {
	return NewError(http.StatusNotFound, ErrNotFound, details)
}

// UnauthorizedInvalidCredentials returns a 401 error indicating the external
// auth service rejected the caller. details carries the upstream message
// when one was returned.
func UnauthorizedInvalidCredentials(details string) (int, ErrorResponse) {
	if details == "" {
		details = "email or password is incorrect"
	}
	return NewError(http.StatusUnauthorized, ErrCredentials, details)
}

// ForbiddenAccessDenied returns a 403 error indicating insufficient
// permissions. The message is static; it never hints at which role would
// have been accepted.
func ForbiddenAccessDenied() (int, ErrorResponse) {
	return NewError(http.StatusForbidden, ErrAccessDenied, "insufficient permissions for this operation")
}

// ReturnError accepts a function returning (int, ErrorResponse),
// calls it, and passes the result to RespondJSONAndLog with the given writer and logger.
func ReturnError(w http.ResponseWriter, logger *slog.Logger, errorFunc func() (int, ErrorResponse)) {
	status, errResp := errorFunc()
	RespondJSONAndLog(w, logger, status, errResp)
}
