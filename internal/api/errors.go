package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/askr-api/internal/api/middleware"
	"github.com/phrazzld/askr-api/internal/api/shared"
	"github.com/phrazzld/askr-api/internal/domain"
	"github.com/phrazzld/askr-api/internal/service"
	"github.com/phrazzld/askr-api/internal/service/auth"
	"github.com/phrazzld/askr-api/internal/store"
)

// ErrInvalidRequestBody is returned when a request body is not valid JSON
// for the expected payload.
var ErrInvalidRequestBody = errors.New("invalid request body")

// User-facing messages
const (
	msgEmailExists        = "User already exists."
	msgInvalidCredentials = "User credentials do not match."
	msgUnauthorized       = "Unauthorized"
	msgInvalidRequest     = "Invalid request format"
	msgValidationFailed   = "Validation failed"
	msgInvalidID          = "Invalid ID"
	msgUnexpected         = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	// Authentication errors
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, middleware.ErrAuthenticationRequired),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, ErrInvalidRequestBody),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpected
	}

	var (
		validationErrs validator.ValidationErrors
		fieldErr       *domain.ValidationError
	)

	switch {
	case errors.Is(err, store.ErrEmailExists):
		return msgEmailExists

	case errors.Is(err, service.ErrInvalidCredentials):
		return msgInvalidCredentials

	case errors.Is(err, middleware.ErrAuthenticationRequired),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, domain.ErrUnauthorized):
		return msgUnauthorized

	case errors.Is(err, ErrInvalidRequestBody):
		return msgInvalidRequest

	case errors.As(err, &validationErrs):
		return SanitizeValidationError(err)

	case errors.As(err, &fieldErr):
		return fmt.Sprintf("Invalid %s: %s", fieldErr.Field, fieldErr.Message)

	case errors.Is(err, domain.ErrInvalidID):
		return msgInvalidID

	case errors.Is(err, domain.ErrValidation):
		return msgValidationFailed

	default:
		return msgUnexpected
	}
}

// SanitizeValidationError turns validator output into a message naming the
// first failing field and the rule it broke, without echoing its value.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return msgValidationFailed
	}

	fe := validationErrs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the error response for err. For server errors the
// response carries defaultMsg when one is given; the underlying error is
// only logged after redaction.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		message = defaultMsg
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
