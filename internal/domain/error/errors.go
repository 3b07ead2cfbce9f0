package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized page and log output
const (
	// 4xxx - Client errors
	CodeInvalidAmount       = 4001
	CodeBelowMinimum        = 4002
	CodeInsufficientBalance = 4003
	CodeRequiredField       = 4004
	CodePasswordMismatch    = 4005
	CodeInvalidAddress      = 4006
	CodeUnauthenticated     = 4010
	CodeWalletNotFound      = 4040
	CodeNotFound            = 4041
	CodeInvalidTransition   = 4090
	CodeRateLimited         = 4290

	// 5xxx - Server errors
	CodeInternalServer    = 5000
	CodeUpstream          = 5020
	CodeMalformedResponse = 5021
	CodeSessionStore      = 5030
	CodeUpstreamTimeout   = 5040
)

// Base error types
var (
	// ErrInvalidAmount is returned when an amount does not parse as a positive decimal
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrBelowMinimum is returned when an amount is below the configured minimum
	ErrBelowMinimum = errors.New("amount is below the minimum")

	// ErrAboveMaximum is returned when an amount exceeds a plan maximum
	ErrAboveMaximum = errors.New("amount is above the maximum")

	// ErrInsufficientBalance is returned when an amount exceeds the available balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrRequiredField is returned when a mandatory form field is empty
	ErrRequiredField = errors.New("required field is missing")

	// ErrPasswordMismatch is returned when password and confirmation differ
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrPasswordTooShort is returned when the password is shorter than the minimum length
	ErrPasswordTooShort = errors.New("password is too short")

	// ErrInvalidAddress is returned when a wallet address does not match the network format
	ErrInvalidAddress = errors.New("invalid wallet address")

	// ErrUnauthenticated is returned when an operation needs a session token and none is present
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrWalletNotFound is returned when the user has not created a wallet yet
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrNotFound is returned when a generic upstream resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrSessionNotFound is returned when a session ID has no stored session
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidTransition is returned when the investment flow cannot move to the requested state
	ErrInvalidTransition = errors.New("invalid investment flow transition")

	// ErrMalformedResponse is returned when an upstream payload fails schema validation
	ErrMalformedResponse = errors.New("malformed upstream response")

	// ErrUpstream is returned for upstream failures that carry no better classification
	ErrUpstream = errors.New("upstream request failed")

	// ErrRateLimited is returned when a client submits forms too quickly
	ErrRateLimited = errors.New("too many requests")

	// ErrSessionStore is returned when the session store cannot be reached
	ErrSessionStore = errors.New("session store unavailable")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// Kind classifies upstream failures by transport-level outcome
type Kind string

const (
	KindNetwork    Kind = "network"
	KindTimeout    Kind = "timeout"
	KindAuth       Kind = "auth"
	KindNotFound   Kind = "not_found"
	KindValidation Kind = "validation"
	KindServer     Kind = "server"
	KindMalformed  Kind = "malformed"
)

// KindForStatus maps an HTTP status code onto an error kind
func KindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindServer
	}
}

// APIError describes a failed call to the platform API
type APIError struct {
	Kind       Kind
	StatusCode int
	Method     string
	Path       string
	// Message is the server-supplied message, empty when the payload had none
	Message string
	Err     error
}

// Error implements the error interface for APIError
func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s failed with status %d (%s): %s", e.Method, e.Path, e.StatusCode, e.Kind, e.detail())
	}
	return fmt.Sprintf("%s %s failed (%s): %s", e.Method, e.Path, e.Kind, e.detail())
}

func (e *APIError) detail() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "no details"
}

// Unwrap returns the underlying error
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match API errors against the sentinel for their kind
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrUnauthenticated:
		return e.Kind == KindAuth
	case ErrMalformedResponse:
		return e.Kind == KindMalformed
	case ErrUpstream:
		return true
	}
	return false
}

// LogFields returns a map of fields for structured logging
func (e *APIError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type":  "api_error",
		"kind":        string(e.Kind),
		"status_code": e.StatusCode,
		"method":      e.Method,
		"path":        e.Path,
		"message":     e.Message,
		"error_code":  ErrorCode(e),
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewAPIError creates an API error for a non-2xx response
func NewAPIError(method, path string, status int, message string) error {
	return &APIError{
		Kind:       KindForStatus(status),
		StatusCode: status,
		Method:     method,
		Path:       path,
		Message:    message,
	}
}

// ValidationError is a client-side form rejection tied to one field
type ValidationError struct {
	Field string
	// Message is what the page shows to the user
	Message string
	Err     error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"message":    e.Message,
		"error_code": ErrorCode(e.Err),
	}
}

// NewValidationError creates a field validation error
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case KindAuth:
			return CodeUnauthenticated
		case KindNotFound:
			return CodeNotFound
		case KindTimeout:
			return CodeUpstreamTimeout
		case KindMalformed:
			return CodeMalformedResponse
		default:
			return CodeUpstream
		}
	}

	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrBelowMinimum), errors.Is(err, ErrAboveMaximum):
		return CodeBelowMinimum
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrRequiredField):
		return CodeRequiredField
	case errors.Is(err, ErrPasswordMismatch), errors.Is(err, ErrPasswordTooShort):
		return CodePasswordMismatch
	case errors.Is(err, ErrInvalidAddress):
		return CodeInvalidAddress
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrWalletNotFound):
		return CodeWalletNotFound
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrSessionNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidTransition):
		return CodeInvalidTransition
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	case errors.Is(err, ErrMalformedResponse):
		return CodeMalformedResponse
	case errors.Is(err, ErrSessionStore):
		return CodeSessionStore
	default:
		return CodeInternalServer
	}
}

// UserMessage picks the text shown to the user for err.
// Validation messages and server-supplied messages win over the fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) && validationErr.Message != "" {
		return validationErr.Message
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return fallback
}

// StatusCode returns the upstream HTTP status of err, or 0 when it did not come from the API
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsValidationError checks if the error is a client-side form rejection
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrWalletNotFound) ||
		errors.Is(err, ErrSessionNotFound)
}

// IsAuthError checks if the upstream rejected the session token
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindAuth
}
