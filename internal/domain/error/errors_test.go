package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindForStatus(t *testing.T) {
	testCases := []struct {
		status   int
		expected Kind
	}{
		{http.StatusUnauthorized, KindAuth},
		{http.StatusForbidden, KindAuth},
		{http.StatusNotFound, KindNotFound},
		{http.StatusBadRequest, KindValidation},
		{http.StatusConflict, KindValidation},
		{http.StatusInternalServerError, KindServer},
		{http.StatusBadGateway, KindServer},
	}

	for _, tc := range testCases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			if got := KindForStatus(tc.status); got != tc.expected {
				t.Errorf("KindForStatus(%d) = %s, want %s", tc.status, got, tc.expected)
			}
		})
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, 4001},
		{"BelowMinimum", ErrBelowMinimum, 4002},
		{"InsufficientBalance", ErrInsufficientBalance, 4003},
		{"RequiredField", ErrRequiredField, 4004},
		{"InvalidAddress", ErrInvalidAddress, 4006},
		{"WalletNotFound", ErrWalletNotFound, 4040},
		{"InvalidTransition", ErrInvalidTransition, 4090},
		{"UpstreamAuth", NewAPIError("GET", "/user/1", 401, ""), 4010},
		{"UpstreamNotFound", NewAPIError("GET", "/wallet/1", 404, ""), 4041},
		{"UpstreamServer", NewAPIError("GET", "/wallet/1", 500, ""), 5020},
		{"UpstreamTimeout", &APIError{Kind: KindTimeout}, 5040},
		{"SessionStore", fmt.Errorf("%w: connection refused", ErrSessionStore), 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInsufficientBalance), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestAPIError(t *testing.T) {
	err := NewAPIError("POST", "/withdraw/create", 400, "Insufficient funds")

	expected := "POST /withdraw/create failed with status 400 (validation): Insufficient funds"
	if err.Error() != expected {
		t.Errorf("APIError.Error() = %s, want %s", err.Error(), expected)
	}

	if !errors.Is(err, ErrUpstream) {
		t.Errorf("errors.Is(err, ErrUpstream) = false, want true")
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("errors.Is(err, ErrNotFound) = true, want false")
	}

	notFound := NewAPIError("GET", "/wallet/1", 404, "")
	if !IsNotFoundError(notFound) {
		t.Errorf("IsNotFoundError(404) = false, want true")
	}
	if !IsAuthError(NewAPIError("GET", "/user/1", 403, "")) {
		t.Errorf("IsAuthError(403) = false, want true")
	}

	fields := err.(*APIError).LogFields()
	if fields["status_code"] != 400 || fields["path"] != "/withdraw/create" {
		t.Errorf("unexpected log fields: %v", fields)
	}

	wrapped := &APIError{Kind: KindNetwork, Method: "GET", Path: "/setting", Err: errors.New("connection refused")}
	if wrapped.Error() != "GET /setting failed (network): connection refused" {
		t.Errorf("unexpected message: %s", wrapped.Error())
	}
}

func TestUserMessage(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, "fallback"},
		{"server message", NewAPIError("POST", "/transfer/create", 400, "Receiver not found"), "Receiver not found"},
		{"server error without message", NewAPIError("POST", "/transfer/create", 500, ""), "fallback"},
		{"validation message", NewValidationError("amount", "Minimum is 10", ErrBelowMinimum), "Minimum is 10"},
		{"wrapped validation", fmt.Errorf("transfer: %w", NewValidationError("receiverId", "Receiver is required", ErrRequiredField)), "Receiver is required"},
		{"plain error", errors.New("boom"), "fallback"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := UserMessage(tc.err, "fallback"); got != tc.expected {
				t.Errorf("UserMessage() = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("amount", "Minimum is 10", ErrBelowMinimum)

	if !errors.Is(err, ErrBelowMinimum) {
		t.Errorf("errors.Is(err, ErrBelowMinimum) = false, want true")
	}
	if !IsValidationError(err) {
		t.Errorf("IsValidationError() = false, want true")
	}
	if StatusCode(err) != 0 {
		t.Errorf("StatusCode() = %d, want 0", StatusCode(err))
	}
	if err.Error() != "validation failed for amount: Minimum is 10" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
