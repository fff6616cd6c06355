package provider

import (
	"context"
	"errors"
	"time"
)

// Normalize maps an arbitrary backend error into the fixed taxonomy. err
// is returned unchanged if it is already a *Error.
func Normalize(err error) *Error {
	if err == nil {
		return nil
	}
	var pe *Error
	if errors.As(err, &pe) {
		return pe
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: ErrorGeneric, Message: "request deadline exceeded", Cause: err}
	}
	return &Error{Kind: ErrorGeneric, Message: "unclassified provider error", Cause: err}
}

// NewRateLimit builds a rate-limit error carrying the backend's
// retry-after hint, defaulting to zero (caller applies its own backoff).
func NewRateLimit(retryAfter time.Duration, cause error) *Error {
	return &Error{Kind: ErrorRateLimit, Message: "rate limited", RetryAfter: retryAfter, Cause: cause}
}

// NewAuth builds an auth error. Never retried against the same provider.
func NewAuth(cause error) *Error {
	return &Error{Kind: ErrorAuth, Message: "authentication failed", Cause: cause}
}

// NewModelNotFound builds a model-not-found error. Never retried against
// the same provider.
func NewModelNotFound(model string, cause error) *Error {
	return &Error{Kind: ErrorModelNotFound, Message: "model not found: " + model, Cause: cause}
}
