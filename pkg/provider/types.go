// Package provider implements the Provider Adapter: a uniform
// generate/stream surface over pluggable LLM backends, with a health-gated
// pool, a fallback chain, and a tiered router.
package provider

import (
	"context"
	"time"
)

// ErrorKind is the normalized provider error taxonomy.
type ErrorKind string

const (
	ErrorRateLimit      ErrorKind = "rate_limit"
	ErrorAuth           ErrorKind = "auth"
	ErrorModelNotFound  ErrorKind = "model_not_found"
	ErrorContentFiltered ErrorKind = "content_filtered"
	ErrorContextLength  ErrorKind = "context_length"
	ErrorGeneric        ErrorKind = "generic"
)

// Error is the normalized error shape every Provider returns. RetryAfter
// is only meaningful when Kind == ErrorRateLimit.
type Error struct {
	Kind       ErrorKind
	Message    string
	RetryAfter time.Duration
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Retryable reports whether the fallback chain should try the next
// provider on this error: Generic/RateLimit retry elsewhere,
// Auth/ModelNotFound fail fast.
func (e *Error) Retryable() bool {
	return e.Kind == ErrorGeneric || e.Kind == ErrorRateLimit
}

// Request is a single generation request.
type Request struct {
	Prompt  string
	Context map[string]any
	Tier    string // explicit routing hint, e.g. "fast", "deep"
}

// Result is a completed (non-streamed) generation.
type Result struct {
	Text       string
	TokensUsed int
	Provider   string
}

// Chunk is one piece of a streamed generation. Every chunk is
// independently filterable by the pipeline's axiom checks.
type Chunk struct {
	Text string
	Done bool
}

// Provider is the uniform surface every backend implements. Providers are
// stateless: no hidden memory between calls.
type Provider interface {
	ID() string
	Generate(ctx context.Context, req Request) (Result, error)
	Stream(ctx context.Context, req Request) (<-chan Chunk, <-chan error)
}
