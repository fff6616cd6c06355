package provider

import (
	"context"
	"log/slog"
	"time"
)

// backoffBase is the exponential-backoff base for RateLimit retries.
const backoffBase = time.Second

// FallbackChain tries an ordered list of providers. On a Retryable error
// it advances to the next provider; on Auth/ModelNotFound it fails fast
// without trying the rest of the chain.
type FallbackChain struct {
	providers []Provider
	logger    *slog.Logger
}

// NewFallbackChain builds a chain in priority order.
func NewFallbackChain(providers ...Provider) *FallbackChain {
	return &FallbackChain{providers: providers, logger: slog.Default()}
}

// Generate walks the chain until one provider succeeds or every
// retryable option is exhausted.
func (f *FallbackChain) Generate(ctx context.Context, req Request) (Result, error) {
	var last error
	for i, prov := range f.providers {
		res, err := prov.Generate(ctx, req)
		if err == nil {
			return res, nil
		}

		pe := Normalize(err)
		last = pe
		f.logger.Warn("provider failed", "provider", prov.ID(), "kind", pe.Kind, "position", i)

		if !pe.Retryable() {
			return Result{}, pe
		}

		if pe.Kind == ErrorRateLimit {
			wait := pe.RetryAfter
			if wait == 0 {
				wait = backoffBase << i
			}
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return Result{}, ctx.Err()
			}
		}
	}
	return Result{}, last
}

// Stream walks the chain the same way Generate does, but for the first
// provider willing to start a stream. Once a provider's stream opens, a
// failure from it is not retried against the next provider — that would
// risk sending the caller a duplicate partial answer.
func (f *FallbackChain) Stream(ctx context.Context, req Request) (<-chan Chunk, <-chan error) {
	chunks := make(chan Chunk)
	errs := make(chan error, 1)

	go func() {
		defer close(chunks)
		defer close(errs)

		var last error
		for i, prov := range f.providers {
			src, srcErr := prov.Stream(ctx, req)

			relayed, opened := relayStream(ctx, src, srcErr, chunks)
			if opened {
				if relayed != nil {
					errs <- relayed
				}
				return
			}
			if relayed == nil {
				return
			}

			pe := Normalize(relayed)
			last = pe
			f.logger.Warn("provider stream failed to open", "provider", prov.ID(), "kind", pe.Kind, "position", i)
			if !pe.Retryable() {
				errs <- pe
				return
			}
		}
		if last != nil {
			errs <- last
		}
	}()

	return chunks, errs
}

// relayStream forwards chunks from src onto dst until src closes or ctx
// is cancelled. opened reports whether the stream ever produced any
// chunk (used by Stream to decide whether a mid-stream error is still
// eligible for a silent provider swap).
func relayStream(ctx context.Context, src <-chan Chunk, srcErr <-chan error, dst chan<- Chunk) (err error, opened bool) {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err(), opened
		case c, ok := <-src:
			if !ok {
				return nil, opened
			}
			opened = true
			select {
			case dst <- c:
			case <-ctx.Done():
				return ctx.Err(), opened
			}
			if c.Done {
				return nil, opened
			}
		case e := <-srcErr:
			if e != nil {
				return e, opened
			}
		}
	}
}
