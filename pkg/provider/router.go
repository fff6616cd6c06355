package provider

import (
	"context"
	"strings"
)

// Tier names the routing targets a TieredRouter dispatches between.
type Tier string

const (
	TierFast Tier = "fast"
	TierDeep Tier = "deep"
)

// deepKeywords are prompt markers that bias routing toward the deep tier
// even without an explicit hint.
var deepKeywords = []string{"analyze", "compare", "why", "explain in depth", "reconsider"}

// longPromptThreshold is the word count above which a prompt routes to
// the deep tier absent an explicit tier hint.
const longPromptThreshold = 120

// TieredRouter dispatches a request to one of a fixed set of tiers, by
// explicit hint or by a length/keyword heuristic over the prompt.
type TieredRouter struct {
	tiers map[Tier]Generator
}

// Generator is anything that can service a Request — a *Pool, a
// *FallbackChain, or a bare Provider.
type Generator interface {
	Generate(ctx context.Context, req Request) (Result, error)
}

// StreamGenerator is the streaming counterpart of Generator. *Pool,
// *FallbackChain, and *TieredRouter all satisfy it; a bare Provider does
// too, since Generator and StreamGenerator compose with Provider's own
// method set.
type StreamGenerator interface {
	Stream(ctx context.Context, req Request) (<-chan Chunk, <-chan error)
}

// NewTieredRouter builds a router over the given tier -> generator map.
func NewTieredRouter(tiers map[Tier]Generator) *TieredRouter {
	return &TieredRouter{tiers: tiers}
}

// Route picks a tier for req: req.Tier if set and known, else the
// length/keyword heuristic, else TierFast.
func (r *TieredRouter) Route(req Request) Tier {
	if req.Tier != "" {
		if _, ok := r.tiers[Tier(req.Tier)]; ok {
			return Tier(req.Tier)
		}
	}
	if len(strings.Fields(req.Prompt)) > longPromptThreshold {
		return TierDeep
	}
	lower := strings.ToLower(req.Prompt)
	for _, kw := range deepKeywords {
		if strings.Contains(lower, kw) {
			return TierDeep
		}
	}
	return TierFast
}

// Generate routes req to its tier and runs it, falling back to TierFast
// if the chosen tier has no registered generator.
func (r *TieredRouter) Generate(ctx context.Context, req Request) (Result, error) {
	tier := r.Route(req)
	gen, ok := r.tiers[tier]
	if !ok {
		gen, ok = r.tiers[TierFast]
	}
	if !ok {
		return Result{}, &Error{Kind: ErrorGeneric, Message: "no generator registered for any tier"}
	}
	return gen.Generate(ctx, req)
}

// Stream routes req to its tier and streams from it, falling back to
// TierFast if the chosen tier's generator can't stream.
func (r *TieredRouter) Stream(ctx context.Context, req Request) (<-chan Chunk, <-chan error) {
	tier := r.Route(req)
	gen, ok := r.tiers[tier]
	if !ok {
		gen, ok = r.tiers[TierFast]
	}
	streamer, canStream := gen.(StreamGenerator)
	if !ok || !canStream {
		errs := make(chan error, 1)
		errs <- &Error{Kind: ErrorGeneric, Message: "no streaming generator registered for any tier"}
		close(errs)
		chunks := make(chan Chunk)
		close(chunks)
		return chunks, errs
	}
	return streamer.Stream(ctx, req)
}
