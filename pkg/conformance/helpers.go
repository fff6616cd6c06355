package conformance

import (
	"github.com/axiom-guard/boundary/pkg/eventlog"
	"github.com/axiom-guard/boundary/pkg/models"
	"github.com/axiom-guard/boundary/pkg/semantic"
)

// contentHashOf computes the canonical content_hash for event, the same
// way Store.Append computes it on write, without needing a database —
// the hash-chain-integrity fixtures build their chains purely in memory.
func contentHashOf(event models.Event) string {
	b, err := eventlog.CanonicalBytes(event)
	if err != nil {
		return ""
	}
	return eventlog.ContentHash(b)
}

// verifyChain walks events in ascending seq order and reports whether
// every stored prev_hash matches the content_hash recomputed from the
// prior event's *current* payload. It delegates to
// pkg/eventlog.VerifyChain — the exact same recomputation
// Store.VerifyIntegrity runs against the database — so the
// hash-chain-integrity scenario and property exercise production logic
// as a pure unit fixture, not a parallel algorithm. On success ok is
// true; on the first mismatch ok is false and breakSeq is that event's
// seq.
func verifyChain(events []models.Event) (breakSeq int64, ok bool) {
	ok, breakSeq = eventlog.VerifyChain(events)
	return breakSeq, ok
}

// emptySemanticContext is a zero-value semantic.Context: no patterns, no
// tensions, nothing for the shaper's context-injection step to act on.
// The I15 scrub cases care only about the tone/length/scrub steps, not
// context injection.
func emptySemanticContext() semantic.Context {
	return semantic.Context{}
}
