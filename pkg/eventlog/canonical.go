// Package eventlog implements the Event Log: an append-only store
// with per-instance monotonic seq and a SHA-256 hash chain.
//
// Grounded on original_source/mirrorx-engine/app/event_log.py and
// event_schema.py (canonical_bytes/content_hash), adapted from SQLite+WAL
// to Postgres via tarsy's pkg/database ent+pgx wiring.
package eventlog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/axiom-guard/boundary/pkg/models"
)

// canonicalEvent is the subset of models.Event that participates in the
// canonical byte form. Signature is excluded, per spec.md §4.6.
type canonicalEvent struct {
	EventID    string         `json:"event_id"`
	InstanceID string         `json:"instance_id"`
	UserID     string         `json:"user_id"`
	EventType  string         `json:"event_type"`
	Seq        int64          `json:"seq"`
	Timestamp  string         `json:"timestamp"`
	Payload    map[string]any `json:"payload"`
	PrevHash   string         `json:"prev_hash,omitempty"`
}

// CanonicalBytes renders event as sorted-key, whitespace-free JSON, the
// signature field excluded. encoding/json already sorts map keys when
// marshaling map[string]any, and struct field order here is the fixed
// tag order above — together these give the "sorted keys, no whitespace"
// form spec.md §4.6 requires without a third-party canonical-JSON library.
func CanonicalBytes(event models.Event) ([]byte, error) {
	ce := canonicalEvent{
		EventID:    event.EventID.String(),
		InstanceID: event.InstanceID,
		UserID:     event.UserID,
		EventType:  string(event.EventType),
		Seq:        event.Seq,
		Timestamp:  event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000000Z"),
		Payload:    sortedPayload(event.Payload),
		PrevHash:   event.PrevHash,
	}
	return json.Marshal(ce)
}

// sortedPayload is a no-op for marshaling (json.Marshal already sorts
// map[string]any keys) but documents the invariant explicitly rather than
// relying on an incidental stdlib behavior silently.
func sortedPayload(payload map[string]any) map[string]any {
	if payload == nil {
		return map[string]any{}
	}
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return payload
}

// ContentHash returns the hex-encoded SHA-256 of b.
func ContentHash(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// contentHashOf recomputes the canonical content_hash for event from its
// current fields, the same way Store.Append computed it at write time.
func contentHashOf(event models.Event) string {
	b, err := CanonicalBytes(event)
	if err != nil {
		return ""
	}
	return ContentHash(b)
}

// VerifyChain walks events (already ordered by ascending seq) and
// recomputes each content_hash fresh from its current stored fields,
// rather than trusting the content_hash column — a row whose payload was
// mutated in place without touching its content_hash/prev_hash columns
// must still be caught. It reports ok=true if every event's stored
// prev_hash equals the freshly recomputed content_hash of the prior
// event (and the first event has no prev_hash), else ok=false and the
// seq of the first break.
func VerifyChain(events []models.Event) (ok bool, breakSeq int64) {
	for i, e := range events {
		if i == 0 {
			if e.PrevHash != "" {
				return false, e.Seq
			}
			continue
		}
		if e.PrevHash != contentHashOf(events[i-1]) {
			return false, e.Seq
		}
	}
	return true, 0
}
