package eventlog

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axiom-guard/boundary/pkg/models"
)

func TestCanonicalBytes_ExcludesSignature(t *testing.T) {
	base := models.Event{
		EventID:    uuid.New(),
		InstanceID: "inst-1",
		UserID:     "user-1",
		EventType:  models.EventMetadataDeclared,
		Seq:        1,
		Timestamp:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Payload:    map[string]any{"content": "run a 5k", "metadata_type": "goal"},
	}
	signed := base
	signed.Signature = "sig-xyz"

	bWithout, err := CanonicalBytes(base)
	require.NoError(t, err)
	bWith, err := CanonicalBytes(signed)
	require.NoError(t, err)

	assert.Equal(t, bWithout, bWith, "signature must not affect the canonical byte form")
}

func TestCanonicalBytes_DeterministicAcrossPayloadKeyOrder(t *testing.T) {
	id := uuid.New()
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	a := models.Event{EventID: id, InstanceID: "i", UserID: "u", EventType: models.EventMetadataDeclared,
		Seq: 1, Timestamp: ts, Payload: map[string]any{"a": 1.0, "b": 2.0}}
	b := models.Event{EventID: id, InstanceID: "i", UserID: "u", EventType: models.EventMetadataDeclared,
		Seq: 1, Timestamp: ts, Payload: map[string]any{"b": 2.0, "a": 1.0}}

	ba, err := CanonicalBytes(a)
	require.NoError(t, err)
	bb, err := CanonicalBytes(b)
	require.NoError(t, err)

	assert.Equal(t, ba, bb)
	assert.Equal(t, ContentHash(ba), ContentHash(bb))
}

func TestContentHash_ChangesWithContent(t *testing.T) {
	h1 := ContentHash([]byte(`{"a":1}`))
	h2 := ContentHash([]byte(`{"a":2}`))
	assert.NotEqual(t, h1, h2)
	assert.Len(t, h1, 64)
}
