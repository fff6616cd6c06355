package replay

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axiom-guard/boundary/pkg/models"
)

func event(eventType models.EventType, seq int64, ts time.Time, payload map[string]any) models.Event {
	return models.Event{
		EventID:    uuid.New(),
		InstanceID: "inst-1",
		UserID:     "user-1",
		EventType:  eventType,
		Seq:        seq,
		Timestamp:  ts,
		Payload:    payload,
	}
}

func TestReplay_MetadataDeclaredCreatesNode(t *testing.T) {
	base := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	events := []models.Event{
		event(models.EventMetadataDeclared, 1, base, map[string]any{
			"metadata_type": "goal", "content": "Run a 5k", "confidence": 0.9,
		}),
	}

	graph := NewEngine().Replay(events, "inst-1")

	require.Len(t, graph.Nodes, 1)
	for _, node := range graph.Nodes {
		assert.Equal(t, "goal", node.NodeType)
		assert.Equal(t, "Run a 5k", node.Content)
		assert.Equal(t, 0.9, node.Strength)
		assert.Equal(t, 1, node.OccurrenceCount)
	}
}

func TestReplay_RepeatedDeclarationUpsertsSameNode(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	events := []models.Event{
		event(models.EventMetadataDeclared, 1, base, map[string]any{
			"metadata_type": "value", "content": "Honesty",
		}),
		event(models.EventMetadataDeclared, 2, base.Add(time.Hour), map[string]any{
			"metadata_type": "value", "content": "honesty", // same content, different case
		}),
	}

	graph := NewEngine().Replay(events, "inst-1")

	require.Len(t, graph.Nodes, 1)
	for _, node := range graph.Nodes {
		assert.Equal(t, 2, node.OccurrenceCount)
		assert.Len(t, node.Evidence, 2)
	}
}

func TestReplay_RejectedAnnotationIsNoOp(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	events := []models.Event{
		event(models.EventAnnotationConsent, 1, base, map[string]any{
			"user_consent": "rejected", "annotation_type": "pattern", "annotation_content": "avoidance",
		}),
	}

	graph := NewEngine().Replay(events, "inst-1")
	assert.Empty(t, graph.Nodes)
}

func TestReplay_AcceptedAnnotationUsesModificationOverContent(t *testing.T) {
	base := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	events := []models.Event{
		event(models.EventAnnotationConsent, 1, base, map[string]any{
			"user_consent": "modified", "annotation_type": "pattern",
			"annotation_content": "avoidance", "user_modification": "selective engagement",
		}),
	}

	graph := NewEngine().Replay(events, "inst-1")
	require.Len(t, graph.Nodes, 1)
	for _, node := range graph.Nodes {
		assert.Equal(t, "selective engagement", node.Content)
		assert.Equal(t, 0.8, node.Strength)
	}
}

func TestReplay_PatternSurfacedOnlyOnResonates(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	skipped := NewEngine().Replay([]models.Event{
		event(models.EventPatternSurfaced, 1, base, map[string]any{
			"user_response": "skip", "pattern_description": "late-night spiraling", "confidence": 0.7,
		}),
	}, "inst-1")
	assert.Empty(t, skipped.Nodes)

	off := NewEngine().Replay([]models.Event{
		event(models.EventPatternSurfaced, 1, base, map[string]any{
			"user_response": "off", "pattern_description": "late-night spiraling", "confidence": 0.7,
		}),
	}, "inst-1")
	assert.Empty(t, off.Nodes)

	resonated := NewEngine().Replay([]models.Event{
		event(models.EventPatternSurfaced, 1, base, map[string]any{
			"user_response": "resonates", "pattern_description": "late-night spiraling", "confidence": 0.7,
		}),
	}, "inst-1")
	require.Len(t, resonated.Nodes, 1)
}

func TestReplay_PostureDeclaredUpdatesCurrentPostureNotNode(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	graph := NewEngine().Replay([]models.Event{
		event(models.EventPostureDeclared, 1, base, map[string]any{"posture": "open"}),
	}, "inst-1")

	assert.Equal(t, "open", graph.CurrentPosture)
	assert.Empty(t, graph.Nodes)
}

func TestReplay_SortsOutOfOrderEventsByTimestamp(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	// Seq order reversed from timestamp order, simulating a re-imported log.
	events := []models.Event{
		event(models.EventPostureDeclared, 2, base, map[string]any{"posture": "open"}),
		event(models.EventPostureDeclared, 1, base.Add(time.Hour), map[string]any{"posture": "guarded"}),
	}

	graph := NewEngine().Replay(events, "inst-1")
	assert.Equal(t, "guarded", graph.CurrentPosture, "last event by timestamp wins, not by seq")
}

func TestReplay_DominantTensionsTopThreeByScore(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var events []models.Event
	tensions := []struct {
		content string
		count   int
	}{
		{"tension-a", 1}, {"tension-b", 5}, {"tension-c", 3}, {"tension-d", 1},
	}
	for _, tn := range tensions {
		for i := 0; i < tn.count; i++ {
			events = append(events, event(models.EventMetadataDeclared, int64(len(events)+1),
				base.Add(time.Duration(len(events))*time.Minute),
				map[string]any{"metadata_type": "tension", "content": tn.content, "confidence": 1.0}))
		}
	}

	graph := NewEngine().Replay(events, "inst-1")
	assert.Len(t, graph.DominantTensions, 3)
}

func TestStateHash_DeterministicAcrossEqualGraphs(t *testing.T) {
	// Far-future timestamp keeps weeksSince <= 0 in applyDecay, so the
	// two replays below aren't racing wall-clock time inside StateHash.
	base := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	events := []models.Event{
		event(models.EventMetadataDeclared, 1, base, map[string]any{
			"metadata_type": "goal", "content": "Run a 5k", "confidence": 0.9,
		}),
	}

	g1 := NewEngine().Replay(events, "inst-1")
	g2 := NewEngine().Replay(events, "inst-1")

	h1, err := g1.StateHash()
	require.NoError(t, err)
	h2, err := g2.StateHash()
	require.NoError(t, err)
	assert.Equal(t, h1, h2, "equal seq + equal events must produce equal state_hash")
}
