package replay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axiom-guard/boundary/pkg/models"
)

func TestTimeTravel_AsOfExcludesLaterEvents(t *testing.T) {
	base := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	events := []models.Event{
		event(models.EventMetadataDeclared, 1, base, map[string]any{
			"metadata_type": "goal", "content": "early goal",
		}),
		event(models.EventMetadataDeclared, 2, base.Add(48*time.Hour), map[string]any{
			"metadata_type": "goal", "content": "late goal",
		}),
	}

	tt := NewTimeTravel(NewEngine())
	graph := tt.AsOf(events, "inst-1", base.Add(time.Hour))

	require.Len(t, graph.Nodes, 1)
	for _, node := range graph.Nodes {
		assert.Equal(t, "early goal", node.Content)
	}
}

func TestTimeTravel_ComparePeriodsReportsAddedNode(t *testing.T) {
	base := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	events := []models.Event{
		event(models.EventMetadataDeclared, 1, base, map[string]any{
			"metadata_type": "goal", "content": "early goal",
		}),
		event(models.EventMetadataDeclared, 2, base.Add(48*time.Hour), map[string]any{
			"metadata_type": "goal", "content": "late goal",
		}),
	}

	tt := NewTimeTravel(NewEngine())
	diff := tt.ComparePeriods(events, "inst-1", base.Add(time.Hour), base.Add(72*time.Hour))

	assert.Len(t, diff.NodesAdded, 1)
	assert.Empty(t, diff.NodesRemoved)
}

func TestDiffGraphs_DetectsModifiedStrengthAndCount(t *testing.T) {
	base := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	oldEvents := []models.Event{
		event(models.EventMetadataDeclared, 1, base, map[string]any{
			"metadata_type": "value", "content": "honesty",
		}),
	}
	newEvents := append(oldEvents, event(models.EventMetadataDeclared, 2, base.Add(time.Hour), map[string]any{
		"metadata_type": "value", "content": "honesty",
	}))

	engine := NewEngine()
	oldGraph := engine.Replay(oldEvents, "inst-1")
	newGraph := engine.Replay(newEvents, "inst-1")

	diff := DiffGraphs(oldGraph, newGraph)
	require.Len(t, diff.NodesModified, 1)
	assert.Equal(t, 1, diff.NodesModified[0].OldCount)
	assert.Equal(t, 2, diff.NodesModified[0].NewCount)
}
