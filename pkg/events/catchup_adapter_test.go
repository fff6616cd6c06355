package events

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNotificationQuerier implements notificationQuerier for testing the adapter.
type fakeNotificationQuerier struct {
	rows []NotificationRow
	err  error
}

func (f *fakeNotificationQuerier) GetNotificationsSince(_ context.Context, _ string, sinceID, limit int) ([]NotificationRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []NotificationRow
	for _, row := range f.rows {
		if int(row.ID) > sinceID {
			result = append(result, row)
		}
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func TestNotificationAdapter_GetCatchupEvents(t *testing.T) {
	// Verifies the adapter correctly maps NotificationRow fields to CatchupEvent.
	querier := &fakeNotificationQuerier{
		rows: []NotificationRow{
			{ID: 10, Payload: map[string]interface{}{"type": "audit.sealed", "seq": float64(1)}},
			{ID: 20, Payload: map[string]interface{}{"type": "graph.updated", "seq": float64(2)}},
		},
	}

	adapter := NewNotificationAdapter(querier)
	events, err := adapter.GetCatchupEvents(context.Background(), "user:u1", 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, 10, events[0].ID)
	assert.Equal(t, 20, events[1].ID)
	assert.Equal(t, "audit.sealed", events[0].Payload["type"])
	assert.Equal(t, float64(1), events[0].Payload["seq"])
	assert.Equal(t, "graph.updated", events[1].Payload["type"])
}

func TestNotificationAdapter_GetCatchupEvents_WithSinceID(t *testing.T) {
	querier := &fakeNotificationQuerier{
		rows: []NotificationRow{
			{ID: 1, Payload: map[string]interface{}{"type": "audit.sealed"}},
			{ID: 2, Payload: map[string]interface{}{"type": "graph.updated"}},
			{ID: 3, Payload: map[string]interface{}{"type": "graph.updated"}},
		},
	}
	adapter := NewNotificationAdapter(querier)

	events, err := adapter.GetCatchupEvents(context.Background(), "instance:i1", 1, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 2, events[0].ID)
	assert.Equal(t, 3, events[1].ID)
}

func TestNotificationAdapter_GetCatchupEvents_WithLimit(t *testing.T) {
	querier := &fakeNotificationQuerier{
		rows: []NotificationRow{
			{ID: 1, Payload: map[string]interface{}{"seq": float64(1)}},
			{ID: 2, Payload: map[string]interface{}{"seq": float64(2)}},
			{ID: 3, Payload: map[string]interface{}{"seq": float64(3)}},
		},
	}

	adapter := NewNotificationAdapter(querier)
	events, err := adapter.GetCatchupEvents(context.Background(), "instance:i1", 0, 2)
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, 1, events[0].ID)
	assert.Equal(t, 2, events[1].ID)
}

func TestNotificationAdapter_GetCatchupEvents_Error(t *testing.T) {
	querier := &fakeNotificationQuerier{
		err: fmt.Errorf("database connection lost"),
	}

	adapter := NewNotificationAdapter(querier)
	events, err := adapter.GetCatchupEvents(context.Background(), "instance:i1", 0, 10)
	assert.Error(t, err)
	assert.Nil(t, events)
	assert.Contains(t, err.Error(), "database connection lost")
}

func TestNotificationAdapter_GetCatchupEvents_Empty(t *testing.T) {
	querier := &fakeNotificationQuerier{rows: []NotificationRow{}}

	adapter := NewNotificationAdapter(querier)
	events, err := adapter.GetCatchupEvents(context.Background(), "instance:i1", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}
