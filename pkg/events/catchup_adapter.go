package events

import (
	"context"
	"database/sql"
	"encoding/json"
)

// NotificationRow is one row read back from realtime_notifications.
type NotificationRow struct {
	ID      int64
	Payload map[string]interface{}
}

// notificationQuerier abstracts the raw row-fetch needed by
// NotificationAdapter. Implemented by *SQLNotificationQuerier in
// production; tests substitute a fake.
type notificationQuerier interface {
	GetNotificationsSince(ctx context.Context, channel string, sinceID, limit int) ([]NotificationRow, error)
}

// NotificationAdapter wraps a notificationQuerier to implement
// CatchupQuerier, mapping the realtime_notifications row shape onto
// CatchupEvent. Kept separate from the querier so ConnectionManager
// never depends on *sql.DB directly.
type NotificationAdapter struct {
	querier notificationQuerier
}

// NewNotificationAdapter creates a CatchupQuerier from a notificationQuerier.
func NewNotificationAdapter(q notificationQuerier) *NotificationAdapter {
	return &NotificationAdapter{querier: q}
}

// GetCatchupEvents queries notifications since sinceID up to limit.
func (a *NotificationAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	rows, err := a.querier.GetNotificationsSince(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CatchupEvent, len(rows))
	for i, row := range rows {
		result[i] = CatchupEvent{ID: int(row.ID), Payload: row.Payload}
	}
	return result, nil
}

// SQLNotificationQuerier queries realtime_notifications directly via
// *sql.DB — this package has no separate service layer, since the table
// only exists to back this mechanism.
type SQLNotificationQuerier struct {
	db *sql.DB
}

// NewSQLNotificationQuerier creates a SQLNotificationQuerier. db should
// be the *sql.DB from database.Client.DB().
func NewSQLNotificationQuerier(db *sql.DB) *SQLNotificationQuerier {
	return &SQLNotificationQuerier{db: db}
}

// GetNotificationsSince returns rows for channel with id > sinceID,
// ordered ascending, capped at limit.
func (q *SQLNotificationQuerier) GetNotificationsSince(ctx context.Context, channel string, sinceID, limit int) ([]NotificationRow, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, payload FROM realtime_notifications WHERE channel = $1 AND id > $2 ORDER BY id ASC LIMIT $3`,
		channel, sinceID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []NotificationRow
	for rows.Next() {
		var row NotificationRow
		var raw []byte
		if err := rows.Scan(&row.ID, &raw); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &row.Payload); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
