package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Publisher publishes realtime notifications over NOTIFY, persisting the
// ones a reconnecting client needs to catch up on and broadcasting the
// rest transiently. It never carries user text: every payload below is
// hashes, IDs, counts, and category labels only.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a new Publisher. db should be the *sql.DB from
// database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// AuditSealedPayload notifies subscribers that an AuditRecord was sealed
// for a user — the audit stage runs on every request regardless of outcome.
type AuditSealedPayload struct {
	Type      string `json:"type"`
	AuditID   string `json:"audit_id"`
	UserID    string `json:"user_id"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// GraphUpdatedPayload notifies subscribers that an identity graph's
// derived state has advanced past a given seq, so a client holding a
// stale graph knows to re-fetch.
type GraphUpdatedPayload struct {
	Type         string `json:"type"`
	InstanceID   string `json:"instance_id"`
	LastEventSeq int64  `json:"last_event_seq"`
	NodeCount    int    `json:"node_count"`
}

// CrisisSignalPayload notifies the on-call/dashboard surface that a
// crisis-tier signal fired, with no user text — only severity and
// category.
type CrisisSignalPayload struct {
	Type       string `json:"type"`
	InstanceID string `json:"instance_id"`
	Level      string `json:"level"`
	Category   string `json:"category"`
}

// StreamChunkPayload carries one streamed generation chunk. Transient —
// never persisted, lost on disconnect.
type StreamChunkPayload struct {
	Type       string `json:"type"`
	InstanceID string `json:"instance_id"`
	Text       string `json:"text"`
	Done       bool   `json:"done"`
}

// PublishAuditSealed persists and broadcasts an audit.sealed notification
// on the sealing user's channel.
func (p *Publisher) PublishAuditSealed(ctx context.Context, userID string, payload AuditSealedPayload) error {
	payload.Type = "audit.sealed"
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal AuditSealedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, userID, UserChannel(userID), payloadJSON)
}

// PublishGraphUpdated persists and broadcasts a graph.updated
// notification on the instance's channel.
func (p *Publisher) PublishGraphUpdated(ctx context.Context, instanceID string, payload GraphUpdatedPayload) error {
	payload.Type = "graph.updated"
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal GraphUpdatedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, instanceID, InstanceChannel(instanceID), payloadJSON)
}

// PublishCrisisSignal broadcasts a crisis.signal transient event (no DB
// persistence) to the global channel, for on-call escalation consumers.
func (p *Publisher) PublishCrisisSignal(ctx context.Context, payload CrisisSignalPayload) error {
	payload.Type = "crisis.signal"
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal CrisisSignalPayload: %w", err)
	}
	return p.notifyOnly(ctx, GlobalChannel, payloadJSON)
}

// PublishStreamChunk broadcasts a stream.chunk transient event (no DB
// persistence) to the instance's channel.
func (p *Publisher) PublishStreamChunk(ctx context.Context, instanceID string, payload StreamChunkPayload) error {
	payload.Type = "stream.chunk"
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StreamChunkPayload: %w", err)
	}
	return p.notifyOnly(ctx, InstanceChannel(instanceID), payloadJSON)
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to realtime_notifications
// and broadcasts via NOTIFY in a single transaction (pg_notify is
// transactional — held until COMMIT).
func (p *Publisher) persistAndNotify(ctx context.Context, subjectID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var notificationID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO realtime_notifications (subject_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		subjectID, channel, payloadJSON, time.Now(),
	).Scan(&notificationID)
	if err != nil {
		return fmt.Errorf("failed to persist notification: %w", err)
	}

	notifyPayload, err := injectNotificationIDAndTruncate(payloadJSON, notificationID)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit notification transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without
// persisting to the database.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectNotificationIDAndTruncate adds db_event_id to the JSON payload
// for NOTIFY delivery (the catchup position marker) and truncates if the
// result exceeds PostgreSQL's 8000-byte NOTIFY limit.
func injectNotificationIDAndTruncate(payloadJSON []byte, notificationID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = notificationID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the
// full JSON payload bytes, extracting only the routing fields the client
// needs to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type           string `json:"type"`
		InstanceID     string `json:"instance_id"`
		UserID         string `json:"user_id"`
		NotificationID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"truncated": true,
	}
	if routing.InstanceID != "" {
		truncated["instance_id"] = routing.InstanceID
	}
	if routing.UserID != "" {
		truncated["user_id"] = routing.UserID
	}
	if routing.NotificationID != nil {
		truncated["db_event_id"] = *routing.NotificationID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
