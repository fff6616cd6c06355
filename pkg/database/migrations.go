package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates JSONB containment indexes for PostgreSQL.
// These let get_events filter by payload fields (e.g. metadata_type,
// posture) without a sequential scan, since event payload shape varies
// by event_type and isn't worth normalizing into columns.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_events_payload_gin
		ON events USING gin(payload jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create events payload GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_audit_records_violations_gin
		ON audit_records USING gin(violations_summary jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create audit_records violations GIN index: %w", err)
	}

	return nil
}
