package eventlog

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/axiom-guard/boundary/pkg/models"
)

// canonicalAudit is the subset of models.AuditRecord that participates in
// record_hash — RecordHash itself is excluded, matching the Event
// canonicalization convention in canonical.go.
type canonicalAudit struct {
	AuditID             string            `json:"audit_id"`
	RequestID           string            `json:"request_id"`
	InputHash           string            `json:"input_hash"`
	OutputHash          string            `json:"output_hash,omitempty"`
	ConstitutionVersion string            `json:"constitution_version"`
	InvocationMode      string            `json:"invocation_mode"`
	LayersExecuted      []string          `json:"layers_executed"`
	ViolationsSummary   []models.Violation `json:"violations_summary"`
	Timestamp           string            `json:"timestamp"`
	PrevHash            string            `json:"prev_hash,omitempty"`
}

// SealAudit computes record.RecordHash by chaining it off the most
// recent audit record for record.UserID, then inserts it. No user text
// is ever stored here — only hashes, category metadata, and a
// violations summary (severity/invariant ID/remediation, never evidence
// text), per spec.md §4.8 ("no user text is written to the audit
// store").
func (s *Store) SealAudit(ctx context.Context, userID string, record models.AuditRecord) (models.AuditRecord, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.AuditRecord{}, fmt.Errorf("begin audit tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, advisoryLockKey("audit:"+userID)); err != nil {
		return models.AuditRecord{}, fmt.Errorf("acquire audit lock: %w", err)
	}

	var prevHash stdsql.NullString
	row := tx.QueryRowContext(ctx,
		`SELECT record_hash FROM audit_records WHERE user_id = $1 ORDER BY timestamp DESC LIMIT 1`, userID)
	switch err := row.Scan(&prevHash); err {
	case nil, stdsql.ErrNoRows:
	default:
		return models.AuditRecord{}, fmt.Errorf("fetch last audit record: %w", err)
	}
	record.PrevHash = prevHash.String

	if record.AuditID == uuid.Nil {
		record.AuditID = uuid.New()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	ca := canonicalAudit{
		AuditID:             record.AuditID.String(),
		RequestID:           record.RequestID,
		InputHash:           record.InputHash,
		OutputHash:          record.OutputHash,
		ConstitutionVersion: record.ConstitutionVersion,
		InvocationMode:      string(record.InvocationMode),
		LayersExecuted:      record.LayersExecuted,
		ViolationsSummary:   record.ViolationsSummary,
		Timestamp:           record.Timestamp.UTC().Format("2006-01-02T15:04:05.000000000Z"),
		PrevHash:            record.PrevHash,
	}
	canonical, err := json.Marshal(ca)
	if err != nil {
		return models.AuditRecord{}, fmt.Errorf("canonicalize audit record: %w", err)
	}
	record.RecordHash = ContentHash(canonical)

	layersJSON, err := json.Marshal(record.LayersExecuted)
	if err != nil {
		return models.AuditRecord{}, fmt.Errorf("marshal layers_executed: %w", err)
	}
	violationsJSON, err := json.Marshal(record.ViolationsSummary)
	if err != nil {
		return models.AuditRecord{}, fmt.Errorf("marshal violations_summary: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO audit_records (audit_id, request_id, user_id, input_hash, output_hash,
			constitution_version, invocation_mode, layers_executed, violations_summary,
			timestamp, prev_hash, record_hash)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, NULLIF($11, ''), $12)`,
		record.AuditID.String(), record.RequestID, userID, record.InputHash, record.OutputHash,
		record.ConstitutionVersion, string(record.InvocationMode), layersJSON, violationsJSON,
		record.Timestamp, record.PrevHash, record.RecordHash)
	if err != nil {
		return models.AuditRecord{}, fmt.Errorf("insert audit record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.AuditRecord{}, fmt.Errorf("commit audit: %w", err)
	}
	return record, nil
}
