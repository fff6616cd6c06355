package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditRecord holds the schema definition for the AuditRecord entity: the
// C8 orchestrator's per-request seal. Only hashes are stored, never user
// text, per spec.md §4.8 ("No user text is written to the audit store;
// only hashes").
type AuditRecord struct {
	ent.Schema
}

// Fields of the AuditRecord.
func (AuditRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("request_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("input_hash").
			Immutable(),
		field.String("output_hash").
			Optional().
			Nillable().
			Comment("Nil on CRITICAL suppression — no output was produced"),
		field.String("constitution_version").
			Immutable(),
		field.Enum("invocation_mode").
			Values("post_action", "explicit_guidance").
			Immutable(),
		field.JSON("layers_executed", []string{}).
			Immutable().
			Comment("Ordered stage names the pipeline actually ran"),
		field.JSON("violations_summary", []map[string]interface{}{}).
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}).
			Comment("Invariant id + severity per violation; no evidence text"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("prev_hash").
			Optional().
			Nillable().
			Immutable().
			Comment("RecordHash of the previous AuditRecord for this user_id"),
		field.String("record_hash").
			Immutable().
			Comment("SHA-256 of this record's own canonical byte form"),
	}
}

// Indexes of the AuditRecord.
func (AuditRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "timestamp"),
		index.Fields("request_id"),
	}
}
