package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: one row of the
// append-only event log. ID generation mirrors tarsy's service-layer
// uuid.New().String() convention (pkg/services/*_service.go) rather than
// an ent DefaultFunc.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("instance_id").
			Immutable().
			Comment("Identity-graph scope this event belongs to"),
		field.String("user_id").
			Immutable(),
		field.Enum("event_type").
			Values(
				"reflection_created",
				"metadata_declared",
				"annotation_consented",
				"voice_transcribed",
				"pattern_surfaced",
				"posture_declared",
			).
			Immutable(),
		field.Int64("seq").
			Immutable().
			Comment("Monotonic per instance_id, assigned at append time"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Immutable().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}).
			Comment("Event-type-specific data, never raw free-text beyond what the event_type calls for"),
		field.String("signature").
			Optional().
			Nillable().
			Comment("Excluded from the canonical byte form that content_hash is computed over"),
		field.String("content_hash").
			Immutable().
			Comment("SHA-256 of the canonical byte form, signature excluded"),
		field.String("prev_hash").
			Optional().
			Nillable().
			Immutable().
			Comment("content_hash of the prior event for this instance_id, by seq descending; nil only for the instance's first event (seq=1)"),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("instance_id", "seq").
			Unique(),
		index.Fields("user_id", "timestamp"),
		index.Fields("instance_id", "event_type"),
	}
}
