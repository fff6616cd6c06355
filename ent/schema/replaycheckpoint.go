package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReplayCheckpoint holds the schema definition for the ReplayCheckpoint
// entity: a (instance_id, seq, state_hash) tuple that lets a fresh C7
// replay be validated against a prior result, per spec.md §4.7's
// reproducibility invariant (equal seq + equal events => equal state_hash).
type ReplayCheckpoint struct {
	ent.Schema
}

// Fields of the ReplayCheckpoint.
func (ReplayCheckpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("instance_id").
			Immutable(),
		field.Int64("seq").
			Immutable().
			Comment("Last event seq folded into this checkpoint's graph"),
		field.String("state_hash").
			Immutable().
			Comment("SHA-256 of canonical(graph.to_dict())"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ReplayCheckpoint.
func (ReplayCheckpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("instance_id", "seq").
			Unique(),
	}
}
