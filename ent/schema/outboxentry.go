package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OutboxEntry holds the schema definition for the OutboxEntry entity.
// One entry is inserted per committed mutation, in the same transaction.
// A worker drains pending entries (FOR UPDATE SKIP LOCKED) and publishes
// them to the event fabric — at-least-once; consumers dedupe on
// (mission_id, sequence).
type OutboxEntry struct {
	ent.Schema
}

// Fields of the OutboxEntry.
func (OutboxEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("mission_id").
			Immutable(),
		field.Int("sequence").
			Immutable().
			Comment("Mission event sequence this entry carries"),
		field.String("event_type").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Enum("status").
			Values("pending", "processed", "failed").
			Default("pending"),
		field.Int("retry_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("processed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the OutboxEntry.
func (OutboxEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("mission", Mission.Type).
			Ref("outbox_entries").
			Field("mission_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the OutboxEntry.
func (OutboxEntry) Indexes() []ent.Index {
	return []ent.Index{
		// Drain query: pending entries in creation order.
		index.Fields("status", "created_at"),
		index.Fields("mission_id", "sequence"),
	}
}
