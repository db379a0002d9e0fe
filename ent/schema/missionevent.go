package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MissionEvent holds the schema definition for the MissionEvent entity.
// Append-only event log per mission. Sequence numbers are strictly
// increasing and contiguous from 1 — the append happens in the same
// transaction as the state change that produced it.
type MissionEvent struct {
	ent.Schema
}

// Fields of the MissionEvent.
func (MissionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("mission_id").
			Immutable(),
		field.Int("sequence").
			Immutable().
			Comment("Strictly increasing per mission, starting at 1"),
		field.String("event_type").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MissionEvent.
func (MissionEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("mission", Mission.Type).
			Ref("events").
			Field("mission_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MissionEvent.
func (MissionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mission_id", "sequence").
			Unique(),
		index.Fields("created_at"),
	}
}
