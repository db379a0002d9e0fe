package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Mission holds the schema definition for the Mission entity.
// A mission is a user-submitted objective plus the state of its
// multi-agent execution.
type Mission struct {
	ent.Schema
}

// Fields of the Mission.
func (Mission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("mission_id").
			Unique().
			Immutable(),
		field.Text("objective").
			Comment("Natural-language objective submitted by the initiator"),
		field.String("initiator").
			Optional().
			Nillable().
			Comment("Caller identity from the front door"),
		field.JSON("context", map[string]interface{}{}).
			Optional().
			Comment("Request context forwarded to the supervisor"),
		field.String("priority").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("pending", "running", "partial_success", "success", "failed").
			Default("pending"),
		field.String("outcome").
			Optional().
			Nillable().
			Comment("Terminal outcome detail (e.g. loop_stopped, cancelled)"),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Comment("Final result summary produced by the auditor"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("iteration").
			Default(0).
			Comment("Completed re-plan iterations"),
		field.JSON("plan_hashes", []string{}).
			Optional().
			Comment("Canonical plan hashes, appended per produced plan"),
		field.Bool("force_research").
			Default(false),
		field.String("idempotency_key").
			Optional().
			Nillable().
			Unique().
			Comment("Client-supplied key scoping at-most-one mission per request identity"),
		field.String("node_id").
			Optional().
			Nillable().
			Comment("Node that claimed the mission — guards the single active supervisor run"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the mission (pending → running)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Mission.
func (Mission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", MissionEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("outbox_entries", OutboxEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Mission.
func (Mission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("node_id"),
	}
}
