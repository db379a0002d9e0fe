package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// Tasks are the ordered plan steps of a mission, created during planning
// and mutated during execution.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("mission_id").
			Immutable(),
		field.Int("ordinal").
			Comment("Position within the mission's plan"),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.String("tool_hint").
			Optional().
			Nillable(),
		field.JSON("inputs", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("pending", "running", "success", "failure", "skipped").
			Default("pending"),
		field.JSON("result", map[string]interface{}{}).
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("mission", Mission.Type).
			Ref("tasks").
			Field("mission_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Tasks are ordered and unique per mission.
		index.Fields("mission_id", "ordinal").
			Unique(),
	}
}
