// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MissionsColumns holds the columns for the "missions" table.
	MissionsColumns = []*schema.Column{
		{Name: "mission_id", Type: field.TypeString, Unique: true},
		{Name: "objective", Type: field.TypeString, Size: 2147483647},
		{Name: "initiator", Type: field.TypeString, Nullable: true},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "priority", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "partial_success", "success", "failed"}, Default: "pending"},
		{Name: "outcome", Type: field.TypeString, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "iteration", Type: field.TypeInt, Default: 0},
		{Name: "plan_hashes", Type: field.TypeJSON, Nullable: true},
		{Name: "force_research", Type: field.TypeBool, Default: false},
		{Name: "idempotency_key", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "node_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// MissionsTable holds the schema information for the "missions" table.
	MissionsTable = &schema.Table{
		Name:       "missions",
		Columns:    MissionsColumns,
		PrimaryKey: []*schema.Column{MissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mission_status",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[5]},
			},
			{
				Name:    "mission_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[5], MissionsColumns[14]},
			},
			{
				Name:    "mission_node_id",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[13]},
			},
		},
	}
	// MissionEventsColumns holds the columns for the "mission_events" table.
	MissionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "mission_id", Type: field.TypeString},
	}
	// MissionEventsTable holds the schema information for the "mission_events" table.
	MissionEventsTable = &schema.Table{
		Name:       "mission_events",
		Columns:    MissionEventsColumns,
		PrimaryKey: []*schema.Column{MissionEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "mission_events_missions_events",
				Columns:    []*schema.Column{MissionEventsColumns[5]},
				RefColumns: []*schema.Column{MissionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "missionevent_mission_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{MissionEventsColumns[5], MissionEventsColumns[1]},
			},
			{
				Name:    "missionevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{MissionEventsColumns[4]},
			},
		},
	}
	// OutboxEntriesColumns holds the columns for the "outbox_entries" table.
	OutboxEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processed", "failed"}, Default: "pending"},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "mission_id", Type: field.TypeString},
	}
	// OutboxEntriesTable holds the schema information for the "outbox_entries" table.
	OutboxEntriesTable = &schema.Table{
		Name:       "outbox_entries",
		Columns:    OutboxEntriesColumns,
		PrimaryKey: []*schema.Column{OutboxEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "outbox_entries_missions_outbox_entries",
				Columns:    []*schema.Column{OutboxEntriesColumns[8]},
				RefColumns: []*schema.Column{MissionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "outboxentry_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{OutboxEntriesColumns[4], OutboxEntriesColumns[6]},
			},
			{
				Name:    "outboxentry_mission_id_sequence",
				Unique:  false,
				Columns: []*schema.Column{OutboxEntriesColumns[8], OutboxEntriesColumns[1]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "ordinal", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tool_hint", Type: field.TypeString, Nullable: true},
		{Name: "inputs", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "success", "failure", "skipped"}, Default: "pending"},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "mission_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_missions_tasks",
				Columns:    []*schema.Column{TasksColumns[11]},
				RefColumns: []*schema.Column{MissionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_mission_id_ordinal",
				Unique:  true,
				Columns: []*schema.Column{TasksColumns[11], TasksColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MissionsTable,
		MissionEventsTable,
		OutboxEntriesTable,
		TasksTable,
	}
)

func init() {
	MissionEventsTable.ForeignKeys[0].RefTable = MissionsTable
	OutboxEntriesTable.ForeignKeys[0].RefTable = MissionsTable
	TasksTable.ForeignKeys[0].RefTable = MissionsTable
}
