// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Mission is the predicate function for mission builders.
type Mission func(*sql.Selector)

// MissionEvent is the predicate function for missionevent builders.
type MissionEvent func(*sql.Selector)

// OutboxEntry is the predicate function for outboxentry builders.
type OutboxEntry func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
