// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/helmsman-ai/helmsman/ent/mission"
	"github.com/helmsman-ai/helmsman/ent/missionevent"
	"github.com/helmsman-ai/helmsman/ent/outboxentry"
	"github.com/helmsman-ai/helmsman/ent/predicate"
	"github.com/helmsman-ai/helmsman/ent/task"
)

// MissionUpdate is the builder for updating Mission entities.
type MissionUpdate struct {
	config
	hooks    []Hook
	mutation *MissionMutation
}

// Where appends a list predicates to the MissionUpdate builder.
func (_u *MissionUpdate) Where(ps ...predicate.Mission) *MissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetObjective sets the "objective" field.
func (_u *MissionUpdate) SetObjective(v string) *MissionUpdate {
	_u.mutation.SetObjective(v)
	return _u
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableObjective(v *string) *MissionUpdate {
	if v != nil {
		_u.SetObjective(*v)
	}
	return _u
}

// SetInitiator sets the "initiator" field.
func (_u *MissionUpdate) SetInitiator(v string) *MissionUpdate {
	_u.mutation.SetInitiator(v)
	return _u
}

// SetNillableInitiator sets the "initiator" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableInitiator(v *string) *MissionUpdate {
	if v != nil {
		_u.SetInitiator(*v)
	}
	return _u
}

// ClearInitiator clears the value of the "initiator" field.
func (_u *MissionUpdate) ClearInitiator() *MissionUpdate {
	_u.mutation.ClearInitiator()
	return _u
}

// SetContext sets the "context" field.
func (_u *MissionUpdate) SetContext(v map[string]interface{}) *MissionUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *MissionUpdate) ClearContext() *MissionUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *MissionUpdate) SetPriority(v string) *MissionUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *MissionUpdate) SetNillablePriority(v *string) *MissionUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// ClearPriority clears the value of the "priority" field.
func (_u *MissionUpdate) ClearPriority() *MissionUpdate {
	_u.mutation.ClearPriority()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MissionUpdate) SetStatus(v mission.Status) *MissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableStatus(v *mission.Status) *MissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *MissionUpdate) SetOutcome(v string) *MissionUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableOutcome(v *string) *MissionUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *MissionUpdate) ClearOutcome() *MissionUpdate {
	_u.mutation.ClearOutcome()
	return _u
}

// SetResult sets the "result" field.
func (_u *MissionUpdate) SetResult(v map[string]interface{}) *MissionUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *MissionUpdate) ClearResult() *MissionUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MissionUpdate) SetErrorMessage(v string) *MissionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableErrorMessage(v *string) *MissionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *MissionUpdate) ClearErrorMessage() *MissionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetIteration sets the "iteration" field.
func (_u *MissionUpdate) SetIteration(v int) *MissionUpdate {
	_u.mutation.ResetIteration()
	_u.mutation.SetIteration(v)
	return _u
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableIteration(v *int) *MissionUpdate {
	if v != nil {
		_u.SetIteration(*v)
	}
	return _u
}

// AddIteration adds value to the "iteration" field.
func (_u *MissionUpdate) AddIteration(v int) *MissionUpdate {
	_u.mutation.AddIteration(v)
	return _u
}

// SetPlanHashes sets the "plan_hashes" field.
func (_u *MissionUpdate) SetPlanHashes(v []string) *MissionUpdate {
	_u.mutation.SetPlanHashes(v)
	return _u
}

// AppendPlanHashes appends value to the "plan_hashes" field.
func (_u *MissionUpdate) AppendPlanHashes(v []string) *MissionUpdate {
	_u.mutation.AppendPlanHashes(v)
	return _u
}

// ClearPlanHashes clears the value of the "plan_hashes" field.
func (_u *MissionUpdate) ClearPlanHashes() *MissionUpdate {
	_u.mutation.ClearPlanHashes()
	return _u
}

// SetForceResearch sets the "force_research" field.
func (_u *MissionUpdate) SetForceResearch(v bool) *MissionUpdate {
	_u.mutation.SetForceResearch(v)
	return _u
}

// SetNillableForceResearch sets the "force_research" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableForceResearch(v *bool) *MissionUpdate {
	if v != nil {
		_u.SetForceResearch(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *MissionUpdate) SetIdempotencyKey(v string) *MissionUpdate {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableIdempotencyKey(v *string) *MissionUpdate {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *MissionUpdate) ClearIdempotencyKey() *MissionUpdate {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *MissionUpdate) SetNodeID(v string) *MissionUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableNodeID(v *string) *MissionUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// ClearNodeID clears the value of the "node_id" field.
func (_u *MissionUpdate) ClearNodeID() *MissionUpdate {
	_u.mutation.ClearNodeID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MissionUpdate) SetUpdatedAt(v time.Time) *MissionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *MissionUpdate) SetStartedAt(v time.Time) *MissionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableStartedAt(v *time.Time) *MissionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *MissionUpdate) ClearStartedAt() *MissionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MissionUpdate) SetCompletedAt(v time.Time) *MissionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableCompletedAt(v *time.Time) *MissionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MissionUpdate) ClearCompletedAt() *MissionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *MissionUpdate) AddTaskIDs(ids ...string) *MissionUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *MissionUpdate) AddTasks(v ...*Task) *MissionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddEventIDs adds the "events" edge to the MissionEvent entity by IDs.
func (_u *MissionUpdate) AddEventIDs(ids ...int) *MissionUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the MissionEvent entity.
func (_u *MissionUpdate) AddEvents(v ...*MissionEvent) *MissionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddOutboxEntryIDs adds the "outbox_entries" edge to the OutboxEntry entity by IDs.
func (_u *MissionUpdate) AddOutboxEntryIDs(ids ...int) *MissionUpdate {
	_u.mutation.AddOutboxEntryIDs(ids...)
	return _u
}

// AddOutboxEntries adds the "outbox_entries" edges to the OutboxEntry entity.
func (_u *MissionUpdate) AddOutboxEntries(v ...*OutboxEntry) *MissionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutboxEntryIDs(ids...)
}

// Mutation returns the MissionMutation object of the builder.
func (_u *MissionUpdate) Mutation() *MissionMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *MissionUpdate) ClearTasks() *MissionUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *MissionUpdate) RemoveTaskIDs(ids ...string) *MissionUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *MissionUpdate) RemoveTasks(v ...*Task) *MissionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearEvents clears all "events" edges to the MissionEvent entity.
func (_u *MissionUpdate) ClearEvents() *MissionUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to MissionEvent entities by IDs.
func (_u *MissionUpdate) RemoveEventIDs(ids ...int) *MissionUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to MissionEvent entities.
func (_u *MissionUpdate) RemoveEvents(v ...*MissionEvent) *MissionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearOutboxEntries clears all "outbox_entries" edges to the OutboxEntry entity.
func (_u *MissionUpdate) ClearOutboxEntries() *MissionUpdate {
	_u.mutation.ClearOutboxEntries()
	return _u
}

// RemoveOutboxEntryIDs removes the "outbox_entries" edge to OutboxEntry entities by IDs.
func (_u *MissionUpdate) RemoveOutboxEntryIDs(ids ...int) *MissionUpdate {
	_u.mutation.RemoveOutboxEntryIDs(ids...)
	return _u
}

// RemoveOutboxEntries removes "outbox_entries" edges to OutboxEntry entities.
func (_u *MissionUpdate) RemoveOutboxEntries(v ...*OutboxEntry) *MissionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutboxEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MissionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MissionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MissionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := mission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Mission.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mission.Table, mission.Columns, sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Objective(); ok {
		_spec.SetField(mission.FieldObjective, field.TypeString, value)
	}
	if value, ok := _u.mutation.Initiator(); ok {
		_spec.SetField(mission.FieldInitiator, field.TypeString, value)
	}
	if _u.mutation.InitiatorCleared() {
		_spec.ClearField(mission.FieldInitiator, field.TypeString)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(mission.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(mission.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(mission.FieldPriority, field.TypeString, value)
	}
	if _u.mutation.PriorityCleared() {
		_spec.ClearField(mission.FieldPriority, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(mission.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(mission.FieldOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(mission.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(mission.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(mission.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(mission.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Iteration(); ok {
		_spec.SetField(mission.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIteration(); ok {
		_spec.AddField(mission.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlanHashes(); ok {
		_spec.SetField(mission.FieldPlanHashes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlanHashes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mission.FieldPlanHashes, value)
		})
	}
	if _u.mutation.PlanHashesCleared() {
		_spec.ClearField(mission.FieldPlanHashes, field.TypeJSON)
	}
	if value, ok := _u.mutation.ForceResearch(); ok {
		_spec.SetField(mission.FieldForceResearch, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(mission.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(mission.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(mission.FieldNodeID, field.TypeString, value)
	}
	if _u.mutation.NodeIDCleared() {
		_spec.ClearField(mission.FieldNodeID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mission.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(mission.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(mission.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(mission.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(mission.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.TasksTable,
			Columns: []string{mission.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.TasksTable,
			Columns: []string{mission.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.TasksTable,
			Columns: []string{mission.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.EventsTable,
			Columns: []string{mission.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(missionevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.EventsTable,
			Columns: []string{mission.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(missionevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.EventsTable,
			Columns: []string{mission.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(missionevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutboxEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.OutboxEntriesTable,
			Columns: []string{mission.OutboxEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outboxentry.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutboxEntriesIDs(); len(nodes) > 0 && !_u.mutation.OutboxEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.OutboxEntriesTable,
			Columns: []string{mission.OutboxEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outboxentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutboxEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.OutboxEntriesTable,
			Columns: []string{mission.OutboxEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outboxentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MissionUpdateOne is the builder for updating a single Mission entity.
type MissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MissionMutation
}

// SetObjective sets the "objective" field.
func (_u *MissionUpdateOne) SetObjective(v string) *MissionUpdateOne {
	_u.mutation.SetObjective(v)
	return _u
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableObjective(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetObjective(*v)
	}
	return _u
}

// SetInitiator sets the "initiator" field.
func (_u *MissionUpdateOne) SetInitiator(v string) *MissionUpdateOne {
	_u.mutation.SetInitiator(v)
	return _u
}

// SetNillableInitiator sets the "initiator" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableInitiator(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetInitiator(*v)
	}
	return _u
}

// ClearInitiator clears the value of the "initiator" field.
func (_u *MissionUpdateOne) ClearInitiator() *MissionUpdateOne {
	_u.mutation.ClearInitiator()
	return _u
}

// SetContext sets the "context" field.
func (_u *MissionUpdateOne) SetContext(v map[string]interface{}) *MissionUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *MissionUpdateOne) ClearContext() *MissionUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *MissionUpdateOne) SetPriority(v string) *MissionUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillablePriority(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// ClearPriority clears the value of the "priority" field.
func (_u *MissionUpdateOne) ClearPriority() *MissionUpdateOne {
	_u.mutation.ClearPriority()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MissionUpdateOne) SetStatus(v mission.Status) *MissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableStatus(v *mission.Status) *MissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *MissionUpdateOne) SetOutcome(v string) *MissionUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableOutcome(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *MissionUpdateOne) ClearOutcome() *MissionUpdateOne {
	_u.mutation.ClearOutcome()
	return _u
}

// SetResult sets the "result" field.
func (_u *MissionUpdateOne) SetResult(v map[string]interface{}) *MissionUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *MissionUpdateOne) ClearResult() *MissionUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MissionUpdateOne) SetErrorMessage(v string) *MissionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableErrorMessage(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *MissionUpdateOne) ClearErrorMessage() *MissionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetIteration sets the "iteration" field.
func (_u *MissionUpdateOne) SetIteration(v int) *MissionUpdateOne {
	_u.mutation.ResetIteration()
	_u.mutation.SetIteration(v)
	return _u
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableIteration(v *int) *MissionUpdateOne {
	if v != nil {
		_u.SetIteration(*v)
	}
	return _u
}

// AddIteration adds value to the "iteration" field.
func (_u *MissionUpdateOne) AddIteration(v int) *MissionUpdateOne {
	_u.mutation.AddIteration(v)
	return _u
}

// SetPlanHashes sets the "plan_hashes" field.
func (_u *MissionUpdateOne) SetPlanHashes(v []string) *MissionUpdateOne {
	_u.mutation.SetPlanHashes(v)
	return _u
}

// AppendPlanHashes appends value to the "plan_hashes" field.
func (_u *MissionUpdateOne) AppendPlanHashes(v []string) *MissionUpdateOne {
	_u.mutation.AppendPlanHashes(v)
	return _u
}

// ClearPlanHashes clears the value of the "plan_hashes" field.
func (_u *MissionUpdateOne) ClearPlanHashes() *MissionUpdateOne {
	_u.mutation.ClearPlanHashes()
	return _u
}

// SetForceResearch sets the "force_research" field.
func (_u *MissionUpdateOne) SetForceResearch(v bool) *MissionUpdateOne {
	_u.mutation.SetForceResearch(v)
	return _u
}

// SetNillableForceResearch sets the "force_research" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableForceResearch(v *bool) *MissionUpdateOne {
	if v != nil {
		_u.SetForceResearch(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *MissionUpdateOne) SetIdempotencyKey(v string) *MissionUpdateOne {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableIdempotencyKey(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *MissionUpdateOne) ClearIdempotencyKey() *MissionUpdateOne {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *MissionUpdateOne) SetNodeID(v string) *MissionUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableNodeID(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// ClearNodeID clears the value of the "node_id" field.
func (_u *MissionUpdateOne) ClearNodeID() *MissionUpdateOne {
	_u.mutation.ClearNodeID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MissionUpdateOne) SetUpdatedAt(v time.Time) *MissionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *MissionUpdateOne) SetStartedAt(v time.Time) *MissionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableStartedAt(v *time.Time) *MissionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *MissionUpdateOne) ClearStartedAt() *MissionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MissionUpdateOne) SetCompletedAt(v time.Time) *MissionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableCompletedAt(v *time.Time) *MissionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MissionUpdateOne) ClearCompletedAt() *MissionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *MissionUpdateOne) AddTaskIDs(ids ...string) *MissionUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *MissionUpdateOne) AddTasks(v ...*Task) *MissionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddEventIDs adds the "events" edge to the MissionEvent entity by IDs.
func (_u *MissionUpdateOne) AddEventIDs(ids ...int) *MissionUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the MissionEvent entity.
func (_u *MissionUpdateOne) AddEvents(v ...*MissionEvent) *MissionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddOutboxEntryIDs adds the "outbox_entries" edge to the OutboxEntry entity by IDs.
func (_u *MissionUpdateOne) AddOutboxEntryIDs(ids ...int) *MissionUpdateOne {
	_u.mutation.AddOutboxEntryIDs(ids...)
	return _u
}

// AddOutboxEntries adds the "outbox_entries" edges to the OutboxEntry entity.
func (_u *MissionUpdateOne) AddOutboxEntries(v ...*OutboxEntry) *MissionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutboxEntryIDs(ids...)
}

// Mutation returns the MissionMutation object of the builder.
func (_u *MissionUpdateOne) Mutation() *MissionMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *MissionUpdateOne) ClearTasks() *MissionUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *MissionUpdateOne) RemoveTaskIDs(ids ...string) *MissionUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *MissionUpdateOne) RemoveTasks(v ...*Task) *MissionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearEvents clears all "events" edges to the MissionEvent entity.
func (_u *MissionUpdateOne) ClearEvents() *MissionUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to MissionEvent entities by IDs.
func (_u *MissionUpdateOne) RemoveEventIDs(ids ...int) *MissionUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to MissionEvent entities.
func (_u *MissionUpdateOne) RemoveEvents(v ...*MissionEvent) *MissionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearOutboxEntries clears all "outbox_entries" edges to the OutboxEntry entity.
func (_u *MissionUpdateOne) ClearOutboxEntries() *MissionUpdateOne {
	_u.mutation.ClearOutboxEntries()
	return _u
}

// RemoveOutboxEntryIDs removes the "outbox_entries" edge to OutboxEntry entities by IDs.
func (_u *MissionUpdateOne) RemoveOutboxEntryIDs(ids ...int) *MissionUpdateOne {
	_u.mutation.RemoveOutboxEntryIDs(ids...)
	return _u
}

// RemoveOutboxEntries removes "outbox_entries" edges to OutboxEntry entities.
func (_u *MissionUpdateOne) RemoveOutboxEntries(v ...*OutboxEntry) *MissionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutboxEntryIDs(ids...)
}

// Where appends a list predicates to the MissionUpdate builder.
func (_u *MissionUpdateOne) Where(ps ...predicate.Mission) *MissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MissionUpdateOne) Select(field string, fields ...string) *MissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Mission entity.
func (_u *MissionUpdateOne) Save(ctx context.Context) (*Mission, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissionUpdateOne) SaveX(ctx context.Context) *Mission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MissionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MissionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := mission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Mission.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MissionUpdateOne) sqlSave(ctx context.Context) (_node *Mission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mission.Table, mission.Columns, sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Mission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mission.FieldID)
		for _, f := range fields {
			if !mission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mission.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Objective(); ok {
		_spec.SetField(mission.FieldObjective, field.TypeString, value)
	}
	if value, ok := _u.mutation.Initiator(); ok {
		_spec.SetField(mission.FieldInitiator, field.TypeString, value)
	}
	if _u.mutation.InitiatorCleared() {
		_spec.ClearField(mission.FieldInitiator, field.TypeString)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(mission.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(mission.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(mission.FieldPriority, field.TypeString, value)
	}
	if _u.mutation.PriorityCleared() {
		_spec.ClearField(mission.FieldPriority, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(mission.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(mission.FieldOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(mission.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(mission.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(mission.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(mission.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Iteration(); ok {
		_spec.SetField(mission.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIteration(); ok {
		_spec.AddField(mission.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlanHashes(); ok {
		_spec.SetField(mission.FieldPlanHashes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlanHashes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mission.FieldPlanHashes, value)
		})
	}
	if _u.mutation.PlanHashesCleared() {
		_spec.ClearField(mission.FieldPlanHashes, field.TypeJSON)
	}
	if value, ok := _u.mutation.ForceResearch(); ok {
		_spec.SetField(mission.FieldForceResearch, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(mission.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(mission.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(mission.FieldNodeID, field.TypeString, value)
	}
	if _u.mutation.NodeIDCleared() {
		_spec.ClearField(mission.FieldNodeID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mission.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(mission.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(mission.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(mission.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(mission.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.TasksTable,
			Columns: []string{mission.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.TasksTable,
			Columns: []string{mission.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.TasksTable,
			Columns: []string{mission.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.EventsTable,
			Columns: []string{mission.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(missionevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.EventsTable,
			Columns: []string{mission.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(missionevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.EventsTable,
			Columns: []string{mission.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(missionevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutboxEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.OutboxEntriesTable,
			Columns: []string{mission.OutboxEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outboxentry.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutboxEntriesIDs(); len(nodes) > 0 && !_u.mutation.OutboxEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.OutboxEntriesTable,
			Columns: []string{mission.OutboxEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outboxentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutboxEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.OutboxEntriesTable,
			Columns: []string{mission.OutboxEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outboxentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Mission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
