// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/helmsman-ai/helmsman/ent/mission"
	"github.com/helmsman-ai/helmsman/ent/missionevent"
	"github.com/helmsman-ai/helmsman/ent/outboxentry"
	"github.com/helmsman-ai/helmsman/ent/task"
)

// MissionCreate is the builder for creating a Mission entity.
type MissionCreate struct {
	config
	mutation *MissionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetObjective sets the "objective" field.
func (_c *MissionCreate) SetObjective(v string) *MissionCreate {
	_c.mutation.SetObjective(v)
	return _c
}

// SetInitiator sets the "initiator" field.
func (_c *MissionCreate) SetInitiator(v string) *MissionCreate {
	_c.mutation.SetInitiator(v)
	return _c
}

// SetNillableInitiator sets the "initiator" field if the given value is not nil.
func (_c *MissionCreate) SetNillableInitiator(v *string) *MissionCreate {
	if v != nil {
		_c.SetInitiator(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *MissionCreate) SetContext(v map[string]interface{}) *MissionCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *MissionCreate) SetPriority(v string) *MissionCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *MissionCreate) SetNillablePriority(v *string) *MissionCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MissionCreate) SetStatus(v mission.Status) *MissionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MissionCreate) SetNillableStatus(v *mission.Status) *MissionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *MissionCreate) SetOutcome(v string) *MissionCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *MissionCreate) SetNillableOutcome(v *string) *MissionCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *MissionCreate) SetResult(v map[string]interface{}) *MissionCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *MissionCreate) SetErrorMessage(v string) *MissionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *MissionCreate) SetNillableErrorMessage(v *string) *MissionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetIteration sets the "iteration" field.
func (_c *MissionCreate) SetIteration(v int) *MissionCreate {
	_c.mutation.SetIteration(v)
	return _c
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_c *MissionCreate) SetNillableIteration(v *int) *MissionCreate {
	if v != nil {
		_c.SetIteration(*v)
	}
	return _c
}

// SetPlanHashes sets the "plan_hashes" field.
func (_c *MissionCreate) SetPlanHashes(v []string) *MissionCreate {
	_c.mutation.SetPlanHashes(v)
	return _c
}

// SetForceResearch sets the "force_research" field.
func (_c *MissionCreate) SetForceResearch(v bool) *MissionCreate {
	_c.mutation.SetForceResearch(v)
	return _c
}

// SetNillableForceResearch sets the "force_research" field if the given value is not nil.
func (_c *MissionCreate) SetNillableForceResearch(v *bool) *MissionCreate {
	if v != nil {
		_c.SetForceResearch(*v)
	}
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *MissionCreate) SetIdempotencyKey(v string) *MissionCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_c *MissionCreate) SetNillableIdempotencyKey(v *string) *MissionCreate {
	if v != nil {
		_c.SetIdempotencyKey(*v)
	}
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *MissionCreate) SetNodeID(v string) *MissionCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_c *MissionCreate) SetNillableNodeID(v *string) *MissionCreate {
	if v != nil {
		_c.SetNodeID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MissionCreate) SetCreatedAt(v time.Time) *MissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableCreatedAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MissionCreate) SetUpdatedAt(v time.Time) *MissionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableUpdatedAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *MissionCreate) SetStartedAt(v time.Time) *MissionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableStartedAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *MissionCreate) SetCompletedAt(v time.Time) *MissionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableCompletedAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MissionCreate) SetID(v string) *MissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_c *MissionCreate) AddTaskIDs(ids ...string) *MissionCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_c *MissionCreate) AddTasks(v ...*Task) *MissionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// AddEventIDs adds the "events" edge to the MissionEvent entity by IDs.
func (_c *MissionCreate) AddEventIDs(ids ...int) *MissionCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the MissionEvent entity.
func (_c *MissionCreate) AddEvents(v ...*MissionEvent) *MissionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddOutboxEntryIDs adds the "outbox_entries" edge to the OutboxEntry entity by IDs.
func (_c *MissionCreate) AddOutboxEntryIDs(ids ...int) *MissionCreate {
	_c.mutation.AddOutboxEntryIDs(ids...)
	return _c
}

// AddOutboxEntries adds the "outbox_entries" edges to the OutboxEntry entity.
func (_c *MissionCreate) AddOutboxEntries(v ...*OutboxEntry) *MissionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOutboxEntryIDs(ids...)
}

// Mutation returns the MissionMutation object of the builder.
func (_c *MissionCreate) Mutation() *MissionMutation {
	return _c.mutation
}

// Save creates the Mission in the database.
func (_c *MissionCreate) Save(ctx context.Context) (*Mission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MissionCreate) SaveX(ctx context.Context) *Mission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MissionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := mission.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Iteration(); !ok {
		v := mission.DefaultIteration
		_c.mutation.SetIteration(v)
	}
	if _, ok := _c.mutation.ForceResearch(); !ok {
		v := mission.DefaultForceResearch
		_c.mutation.SetForceResearch(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := mission.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MissionCreate) check() error {
	if _, ok := _c.mutation.Objective(); !ok {
		return &ValidationError{Name: "objective", err: errors.New(`ent: missing required field "Mission.objective"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Mission.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := mission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Mission.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Iteration(); !ok {
		return &ValidationError{Name: "iteration", err: errors.New(`ent: missing required field "Mission.iteration"`)}
	}
	if _, ok := _c.mutation.ForceResearch(); !ok {
		return &ValidationError{Name: "force_research", err: errors.New(`ent: missing required field "Mission.force_research"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Mission.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Mission.updated_at"`)}
	}
	return nil
}

func (_c *MissionCreate) sqlSave(ctx context.Context) (*Mission, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Mission.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MissionCreate) createSpec() (*Mission, *sqlgraph.CreateSpec) {
	var (
		_node = &Mission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mission.Table, sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Objective(); ok {
		_spec.SetField(mission.FieldObjective, field.TypeString, value)
		_node.Objective = value
	}
	if value, ok := _c.mutation.Initiator(); ok {
		_spec.SetField(mission.FieldInitiator, field.TypeString, value)
		_node.Initiator = &value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(mission.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(mission.FieldPriority, field.TypeString, value)
		_node.Priority = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(mission.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(mission.FieldOutcome, field.TypeString, value)
		_node.Outcome = &value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(mission.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(mission.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Iteration(); ok {
		_spec.SetField(mission.FieldIteration, field.TypeInt, value)
		_node.Iteration = value
	}
	if value, ok := _c.mutation.PlanHashes(); ok {
		_spec.SetField(mission.FieldPlanHashes, field.TypeJSON, value)
		_node.PlanHashes = value
	}
	if value, ok := _c.mutation.ForceResearch(); ok {
		_spec.SetField(mission.FieldForceResearch, field.TypeBool, value)
		_node.ForceResearch = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(mission.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = &value
	}
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(mission.FieldNodeID, field.TypeString, value)
		_node.NodeID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(mission.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(mission.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(mission.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OutboxEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Mission.Create().
//		SetObjective(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MissionUpsert) {
//			SetObjective(v+v).
//		}).
//		Exec(ctx)
func (_c *MissionCreate) OnConflict(opts ...sql.ConflictOption) *MissionUpsertOne {
	_c.conflict = opts
	return &MissionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Mission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MissionCreate) OnConflictColumns(columns ...string) *MissionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MissionUpsertOne{
		create: _c,
	}
}

type (
	// MissionUpsertOne is the builder for "upsert"-ing
	//  one Mission node.
	MissionUpsertOne struct {
		create *MissionCreate
	}

	// MissionUpsert is the "OnConflict" setter.
	MissionUpsert struct {
		*sql.UpdateSet
	}
)

// SetObjective sets the "objective" field.
func (u *MissionUpsert) SetObjective(v string) *MissionUpsert {
	u.Set(mission.FieldObjective, v)
	return u
}

// UpdateObjective sets the "objective" field to the value that was provided on create.
func (u *MissionUpsert) UpdateObjective() *MissionUpsert {
	u.SetExcluded(mission.FieldObjective)
	return u
}

// SetInitiator sets the "initiator" field.
func (u *MissionUpsert) SetInitiator(v string) *MissionUpsert {
	u.Set(mission.FieldInitiator, v)
	return u
}

// UpdateInitiator sets the "initiator" field to the value that was provided on create.
func (u *MissionUpsert) UpdateInitiator() *MissionUpsert {
	u.SetExcluded(mission.FieldInitiator)
	return u
}

// ClearInitiator clears the value of the "initiator" field.
func (u *MissionUpsert) ClearInitiator() *MissionUpsert {
	u.SetNull(mission.FieldInitiator)
	return u
}

// SetContext sets the "context" field.
func (u *MissionUpsert) SetContext(v map[string]interface{}) *MissionUpsert {
	u.Set(mission.FieldContext, v)
	return u
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *MissionUpsert) UpdateContext() *MissionUpsert {
	u.SetExcluded(mission.FieldContext)
	return u
}

// ClearContext clears the value of the "context" field.
func (u *MissionUpsert) ClearContext() *MissionUpsert {
	u.SetNull(mission.FieldContext)
	return u
}

// SetPriority sets the "priority" field.
func (u *MissionUpsert) SetPriority(v string) *MissionUpsert {
	u.Set(mission.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *MissionUpsert) UpdatePriority() *MissionUpsert {
	u.SetExcluded(mission.FieldPriority)
	return u
}

// ClearPriority clears the value of the "priority" field.
func (u *MissionUpsert) ClearPriority() *MissionUpsert {
	u.SetNull(mission.FieldPriority)
	return u
}

// SetStatus sets the "status" field.
func (u *MissionUpsert) SetStatus(v mission.Status) *MissionUpsert {
	u.Set(mission.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MissionUpsert) UpdateStatus() *MissionUpsert {
	u.SetExcluded(mission.FieldStatus)
	return u
}

// SetOutcome sets the "outcome" field.
func (u *MissionUpsert) SetOutcome(v string) *MissionUpsert {
	u.Set(mission.FieldOutcome, v)
	return u
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *MissionUpsert) UpdateOutcome() *MissionUpsert {
	u.SetExcluded(mission.FieldOutcome)
	return u
}

// ClearOutcome clears the value of the "outcome" field.
func (u *MissionUpsert) ClearOutcome() *MissionUpsert {
	u.SetNull(mission.FieldOutcome)
	return u
}

// SetResult sets the "result" field.
func (u *MissionUpsert) SetResult(v map[string]interface{}) *MissionUpsert {
	u.Set(mission.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *MissionUpsert) UpdateResult() *MissionUpsert {
	u.SetExcluded(mission.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *MissionUpsert) ClearResult() *MissionUpsert {
	u.SetNull(mission.FieldResult)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *MissionUpsert) SetErrorMessage(v string) *MissionUpsert {
	u.Set(mission.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *MissionUpsert) UpdateErrorMessage() *MissionUpsert {
	u.SetExcluded(mission.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *MissionUpsert) ClearErrorMessage() *MissionUpsert {
	u.SetNull(mission.FieldErrorMessage)
	return u
}

// SetIteration sets the "iteration" field.
func (u *MissionUpsert) SetIteration(v int) *MissionUpsert {
	u.Set(mission.FieldIteration, v)
	return u
}

// UpdateIteration sets the "iteration" field to the value that was provided on create.
func (u *MissionUpsert) UpdateIteration() *MissionUpsert {
	u.SetExcluded(mission.FieldIteration)
	return u
}

// AddIteration adds v to the "iteration" field.
func (u *MissionUpsert) AddIteration(v int) *MissionUpsert {
	u.Add(mission.FieldIteration, v)
	return u
}

// SetPlanHashes sets the "plan_hashes" field.
func (u *MissionUpsert) SetPlanHashes(v []string) *MissionUpsert {
	u.Set(mission.FieldPlanHashes, v)
	return u
}

// UpdatePlanHashes sets the "plan_hashes" field to the value that was provided on create.
func (u *MissionUpsert) UpdatePlanHashes() *MissionUpsert {
	u.SetExcluded(mission.FieldPlanHashes)
	return u
}

// ClearPlanHashes clears the value of the "plan_hashes" field.
func (u *MissionUpsert) ClearPlanHashes() *MissionUpsert {
	u.SetNull(mission.FieldPlanHashes)
	return u
}

// SetForceResearch sets the "force_research" field.
func (u *MissionUpsert) SetForceResearch(v bool) *MissionUpsert {
	u.Set(mission.FieldForceResearch, v)
	return u
}

// UpdateForceResearch sets the "force_research" field to the value that was provided on create.
func (u *MissionUpsert) UpdateForceResearch() *MissionUpsert {
	u.SetExcluded(mission.FieldForceResearch)
	return u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *MissionUpsert) SetIdempotencyKey(v string) *MissionUpsert {
	u.Set(mission.FieldIdempotencyKey, v)
	return u
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *MissionUpsert) UpdateIdempotencyKey() *MissionUpsert {
	u.SetExcluded(mission.FieldIdempotencyKey)
	return u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (u *MissionUpsert) ClearIdempotencyKey() *MissionUpsert {
	u.SetNull(mission.FieldIdempotencyKey)
	return u
}

// SetNodeID sets the "node_id" field.
func (u *MissionUpsert) SetNodeID(v string) *MissionUpsert {
	u.Set(mission.FieldNodeID, v)
	return u
}

// UpdateNodeID sets the "node_id" field to the value that was provided on create.
func (u *MissionUpsert) UpdateNodeID() *MissionUpsert {
	u.SetExcluded(mission.FieldNodeID)
	return u
}

// ClearNodeID clears the value of the "node_id" field.
func (u *MissionUpsert) ClearNodeID() *MissionUpsert {
	u.SetNull(mission.FieldNodeID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MissionUpsert) SetUpdatedAt(v time.Time) *MissionUpsert {
	u.Set(mission.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MissionUpsert) UpdateUpdatedAt() *MissionUpsert {
	u.SetExcluded(mission.FieldUpdatedAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *MissionUpsert) SetStartedAt(v time.Time) *MissionUpsert {
	u.Set(mission.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *MissionUpsert) UpdateStartedAt() *MissionUpsert {
	u.SetExcluded(mission.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *MissionUpsert) ClearStartedAt() *MissionUpsert {
	u.SetNull(mission.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *MissionUpsert) SetCompletedAt(v time.Time) *MissionUpsert {
	u.Set(mission.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *MissionUpsert) UpdateCompletedAt() *MissionUpsert {
	u.SetExcluded(mission.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *MissionUpsert) ClearCompletedAt() *MissionUpsert {
	u.SetNull(mission.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Mission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mission.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MissionUpsertOne) UpdateNewValues() *MissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(mission.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(mission.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Mission.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MissionUpsertOne) Ignore() *MissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MissionUpsertOne) DoNothing() *MissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MissionCreate.OnConflict
// documentation for more info.
func (u *MissionUpsertOne) Update(set func(*MissionUpsert)) *MissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetObjective sets the "objective" field.
func (u *MissionUpsertOne) SetObjective(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetObjective(v)
	})
}

// UpdateObjective sets the "objective" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateObjective() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateObjective()
	})
}

// SetInitiator sets the "initiator" field.
func (u *MissionUpsertOne) SetInitiator(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetInitiator(v)
	})
}

// UpdateInitiator sets the "initiator" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateInitiator() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateInitiator()
	})
}

// ClearInitiator clears the value of the "initiator" field.
func (u *MissionUpsertOne) ClearInitiator() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearInitiator()
	})
}

// SetContext sets the "context" field.
func (u *MissionUpsertOne) SetContext(v map[string]interface{}) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateContext() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateContext()
	})
}

// ClearContext clears the value of the "context" field.
func (u *MissionUpsertOne) ClearContext() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearContext()
	})
}

// SetPriority sets the "priority" field.
func (u *MissionUpsertOne) SetPriority(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdatePriority() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdatePriority()
	})
}

// ClearPriority clears the value of the "priority" field.
func (u *MissionUpsertOne) ClearPriority() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearPriority()
	})
}

// SetStatus sets the "status" field.
func (u *MissionUpsertOne) SetStatus(v mission.Status) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateStatus() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateStatus()
	})
}

// SetOutcome sets the "outcome" field.
func (u *MissionUpsertOne) SetOutcome(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateOutcome() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateOutcome()
	})
}

// ClearOutcome clears the value of the "outcome" field.
func (u *MissionUpsertOne) ClearOutcome() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearOutcome()
	})
}

// SetResult sets the "result" field.
func (u *MissionUpsertOne) SetResult(v map[string]interface{}) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateResult() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *MissionUpsertOne) ClearResult() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearResult()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *MissionUpsertOne) SetErrorMessage(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateErrorMessage() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *MissionUpsertOne) ClearErrorMessage() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetIteration sets the "iteration" field.
func (u *MissionUpsertOne) SetIteration(v int) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetIteration(v)
	})
}

// AddIteration adds v to the "iteration" field.
func (u *MissionUpsertOne) AddIteration(v int) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.AddIteration(v)
	})
}

// UpdateIteration sets the "iteration" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateIteration() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateIteration()
	})
}

// SetPlanHashes sets the "plan_hashes" field.
func (u *MissionUpsertOne) SetPlanHashes(v []string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetPlanHashes(v)
	})
}

// UpdatePlanHashes sets the "plan_hashes" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdatePlanHashes() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdatePlanHashes()
	})
}

// ClearPlanHashes clears the value of the "plan_hashes" field.
func (u *MissionUpsertOne) ClearPlanHashes() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearPlanHashes()
	})
}

// SetForceResearch sets the "force_research" field.
func (u *MissionUpsertOne) SetForceResearch(v bool) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetForceResearch(v)
	})
}

// UpdateForceResearch sets the "force_research" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateForceResearch() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateForceResearch()
	})
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *MissionUpsertOne) SetIdempotencyKey(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetIdempotencyKey(v)
	})
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateIdempotencyKey() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateIdempotencyKey()
	})
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (u *MissionUpsertOne) ClearIdempotencyKey() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearIdempotencyKey()
	})
}

// SetNodeID sets the "node_id" field.
func (u *MissionUpsertOne) SetNodeID(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetNodeID(v)
	})
}

// UpdateNodeID sets the "node_id" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateNodeID() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateNodeID()
	})
}

// ClearNodeID clears the value of the "node_id" field.
func (u *MissionUpsertOne) ClearNodeID() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearNodeID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MissionUpsertOne) SetUpdatedAt(v time.Time) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateUpdatedAt() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *MissionUpsertOne) SetStartedAt(v time.Time) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateStartedAt() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *MissionUpsertOne) ClearStartedAt() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *MissionUpsertOne) SetCompletedAt(v time.Time) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateCompletedAt() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *MissionUpsertOne) ClearCompletedAt() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *MissionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MissionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MissionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MissionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MissionUpsertOne.ID is not supported by MySQL driver. Use MissionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MissionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MissionCreateBulk is the builder for creating many Mission entities in bulk.
type MissionCreateBulk struct {
	config
	err      error
	builders []*MissionCreate
	conflict []sql.ConflictOption
}

// Save creates the Mission entities in the database.
func (_c *MissionCreateBulk) Save(ctx context.Context) ([]*Mission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Mission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MissionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MissionCreateBulk) SaveX(ctx context.Context) []*Mission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Mission.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MissionUpsert) {
//			SetObjective(v+v).
//		}).
//		Exec(ctx)
func (_c *MissionCreateBulk) OnConflict(opts ...sql.ConflictOption) *MissionUpsertBulk {
	_c.conflict = opts
	return &MissionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Mission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MissionCreateBulk) OnConflictColumns(columns ...string) *MissionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MissionUpsertBulk{
		create: _c,
	}
}

// MissionUpsertBulk is the builder for "upsert"-ing
// a bulk of Mission nodes.
type MissionUpsertBulk struct {
	create *MissionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Mission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mission.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MissionUpsertBulk) UpdateNewValues() *MissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(mission.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(mission.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Mission.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MissionUpsertBulk) Ignore() *MissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MissionUpsertBulk) DoNothing() *MissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MissionCreateBulk.OnConflict
// documentation for more info.
func (u *MissionUpsertBulk) Update(set func(*MissionUpsert)) *MissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetObjective sets the "objective" field.
func (u *MissionUpsertBulk) SetObjective(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetObjective(v)
	})
}

// UpdateObjective sets the "objective" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateObjective() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateObjective()
	})
}

// SetInitiator sets the "initiator" field.
func (u *MissionUpsertBulk) SetInitiator(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetInitiator(v)
	})
}

// UpdateInitiator sets the "initiator" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateInitiator() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateInitiator()
	})
}

// ClearInitiator clears the value of the "initiator" field.
func (u *MissionUpsertBulk) ClearInitiator() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearInitiator()
	})
}

// SetContext sets the "context" field.
func (u *MissionUpsertBulk) SetContext(v map[string]interface{}) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateContext() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateContext()
	})
}

// ClearContext clears the value of the "context" field.
func (u *MissionUpsertBulk) ClearContext() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearContext()
	})
}

// SetPriority sets the "priority" field.
func (u *MissionUpsertBulk) SetPriority(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdatePriority() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdatePriority()
	})
}

// ClearPriority clears the value of the "priority" field.
func (u *MissionUpsertBulk) ClearPriority() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearPriority()
	})
}

// SetStatus sets the "status" field.
func (u *MissionUpsertBulk) SetStatus(v mission.Status) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateStatus() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateStatus()
	})
}

// SetOutcome sets the "outcome" field.
func (u *MissionUpsertBulk) SetOutcome(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateOutcome() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateOutcome()
	})
}

// ClearOutcome clears the value of the "outcome" field.
func (u *MissionUpsertBulk) ClearOutcome() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearOutcome()
	})
}

// SetResult sets the "result" field.
func (u *MissionUpsertBulk) SetResult(v map[string]interface{}) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateResult() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *MissionUpsertBulk) ClearResult() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearResult()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *MissionUpsertBulk) SetErrorMessage(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateErrorMessage() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *MissionUpsertBulk) ClearErrorMessage() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetIteration sets the "iteration" field.
func (u *MissionUpsertBulk) SetIteration(v int) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetIteration(v)
	})
}

// AddIteration adds v to the "iteration" field.
func (u *MissionUpsertBulk) AddIteration(v int) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.AddIteration(v)
	})
}

// UpdateIteration sets the "iteration" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateIteration() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateIteration()
	})
}

// SetPlanHashes sets the "plan_hashes" field.
func (u *MissionUpsertBulk) SetPlanHashes(v []string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetPlanHashes(v)
	})
}

// UpdatePlanHashes sets the "plan_hashes" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdatePlanHashes() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdatePlanHashes()
	})
}

// ClearPlanHashes clears the value of the "plan_hashes" field.
func (u *MissionUpsertBulk) ClearPlanHashes() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearPlanHashes()
	})
}

// SetForceResearch sets the "force_research" field.
func (u *MissionUpsertBulk) SetForceResearch(v bool) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetForceResearch(v)
	})
}

// UpdateForceResearch sets the "force_research" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateForceResearch() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateForceResearch()
	})
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *MissionUpsertBulk) SetIdempotencyKey(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetIdempotencyKey(v)
	})
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateIdempotencyKey() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateIdempotencyKey()
	})
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (u *MissionUpsertBulk) ClearIdempotencyKey() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearIdempotencyKey()
	})
}

// SetNodeID sets the "node_id" field.
func (u *MissionUpsertBulk) SetNodeID(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetNodeID(v)
	})
}

// UpdateNodeID sets the "node_id" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateNodeID() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateNodeID()
	})
}

// ClearNodeID clears the value of the "node_id" field.
func (u *MissionUpsertBulk) ClearNodeID() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearNodeID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MissionUpsertBulk) SetUpdatedAt(v time.Time) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateUpdatedAt() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *MissionUpsertBulk) SetStartedAt(v time.Time) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateStartedAt() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *MissionUpsertBulk) ClearStartedAt() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *MissionUpsertBulk) SetCompletedAt(v time.Time) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateCompletedAt() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *MissionUpsertBulk) ClearCompletedAt() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *MissionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MissionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MissionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MissionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
