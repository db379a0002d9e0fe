// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/helmsman-ai/helmsman/ent/mission"
	"github.com/helmsman-ai/helmsman/ent/outboxentry"
)

// OutboxEntryCreate is the builder for creating a OutboxEntry entity.
type OutboxEntryCreate struct {
	config
	mutation *OutboxEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMissionID sets the "mission_id" field.
func (_c *OutboxEntryCreate) SetMissionID(v string) *OutboxEntryCreate {
	_c.mutation.SetMissionID(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *OutboxEntryCreate) SetSequence(v int) *OutboxEntryCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *OutboxEntryCreate) SetEventType(v string) *OutboxEntryCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *OutboxEntryCreate) SetPayload(v map[string]interface{}) *OutboxEntryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *OutboxEntryCreate) SetStatus(v outboxentry.Status) *OutboxEntryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableStatus(v *outboxentry.Status) *OutboxEntryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *OutboxEntryCreate) SetRetryCount(v int) *OutboxEntryCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableRetryCount(v *int) *OutboxEntryCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OutboxEntryCreate) SetCreatedAt(v time.Time) *OutboxEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableCreatedAt(v *time.Time) *OutboxEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *OutboxEntryCreate) SetProcessedAt(v time.Time) *OutboxEntryCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableProcessedAt(v *time.Time) *OutboxEntryCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetMission sets the "mission" edge to the Mission entity.
func (_c *OutboxEntryCreate) SetMission(v *Mission) *OutboxEntryCreate {
	return _c.SetMissionID(v.ID)
}

// Mutation returns the OutboxEntryMutation object of the builder.
func (_c *OutboxEntryCreate) Mutation() *OutboxEntryMutation {
	return _c.mutation
}

// Save creates the OutboxEntry in the database.
func (_c *OutboxEntryCreate) Save(ctx context.Context) (*OutboxEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OutboxEntryCreate) SaveX(ctx context.Context) *OutboxEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutboxEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutboxEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OutboxEntryCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := outboxentry.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := outboxentry.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := outboxentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OutboxEntryCreate) check() error {
	if _, ok := _c.mutation.MissionID(); !ok {
		return &ValidationError{Name: "mission_id", err: errors.New(`ent: missing required field "OutboxEntry.mission_id"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "OutboxEntry.sequence"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "OutboxEntry.event_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "OutboxEntry.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := outboxentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OutboxEntry.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "OutboxEntry.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OutboxEntry.created_at"`)}
	}
	if len(_c.mutation.MissionIDs()) == 0 {
		return &ValidationError{Name: "mission", err: errors.New(`ent: missing required edge "OutboxEntry.mission"`)}
	}
	return nil
}

func (_c *OutboxEntryCreate) sqlSave(ctx context.Context) (*OutboxEntry, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OutboxEntryCreate) createSpec() (*OutboxEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &OutboxEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(outboxentry.Table, sqlgraph.NewFieldSpec(outboxentry.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(outboxentry.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(outboxentry.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(outboxentry.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(outboxentry.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(outboxentry.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(outboxentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(outboxentry.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if nodes := _c.mutation.MissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   outboxentry.MissionTable,
			Columns: []string{outboxentry.MissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MissionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OutboxEntry.Create().
//		SetMissionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OutboxEntryUpsert) {
//			SetMissionID(v+v).
//		}).
//		Exec(ctx)
func (_c *OutboxEntryCreate) OnConflict(opts ...sql.ConflictOption) *OutboxEntryUpsertOne {
	_c.conflict = opts
	return &OutboxEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OutboxEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OutboxEntryCreate) OnConflictColumns(columns ...string) *OutboxEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OutboxEntryUpsertOne{
		create: _c,
	}
}

type (
	// OutboxEntryUpsertOne is the builder for "upsert"-ing
	//  one OutboxEntry node.
	OutboxEntryUpsertOne struct {
		create *OutboxEntryCreate
	}

	// OutboxEntryUpsert is the "OnConflict" setter.
	OutboxEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *OutboxEntryUpsert) SetStatus(v outboxentry.Status) *OutboxEntryUpsert {
	u.Set(outboxentry.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OutboxEntryUpsert) UpdateStatus() *OutboxEntryUpsert {
	u.SetExcluded(outboxentry.FieldStatus)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *OutboxEntryUpsert) SetRetryCount(v int) *OutboxEntryUpsert {
	u.Set(outboxentry.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *OutboxEntryUpsert) UpdateRetryCount() *OutboxEntryUpsert {
	u.SetExcluded(outboxentry.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *OutboxEntryUpsert) AddRetryCount(v int) *OutboxEntryUpsert {
	u.Add(outboxentry.FieldRetryCount, v)
	return u
}

// SetProcessedAt sets the "processed_at" field.
func (u *OutboxEntryUpsert) SetProcessedAt(v time.Time) *OutboxEntryUpsert {
	u.Set(outboxentry.FieldProcessedAt, v)
	return u
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *OutboxEntryUpsert) UpdateProcessedAt() *OutboxEntryUpsert {
	u.SetExcluded(outboxentry.FieldProcessedAt)
	return u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *OutboxEntryUpsert) ClearProcessedAt() *OutboxEntryUpsert {
	u.SetNull(outboxentry.FieldProcessedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.OutboxEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OutboxEntryUpsertOne) UpdateNewValues() *OutboxEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.MissionID(); exists {
			s.SetIgnore(outboxentry.FieldMissionID)
		}
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(outboxentry.FieldSequence)
		}
		if _, exists := u.create.mutation.EventType(); exists {
			s.SetIgnore(outboxentry.FieldEventType)
		}
		if _, exists := u.create.mutation.Payload(); exists {
			s.SetIgnore(outboxentry.FieldPayload)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(outboxentry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OutboxEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OutboxEntryUpsertOne) Ignore() *OutboxEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OutboxEntryUpsertOne) DoNothing() *OutboxEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OutboxEntryCreate.OnConflict
// documentation for more info.
func (u *OutboxEntryUpsertOne) Update(set func(*OutboxEntryUpsert)) *OutboxEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OutboxEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *OutboxEntryUpsertOne) SetStatus(v outboxentry.Status) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OutboxEntryUpsertOne) UpdateStatus() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateStatus()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *OutboxEntryUpsertOne) SetRetryCount(v int) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *OutboxEntryUpsertOne) AddRetryCount(v int) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *OutboxEntryUpsertOne) UpdateRetryCount() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateRetryCount()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *OutboxEntryUpsertOne) SetProcessedAt(v time.Time) *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *OutboxEntryUpsertOne) UpdateProcessedAt() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *OutboxEntryUpsertOne) ClearProcessedAt() *OutboxEntryUpsertOne {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.ClearProcessedAt()
	})
}

// Exec executes the query.
func (u *OutboxEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OutboxEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OutboxEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OutboxEntryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OutboxEntryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OutboxEntryCreateBulk is the builder for creating many OutboxEntry entities in bulk.
type OutboxEntryCreateBulk struct {
	config
	err      error
	builders []*OutboxEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the OutboxEntry entities in the database.
func (_c *OutboxEntryCreateBulk) Save(ctx context.Context) ([]*OutboxEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OutboxEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OutboxEntryMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *OutboxEntryCreateBulk) SaveX(ctx context.Context) []*OutboxEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutboxEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutboxEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OutboxEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OutboxEntryUpsert) {
//			SetMissionID(v+v).
//		}).
//		Exec(ctx)
func (_c *OutboxEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *OutboxEntryUpsertBulk {
	_c.conflict = opts
	return &OutboxEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OutboxEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OutboxEntryCreateBulk) OnConflictColumns(columns ...string) *OutboxEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OutboxEntryUpsertBulk{
		create: _c,
	}
}

// OutboxEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of OutboxEntry nodes.
type OutboxEntryUpsertBulk struct {
	create *OutboxEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OutboxEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OutboxEntryUpsertBulk) UpdateNewValues() *OutboxEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.MissionID(); exists {
				s.SetIgnore(outboxentry.FieldMissionID)
			}
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(outboxentry.FieldSequence)
			}
			if _, exists := b.mutation.EventType(); exists {
				s.SetIgnore(outboxentry.FieldEventType)
			}
			if _, exists := b.mutation.Payload(); exists {
				s.SetIgnore(outboxentry.FieldPayload)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(outboxentry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OutboxEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OutboxEntryUpsertBulk) Ignore() *OutboxEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OutboxEntryUpsertBulk) DoNothing() *OutboxEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OutboxEntryCreateBulk.OnConflict
// documentation for more info.
func (u *OutboxEntryUpsertBulk) Update(set func(*OutboxEntryUpsert)) *OutboxEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OutboxEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *OutboxEntryUpsertBulk) SetStatus(v outboxentry.Status) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OutboxEntryUpsertBulk) UpdateStatus() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateStatus()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *OutboxEntryUpsertBulk) SetRetryCount(v int) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *OutboxEntryUpsertBulk) AddRetryCount(v int) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *OutboxEntryUpsertBulk) UpdateRetryCount() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateRetryCount()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *OutboxEntryUpsertBulk) SetProcessedAt(v time.Time) *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *OutboxEntryUpsertBulk) UpdateProcessedAt() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *OutboxEntryUpsertBulk) ClearProcessedAt() *OutboxEntryUpsertBulk {
	return u.Update(func(s *OutboxEntryUpsert) {
		s.ClearProcessedAt()
	})
}

// Exec executes the query.
func (u *OutboxEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OutboxEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OutboxEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OutboxEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
