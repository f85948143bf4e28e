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
	"github.com/google/uuid"
	"github.com/kollektiv-ai/kollektiv/ent/source"
	"github.com/kollektiv-ai/kollektiv/ent/sourcesummary"
)

// SourceSummaryCreate is the builder for creating a SourceSummary entity.
type SourceSummaryCreate struct {
	config
	mutation *SourceSummaryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSourceID sets the "source_id" field.
func (_c *SourceSummaryCreate) SetSourceID(v uuid.UUID) *SourceSummaryCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *SourceSummaryCreate) SetSummary(v string) *SourceSummaryCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetKeywords sets the "keywords" field.
func (_c *SourceSummaryCreate) SetKeywords(v []string) *SourceSummaryCreate {
	_c.mutation.SetKeywords(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SourceSummaryCreate) SetCreatedAt(v time.Time) *SourceSummaryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SourceSummaryCreate) SetNillableCreatedAt(v *time.Time) *SourceSummaryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SourceSummaryCreate) SetID(v uuid.UUID) *SourceSummaryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SourceSummaryCreate) SetNillableID(v *uuid.UUID) *SourceSummaryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSource sets the "source" edge to the Source entity.
func (_c *SourceSummaryCreate) SetSource(v *Source) *SourceSummaryCreate {
	return _c.SetSourceID(v.ID)
}

// Mutation returns the SourceSummaryMutation object of the builder.
func (_c *SourceSummaryCreate) Mutation() *SourceSummaryMutation {
	return _c.mutation
}

// Save creates the SourceSummary in the database.
func (_c *SourceSummaryCreate) Save(ctx context.Context) (*SourceSummary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceSummaryCreate) SaveX(ctx context.Context) *SourceSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceSummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceSummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SourceSummaryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sourcesummary.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := sourcesummary.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceSummaryCreate) check() error {
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "SourceSummary.source_id"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "SourceSummary.summary"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SourceSummary.created_at"`)}
	}
	if len(_c.mutation.SourceIDs()) == 0 {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required edge "SourceSummary.source"`)}
	}
	return nil
}

func (_c *SourceSummaryCreate) sqlSave(ctx context.Context) (*SourceSummary, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SourceSummaryCreate) createSpec() (*SourceSummary, *sqlgraph.CreateSpec) {
	var (
		_node = &SourceSummary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sourcesummary.Table, sqlgraph.NewFieldSpec(sourcesummary.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(sourcesummary.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Keywords(); ok {
		_spec.SetField(sourcesummary.FieldKeywords, field.TypeJSON, value)
		_node.Keywords = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sourcesummary.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SourceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   sourcesummary.SourceTable,
			Columns: []string{sourcesummary.SourceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(source.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SourceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SourceSummary.Create().
//		SetSourceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceSummaryUpsert) {
//			SetSourceID(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceSummaryCreate) OnConflict(opts ...sql.ConflictOption) *SourceSummaryUpsertOne {
	_c.conflict = opts
	return &SourceSummaryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SourceSummary.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceSummaryCreate) OnConflictColumns(columns ...string) *SourceSummaryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceSummaryUpsertOne{
		create: _c,
	}
}

type (
	// SourceSummaryUpsertOne is the builder for "upsert"-ing
	//  one SourceSummary node.
	SourceSummaryUpsertOne struct {
		create *SourceSummaryCreate
	}

	// SourceSummaryUpsert is the "OnConflict" setter.
	SourceSummaryUpsert struct {
		*sql.UpdateSet
	}
)

// SetSummary sets the "summary" field.
func (u *SourceSummaryUpsert) SetSummary(v string) *SourceSummaryUpsert {
	u.Set(sourcesummary.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *SourceSummaryUpsert) UpdateSummary() *SourceSummaryUpsert {
	u.SetExcluded(sourcesummary.FieldSummary)
	return u
}

// SetKeywords sets the "keywords" field.
func (u *SourceSummaryUpsert) SetKeywords(v []string) *SourceSummaryUpsert {
	u.Set(sourcesummary.FieldKeywords, v)
	return u
}

// UpdateKeywords sets the "keywords" field to the value that was provided on create.
func (u *SourceSummaryUpsert) UpdateKeywords() *SourceSummaryUpsert {
	u.SetExcluded(sourcesummary.FieldKeywords)
	return u
}

// ClearKeywords clears the value of the "keywords" field.
func (u *SourceSummaryUpsert) ClearKeywords() *SourceSummaryUpsert {
	u.SetNull(sourcesummary.FieldKeywords)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SourceSummary.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sourcesummary.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SourceSummaryUpsertOne) UpdateNewValues() *SourceSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sourcesummary.FieldID)
		}
		if _, exists := u.create.mutation.SourceID(); exists {
			s.SetIgnore(sourcesummary.FieldSourceID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(sourcesummary.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SourceSummary.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SourceSummaryUpsertOne) Ignore() *SourceSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceSummaryUpsertOne) DoNothing() *SourceSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceSummaryCreate.OnConflict
// documentation for more info.
func (u *SourceSummaryUpsertOne) Update(set func(*SourceSummaryUpsert)) *SourceSummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceSummaryUpsert{UpdateSet: update})
	}))
	return u
}

// SetSummary sets the "summary" field.
func (u *SourceSummaryUpsertOne) SetSummary(v string) *SourceSummaryUpsertOne {
	return u.Update(func(s *SourceSummaryUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *SourceSummaryUpsertOne) UpdateSummary() *SourceSummaryUpsertOne {
	return u.Update(func(s *SourceSummaryUpsert) {
		s.UpdateSummary()
	})
}

// SetKeywords sets the "keywords" field.
func (u *SourceSummaryUpsertOne) SetKeywords(v []string) *SourceSummaryUpsertOne {
	return u.Update(func(s *SourceSummaryUpsert) {
		s.SetKeywords(v)
	})
}

// UpdateKeywords sets the "keywords" field to the value that was provided on create.
func (u *SourceSummaryUpsertOne) UpdateKeywords() *SourceSummaryUpsertOne {
	return u.Update(func(s *SourceSummaryUpsert) {
		s.UpdateKeywords()
	})
}

// ClearKeywords clears the value of the "keywords" field.
func (u *SourceSummaryUpsertOne) ClearKeywords() *SourceSummaryUpsertOne {
	return u.Update(func(s *SourceSummaryUpsert) {
		s.ClearKeywords()
	})
}

// Exec executes the query.
func (u *SourceSummaryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceSummaryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceSummaryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SourceSummaryUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SourceSummaryUpsertOne.ID is not supported by MySQL driver. Use SourceSummaryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SourceSummaryUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SourceSummaryCreateBulk is the builder for creating many SourceSummary entities in bulk.
type SourceSummaryCreateBulk struct {
	config
	err      error
	builders []*SourceSummaryCreate
	conflict []sql.ConflictOption
}

// Save creates the SourceSummary entities in the database.
func (_c *SourceSummaryCreateBulk) Save(ctx context.Context) ([]*SourceSummary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SourceSummary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceSummaryMutation)
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
func (_c *SourceSummaryCreateBulk) SaveX(ctx context.Context) []*SourceSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceSummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceSummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SourceSummary.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceSummaryUpsert) {
//			SetSourceID(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceSummaryCreateBulk) OnConflict(opts ...sql.ConflictOption) *SourceSummaryUpsertBulk {
	_c.conflict = opts
	return &SourceSummaryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SourceSummary.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceSummaryCreateBulk) OnConflictColumns(columns ...string) *SourceSummaryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceSummaryUpsertBulk{
		create: _c,
	}
}

// SourceSummaryUpsertBulk is the builder for "upsert"-ing
// a bulk of SourceSummary nodes.
type SourceSummaryUpsertBulk struct {
	create *SourceSummaryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SourceSummary.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sourcesummary.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SourceSummaryUpsertBulk) UpdateNewValues() *SourceSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sourcesummary.FieldID)
			}
			if _, exists := b.mutation.SourceID(); exists {
				s.SetIgnore(sourcesummary.FieldSourceID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(sourcesummary.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SourceSummary.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SourceSummaryUpsertBulk) Ignore() *SourceSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceSummaryUpsertBulk) DoNothing() *SourceSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceSummaryCreateBulk.OnConflict
// documentation for more info.
func (u *SourceSummaryUpsertBulk) Update(set func(*SourceSummaryUpsert)) *SourceSummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceSummaryUpsert{UpdateSet: update})
	}))
	return u
}

// SetSummary sets the "summary" field.
func (u *SourceSummaryUpsertBulk) SetSummary(v string) *SourceSummaryUpsertBulk {
	return u.Update(func(s *SourceSummaryUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *SourceSummaryUpsertBulk) UpdateSummary() *SourceSummaryUpsertBulk {
	return u.Update(func(s *SourceSummaryUpsert) {
		s.UpdateSummary()
	})
}

// SetKeywords sets the "keywords" field.
func (u *SourceSummaryUpsertBulk) SetKeywords(v []string) *SourceSummaryUpsertBulk {
	return u.Update(func(s *SourceSummaryUpsert) {
		s.SetKeywords(v)
	})
}

// UpdateKeywords sets the "keywords" field to the value that was provided on create.
func (u *SourceSummaryUpsertBulk) UpdateKeywords() *SourceSummaryUpsertBulk {
	return u.Update(func(s *SourceSummaryUpsert) {
		s.UpdateKeywords()
	})
}

// ClearKeywords clears the value of the "keywords" field.
func (u *SourceSummaryUpsertBulk) ClearKeywords() *SourceSummaryUpsertBulk {
	return u.Update(func(s *SourceSummaryUpsert) {
		s.ClearKeywords()
	})
}

// Exec executes the query.
func (u *SourceSummaryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SourceSummaryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceSummaryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceSummaryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
