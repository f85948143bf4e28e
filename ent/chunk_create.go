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
	"github.com/kollektiv-ai/kollektiv/ent/chunk"
	"github.com/kollektiv-ai/kollektiv/ent/document"
	"github.com/kollektiv-ai/kollektiv/ent/source"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

// ChunkCreate is the builder for creating a Chunk entity.
type ChunkCreate struct {
	config
	mutation *ChunkMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSourceID sets the "source_id" field.
func (_c *ChunkCreate) SetSourceID(v uuid.UUID) *ChunkCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *ChunkCreate) SetDocumentID(v uuid.UUID) *ChunkCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetHeaders sets the "headers" field.
func (_c *ChunkCreate) SetHeaders(v models.ChunkHeaders) *ChunkCreate {
	_c.mutation.SetHeaders(v)
	return _c
}

// SetNillableHeaders sets the "headers" field if the given value is not nil.
func (_c *ChunkCreate) SetNillableHeaders(v *models.ChunkHeaders) *ChunkCreate {
	if v != nil {
		_c.SetHeaders(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *ChunkCreate) SetText(v string) *ChunkCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ChunkCreate) SetContent(v string) *ChunkCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetTokenCount sets the "token_count" field.
func (_c *ChunkCreate) SetTokenCount(v int) *ChunkCreate {
	_c.mutation.SetTokenCount(v)
	return _c
}

// SetPageTitle sets the "page_title" field.
func (_c *ChunkCreate) SetPageTitle(v string) *ChunkCreate {
	_c.mutation.SetPageTitle(v)
	return _c
}

// SetNillablePageTitle sets the "page_title" field if the given value is not nil.
func (_c *ChunkCreate) SetNillablePageTitle(v *string) *ChunkCreate {
	if v != nil {
		_c.SetPageTitle(*v)
	}
	return _c
}

// SetPageURL sets the "page_url" field.
func (_c *ChunkCreate) SetPageURL(v string) *ChunkCreate {
	_c.mutation.SetPageURL(v)
	return _c
}

// SetNillablePageURL sets the "page_url" field if the given value is not nil.
func (_c *ChunkCreate) SetNillablePageURL(v *string) *ChunkCreate {
	if v != nil {
		_c.SetPageURL(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChunkCreate) SetCreatedAt(v time.Time) *ChunkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChunkCreate) SetNillableCreatedAt(v *time.Time) *ChunkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChunkCreate) SetID(v uuid.UUID) *ChunkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ChunkCreate) SetNillableID(v *uuid.UUID) *ChunkCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSource sets the "source" edge to the Source entity.
func (_c *ChunkCreate) SetSource(v *Source) *ChunkCreate {
	return _c.SetSourceID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ChunkCreate) SetDocument(v *Document) *ChunkCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ChunkMutation object of the builder.
func (_c *ChunkCreate) Mutation() *ChunkMutation {
	return _c.mutation
}

// Save creates the Chunk in the database.
func (_c *ChunkCreate) Save(ctx context.Context) (*Chunk, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChunkCreate) SaveX(ctx context.Context) *Chunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChunkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChunkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChunkCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chunk.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := chunk.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChunkCreate) check() error {
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "Chunk.source_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Chunk.document_id"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Chunk.text"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Chunk.content"`)}
	}
	if _, ok := _c.mutation.TokenCount(); !ok {
		return &ValidationError{Name: "token_count", err: errors.New(`ent: missing required field "Chunk.token_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Chunk.created_at"`)}
	}
	if len(_c.mutation.SourceIDs()) == 0 {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required edge "Chunk.source"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "Chunk.document"`)}
	}
	return nil
}

func (_c *ChunkCreate) sqlSave(ctx context.Context) (*Chunk, error) {
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

func (_c *ChunkCreate) createSpec() (*Chunk, *sqlgraph.CreateSpec) {
	var (
		_node = &Chunk{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chunk.Table, sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Headers(); ok {
		_spec.SetField(chunk.FieldHeaders, field.TypeJSON, value)
		_node.Headers = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(chunk.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(chunk.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.TokenCount(); ok {
		_spec.SetField(chunk.FieldTokenCount, field.TypeInt, value)
		_node.TokenCount = value
	}
	if value, ok := _c.mutation.PageTitle(); ok {
		_spec.SetField(chunk.FieldPageTitle, field.TypeString, value)
		_node.PageTitle = value
	}
	if value, ok := _c.mutation.PageURL(); ok {
		_spec.SetField(chunk.FieldPageURL, field.TypeString, value)
		_node.PageURL = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chunk.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SourceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chunk.SourceTable,
			Columns: []string{chunk.SourceColumn},
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
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chunk.DocumentTable,
			Columns: []string{chunk.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Chunk.Create().
//		SetSourceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChunkUpsert) {
//			SetSourceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChunkCreate) OnConflict(opts ...sql.ConflictOption) *ChunkUpsertOne {
	_c.conflict = opts
	return &ChunkUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Chunk.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChunkCreate) OnConflictColumns(columns ...string) *ChunkUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChunkUpsertOne{
		create: _c,
	}
}

type (
	// ChunkUpsertOne is the builder for "upsert"-ing
	//  one Chunk node.
	ChunkUpsertOne struct {
		create *ChunkCreate
	}

	// ChunkUpsert is the "OnConflict" setter.
	ChunkUpsert struct {
		*sql.UpdateSet
	}
)

// SetHeaders sets the "headers" field.
func (u *ChunkUpsert) SetHeaders(v models.ChunkHeaders) *ChunkUpsert {
	u.Set(chunk.FieldHeaders, v)
	return u
}

// UpdateHeaders sets the "headers" field to the value that was provided on create.
func (u *ChunkUpsert) UpdateHeaders() *ChunkUpsert {
	u.SetExcluded(chunk.FieldHeaders)
	return u
}

// ClearHeaders clears the value of the "headers" field.
func (u *ChunkUpsert) ClearHeaders() *ChunkUpsert {
	u.SetNull(chunk.FieldHeaders)
	return u
}

// SetText sets the "text" field.
func (u *ChunkUpsert) SetText(v string) *ChunkUpsert {
	u.Set(chunk.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *ChunkUpsert) UpdateText() *ChunkUpsert {
	u.SetExcluded(chunk.FieldText)
	return u
}

// SetContent sets the "content" field.
func (u *ChunkUpsert) SetContent(v string) *ChunkUpsert {
	u.Set(chunk.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ChunkUpsert) UpdateContent() *ChunkUpsert {
	u.SetExcluded(chunk.FieldContent)
	return u
}

// SetTokenCount sets the "token_count" field.
func (u *ChunkUpsert) SetTokenCount(v int) *ChunkUpsert {
	u.Set(chunk.FieldTokenCount, v)
	return u
}

// UpdateTokenCount sets the "token_count" field to the value that was provided on create.
func (u *ChunkUpsert) UpdateTokenCount() *ChunkUpsert {
	u.SetExcluded(chunk.FieldTokenCount)
	return u
}

// AddTokenCount adds v to the "token_count" field.
func (u *ChunkUpsert) AddTokenCount(v int) *ChunkUpsert {
	u.Add(chunk.FieldTokenCount, v)
	return u
}

// SetPageTitle sets the "page_title" field.
func (u *ChunkUpsert) SetPageTitle(v string) *ChunkUpsert {
	u.Set(chunk.FieldPageTitle, v)
	return u
}

// UpdatePageTitle sets the "page_title" field to the value that was provided on create.
func (u *ChunkUpsert) UpdatePageTitle() *ChunkUpsert {
	u.SetExcluded(chunk.FieldPageTitle)
	return u
}

// ClearPageTitle clears the value of the "page_title" field.
func (u *ChunkUpsert) ClearPageTitle() *ChunkUpsert {
	u.SetNull(chunk.FieldPageTitle)
	return u
}

// SetPageURL sets the "page_url" field.
func (u *ChunkUpsert) SetPageURL(v string) *ChunkUpsert {
	u.Set(chunk.FieldPageURL, v)
	return u
}

// UpdatePageURL sets the "page_url" field to the value that was provided on create.
func (u *ChunkUpsert) UpdatePageURL() *ChunkUpsert {
	u.SetExcluded(chunk.FieldPageURL)
	return u
}

// ClearPageURL clears the value of the "page_url" field.
func (u *ChunkUpsert) ClearPageURL() *ChunkUpsert {
	u.SetNull(chunk.FieldPageURL)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Chunk.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chunk.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChunkUpsertOne) UpdateNewValues() *ChunkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(chunk.FieldID)
		}
		if _, exists := u.create.mutation.SourceID(); exists {
			s.SetIgnore(chunk.FieldSourceID)
		}
		if _, exists := u.create.mutation.DocumentID(); exists {
			s.SetIgnore(chunk.FieldDocumentID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(chunk.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Chunk.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChunkUpsertOne) Ignore() *ChunkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChunkUpsertOne) DoNothing() *ChunkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChunkCreate.OnConflict
// documentation for more info.
func (u *ChunkUpsertOne) Update(set func(*ChunkUpsert)) *ChunkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChunkUpsert{UpdateSet: update})
	}))
	return u
}

// SetHeaders sets the "headers" field.
func (u *ChunkUpsertOne) SetHeaders(v models.ChunkHeaders) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.SetHeaders(v)
	})
}

// UpdateHeaders sets the "headers" field to the value that was provided on create.
func (u *ChunkUpsertOne) UpdateHeaders() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateHeaders()
	})
}

// ClearHeaders clears the value of the "headers" field.
func (u *ChunkUpsertOne) ClearHeaders() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.ClearHeaders()
	})
}

// SetText sets the "text" field.
func (u *ChunkUpsertOne) SetText(v string) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *ChunkUpsertOne) UpdateText() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateText()
	})
}

// SetContent sets the "content" field.
func (u *ChunkUpsertOne) SetContent(v string) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ChunkUpsertOne) UpdateContent() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateContent()
	})
}

// SetTokenCount sets the "token_count" field.
func (u *ChunkUpsertOne) SetTokenCount(v int) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.SetTokenCount(v)
	})
}

// AddTokenCount adds v to the "token_count" field.
func (u *ChunkUpsertOne) AddTokenCount(v int) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.AddTokenCount(v)
	})
}

// UpdateTokenCount sets the "token_count" field to the value that was provided on create.
func (u *ChunkUpsertOne) UpdateTokenCount() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateTokenCount()
	})
}

// SetPageTitle sets the "page_title" field.
func (u *ChunkUpsertOne) SetPageTitle(v string) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.SetPageTitle(v)
	})
}

// UpdatePageTitle sets the "page_title" field to the value that was provided on create.
func (u *ChunkUpsertOne) UpdatePageTitle() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdatePageTitle()
	})
}

// ClearPageTitle clears the value of the "page_title" field.
func (u *ChunkUpsertOne) ClearPageTitle() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.ClearPageTitle()
	})
}

// SetPageURL sets the "page_url" field.
func (u *ChunkUpsertOne) SetPageURL(v string) *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.SetPageURL(v)
	})
}

// UpdatePageURL sets the "page_url" field to the value that was provided on create.
func (u *ChunkUpsertOne) UpdatePageURL() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdatePageURL()
	})
}

// ClearPageURL clears the value of the "page_url" field.
func (u *ChunkUpsertOne) ClearPageURL() *ChunkUpsertOne {
	return u.Update(func(s *ChunkUpsert) {
		s.ClearPageURL()
	})
}

// Exec executes the query.
func (u *ChunkUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChunkCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChunkUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChunkUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ChunkUpsertOne.ID is not supported by MySQL driver. Use ChunkUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChunkUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChunkCreateBulk is the builder for creating many Chunk entities in bulk.
type ChunkCreateBulk struct {
	config
	err      error
	builders []*ChunkCreate
	conflict []sql.ConflictOption
}

// Save creates the Chunk entities in the database.
func (_c *ChunkCreateBulk) Save(ctx context.Context) ([]*Chunk, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Chunk, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChunkMutation)
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
func (_c *ChunkCreateBulk) SaveX(ctx context.Context) []*Chunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChunkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChunkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Chunk.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChunkUpsert) {
//			SetSourceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChunkCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChunkUpsertBulk {
	_c.conflict = opts
	return &ChunkUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Chunk.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChunkCreateBulk) OnConflictColumns(columns ...string) *ChunkUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChunkUpsertBulk{
		create: _c,
	}
}

// ChunkUpsertBulk is the builder for "upsert"-ing
// a bulk of Chunk nodes.
type ChunkUpsertBulk struct {
	create *ChunkCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Chunk.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chunk.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChunkUpsertBulk) UpdateNewValues() *ChunkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(chunk.FieldID)
			}
			if _, exists := b.mutation.SourceID(); exists {
				s.SetIgnore(chunk.FieldSourceID)
			}
			if _, exists := b.mutation.DocumentID(); exists {
				s.SetIgnore(chunk.FieldDocumentID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(chunk.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Chunk.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChunkUpsertBulk) Ignore() *ChunkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChunkUpsertBulk) DoNothing() *ChunkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChunkCreateBulk.OnConflict
// documentation for more info.
func (u *ChunkUpsertBulk) Update(set func(*ChunkUpsert)) *ChunkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChunkUpsert{UpdateSet: update})
	}))
	return u
}

// SetHeaders sets the "headers" field.
func (u *ChunkUpsertBulk) SetHeaders(v models.ChunkHeaders) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.SetHeaders(v)
	})
}

// UpdateHeaders sets the "headers" field to the value that was provided on create.
func (u *ChunkUpsertBulk) UpdateHeaders() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateHeaders()
	})
}

// ClearHeaders clears the value of the "headers" field.
func (u *ChunkUpsertBulk) ClearHeaders() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.ClearHeaders()
	})
}

// SetText sets the "text" field.
func (u *ChunkUpsertBulk) SetText(v string) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *ChunkUpsertBulk) UpdateText() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateText()
	})
}

// SetContent sets the "content" field.
func (u *ChunkUpsertBulk) SetContent(v string) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ChunkUpsertBulk) UpdateContent() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateContent()
	})
}

// SetTokenCount sets the "token_count" field.
func (u *ChunkUpsertBulk) SetTokenCount(v int) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.SetTokenCount(v)
	})
}

// AddTokenCount adds v to the "token_count" field.
func (u *ChunkUpsertBulk) AddTokenCount(v int) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.AddTokenCount(v)
	})
}

// UpdateTokenCount sets the "token_count" field to the value that was provided on create.
func (u *ChunkUpsertBulk) UpdateTokenCount() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdateTokenCount()
	})
}

// SetPageTitle sets the "page_title" field.
func (u *ChunkUpsertBulk) SetPageTitle(v string) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.SetPageTitle(v)
	})
}

// UpdatePageTitle sets the "page_title" field to the value that was provided on create.
func (u *ChunkUpsertBulk) UpdatePageTitle() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdatePageTitle()
	})
}

// ClearPageTitle clears the value of the "page_title" field.
func (u *ChunkUpsertBulk) ClearPageTitle() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.ClearPageTitle()
	})
}

// SetPageURL sets the "page_url" field.
func (u *ChunkUpsertBulk) SetPageURL(v string) *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.SetPageURL(v)
	})
}

// UpdatePageURL sets the "page_url" field to the value that was provided on create.
func (u *ChunkUpsertBulk) UpdatePageURL() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.UpdatePageURL()
	})
}

// ClearPageURL clears the value of the "page_url" field.
func (u *ChunkUpsertBulk) ClearPageURL() *ChunkUpsertBulk {
	return u.Update(func(s *ChunkUpsert) {
		s.ClearPageURL()
	})
}

// Exec executes the query.
func (u *ChunkUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChunkCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChunkCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChunkUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
