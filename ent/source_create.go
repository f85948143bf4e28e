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
	"github.com/kollektiv-ai/kollektiv/ent/sourcesummary"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

// SourceCreate is the builder for creating a Source entity.
type SourceCreate struct {
	config
	mutation *SourceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *SourceCreate) SetUserID(v uuid.UUID) *SourceCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *SourceCreate) SetRequestID(v uuid.UUID) *SourceCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *SourceCreate) SetSourceType(v source.SourceType) *SourceCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_c *SourceCreate) SetNillableSourceType(v *source.SourceType) *SourceCreate {
	if v != nil {
		_c.SetSourceType(*v)
	}
	return _c
}

// SetStage sets the "stage" field.
func (_c *SourceCreate) SetStage(v source.Stage) *SourceCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *SourceCreate) SetNillableStage(v *source.Stage) *SourceCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *SourceCreate) SetJobID(v uuid.UUID) *SourceCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_c *SourceCreate) SetNillableJobID(v *uuid.UUID) *SourceCreate {
	if v != nil {
		_c.SetJobID(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *SourceCreate) SetMetadata(v models.SourceMetadata) *SourceCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetNillableMetadata sets the "metadata" field if the given value is not nil.
func (_c *SourceCreate) SetNillableMetadata(v *models.SourceMetadata) *SourceCreate {
	if v != nil {
		_c.SetMetadata(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SourceCreate) SetErrorMessage(v string) *SourceCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SourceCreate) SetNillableErrorMessage(v *string) *SourceCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SourceCreate) SetCreatedAt(v time.Time) *SourceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SourceCreate) SetNillableCreatedAt(v *time.Time) *SourceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SourceCreate) SetUpdatedAt(v time.Time) *SourceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SourceCreate) SetNillableUpdatedAt(v *time.Time) *SourceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SourceCreate) SetID(v uuid.UUID) *SourceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SourceCreate) SetNillableID(v *uuid.UUID) *SourceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_c *SourceCreate) AddDocumentIDs(ids ...uuid.UUID) *SourceCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_c *SourceCreate) AddDocuments(v ...*Document) *SourceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// AddChunkIDs adds the "chunks" edge to the Chunk entity by IDs.
func (_c *SourceCreate) AddChunkIDs(ids ...uuid.UUID) *SourceCreate {
	_c.mutation.AddChunkIDs(ids...)
	return _c
}

// AddChunks adds the "chunks" edges to the Chunk entity.
func (_c *SourceCreate) AddChunks(v ...*Chunk) *SourceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChunkIDs(ids...)
}

// SetSummaryID sets the "summary" edge to the SourceSummary entity by ID.
func (_c *SourceCreate) SetSummaryID(id uuid.UUID) *SourceCreate {
	_c.mutation.SetSummaryID(id)
	return _c
}

// SetNillableSummaryID sets the "summary" edge to the SourceSummary entity by ID if the given value is not nil.
func (_c *SourceCreate) SetNillableSummaryID(id *uuid.UUID) *SourceCreate {
	if id != nil {
		_c = _c.SetSummaryID(*id)
	}
	return _c
}

// SetSummary sets the "summary" edge to the SourceSummary entity.
func (_c *SourceCreate) SetSummary(v *SourceSummary) *SourceCreate {
	return _c.SetSummaryID(v.ID)
}

// Mutation returns the SourceMutation object of the builder.
func (_c *SourceCreate) Mutation() *SourceMutation {
	return _c.mutation
}

// Save creates the Source in the database.
func (_c *SourceCreate) Save(ctx context.Context) (*Source, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceCreate) SaveX(ctx context.Context) *Source {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SourceCreate) defaults() {
	if _, ok := _c.mutation.SourceType(); !ok {
		v := source.DefaultSourceType
		_c.mutation.SetSourceType(v)
	}
	if _, ok := _c.mutation.Stage(); !ok {
		v := source.DefaultStage
		_c.mutation.SetStage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := source.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := source.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := source.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Source.user_id"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "Source.request_id"`)}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "Source.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := source.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Source.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "Source.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := source.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Source.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Source.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Source.updated_at"`)}
	}
	return nil
}

func (_c *SourceCreate) sqlSave(ctx context.Context) (*Source, error) {
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

func (_c *SourceCreate) createSpec() (*Source, *sqlgraph.CreateSpec) {
	var (
		_node = &Source{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(source.Table, sqlgraph.NewFieldSpec(source.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(source.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(source.FieldRequestID, field.TypeUUID, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(source.FieldSourceType, field.TypeEnum, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(source.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(source.FieldJobID, field.TypeUUID, value)
		_node.JobID = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(source.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(source.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(source.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(source.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   source.DocumentsTable,
			Columns: []string{source.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChunksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   source.ChunksTable,
			Columns: []string{source.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SummaryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   source.SummaryTable,
			Columns: []string{source.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourcesummary.FieldID, field.TypeUUID),
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
//	client.Source.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceCreate) OnConflict(opts ...sql.ConflictOption) *SourceUpsertOne {
	_c.conflict = opts
	return &SourceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Source.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceCreate) OnConflictColumns(columns ...string) *SourceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceUpsertOne{
		create: _c,
	}
}

type (
	// SourceUpsertOne is the builder for "upsert"-ing
	//  one Source node.
	SourceUpsertOne struct {
		create *SourceCreate
	}

	// SourceUpsert is the "OnConflict" setter.
	SourceUpsert struct {
		*sql.UpdateSet
	}
)

// SetSourceType sets the "source_type" field.
func (u *SourceUpsert) SetSourceType(v source.SourceType) *SourceUpsert {
	u.Set(source.FieldSourceType, v)
	return u
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *SourceUpsert) UpdateSourceType() *SourceUpsert {
	u.SetExcluded(source.FieldSourceType)
	return u
}

// SetStage sets the "stage" field.
func (u *SourceUpsert) SetStage(v source.Stage) *SourceUpsert {
	u.Set(source.FieldStage, v)
	return u
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *SourceUpsert) UpdateStage() *SourceUpsert {
	u.SetExcluded(source.FieldStage)
	return u
}

// SetJobID sets the "job_id" field.
func (u *SourceUpsert) SetJobID(v uuid.UUID) *SourceUpsert {
	u.Set(source.FieldJobID, v)
	return u
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *SourceUpsert) UpdateJobID() *SourceUpsert {
	u.SetExcluded(source.FieldJobID)
	return u
}

// ClearJobID clears the value of the "job_id" field.
func (u *SourceUpsert) ClearJobID() *SourceUpsert {
	u.SetNull(source.FieldJobID)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *SourceUpsert) SetMetadata(v models.SourceMetadata) *SourceUpsert {
	u.Set(source.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *SourceUpsert) UpdateMetadata() *SourceUpsert {
	u.SetExcluded(source.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *SourceUpsert) ClearMetadata() *SourceUpsert {
	u.SetNull(source.FieldMetadata)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *SourceUpsert) SetErrorMessage(v string) *SourceUpsert {
	u.Set(source.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SourceUpsert) UpdateErrorMessage() *SourceUpsert {
	u.SetExcluded(source.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SourceUpsert) ClearErrorMessage() *SourceUpsert {
	u.SetNull(source.FieldErrorMessage)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SourceUpsert) SetUpdatedAt(v time.Time) *SourceUpsert {
	u.Set(source.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SourceUpsert) UpdateUpdatedAt() *SourceUpsert {
	u.SetExcluded(source.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Source.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(source.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SourceUpsertOne) UpdateNewValues() *SourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(source.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(source.FieldUserID)
		}
		if _, exists := u.create.mutation.RequestID(); exists {
			s.SetIgnore(source.FieldRequestID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(source.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Source.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SourceUpsertOne) Ignore() *SourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceUpsertOne) DoNothing() *SourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceCreate.OnConflict
// documentation for more info.
func (u *SourceUpsertOne) Update(set func(*SourceUpsert)) *SourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceType sets the "source_type" field.
func (u *SourceUpsertOne) SetSourceType(v source.SourceType) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetSourceType(v)
	})
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateSourceType() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateSourceType()
	})
}

// SetStage sets the "stage" field.
func (u *SourceUpsertOne) SetStage(v source.Stage) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateStage() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateStage()
	})
}

// SetJobID sets the "job_id" field.
func (u *SourceUpsertOne) SetJobID(v uuid.UUID) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetJobID(v)
	})
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateJobID() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateJobID()
	})
}

// ClearJobID clears the value of the "job_id" field.
func (u *SourceUpsertOne) ClearJobID() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.ClearJobID()
	})
}

// SetMetadata sets the "metadata" field.
func (u *SourceUpsertOne) SetMetadata(v models.SourceMetadata) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateMetadata() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *SourceUpsertOne) ClearMetadata() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.ClearMetadata()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *SourceUpsertOne) SetErrorMessage(v string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateErrorMessage() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SourceUpsertOne) ClearErrorMessage() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SourceUpsertOne) SetUpdatedAt(v time.Time) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateUpdatedAt() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SourceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SourceUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SourceUpsertOne.ID is not supported by MySQL driver. Use SourceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SourceUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SourceCreateBulk is the builder for creating many Source entities in bulk.
type SourceCreateBulk struct {
	config
	err      error
	builders []*SourceCreate
	conflict []sql.ConflictOption
}

// Save creates the Source entities in the database.
func (_c *SourceCreateBulk) Save(ctx context.Context) ([]*Source, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Source, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceMutation)
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
func (_c *SourceCreateBulk) SaveX(ctx context.Context) []*Source {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Source.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceCreateBulk) OnConflict(opts ...sql.ConflictOption) *SourceUpsertBulk {
	_c.conflict = opts
	return &SourceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Source.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceCreateBulk) OnConflictColumns(columns ...string) *SourceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceUpsertBulk{
		create: _c,
	}
}

// SourceUpsertBulk is the builder for "upsert"-ing
// a bulk of Source nodes.
type SourceUpsertBulk struct {
	create *SourceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Source.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(source.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SourceUpsertBulk) UpdateNewValues() *SourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(source.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(source.FieldUserID)
			}
			if _, exists := b.mutation.RequestID(); exists {
				s.SetIgnore(source.FieldRequestID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(source.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Source.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SourceUpsertBulk) Ignore() *SourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceUpsertBulk) DoNothing() *SourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceCreateBulk.OnConflict
// documentation for more info.
func (u *SourceUpsertBulk) Update(set func(*SourceUpsert)) *SourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceType sets the "source_type" field.
func (u *SourceUpsertBulk) SetSourceType(v source.SourceType) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetSourceType(v)
	})
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateSourceType() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateSourceType()
	})
}

// SetStage sets the "stage" field.
func (u *SourceUpsertBulk) SetStage(v source.Stage) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateStage() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateStage()
	})
}

// SetJobID sets the "job_id" field.
func (u *SourceUpsertBulk) SetJobID(v uuid.UUID) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetJobID(v)
	})
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateJobID() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateJobID()
	})
}

// ClearJobID clears the value of the "job_id" field.
func (u *SourceUpsertBulk) ClearJobID() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.ClearJobID()
	})
}

// SetMetadata sets the "metadata" field.
func (u *SourceUpsertBulk) SetMetadata(v models.SourceMetadata) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateMetadata() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *SourceUpsertBulk) ClearMetadata() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.ClearMetadata()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *SourceUpsertBulk) SetErrorMessage(v string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateErrorMessage() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SourceUpsertBulk) ClearErrorMessage() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SourceUpsertBulk) SetUpdatedAt(v time.Time) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateUpdatedAt() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SourceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SourceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
