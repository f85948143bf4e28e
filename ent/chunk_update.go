// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kollektiv-ai/kollektiv/ent/chunk"
	"github.com/kollektiv-ai/kollektiv/ent/predicate"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
)

// ChunkUpdate is the builder for updating Chunk entities.
type ChunkUpdate struct {
	config
	hooks     []Hook
	mutation  *ChunkMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the ChunkUpdate builder.
func (_u *ChunkUpdate) Where(ps ...predicate.Chunk) *ChunkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHeaders sets the "headers" field.
func (_u *ChunkUpdate) SetHeaders(v models.ChunkHeaders) *ChunkUpdate {
	_u.mutation.SetHeaders(v)
	return _u
}

// SetNillableHeaders sets the "headers" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillableHeaders(v *models.ChunkHeaders) *ChunkUpdate {
	if v != nil {
		_u.SetHeaders(*v)
	}
	return _u
}

// ClearHeaders clears the value of the "headers" field.
func (_u *ChunkUpdate) ClearHeaders() *ChunkUpdate {
	_u.mutation.ClearHeaders()
	return _u
}

// SetText sets the "text" field.
func (_u *ChunkUpdate) SetText(v string) *ChunkUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillableText(v *string) *ChunkUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ChunkUpdate) SetContent(v string) *ChunkUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillableContent(v *string) *ChunkUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *ChunkUpdate) SetTokenCount(v int) *ChunkUpdate {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillableTokenCount(v *int) *ChunkUpdate {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *ChunkUpdate) AddTokenCount(v int) *ChunkUpdate {
	_u.mutation.AddTokenCount(v)
	return _u
}

// SetPageTitle sets the "page_title" field.
func (_u *ChunkUpdate) SetPageTitle(v string) *ChunkUpdate {
	_u.mutation.SetPageTitle(v)
	return _u
}

// SetNillablePageTitle sets the "page_title" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillablePageTitle(v *string) *ChunkUpdate {
	if v != nil {
		_u.SetPageTitle(*v)
	}
	return _u
}

// ClearPageTitle clears the value of the "page_title" field.
func (_u *ChunkUpdate) ClearPageTitle() *ChunkUpdate {
	_u.mutation.ClearPageTitle()
	return _u
}

// SetPageURL sets the "page_url" field.
func (_u *ChunkUpdate) SetPageURL(v string) *ChunkUpdate {
	_u.mutation.SetPageURL(v)
	return _u
}

// SetNillablePageURL sets the "page_url" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillablePageURL(v *string) *ChunkUpdate {
	if v != nil {
		_u.SetPageURL(*v)
	}
	return _u
}

// ClearPageURL clears the value of the "page_url" field.
func (_u *ChunkUpdate) ClearPageURL() *ChunkUpdate {
	_u.mutation.ClearPageURL()
	return _u
}

// Mutation returns the ChunkMutation object of the builder.
func (_u *ChunkUpdate) Mutation() *ChunkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChunkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChunkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChunkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChunkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChunkUpdate) check() error {
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Chunk.source"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Chunk.document"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *ChunkUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ChunkUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *ChunkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chunk.Table, chunk.Columns, sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Headers(); ok {
		_spec.SetField(chunk.FieldHeaders, field.TypeJSON, value)
	}
	if _u.mutation.HeadersCleared() {
		_spec.ClearField(chunk.FieldHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(chunk.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(chunk.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(chunk.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(chunk.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageTitle(); ok {
		_spec.SetField(chunk.FieldPageTitle, field.TypeString, value)
	}
	if _u.mutation.PageTitleCleared() {
		_spec.ClearField(chunk.FieldPageTitle, field.TypeString)
	}
	if value, ok := _u.mutation.PageURL(); ok {
		_spec.SetField(chunk.FieldPageURL, field.TypeString, value)
	}
	if _u.mutation.PageURLCleared() {
		_spec.ClearField(chunk.FieldPageURL, field.TypeString)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChunkUpdateOne is the builder for updating a single Chunk entity.
type ChunkUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *ChunkMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetHeaders sets the "headers" field.
func (_u *ChunkUpdateOne) SetHeaders(v models.ChunkHeaders) *ChunkUpdateOne {
	_u.mutation.SetHeaders(v)
	return _u
}

// SetNillableHeaders sets the "headers" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillableHeaders(v *models.ChunkHeaders) *ChunkUpdateOne {
	if v != nil {
		_u.SetHeaders(*v)
	}
	return _u
}

// ClearHeaders clears the value of the "headers" field.
func (_u *ChunkUpdateOne) ClearHeaders() *ChunkUpdateOne {
	_u.mutation.ClearHeaders()
	return _u
}

// SetText sets the "text" field.
func (_u *ChunkUpdateOne) SetText(v string) *ChunkUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillableText(v *string) *ChunkUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ChunkUpdateOne) SetContent(v string) *ChunkUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillableContent(v *string) *ChunkUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *ChunkUpdateOne) SetTokenCount(v int) *ChunkUpdateOne {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillableTokenCount(v *int) *ChunkUpdateOne {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *ChunkUpdateOne) AddTokenCount(v int) *ChunkUpdateOne {
	_u.mutation.AddTokenCount(v)
	return _u
}

// SetPageTitle sets the "page_title" field.
func (_u *ChunkUpdateOne) SetPageTitle(v string) *ChunkUpdateOne {
	_u.mutation.SetPageTitle(v)
	return _u
}

// SetNillablePageTitle sets the "page_title" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillablePageTitle(v *string) *ChunkUpdateOne {
	if v != nil {
		_u.SetPageTitle(*v)
	}
	return _u
}

// ClearPageTitle clears the value of the "page_title" field.
func (_u *ChunkUpdateOne) ClearPageTitle() *ChunkUpdateOne {
	_u.mutation.ClearPageTitle()
	return _u
}

// SetPageURL sets the "page_url" field.
func (_u *ChunkUpdateOne) SetPageURL(v string) *ChunkUpdateOne {
	_u.mutation.SetPageURL(v)
	return _u
}

// SetNillablePageURL sets the "page_url" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillablePageURL(v *string) *ChunkUpdateOne {
	if v != nil {
		_u.SetPageURL(*v)
	}
	return _u
}

// ClearPageURL clears the value of the "page_url" field.
func (_u *ChunkUpdateOne) ClearPageURL() *ChunkUpdateOne {
	_u.mutation.ClearPageURL()
	return _u
}

// Mutation returns the ChunkMutation object of the builder.
func (_u *ChunkUpdateOne) Mutation() *ChunkMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChunkUpdate builder.
func (_u *ChunkUpdateOne) Where(ps ...predicate.Chunk) *ChunkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChunkUpdateOne) Select(field string, fields ...string) *ChunkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Chunk entity.
func (_u *ChunkUpdateOne) Save(ctx context.Context) (*Chunk, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChunkUpdateOne) SaveX(ctx context.Context) *Chunk {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChunkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChunkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChunkUpdateOne) check() error {
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Chunk.source"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Chunk.document"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *ChunkUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ChunkUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *ChunkUpdateOne) sqlSave(ctx context.Context) (_node *Chunk, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chunk.Table, chunk.Columns, sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Chunk.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chunk.FieldID)
		for _, f := range fields {
			if !chunk.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chunk.FieldID {
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
	if value, ok := _u.mutation.Headers(); ok {
		_spec.SetField(chunk.FieldHeaders, field.TypeJSON, value)
	}
	if _u.mutation.HeadersCleared() {
		_spec.ClearField(chunk.FieldHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(chunk.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(chunk.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(chunk.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(chunk.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageTitle(); ok {
		_spec.SetField(chunk.FieldPageTitle, field.TypeString, value)
	}
	if _u.mutation.PageTitleCleared() {
		_spec.ClearField(chunk.FieldPageTitle, field.TypeString)
	}
	if value, ok := _u.mutation.PageURL(); ok {
		_spec.SetField(chunk.FieldPageURL, field.TypeString, value)
	}
	if _u.mutation.PageURLCleared() {
		_spec.ClearField(chunk.FieldPageURL, field.TypeString)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &Chunk{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
