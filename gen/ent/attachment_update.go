// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/attachment"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/email"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/predicate"
	"github.com/google/uuid"
)

// AttachmentUpdate is the builder for updating Attachment entities.
type AttachmentUpdate struct {
	config
	hooks    []Hook
	mutation *AttachmentMutation
}

// Where appends a list predicates to the AttachmentUpdate builder.
func (_u *AttachmentUpdate) Where(ps ...predicate.Attachment) *AttachmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmailID sets the "email_id" field.
func (_u *AttachmentUpdate) SetEmailID(v uuid.UUID) *AttachmentUpdate {
	_u.mutation.SetEmailID(v)
	return _u
}

// SetNillableEmailID sets the "email_id" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableEmailID(v *uuid.UUID) *AttachmentUpdate {
	if v != nil {
		_u.SetEmailID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *AttachmentUpdate) SetFilename(v string) *AttachmentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableFilename(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// ClearFilename clears the value of the "filename" field.
func (_u *AttachmentUpdate) ClearFilename() *AttachmentUpdate {
	_u.mutation.ClearFilename()
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *AttachmentUpdate) SetMimeType(v string) *AttachmentUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableMimeType(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *AttachmentUpdate) ClearMimeType() *AttachmentUpdate {
	_u.mutation.ClearMimeType()
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *AttachmentUpdate) SetSizeBytes(v int64) *AttachmentUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableSizeBytes(v *int64) *AttachmentUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *AttachmentUpdate) AddSizeBytes(v int64) *AttachmentUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (_u *AttachmentUpdate) ClearSizeBytes() *AttachmentUpdate {
	_u.mutation.ClearSizeBytes()
	return _u
}

// SetLocalPath sets the "local_path" field.
func (_u *AttachmentUpdate) SetLocalPath(v string) *AttachmentUpdate {
	_u.mutation.SetLocalPath(v)
	return _u
}

// SetNillableLocalPath sets the "local_path" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableLocalPath(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetLocalPath(*v)
	}
	return _u
}

// ClearLocalPath clears the value of the "local_path" field.
func (_u *AttachmentUpdate) ClearLocalPath() *AttachmentUpdate {
	_u.mutation.ClearLocalPath()
	return _u
}

// SetEmail sets the "email" edge to the Email entity.
func (_u *AttachmentUpdate) SetEmail(v *Email) *AttachmentUpdate {
	return _u.SetEmailID(v.ID)
}

// Mutation returns the AttachmentMutation object of the builder.
func (_u *AttachmentUpdate) Mutation() *AttachmentMutation {
	return _u.mutation
}

// ClearEmail clears the "email" edge to the Email entity.
func (_u *AttachmentUpdate) ClearEmail() *AttachmentUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttachmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttachmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttachmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttachmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttachmentUpdate) check() error {
	if _u.mutation.EmailCleared() && len(_u.mutation.EmailIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attachment.email"`)
	}
	return nil
}

func (_u *AttachmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attachment.Table, attachment.Columns, sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(attachment.FieldFilename, field.TypeString, value)
	}
	if _u.mutation.FilenameCleared() {
		_spec.ClearField(attachment.FieldFilename, field.TypeString)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(attachment.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(attachment.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(attachment.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(attachment.FieldSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.SizeBytesCleared() {
		_spec.ClearField(attachment.FieldSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.LocalPath(); ok {
		_spec.SetField(attachment.FieldLocalPath, field.TypeString, value)
	}
	if _u.mutation.LocalPathCleared() {
		_spec.ClearField(attachment.FieldLocalPath, field.TypeString)
	}
	if _u.mutation.EmailCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attachment.EmailTable,
			Columns: []string{attachment.EmailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(email.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmailIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attachment.EmailTable,
			Columns: []string{attachment.EmailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(email.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attachment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttachmentUpdateOne is the builder for updating a single Attachment entity.
type AttachmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttachmentMutation
}

// SetEmailID sets the "email_id" field.
func (_u *AttachmentUpdateOne) SetEmailID(v uuid.UUID) *AttachmentUpdateOne {
	_u.mutation.SetEmailID(v)
	return _u
}

// SetNillableEmailID sets the "email_id" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableEmailID(v *uuid.UUID) *AttachmentUpdateOne {
	if v != nil {
		_u.SetEmailID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *AttachmentUpdateOne) SetFilename(v string) *AttachmentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableFilename(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// ClearFilename clears the value of the "filename" field.
func (_u *AttachmentUpdateOne) ClearFilename() *AttachmentUpdateOne {
	_u.mutation.ClearFilename()
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *AttachmentUpdateOne) SetMimeType(v string) *AttachmentUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableMimeType(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *AttachmentUpdateOne) ClearMimeType() *AttachmentUpdateOne {
	_u.mutation.ClearMimeType()
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *AttachmentUpdateOne) SetSizeBytes(v int64) *AttachmentUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableSizeBytes(v *int64) *AttachmentUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *AttachmentUpdateOne) AddSizeBytes(v int64) *AttachmentUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (_u *AttachmentUpdateOne) ClearSizeBytes() *AttachmentUpdateOne {
	_u.mutation.ClearSizeBytes()
	return _u
}

// SetLocalPath sets the "local_path" field.
func (_u *AttachmentUpdateOne) SetLocalPath(v string) *AttachmentUpdateOne {
	_u.mutation.SetLocalPath(v)
	return _u
}

// SetNillableLocalPath sets the "local_path" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableLocalPath(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetLocalPath(*v)
	}
	return _u
}

// ClearLocalPath clears the value of the "local_path" field.
func (_u *AttachmentUpdateOne) ClearLocalPath() *AttachmentUpdateOne {
	_u.mutation.ClearLocalPath()
	return _u
}

// SetEmail sets the "email" edge to the Email entity.
func (_u *AttachmentUpdateOne) SetEmail(v *Email) *AttachmentUpdateOne {
	return _u.SetEmailID(v.ID)
}

// Mutation returns the AttachmentMutation object of the builder.
func (_u *AttachmentUpdateOne) Mutation() *AttachmentMutation {
	return _u.mutation
}

// ClearEmail clears the "email" edge to the Email entity.
func (_u *AttachmentUpdateOne) ClearEmail() *AttachmentUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// Where appends a list predicates to the AttachmentUpdate builder.
func (_u *AttachmentUpdateOne) Where(ps ...predicate.Attachment) *AttachmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttachmentUpdateOne) Select(field string, fields ...string) *AttachmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attachment entity.
func (_u *AttachmentUpdateOne) Save(ctx context.Context) (*Attachment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttachmentUpdateOne) SaveX(ctx context.Context) *Attachment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttachmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttachmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttachmentUpdateOne) check() error {
	if _u.mutation.EmailCleared() && len(_u.mutation.EmailIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attachment.email"`)
	}
	return nil
}

func (_u *AttachmentUpdateOne) sqlSave(ctx context.Context) (_node *Attachment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attachment.Table, attachment.Columns, sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attachment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attachment.FieldID)
		for _, f := range fields {
			if !attachment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attachment.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(attachment.FieldFilename, field.TypeString, value)
	}
	if _u.mutation.FilenameCleared() {
		_spec.ClearField(attachment.FieldFilename, field.TypeString)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(attachment.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(attachment.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(attachment.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(attachment.FieldSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.SizeBytesCleared() {
		_spec.ClearField(attachment.FieldSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.LocalPath(); ok {
		_spec.SetField(attachment.FieldLocalPath, field.TypeString, value)
	}
	if _u.mutation.LocalPathCleared() {
		_spec.ClearField(attachment.FieldLocalPath, field.TypeString)
	}
	if _u.mutation.EmailCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attachment.EmailTable,
			Columns: []string{attachment.EmailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(email.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmailIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attachment.EmailTable,
			Columns: []string{attachment.EmailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(email.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Attachment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attachment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
