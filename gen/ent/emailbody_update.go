// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/email"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/emailbody"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/predicate"
	"github.com/google/uuid"
)

// EmailBodyUpdate is the builder for updating EmailBody entities.
type EmailBodyUpdate struct {
	config
	hooks    []Hook
	mutation *EmailBodyMutation
}

// Where appends a list predicates to the EmailBodyUpdate builder.
func (_u *EmailBodyUpdate) Where(ps ...predicate.EmailBody) *EmailBodyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmailID sets the "email_id" field.
func (_u *EmailBodyUpdate) SetEmailID(v uuid.UUID) *EmailBodyUpdate {
	_u.mutation.SetEmailID(v)
	return _u
}

// SetNillableEmailID sets the "email_id" field if the given value is not nil.
func (_u *EmailBodyUpdate) SetNillableEmailID(v *uuid.UUID) *EmailBodyUpdate {
	if v != nil {
		_u.SetEmailID(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *EmailBodyUpdate) SetMimeType(v string) *EmailBodyUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *EmailBodyUpdate) SetNillableMimeType(v *string) *EmailBodyUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *EmailBodyUpdate) ClearMimeType() *EmailBodyUpdate {
	_u.mutation.ClearMimeType()
	return _u
}

// SetBodyText sets the "body_text" field.
func (_u *EmailBodyUpdate) SetBodyText(v string) *EmailBodyUpdate {
	_u.mutation.SetBodyText(v)
	return _u
}

// SetNillableBodyText sets the "body_text" field if the given value is not nil.
func (_u *EmailBodyUpdate) SetNillableBodyText(v *string) *EmailBodyUpdate {
	if v != nil {
		_u.SetBodyText(*v)
	}
	return _u
}

// ClearBodyText clears the value of the "body_text" field.
func (_u *EmailBodyUpdate) ClearBodyText() *EmailBodyUpdate {
	_u.mutation.ClearBodyText()
	return _u
}

// SetBodyHTML sets the "body_html" field.
func (_u *EmailBodyUpdate) SetBodyHTML(v string) *EmailBodyUpdate {
	_u.mutation.SetBodyHTML(v)
	return _u
}

// SetNillableBodyHTML sets the "body_html" field if the given value is not nil.
func (_u *EmailBodyUpdate) SetNillableBodyHTML(v *string) *EmailBodyUpdate {
	if v != nil {
		_u.SetBodyHTML(*v)
	}
	return _u
}

// ClearBodyHTML clears the value of the "body_html" field.
func (_u *EmailBodyUpdate) ClearBodyHTML() *EmailBodyUpdate {
	_u.mutation.ClearBodyHTML()
	return _u
}

// SetEmail sets the "email" edge to the Email entity.
func (_u *EmailBodyUpdate) SetEmail(v *Email) *EmailBodyUpdate {
	return _u.SetEmailID(v.ID)
}

// Mutation returns the EmailBodyMutation object of the builder.
func (_u *EmailBodyUpdate) Mutation() *EmailBodyMutation {
	return _u.mutation
}

// ClearEmail clears the "email" edge to the Email entity.
func (_u *EmailBodyUpdate) ClearEmail() *EmailBodyUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmailBodyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailBodyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmailBodyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailBodyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailBodyUpdate) check() error {
	if _u.mutation.EmailCleared() && len(_u.mutation.EmailIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EmailBody.email"`)
	}
	return nil
}

func (_u *EmailBodyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emailbody.Table, emailbody.Columns, sqlgraph.NewFieldSpec(emailbody.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(emailbody.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(emailbody.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.BodyText(); ok {
		_spec.SetField(emailbody.FieldBodyText, field.TypeString, value)
	}
	if _u.mutation.BodyTextCleared() {
		_spec.ClearField(emailbody.FieldBodyText, field.TypeString)
	}
	if value, ok := _u.mutation.BodyHTML(); ok {
		_spec.SetField(emailbody.FieldBodyHTML, field.TypeString, value)
	}
	if _u.mutation.BodyHTMLCleared() {
		_spec.ClearField(emailbody.FieldBodyHTML, field.TypeString)
	}
	if _u.mutation.EmailCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   emailbody.EmailTable,
			Columns: []string{emailbody.EmailColumn},
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
			Table:   emailbody.EmailTable,
			Columns: []string{emailbody.EmailColumn},
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
			err = &NotFoundError{emailbody.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmailBodyUpdateOne is the builder for updating a single EmailBody entity.
type EmailBodyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmailBodyMutation
}

// SetEmailID sets the "email_id" field.
func (_u *EmailBodyUpdateOne) SetEmailID(v uuid.UUID) *EmailBodyUpdateOne {
	_u.mutation.SetEmailID(v)
	return _u
}

// SetNillableEmailID sets the "email_id" field if the given value is not nil.
func (_u *EmailBodyUpdateOne) SetNillableEmailID(v *uuid.UUID) *EmailBodyUpdateOne {
	if v != nil {
		_u.SetEmailID(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *EmailBodyUpdateOne) SetMimeType(v string) *EmailBodyUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *EmailBodyUpdateOne) SetNillableMimeType(v *string) *EmailBodyUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *EmailBodyUpdateOne) ClearMimeType() *EmailBodyUpdateOne {
	_u.mutation.ClearMimeType()
	return _u
}

// SetBodyText sets the "body_text" field.
func (_u *EmailBodyUpdateOne) SetBodyText(v string) *EmailBodyUpdateOne {
	_u.mutation.SetBodyText(v)
	return _u
}

// SetNillableBodyText sets the "body_text" field if the given value is not nil.
func (_u *EmailBodyUpdateOne) SetNillableBodyText(v *string) *EmailBodyUpdateOne {
	if v != nil {
		_u.SetBodyText(*v)
	}
	return _u
}

// ClearBodyText clears the value of the "body_text" field.
func (_u *EmailBodyUpdateOne) ClearBodyText() *EmailBodyUpdateOne {
	_u.mutation.ClearBodyText()
	return _u
}

// SetBodyHTML sets the "body_html" field.
func (_u *EmailBodyUpdateOne) SetBodyHTML(v string) *EmailBodyUpdateOne {
	_u.mutation.SetBodyHTML(v)
	return _u
}

// SetNillableBodyHTML sets the "body_html" field if the given value is not nil.
func (_u *EmailBodyUpdateOne) SetNillableBodyHTML(v *string) *EmailBodyUpdateOne {
	if v != nil {
		_u.SetBodyHTML(*v)
	}
	return _u
}

// ClearBodyHTML clears the value of the "body_html" field.
func (_u *EmailBodyUpdateOne) ClearBodyHTML() *EmailBodyUpdateOne {
	_u.mutation.ClearBodyHTML()
	return _u
}

// SetEmail sets the "email" edge to the Email entity.
func (_u *EmailBodyUpdateOne) SetEmail(v *Email) *EmailBodyUpdateOne {
	return _u.SetEmailID(v.ID)
}

// Mutation returns the EmailBodyMutation object of the builder.
func (_u *EmailBodyUpdateOne) Mutation() *EmailBodyMutation {
	return _u.mutation
}

// ClearEmail clears the "email" edge to the Email entity.
func (_u *EmailBodyUpdateOne) ClearEmail() *EmailBodyUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// Where appends a list predicates to the EmailBodyUpdate builder.
func (_u *EmailBodyUpdateOne) Where(ps ...predicate.EmailBody) *EmailBodyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmailBodyUpdateOne) Select(field string, fields ...string) *EmailBodyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmailBody entity.
func (_u *EmailBodyUpdateOne) Save(ctx context.Context) (*EmailBody, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailBodyUpdateOne) SaveX(ctx context.Context) *EmailBody {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmailBodyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailBodyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailBodyUpdateOne) check() error {
	if _u.mutation.EmailCleared() && len(_u.mutation.EmailIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EmailBody.email"`)
	}
	return nil
}

func (_u *EmailBodyUpdateOne) sqlSave(ctx context.Context) (_node *EmailBody, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emailbody.Table, emailbody.Columns, sqlgraph.NewFieldSpec(emailbody.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EmailBody.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emailbody.FieldID)
		for _, f := range fields {
			if !emailbody.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != emailbody.FieldID {
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
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(emailbody.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(emailbody.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.BodyText(); ok {
		_spec.SetField(emailbody.FieldBodyText, field.TypeString, value)
	}
	if _u.mutation.BodyTextCleared() {
		_spec.ClearField(emailbody.FieldBodyText, field.TypeString)
	}
	if value, ok := _u.mutation.BodyHTML(); ok {
		_spec.SetField(emailbody.FieldBodyHTML, field.TypeString, value)
	}
	if _u.mutation.BodyHTMLCleared() {
		_spec.ClearField(emailbody.FieldBodyHTML, field.TypeString)
	}
	if _u.mutation.EmailCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   emailbody.EmailTable,
			Columns: []string{emailbody.EmailColumn},
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
			Table:   emailbody.EmailTable,
			Columns: []string{emailbody.EmailColumn},
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
	_node = &EmailBody{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailbody.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
