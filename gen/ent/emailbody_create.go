// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/email"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/emailbody"
	"github.com/google/uuid"
)

// EmailBodyCreate is the builder for creating a EmailBody entity.
type EmailBodyCreate struct {
	config
	mutation *EmailBodyMutation
	hooks    []Hook
}

// SetEmailID sets the "email_id" field.
func (_c *EmailBodyCreate) SetEmailID(v uuid.UUID) *EmailBodyCreate {
	_c.mutation.SetEmailID(v)
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *EmailBodyCreate) SetMimeType(v string) *EmailBodyCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_c *EmailBodyCreate) SetNillableMimeType(v *string) *EmailBodyCreate {
	if v != nil {
		_c.SetMimeType(*v)
	}
	return _c
}

// SetBodyText sets the "body_text" field.
func (_c *EmailBodyCreate) SetBodyText(v string) *EmailBodyCreate {
	_c.mutation.SetBodyText(v)
	return _c
}

// SetNillableBodyText sets the "body_text" field if the given value is not nil.
func (_c *EmailBodyCreate) SetNillableBodyText(v *string) *EmailBodyCreate {
	if v != nil {
		_c.SetBodyText(*v)
	}
	return _c
}

// SetBodyHTML sets the "body_html" field.
func (_c *EmailBodyCreate) SetBodyHTML(v string) *EmailBodyCreate {
	_c.mutation.SetBodyHTML(v)
	return _c
}

// SetNillableBodyHTML sets the "body_html" field if the given value is not nil.
func (_c *EmailBodyCreate) SetNillableBodyHTML(v *string) *EmailBodyCreate {
	if v != nil {
		_c.SetBodyHTML(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EmailBodyCreate) SetID(v uuid.UUID) *EmailBodyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EmailBodyCreate) SetNillableID(v *uuid.UUID) *EmailBodyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetEmail sets the "email" edge to the Email entity.
func (_c *EmailBodyCreate) SetEmail(v *Email) *EmailBodyCreate {
	return _c.SetEmailID(v.ID)
}

// Mutation returns the EmailBodyMutation object of the builder.
func (_c *EmailBodyCreate) Mutation() *EmailBodyMutation {
	return _c.mutation
}

// Save creates the EmailBody in the database.
func (_c *EmailBodyCreate) Save(ctx context.Context) (*EmailBody, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmailBodyCreate) SaveX(ctx context.Context) *EmailBody {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailBodyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailBodyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmailBodyCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := emailbody.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmailBodyCreate) check() error {
	if _, ok := _c.mutation.EmailID(); !ok {
		return &ValidationError{Name: "email_id", err: errors.New(`ent: missing required field "EmailBody.email_id"`)}
	}
	if len(_c.mutation.EmailIDs()) == 0 {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required edge "EmailBody.email"`)}
	}
	return nil
}

func (_c *EmailBodyCreate) sqlSave(ctx context.Context) (*EmailBody, error) {
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

func (_c *EmailBodyCreate) createSpec() (*EmailBody, *sqlgraph.CreateSpec) {
	var (
		_node = &EmailBody{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(emailbody.Table, sqlgraph.NewFieldSpec(emailbody.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(emailbody.FieldMimeType, field.TypeString, value)
		_node.MimeType = &value
	}
	if value, ok := _c.mutation.BodyText(); ok {
		_spec.SetField(emailbody.FieldBodyText, field.TypeString, value)
		_node.BodyText = &value
	}
	if value, ok := _c.mutation.BodyHTML(); ok {
		_spec.SetField(emailbody.FieldBodyHTML, field.TypeString, value)
		_node.BodyHTML = &value
	}
	if nodes := _c.mutation.EmailIDs(); len(nodes) > 0 {
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
		_node.EmailID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EmailBodyCreateBulk is the builder for creating many EmailBody entities in bulk.
type EmailBodyCreateBulk struct {
	config
	err      error
	builders []*EmailBodyCreate
}

// Save creates the EmailBody entities in the database.
func (_c *EmailBodyCreateBulk) Save(ctx context.Context) ([]*EmailBody, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmailBody, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmailBodyMutation)
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
func (_c *EmailBodyCreateBulk) SaveX(ctx context.Context) []*EmailBody {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailBodyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailBodyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
