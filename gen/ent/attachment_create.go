// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/attachment"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/email"
	"github.com/google/uuid"
)

// AttachmentCreate is the builder for creating a Attachment entity.
type AttachmentCreate struct {
	config
	mutation *AttachmentMutation
	hooks    []Hook
}

// SetEmailID sets the "email_id" field.
func (_c *AttachmentCreate) SetEmailID(v uuid.UUID) *AttachmentCreate {
	_c.mutation.SetEmailID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *AttachmentCreate) SetFilename(v string) *AttachmentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_c *AttachmentCreate) SetNillableFilename(v *string) *AttachmentCreate {
	if v != nil {
		_c.SetFilename(*v)
	}
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *AttachmentCreate) SetMimeType(v string) *AttachmentCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_c *AttachmentCreate) SetNillableMimeType(v *string) *AttachmentCreate {
	if v != nil {
		_c.SetMimeType(*v)
	}
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *AttachmentCreate) SetSizeBytes(v int64) *AttachmentCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_c *AttachmentCreate) SetNillableSizeBytes(v *int64) *AttachmentCreate {
	if v != nil {
		_c.SetSizeBytes(*v)
	}
	return _c
}

// SetLocalPath sets the "local_path" field.
func (_c *AttachmentCreate) SetLocalPath(v string) *AttachmentCreate {
	_c.mutation.SetLocalPath(v)
	return _c
}

// SetNillableLocalPath sets the "local_path" field if the given value is not nil.
func (_c *AttachmentCreate) SetNillableLocalPath(v *string) *AttachmentCreate {
	if v != nil {
		_c.SetLocalPath(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AttachmentCreate) SetID(v uuid.UUID) *AttachmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AttachmentCreate) SetNillableID(v *uuid.UUID) *AttachmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetEmail sets the "email" edge to the Email entity.
func (_c *AttachmentCreate) SetEmail(v *Email) *AttachmentCreate {
	return _c.SetEmailID(v.ID)
}

// Mutation returns the AttachmentMutation object of the builder.
func (_c *AttachmentCreate) Mutation() *AttachmentMutation {
	return _c.mutation
}

// Save creates the Attachment in the database.
func (_c *AttachmentCreate) Save(ctx context.Context) (*Attachment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttachmentCreate) SaveX(ctx context.Context) *Attachment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttachmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttachmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttachmentCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := attachment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttachmentCreate) check() error {
	if _, ok := _c.mutation.EmailID(); !ok {
		return &ValidationError{Name: "email_id", err: errors.New(`ent: missing required field "Attachment.email_id"`)}
	}
	if len(_c.mutation.EmailIDs()) == 0 {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required edge "Attachment.email"`)}
	}
	return nil
}

func (_c *AttachmentCreate) sqlSave(ctx context.Context) (*Attachment, error) {
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

func (_c *AttachmentCreate) createSpec() (*Attachment, *sqlgraph.CreateSpec) {
	var (
		_node = &Attachment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attachment.Table, sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(attachment.FieldFilename, field.TypeString, value)
		_node.Filename = &value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(attachment.FieldMimeType, field.TypeString, value)
		_node.MimeType = &value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(attachment.FieldSizeBytes, field.TypeInt64, value)
		_node.SizeBytes = &value
	}
	if value, ok := _c.mutation.LocalPath(); ok {
		_spec.SetField(attachment.FieldLocalPath, field.TypeString, value)
		_node.LocalPath = &value
	}
	if nodes := _c.mutation.EmailIDs(); len(nodes) > 0 {
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
		_node.EmailID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AttachmentCreateBulk is the builder for creating many Attachment entities in bulk.
type AttachmentCreateBulk struct {
	config
	err      error
	builders []*AttachmentCreate
}

// Save creates the Attachment entities in the database.
func (_c *AttachmentCreateBulk) Save(ctx context.Context) ([]*Attachment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attachment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttachmentMutation)
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
func (_c *AttachmentCreateBulk) SaveX(ctx context.Context) []*Attachment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttachmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttachmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
