// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"formgate.io/formgate/ent/approvalrecord"
)

// ApprovalRecordCreate is the builder for creating a ApprovalRecord entity.
type ApprovalRecordCreate struct {
	config
	mutation *ApprovalRecordMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovalRecordCreate) SetCreatedAt(v time.Time) *ApprovalRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovalRecordCreate) SetNillableCreatedAt(v *time.Time) *ApprovalRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSubmissionID sets the "submission_id" field.
func (_c *ApprovalRecordCreate) SetSubmissionID(v string) *ApprovalRecordCreate {
	_c.mutation.SetSubmissionID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *ApprovalRecordCreate) SetAction(v approvalrecord.Action) *ApprovalRecordCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetActorID sets the "actor_id" field.
func (_c *ApprovalRecordCreate) SetActorID(v string) *ApprovalRecordCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetActorName sets the "actor_name" field.
func (_c *ApprovalRecordCreate) SetActorName(v string) *ApprovalRecordCreate {
	_c.mutation.SetActorName(v)
	return _c
}

// SetActorPosition sets the "actor_position" field.
func (_c *ApprovalRecordCreate) SetActorPosition(v string) *ApprovalRecordCreate {
	_c.mutation.SetActorPosition(v)
	return _c
}

// SetNillableActorPosition sets the "actor_position" field if the given value is not nil.
func (_c *ApprovalRecordCreate) SetNillableActorPosition(v *string) *ApprovalRecordCreate {
	if v != nil {
		_c.SetActorPosition(*v)
	}
	return _c
}

// SetActorDepartment sets the "actor_department" field.
func (_c *ApprovalRecordCreate) SetActorDepartment(v string) *ApprovalRecordCreate {
	_c.mutation.SetActorDepartment(v)
	return _c
}

// SetNillableActorDepartment sets the "actor_department" field if the given value is not nil.
func (_c *ApprovalRecordCreate) SetNillableActorDepartment(v *string) *ApprovalRecordCreate {
	if v != nil {
		_c.SetActorDepartment(*v)
	}
	return _c
}

// SetSignature sets the "signature" field.
func (_c *ApprovalRecordCreate) SetSignature(v []byte) *ApprovalRecordCreate {
	_c.mutation.SetSignature(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalRecordCreate) SetID(v string) *ApprovalRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApprovalRecordMutation object of the builder.
func (_c *ApprovalRecordCreate) Mutation() *ApprovalRecordMutation {
	return _c.mutation
}

// Save creates the ApprovalRecord in the database.
func (_c *ApprovalRecordCreate) Save(ctx context.Context) (*ApprovalRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalRecordCreate) SaveX(ctx context.Context) *ApprovalRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approvalrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApprovalRecord.created_at"`)}
	}
	if _, ok := _c.mutation.SubmissionID(); !ok {
		return &ValidationError{Name: "submission_id", err: errors.New(`ent: missing required field "ApprovalRecord.submission_id"`)}
	}
	if v, ok := _c.mutation.SubmissionID(); ok {
		if err := approvalrecord.SubmissionIDValidator(v); err != nil {
			return &ValidationError{Name: "submission_id", err: fmt.Errorf(`ent: validator failed for field "ApprovalRecord.submission_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "ApprovalRecord.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := approvalrecord.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ApprovalRecord.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActorID(); !ok {
		return &ValidationError{Name: "actor_id", err: errors.New(`ent: missing required field "ApprovalRecord.actor_id"`)}
	}
	if v, ok := _c.mutation.ActorID(); ok {
		if err := approvalrecord.ActorIDValidator(v); err != nil {
			return &ValidationError{Name: "actor_id", err: fmt.Errorf(`ent: validator failed for field "ApprovalRecord.actor_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActorName(); !ok {
		return &ValidationError{Name: "actor_name", err: errors.New(`ent: missing required field "ApprovalRecord.actor_name"`)}
	}
	if v, ok := _c.mutation.ActorName(); ok {
		if err := approvalrecord.ActorNameValidator(v); err != nil {
			return &ValidationError{Name: "actor_name", err: fmt.Errorf(`ent: validator failed for field "ApprovalRecord.actor_name": %w`, err)}
		}
	}
	return nil
}

func (_c *ApprovalRecordCreate) sqlSave(ctx context.Context) (*ApprovalRecord, error) {
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
			return nil, fmt.Errorf("unexpected ApprovalRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalRecordCreate) createSpec() (*ApprovalRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ApprovalRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approvalrecord.Table, sqlgraph.NewFieldSpec(approvalrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approvalrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.SubmissionID(); ok {
		_spec.SetField(approvalrecord.FieldSubmissionID, field.TypeString, value)
		_node.SubmissionID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(approvalrecord.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.ActorID(); ok {
		_spec.SetField(approvalrecord.FieldActorID, field.TypeString, value)
		_node.ActorID = value
	}
	if value, ok := _c.mutation.ActorName(); ok {
		_spec.SetField(approvalrecord.FieldActorName, field.TypeString, value)
		_node.ActorName = value
	}
	if value, ok := _c.mutation.ActorPosition(); ok {
		_spec.SetField(approvalrecord.FieldActorPosition, field.TypeString, value)
		_node.ActorPosition = value
	}
	if value, ok := _c.mutation.ActorDepartment(); ok {
		_spec.SetField(approvalrecord.FieldActorDepartment, field.TypeString, value)
		_node.ActorDepartment = value
	}
	if value, ok := _c.mutation.Signature(); ok {
		_spec.SetField(approvalrecord.FieldSignature, field.TypeBytes, value)
		_node.Signature = value
	}
	return _node, _spec
}

// ApprovalRecordCreateBulk is the builder for creating many ApprovalRecord entities in bulk.
type ApprovalRecordCreateBulk struct {
	config
	err      error
	builders []*ApprovalRecordCreate
}

// Save creates the ApprovalRecord entities in the database.
func (_c *ApprovalRecordCreateBulk) Save(ctx context.Context) ([]*ApprovalRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApprovalRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalRecordMutation)
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
func (_c *ApprovalRecordCreateBulk) SaveX(ctx context.Context) []*ApprovalRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
