// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"formgate.io/formgate/ent/approvalrecord"
	"formgate.io/formgate/ent/predicate"
)

// ApprovalRecordUpdate is the builder for updating ApprovalRecord entities.
type ApprovalRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalRecordMutation
}

// Where appends a list predicates to the ApprovalRecordUpdate builder.
func (_u *ApprovalRecordUpdate) Where(ps ...predicate.ApprovalRecord) *ApprovalRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ApprovalRecordMutation object of the builder.
func (_u *ApprovalRecordUpdate) Mutation() *ApprovalRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ApprovalRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(approvalrecord.Table, approvalrecord.Columns, sqlgraph.NewFieldSpec(approvalrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ActorPositionCleared() {
		_spec.ClearField(approvalrecord.FieldActorPosition, field.TypeString)
	}
	if _u.mutation.ActorDepartmentCleared() {
		_spec.ClearField(approvalrecord.FieldActorDepartment, field.TypeString)
	}
	if _u.mutation.SignatureCleared() {
		_spec.ClearField(approvalrecord.FieldSignature, field.TypeBytes)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalRecordUpdateOne is the builder for updating a single ApprovalRecord entity.
type ApprovalRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalRecordMutation
}

// Mutation returns the ApprovalRecordMutation object of the builder.
func (_u *ApprovalRecordUpdateOne) Mutation() *ApprovalRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApprovalRecordUpdate builder.
func (_u *ApprovalRecordUpdateOne) Where(ps ...predicate.ApprovalRecord) *ApprovalRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalRecordUpdateOne) Select(field string, fields ...string) *ApprovalRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApprovalRecord entity.
func (_u *ApprovalRecordUpdateOne) Save(ctx context.Context) (*ApprovalRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalRecordUpdateOne) SaveX(ctx context.Context) *ApprovalRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ApprovalRecordUpdateOne) sqlSave(ctx context.Context) (_node *ApprovalRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(approvalrecord.Table, approvalrecord.Columns, sqlgraph.NewFieldSpec(approvalrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApprovalRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approvalrecord.FieldID)
		for _, f := range fields {
			if !approvalrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approvalrecord.FieldID {
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
	if _u.mutation.ActorPositionCleared() {
		_spec.ClearField(approvalrecord.FieldActorPosition, field.TypeString)
	}
	if _u.mutation.ActorDepartmentCleared() {
		_spec.ClearField(approvalrecord.FieldActorDepartment, field.TypeString)
	}
	if _u.mutation.SignatureCleared() {
		_spec.ClearField(approvalrecord.FieldSignature, field.TypeBytes)
	}
	_node = &ApprovalRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
