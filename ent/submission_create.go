// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"formgate.io/formgate/ent/submission"
	"formgate.io/formgate/internal/domain"
)

// SubmissionCreate is the builder for creating a Submission entity.
type SubmissionCreate struct {
	config
	mutation *SubmissionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubmissionCreate) SetCreatedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableCreatedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubmissionCreate) SetUpdatedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableUpdatedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetFormTemplateID sets the "form_template_id" field.
func (_c *SubmissionCreate) SetFormTemplateID(v string) *SubmissionCreate {
	_c.mutation.SetFormTemplateID(v)
	return _c
}

// SetFormName sets the "form_name" field.
func (_c *SubmissionCreate) SetFormName(v string) *SubmissionCreate {
	_c.mutation.SetFormName(v)
	return _c
}

// SetFormCategory sets the "form_category" field.
func (_c *SubmissionCreate) SetFormCategory(v string) *SubmissionCreate {
	_c.mutation.SetFormCategory(v)
	return _c
}

// SetNillableFormCategory sets the "form_category" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableFormCategory(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetFormCategory(*v)
	}
	return _c
}

// SetSubmittedBy sets the "submitted_by" field.
func (_c *SubmissionCreate) SetSubmittedBy(v string) *SubmissionCreate {
	_c.mutation.SetSubmittedBy(v)
	return _c
}

// SetSubmitterName sets the "submitter_name" field.
func (_c *SubmissionCreate) SetSubmitterName(v string) *SubmissionCreate {
	_c.mutation.SetSubmitterName(v)
	return _c
}

// SetSubmitterPosition sets the "submitter_position" field.
func (_c *SubmissionCreate) SetSubmitterPosition(v string) *SubmissionCreate {
	_c.mutation.SetSubmitterPosition(v)
	return _c
}

// SetNillableSubmitterPosition sets the "submitter_position" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableSubmitterPosition(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetSubmitterPosition(*v)
	}
	return _c
}

// SetSubmitterDepartment sets the "submitter_department" field.
func (_c *SubmissionCreate) SetSubmitterDepartment(v string) *SubmissionCreate {
	_c.mutation.SetSubmitterDepartment(v)
	return _c
}

// SetNillableSubmitterDepartment sets the "submitter_department" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableSubmitterDepartment(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetSubmitterDepartment(*v)
	}
	return _c
}

// SetSubmitterEmail sets the "submitter_email" field.
func (_c *SubmissionCreate) SetSubmitterEmail(v string) *SubmissionCreate {
	_c.mutation.SetSubmitterEmail(v)
	return _c
}

// SetNillableSubmitterEmail sets the "submitter_email" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableSubmitterEmail(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetSubmitterEmail(*v)
	}
	return _c
}

// SetSignature sets the "signature" field.
func (_c *SubmissionCreate) SetSignature(v []byte) *SubmissionCreate {
	_c.mutation.SetSignature(v)
	return _c
}

// SetFormData sets the "form_data" field.
func (_c *SubmissionCreate) SetFormData(v domain.FormData) *SubmissionCreate {
	_c.mutation.SetFormData(v)
	return _c
}

// SetAttachments sets the "attachments" field.
func (_c *SubmissionCreate) SetAttachments(v []domain.Attachment) *SubmissionCreate {
	_c.mutation.SetAttachments(v)
	return _c
}

// SetAssignedApprovers sets the "assigned_approvers" field.
func (_c *SubmissionCreate) SetAssignedApprovers(v []domain.Approver) *SubmissionCreate {
	_c.mutation.SetAssignedApprovers(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubmissionCreate) SetStatus(v submission.Status) *SubmissionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableStatus(v *submission.Status) *SubmissionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *SubmissionCreate) SetSubmittedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableSubmittedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetApprovedAt sets the "approved_at" field.
func (_c *SubmissionCreate) SetApprovedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetApprovedAt(v)
	return _c
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableApprovedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetApprovedAt(*v)
	}
	return _c
}

// SetRejectedAt sets the "rejected_at" field.
func (_c *SubmissionCreate) SetRejectedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetRejectedAt(v)
	return _c
}

// SetNillableRejectedAt sets the "rejected_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableRejectedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetRejectedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubmissionCreate) SetID(v string) *SubmissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SubmissionMutation object of the builder.
func (_c *SubmissionCreate) Mutation() *SubmissionMutation {
	return _c.mutation
}

// Save creates the Submission in the database.
func (_c *SubmissionCreate) Save(ctx context.Context) (*Submission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionCreate) SaveX(ctx context.Context) *Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmissionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := submission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := submission.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := submission.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Submission.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Submission.updated_at"`)}
	}
	if _, ok := _c.mutation.FormTemplateID(); !ok {
		return &ValidationError{Name: "form_template_id", err: errors.New(`ent: missing required field "Submission.form_template_id"`)}
	}
	if v, ok := _c.mutation.FormTemplateID(); ok {
		if err := submission.FormTemplateIDValidator(v); err != nil {
			return &ValidationError{Name: "form_template_id", err: fmt.Errorf(`ent: validator failed for field "Submission.form_template_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FormName(); !ok {
		return &ValidationError{Name: "form_name", err: errors.New(`ent: missing required field "Submission.form_name"`)}
	}
	if v, ok := _c.mutation.FormName(); ok {
		if err := submission.FormNameValidator(v); err != nil {
			return &ValidationError{Name: "form_name", err: fmt.Errorf(`ent: validator failed for field "Submission.form_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubmittedBy(); !ok {
		return &ValidationError{Name: "submitted_by", err: errors.New(`ent: missing required field "Submission.submitted_by"`)}
	}
	if v, ok := _c.mutation.SubmittedBy(); ok {
		if err := submission.SubmittedByValidator(v); err != nil {
			return &ValidationError{Name: "submitted_by", err: fmt.Errorf(`ent: validator failed for field "Submission.submitted_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubmitterName(); !ok {
		return &ValidationError{Name: "submitter_name", err: errors.New(`ent: missing required field "Submission.submitter_name"`)}
	}
	if v, ok := _c.mutation.SubmitterName(); ok {
		if err := submission.SubmitterNameValidator(v); err != nil {
			return &ValidationError{Name: "submitter_name", err: fmt.Errorf(`ent: validator failed for field "Submission.submitter_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FormData(); !ok {
		return &ValidationError{Name: "form_data", err: errors.New(`ent: missing required field "Submission.form_data"`)}
	}
	if _, ok := _c.mutation.AssignedApprovers(); !ok {
		return &ValidationError{Name: "assigned_approvers", err: errors.New(`ent: missing required field "Submission.assigned_approvers"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Submission.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	return nil
}

func (_c *SubmissionCreate) sqlSave(ctx context.Context) (*Submission, error) {
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
			return nil, fmt.Errorf("unexpected Submission.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubmissionCreate) createSpec() (*Submission, *sqlgraph.CreateSpec) {
	var (
		_node = &Submission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submission.Table, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(submission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FormTemplateID(); ok {
		_spec.SetField(submission.FieldFormTemplateID, field.TypeString, value)
		_node.FormTemplateID = value
	}
	if value, ok := _c.mutation.FormName(); ok {
		_spec.SetField(submission.FieldFormName, field.TypeString, value)
		_node.FormName = value
	}
	if value, ok := _c.mutation.FormCategory(); ok {
		_spec.SetField(submission.FieldFormCategory, field.TypeString, value)
		_node.FormCategory = value
	}
	if value, ok := _c.mutation.SubmittedBy(); ok {
		_spec.SetField(submission.FieldSubmittedBy, field.TypeString, value)
		_node.SubmittedBy = value
	}
	if value, ok := _c.mutation.SubmitterName(); ok {
		_spec.SetField(submission.FieldSubmitterName, field.TypeString, value)
		_node.SubmitterName = value
	}
	if value, ok := _c.mutation.SubmitterPosition(); ok {
		_spec.SetField(submission.FieldSubmitterPosition, field.TypeString, value)
		_node.SubmitterPosition = value
	}
	if value, ok := _c.mutation.SubmitterDepartment(); ok {
		_spec.SetField(submission.FieldSubmitterDepartment, field.TypeString, value)
		_node.SubmitterDepartment = value
	}
	if value, ok := _c.mutation.SubmitterEmail(); ok {
		_spec.SetField(submission.FieldSubmitterEmail, field.TypeString, value)
		_node.SubmitterEmail = value
	}
	if value, ok := _c.mutation.Signature(); ok {
		_spec.SetField(submission.FieldSignature, field.TypeBytes, value)
		_node.Signature = value
	}
	if value, ok := _c.mutation.FormData(); ok {
		_spec.SetField(submission.FieldFormData, field.TypeJSON, value)
		_node.FormData = value
	}
	if value, ok := _c.mutation.Attachments(); ok {
		_spec.SetField(submission.FieldAttachments, field.TypeJSON, value)
		_node.Attachments = value
	}
	if value, ok := _c.mutation.AssignedApprovers(); ok {
		_spec.SetField(submission.FieldAssignedApprovers, field.TypeJSON, value)
		_node.AssignedApprovers = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(submission.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = &value
	}
	if value, ok := _c.mutation.ApprovedAt(); ok {
		_spec.SetField(submission.FieldApprovedAt, field.TypeTime, value)
		_node.ApprovedAt = &value
	}
	if value, ok := _c.mutation.RejectedAt(); ok {
		_spec.SetField(submission.FieldRejectedAt, field.TypeTime, value)
		_node.RejectedAt = &value
	}
	return _node, _spec
}

// SubmissionCreateBulk is the builder for creating many Submission entities in bulk.
type SubmissionCreateBulk struct {
	config
	err      error
	builders []*SubmissionCreate
}

// Save creates the Submission entities in the database.
func (_c *SubmissionCreateBulk) Save(ctx context.Context) ([]*Submission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Submission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionMutation)
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
func (_c *SubmissionCreateBulk) SaveX(ctx context.Context) []*Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
