// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"formgate.io/formgate/ent/predicate"
	"formgate.io/formgate/ent/submission"
	"formgate.io/formgate/internal/domain"
)

// SubmissionUpdate is the builder for updating Submission entities.
type SubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionMutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdate) Where(ps ...predicate.Submission) *SubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionUpdate) SetUpdatedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSubmitterName sets the "submitter_name" field.
func (_u *SubmissionUpdate) SetSubmitterName(v string) *SubmissionUpdate {
	_u.mutation.SetSubmitterName(v)
	return _u
}

// SetNillableSubmitterName sets the "submitter_name" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableSubmitterName(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetSubmitterName(*v)
	}
	return _u
}

// SetSubmitterPosition sets the "submitter_position" field.
func (_u *SubmissionUpdate) SetSubmitterPosition(v string) *SubmissionUpdate {
	_u.mutation.SetSubmitterPosition(v)
	return _u
}

// SetNillableSubmitterPosition sets the "submitter_position" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableSubmitterPosition(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetSubmitterPosition(*v)
	}
	return _u
}

// ClearSubmitterPosition clears the value of the "submitter_position" field.
func (_u *SubmissionUpdate) ClearSubmitterPosition() *SubmissionUpdate {
	_u.mutation.ClearSubmitterPosition()
	return _u
}

// SetSubmitterDepartment sets the "submitter_department" field.
func (_u *SubmissionUpdate) SetSubmitterDepartment(v string) *SubmissionUpdate {
	_u.mutation.SetSubmitterDepartment(v)
	return _u
}

// SetNillableSubmitterDepartment sets the "submitter_department" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableSubmitterDepartment(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetSubmitterDepartment(*v)
	}
	return _u
}

// ClearSubmitterDepartment clears the value of the "submitter_department" field.
func (_u *SubmissionUpdate) ClearSubmitterDepartment() *SubmissionUpdate {
	_u.mutation.ClearSubmitterDepartment()
	return _u
}

// SetSubmitterEmail sets the "submitter_email" field.
func (_u *SubmissionUpdate) SetSubmitterEmail(v string) *SubmissionUpdate {
	_u.mutation.SetSubmitterEmail(v)
	return _u
}

// SetNillableSubmitterEmail sets the "submitter_email" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableSubmitterEmail(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetSubmitterEmail(*v)
	}
	return _u
}

// ClearSubmitterEmail clears the value of the "submitter_email" field.
func (_u *SubmissionUpdate) ClearSubmitterEmail() *SubmissionUpdate {
	_u.mutation.ClearSubmitterEmail()
	return _u
}

// SetSignature sets the "signature" field.
func (_u *SubmissionUpdate) SetSignature(v []byte) *SubmissionUpdate {
	_u.mutation.SetSignature(v)
	return _u
}

// ClearSignature clears the value of the "signature" field.
func (_u *SubmissionUpdate) ClearSignature() *SubmissionUpdate {
	_u.mutation.ClearSignature()
	return _u
}

// SetFormData sets the "form_data" field.
func (_u *SubmissionUpdate) SetFormData(v domain.FormData) *SubmissionUpdate {
	_u.mutation.SetFormData(v)
	return _u
}

// SetAttachments sets the "attachments" field.
func (_u *SubmissionUpdate) SetAttachments(v []domain.Attachment) *SubmissionUpdate {
	_u.mutation.SetAttachments(v)
	return _u
}

// AppendAttachments appends value to the "attachments" field.
func (_u *SubmissionUpdate) AppendAttachments(v []domain.Attachment) *SubmissionUpdate {
	_u.mutation.AppendAttachments(v)
	return _u
}

// ClearAttachments clears the value of the "attachments" field.
func (_u *SubmissionUpdate) ClearAttachments() *SubmissionUpdate {
	_u.mutation.ClearAttachments()
	return _u
}

// SetAssignedApprovers sets the "assigned_approvers" field.
func (_u *SubmissionUpdate) SetAssignedApprovers(v []domain.Approver) *SubmissionUpdate {
	_u.mutation.SetAssignedApprovers(v)
	return _u
}

// AppendAssignedApprovers appends value to the "assigned_approvers" field.
func (_u *SubmissionUpdate) AppendAssignedApprovers(v []domain.Approver) *SubmissionUpdate {
	_u.mutation.AppendAssignedApprovers(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdate) SetStatus(v submission.Status) *SubmissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableStatus(v *submission.Status) *SubmissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *SubmissionUpdate) SetSubmittedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableSubmittedAt(v *time.Time) *SubmissionUpdate {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *SubmissionUpdate) ClearSubmittedAt() *SubmissionUpdate {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *SubmissionUpdate) SetApprovedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableApprovedAt(v *time.Time) *SubmissionUpdate {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *SubmissionUpdate) ClearApprovedAt() *SubmissionUpdate {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetRejectedAt sets the "rejected_at" field.
func (_u *SubmissionUpdate) SetRejectedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetRejectedAt(v)
	return _u
}

// SetNillableRejectedAt sets the "rejected_at" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableRejectedAt(v *time.Time) *SubmissionUpdate {
	if v != nil {
		_u.SetRejectedAt(*v)
	}
	return _u
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (_u *SubmissionUpdate) ClearRejectedAt() *SubmissionUpdate {
	_u.mutation.ClearRejectedAt()
	return _u
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdate) Mutation() *SubmissionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubmissionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := submission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdate) check() error {
	if v, ok := _u.mutation.SubmitterName(); ok {
		if err := submission.SubmitterNameValidator(v); err != nil {
			return &ValidationError{Name: "submitter_name", err: fmt.Errorf(`ent: validator failed for field "Submission.submitter_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FormCategoryCleared() {
		_spec.ClearField(submission.FieldFormCategory, field.TypeString)
	}
	if value, ok := _u.mutation.SubmitterName(); ok {
		_spec.SetField(submission.FieldSubmitterName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubmitterPosition(); ok {
		_spec.SetField(submission.FieldSubmitterPosition, field.TypeString, value)
	}
	if _u.mutation.SubmitterPositionCleared() {
		_spec.ClearField(submission.FieldSubmitterPosition, field.TypeString)
	}
	if value, ok := _u.mutation.SubmitterDepartment(); ok {
		_spec.SetField(submission.FieldSubmitterDepartment, field.TypeString, value)
	}
	if _u.mutation.SubmitterDepartmentCleared() {
		_spec.ClearField(submission.FieldSubmitterDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.SubmitterEmail(); ok {
		_spec.SetField(submission.FieldSubmitterEmail, field.TypeString, value)
	}
	if _u.mutation.SubmitterEmailCleared() {
		_spec.ClearField(submission.FieldSubmitterEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Signature(); ok {
		_spec.SetField(submission.FieldSignature, field.TypeBytes, value)
	}
	if _u.mutation.SignatureCleared() {
		_spec.ClearField(submission.FieldSignature, field.TypeBytes)
	}
	if value, ok := _u.mutation.FormData(); ok {
		_spec.SetField(submission.FieldFormData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Attachments(); ok {
		_spec.SetField(submission.FieldAttachments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttachments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldAttachments, value)
		})
	}
	if _u.mutation.AttachmentsCleared() {
		_spec.ClearField(submission.FieldAttachments, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssignedApprovers(); ok {
		_spec.SetField(submission.FieldAssignedApprovers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAssignedApprovers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldAssignedApprovers, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(submission.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(submission.FieldSubmittedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(submission.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(submission.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RejectedAt(); ok {
		_spec.SetField(submission.FieldRejectedAt, field.TypeTime, value)
	}
	if _u.mutation.RejectedAtCleared() {
		_spec.ClearField(submission.FieldRejectedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionUpdateOne is the builder for updating a single Submission entity.
type SubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionUpdateOne) SetUpdatedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSubmitterName sets the "submitter_name" field.
func (_u *SubmissionUpdateOne) SetSubmitterName(v string) *SubmissionUpdateOne {
	_u.mutation.SetSubmitterName(v)
	return _u
}

// SetNillableSubmitterName sets the "submitter_name" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableSubmitterName(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetSubmitterName(*v)
	}
	return _u
}

// SetSubmitterPosition sets the "submitter_position" field.
func (_u *SubmissionUpdateOne) SetSubmitterPosition(v string) *SubmissionUpdateOne {
	_u.mutation.SetSubmitterPosition(v)
	return _u
}

// SetNillableSubmitterPosition sets the "submitter_position" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableSubmitterPosition(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetSubmitterPosition(*v)
	}
	return _u
}

// ClearSubmitterPosition clears the value of the "submitter_position" field.
func (_u *SubmissionUpdateOne) ClearSubmitterPosition() *SubmissionUpdateOne {
	_u.mutation.ClearSubmitterPosition()
	return _u
}

// SetSubmitterDepartment sets the "submitter_department" field.
func (_u *SubmissionUpdateOne) SetSubmitterDepartment(v string) *SubmissionUpdateOne {
	_u.mutation.SetSubmitterDepartment(v)
	return _u
}

// SetNillableSubmitterDepartment sets the "submitter_department" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableSubmitterDepartment(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetSubmitterDepartment(*v)
	}
	return _u
}

// ClearSubmitterDepartment clears the value of the "submitter_department" field.
func (_u *SubmissionUpdateOne) ClearSubmitterDepartment() *SubmissionUpdateOne {
	_u.mutation.ClearSubmitterDepartment()
	return _u
}

// SetSubmitterEmail sets the "submitter_email" field.
func (_u *SubmissionUpdateOne) SetSubmitterEmail(v string) *SubmissionUpdateOne {
	_u.mutation.SetSubmitterEmail(v)
	return _u
}

// SetNillableSubmitterEmail sets the "submitter_email" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableSubmitterEmail(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetSubmitterEmail(*v)
	}
	return _u
}

// ClearSubmitterEmail clears the value of the "submitter_email" field.
func (_u *SubmissionUpdateOne) ClearSubmitterEmail() *SubmissionUpdateOne {
	_u.mutation.ClearSubmitterEmail()
	return _u
}

// SetSignature sets the "signature" field.
func (_u *SubmissionUpdateOne) SetSignature(v []byte) *SubmissionUpdateOne {
	_u.mutation.SetSignature(v)
	return _u
}

// ClearSignature clears the value of the "signature" field.
func (_u *SubmissionUpdateOne) ClearSignature() *SubmissionUpdateOne {
	_u.mutation.ClearSignature()
	return _u
}

// SetFormData sets the "form_data" field.
func (_u *SubmissionUpdateOne) SetFormData(v domain.FormData) *SubmissionUpdateOne {
	_u.mutation.SetFormData(v)
	return _u
}

// SetAttachments sets the "attachments" field.
func (_u *SubmissionUpdateOne) SetAttachments(v []domain.Attachment) *SubmissionUpdateOne {
	_u.mutation.SetAttachments(v)
	return _u
}

// AppendAttachments appends value to the "attachments" field.
func (_u *SubmissionUpdateOne) AppendAttachments(v []domain.Attachment) *SubmissionUpdateOne {
	_u.mutation.AppendAttachments(v)
	return _u
}

// ClearAttachments clears the value of the "attachments" field.
func (_u *SubmissionUpdateOne) ClearAttachments() *SubmissionUpdateOne {
	_u.mutation.ClearAttachments()
	return _u
}

// SetAssignedApprovers sets the "assigned_approvers" field.
func (_u *SubmissionUpdateOne) SetAssignedApprovers(v []domain.Approver) *SubmissionUpdateOne {
	_u.mutation.SetAssignedApprovers(v)
	return _u
}

// AppendAssignedApprovers appends value to the "assigned_approvers" field.
func (_u *SubmissionUpdateOne) AppendAssignedApprovers(v []domain.Approver) *SubmissionUpdateOne {
	_u.mutation.AppendAssignedApprovers(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdateOne) SetStatus(v submission.Status) *SubmissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableStatus(v *submission.Status) *SubmissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *SubmissionUpdateOne) SetSubmittedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableSubmittedAt(v *time.Time) *SubmissionUpdateOne {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *SubmissionUpdateOne) ClearSubmittedAt() *SubmissionUpdateOne {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *SubmissionUpdateOne) SetApprovedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableApprovedAt(v *time.Time) *SubmissionUpdateOne {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *SubmissionUpdateOne) ClearApprovedAt() *SubmissionUpdateOne {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetRejectedAt sets the "rejected_at" field.
func (_u *SubmissionUpdateOne) SetRejectedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetRejectedAt(v)
	return _u
}

// SetNillableRejectedAt sets the "rejected_at" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableRejectedAt(v *time.Time) *SubmissionUpdateOne {
	if v != nil {
		_u.SetRejectedAt(*v)
	}
	return _u
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (_u *SubmissionUpdateOne) ClearRejectedAt() *SubmissionUpdateOne {
	_u.mutation.ClearRejectedAt()
	return _u
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdateOne) Mutation() *SubmissionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdateOne) Where(ps ...predicate.Submission) *SubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionUpdateOne) Select(field string, fields ...string) *SubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Submission entity.
func (_u *SubmissionUpdateOne) Save(ctx context.Context) (*Submission, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdateOne) SaveX(ctx context.Context) *Submission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubmissionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := submission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.SubmitterName(); ok {
		if err := submission.SubmitterNameValidator(v); err != nil {
			return &ValidationError{Name: "submitter_name", err: fmt.Errorf(`ent: validator failed for field "Submission.submitter_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionUpdateOne) sqlSave(ctx context.Context) (_node *Submission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Submission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submission.FieldID)
		for _, f := range fields {
			if !submission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submission.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FormCategoryCleared() {
		_spec.ClearField(submission.FieldFormCategory, field.TypeString)
	}
	if value, ok := _u.mutation.SubmitterName(); ok {
		_spec.SetField(submission.FieldSubmitterName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubmitterPosition(); ok {
		_spec.SetField(submission.FieldSubmitterPosition, field.TypeString, value)
	}
	if _u.mutation.SubmitterPositionCleared() {
		_spec.ClearField(submission.FieldSubmitterPosition, field.TypeString)
	}
	if value, ok := _u.mutation.SubmitterDepartment(); ok {
		_spec.SetField(submission.FieldSubmitterDepartment, field.TypeString, value)
	}
	if _u.mutation.SubmitterDepartmentCleared() {
		_spec.ClearField(submission.FieldSubmitterDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.SubmitterEmail(); ok {
		_spec.SetField(submission.FieldSubmitterEmail, field.TypeString, value)
	}
	if _u.mutation.SubmitterEmailCleared() {
		_spec.ClearField(submission.FieldSubmitterEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Signature(); ok {
		_spec.SetField(submission.FieldSignature, field.TypeBytes, value)
	}
	if _u.mutation.SignatureCleared() {
		_spec.ClearField(submission.FieldSignature, field.TypeBytes)
	}
	if value, ok := _u.mutation.FormData(); ok {
		_spec.SetField(submission.FieldFormData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Attachments(); ok {
		_spec.SetField(submission.FieldAttachments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttachments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldAttachments, value)
		})
	}
	if _u.mutation.AttachmentsCleared() {
		_spec.ClearField(submission.FieldAttachments, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssignedApprovers(); ok {
		_spec.SetField(submission.FieldAssignedApprovers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAssignedApprovers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldAssignedApprovers, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(submission.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(submission.FieldSubmittedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(submission.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(submission.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RejectedAt(); ok {
		_spec.SetField(submission.FieldRejectedAt, field.TypeTime, value)
	}
	if _u.mutation.RejectedAtCleared() {
		_spec.ClearField(submission.FieldRejectedAt, field.TypeTime)
	}
	_node = &Submission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
