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
	"formgate.io/formgate/ent/formtemplate"
	"formgate.io/formgate/ent/predicate"
	"formgate.io/formgate/internal/domain"
)

// FormTemplateUpdate is the builder for updating FormTemplate entities.
type FormTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *FormTemplateMutation
}

// Where appends a list predicates to the FormTemplateUpdate builder.
func (_u *FormTemplateUpdate) Where(ps ...predicate.FormTemplate) *FormTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FormTemplateUpdate) SetUpdatedAt(v time.Time) *FormTemplateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *FormTemplateUpdate) SetName(v string) *FormTemplateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FormTemplateUpdate) SetNillableName(v *string) *FormTemplateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *FormTemplateUpdate) SetDescription(v string) *FormTemplateUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *FormTemplateUpdate) SetNillableDescription(v *string) *FormTemplateUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *FormTemplateUpdate) ClearDescription() *FormTemplateUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetCategory sets the "category" field.
func (_u *FormTemplateUpdate) SetCategory(v string) *FormTemplateUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *FormTemplateUpdate) SetNillableCategory(v *string) *FormTemplateUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *FormTemplateUpdate) ClearCategory() *FormTemplateUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetFields sets the "fields" field.
func (_u *FormTemplateUpdate) SetFields(v []domain.FormField) *FormTemplateUpdate {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *FormTemplateUpdate) AppendFields(v []domain.FormField) *FormTemplateUpdate {
	_u.mutation.AppendFields(v)
	return _u
}

// SetApprovers sets the "approvers" field.
func (_u *FormTemplateUpdate) SetApprovers(v []domain.Approver) *FormTemplateUpdate {
	_u.mutation.SetApprovers(v)
	return _u
}

// AppendApprovers appends value to the "approvers" field.
func (_u *FormTemplateUpdate) AppendApprovers(v []domain.Approver) *FormTemplateUpdate {
	_u.mutation.AppendApprovers(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *FormTemplateUpdate) SetNotes(v string) *FormTemplateUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *FormTemplateUpdate) SetNillableNotes(v *string) *FormTemplateUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *FormTemplateUpdate) ClearNotes() *FormTemplateUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetReferenceDoc sets the "reference_doc" field.
func (_u *FormTemplateUpdate) SetReferenceDoc(v []byte) *FormTemplateUpdate {
	_u.mutation.SetReferenceDoc(v)
	return _u
}

// ClearReferenceDoc clears the value of the "reference_doc" field.
func (_u *FormTemplateUpdate) ClearReferenceDoc() *FormTemplateUpdate {
	_u.mutation.ClearReferenceDoc()
	return _u
}

// SetReferenceDocName sets the "reference_doc_name" field.
func (_u *FormTemplateUpdate) SetReferenceDocName(v string) *FormTemplateUpdate {
	_u.mutation.SetReferenceDocName(v)
	return _u
}

// SetNillableReferenceDocName sets the "reference_doc_name" field if the given value is not nil.
func (_u *FormTemplateUpdate) SetNillableReferenceDocName(v *string) *FormTemplateUpdate {
	if v != nil {
		_u.SetReferenceDocName(*v)
	}
	return _u
}

// ClearReferenceDocName clears the value of the "reference_doc_name" field.
func (_u *FormTemplateUpdate) ClearReferenceDocName() *FormTemplateUpdate {
	_u.mutation.ClearReferenceDocName()
	return _u
}

// SetReferenceDocType sets the "reference_doc_type" field.
func (_u *FormTemplateUpdate) SetReferenceDocType(v string) *FormTemplateUpdate {
	_u.mutation.SetReferenceDocType(v)
	return _u
}

// SetNillableReferenceDocType sets the "reference_doc_type" field if the given value is not nil.
func (_u *FormTemplateUpdate) SetNillableReferenceDocType(v *string) *FormTemplateUpdate {
	if v != nil {
		_u.SetReferenceDocType(*v)
	}
	return _u
}

// ClearReferenceDocType clears the value of the "reference_doc_type" field.
func (_u *FormTemplateUpdate) ClearReferenceDocType() *FormTemplateUpdate {
	_u.mutation.ClearReferenceDocType()
	return _u
}

// SetReferenceDocSize sets the "reference_doc_size" field.
func (_u *FormTemplateUpdate) SetReferenceDocSize(v int64) *FormTemplateUpdate {
	_u.mutation.ResetReferenceDocSize()
	_u.mutation.SetReferenceDocSize(v)
	return _u
}

// SetNillableReferenceDocSize sets the "reference_doc_size" field if the given value is not nil.
func (_u *FormTemplateUpdate) SetNillableReferenceDocSize(v *int64) *FormTemplateUpdate {
	if v != nil {
		_u.SetReferenceDocSize(*v)
	}
	return _u
}

// AddReferenceDocSize adds value to the "reference_doc_size" field.
func (_u *FormTemplateUpdate) AddReferenceDocSize(v int64) *FormTemplateUpdate {
	_u.mutation.AddReferenceDocSize(v)
	return _u
}

// ClearReferenceDocSize clears the value of the "reference_doc_size" field.
func (_u *FormTemplateUpdate) ClearReferenceDocSize() *FormTemplateUpdate {
	_u.mutation.ClearReferenceDocSize()
	return _u
}

// Mutation returns the FormTemplateMutation object of the builder.
func (_u *FormTemplateUpdate) Mutation() *FormTemplateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FormTemplateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FormTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FormTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FormTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FormTemplateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := formtemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FormTemplateUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := formtemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "FormTemplate.name": %w`, err)}
		}
	}
	return nil
}

func (_u *FormTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(formtemplate.Table, formtemplate.Columns, sqlgraph.NewFieldSpec(formtemplate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(formtemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(formtemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(formtemplate.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(formtemplate.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(formtemplate.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(formtemplate.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(formtemplate.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, formtemplate.FieldFields, value)
		})
	}
	if value, ok := _u.mutation.Approvers(); ok {
		_spec.SetField(formtemplate.FieldApprovers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedApprovers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, formtemplate.FieldApprovers, value)
		})
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(formtemplate.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(formtemplate.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceDoc(); ok {
		_spec.SetField(formtemplate.FieldReferenceDoc, field.TypeBytes, value)
	}
	if _u.mutation.ReferenceDocCleared() {
		_spec.ClearField(formtemplate.FieldReferenceDoc, field.TypeBytes)
	}
	if value, ok := _u.mutation.ReferenceDocName(); ok {
		_spec.SetField(formtemplate.FieldReferenceDocName, field.TypeString, value)
	}
	if _u.mutation.ReferenceDocNameCleared() {
		_spec.ClearField(formtemplate.FieldReferenceDocName, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceDocType(); ok {
		_spec.SetField(formtemplate.FieldReferenceDocType, field.TypeString, value)
	}
	if _u.mutation.ReferenceDocTypeCleared() {
		_spec.ClearField(formtemplate.FieldReferenceDocType, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceDocSize(); ok {
		_spec.SetField(formtemplate.FieldReferenceDocSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedReferenceDocSize(); ok {
		_spec.AddField(formtemplate.FieldReferenceDocSize, field.TypeInt64, value)
	}
	if _u.mutation.ReferenceDocSizeCleared() {
		_spec.ClearField(formtemplate.FieldReferenceDocSize, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{formtemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FormTemplateUpdateOne is the builder for updating a single FormTemplate entity.
type FormTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FormTemplateMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FormTemplateUpdateOne) SetUpdatedAt(v time.Time) *FormTemplateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *FormTemplateUpdateOne) SetName(v string) *FormTemplateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FormTemplateUpdateOne) SetNillableName(v *string) *FormTemplateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *FormTemplateUpdateOne) SetDescription(v string) *FormTemplateUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *FormTemplateUpdateOne) SetNillableDescription(v *string) *FormTemplateUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *FormTemplateUpdateOne) ClearDescription() *FormTemplateUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetCategory sets the "category" field.
func (_u *FormTemplateUpdateOne) SetCategory(v string) *FormTemplateUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *FormTemplateUpdateOne) SetNillableCategory(v *string) *FormTemplateUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *FormTemplateUpdateOne) ClearCategory() *FormTemplateUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetFields sets the "fields" field.
func (_u *FormTemplateUpdateOne) SetFields(v []domain.FormField) *FormTemplateUpdateOne {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *FormTemplateUpdateOne) AppendFields(v []domain.FormField) *FormTemplateUpdateOne {
	_u.mutation.AppendFields(v)
	return _u
}

// SetApprovers sets the "approvers" field.
func (_u *FormTemplateUpdateOne) SetApprovers(v []domain.Approver) *FormTemplateUpdateOne {
	_u.mutation.SetApprovers(v)
	return _u
}

// AppendApprovers appends value to the "approvers" field.
func (_u *FormTemplateUpdateOne) AppendApprovers(v []domain.Approver) *FormTemplateUpdateOne {
	_u.mutation.AppendApprovers(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *FormTemplateUpdateOne) SetNotes(v string) *FormTemplateUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *FormTemplateUpdateOne) SetNillableNotes(v *string) *FormTemplateUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *FormTemplateUpdateOne) ClearNotes() *FormTemplateUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetReferenceDoc sets the "reference_doc" field.
func (_u *FormTemplateUpdateOne) SetReferenceDoc(v []byte) *FormTemplateUpdateOne {
	_u.mutation.SetReferenceDoc(v)
	return _u
}

// ClearReferenceDoc clears the value of the "reference_doc" field.
func (_u *FormTemplateUpdateOne) ClearReferenceDoc() *FormTemplateUpdateOne {
	_u.mutation.ClearReferenceDoc()
	return _u
}

// SetReferenceDocName sets the "reference_doc_name" field.
func (_u *FormTemplateUpdateOne) SetReferenceDocName(v string) *FormTemplateUpdateOne {
	_u.mutation.SetReferenceDocName(v)
	return _u
}

// SetNillableReferenceDocName sets the "reference_doc_name" field if the given value is not nil.
func (_u *FormTemplateUpdateOne) SetNillableReferenceDocName(v *string) *FormTemplateUpdateOne {
	if v != nil {
		_u.SetReferenceDocName(*v)
	}
	return _u
}

// ClearReferenceDocName clears the value of the "reference_doc_name" field.
func (_u *FormTemplateUpdateOne) ClearReferenceDocName() *FormTemplateUpdateOne {
	_u.mutation.ClearReferenceDocName()
	return _u
}

// SetReferenceDocType sets the "reference_doc_type" field.
func (_u *FormTemplateUpdateOne) SetReferenceDocType(v string) *FormTemplateUpdateOne {
	_u.mutation.SetReferenceDocType(v)
	return _u
}

// SetNillableReferenceDocType sets the "reference_doc_type" field if the given value is not nil.
func (_u *FormTemplateUpdateOne) SetNillableReferenceDocType(v *string) *FormTemplateUpdateOne {
	if v != nil {
		_u.SetReferenceDocType(*v)
	}
	return _u
}

// ClearReferenceDocType clears the value of the "reference_doc_type" field.
func (_u *FormTemplateUpdateOne) ClearReferenceDocType() *FormTemplateUpdateOne {
	_u.mutation.ClearReferenceDocType()
	return _u
}

// SetReferenceDocSize sets the "reference_doc_size" field.
func (_u *FormTemplateUpdateOne) SetReferenceDocSize(v int64) *FormTemplateUpdateOne {
	_u.mutation.ResetReferenceDocSize()
	_u.mutation.SetReferenceDocSize(v)
	return _u
}

// SetNillableReferenceDocSize sets the "reference_doc_size" field if the given value is not nil.
func (_u *FormTemplateUpdateOne) SetNillableReferenceDocSize(v *int64) *FormTemplateUpdateOne {
	if v != nil {
		_u.SetReferenceDocSize(*v)
	}
	return _u
}

// AddReferenceDocSize adds value to the "reference_doc_size" field.
func (_u *FormTemplateUpdateOne) AddReferenceDocSize(v int64) *FormTemplateUpdateOne {
	_u.mutation.AddReferenceDocSize(v)
	return _u
}

// ClearReferenceDocSize clears the value of the "reference_doc_size" field.
func (_u *FormTemplateUpdateOne) ClearReferenceDocSize() *FormTemplateUpdateOne {
	_u.mutation.ClearReferenceDocSize()
	return _u
}

// Mutation returns the FormTemplateMutation object of the builder.
func (_u *FormTemplateUpdateOne) Mutation() *FormTemplateMutation {
	return _u.mutation
}

// Where appends a list predicates to the FormTemplateUpdate builder.
func (_u *FormTemplateUpdateOne) Where(ps ...predicate.FormTemplate) *FormTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FormTemplateUpdateOne) Select(field string, fields ...string) *FormTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FormTemplate entity.
func (_u *FormTemplateUpdateOne) Save(ctx context.Context) (*FormTemplate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FormTemplateUpdateOne) SaveX(ctx context.Context) *FormTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FormTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FormTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FormTemplateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := formtemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FormTemplateUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := formtemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "FormTemplate.name": %w`, err)}
		}
	}
	return nil
}

func (_u *FormTemplateUpdateOne) sqlSave(ctx context.Context) (_node *FormTemplate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(formtemplate.Table, formtemplate.Columns, sqlgraph.NewFieldSpec(formtemplate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FormTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, formtemplate.FieldID)
		for _, f := range fields {
			if !formtemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != formtemplate.FieldID {
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
		_spec.SetField(formtemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(formtemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(formtemplate.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(formtemplate.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(formtemplate.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(formtemplate.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(formtemplate.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, formtemplate.FieldFields, value)
		})
	}
	if value, ok := _u.mutation.Approvers(); ok {
		_spec.SetField(formtemplate.FieldApprovers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedApprovers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, formtemplate.FieldApprovers, value)
		})
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(formtemplate.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(formtemplate.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceDoc(); ok {
		_spec.SetField(formtemplate.FieldReferenceDoc, field.TypeBytes, value)
	}
	if _u.mutation.ReferenceDocCleared() {
		_spec.ClearField(formtemplate.FieldReferenceDoc, field.TypeBytes)
	}
	if value, ok := _u.mutation.ReferenceDocName(); ok {
		_spec.SetField(formtemplate.FieldReferenceDocName, field.TypeString, value)
	}
	if _u.mutation.ReferenceDocNameCleared() {
		_spec.ClearField(formtemplate.FieldReferenceDocName, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceDocType(); ok {
		_spec.SetField(formtemplate.FieldReferenceDocType, field.TypeString, value)
	}
	if _u.mutation.ReferenceDocTypeCleared() {
		_spec.ClearField(formtemplate.FieldReferenceDocType, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceDocSize(); ok {
		_spec.SetField(formtemplate.FieldReferenceDocSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedReferenceDocSize(); ok {
		_spec.AddField(formtemplate.FieldReferenceDocSize, field.TypeInt64, value)
	}
	if _u.mutation.ReferenceDocSizeCleared() {
		_spec.ClearField(formtemplate.FieldReferenceDocSize, field.TypeInt64)
	}
	_node = &FormTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{formtemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
