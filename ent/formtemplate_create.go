// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"formgate.io/formgate/ent/formtemplate"
	"formgate.io/formgate/internal/domain"
)

// FormTemplateCreate is the builder for creating a FormTemplate entity.
type FormTemplateCreate struct {
	config
	mutation *FormTemplateMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *FormTemplateCreate) SetCreatedAt(v time.Time) *FormTemplateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FormTemplateCreate) SetNillableCreatedAt(v *time.Time) *FormTemplateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FormTemplateCreate) SetUpdatedAt(v time.Time) *FormTemplateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FormTemplateCreate) SetNillableUpdatedAt(v *time.Time) *FormTemplateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *FormTemplateCreate) SetName(v string) *FormTemplateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *FormTemplateCreate) SetDescription(v string) *FormTemplateCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *FormTemplateCreate) SetNillableDescription(v *string) *FormTemplateCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *FormTemplateCreate) SetCategory(v string) *FormTemplateCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *FormTemplateCreate) SetNillableCategory(v *string) *FormTemplateCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetFields sets the "fields" field.
func (_c *FormTemplateCreate) SetFields(v []domain.FormField) *FormTemplateCreate {
	_c.mutation.SetFields(v)
	return _c
}

// SetApprovers sets the "approvers" field.
func (_c *FormTemplateCreate) SetApprovers(v []domain.Approver) *FormTemplateCreate {
	_c.mutation.SetApprovers(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *FormTemplateCreate) SetNotes(v string) *FormTemplateCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *FormTemplateCreate) SetNillableNotes(v *string) *FormTemplateCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetRevisionNumber sets the "revision_number" field.
func (_c *FormTemplateCreate) SetRevisionNumber(v string) *FormTemplateCreate {
	_c.mutation.SetRevisionNumber(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *FormTemplateCreate) SetCreatedBy(v string) *FormTemplateCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetReferenceDoc sets the "reference_doc" field.
func (_c *FormTemplateCreate) SetReferenceDoc(v []byte) *FormTemplateCreate {
	_c.mutation.SetReferenceDoc(v)
	return _c
}

// SetReferenceDocName sets the "reference_doc_name" field.
func (_c *FormTemplateCreate) SetReferenceDocName(v string) *FormTemplateCreate {
	_c.mutation.SetReferenceDocName(v)
	return _c
}

// SetNillableReferenceDocName sets the "reference_doc_name" field if the given value is not nil.
func (_c *FormTemplateCreate) SetNillableReferenceDocName(v *string) *FormTemplateCreate {
	if v != nil {
		_c.SetReferenceDocName(*v)
	}
	return _c
}

// SetReferenceDocType sets the "reference_doc_type" field.
func (_c *FormTemplateCreate) SetReferenceDocType(v string) *FormTemplateCreate {
	_c.mutation.SetReferenceDocType(v)
	return _c
}

// SetNillableReferenceDocType sets the "reference_doc_type" field if the given value is not nil.
func (_c *FormTemplateCreate) SetNillableReferenceDocType(v *string) *FormTemplateCreate {
	if v != nil {
		_c.SetReferenceDocType(*v)
	}
	return _c
}

// SetReferenceDocSize sets the "reference_doc_size" field.
func (_c *FormTemplateCreate) SetReferenceDocSize(v int64) *FormTemplateCreate {
	_c.mutation.SetReferenceDocSize(v)
	return _c
}

// SetNillableReferenceDocSize sets the "reference_doc_size" field if the given value is not nil.
func (_c *FormTemplateCreate) SetNillableReferenceDocSize(v *int64) *FormTemplateCreate {
	if v != nil {
		_c.SetReferenceDocSize(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FormTemplateCreate) SetID(v string) *FormTemplateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FormTemplateMutation object of the builder.
func (_c *FormTemplateCreate) Mutation() *FormTemplateMutation {
	return _c.mutation
}

// Save creates the FormTemplate in the database.
func (_c *FormTemplateCreate) Save(ctx context.Context) (*FormTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FormTemplateCreate) SaveX(ctx context.Context) *FormTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FormTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FormTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FormTemplateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := formtemplate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := formtemplate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FormTemplateCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FormTemplate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FormTemplate.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "FormTemplate.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := formtemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "FormTemplate.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetFields(); !ok {
		return &ValidationError{Name: "fields", err: errors.New(`ent: missing required field "FormTemplate.fields"`)}
	}
	if _, ok := _c.mutation.Approvers(); !ok {
		return &ValidationError{Name: "approvers", err: errors.New(`ent: missing required field "FormTemplate.approvers"`)}
	}
	if _, ok := _c.mutation.RevisionNumber(); !ok {
		return &ValidationError{Name: "revision_number", err: errors.New(`ent: missing required field "FormTemplate.revision_number"`)}
	}
	if v, ok := _c.mutation.RevisionNumber(); ok {
		if err := formtemplate.RevisionNumberValidator(v); err != nil {
			return &ValidationError{Name: "revision_number", err: fmt.Errorf(`ent: validator failed for field "FormTemplate.revision_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "FormTemplate.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := formtemplate.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "FormTemplate.created_by": %w`, err)}
		}
	}
	return nil
}

func (_c *FormTemplateCreate) sqlSave(ctx context.Context) (*FormTemplate, error) {
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
			return nil, fmt.Errorf("unexpected FormTemplate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FormTemplateCreate) createSpec() (*FormTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &FormTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(formtemplate.Table, sqlgraph.NewFieldSpec(formtemplate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(formtemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(formtemplate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(formtemplate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(formtemplate.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(formtemplate.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.GetFields(); ok {
		_spec.SetField(formtemplate.FieldFields, field.TypeJSON, value)
		_node.Fields = value
	}
	if value, ok := _c.mutation.Approvers(); ok {
		_spec.SetField(formtemplate.FieldApprovers, field.TypeJSON, value)
		_node.Approvers = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(formtemplate.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.RevisionNumber(); ok {
		_spec.SetField(formtemplate.FieldRevisionNumber, field.TypeString, value)
		_node.RevisionNumber = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(formtemplate.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.ReferenceDoc(); ok {
		_spec.SetField(formtemplate.FieldReferenceDoc, field.TypeBytes, value)
		_node.ReferenceDoc = value
	}
	if value, ok := _c.mutation.ReferenceDocName(); ok {
		_spec.SetField(formtemplate.FieldReferenceDocName, field.TypeString, value)
		_node.ReferenceDocName = value
	}
	if value, ok := _c.mutation.ReferenceDocType(); ok {
		_spec.SetField(formtemplate.FieldReferenceDocType, field.TypeString, value)
		_node.ReferenceDocType = value
	}
	if value, ok := _c.mutation.ReferenceDocSize(); ok {
		_spec.SetField(formtemplate.FieldReferenceDocSize, field.TypeInt64, value)
		_node.ReferenceDocSize = value
	}
	return _node, _spec
}

// FormTemplateCreateBulk is the builder for creating many FormTemplate entities in bulk.
type FormTemplateCreateBulk struct {
	config
	err      error
	builders []*FormTemplateCreate
}

// Save creates the FormTemplate entities in the database.
func (_c *FormTemplateCreateBulk) Save(ctx context.Context) ([]*FormTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FormTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FormTemplateMutation)
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
func (_c *FormTemplateCreateBulk) SaveX(ctx context.Context) []*FormTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FormTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FormTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
