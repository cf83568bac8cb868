// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"formgate.io/formgate/ent/formtemplate"
	"formgate.io/formgate/internal/domain"
)

// FormTemplate is the model entity for the FormTemplate schema.
type FormTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Ordered field list; order defines rendering order
	Fields []domain.FormField `json:"fields,omitempty"`
	// Required approver identities; order reflects seniority
	Approvers []domain.Approver `json:"approvers,omitempty"`
	// Free text rendered above the signature grid
	Notes string `json:"notes,omitempty"`
	// Opaque revision tag generated at creation time
	RevisionNumber string `json:"revision_number,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// ReferenceDoc holds the value of the "reference_doc" field.
	ReferenceDoc []byte `json:"-"`
	// ReferenceDocName holds the value of the "reference_doc_name" field.
	ReferenceDocName string `json:"reference_doc_name,omitempty"`
	// ReferenceDocType holds the value of the "reference_doc_type" field.
	ReferenceDocType string `json:"reference_doc_type,omitempty"`
	// ReferenceDocSize holds the value of the "reference_doc_size" field.
	ReferenceDocSize int64 `json:"reference_doc_size,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FormTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case formtemplate.FieldFields, formtemplate.FieldApprovers, formtemplate.FieldReferenceDoc:
			values[i] = new([]byte)
		case formtemplate.FieldReferenceDocSize:
			values[i] = new(sql.NullInt64)
		case formtemplate.FieldID, formtemplate.FieldName, formtemplate.FieldDescription, formtemplate.FieldCategory, formtemplate.FieldNotes, formtemplate.FieldRevisionNumber, formtemplate.FieldCreatedBy, formtemplate.FieldReferenceDocName, formtemplate.FieldReferenceDocType:
			values[i] = new(sql.NullString)
		case formtemplate.FieldCreatedAt, formtemplate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FormTemplate fields.
func (_m *FormTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case formtemplate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case formtemplate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case formtemplate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case formtemplate.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case formtemplate.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case formtemplate.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case formtemplate.FieldFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Fields); err != nil {
					return fmt.Errorf("unmarshal field fields: %w", err)
				}
			}
		case formtemplate.FieldApprovers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field approvers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Approvers); err != nil {
					return fmt.Errorf("unmarshal field approvers: %w", err)
				}
			}
		case formtemplate.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case formtemplate.FieldRevisionNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field revision_number", values[i])
			} else if value.Valid {
				_m.RevisionNumber = value.String
			}
		case formtemplate.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case formtemplate.FieldReferenceDoc:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field reference_doc", values[i])
			} else if value != nil {
				_m.ReferenceDoc = *value
			}
		case formtemplate.FieldReferenceDocName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reference_doc_name", values[i])
			} else if value.Valid {
				_m.ReferenceDocName = value.String
			}
		case formtemplate.FieldReferenceDocType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reference_doc_type", values[i])
			} else if value.Valid {
				_m.ReferenceDocType = value.String
			}
		case formtemplate.FieldReferenceDocSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reference_doc_size", values[i])
			} else if value.Valid {
				_m.ReferenceDocSize = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FormTemplate.
// This includes values selected through modifiers, order, etc.
func (_m *FormTemplate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FormTemplate.
// Note that you need to call FormTemplate.Unwrap() before calling this method if this FormTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FormTemplate) Update() *FormTemplateUpdateOne {
	return NewFormTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FormTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FormTemplate) Unwrap() *FormTemplate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FormTemplate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FormTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("FormTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fields))
	builder.WriteString(", ")
	builder.WriteString("approvers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Approvers))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("revision_number=")
	builder.WriteString(_m.RevisionNumber)
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("reference_doc=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("reference_doc_name=")
	builder.WriteString(_m.ReferenceDocName)
	builder.WriteString(", ")
	builder.WriteString("reference_doc_type=")
	builder.WriteString(_m.ReferenceDocType)
	builder.WriteString(", ")
	builder.WriteString("reference_doc_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReferenceDocSize))
	builder.WriteByte(')')
	return builder.String()
}

// FormTemplates is a parsable slice of FormTemplate.
type FormTemplates []*FormTemplate
