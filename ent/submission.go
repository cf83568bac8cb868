// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"formgate.io/formgate/ent/submission"
	"formgate.io/formgate/internal/domain"
)

// Submission is the model entity for the Submission schema.
type Submission struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FormTemplateID holds the value of the "form_template_id" field.
	FormTemplateID string `json:"form_template_id,omitempty"`
	// FormName holds the value of the "form_name" field.
	FormName string `json:"form_name,omitempty"`
	// FormCategory holds the value of the "form_category" field.
	FormCategory string `json:"form_category,omitempty"`
	// SubmittedBy holds the value of the "submitted_by" field.
	SubmittedBy string `json:"submitted_by,omitempty"`
	// SubmitterName holds the value of the "submitter_name" field.
	SubmitterName string `json:"submitter_name,omitempty"`
	// SubmitterPosition holds the value of the "submitter_position" field.
	SubmitterPosition string `json:"submitter_position,omitempty"`
	// SubmitterDepartment holds the value of the "submitter_department" field.
	SubmitterDepartment string `json:"submitter_department,omitempty"`
	// SubmitterEmail holds the value of the "submitter_email" field.
	SubmitterEmail string `json:"submitter_email,omitempty"`
	// Signature holds the value of the "signature" field.
	Signature []byte `json:"-"`
	// FormField.id → value; bool for checkbox, string otherwise
	FormData domain.FormData `json:"form_data,omitempty"`
	// Attachments holds the value of the "attachments" field.
	Attachments []domain.Attachment `json:"attachments,omitempty"`
	// Snapshot of the template approver set at submit time; immutable afterwards
	AssignedApprovers []domain.Approver `json:"assigned_approvers,omitempty"`
	// Status holds the value of the "status" field.
	Status submission.Status `json:"status,omitempty"`
	// SubmittedAt holds the value of the "submitted_at" field.
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	// ApprovedAt holds the value of the "approved_at" field.
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	// RejectedAt holds the value of the "rejected_at" field.
	RejectedAt   *time.Time `json:"rejected_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Submission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case submission.FieldSignature, submission.FieldFormData, submission.FieldAttachments, submission.FieldAssignedApprovers:
			values[i] = new([]byte)
		case submission.FieldID, submission.FieldFormTemplateID, submission.FieldFormName, submission.FieldFormCategory, submission.FieldSubmittedBy, submission.FieldSubmitterName, submission.FieldSubmitterPosition, submission.FieldSubmitterDepartment, submission.FieldSubmitterEmail, submission.FieldStatus:
			values[i] = new(sql.NullString)
		case submission.FieldCreatedAt, submission.FieldUpdatedAt, submission.FieldSubmittedAt, submission.FieldApprovedAt, submission.FieldRejectedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Submission fields.
func (_m *Submission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case submission.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case submission.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case submission.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case submission.FieldFormTemplateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field form_template_id", values[i])
			} else if value.Valid {
				_m.FormTemplateID = value.String
			}
		case submission.FieldFormName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field form_name", values[i])
			} else if value.Valid {
				_m.FormName = value.String
			}
		case submission.FieldFormCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field form_category", values[i])
			} else if value.Valid {
				_m.FormCategory = value.String
			}
		case submission.FieldSubmittedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_by", values[i])
			} else if value.Valid {
				_m.SubmittedBy = value.String
			}
		case submission.FieldSubmitterName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submitter_name", values[i])
			} else if value.Valid {
				_m.SubmitterName = value.String
			}
		case submission.FieldSubmitterPosition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submitter_position", values[i])
			} else if value.Valid {
				_m.SubmitterPosition = value.String
			}
		case submission.FieldSubmitterDepartment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submitter_department", values[i])
			} else if value.Valid {
				_m.SubmitterDepartment = value.String
			}
		case submission.FieldSubmitterEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submitter_email", values[i])
			} else if value.Valid {
				_m.SubmitterEmail = value.String
			}
		case submission.FieldSignature:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field signature", values[i])
			} else if value != nil {
				_m.Signature = *value
			}
		case submission.FieldFormData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field form_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FormData); err != nil {
					return fmt.Errorf("unmarshal field form_data: %w", err)
				}
			}
		case submission.FieldAttachments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field attachments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Attachments); err != nil {
					return fmt.Errorf("unmarshal field attachments: %w", err)
				}
			}
		case submission.FieldAssignedApprovers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_approvers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AssignedApprovers); err != nil {
					return fmt.Errorf("unmarshal field assigned_approvers: %w", err)
				}
			}
		case submission.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = submission.Status(value.String)
			}
		case submission.FieldSubmittedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_at", values[i])
			} else if value.Valid {
				_m.SubmittedAt = new(time.Time)
				*_m.SubmittedAt = value.Time
			}
		case submission.FieldApprovedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field approved_at", values[i])
			} else if value.Valid {
				_m.ApprovedAt = new(time.Time)
				*_m.ApprovedAt = value.Time
			}
		case submission.FieldRejectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field rejected_at", values[i])
			} else if value.Valid {
				_m.RejectedAt = new(time.Time)
				*_m.RejectedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Submission.
// This includes values selected through modifiers, order, etc.
func (_m *Submission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Submission.
// Note that you need to call Submission.Unwrap() before calling this method if this Submission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Submission) Update() *SubmissionUpdateOne {
	return NewSubmissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Submission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Submission) Unwrap() *Submission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Submission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Submission) String() string {
	var builder strings.Builder
	builder.WriteString("Submission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("form_template_id=")
	builder.WriteString(_m.FormTemplateID)
	builder.WriteString(", ")
	builder.WriteString("form_name=")
	builder.WriteString(_m.FormName)
	builder.WriteString(", ")
	builder.WriteString("form_category=")
	builder.WriteString(_m.FormCategory)
	builder.WriteString(", ")
	builder.WriteString("submitted_by=")
	builder.WriteString(_m.SubmittedBy)
	builder.WriteString(", ")
	builder.WriteString("submitter_name=")
	builder.WriteString(_m.SubmitterName)
	builder.WriteString(", ")
	builder.WriteString("submitter_position=")
	builder.WriteString(_m.SubmitterPosition)
	builder.WriteString(", ")
	builder.WriteString("submitter_department=")
	builder.WriteString(_m.SubmitterDepartment)
	builder.WriteString(", ")
	builder.WriteString("submitter_email=")
	builder.WriteString(_m.SubmitterEmail)
	builder.WriteString(", ")
	builder.WriteString("signature=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("form_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.FormData))
	builder.WriteString(", ")
	builder.WriteString("attachments=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attachments))
	builder.WriteString(", ")
	builder.WriteString("assigned_approvers=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssignedApprovers))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.SubmittedAt; v != nil {
		builder.WriteString("submitted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ApprovedAt; v != nil {
		builder.WriteString("approved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RejectedAt; v != nil {
		builder.WriteString("rejected_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Submissions is a parsable slice of Submission.
type Submissions []*Submission
