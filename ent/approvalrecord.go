// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"formgate.io/formgate/ent/approvalrecord"
)

// ApprovalRecord is the model entity for the ApprovalRecord schema.
type ApprovalRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// SubmissionID holds the value of the "submission_id" field.
	SubmissionID string `json:"submission_id,omitempty"`
	// Action holds the value of the "action" field.
	Action approvalrecord.Action `json:"action,omitempty"`
	// ActorID holds the value of the "actor_id" field.
	ActorID string `json:"actor_id,omitempty"`
	// ActorName holds the value of the "actor_name" field.
	ActorName string `json:"actor_name,omitempty"`
	// ActorPosition holds the value of the "actor_position" field.
	ActorPosition string `json:"actor_position,omitempty"`
	// ActorDepartment holds the value of the "actor_department" field.
	ActorDepartment string `json:"actor_department,omitempty"`
	// Signature holds the value of the "signature" field.
	Signature    []byte `json:"-"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApprovalRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case approvalrecord.FieldSignature:
			values[i] = new([]byte)
		case approvalrecord.FieldID, approvalrecord.FieldSubmissionID, approvalrecord.FieldAction, approvalrecord.FieldActorID, approvalrecord.FieldActorName, approvalrecord.FieldActorPosition, approvalrecord.FieldActorDepartment:
			values[i] = new(sql.NullString)
		case approvalrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApprovalRecord fields.
func (_m *ApprovalRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case approvalrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case approvalrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case approvalrecord.FieldSubmissionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submission_id", values[i])
			} else if value.Valid {
				_m.SubmissionID = value.String
			}
		case approvalrecord.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = approvalrecord.Action(value.String)
			}
		case approvalrecord.FieldActorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_id", values[i])
			} else if value.Valid {
				_m.ActorID = value.String
			}
		case approvalrecord.FieldActorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_name", values[i])
			} else if value.Valid {
				_m.ActorName = value.String
			}
		case approvalrecord.FieldActorPosition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_position", values[i])
			} else if value.Valid {
				_m.ActorPosition = value.String
			}
		case approvalrecord.FieldActorDepartment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_department", values[i])
			} else if value.Valid {
				_m.ActorDepartment = value.String
			}
		case approvalrecord.FieldSignature:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field signature", values[i])
			} else if value != nil {
				_m.Signature = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ApprovalRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ApprovalRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ApprovalRecord.
// Note that you need to call ApprovalRecord.Unwrap() before calling this method if this ApprovalRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApprovalRecord) Update() *ApprovalRecordUpdateOne {
	return NewApprovalRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApprovalRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApprovalRecord) Unwrap() *ApprovalRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApprovalRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApprovalRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ApprovalRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("submission_id=")
	builder.WriteString(_m.SubmissionID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(fmt.Sprintf("%v", _m.Action))
	builder.WriteString(", ")
	builder.WriteString("actor_id=")
	builder.WriteString(_m.ActorID)
	builder.WriteString(", ")
	builder.WriteString("actor_name=")
	builder.WriteString(_m.ActorName)
	builder.WriteString(", ")
	builder.WriteString("actor_position=")
	builder.WriteString(_m.ActorPosition)
	builder.WriteString(", ")
	builder.WriteString("actor_department=")
	builder.WriteString(_m.ActorDepartment)
	builder.WriteString(", ")
	builder.WriteString("signature=<sensitive>")
	builder.WriteByte(')')
	return builder.String()
}

// ApprovalRecords is a parsable slice of ApprovalRecord.
type ApprovalRecords []*ApprovalRecord
