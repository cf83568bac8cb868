// Code generated by ent, DO NOT EDIT.

package approvalrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the approvalrecord type in the database.
	Label = "approval_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldSubmissionID holds the string denoting the submission_id field in the database.
	FieldSubmissionID = "submission_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldActorID holds the string denoting the actor_id field in the database.
	FieldActorID = "actor_id"
	// FieldActorName holds the string denoting the actor_name field in the database.
	FieldActorName = "actor_name"
	// FieldActorPosition holds the string denoting the actor_position field in the database.
	FieldActorPosition = "actor_position"
	// FieldActorDepartment holds the string denoting the actor_department field in the database.
	FieldActorDepartment = "actor_department"
	// FieldSignature holds the string denoting the signature field in the database.
	FieldSignature = "signature"
	// Table holds the table name of the approvalrecord in the database.
	Table = "approval_records"
)

// Columns holds all SQL columns for approvalrecord fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldSubmissionID,
	FieldAction,
	FieldActorID,
	FieldActorName,
	FieldActorPosition,
	FieldActorDepartment,
	FieldSignature,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// SubmissionIDValidator is a validator for the "submission_id" field. It is called by the builders before save.
	SubmissionIDValidator func(string) error
	// ActorIDValidator is a validator for the "actor_id" field. It is called by the builders before save.
	ActorIDValidator func(string) error
	// ActorNameValidator is a validator for the "actor_name" field. It is called by the builders before save.
	ActorNameValidator func(string) error
)

// Action defines the type for the "action" enum field.
type Action string

// Action values.
const (
	ActionSUBMITTED Action = "SUBMITTED"
	ActionAPPROVED  Action = "APPROVED"
	ActionREJECTED  Action = "REJECTED"
)

func (a Action) String() string {
	return string(a)
}

// ActionValidator is a validator for the "action" field enum values. It is called by the builders before save.
func ActionValidator(a Action) error {
	switch a {
	case ActionSUBMITTED, ActionAPPROVED, ActionREJECTED:
		return nil
	default:
		return fmt.Errorf("approvalrecord: invalid enum value for action field: %q", a)
	}
}

// OrderOption defines the ordering options for the ApprovalRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySubmissionID orders the results by the submission_id field.
func BySubmissionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmissionID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByActorID orders the results by the actor_id field.
func ByActorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorID, opts...).ToFunc()
}

// ByActorName orders the results by the actor_name field.
func ByActorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorName, opts...).ToFunc()
}

// ByActorPosition orders the results by the actor_position field.
func ByActorPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorPosition, opts...).ToFunc()
}

// ByActorDepartment orders the results by the actor_department field.
func ByActorDepartment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorDepartment, opts...).ToFunc()
}
