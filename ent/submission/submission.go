// Code generated by ent, DO NOT EDIT.

package submission

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the submission type in the database.
	Label = "submission"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldFormTemplateID holds the string denoting the form_template_id field in the database.
	FieldFormTemplateID = "form_template_id"
	// FieldFormName holds the string denoting the form_name field in the database.
	FieldFormName = "form_name"
	// FieldFormCategory holds the string denoting the form_category field in the database.
	FieldFormCategory = "form_category"
	// FieldSubmittedBy holds the string denoting the submitted_by field in the database.
	FieldSubmittedBy = "submitted_by"
	// FieldSubmitterName holds the string denoting the submitter_name field in the database.
	FieldSubmitterName = "submitter_name"
	// FieldSubmitterPosition holds the string denoting the submitter_position field in the database.
	FieldSubmitterPosition = "submitter_position"
	// FieldSubmitterDepartment holds the string denoting the submitter_department field in the database.
	FieldSubmitterDepartment = "submitter_department"
	// FieldSubmitterEmail holds the string denoting the submitter_email field in the database.
	FieldSubmitterEmail = "submitter_email"
	// FieldSignature holds the string denoting the signature field in the database.
	FieldSignature = "signature"
	// FieldFormData holds the string denoting the form_data field in the database.
	FieldFormData = "form_data"
	// FieldAttachments holds the string denoting the attachments field in the database.
	FieldAttachments = "attachments"
	// FieldAssignedApprovers holds the string denoting the assigned_approvers field in the database.
	FieldAssignedApprovers = "assigned_approvers"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSubmittedAt holds the string denoting the submitted_at field in the database.
	FieldSubmittedAt = "submitted_at"
	// FieldApprovedAt holds the string denoting the approved_at field in the database.
	FieldApprovedAt = "approved_at"
	// FieldRejectedAt holds the string denoting the rejected_at field in the database.
	FieldRejectedAt = "rejected_at"
	// Table holds the table name of the submission in the database.
	Table = "submissions"
)

// Columns holds all SQL columns for submission fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldFormTemplateID,
	FieldFormName,
	FieldFormCategory,
	FieldSubmittedBy,
	FieldSubmitterName,
	FieldSubmitterPosition,
	FieldSubmitterDepartment,
	FieldSubmitterEmail,
	FieldSignature,
	FieldFormData,
	FieldAttachments,
	FieldAssignedApprovers,
	FieldStatus,
	FieldSubmittedAt,
	FieldApprovedAt,
	FieldRejectedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// FormTemplateIDValidator is a validator for the "form_template_id" field. It is called by the builders before save.
	FormTemplateIDValidator func(string) error
	// FormNameValidator is a validator for the "form_name" field. It is called by the builders before save.
	FormNameValidator func(string) error
	// SubmittedByValidator is a validator for the "submitted_by" field. It is called by the builders before save.
	SubmittedByValidator func(string) error
	// SubmitterNameValidator is a validator for the "submitter_name" field. It is called by the builders before save.
	SubmitterNameValidator func(string) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusDRAFT is the default value of the Status enum.
const DefaultStatus = StatusDRAFT

// Status values.
const (
	StatusDRAFT            Status = "DRAFT"
	StatusPENDING_APPROVAL Status = "PENDING_APPROVAL"
	StatusAPPROVED         Status = "APPROVED"
	StatusREJECTED         Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDRAFT, StatusPENDING_APPROVAL, StatusAPPROVED, StatusREJECTED:
		return nil
	default:
		return fmt.Errorf("submission: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Submission queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFormTemplateID orders the results by the form_template_id field.
func ByFormTemplateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormTemplateID, opts...).ToFunc()
}

// ByFormName orders the results by the form_name field.
func ByFormName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormName, opts...).ToFunc()
}

// ByFormCategory orders the results by the form_category field.
func ByFormCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormCategory, opts...).ToFunc()
}

// BySubmittedBy orders the results by the submitted_by field.
func BySubmittedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmittedBy, opts...).ToFunc()
}

// BySubmitterName orders the results by the submitter_name field.
func BySubmitterName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmitterName, opts...).ToFunc()
}

// BySubmitterPosition orders the results by the submitter_position field.
func BySubmitterPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmitterPosition, opts...).ToFunc()
}

// BySubmitterDepartment orders the results by the submitter_department field.
func BySubmitterDepartment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmitterDepartment, opts...).ToFunc()
}

// BySubmitterEmail orders the results by the submitter_email field.
func BySubmitterEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmitterEmail, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySubmittedAt orders the results by the submitted_at field.
func BySubmittedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmittedAt, opts...).ToFunc()
}

// ByApprovedAt orders the results by the approved_at field.
func ByApprovedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedAt, opts...).ToFunc()
}

// ByRejectedAt orders the results by the rejected_at field.
func ByRejectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectedAt, opts...).ToFunc()
}
