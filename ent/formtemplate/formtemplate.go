// Code generated by ent, DO NOT EDIT.

package formtemplate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the formtemplate type in the database.
	Label = "form_template"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldFields holds the string denoting the fields field in the database.
	FieldFields = "fields"
	// FieldApprovers holds the string denoting the approvers field in the database.
	FieldApprovers = "approvers"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldRevisionNumber holds the string denoting the revision_number field in the database.
	FieldRevisionNumber = "revision_number"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldReferenceDoc holds the string denoting the reference_doc field in the database.
	FieldReferenceDoc = "reference_doc"
	// FieldReferenceDocName holds the string denoting the reference_doc_name field in the database.
	FieldReferenceDocName = "reference_doc_name"
	// FieldReferenceDocType holds the string denoting the reference_doc_type field in the database.
	FieldReferenceDocType = "reference_doc_type"
	// FieldReferenceDocSize holds the string denoting the reference_doc_size field in the database.
	FieldReferenceDocSize = "reference_doc_size"
	// Table holds the table name of the formtemplate in the database.
	Table = "form_templates"
)

// Columns holds all SQL columns for formtemplate fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldDescription,
	FieldCategory,
	FieldFields,
	FieldApprovers,
	FieldNotes,
	FieldRevisionNumber,
	FieldCreatedBy,
	FieldReferenceDoc,
	FieldReferenceDocName,
	FieldReferenceDocType,
	FieldReferenceDocSize,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// RevisionNumberValidator is a validator for the "revision_number" field. It is called by the builders before save.
	RevisionNumberValidator func(string) error
	// CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	CreatedByValidator func(string) error
)

// OrderOption defines the ordering options for the FormTemplate queries.
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

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByRevisionNumber orders the results by the revision_number field.
func ByRevisionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevisionNumber, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByReferenceDocName orders the results by the reference_doc_name field.
func ByReferenceDocName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferenceDocName, opts...).ToFunc()
}

// ByReferenceDocType orders the results by the reference_doc_type field.
func ByReferenceDocType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferenceDocType, opts...).ToFunc()
}

// ByReferenceDocSize orders the results by the reference_doc_size field.
func ByReferenceDocSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferenceDocSize, opts...).ToFunc()
}
