// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ApprovalRecord is the predicate function for approvalrecord builders.
type ApprovalRecord func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// FormTemplate is the predicate function for formtemplate builders.
type FormTemplate func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
