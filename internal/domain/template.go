package domain

import (
	"fmt"
	"time"
)

// FieldType enumerates the supported form field kinds.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldTextarea FieldType = "textarea"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldSelect   FieldType = "select"
	FieldCheckbox FieldType = "checkbox"
)

// KnownFieldType reports whether t is one of the supported field kinds.
func KnownFieldType(t FieldType) bool {
	switch t {
	case FieldText, FieldEmail, FieldTextarea, FieldNumber, FieldDate, FieldSelect, FieldCheckbox:
		return true
	}
	return false
}

// FormField is one entry of a template's ordered field list.
type FormField struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
	Options     []string  `json:"options,omitempty"`

	// IsNote fields render as informational text and never collect a value.
	IsNote bool `json:"is_note,omitempty"`
}

// FormTemplate is the schema an admin defines for a category of form.
type FormTemplate struct {
	ID          string
	Name        string
	Description string
	Category    string

	// Fields in display order; order is a presentation contract the
	// renderer follows regardless of how values were collected.
	Fields []FormField

	// Approvers required for submissions of this template. Order reflects
	// seniority and drives signature-block label assignment.
	Approvers []Approver

	Notes          string
	RevisionNumber string
	CreatedBy      string

	ReferenceDoc     []byte
	ReferenceDocName string
	ReferenceDocType string
	ReferenceDocSize int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FieldByID returns the template field with the given id.
func (t *FormTemplate) FieldByID(id string) (FormField, bool) {
	for _, f := range t.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return FormField{}, false
}

// NewRevisionNumber builds the immutable revision tag assigned to a template
// at creation time, e.g. "FG-REV/ 02 Jan 2006".
func NewRevisionNumber(prefix string, now time.Time) string {
	return fmt.Sprintf("%s/ %s", prefix, now.Format("02 Jan 2006"))
}
