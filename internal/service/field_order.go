package service

import "formgate.io/formgate/internal/domain"

// FieldValue pairs a template field with the value collected for it.
type FieldValue struct {
	Field   domain.FormField
	Value   any
	Present bool
}

// OrderFormData projects collected form data onto the template's field order.
// Template order is the presentation contract: the renderer and any detail
// view follow it regardless of the order values arrived in, and values for
// ids absent from the template are dropped.
func OrderFormData(fields []domain.FormField, data domain.FormData) []FieldValue {
	out := make([]FieldValue, 0, len(fields))
	for _, f := range fields {
		v, ok := data[f.ID]
		out = append(out, FieldValue{Field: f, Value: v, Present: ok})
	}
	return out
}
