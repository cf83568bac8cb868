package service

import (
	"fmt"
	"strings"

	"formgate.io/formgate/internal/domain"
	apperrors "formgate.io/formgate/internal/pkg/errors"
)

// SubmissionValidator performs the submit-time precondition checks. A
// submission that passes here is guaranteed to be decidable: it has a
// non-empty approver set, a submitter signature, and values for every
// required field of its template.
type SubmissionValidator struct{}

// NewSubmissionValidator creates a new SubmissionValidator.
func NewSubmissionValidator() *SubmissionValidator {
	return &SubmissionValidator{}
}

// ValidateSubmit checks a submission about to enter the approval flow.
// tpl may be nil when the originating template was deleted while the
// submission sat in draft; field-level checks are skipped then, but the
// signature and approver requirements always hold.
func (v *SubmissionValidator) ValidateSubmit(tpl *domain.FormTemplate, formData domain.FormData, signature []byte, approvers []domain.Approver) error {
	var fieldErrs []apperrors.FieldError

	if len(signature) == 0 {
		fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "signature", Code: "required", Message: "submitter signature is required"})
	}
	// An empty approver set would otherwise mean instant auto-approval;
	// it is rejected here instead.
	if len(approvers) == 0 {
		fieldErrs = append(fieldErrs, apperrors.FieldError{Field: "approvers", Code: "required", Message: "at least one approver must be assigned"})
	}

	if tpl != nil {
		fieldErrs = append(fieldErrs, validateFormData(tpl, formData)...)
	}

	if len(fieldErrs) > 0 {
		return apperrors.BadRequest(apperrors.CodeValidationFailed, "submission failed validation").
			WithFieldErrors(fieldErrs)
	}
	return nil
}

func validateFormData(tpl *domain.FormTemplate, formData domain.FormData) []apperrors.FieldError {
	var errs []apperrors.FieldError

	for _, f := range tpl.Fields {
		if f.IsNote {
			continue
		}
		raw, present := formData[f.ID]

		if f.Type == domain.FieldCheckbox {
			checked, ok := raw.(bool)
			if present && !ok {
				errs = append(errs, apperrors.FieldError{Field: f.ID, Code: "invalid_type", Message: "checkbox value must be a boolean"})
				continue
			}
			if f.Required && !checked {
				errs = append(errs, apperrors.FieldError{Field: f.ID, Code: "required", Message: fmt.Sprintf("%s must be checked", f.Label)})
			}
			continue
		}

		value, ok := raw.(string)
		if present && !ok {
			errs = append(errs, apperrors.FieldError{Field: f.ID, Code: "invalid_type", Message: "value must be a string"})
			continue
		}
		if f.Required && strings.TrimSpace(value) == "" {
			errs = append(errs, apperrors.FieldError{Field: f.ID, Code: "required", Message: fmt.Sprintf("%s is required", f.Label)})
			continue
		}
		if value == "" {
			continue
		}

		switch f.Type {
		case domain.FieldEmail:
			if !strings.Contains(value, "@") {
				errs = append(errs, apperrors.FieldError{Field: f.ID, Code: "invalid_email", Message: fmt.Sprintf("%s is not a valid email address", f.Label)})
			}
		case domain.FieldSelect:
			if !containsOption(f.Options, value) {
				errs = append(errs, apperrors.FieldError{Field: f.ID, Code: "invalid_option", Message: fmt.Sprintf("%q is not an allowed option for %s", value, f.Label)})
			}
		}
	}

	return errs
}

func containsOption(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
