package service

import (
	"testing"

	"formgate.io/formgate/internal/domain"
	apperrors "formgate.io/formgate/internal/pkg/errors"
)

func testTemplate() *domain.FormTemplate {
	return &domain.FormTemplate{
		ID:   "tpl-1",
		Name: "Leave Request",
		Fields: []domain.FormField{
			{ID: "reason", Label: "Reason", Type: domain.FieldText, Required: true},
			{ID: "email", Label: "Email", Type: domain.FieldEmail},
			{ID: "duration", Label: "Duration", Type: domain.FieldSelect, Options: []string{"half-day", "full-day"}},
			{ID: "consent", Label: "Policy acknowledged", Type: domain.FieldCheckbox, Required: true},
			{ID: "note-1", Label: "Submit before Friday", Type: domain.FieldText, IsNote: true},
		},
		Approvers: []domain.Approver{{ID: "a", Name: "Approver A"}},
	}
}

func fieldCodes(err error) map[string]string {
	appErr, ok := apperrors.IsAppError(err)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(appErr.FieldErrors))
	for _, fe := range appErr.FieldErrors {
		out[fe.Field] = fe.Code
	}
	return out
}

func TestValidateSubmit_Valid(t *testing.T) {
	t.Parallel()

	v := NewSubmissionValidator()
	err := v.ValidateSubmit(testTemplate(), domain.FormData{
		"reason":   "family event",
		"email":    "user@example.com",
		"duration": "half-day",
		"consent":  true,
	}, []byte("sig"), testTemplate().Approvers)
	if err != nil {
		t.Fatalf("ValidateSubmit() error = %v, want nil", err)
	}
}

func TestValidateSubmit_FieldFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		data      domain.FormData
		wantField string
		wantCode  string
	}{
		{
			name:      "missing required field",
			data:      domain.FormData{"consent": true},
			wantField: "reason",
			wantCode:  "required",
		},
		{
			name:      "unchecked required checkbox",
			data:      domain.FormData{"reason": "x", "consent": false},
			wantField: "consent",
			wantCode:  "required",
		},
		{
			name:      "checkbox with non-bool value",
			data:      domain.FormData{"reason": "x", "consent": "yes"},
			wantField: "consent",
			wantCode:  "invalid_type",
		},
		{
			name:      "bad email",
			data:      domain.FormData{"reason": "x", "consent": true, "email": "nope"},
			wantField: "email",
			wantCode:  "invalid_email",
		},
		{
			name:      "value outside select options",
			data:      domain.FormData{"reason": "x", "consent": true, "duration": "fortnight"},
			wantField: "duration",
			wantCode:  "invalid_option",
		},
	}

	v := NewSubmissionValidator()
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := v.ValidateSubmit(testTemplate(), tc.data, []byte("sig"), testTemplate().Approvers)
			if err == nil {
				t.Fatal("ValidateSubmit() = nil, want validation error")
			}
			codes := fieldCodes(err)
			if codes[tc.wantField] != tc.wantCode {
				t.Fatalf("field %q code = %q, want %q (all: %v)", tc.wantField, codes[tc.wantField], tc.wantCode, codes)
			}
		})
	}
}

func TestValidateSubmit_RequiresSignatureAndApprovers(t *testing.T) {
	t.Parallel()

	v := NewSubmissionValidator()
	err := v.ValidateSubmit(testTemplate(), domain.FormData{"reason": "x", "consent": true}, nil, nil)
	if err == nil {
		t.Fatal("ValidateSubmit() = nil, want validation error")
	}

	codes := fieldCodes(err)
	if codes["signature"] != "required" {
		t.Errorf("signature code = %q, want required", codes["signature"])
	}
	if codes["approvers"] != "required" {
		t.Errorf("approvers code = %q, want required", codes["approvers"])
	}
}

func TestValidateSubmit_NilTemplateSkipsFieldChecks(t *testing.T) {
	t.Parallel()

	v := NewSubmissionValidator()
	err := v.ValidateSubmit(nil, nil, []byte("sig"), []domain.Approver{{ID: "a", Name: "A"}})
	if err != nil {
		t.Fatalf("ValidateSubmit() error = %v, want nil", err)
	}
}

func TestValidateSubmit_NoteFieldsNeverRequireValues(t *testing.T) {
	t.Parallel()

	tpl := &domain.FormTemplate{
		Fields: []domain.FormField{
			{ID: "note-1", Label: "Info", Type: domain.FieldText, Required: true, IsNote: true},
		},
		Approvers: []domain.Approver{{ID: "a", Name: "A"}},
	}

	v := NewSubmissionValidator()
	if err := v.ValidateSubmit(tpl, domain.FormData{}, []byte("sig"), tpl.Approvers); err != nil {
		t.Fatalf("ValidateSubmit() error = %v, want nil", err)
	}
}

func TestValidateTemplateInput(t *testing.T) {
	t.Parallel()

	valid := TemplateInput{
		Name: "Leave Request",
		Fields: []domain.FormField{
			{ID: "reason", Label: "Reason", Type: domain.FieldText},
		},
		Approvers: []domain.Approver{{ID: "a", Name: "A"}},
	}
	if err := validateTemplateInput(valid); err != nil {
		t.Fatalf("validateTemplateInput(valid) = %v, want nil", err)
	}

	tests := []struct {
		name   string
		mutate func(*TemplateInput)
	}{
		{"empty name", func(in *TemplateInput) { in.Name = "" }},
		{"no fields", func(in *TemplateInput) { in.Fields = nil }},
		{"field without id", func(in *TemplateInput) { in.Fields[0].ID = "" }},
		{"unknown field type", func(in *TemplateInput) { in.Fields[0].Type = "carousel" }},
		{"select without options", func(in *TemplateInput) { in.Fields[0].Type = domain.FieldSelect }},
		{"approver without name", func(in *TemplateInput) { in.Approvers[0].Name = "" }},
		{
			"duplicate field ids",
			func(in *TemplateInput) {
				in.Fields = append(in.Fields, domain.FormField{ID: "reason", Label: "Again", Type: domain.FieldText})
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			in := TemplateInput{
				Name: valid.Name,
				Fields: []domain.FormField{
					{ID: "reason", Label: "Reason", Type: domain.FieldText},
				},
				Approvers: []domain.Approver{{ID: "a", Name: "A"}},
			}
			tc.mutate(&in)
			err := validateTemplateInput(in)
			if err == nil {
				t.Fatal("validateTemplateInput() = nil, want error")
			}
			appErr, ok := apperrors.IsAppError(err)
			if !ok || appErr.Code != apperrors.CodeTemplateInvalid {
				t.Fatalf("error = %v, want code %s", err, apperrors.CodeTemplateInvalid)
			}
		})
	}
}
