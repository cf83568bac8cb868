package main

import (
	"testing"

	"formgate.io/formgate/internal/domain"
)

func TestParseSeedFile(t *testing.T) {
	t.Parallel()

	data := []byte(`
users:
  - username: jordan.park
    name: Jordan Park
    email: jordan.park@example.com
    position: Engineer
    department: Platform
    password: changeme
    roles: [employee]
templates:
  - name: Leave Request
    category: hr
    notes: Submit at least three days in advance.
    fields:
      - id: reason
        label: Reason
        type: text
        required: true
      - id: urgent
        label: Urgent
        type: checkbox
    approvers:
      - id: approver-1
        name: Approver One
        position: Team Lead
`)

	file, err := parseSeedFile(data)
	if err != nil {
		t.Fatalf("parseSeedFile: %v", err)
	}

	if len(file.Users) != 1 || file.Users[0].Username != "jordan.park" {
		t.Fatalf("users = %+v, want one user jordan.park", file.Users)
	}
	if len(file.Templates) != 1 {
		t.Fatalf("templates = %d, want 1", len(file.Templates))
	}
	tpl := file.Templates[0]
	if len(tpl.Fields) != 2 || tpl.Fields[0].ID != "reason" || tpl.Fields[1].Type != domain.FieldCheckbox {
		t.Errorf("fields = %+v, want reason/text then urgent/checkbox", tpl.Fields)
	}
	if len(tpl.Approvers) != 1 || tpl.Approvers[0].ID != "approver-1" {
		t.Errorf("approvers = %+v, want approver-1", tpl.Approvers)
	}
}

func TestParseSeedFile_RejectsIncompleteEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"user without password", "users:\n  - username: a\n    name: A\n"},
		{"template without name", "templates:\n  - category: hr\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := parseSeedFile([]byte(tc.data)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestParseSeedFile_Empty(t *testing.T) {
	t.Parallel()

	file, err := parseSeedFile(nil)
	if err != nil {
		t.Fatalf("parseSeedFile(nil): %v", err)
	}
	if len(file.Users) != 0 || len(file.Templates) != 0 {
		t.Fatalf("empty seed file parsed to %+v", file)
	}
}
