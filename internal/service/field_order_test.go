package service

import (
	"testing"

	"formgate.io/formgate/internal/domain"
)

func TestOrderFormData_FollowsTemplateOrder(t *testing.T) {
	t.Parallel()

	fields := []domain.FormField{
		{ID: "first", Label: "First", Type: domain.FieldText},
		{ID: "second", Label: "Second", Type: domain.FieldText},
		{ID: "third", Label: "Third", Type: domain.FieldCheckbox},
	}
	// Map iteration order is irrelevant; output must follow the field list.
	data := domain.FormData{
		"third":  true,
		"first":  "1",
		"rogue":  "dropped",
		"second": "2",
	}

	got := OrderFormData(fields, data)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, wantID := range []string{"first", "second", "third"} {
		if got[i].Field.ID != wantID {
			t.Errorf("position %d = %q, want %q", i, got[i].Field.ID, wantID)
		}
		if !got[i].Present {
			t.Errorf("position %d Present = false, want true", i)
		}
	}
	if got[2].Value != true {
		t.Errorf("checkbox value = %v, want true", got[2].Value)
	}
}

func TestOrderFormData_MissingValuesKeepTheirSlot(t *testing.T) {
	t.Parallel()

	fields := []domain.FormField{
		{ID: "a", Type: domain.FieldText},
		{ID: "b", Type: domain.FieldText},
	}

	got := OrderFormData(fields, domain.FormData{"b": "set"})
	if got[0].Present {
		t.Error("missing value reported as present")
	}
	if !got[1].Present || got[1].Value != "set" {
		t.Errorf("got[1] = %+v, want present with value set", got[1])
	}
}
