package usecase

import (
	"context"
	"strings"
	"testing"

	"formgate.io/formgate/internal/domain"
)

func TestSubmissionWriter_Uninitialized(t *testing.T) {
	t.Parallel()

	w := &SubmissionWriter{}
	_, err := w.Create(context.Background(), &domain.FormTemplate{ID: "tpl-1"}, CreateSubmissionInput{
		Submitter: domain.Actor{ID: "user-1"},
	})
	if err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Fatalf("Create() error = %v, want contains %q", err, "not initialized")
	}

	err = w.SubmitDraft(context.Background(), "sub-1", domain.Actor{ID: "user-1"})
	if err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Fatalf("SubmitDraft() error = %v, want contains %q", err, "not initialized")
	}
}

func TestSubmissionDeleter_InputGuards(t *testing.T) {
	t.Parallel()

	d := &SubmissionDeleter{}
	if err := d.DeleteDraft(context.Background(), "sub-1", domain.Actor{ID: "user-1"}); err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Fatalf("DeleteDraft() error = %v, want contains %q", err, "not initialized")
	}

	d = NewSubmissionDeleter(nil)
	if err := d.DeleteDraft(context.Background(), "sub-1", domain.Actor{ID: "user-1"}); err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Fatalf("DeleteDraft() with nil pool error = %v, want contains %q", err, "not initialized")
	}
}
