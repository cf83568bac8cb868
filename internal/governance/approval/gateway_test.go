package approval

import (
	"context"
	"strings"
	"testing"

	"formgate.io/formgate/internal/domain"
	"formgate.io/formgate/internal/usecase"
)

func TestGateway_UnconfiguredWriters(t *testing.T) {
	t.Parallel()

	gw := NewGateway(nil, nil, nil, nil, nil)

	if _, err := gw.Approve(context.Background(), "sub-1", domain.Actor{ID: "a"}, nil); err == nil || !strings.Contains(err.Error(), "not configured") {
		t.Fatalf("Approve() error = %v, want not configured", err)
	}
	if _, err := gw.Reject(context.Background(), "sub-1", domain.Actor{ID: "a"}, nil); err == nil || !strings.Contains(err.Error(), "not configured") {
		t.Fatalf("Reject() error = %v, want not configured", err)
	}
	if _, err := gw.Submit(context.Background(), "tpl-1", usecase.CreateSubmissionInput{}); err == nil || !strings.Contains(err.Error(), "not configured") {
		t.Fatalf("Submit() error = %v, want not configured", err)
	}
	if err := gw.SubmitDraft(context.Background(), "sub-1", domain.Actor{ID: "a"}); err == nil || !strings.Contains(err.Error(), "not configured") {
		t.Fatalf("SubmitDraft() error = %v, want not configured", err)
	}
}
