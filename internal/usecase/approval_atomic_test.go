package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"formgate.io/formgate/internal/domain"
	apperrors "formgate.io/formgate/internal/pkg/errors"
)

func TestSubmissionAtomicWriter_Uninitialized(t *testing.T) {
	t.Parallel()

	w := &SubmissionAtomicWriter{}
	_, err := w.Approve(context.Background(), "sub-1", domain.Actor{ID: "a"}, nil)
	if err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Fatalf("Approve() error = %v, want contains %q", err, "not initialized")
	}
	_, err = w.Reject(context.Background(), "sub-1", domain.Actor{ID: "a"}, nil)
	if err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Fatalf("Reject() error = %v, want contains %q", err, "not initialized")
	}
}

func TestMapDecisionError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         error
		wantCode   string
		wantStatus int
	}{
		{"stale state", domain.ErrStaleState, apperrors.CodeStaleState, http.StatusConflict},
		{"not authorized", domain.ErrNotAuthorized, apperrors.CodeNotAuthorized, http.StatusForbidden},
		{"duplicate action", domain.ErrDuplicateAction, apperrors.CodeDuplicateAction, http.StatusConflict},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := mapDecisionError(tc.in, "sub-1", domain.StatusApproved, "user-1")
			appErr, ok := apperrors.IsAppError(got)
			if !ok {
				t.Fatalf("mapDecisionError(%v) = %v, want AppError", tc.in, got)
			}
			if appErr.Code != tc.wantCode {
				t.Errorf("Code = %q, want %q", appErr.Code, tc.wantCode)
			}
			if appErr.HTTPStatus != tc.wantStatus {
				t.Errorf("HTTPStatus = %d, want %d", appErr.HTTPStatus, tc.wantStatus)
			}
		})
	}
}

func TestMapDecisionError_PassesThroughUnknown(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("database exploded")
	if got := mapDecisionError(sentinel, "sub-1", domain.StatusPendingApproval, "user-1"); !errors.Is(got, sentinel) {
		t.Fatalf("mapDecisionError() = %v, want wrapped %v", got, sentinel)
	}
}

func TestMapDecisionError_StaleStateCarriesCurrentStatus(t *testing.T) {
	t.Parallel()

	got := mapDecisionError(domain.ErrStaleState, "sub-1", domain.StatusRejected, "user-1")
	appErr, ok := apperrors.IsAppError(got)
	if !ok {
		t.Fatalf("expected AppError, got %v", got)
	}
	if appErr.Params["status"] != "REJECTED" {
		t.Fatalf("Params[status] = %v, want REJECTED", appErr.Params["status"])
	}
}
