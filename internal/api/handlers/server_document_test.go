package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"formgate.io/formgate/internal/api/middleware"
	"formgate.io/formgate/internal/domain"
	apperrors "formgate.io/formgate/internal/pkg/errors"
	"formgate.io/formgate/internal/pkg/worker"
	"formgate.io/formgate/internal/render"
	"formgate.io/formgate/internal/service"
	"formgate.io/formgate/internal/testutil"
)

func TestGetSubmissionDocument_RequiresApproval(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "document_precondition")

	pools, err := worker.NewPools(context.Background(), worker.DefaultPoolConfig())
	if err != nil {
		t.Fatalf("create pools: %v", err)
	}
	t.Cleanup(pools.Shutdown)

	templates := service.NewTemplateService(client, "FG-REV")
	tpl, err := templates.Create(context.Background(), service.TemplateInput{
		Name:   "Leave Request",
		Fields: []domain.FormField{{ID: "reason", Label: "Reason", Type: domain.FieldText}},
	}, "admin-1")
	if err != nil {
		t.Fatalf("create template: %v", err)
	}

	if _, err := client.Submission.Create().
		SetID("sub-1").
		SetFormTemplateID(tpl.ID).
		SetFormName(tpl.Name).
		SetSubmittedBy("employee-1").
		SetSubmitterName("Jordan Park").
		SetFormData(domain.FormData{"reason": "x"}).
		SetAssignedApprovers([]domain.Approver{{ID: "approver-1", Name: "A"}}).
		SetStatus("PENDING_APPROVAL").
		Save(context.Background()); err != nil {
		t.Fatalf("seed submission: %v", err)
	}

	server := NewServer(ServerDeps{
		EntClient: client,
		Templates: templates,
		Renderer:  render.NewRenderer(render.OrgIdentity{Name: "Acme"}),
		Pools:     pools,
	})

	router := gin.New()
	router.GET("/submissions/:submission_id/document", authAs("employee-1", middleware.RoleEmployee), server.GetSubmissionDocument)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/submissions/sub-1/document", nil))

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusConflict, w.Body.String())
	}
	var body Error
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Code != apperrors.CodeDocumentNotApproved {
		t.Errorf("code = %q, want %s", body.Code, apperrors.CodeDocumentNotApproved)
	}
}

func TestGetSubmissionDocument_RendersApprovedSubmission(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "document_render")

	pools, err := worker.NewPools(context.Background(), worker.DefaultPoolConfig())
	if err != nil {
		t.Fatalf("create pools: %v", err)
	}
	t.Cleanup(pools.Shutdown)

	templates := service.NewTemplateService(client, "FG-REV")
	tpl, err := templates.Create(context.Background(), service.TemplateInput{
		Name:   "Leave Request",
		Fields: []domain.FormField{{ID: "reason", Label: "Reason", Type: domain.FieldText}},
	}, "admin-1")
	if err != nil {
		t.Fatalf("create template: %v", err)
	}

	if _, err := client.Submission.Create().
		SetID("sub-1").
		SetFormTemplateID(tpl.ID).
		SetFormName(tpl.Name).
		SetSubmittedBy("employee-1").
		SetSubmitterName("Jordan Park").
		SetFormData(domain.FormData{"reason": "family matter"}).
		SetAssignedApprovers([]domain.Approver{{ID: "approver-1", Name: "A"}}).
		SetStatus("APPROVED").
		Save(context.Background()); err != nil {
		t.Fatalf("seed submission: %v", err)
	}
	if _, err := client.ApprovalRecord.Create().
		SetID("rec-1").
		SetSubmissionID("sub-1").
		SetAction("APPROVED").
		SetActorID("approver-1").
		SetActorName("Approver One").
		Save(context.Background()); err != nil {
		t.Fatalf("seed record: %v", err)
	}

	server := NewServer(ServerDeps{
		EntClient: client,
		Templates: templates,
		Renderer:  render.NewRenderer(render.OrgIdentity{Name: "Acme"}),
		Pools:     pools,
	})

	router := gin.New()
	router.GET("/submissions/:submission_id/document", authAs("employee-1", middleware.RoleEmployee), server.GetSubmissionDocument)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/submissions/sub-1/document", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Error("response body is not a PDF")
	}
}
