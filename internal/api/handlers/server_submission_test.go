package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"formgate.io/formgate/ent"
	entsub "formgate.io/formgate/ent/submission"
	"formgate.io/formgate/internal/api/middleware"
	"formgate.io/formgate/internal/domain"
	"formgate.io/formgate/internal/testutil"
)

func seedSubmissionRow(t *testing.T, client *ent.Client, id, submittedBy string, approvers []domain.Approver, status string) {
	t.Helper()
	_, err := client.Submission.Create().
		SetID(id).
		SetFormTemplateID("tpl-1").
		SetFormName("Leave Request").
		SetSubmittedBy(submittedBy).
		SetSubmitterName("Submitter " + submittedBy).
		SetFormData(domain.FormData{"reason": "x"}).
		SetAssignedApprovers(approvers).
		SetStatus(entsub.Status(status)).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed submission %s: %v", id, err)
	}
}

func TestListSubmissions_VisibilityByRole(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "submissions_visibility")
	server := NewServer(ServerDeps{EntClient: client})

	approvers := []domain.Approver{{ID: "approver-1", Name: "Approver One"}}
	seedSubmissionRow(t, client, "sub-own", "employee-1", nil, "DRAFT")
	seedSubmissionRow(t, client, "sub-assigned", "employee-2", approvers, "PENDING_APPROVAL")
	seedSubmissionRow(t, client, "sub-other", "employee-3", nil, "PENDING_APPROVAL")

	router := gin.New()
	router.GET("/as/:user/submissions", func(c *gin.Context) {
		roles := []string{middleware.RoleEmployee}
		if c.Param("user") == "admin-1" {
			roles = []string{middleware.RoleAdmin}
		}
		authAs(c.Param("user"), roles...)(c)
	}, server.ListSubmissions)

	tests := []struct {
		user    string
		wantIDs map[string]bool
	}{
		{"employee-1", map[string]bool{"sub-own": true}},
		{"approver-1", map[string]bool{"sub-assigned": true}},
		{"admin-1", map[string]bool{"sub-own": true, "sub-assigned": true, "sub-other": true}},
		{"stranger", map[string]bool{}},
	}
	for _, tt := range tests {
		t.Run(tt.user, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/as/"+tt.user+"/submissions", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
			}

			var resp SubmissionList
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(resp.Items) != len(tt.wantIDs) {
				t.Fatalf("items = %d, want %d (%+v)", len(resp.Items), len(tt.wantIDs), resp.Items)
			}
			for _, item := range resp.Items {
				if !tt.wantIDs[item.ID] {
					t.Errorf("unexpected submission %s visible to %s", item.ID, tt.user)
				}
			}
		})
	}
}

func TestGetSubmission_HidesForeignRows(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "submission_get")
	server := NewServer(ServerDeps{EntClient: client})

	seedSubmissionRow(t, client, "sub-1", "employee-1", []domain.Approver{{ID: "approver-1", Name: "A"}}, "PENDING_APPROVAL")

	router := gin.New()
	router.GET("/as/:user/submissions/:submission_id", func(c *gin.Context) {
		authAs(c.Param("user"), middleware.RoleEmployee)(c)
	}, server.GetSubmission)

	tests := []struct {
		name       string
		user       string
		id         string
		wantStatus int
	}{
		{"owner sees own", "employee-1", "sub-1", http.StatusOK},
		{"assigned approver sees it", "approver-1", "sub-1", http.StatusOK},
		{"stranger gets not found", "stranger", "sub-1", http.StatusNotFound},
		{"missing row", "employee-1", "sub-404", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/as/"+tt.user+"/submissions/"+tt.id, nil))
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}
