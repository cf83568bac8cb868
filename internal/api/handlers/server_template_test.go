package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"formgate.io/formgate/internal/api/middleware"
	apperrors "formgate.io/formgate/internal/pkg/errors"
	"formgate.io/formgate/internal/service"
	"formgate.io/formgate/internal/testutil"
)

func newTemplateTestRouter(t *testing.T, prefix string) *gin.Engine {
	t.Helper()

	client := testutil.OpenEntPostgres(t, prefix)
	server := NewServer(ServerDeps{
		EntClient: client,
		Templates: service.NewTemplateService(client, "FG-REV"),
	})

	router := gin.New()
	admin := router.Group("/admin", authAs("admin-1", middleware.RoleAdmin))
	admin.GET("/templates", server.ListTemplates)
	admin.POST("/templates", server.CreateTemplate)
	admin.PUT("/templates/:template_id", server.UpdateTemplate)
	admin.DELETE("/templates/:template_id", server.DeleteTemplate)
	router.GET("/templates/:template_id", authAs("employee-1", middleware.RoleEmployee), server.GetTemplate)
	return router
}

const validTemplateBody = `{
	"name": "Leave Request",
	"category": "hr",
	"fields": [
		{"id": "reason", "label": "Reason", "type": "text", "required": true},
		{"id": "urgent", "label": "Urgent", "type": "checkbox"}
	],
	"approvers": [{"id": "approver-1", "name": "Approver One"}]
}`

func TestTemplateCRUD(t *testing.T) {
	t.Parallel()

	router := newTemplateTestRouter(t, "template_crud")

	// Create.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/templates", strings.NewReader(validTemplateBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d (body %s)", w.Code, w.Body.String())
	}

	var created Template
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if created.ID == "" || !strings.HasPrefix(created.RevisionNumber, "FG-REV/") {
		t.Fatalf("created = %+v, want id and revision tag", created)
	}

	// Read back as a non-admin user.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/templates/"+created.ID, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d (body %s)", w.Code, w.Body.String())
	}

	// Update keeps the revision tag.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/admin/templates/"+created.ID, strings.NewReader(validTemplateBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d (body %s)", w.Code, w.Body.String())
	}
	var updated Template
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if updated.RevisionNumber != created.RevisionNumber {
		t.Errorf("revision changed on update: %q -> %q", created.RevisionNumber, updated.RevisionNumber)
	}

	// Delete, then the template is gone.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/templates/"+created.ID, nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d (body %s)", w.Code, w.Body.String())
	}
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/templates/"+created.ID, nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestCreateTemplate_RejectsInvalidDefinition(t *testing.T) {
	t.Parallel()

	router := newTemplateTestRouter(t, "template_invalid")

	body := `{"name": "Broken", "fields": [{"id": "", "label": "No ID", "type": "text"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/templates", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusBadRequest, w.Body.String())
	}
	var resp Error
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Code != apperrors.CodeTemplateInvalid || len(resp.FieldErrors) == 0 {
		t.Errorf("error = %+v, want %s with field errors", resp, apperrors.CodeTemplateInvalid)
	}
}
