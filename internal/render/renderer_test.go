package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"formgate.io/formgate/internal/domain"
	apperrors "formgate.io/formgate/internal/pkg/errors"
)

var testOrg = OrgIdentity{
	Name:    "Acme Manufacturing Co., Ltd.",
	Address: "12 Industrial Park Road, Springfield",
	Contact: "Tel: 555-0100 | office@acme.example",
}

func approvedFixture() (*domain.Submission, *domain.FormTemplate) {
	submitted := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	approved := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)

	tpl := &domain.FormTemplate{
		ID:   "tpl-1",
		Name: "Leave Request",
		Fields: []domain.FormField{
			{ID: "reason", Label: "Reason", Type: domain.FieldText, Required: true},
			{ID: "urgent", Label: "Urgent", Type: domain.FieldCheckbox},
			{ID: "details", Label: "Details", Type: domain.FieldTextarea},
		},
		Approvers: []domain.Approver{
			{ID: "sup-1", Name: "Sam Lee"},
			{ID: "hr-1", Name: "Dana Cruz"},
		},
		Notes:          "Submit at least three days in advance.",
		RevisionNumber: "FG-REV/ 01 Jan 2026",
	}

	sub := &domain.Submission{
		ID:                  "sub-1",
		FormTemplateID:      tpl.ID,
		FormName:            tpl.Name,
		SubmittedBy:         "emp-1",
		SubmitterName:       "Jordan Park",
		SubmitterPosition:   "Technician",
		SubmitterDepartment: "Maintenance",
		FormData: domain.FormData{
			"reason":  "Family matter",
			"urgent":  true,
			"details": "Out of office Monday through Wednesday.",
		},
		AssignedApprovers: tpl.Approvers,
		Status:            domain.StatusApproved,
		Timeline: []domain.ApprovalRecord{
			{Action: domain.ActionSubmitted, ActorID: "emp-1", ActorName: "Jordan Park", Timestamp: submitted},
			{Action: domain.ActionApproved, ActorID: "sup-1", ActorName: "Sam Lee", ActorPosition: "Supervisor", Timestamp: approved.Add(-time.Hour)},
			{Action: domain.ActionApproved, ActorID: "hr-1", ActorName: "Dana Cruz", ActorPosition: "HR Officer", Timestamp: approved},
		},
		SubmittedAt: &submitted,
		ApprovedAt:  &approved,
	}
	return sub, tpl
}

func TestRender_RequiresApprovedStatus(t *testing.T) {
	t.Parallel()

	r := NewRenderer(testOrg)
	for _, status := range []domain.Status{domain.StatusDraft, domain.StatusPendingApproval, domain.StatusRejected} {
		sub, tpl := approvedFixture()
		sub.Status = status

		_, err := r.Render(sub, tpl)
		if err == nil {
			t.Fatalf("Render() with status %s succeeded, want error", status)
		}
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) || appErr.Code != apperrors.CodeDocumentNotApproved {
			t.Fatalf("Render() with status %s error = %v, want code %s", status, err, apperrors.CodeDocumentNotApproved)
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	r := NewRenderer(testOrg)
	sub, tpl := approvedFixture()

	first, err := r.Render(sub, tpl)
	if err != nil {
		t.Fatalf("first Render() error = %v", err)
	}
	second, err := r.Render(sub, tpl)
	if err != nil {
		t.Fatalf("second Render() error = %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("repeated renders of the same submission differ")
	}

	// Object and resource ordering must not depend on renderer instance
	// state either; a fresh renderer yields the same bytes.
	third, err := NewRenderer(testOrg).Render(sub, tpl)
	if err != nil {
		t.Fatalf("fresh renderer Render() error = %v", err)
	}
	if !bytes.Equal(first, third) {
		t.Fatal("render output differs across renderer instances")
	}
	if !bytes.HasPrefix(first, []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF header: %q", first[:minInt(8, len(first))])
	}
}

func TestRender_ContentPlacement(t *testing.T) {
	t.Parallel()

	r := NewRenderer(testOrg)
	r.SetCompression(false)
	sub, tpl := approvedFixture()

	out, err := r.Render(sub, tpl)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{
		testOrg.Name,
		"Leave Request",
		"Jordan Park",
		"Reason",
		"Family matter",
		"Out of office Monday through Wednesday.",
		"Notes",
		"Submit at least three days in advance.",
		"Supervisor's Approval",
		"HR Approval",
		"Sam Lee",
		"Dana Cruz",
		"FG-REV/ 01 Jan 2026",
		"02 Mar 2026",
		"04 Mar 2026",
	} {
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("rendered document does not contain %q", want)
		}
	}
}

func TestRender_FollowsTemplateFieldOrder(t *testing.T) {
	t.Parallel()

	r := NewRenderer(testOrg)
	r.SetCompression(false)
	sub, tpl := approvedFixture()
	// Values keyed in a different order than the template's field list.
	sub.FormData = domain.FormData{
		"details": "Second in the document.",
		"reason":  "First in the document.",
	}

	out, err := r.Render(sub, tpl)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	first := bytes.Index(out, []byte("First in the document."))
	second := bytes.Index(out, []byte("Second in the document."))
	if first < 0 || second < 0 {
		t.Fatalf("field values missing from output: first=%d second=%d", first, second)
	}
	if first > second {
		t.Error("field values rendered out of template order")
	}
}

func TestRender_LongTextareaPaginates(t *testing.T) {
	t.Parallel()

	r := NewRenderer(testOrg)
	r.SetCompression(false)
	sub, tpl := approvedFixture()
	sub.FormData["details"] = strings.Repeat("Line of incident detail text. ", 500)

	out, err := r.Render(sub, tpl)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !bytes.Contains(out, []byte("Page 2 of")) {
		t.Error("long textarea did not push content onto a second page")
	}
	// The wrapped value continues on later pages without repeating its label.
	if got := bytes.Count(out, []byte("(Details)")); got != 1 {
		t.Errorf("label Details rendered %d times, want once", got)
	}
	// The header repeats on every page.
	if got := bytes.Count(out, []byte(testOrg.Name)); got < 2 {
		t.Errorf("org header appeared %d times, want one per page", got)
	}
}

func TestRender_MissingSignatureFallsBackToName(t *testing.T) {
	t.Parallel()

	r := NewRenderer(testOrg)
	r.SetCompression(false)
	sub, tpl := approvedFixture()
	sub.Signature = nil

	out, err := r.Render(sub, tpl)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	// The submitter's name appears twice in the block: once as the italic
	// stand-in signature and once on the line below the rule.
	if got := bytes.Count(out, []byte("(Jordan Park)")); got < 2 {
		t.Errorf("fallback name rendered %d times, want at least 2", got)
	}
}

func TestRender_NilInputs(t *testing.T) {
	t.Parallel()

	r := NewRenderer(testOrg)
	sub, tpl := approvedFixture()

	if _, err := r.Render(nil, tpl); err == nil {
		t.Error("Render(nil submission) succeeded, want error")
	}
	if _, err := r.Render(sub, nil); err == nil {
		t.Error("Render(nil template) succeeded, want error")
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
