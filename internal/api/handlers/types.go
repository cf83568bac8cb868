package handlers

import (
	"time"

	"formgate.io/formgate/internal/domain"
	apperrors "formgate.io/formgate/internal/pkg/errors"
)

// API request/response shapes. Optional fields use value types with omitzero
// semantics; zero values mean "not provided".

// Error is the uniform error body.
type Error struct {
	Code        string                 `json:"code"`
	Message     string                 `json:"message,omitempty"`
	Params      map[string]interface{} `json:"params,omitempty"`
	FieldErrors []apperrors.FieldError `json:"field_errors,omitempty"`
}

// Pagination describes a page of a list response.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// ---- Auth ----

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token               string    `json:"token"`
	ExpiresAt           time.Time `json:"expires_at"`
	ForcePasswordChange bool      `json:"force_password_change"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type UserInfo struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	Email      string   `json:"email,omitempty"`
	Name       string   `json:"name"`
	Position   string   `json:"position,omitempty"`
	Department string   `json:"department,omitempty"`
	Roles      []string `json:"roles"`
}

// ---- Templates ----

type TemplateRequest struct {
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Fields      []domain.FormField `json:"fields" binding:"required"`
	Approvers   []domain.Approver  `json:"approvers"`
	Notes       string             `json:"notes"`

	// ReferenceDoc is base64 in transit (encoding/json []byte convention).
	ReferenceDoc     []byte `json:"reference_doc,omitempty"`
	ReferenceDocName string `json:"reference_doc_name,omitempty"`
	ReferenceDocType string `json:"reference_doc_type,omitempty"`
}

type Template struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Description      string             `json:"description,omitempty"`
	Category         string             `json:"category,omitempty"`
	Fields           []domain.FormField `json:"fields"`
	Approvers        []domain.Approver  `json:"approvers"`
	Notes            string             `json:"notes,omitempty"`
	RevisionNumber   string             `json:"revision_number"`
	CreatedBy        string             `json:"created_by"`
	ReferenceDocName string             `json:"reference_doc_name,omitempty"`
	ReferenceDocType string             `json:"reference_doc_type,omitempty"`
	ReferenceDocSize int64              `json:"reference_doc_size,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

type TemplateList struct {
	Items []Template `json:"items"`
}

// ---- Submissions ----

type CreateSubmissionRequest struct {
	TemplateID  string              `json:"template_id" binding:"required"`
	FormData    domain.FormData     `json:"form_data"`
	Signature   []byte              `json:"signature,omitempty"`
	Attachments []AttachmentUpload  `json:"attachments,omitempty"`
	Draft       bool                `json:"draft"`
}

type AttachmentUpload struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type"`
	Data []byte `json:"data" binding:"required"`
}

type ApprovalRecordInfo struct {
	ID              string    `json:"id"`
	Action          string    `json:"action"`
	ActorID         string    `json:"actor_id"`
	ActorName       string    `json:"actor_name"`
	ActorPosition   string    `json:"actor_position,omitempty"`
	ActorDepartment string    `json:"actor_department,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

type SubmissionSummary struct {
	ID            string    `json:"id"`
	FormName      string    `json:"form_name"`
	FormCategory  string    `json:"form_category,omitempty"`
	SubmittedBy   string    `json:"submitted_by"`
	SubmitterName string    `json:"submitter_name"`
	Status        string    `json:"status"`
	SubmittedAt   time.Time `json:"submitted_at,omitzero"`
	CreatedAt     time.Time `json:"created_at"`
}

type SubmissionDetail struct {
	SubmissionSummary

	FormTemplateID    string               `json:"form_template_id"`
	FormData          domain.FormData      `json:"form_data"`
	AssignedApprovers []domain.Approver    `json:"assigned_approvers"`
	Timeline          []ApprovalRecordInfo `json:"timeline"`
	AttachmentNames   []string             `json:"attachment_names,omitempty"`
	ApprovedAt        time.Time            `json:"approved_at,omitzero"`
	RejectedAt        time.Time            `json:"rejected_at,omitzero"`
}

type SubmissionList struct {
	Items      []SubmissionSummary `json:"items"`
	Pagination Pagination          `json:"pagination"`
}

type DecisionRequest struct {
	// Signature is the approver's signature image, base64 in transit.
	Signature []byte `json:"signature,omitempty"`
}

type DecisionResponse struct {
	Status    string `json:"status"`
	Completed bool   `json:"completed"`
}

// ---- Notifications ----

type NotificationInfo struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	ResourceType string    `json:"resource_type,omitempty"`
	ResourceID   string    `json:"resource_id,omitempty"`
	Read         bool      `json:"read"`
	ReadAt       time.Time `json:"read_at,omitzero"`
	CreatedAt    time.Time `json:"created_at"`
}

type NotificationList struct {
	Items      []NotificationInfo `json:"items"`
	Pagination Pagination         `json:"pagination"`
}

type UnreadCount struct {
	Count int `json:"count"`
}

// ---- Health ----

type Health struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
