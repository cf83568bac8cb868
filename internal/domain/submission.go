// Package domain holds the pure core types of the approval workflow.
//
// Nothing here touches the database or the clock on its own: status
// evaluation and transition decisions are pure functions over a submission's
// assigned-approver snapshot and its approval timeline, so the same logic is
// exercised identically by the transactional writer and by tests.
package domain

import (
	"errors"
	"time"
)

// Status is the lifecycle state of a submission.
type Status string

const (
	StatusDraft           Status = "DRAFT"
	StatusPendingApproval Status = "PENDING_APPROVAL"
	StatusApproved        Status = "APPROVED"
	StatusRejected        Status = "REJECTED"
)

// Terminal reports whether no further engine-driven transition is possible.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Action is the kind of an approval timeline entry.
type Action string

const (
	ActionSubmitted Action = "SUBMITTED"
	ActionApproved  Action = "APPROVED"
	ActionRejected  Action = "REJECTED"
)

// Sentinel errors for invalid transitions. The usecase/gateway layers wrap
// these into structured AppErrors; the domain stays dependency-free.
var (
	// ErrStaleState: action attempted on a submission that is not pending
	// approval (already finalized by a concurrent actor, or still a draft).
	ErrStaleState = errors.New("submission is not pending approval")

	// ErrNotAuthorized: actor is not in the assigned-approver snapshot.
	ErrNotAuthorized = errors.New("actor is not an assigned approver")

	// ErrDuplicateAction: the actor already has an APPROVED record.
	ErrDuplicateAction = errors.New("actor has already approved")

	// ErrValidation: a submit-time precondition failed.
	ErrValidation = errors.New("submission validation failed")
)

// Approver identifies a required approver, with profile fields frozen at the
// time the set was captured.
type Approver struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position,omitempty"`
	Department string `json:"department,omitempty"`
}

// Actor is whoever performs an engine operation.
type Actor struct {
	ID         string
	Name       string
	Position   string
	Department string
}

// ApprovalRecord is one append-only entry in a submission's timeline.
type ApprovalRecord struct {
	ID              string    `json:"id"`
	SubmissionID    string    `json:"submission_id"`
	Action          Action    `json:"action"`
	ActorID         string    `json:"actor_id"`
	ActorName       string    `json:"actor_name"`
	ActorPosition   string    `json:"actor_position,omitempty"`
	ActorDepartment string    `json:"actor_department,omitempty"`
	Signature       []byte    `json:"-"`
	Timestamp       time.Time `json:"timestamp"`
}

// FormData maps FormField.id → collected value. Values are bool for checkbox
// fields and string for everything else; intake validates the shape.
type FormData map[string]any

// Attachment is an opaque uploaded file.
type Attachment struct {
	Name string `json:"name"`
	Data []byte `json:"-"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

// Submission is an instance of a filled-out form in flight through the
// approval process.
type Submission struct {
	ID             string
	FormTemplateID string
	FormName       string
	FormCategory   string

	SubmittedBy          string
	SubmitterName        string
	SubmitterPosition    string
	SubmitterDepartment  string
	SubmitterEmail       string

	Signature   []byte
	FormData    FormData
	Attachments []Attachment

	// AssignedApprovers is the frozen approver set captured from the template
	// at submit time. Later template edits never alter it.
	AssignedApprovers []Approver

	Status   Status
	Timeline []ApprovalRecord

	SubmittedAt *time.Time
	ApprovedAt  *time.Time
	RejectedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAssigned reports whether actorID is in the assigned-approver snapshot.
func IsAssigned(assigned []Approver, actorID string) bool {
	for _, a := range assigned {
		if a.ID == actorID {
			return true
		}
	}
	return false
}

// ApprovedBy returns the set of distinct actor IDs with an APPROVED record.
func ApprovedBy(timeline []ApprovalRecord) map[string]struct{} {
	out := make(map[string]struct{})
	for _, r := range timeline {
		if r.Action == ActionApproved {
			out[r.ActorID] = struct{}{}
		}
	}
	return out
}

// ApprovedRecords returns the APPROVED entries in timeline (append) order.
// Rejections are excluded: they veto the submission but never become
// signature blocks in the rendered document.
func ApprovedRecords(timeline []ApprovalRecord) []ApprovalRecord {
	var out []ApprovalRecord
	for _, r := range timeline {
		if r.Action == ActionApproved {
			out = append(out, r)
		}
	}
	return out
}
