// Package repository contains the hand-written pgx queries used inside the
// atomic approval transactions. Ent serves reads and migrations; everything
// that must happen under a row lock goes through this package.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"formgate.io/formgate/internal/domain"
)

var (
	// ErrSubmissionNotFound is returned when no submission row exists for
	// the provided identifier.
	ErrSubmissionNotFound = errors.New("repository: submission not found")

	// ErrDuplicateRecord signals the timeline insert hit the unique
	// (submission_id, actor_id, action) guard.
	ErrDuplicateRecord = errors.New("repository: duplicate approval record")
)

// Submissions bundles the submission and approval_records queries.
type Submissions struct{}

func NewSubmissions() *Submissions {
	return &Submissions{}
}

// LockedSubmission is the slice of a submission row the decision logic needs,
// read under FOR UPDATE.
type LockedSubmission struct {
	ID                string
	Status            domain.Status
	SubmittedBy       string
	AssignedApprovers []domain.Approver
}

// LockForDecision reads the submission row under FOR UPDATE so the approval
// decision, the timeline append, and the status update all observe and
// produce a consistent state. Concurrent deciders on the same submission
// serialize here.
func (r *Submissions) LockForDecision(ctx context.Context, tx pgx.Tx, submissionID string) (LockedSubmission, error) {
	const lockSQL = `
SELECT id, status, submitted_by, assigned_approvers
FROM submissions
WHERE id = $1
FOR UPDATE;
`

	var (
		out       LockedSubmission
		approvers []byte
	)
	if err := tx.QueryRow(ctx, lockSQL, submissionID).Scan(&out.ID, &out.Status, &out.SubmittedBy, &approvers); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return LockedSubmission{}, ErrSubmissionNotFound
		}
		return LockedSubmission{}, fmt.Errorf("repository: lock submission %s: %w", submissionID, err)
	}

	if len(approvers) > 0 {
		if err := json.Unmarshal(approvers, &out.AssignedApprovers); err != nil {
			return LockedSubmission{}, fmt.Errorf("repository: decode assigned approvers for %s: %w", submissionID, err)
		}
	}
	return out, nil
}

// Timeline returns the full approval timeline of a submission in insertion
// order. Record ids are UUIDv7, so id order matches time order even when two
// rows share a created_at.
func (r *Submissions) Timeline(ctx context.Context, tx pgx.Tx, submissionID string) ([]domain.ApprovalRecord, error) {
	const timelineSQL = `
SELECT id, action, actor_id, actor_name, actor_position, actor_department, signature, created_at
FROM approval_records
WHERE submission_id = $1
ORDER BY id;
`

	rows, err := tx.Query(ctx, timelineSQL, submissionID)
	if err != nil {
		return nil, fmt.Errorf("repository: load timeline for %s: %w", submissionID, err)
	}
	defer rows.Close()

	var timeline []domain.ApprovalRecord
	for rows.Next() {
		rec := domain.ApprovalRecord{SubmissionID: submissionID}
		if err := rows.Scan(
			&rec.ID,
			&rec.Action,
			&rec.ActorID,
			&rec.ActorName,
			&rec.ActorPosition,
			&rec.ActorDepartment,
			&rec.Signature,
			&rec.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("repository: scan timeline row: %w", err)
		}
		timeline = append(timeline, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: iterate timeline for %s: %w", submissionID, err)
	}
	return timeline, nil
}

// AppendRecord inserts one timeline row. The unique index on
// (submission_id, actor_id, action) backstops the in-transaction duplicate
// check; a violation surfaces as ErrDuplicateRecord.
func (r *Submissions) AppendRecord(ctx context.Context, tx pgx.Tx, rec domain.ApprovalRecord) error {
	const insertSQL = `
INSERT INTO approval_records
  (id, submission_id, action, actor_id, actor_name, actor_position, actor_department, signature, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`

	_, err := tx.Exec(ctx, insertSQL,
		rec.ID,
		rec.SubmissionID,
		string(rec.Action),
		rec.ActorID,
		rec.ActorName,
		rec.ActorPosition,
		rec.ActorDepartment,
		rec.Signature,
		rec.Timestamp,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateRecord
		}
		return fmt.Errorf("repository: insert approval record for %s: %w", rec.SubmissionID, err)
	}
	return nil
}

// SetStatus writes the recomputed status and the matching terminal timestamp.
// decidedAt lands in approved_at or rejected_at only when the status is the
// corresponding terminal one.
func (r *Submissions) SetStatus(ctx context.Context, tx pgx.Tx, submissionID string, status domain.Status, decidedAt time.Time) error {
	const updateSQL = `
UPDATE submissions
SET status = $2,
    approved_at = CASE WHEN $2 = 'APPROVED' THEN $3 ELSE approved_at END,
    rejected_at = CASE WHEN $2 = 'REJECTED' THEN $3 ELSE rejected_at END,
    updated_at = now()
WHERE id = $1;
`

	tag, err := tx.Exec(ctx, updateSQL, submissionID, string(status), decidedAt)
	if err != nil {
		return fmt.Errorf("repository: set status of %s to %s: %w", submissionID, status, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}

// Insert writes a complete submission row. Used by the submit path, in the
// same transaction that appends the SUBMITTED record and enqueues the fanout
// job.
func (r *Submissions) Insert(ctx context.Context, tx pgx.Tx, s domain.Submission) error {
	formData, err := json.Marshal(s.FormData)
	if err != nil {
		return fmt.Errorf("repository: marshal form data: %w", err)
	}
	approvers, err := json.Marshal(s.AssignedApprovers)
	if err != nil {
		return fmt.Errorf("repository: marshal assigned approvers: %w", err)
	}
	attachments, err := marshalJSONOrNull(s.Attachments)
	if err != nil {
		return fmt.Errorf("repository: marshal attachments: %w", err)
	}

	const insertSQL = `
INSERT INTO submissions
  (id, form_template_id, form_name, form_category,
   submitted_by, submitter_name, submitter_position, submitter_department, submitter_email,
   signature, form_data, attachments, assigned_approvers,
   status, submitted_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now(), now());
`

	if _, err := tx.Exec(ctx, insertSQL,
		s.ID,
		s.FormTemplateID,
		s.FormName,
		s.FormCategory,
		s.SubmittedBy,
		s.SubmitterName,
		s.SubmitterPosition,
		s.SubmitterDepartment,
		s.SubmitterEmail,
		s.Signature,
		formData,
		attachments,
		approvers,
		string(s.Status),
		s.SubmittedAt,
	); err != nil {
		return fmt.Errorf("repository: insert submission %s: %w", s.ID, err)
	}
	return nil
}

// MarkSubmitted flips a locked draft to PENDING_APPROVAL and stamps
// submitted_at. The caller has already verified status and ownership under
// the row lock.
func (r *Submissions) MarkSubmitted(ctx context.Context, tx pgx.Tx, submissionID string, submittedAt time.Time) error {
	const updateSQL = `
UPDATE submissions
SET status = 'PENDING_APPROVAL',
    submitted_at = $2,
    updated_at = now()
WHERE id = $1 AND status = 'DRAFT';
`

	tag, err := tx.Exec(ctx, updateSQL, submissionID, submittedAt)
	if err != nil {
		return fmt.Errorf("repository: mark submission %s submitted: %w", submissionID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}

// DeleteDraft removes a submission only while it is still a draft owned by
// the caller. Returns ErrSubmissionNotFound when no such row matched, which
// callers disambiguate against the current status.
func (r *Submissions) DeleteDraft(ctx context.Context, tx pgx.Tx, submissionID, ownerID string) error {
	const deleteSQL = `
DELETE FROM submissions
WHERE id = $1 AND submitted_by = $2 AND status = 'DRAFT';
`

	tag, err := tx.Exec(ctx, deleteSQL, submissionID, ownerID)
	if err != nil {
		return fmt.Errorf("repository: delete draft %s: %w", submissionID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}

func marshalJSONOrNull(v []domain.Attachment) ([]byte, error) {
	if len(v) == 0 {
		return nil, nil
	}
	return json.Marshal(v)
}
