package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"

	"formgate.io/formgate/internal/domain"
	"formgate.io/formgate/internal/jobs"
	apperrors "formgate.io/formgate/internal/pkg/errors"
	"formgate.io/formgate/internal/repository"
)

// CreateSubmissionInput carries everything the submitter provides. The
// template snapshot fields are filled in here, not by the caller.
type CreateSubmissionInput struct {
	Submitter   domain.Actor
	Email       string
	Signature   []byte
	FormData    domain.FormData
	Attachments []domain.Attachment

	// Draft stores the submission without starting the approval flow.
	Draft bool
}

// SubmissionWriter persists new submissions and the draft → pending
// transition atomically with their timeline records and notification enqueue.
type SubmissionWriter struct {
	pool        *pgxpool.Pool
	riverClient *river.Client[pgx.Tx]
	repo        *repository.Submissions
}

// NewSubmissionWriter creates a new submission writer.
func NewSubmissionWriter(pool *pgxpool.Pool, riverClient *river.Client[pgx.Tx]) *SubmissionWriter {
	return &SubmissionWriter{
		pool:        pool,
		riverClient: riverClient,
		repo:        repository.NewSubmissions(),
	}
}

// Create inserts a submission built from tpl and in. For non-drafts it also
// appends the SUBMITTED timeline record and enqueues the approver fanout in
// the same transaction; a failed enqueue rolls the submission back.
//
// The caller validates in against tpl before calling: by the time the row is
// written the approver snapshot is known to be non-empty for non-drafts.
func (w *SubmissionWriter) Create(ctx context.Context, tpl *domain.FormTemplate, in CreateSubmissionInput) (*domain.Submission, error) {
	if w.pool == nil || w.riverClient == nil || w.repo == nil {
		return nil, fmt.Errorf("submission writer is not initialized")
	}
	if tpl == nil || in.Submitter.ID == "" {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequestField, "template and submitter are required")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate submission id: %w", err)
	}

	now := time.Now().UTC()
	sub := &domain.Submission{
		ID:             id.String(),
		FormTemplateID: tpl.ID,
		FormName:       tpl.Name,
		FormCategory:   tpl.Category,

		SubmittedBy:         in.Submitter.ID,
		SubmitterName:       in.Submitter.Name,
		SubmitterPosition:   in.Submitter.Position,
		SubmitterDepartment: in.Submitter.Department,
		SubmitterEmail:      in.Email,

		Signature:   in.Signature,
		FormData:    in.FormData,
		Attachments: in.Attachments,

		// Frozen at this moment. Later template edits never alter it.
		AssignedApprovers: append([]domain.Approver(nil), tpl.Approvers...),

		Status: domain.StatusDraft,
	}
	if !in.Draft {
		sub.Status = domain.StatusPendingApproval
		sub.SubmittedAt = &now
	}

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create submission tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := w.repo.Insert(ctx, tx, *sub); err != nil {
		return nil, err
	}

	if !in.Draft {
		if err := w.appendSubmittedAndEnqueue(ctx, tx, sub.ID, in.Submitter, now); err != nil {
			return nil, err
		}
		sub.Timeline = []domain.ApprovalRecord{{
			SubmissionID: sub.ID,
			Action:       domain.ActionSubmitted,
			ActorID:      in.Submitter.ID,
			ActorName:    in.Submitter.Name,
			Timestamp:    now,
		}}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit create submission tx: %w", err)
	}
	return sub, nil
}

// SubmitDraft moves a draft into the approval flow. Ownership and draft
// status are checked under the row lock; the SUBMITTED record and the fanout
// enqueue commit with the status flip. The approver snapshot stays the one
// captured when the draft row was created; the template is not re-read, so a
// draft remains submittable even after its template is edited or deleted.
func (w *SubmissionWriter) SubmitDraft(ctx context.Context, submissionID string, submitter domain.Actor) error {
	if w.pool == nil || w.riverClient == nil || w.repo == nil {
		return fmt.Errorf("submission writer is not initialized")
	}
	if submissionID == "" || submitter.ID == "" {
		return apperrors.BadRequest(apperrors.CodeInvalidRequestField, "submission id and submitter are required")
	}

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin submit draft tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	locked, err := w.repo.LockForDecision(ctx, tx, submissionID)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return apperrors.ErrSubmissionNotFoundf(submissionID)
		}
		return err
	}
	if locked.SubmittedBy != submitter.ID {
		return apperrors.ErrNotAuthorizedf(submissionID, submitter.ID)
	}
	if locked.Status != domain.StatusDraft {
		return apperrors.ErrStaleStatef(submissionID, string(locked.Status))
	}

	now := time.Now().UTC()
	if err := w.repo.MarkSubmitted(ctx, tx, submissionID, now); err != nil {
		return err
	}
	if err := w.appendSubmittedAndEnqueue(ctx, tx, submissionID, submitter, now); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit submit draft tx: %w", err)
	}
	return nil
}

func (w *SubmissionWriter) appendSubmittedAndEnqueue(ctx context.Context, tx pgx.Tx, submissionID string, submitter domain.Actor, now time.Time) error {
	recordID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate record id: %w", err)
	}

	if err := w.repo.AppendRecord(ctx, tx, domain.ApprovalRecord{
		ID:              recordID.String(),
		SubmissionID:    submissionID,
		Action:          domain.ActionSubmitted,
		ActorID:         submitter.ID,
		ActorName:       submitter.Name,
		ActorPosition:   submitter.Position,
		ActorDepartment: submitter.Department,
		Timestamp:       now,
	}); err != nil {
		return err
	}

	if _, err := w.riverClient.InsertTx(ctx, tx, jobs.SubmissionNotifyArgs{
		SubmissionID: submissionID,
		Trigger:      jobs.TriggerSubmitted,
	}, nil); err != nil {
		return fmt.Errorf("enqueue submission_notify for %s: %w", submissionID, err)
	}
	return nil
}
