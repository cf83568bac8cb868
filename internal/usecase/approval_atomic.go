// Package usecase provides application use cases (Clean Architecture).
//
// Every write that moves a submission through its lifecycle runs in a single
// pgx.Tx: row lock, timeline read, pure decision, timeline append, status
// update, and River enqueue commit or roll back together.
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

// SubmissionAtomicWriter executes submission state transitions + River
// enqueue in one pgx transaction. The FOR UPDATE lock on the submission row
// serializes concurrent deciders, so the last approval and a racing rejection
// can never both finalize the same submission.
type SubmissionAtomicWriter struct {
	pool        *pgxpool.Pool
	riverClient *river.Client[pgx.Tx]
	repo        *repository.Submissions
}

// NewSubmissionAtomicWriter creates a new atomic writer.
func NewSubmissionAtomicWriter(pool *pgxpool.Pool, riverClient *river.Client[pgx.Tx]) *SubmissionAtomicWriter {
	return &SubmissionAtomicWriter{
		pool:        pool,
		riverClient: riverClient,
		repo:        repository.NewSubmissions(),
	}
}

// Approve atomically:
// 1) locks the submission row,
// 2) reloads the timeline and evaluates the approval against it,
// 3) appends the APPROVED record,
// 4) writes the recomputed status,
// 5) on completion, inserts the River submission_notify job via InsertTx.
func (w *SubmissionAtomicWriter) Approve(ctx context.Context, submissionID string, actor domain.Actor, signature []byte) (domain.Decision, error) {
	return w.decide(ctx, submissionID, actor, signature, domain.DecideApproval)
}

// Reject atomically records a rejection. A single rejection vetoes the
// submission regardless of accumulated approvals.
func (w *SubmissionAtomicWriter) Reject(ctx context.Context, submissionID string, actor domain.Actor, signature []byte) (domain.Decision, error) {
	return w.decide(ctx, submissionID, actor, signature, domain.DecideRejection)
}

type decideFunc func(status domain.Status, assigned []domain.Approver, timeline []domain.ApprovalRecord, actor domain.Actor, signature []byte, now time.Time) (domain.Decision, error)

func (w *SubmissionAtomicWriter) decide(ctx context.Context, submissionID string, actor domain.Actor, signature []byte, fn decideFunc) (domain.Decision, error) {
	if w.pool == nil || w.riverClient == nil || w.repo == nil {
		return domain.Decision{}, fmt.Errorf("submission atomic writer is not initialized")
	}
	if submissionID == "" || actor.ID == "" {
		return domain.Decision{}, apperrors.BadRequest(apperrors.CodeInvalidRequestField, "submission id and actor are required")
	}

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("begin decision tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	locked, err := w.repo.LockForDecision(ctx, tx, submissionID)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return domain.Decision{}, apperrors.ErrSubmissionNotFoundf(submissionID)
		}
		return domain.Decision{}, err
	}

	timeline, err := w.repo.Timeline(ctx, tx, submissionID)
	if err != nil {
		return domain.Decision{}, err
	}

	decision, err := fn(locked.Status, locked.AssignedApprovers, timeline, actor, signature, time.Now().UTC())
	if err != nil {
		return domain.Decision{}, mapDecisionError(err, submissionID, locked.Status, actor.ID)
	}

	recordID, err := uuid.NewV7()
	if err != nil {
		return domain.Decision{}, fmt.Errorf("generate record id: %w", err)
	}
	decision.Record.ID = recordID.String()
	decision.Record.SubmissionID = submissionID

	if err := w.repo.AppendRecord(ctx, tx, decision.Record); err != nil {
		if errors.Is(err, repository.ErrDuplicateRecord) {
			return domain.Decision{}, apperrors.ErrDuplicateActionf(submissionID, actor.ID)
		}
		return domain.Decision{}, err
	}

	if err := w.repo.SetStatus(ctx, tx, submissionID, decision.NewStatus, decision.Record.Timestamp); err != nil {
		return domain.Decision{}, err
	}

	if decision.Completed {
		args := jobs.SubmissionNotifyArgs{
			SubmissionID: submissionID,
			Trigger:      jobs.TriggerApproved,
		}
		if decision.NewStatus == domain.StatusRejected {
			args.Trigger = jobs.TriggerRejected
			args.RejectedBy = actor.Name
		}
		if _, err := w.riverClient.InsertTx(ctx, tx, args, nil); err != nil {
			return domain.Decision{}, fmt.Errorf("enqueue submission_notify for %s: %w", submissionID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Decision{}, fmt.Errorf("commit decision tx: %w", err)
	}
	return decision, nil
}

// mapDecisionError translates domain sentinels into the structured errors the
// HTTP layer returns. currentStatus rides along on stale-state conflicts so
// clients can refresh without another round trip.
func mapDecisionError(err error, submissionID string, currentStatus domain.Status, actorID string) error {
	switch {
	case errors.Is(err, domain.ErrStaleState):
		return apperrors.ErrStaleStatef(submissionID, string(currentStatus))
	case errors.Is(err, domain.ErrNotAuthorized):
		return apperrors.ErrNotAuthorizedf(submissionID, actorID)
	case errors.Is(err, domain.ErrDuplicateAction):
		return apperrors.ErrDuplicateActionf(submissionID, actorID)
	default:
		return err
	}
}
