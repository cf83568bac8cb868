package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"formgate.io/formgate/internal/domain"
	apperrors "formgate.io/formgate/internal/pkg/errors"
	"formgate.io/formgate/internal/repository"
)

// SubmissionDeleter removes draft submissions. Anything past draft is part of
// the approval record and can never be deleted through the API.
type SubmissionDeleter struct {
	pool *pgxpool.Pool
	repo *repository.Submissions
}

// NewSubmissionDeleter creates a new submission deleter.
func NewSubmissionDeleter(pool *pgxpool.Pool) *SubmissionDeleter {
	return &SubmissionDeleter{
		pool: pool,
		repo: repository.NewSubmissions(),
	}
}

// DeleteDraft deletes the submission if it is still a draft owned by actor.
// Ownership and status are checked under the row lock so a concurrent submit
// cannot race the delete.
func (d *SubmissionDeleter) DeleteDraft(ctx context.Context, submissionID string, actor domain.Actor) error {
	if d.pool == nil || d.repo == nil {
		return fmt.Errorf("submission deleter is not initialized")
	}
	if submissionID == "" || actor.ID == "" {
		return apperrors.BadRequest(apperrors.CodeInvalidRequestField, "submission id and actor are required")
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete draft tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	locked, err := d.repo.LockForDecision(ctx, tx, submissionID)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return apperrors.ErrSubmissionNotFoundf(submissionID)
		}
		return err
	}
	if locked.SubmittedBy != actor.ID {
		return apperrors.ErrNotAuthorizedf(submissionID, actor.ID)
	}
	if locked.Status != domain.StatusDraft {
		return (&apperrors.AppError{
			Code:       apperrors.CodeDraftOnlyDelete,
			Message:    "only draft submissions can be deleted",
			HTTPStatus: http.StatusConflict,
		}).WithParams(map[string]interface{}{
			"submission_id": submissionID,
			"status":        string(locked.Status),
		})
	}

	if err := d.repo.DeleteDraft(ctx, tx, submissionID, actor.ID); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete draft tx: %w", err)
	}
	return nil
}
