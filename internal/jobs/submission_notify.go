// Package jobs defines River Queue job types for async processing.
//
// Jobs follow the claim-check pattern: args carry identifiers only, and
// workers re-read authoritative state at execution time.
package jobs

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"formgate.io/formgate/ent"
	"formgate.io/formgate/internal/domain"
	"formgate.io/formgate/internal/notification"
	"formgate.io/formgate/internal/pkg/logger"
)

// QueueNotifications is the dedicated queue for inbox fanout jobs so a
// notification burst cannot starve default-queue maintenance work.
const QueueNotifications = "notifications"

// Trigger values for SubmissionNotifyArgs.
const (
	TriggerSubmitted = "submitted"
	TriggerApproved  = "approved"
	TriggerRejected  = "rejected"
)

// SubmissionNotifyArgs carries the submission id and trigger kind
// (claim-check pattern): recipients and message content are derived from the
// submission row at work time, not at enqueue time.
type SubmissionNotifyArgs struct {
	SubmissionID string `json:"submission_id"`
	Trigger      string `json:"trigger"`

	// RejectedBy names the rejecting approver for the rejected trigger.
	RejectedBy string `json:"rejected_by,omitempty"`
}

// Kind returns the job kind identifier for submission notifications.
func (SubmissionNotifyArgs) Kind() string { return "submission_notify" }

// InsertOpts deduplicates per (submission, trigger): the same fanout is never
// delivered twice even if an enqueue is retried.
func (SubmissionNotifyArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueNotifications,
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByQueue: true,
		},
	}
}

// SubmissionNotifyWorker delivers inbox notifications for submission
// lifecycle events. The job is enqueued via InsertTx in the same transaction
// as the state transition, so a committed transition always has exactly one
// pending fanout and an aborted one has none.
type SubmissionNotifyWorker struct {
	river.WorkerDefaults[SubmissionNotifyArgs]
	entClient *ent.Client
	triggers  *notification.Triggers
}

// NewSubmissionNotifyWorker creates a new SubmissionNotifyWorker.
func NewSubmissionNotifyWorker(entClient *ent.Client, triggers *notification.Triggers) *SubmissionNotifyWorker {
	return &SubmissionNotifyWorker{entClient: entClient, triggers: triggers}
}

// Work loads the submission and fires the matching trigger.
func (w *SubmissionNotifyWorker) Work(ctx context.Context, job *river.Job[SubmissionNotifyArgs]) error {
	if w == nil || w.entClient == nil || w.triggers == nil {
		return fmt.Errorf("submission notify worker is not initialized")
	}

	args := job.Args
	logger.Info("Processing submission notification job",
		zap.String("submission_id", args.SubmissionID),
		zap.String("trigger", args.Trigger),
		zap.Int64("attempt", int64(job.Attempt)),
	)

	row, err := w.entClient.Submission.Get(ctx, args.SubmissionID)
	if err != nil {
		if ent.IsNotFound(err) {
			// The submission was deleted between enqueue and work; nothing
			// to notify about and retrying will not change that.
			return river.JobCancel(fmt.Errorf("submission %s not found", args.SubmissionID))
		}
		return fmt.Errorf("load submission %s: %w", args.SubmissionID, err)
	}

	sub := &domain.Submission{
		ID:                row.ID,
		FormName:          row.FormName,
		SubmittedBy:       row.SubmittedBy,
		SubmitterName:     row.SubmitterName,
		AssignedApprovers: row.AssignedApprovers,
	}

	switch args.Trigger {
	case TriggerSubmitted:
		w.triggers.OnSubmissionSubmitted(ctx, sub)
	case TriggerApproved:
		w.triggers.OnSubmissionApproved(ctx, sub)
	case TriggerRejected:
		w.triggers.OnSubmissionRejected(ctx, sub, args.RejectedBy)
	default:
		return river.JobCancel(fmt.Errorf("unknown notification trigger: %s", args.Trigger))
	}

	return nil
}
