package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"formgate.io/formgate/internal/domain"
	"formgate.io/formgate/internal/pkg/logger"
)

// Triggers encapsulates the three submission notification trigger points:
//  1. SUBMISSION_PENDING — notify every assigned approver when a form is submitted
//  2. SUBMISSION_APPROVED — notify the submitter when the last approval lands
//  3. SUBMISSION_REJECTED — notify the submitter when any approver rejects
//
// The recipients of the pending fanout come from the submission's frozen
// approver snapshot, never from the live template.
type Triggers struct {
	sender Sender
}

// NewTriggers creates a new notification trigger service.
func NewTriggers(sender Sender) *Triggers {
	return &Triggers{sender: sender}
}

// OnSubmissionSubmitted fires when a form is submitted for approval.
// Notifies every approver in the submission's assigned set.
func (t *Triggers) OnSubmissionSubmitted(ctx context.Context, sub *domain.Submission) {
	if len(sub.AssignedApprovers) == 0 {
		logger.Warn("submission has no assigned approvers to notify",
			zap.String("submission_id", sub.ID),
		)
		return
	}

	recipientIDs := make([]string, 0, len(sub.AssignedApprovers))
	for _, a := range sub.AssignedApprovers {
		recipientIDs = append(recipientIDs, a.ID)
	}

	params := Params{
		Type:         TypeSubmissionPending,
		Title:        fmt.Sprintf("%s awaiting your approval", sub.FormName),
		Message:      fmt.Sprintf("%s submitted a %s form", sub.SubmitterName, sub.FormName),
		ResourceType: "submission",
		ResourceID:   sub.ID,
	}

	if err := t.sender.SendToMany(ctx, recipientIDs, params); err != nil {
		logger.Error("failed to send SUBMISSION_PENDING notifications",
			zap.String("submission_id", sub.ID),
			zap.Int("approver_count", len(recipientIDs)),
			zap.Error(err),
		)
	}
}

// OnSubmissionApproved fires when the final assigned approver approves.
// Notifies the submitter that the document is ready for download.
func (t *Triggers) OnSubmissionApproved(ctx context.Context, sub *domain.Submission) {
	params := Params{
		RecipientID:  sub.SubmittedBy,
		Type:         TypeSubmissionApproved,
		Title:        fmt.Sprintf("Your %s form has been approved", sub.FormName),
		Message:      fmt.Sprintf("All approvers signed off on your %s submission. The signed document is ready for download.", sub.FormName),
		ResourceType: "submission",
		ResourceID:   sub.ID,
	}

	if err := t.sender.Send(ctx, params); err != nil {
		logger.Error("failed to send SUBMISSION_APPROVED notification",
			zap.String("submission_id", sub.ID),
			zap.String("submitter", sub.SubmittedBy),
			zap.Error(err),
		)
	}
}

// OnSubmissionRejected fires when any assigned approver rejects.
// Notifies the submitter, naming the rejecting approver.
func (t *Triggers) OnSubmissionRejected(ctx context.Context, sub *domain.Submission, rejectedBy string) {
	msg := fmt.Sprintf("Your %s submission was rejected", sub.FormName)
	if rejectedBy != "" {
		msg = fmt.Sprintf("%s by %s", msg, rejectedBy)
	}

	params := Params{
		RecipientID:  sub.SubmittedBy,
		Type:         TypeSubmissionRejected,
		Title:        fmt.Sprintf("Your %s form has been rejected", sub.FormName),
		Message:      msg,
		ResourceType: "submission",
		ResourceID:   sub.ID,
	}

	if err := t.sender.Send(ctx, params); err != nil {
		logger.Error("failed to send SUBMISSION_REJECTED notification",
			zap.String("submission_id", sub.ID),
			zap.String("submitter", sub.SubmittedBy),
			zap.Error(err),
		)
	}
}
