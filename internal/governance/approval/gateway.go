// Package approval implements the approval workflow gateway.
//
// The gateway orchestrates the submit/approve/reject operations: it loads
// what the decision needs, runs validation, delegates the state transition to
// the atomic writer, and handles the best-effort concerns (audit, logging)
// that must not sit inside the transaction.
package approval

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"formgate.io/formgate/ent"
	"formgate.io/formgate/internal/domain"
	"formgate.io/formgate/internal/governance/audit"
	apperrors "formgate.io/formgate/internal/pkg/errors"
	"formgate.io/formgate/internal/pkg/logger"
	"formgate.io/formgate/internal/service"
	"formgate.io/formgate/internal/usecase"
)

// DecisionWriter defines the atomic write operations for approver decisions.
type DecisionWriter interface {
	Approve(ctx context.Context, submissionID string, actor domain.Actor, signature []byte) (domain.Decision, error)
	Reject(ctx context.Context, submissionID string, actor domain.Actor, signature []byte) (domain.Decision, error)
}

// SubmitWriter defines the atomic write operations for submission intake.
type SubmitWriter interface {
	Create(ctx context.Context, tpl *domain.FormTemplate, in usecase.CreateSubmissionInput) (*domain.Submission, error)
	SubmitDraft(ctx context.Context, submissionID string, submitter domain.Actor) error
}

// Gateway orchestrates submission lifecycle operations.
type Gateway struct {
	client      *ent.Client
	auditLogger *audit.Logger
	templates   *service.TemplateService
	validator   *service.SubmissionValidator
	decisions   DecisionWriter
	submissions SubmitWriter
}

// NewGateway creates a new approval Gateway.
func NewGateway(client *ent.Client, auditLogger *audit.Logger, templates *service.TemplateService, decisions DecisionWriter, submissions SubmitWriter) *Gateway {
	return &Gateway{
		client:      client,
		auditLogger: auditLogger,
		templates:   templates,
		validator:   service.NewSubmissionValidator(),
		decisions:   decisions,
		submissions: submissions,
	}
}

// Submit creates a submission from a template. Non-drafts are validated
// against the template and enter the approval flow immediately; the approver
// snapshot is frozen inside the writer's transaction.
func (g *Gateway) Submit(ctx context.Context, templateID string, in usecase.CreateSubmissionInput) (*domain.Submission, error) {
	if g.submissions == nil || g.templates == nil {
		return nil, fmt.Errorf("submission writer is not configured")
	}

	tpl, err := g.templates.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if !in.Draft {
		if err := g.validator.ValidateSubmit(tpl, in.FormData, in.Signature, tpl.Approvers); err != nil {
			return nil, err
		}
	}

	sub, err := g.submissions.Create(ctx, tpl, in)
	if err != nil {
		return nil, err
	}

	action := "submitted"
	if in.Draft {
		action = "draft_created"
	}
	g.logSubmissionAudit(ctx, sub.ID, action, in.Submitter.ID)

	logger.Info("Submission created",
		zap.String("submission_id", sub.ID),
		zap.String("template_id", templateID),
		zap.String("submitter", in.Submitter.ID),
		zap.String("status", string(sub.Status)),
		zap.Int("assigned_approvers", len(sub.AssignedApprovers)),
	)
	return sub, nil
}

// SubmitDraft validates a stored draft and moves it into the approval flow.
func (g *Gateway) SubmitDraft(ctx context.Context, submissionID string, submitter domain.Actor) error {
	if g.submissions == nil || g.client == nil {
		return fmt.Errorf("submission writer is not configured")
	}

	row, err := g.client.Submission.Get(ctx, submissionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.ErrSubmissionNotFoundf(submissionID)
		}
		return fmt.Errorf("load draft %s: %w", submissionID, err)
	}

	// The originating template may have been edited or deleted since the
	// draft was saved; field checks run against it only if it still exists.
	var tpl *domain.FormTemplate
	if g.templates != nil {
		tpl, err = g.templates.Get(ctx, row.FormTemplateID)
		if err != nil {
			var appErr *apperrors.AppError
			if !errors.As(err, &appErr) || appErr.Code != apperrors.CodeTemplateNotFound {
				return err
			}
			tpl = nil
		}
	}

	if err := g.validator.ValidateSubmit(tpl, row.FormData, row.Signature, row.AssignedApprovers); err != nil {
		return err
	}

	if err := g.submissions.SubmitDraft(ctx, submissionID, submitter); err != nil {
		return err
	}

	g.logSubmissionAudit(ctx, submissionID, "submitted", submitter.ID)

	logger.Info("Draft submitted for approval",
		zap.String("submission_id", submissionID),
		zap.String("submitter", submitter.ID),
	)
	return nil
}

// Approve records an approval by actor. When the last assigned approver
// lands, the returned decision reports completion and the submission is
// APPROVED.
func (g *Gateway) Approve(ctx context.Context, submissionID string, actor domain.Actor, signature []byte) (domain.Decision, error) {
	if g.decisions == nil {
		return domain.Decision{}, fmt.Errorf("decision writer is not configured")
	}

	decision, err := g.decisions.Approve(ctx, submissionID, actor, signature)
	if err != nil {
		return domain.Decision{}, err
	}

	g.logSubmissionAudit(ctx, submissionID, "approved", actor.ID)

	logger.Info("Submission approved",
		zap.String("submission_id", submissionID),
		zap.String("approver", actor.ID),
		zap.Bool("completed", decision.Completed),
		zap.String("status", string(decision.NewStatus)),
	)
	return decision, nil
}

// Reject records a rejection by actor. A single rejection finalizes the
// submission as REJECTED regardless of accumulated approvals.
func (g *Gateway) Reject(ctx context.Context, submissionID string, actor domain.Actor, signature []byte) (domain.Decision, error) {
	if g.decisions == nil {
		return domain.Decision{}, fmt.Errorf("decision writer is not configured")
	}

	decision, err := g.decisions.Reject(ctx, submissionID, actor, signature)
	if err != nil {
		return domain.Decision{}, err
	}

	g.logSubmissionAudit(ctx, submissionID, "rejected", actor.ID)

	logger.Info("Submission rejected",
		zap.String("submission_id", submissionID),
		zap.String("approver", actor.ID),
	)
	return decision, nil
}

// logSubmissionAudit writes an audit row outside the transaction
// (best-effort; failures are logged inside the audit logger).
func (g *Gateway) logSubmissionAudit(ctx context.Context, submissionID, action, actor string) {
	if g.auditLogger == nil {
		return
	}
	_ = g.auditLogger.LogSubmissionAction(ctx, submissionID, action, actor)
}
