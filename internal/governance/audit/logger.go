// Package audit implements the audit logging service.
//
// Audit logs are append-only compliance records. Hard-delete is NOT allowed.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"formgate.io/formgate/ent"
	"formgate.io/formgate/internal/pkg/logger"
)

// Logger writes audit records to the database.
type Logger struct {
	client *ent.Client
}

// NewLogger creates a new audit Logger.
func NewLogger(client *ent.Client) *Logger {
	return &Logger{client: client}
}

// LogAction records an auditable action.
func (l *Logger) LogAction(ctx context.Context, action, resourceType, resourceID, actor string, details map[string]interface{}) error {
	_, err := l.client.AuditLog.Create().
		SetID(generateAuditID()).
		SetAction(action).
		SetResourceType(resourceType).
		SetResourceID(resourceID).
		SetActor(actor).
		SetDetails(details).
		Save(ctx)
	if err != nil {
		logger.Error("Failed to write audit log",
			zap.String("action", action),
			zap.String("resource_type", resourceType),
			zap.String("resource_id", resourceID),
			zap.Error(err),
		)
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// LogSubmissionAction records a submission lifecycle action
// (submitted, approved, rejected, deleted).
func (l *Logger) LogSubmissionAction(ctx context.Context, submissionID, action, actor string) error {
	return l.LogAction(ctx, "submission."+action, "submission", submissionID, actor, map[string]interface{}{
		"action": action,
	})
}

// LogTemplateOperation records a form template operation.
func (l *Logger) LogTemplateOperation(ctx context.Context, operation, templateID, actor string) error {
	return l.LogAction(ctx, "template."+operation, "form_template", templateID, actor, nil)
}

// LogDocumentDownload records a signed document download.
func (l *Logger) LogDocumentDownload(ctx context.Context, submissionID, actor string) error {
	return l.LogAction(ctx, "document.download", "submission", submissionID, actor, nil)
}

func generateAuditID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return fmt.Sprintf("audit-%s", id.String())
}
