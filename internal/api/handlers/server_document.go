package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"formgate.io/formgate/ent"
	entrecord "formgate.io/formgate/ent/approvalrecord"
	"formgate.io/formgate/internal/api/middleware"
	"formgate.io/formgate/internal/pkg/logger"
)

type renderResult struct {
	pdf []byte
	err error
}

// GetSubmissionDocument handles GET /submissions/{submission_id}/document.
// The signed PDF exists only for APPROVED submissions and is produced on
// demand; identical submissions render to identical bytes.
func (s *Server) GetSubmissionDocument(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	submissionID := c.Param("submission_id")

	row, err := s.client.Submission.Get(ctx, submissionID)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, Error{Code: "SUBMISSION_NOT_FOUND"})
			return
		}
		logger.Error("failed to get submission", zap.Error(err), zap.String("submission_id", submissionID))
		c.JSON(http.StatusInternalServerError, Error{Code: "INTERNAL_ERROR"})
		return
	}
	if !s.canViewSubmission(c, row, userID) {
		c.JSON(http.StatusNotFound, Error{Code: "SUBMISSION_NOT_FOUND"})
		return
	}

	tpl, err := s.templates.Get(ctx, row.FormTemplateID)
	if err != nil {
		respondError(c, err, "GET_DOCUMENT_FAILED")
		return
	}

	records, err := s.client.ApprovalRecord.Query().
		Where(entrecord.SubmissionIDEQ(submissionID)).
		Order(ent.Asc(entrecord.FieldID)).
		All(ctx)
	if err != nil {
		logger.Error("failed to load timeline", zap.Error(err), zap.String("submission_id", submissionID))
		c.JSON(http.StatusInternalServerError, Error{Code: "INTERNAL_ERROR"})
		return
	}

	sub := submissionRowToDomain(row, records)

	// Rendering is CPU-bound and runs on the dedicated render pool so a
	// burst of downloads cannot starve the general pool.
	resultCh := make(chan renderResult, 1)
	err = s.pools.Render.Submit(ctx, func(context.Context) {
		pdf, renderErr := s.renderer.Render(sub, tpl)
		resultCh <- renderResult{pdf: pdf, err: renderErr}
	})
	if err != nil {
		logger.Error("failed to schedule render", zap.Error(err), zap.String("submission_id", submissionID))
		c.JSON(http.StatusServiceUnavailable, Error{Code: "RENDER_UNAVAILABLE"})
		return
	}

	var result renderResult
	select {
	case result = <-resultCh:
	case <-ctx.Done():
		return
	}
	if result.err != nil {
		respondError(c, result.err, "GET_DOCUMENT_FAILED")
		return
	}

	if s.audit != nil {
		if err := s.audit.LogDocumentDownload(ctx, submissionID, userID); err != nil {
			logger.Warn("audit log write failed",
				zap.Error(err),
				zap.String("submission_id", submissionID),
			)
		}
	}

	filename := fmt.Sprintf("%s-%s.pdf", sub.FormName, submissionID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", result.pdf)
}
