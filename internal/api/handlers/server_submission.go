package handlers

import (
	"net/http"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"formgate.io/formgate/ent"
	entrecord "formgate.io/formgate/ent/approvalrecord"
	"formgate.io/formgate/ent/predicate"
	entsub "formgate.io/formgate/ent/submission"
	"formgate.io/formgate/internal/api/middleware"
	"formgate.io/formgate/internal/domain"
	"formgate.io/formgate/internal/pkg/logger"
	"formgate.io/formgate/internal/usecase"
)

// CreateSubmission handles POST /submissions. With draft=true the submission
// is stored without entering the approval flow.
func (s *Server) CreateSubmission(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Error{Code: "INVALID_REQUEST"})
		return
	}

	actor, err := s.loadActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, Error{Code: "UNAUTHORIZED"})
		return
	}

	attachments := make([]domain.Attachment, 0, len(req.Attachments))
	for _, a := range req.Attachments {
		if s.maxAttachmentSize > 0 && int64(len(a.Data)) > s.maxAttachmentSize {
			c.JSON(http.StatusBadRequest, Error{
				Code:    "ATTACHMENT_TOO_LARGE",
				Message: "attachment exceeds the size limit",
				Params:  map[string]interface{}{"name": a.Name, "limit": s.maxAttachmentSize},
			})
			return
		}
		attachments = append(attachments, domain.Attachment{
			Name: a.Name,
			Type: a.Type,
			Data: a.Data,
			Size: int64(len(a.Data)),
		})
	}

	sub, err := s.gateway.Submit(ctx, req.TemplateID, usecase.CreateSubmissionInput{
		Submitter:   actor.actor,
		Email:       actor.email,
		Signature:   req.Signature,
		FormData:    req.FormData,
		Attachments: attachments,
		Draft:       req.Draft,
	})
	if err != nil {
		respondError(c, err, "CREATE_SUBMISSION_FAILED")
		return
	}

	c.JSON(http.StatusCreated, submissionToDetail(sub))
}

// SubmitDraft handles POST /submissions/{submission_id}/submit.
func (s *Server) SubmitDraft(c *gin.Context) {
	actor, err := s.loadActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, Error{Code: "UNAUTHORIZED"})
		return
	}

	if err := s.gateway.SubmitDraft(c.Request.Context(), c.Param("submission_id"), actor.actor); err != nil {
		respondError(c, err, "SUBMIT_FAILED")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSubmissions handles GET /submissions. Non-admin users see their own
// submissions and submissions they are assigned to approve; admins see all.
func (s *Server) ListSubmissions(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, Error{Code: "UNAUTHORIZED"})
		return
	}

	query := s.client.Submission.Query()
	if !middleware.IsAdmin(c) {
		query = query.Where(entsub.Or(
			entsub.SubmittedByEQ(userID),
			assignedApprover(userID),
		))
	}
	if status := c.Query("status"); status != "" {
		query = query.Where(entsub.StatusEQ(entsub.Status(status)))
	}

	page, perPage := defaultPagination(queryInt(c, "page"), queryInt(c, "per_page"))
	offset := (page - 1) * perPage

	total, err := query.Clone().Count(ctx)
	if err != nil {
		logger.Error("failed to count submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Error{Code: "INTERNAL_ERROR"})
		return
	}

	rows, err := query.
		Offset(offset).
		Limit(perPage).
		Order(ent.Desc(entsub.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		logger.Error("failed to list submissions", zap.Error(err), zap.Int("page", page))
		c.JSON(http.StatusInternalServerError, Error{Code: "INTERNAL_ERROR"})
		return
	}

	items := make([]SubmissionSummary, 0, len(rows))
	for _, row := range rows {
		items = append(items, submissionRowToSummary(row))
	}

	totalPages := (total + perPage - 1) / perPage
	c.JSON(http.StatusOK, SubmissionList{
		Items: items,
		Pagination: Pagination{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// GetSubmission handles GET /submissions/{submission_id}.
func (s *Server) GetSubmission(c *gin.Context) {
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
		// Invisible rather than forbidden: existence is not disclosed.
		c.JSON(http.StatusNotFound, Error{Code: "SUBMISSION_NOT_FOUND"})
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

	c.JSON(http.StatusOK, submissionRowToDetail(row, records))
}

// DeleteSubmission handles DELETE /submissions/{submission_id}. Only the
// owner may delete, and only while the submission is still a draft.
func (s *Server) DeleteSubmission(c *gin.Context) {
	actor, err := s.loadActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, Error{Code: "UNAUTHORIZED"})
		return
	}
	submissionID := c.Param("submission_id")

	if err := s.deleter.DeleteDraft(c.Request.Context(), submissionID, actor.actor); err != nil {
		respondError(c, err, "DELETE_SUBMISSION_FAILED")
		return
	}

	if s.audit != nil {
		if err := s.audit.LogSubmissionAction(c.Request.Context(), submissionID, "deleted", actor.actor.ID); err != nil {
			logger.Warn("audit log write failed",
				zap.Error(err),
				zap.String("submission_id", submissionID),
			)
		}
	}
	c.Status(http.StatusNoContent)
}

// canViewSubmission applies the list visibility rule to a single row.
func (s *Server) canViewSubmission(c *gin.Context, row *ent.Submission, userID string) bool {
	if middleware.IsAdmin(c) {
		return true
	}
	if row.SubmittedBy == userID {
		return true
	}
	return domain.IsAssigned(row.AssignedApprovers, userID)
}

// assignedApprover matches rows whose approver snapshot contains the user.
func assignedApprover(userID string) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		s.Where(sqljson.ValueContains(
			entsub.FieldAssignedApprovers,
			[]map[string]string{{"id": userID}},
		))
	})
}
