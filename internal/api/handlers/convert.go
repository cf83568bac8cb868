package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"formgate.io/formgate/ent"
	"formgate.io/formgate/internal/api/middleware"
	"formgate.io/formgate/internal/domain"
	apperrors "formgate.io/formgate/internal/pkg/errors"
	"formgate.io/formgate/internal/pkg/logger"
)

// respondError maps service errors onto the wire: AppErrors keep their code,
// params and status; anything else becomes a logged 500 with fallbackCode.
func respondError(c *gin.Context, err error, fallbackCode string) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, Error{
			Code:        appErr.Code,
			Message:     appErr.Message,
			Params:      appErr.Params,
			FieldErrors: appErr.FieldErrors,
		})
		return
	}

	logger.Error("request failed",
		zap.Error(err),
		zap.String("fallback_code", fallbackCode),
		zap.String("path", c.FullPath()),
	)
	c.JSON(http.StatusInternalServerError, Error{Code: fallbackCode})
}

// defaultPagination normalizes page/perPage query values (0 = not specified).
func defaultPagination(page, perPage int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage
}

func queryInt(c *gin.Context, name string) int {
	v, _ := strconv.Atoi(c.Query(name))
	return v
}

// timeOrZero returns the value or zero time for nillable ent fields.
func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// actorInfo pairs the domain actor with profile bits that live outside it.
type actorInfo struct {
	actor domain.Actor
	email string
}

// loadActor resolves the authenticated user's current profile. Decision and
// submission records denormalize these values, so they come from the user
// row, not from token claims that may be hours old.
func (s *Server) loadActor(c *gin.Context) (actorInfo, error) {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		return actorInfo{}, apperrors.ErrUnauthorized
	}

	user, err := s.client.User.Get(c.Request.Context(), userID)
	if err != nil {
		return actorInfo{}, err
	}
	return actorInfo{
		actor: domain.Actor{
			ID:         user.ID,
			Name:       user.Name,
			Position:   user.Position,
			Department: user.Department,
		},
		email: user.Email,
	}, nil
}

// ---- Domain → API ----

func submissionToDetail(sub *domain.Submission) SubmissionDetail {
	detail := SubmissionDetail{
		SubmissionSummary: SubmissionSummary{
			ID:            sub.ID,
			FormName:      sub.FormName,
			FormCategory:  sub.FormCategory,
			SubmittedBy:   sub.SubmittedBy,
			SubmitterName: sub.SubmitterName,
			Status:        string(sub.Status),
			SubmittedAt:   timeOrZero(sub.SubmittedAt),
			CreatedAt:     sub.CreatedAt,
		},
		FormTemplateID:    sub.FormTemplateID,
		FormData:          sub.FormData,
		AssignedApprovers: sub.AssignedApprovers,
		Timeline:          recordsToAPI(sub.Timeline),
		ApprovedAt:        timeOrZero(sub.ApprovedAt),
		RejectedAt:        timeOrZero(sub.RejectedAt),
	}
	for _, a := range sub.Attachments {
		detail.AttachmentNames = append(detail.AttachmentNames, a.Name)
	}
	return detail
}

func recordsToAPI(timeline []domain.ApprovalRecord) []ApprovalRecordInfo {
	out := make([]ApprovalRecordInfo, 0, len(timeline))
	for _, r := range timeline {
		out = append(out, ApprovalRecordInfo{
			ID:              r.ID,
			Action:          string(r.Action),
			ActorID:         r.ActorID,
			ActorName:       r.ActorName,
			ActorPosition:   r.ActorPosition,
			ActorDepartment: r.ActorDepartment,
			Timestamp:       r.Timestamp,
		})
	}
	return out
}

// ---- Ent → API / domain ----

func submissionRowToSummary(row *ent.Submission) SubmissionSummary {
	return SubmissionSummary{
		ID:            row.ID,
		FormName:      row.FormName,
		FormCategory:  row.FormCategory,
		SubmittedBy:   row.SubmittedBy,
		SubmitterName: row.SubmitterName,
		Status:        string(row.Status),
		SubmittedAt:   timeOrZero(row.SubmittedAt),
		CreatedAt:     row.CreatedAt,
	}
}

func submissionRowToDetail(row *ent.Submission, records []*ent.ApprovalRecord) SubmissionDetail {
	return submissionToDetail(submissionRowToDomain(row, records))
}

// submissionRowToDomain reassembles the domain view of a stored submission,
// timeline included.
func submissionRowToDomain(row *ent.Submission, records []*ent.ApprovalRecord) *domain.Submission {
	timeline := make([]domain.ApprovalRecord, 0, len(records))
	for _, r := range records {
		timeline = append(timeline, domain.ApprovalRecord{
			ID:              r.ID,
			SubmissionID:    r.SubmissionID,
			Action:          domain.Action(r.Action),
			ActorID:         r.ActorID,
			ActorName:       r.ActorName,
			ActorPosition:   r.ActorPosition,
			ActorDepartment: r.ActorDepartment,
			Signature:       r.Signature,
			Timestamp:       r.CreatedAt,
		})
	}

	return &domain.Submission{
		ID:                  row.ID,
		FormTemplateID:      row.FormTemplateID,
		FormName:            row.FormName,
		FormCategory:        row.FormCategory,
		SubmittedBy:         row.SubmittedBy,
		SubmitterName:       row.SubmitterName,
		SubmitterPosition:   row.SubmitterPosition,
		SubmitterDepartment: row.SubmitterDepartment,
		SubmitterEmail:      row.SubmitterEmail,
		Signature:           row.Signature,
		FormData:            row.FormData,
		Attachments:         row.Attachments,
		AssignedApprovers:   row.AssignedApprovers,
		Status:              domain.Status(row.Status),
		Timeline:            timeline,
		SubmittedAt:         row.SubmittedAt,
		ApprovedAt:          row.ApprovedAt,
		RejectedAt:          row.RejectedAt,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}
