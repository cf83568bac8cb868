package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"formgate.io/formgate/internal/domain"
	"formgate.io/formgate/internal/pkg/logger"
	"formgate.io/formgate/internal/service"
)

// ListTemplates handles GET /admin/templates and GET /templates.
func (s *Server) ListTemplates(c *gin.Context) {
	templates, err := s.templates.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		logger.Error("failed to list templates", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Error{Code: "INTERNAL_ERROR"})
		return
	}

	items := make([]Template, 0, len(templates))
	for _, tpl := range templates {
		items = append(items, templateToAPI(tpl))
	}
	c.JSON(http.StatusOK, TemplateList{Items: items})
}

// GetTemplate handles GET /templates/{template_id}.
func (s *Server) GetTemplate(c *gin.Context) {
	tpl, err := s.templates.Get(c.Request.Context(), c.Param("template_id"))
	if err != nil {
		respondError(c, err, "GET_TEMPLATE_FAILED")
		return
	}
	c.JSON(http.StatusOK, templateToAPI(tpl))
}

// CreateTemplate handles POST /admin/templates.
func (s *Server) CreateTemplate(c *gin.Context) {
	actor := actorFromCtx(c)

	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Error{Code: "INVALID_REQUEST"})
		return
	}

	tpl, err := s.templates.Create(c.Request.Context(), templateInput(req), actor)
	if err != nil {
		respondError(c, err, "CREATE_TEMPLATE_FAILED")
		return
	}

	s.logTemplateAudit(c, "created", tpl.ID, actor)
	c.JSON(http.StatusCreated, templateToAPI(tpl))
}

// UpdateTemplate handles PUT /admin/templates/{template_id}.
func (s *Server) UpdateTemplate(c *gin.Context) {
	actor := actorFromCtx(c)
	templateID := c.Param("template_id")

	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Error{Code: "INVALID_REQUEST"})
		return
	}

	tpl, err := s.templates.Update(c.Request.Context(), templateID, templateInput(req))
	if err != nil {
		respondError(c, err, "UPDATE_TEMPLATE_FAILED")
		return
	}

	s.logTemplateAudit(c, "updated", templateID, actor)
	c.JSON(http.StatusOK, templateToAPI(tpl))
}

// DeleteTemplate handles DELETE /admin/templates/{template_id}. In-flight
// submissions keep working off their snapshots.
func (s *Server) DeleteTemplate(c *gin.Context) {
	actor := actorFromCtx(c)
	templateID := c.Param("template_id")

	if err := s.templates.Delete(c.Request.Context(), templateID); err != nil {
		respondError(c, err, "DELETE_TEMPLATE_FAILED")
		return
	}

	s.logTemplateAudit(c, "deleted", templateID, actor)
	c.Status(http.StatusNoContent)
}

func (s *Server) logTemplateAudit(c *gin.Context, operation, templateID, actor string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.LogTemplateOperation(c.Request.Context(), operation, templateID, actor); err != nil {
		logger.Warn("audit log write failed",
			zap.Error(err),
			zap.String("operation", operation),
			zap.String("template_id", templateID),
		)
	}
}

func templateInput(req TemplateRequest) service.TemplateInput {
	return service.TemplateInput{
		Name:             req.Name,
		Description:      req.Description,
		Category:         req.Category,
		Fields:           req.Fields,
		Approvers:        req.Approvers,
		Notes:            req.Notes,
		ReferenceDoc:     req.ReferenceDoc,
		ReferenceDocName: req.ReferenceDocName,
		ReferenceDocType: req.ReferenceDocType,
	}
}

func templateToAPI(tpl *domain.FormTemplate) Template {
	return Template{
		ID:               tpl.ID,
		Name:             tpl.Name,
		Description:      tpl.Description,
		Category:         tpl.Category,
		Fields:           tpl.Fields,
		Approvers:        tpl.Approvers,
		Notes:            tpl.Notes,
		RevisionNumber:   tpl.RevisionNumber,
		CreatedBy:        tpl.CreatedBy,
		ReferenceDocName: tpl.ReferenceDocName,
		ReferenceDocType: tpl.ReferenceDocType,
		ReferenceDocSize: tpl.ReferenceDocSize,
		CreatedAt:        tpl.CreatedAt,
		UpdatedAt:        tpl.UpdatedAt,
	}
}
