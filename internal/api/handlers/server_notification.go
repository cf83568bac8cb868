package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"formgate.io/formgate/ent"
	"formgate.io/formgate/ent/notification"
	entuser "formgate.io/formgate/ent/user"
	"formgate.io/formgate/internal/api/middleware"
	"formgate.io/formgate/internal/pkg/logger"
)

// ListNotifications handles GET /notifications.
func (s *Server) ListNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, Error{Code: "UNAUTHORIZED"})
		return
	}

	query := s.client.Notification.Query().
		Where(notification.HasUserWith(entuser.IDEQ(userID)))

	if c.Query("unread_only") == "true" {
		query = query.Where(notification.ReadEQ(false))
	}

	page, perPage := defaultPagination(queryInt(c, "page"), queryInt(c, "per_page"))
	offset := (page - 1) * perPage

	total, err := query.Clone().Count(ctx)
	if err != nil {
		logger.Error("failed to count notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Error{Code: "INTERNAL_ERROR"})
		return
	}

	notifications, err := query.
		Offset(offset).
		Limit(perPage).
		Order(ent.Desc(notification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		logger.Error("failed to list notifications", zap.Error(err), zap.Int("page", page))
		c.JSON(http.StatusInternalServerError, Error{Code: "INTERNAL_ERROR"})
		return
	}

	items := make([]NotificationInfo, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, notificationToAPI(n))
	}

	totalPages := (total + perPage - 1) / perPage
	c.JSON(http.StatusOK, NotificationList{
		Items: items,
		Pagination: Pagination{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// GetUnreadCount handles GET /notifications/unread-count.
func (s *Server) GetUnreadCount(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, Error{Code: "UNAUTHORIZED"})
		return
	}

	count, err := s.client.Notification.Query().
		Where(
			notification.HasUserWith(entuser.IDEQ(userID)),
			notification.ReadEQ(false),
		).
		Count(ctx)
	if err != nil {
		logger.Error("failed to count unread notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Error{Code: "INTERNAL_ERROR"})
		return
	}

	c.JSON(http.StatusOK, UnreadCount{Count: count})
}

// MarkNotificationRead handles POST /notifications/{notification_id}/read.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, Error{Code: "UNAUTHORIZED"})
		return
	}
	notificationID := c.Param("notification_id")

	// Verify the notification exists and belongs to the user.
	n, err := s.client.Notification.Query().
		Where(
			notification.IDEQ(notificationID),
			notification.HasUserWith(entuser.IDEQ(userID)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, Error{Code: "NOTIFICATION_NOT_FOUND"})
			return
		}
		logger.Error("failed to get notification", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Error{Code: "INTERNAL_ERROR"})
		return
	}

	if !n.Read {
		now := time.Now()
		if _, err := s.client.Notification.UpdateOneID(notificationID).
			SetRead(true).
			SetReadAt(now).
			Save(ctx); err != nil {
			logger.Error("failed to mark notification read", zap.Error(err))
			c.JSON(http.StatusInternalServerError, Error{Code: "INTERNAL_ERROR"})
			return
		}
	}

	c.Status(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /notifications/read-all.
func (s *Server) MarkAllNotificationsRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, Error{Code: "UNAUTHORIZED"})
		return
	}

	now := time.Now()
	_, err := s.client.Notification.Update().
		Where(
			notification.HasUserWith(entuser.IDEQ(userID)),
			notification.ReadEQ(false),
		).
		SetRead(true).
		SetReadAt(now).
		Save(ctx)
	if err != nil {
		logger.Error("failed to mark all notifications read", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Error{Code: "INTERNAL_ERROR"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ---- Converter ----

func notificationToAPI(n *ent.Notification) NotificationInfo {
	return NotificationInfo{
		ID:           n.ID,
		Type:         n.Type.String(),
		Title:        n.Title,
		Message:      n.Message,
		ResourceType: n.ResourceType,
		ResourceID:   n.ResourceID,
		Read:         n.Read,
		ReadAt:       timeOrZero(n.ReadAt),
		CreatedAt:    n.CreatedAt,
	}
}
