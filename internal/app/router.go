package app

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"formgate.io/formgate/internal/api/handlers"
	"formgate.io/formgate/internal/api/middleware"
)

// Public routes that do NOT require JWT authentication.
var publicPrefixes = []string{
	"/api/v1/auth/login",
	"/api/v1/health/",
}

// adminPrefixes are routes that require the admin role.
var adminPrefixes = []string{
	"/api/v1/admin/",
}

func newRouter(cfg RouterConfig, server *handlers.Server, jwtCfg middleware.JWTConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(corsConfig(cfg)))
	router.Use(jwtSkipPublic(jwtCfg))
	router.Use(rbacAdminRoutes())

	registerRoutes(router, server)
	return router
}

// RouterConfig carries the HTTP-surface settings the router needs.
type RouterConfig struct {
	AllowedOrigins        []string
	AllowCredentials      bool
	UnsafeAllowAllOrigins bool
}

func corsConfig(cfg RouterConfig) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: cfg.AllowCredentials,
	}
	if cfg.UnsafeAllowAllOrigins {
		// Wildcard origins and credentials are mutually exclusive in the
		// CORS spec; drop credentials rather than fail at startup.
		c.AllowAllOrigins = true
		c.AllowCredentials = false
		return c
	}
	// A stray "*" in the allowlist silently disables origin checks, so it is
	// ignored unless the unsafe flag is set explicitly.
	origins := make([]string, 0, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			continue
		}
		origins = append(origins, origin)
	}
	c.AllowOrigins = origins
	return c
}

func registerRoutes(router *gin.Engine, server *handlers.Server) {
	v1 := router.Group("/api/v1")

	v1.GET("/health/live", server.GetLiveness)
	v1.GET("/health/ready", server.GetReadiness)

	v1.POST("/auth/login", server.Login)
	v1.GET("/auth/me", server.GetCurrentUser)
	v1.POST("/auth/change-password", server.ChangePassword)

	v1.GET("/templates", server.ListTemplates)
	v1.GET("/templates/:template_id", server.GetTemplate)

	admin := v1.Group("/admin")
	admin.GET("/templates", server.ListTemplates)
	admin.POST("/templates", server.CreateTemplate)
	admin.PUT("/templates/:template_id", server.UpdateTemplate)
	admin.DELETE("/templates/:template_id", server.DeleteTemplate)

	v1.POST("/submissions", server.CreateSubmission)
	v1.GET("/submissions", server.ListSubmissions)
	v1.GET("/submissions/:submission_id", server.GetSubmission)
	v1.DELETE("/submissions/:submission_id", server.DeleteSubmission)
	v1.POST("/submissions/:submission_id/submit", server.SubmitDraft)
	v1.POST("/submissions/:submission_id/approve", server.ApproveSubmission)
	v1.POST("/submissions/:submission_id/reject", server.RejectSubmission)
	v1.GET("/submissions/:submission_id/document", server.GetSubmissionDocument)

	v1.GET("/notifications", server.ListNotifications)
	v1.GET("/notifications/unread-count", server.GetUnreadCount)
	v1.POST("/notifications/:notification_id/read", server.MarkNotificationRead)
	v1.POST("/notifications/read-all", server.MarkAllNotificationsRead)
}

// jwtSkipPublic returns middleware that applies JWT auth only on non-public routes.
func jwtSkipPublic(jwtCfg middleware.JWTConfig) gin.HandlerFunc {
	jwtMw := middleware.JWTAuth(jwtCfg)
	return func(c *gin.Context) {
		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}
		jwtMw(c)
	}
}

// rbacAdminRoutes returns middleware enforcing the admin role on admin endpoints.
func rbacAdminRoutes() gin.HandlerFunc {
	adminMw := middleware.RequireRole(middleware.RoleAdmin)
	return func(c *gin.Context) {
		for _, prefix := range adminPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				adminMw(c)
				return
			}
		}
		c.Next()
	}
}
