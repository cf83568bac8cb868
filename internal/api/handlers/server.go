// Package handlers implements the HTTP handlers of the FormGate API.
//
// Handlers bind requests, delegate to the gateway/services, and shape
// responses; workflow rules live below this layer. Route registration is
// done by internal/app's router, not by the handlers themselves.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"formgate.io/formgate/ent"
	"formgate.io/formgate/internal/api/middleware"
	"formgate.io/formgate/internal/governance/approval"
	"formgate.io/formgate/internal/governance/audit"
	"formgate.io/formgate/internal/pkg/worker"
	"formgate.io/formgate/internal/render"
	"formgate.io/formgate/internal/service"
	"formgate.io/formgate/internal/usecase"
)

// Server implements all API handlers.
type Server struct {
	client    *ent.Client
	pool      *pgxpool.Pool
	jwtCfg    middleware.JWTConfig
	audit     *audit.Logger
	templates *service.TemplateService
	gateway   *approval.Gateway
	deleter   *usecase.SubmissionDeleter
	renderer  *render.Renderer
	pools     *worker.Pools

	maxAttachmentSize int64
}

// ServerDeps holds all dependencies for creating a Server. Manual DI, no
// Wire/Dig.
type ServerDeps struct {
	EntClient *ent.Client
	Pool      *pgxpool.Pool
	JWTCfg    middleware.JWTConfig
	Audit     *audit.Logger
	Templates *service.TemplateService
	Gateway   *approval.Gateway
	Deleter   *usecase.SubmissionDeleter
	Renderer  *render.Renderer
	Pools     *worker.Pools

	MaxAttachmentSize int64
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:            deps.EntClient,
		pool:              deps.Pool,
		jwtCfg:            deps.JWTCfg,
		audit:             deps.Audit,
		templates:         deps.Templates,
		gateway:           deps.Gateway,
		deleter:           deps.Deleter,
		renderer:          deps.Renderer,
		pools:             deps.Pools,
		maxAttachmentSize: deps.MaxAttachmentSize,
	}
}

// actorFromCtx extracts the authenticated user ID from the request context.
func actorFromCtx(c *gin.Context) string {
	if uid := c.GetString("user_id"); uid != "" {
		return uid
	}
	return "anonymous"
}
