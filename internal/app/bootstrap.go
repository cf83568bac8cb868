// Package app is the composition root: bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"formgate.io/formgate/internal/api/handlers"
	"formgate.io/formgate/internal/app/modules"
	"formgate.io/formgate/internal/config"
	"formgate.io/formgate/internal/infrastructure"
	"formgate.io/formgate/internal/jobs"
	"formgate.io/formgate/internal/pkg/worker"
)

// Application holds composed application dependencies.
type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *infrastructure.DatabaseClients
	Pools   *worker.Pools
	Modules []modules.Module
}

// Bootstrap initializes all dependencies using module-oriented manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	infra, err := modules.NewInfrastructure(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init infrastructure: %w", err)
	}

	formsModule, err := modules.NewFormsModule(infra)
	if err != nil {
		infra.Close()
		return nil, fmt.Errorf("init forms module: %w", err)
	}
	notificationsModule, err := modules.NewNotificationsModule(infra)
	if err != nil {
		infra.Close()
		return nil, fmt.Errorf("init notifications module: %w", err)
	}
	baseModules := []modules.Module{formsModule, notificationsModule}

	workers := river.NewWorkers()
	for _, mod := range baseModules {
		mod.RegisterWorkers(workers)
	}
	if err := infra.InitRiver(workers); err != nil {
		infra.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}
	// Notification retention cleanup: run daily and once on startup to avoid
	// long-lived inbox bloat.
	if infra.RiverClient != nil {
		infra.RiverClient.PeriodicJobs().Add(
			river.NewPeriodicJob(
				river.PeriodicInterval(24*time.Hour),
				func() (river.JobArgs, *river.InsertOpts) {
					return jobs.NotificationCleanupArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		)
	}

	// The approval module needs the River client for transactional enqueue,
	// so it is wired after InitRiver.
	approvalModule, err := modules.NewApprovalModule(infra, formsModule)
	if err != nil {
		infra.Close()
		return nil, fmt.Errorf("init approval module: %w", err)
	}

	allModules := append(baseModules, approvalModule)
	serverDeps := modules.NewServerDeps(cfg, infra, allModules)
	server := handlers.NewServer(serverDeps)

	routerCfg := RouterConfig{
		AllowedOrigins:        cfg.Server.AllowedOrigins,
		AllowCredentials:      cfg.Server.AllowCredentials,
		UnsafeAllowAllOrigins: cfg.Server.UnsafeAllowAllOrigins,
	}

	return &Application{
		Config:  cfg,
		Router:  newRouter(routerCfg, server, serverDeps.JWTCfg),
		DB:      infra.DB,
		Pools:   infra.Pools,
		Modules: allModules,
	}, nil
}
