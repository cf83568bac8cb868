package modules

import (
	"strings"

	"formgate.io/formgate/internal/api/handlers"
	"formgate.io/formgate/internal/api/middleware"
	"formgate.io/formgate/internal/config"
)

// NewServerDeps builds base server deps then lets each module contribute explicit wiring.
func NewServerDeps(cfg *config.Config, infra *Infrastructure, mods []Module) handlers.ServerDeps {
	verificationKeys := make([][]byte, 0, len(cfg.Security.JWTVerificationKeys))
	for _, key := range cfg.Security.JWTVerificationKeys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		verificationKeys = append(verificationKeys, []byte(key))
	}

	deps := handlers.ServerDeps{
		EntClient: infra.EntClient,
		Pool:      infra.Pool,
		JWTCfg: middleware.JWTConfig{
			SigningKey:       []byte(cfg.Security.SessionSecret),
			VerificationKeys: verificationKeys,
			Issuer:           "formgate",
			ExpiresIn:        cfg.Session.Lifetime,
		},
		Audit: infra.AuditLogger,
		Pools: infra.Pools,
	}
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		mod.ContributeServerDeps(&deps)
	}
	return deps
}
