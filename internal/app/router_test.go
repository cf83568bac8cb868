package app

import (
	"testing"

	"github.com/gin-gonic/gin"

	"formgate.io/formgate/internal/api/handlers"
	"formgate.io/formgate/internal/api/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCORSConfig_StripsWildcardUnlessUnsafeFlagEnabled(t *testing.T) {
	got := corsConfig(RouterConfig{
		AllowedOrigins:   []string{"*", "https://example.com"},
		AllowCredentials: true,
	})
	if got.AllowAllOrigins {
		t.Fatalf("AllowAllOrigins = %v, want false", got.AllowAllOrigins)
	}
	if len(got.AllowOrigins) != 1 || got.AllowOrigins[0] != "https://example.com" {
		t.Fatalf("AllowOrigins = %#v, want []string{\"https://example.com\"}", got.AllowOrigins)
	}
	if !got.AllowCredentials {
		t.Fatalf("AllowCredentials = %v, want true", got.AllowCredentials)
	}
}

func TestCORSConfig_UnsafeAllowAllDisablesCredentials(t *testing.T) {
	got := corsConfig(RouterConfig{
		AllowedOrigins:        []string{"*"},
		AllowCredentials:      true,
		UnsafeAllowAllOrigins: true,
	})
	if !got.AllowAllOrigins {
		t.Fatalf("AllowAllOrigins = %v, want true", got.AllowAllOrigins)
	}
	if got.AllowCredentials {
		t.Fatalf("AllowCredentials = %v, want false", got.AllowCredentials)
	}
	if len(got.AllowOrigins) != 0 {
		t.Fatalf("AllowOrigins = %#v, want empty", got.AllowOrigins)
	}
}

func TestNewRouter_RegistersExpectedRoutes(t *testing.T) {
	router := newRouter(
		RouterConfig{AllowedOrigins: []string{"https://example.com"}},
		handlers.NewServer(handlers.ServerDeps{}),
		middleware.JWTConfig{SigningKey: []byte("test-signing-key")},
	)

	registered := make(map[string]bool)
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	want := []string{
		"POST /api/v1/auth/login",
		"GET /api/v1/auth/me",
		"GET /api/v1/templates",
		"POST /api/v1/admin/templates",
		"DELETE /api/v1/admin/templates/:template_id",
		"POST /api/v1/submissions",
		"POST /api/v1/submissions/:submission_id/submit",
		"POST /api/v1/submissions/:submission_id/approve",
		"POST /api/v1/submissions/:submission_id/reject",
		"GET /api/v1/submissions/:submission_id/document",
		"POST /api/v1/notifications/:notification_id/read",
		"GET /api/v1/health/ready",
	}
	for _, key := range want {
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}
