package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"formgate.io/formgate/internal/api/middleware"
	"formgate.io/formgate/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// authAs simulates the JWT middleware for handler tests.
func authAs(userID string, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("roles", roles)
		c.Request = c.Request.WithContext(
			middleware.SetUserContext(c.Request.Context(), userID, userID, roles),
		)
		c.Next()
	}
}

func TestHashPassword_UsesConfiguredCost(t *testing.T) {
	hash, err := HashPassword("Passw0rd!Example")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost() error = %v", err)
	}

	if cost != passwordHashCost {
		t.Fatalf("bcrypt cost = %d, want %d", cost, passwordHashCost)
	}
}

func TestLogin_IssuesTokenForValidCredentials(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "auth_login")
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if _, err := client.User.Create().
		SetID("user-1").
		SetUsername("alice").
		SetName("Alice Wong").
		SetPasswordHash(hash).
		SetRoles([]string{middleware.RoleEmployee}).
		Save(t.Context()); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	server := NewServer(ServerDeps{
		EntClient: client,
		JWTCfg: middleware.JWTConfig{
			SigningKey: []byte("test-key-123456789012345678901234"),
			Issuer:     "formgate",
			ExpiresIn:  time.Hour,
		},
	})

	router := gin.New()
	router.POST("/auth/login", server.Login)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid credentials", `{"username":"alice","password":"correct-horse"}`, http.StatusOK},
		{"wrong password", `{"username":"alice","password":"wrong"}`, http.StatusUnauthorized},
		{"unknown user", `{"username":"bob","password":"correct-horse"}`, http.StatusUnauthorized},
		{"missing fields", `{"username":"alice"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus == http.StatusOK {
				var resp LoginResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("unmarshal: %v", err)
				}
				if resp.Token == "" {
					t.Error("login response has no token")
				}
			}
		})
	}
}

func TestGetCurrentUser_ReturnsProfile(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "auth_me")
	if _, err := client.User.Create().
		SetID("user-1").
		SetUsername("alice").
		SetName("Alice Wong").
		SetPosition("Engineer").
		SetDepartment("Platform").
		SetRoles([]string{middleware.RoleEmployee}).
		Save(t.Context()); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	server := NewServer(ServerDeps{EntClient: client})
	router := gin.New()
	router.GET("/auth/me", authAs("user-1", middleware.RoleEmployee), server.GetCurrentUser)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
	var info UserInfo
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if info.Name != "Alice Wong" || info.Position != "Engineer" || info.Department != "Platform" {
		t.Errorf("profile = %+v, want denormalized fields present", info)
	}
}
