package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequireRole(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	run := func(roles interface{}, required ...string) (int, bool) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if roles != nil {
			c.Set("roles", roles)
		}

		RequireRole(required...)(c)
		return w.Code, !c.IsAborted()
	}

	t.Run("admin bypasses any required role", func(t *testing.T) {
		t.Parallel()
		status, passed := run([]string{RoleAdmin}, "auditor")
		if status != http.StatusOK || !passed {
			t.Fatalf("status = %d passed = %v, want admin to pass", status, passed)
		}
	})

	t.Run("matching role allowed", func(t *testing.T) {
		t.Parallel()
		status, passed := run([]string{RoleEmployee}, RoleEmployee)
		if status != http.StatusOK || !passed {
			t.Fatalf("status = %d passed = %v, want employee to pass", status, passed)
		}
	})

	t.Run("missing role forbidden", func(t *testing.T) {
		t.Parallel()
		status, passed := run([]string{RoleEmployee}, RoleAdmin)
		if status != http.StatusForbidden || passed {
			t.Fatalf("status = %d passed = %v, want forbidden", status, passed)
		}
	})

	t.Run("no roles in context forbidden", func(t *testing.T) {
		t.Parallel()
		status, passed := run(nil, RoleEmployee)
		if status != http.StatusForbidden || passed {
			t.Fatalf("status = %d passed = %v, want forbidden", status, passed)
		}
	})

	t.Run("wrong roles type forbidden", func(t *testing.T) {
		t.Parallel()
		status, passed := run("admin", RoleEmployee)
		if status != http.StatusForbidden || passed {
			t.Fatalf("status = %d passed = %v, want forbidden", status, passed)
		}
	})
}

func TestIsAdmin(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if IsAdmin(c) {
		t.Fatal("IsAdmin() = true with no roles set")
	}
	c.Set("roles", []string{RoleEmployee})
	if IsAdmin(c) {
		t.Fatal("IsAdmin() = true for employee")
	}
	c.Set("roles", []string{RoleEmployee, RoleAdmin})
	if !IsAdmin(c) {
		t.Fatal("IsAdmin() = false for admin")
	}
}
