package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
)

// Platform roles. Approver authorization is deliberately NOT a role: whether a
// user may decide on a submission is determined by that submission's frozen
// assigned-approver snapshot, checked inside the approval transaction.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// RequireRole returns middleware that checks whether the authenticated user
// holds one of the given platform roles. Admins pass every check.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		held, exists := c.Get("roles")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code": "FORBIDDEN", "message": "no roles in context",
			})
			return
		}
		roleList, ok := held.([]string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code": "FORBIDDEN", "message": "invalid roles type",
			})
			return
		}

		if slices.Contains(roleList, RoleAdmin) {
			c.Next()
			return
		}
		for _, r := range roles {
			if slices.Contains(roleList, r) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"code": "FORBIDDEN", "message": "insufficient permissions",
		})
	}
}

// IsAdmin reports whether the current request carries the admin role.
func IsAdmin(c *gin.Context) bool {
	held, _ := c.Get("roles")
	roleList, ok := held.([]string)
	return ok && slices.Contains(roleList, RoleAdmin)
}
