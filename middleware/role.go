package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles lets the request through only when the authenticated role is one of roles.
// It must run after JWTAuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this operation"})
			return
		}
		c.Next()
	}
}
