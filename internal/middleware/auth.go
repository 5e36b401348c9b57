package middleware

import (
	"net/http"
	"strings"

	portssvc "github.com/Leonzuka/Projeto-Valex/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// roleKey is the key used to store the authenticated role in the Gin context.
const roleKey = contextKey("role")

// RequireRole creates a Gin middleware handler that validates the bearer
// token and checks its role claim against the allowed roles.
func RequireRole(authSvc portssvc.AuthSvcFacade, allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		role, err := authSvc.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("Token validation failed", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		permitted := false
		for _, r := range allowed {
			if r == role {
				permitted = true
				break
			}
		}
		if !permitted {
			logger.Warn("Role not permitted", "role", role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Set(string(roleKey), role)
		c.Next()
	}
}

// GetRoleFromContext retrieves the authenticated role from the Gin context.
func GetRoleFromContext(c *gin.Context) (string, bool) {
	roleVal, exists := c.Get(string(roleKey))
	if !exists {
		return "", false
	}
	role, ok := roleVal.(string)
	return role, ok
}
