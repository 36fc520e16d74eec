package middleware

import (
	"net/http"
	"strings"

	"hospital-booking-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates JWT access token from Authorization header
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Extract token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		// Check Bearer prefix
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
			c.Abort()
			return
		}

		token := parts[1]

		// Validate token
		claims, err := utils.ValidateAccessToken(token)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Inject claims into context
		c.Set("accountID", claims.AccountID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireRole checks that the authenticated account has one of the given
// roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions")
		c.Abort()
	}
}

// RequireHospital checks the authenticated account is a hospital
func RequireHospital() gin.HandlerFunc {
	return RequireRole(utils.RoleHospital)
}

// RequirePatient checks the authenticated account is a patient
func RequirePatient() gin.HandlerFunc {
	return RequireRole(utils.RolePatient)
}

// RequireAdmin checks the authenticated account is an admin
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(utils.RoleAdmin)
}
