package middleware

import (
	"net/http"

	"github.com/felicityfest/fest-api/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireRole is a middleware that checks if the caller has the required role.
// It must be mounted after TokenAuth.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			c.JSON(http.StatusUnauthorized, models.Fail("User not authenticated"))
			c.Abort()
			return
		}

		userRole, ok := role.(string)
		if !ok {
			c.JSON(http.StatusForbidden, models.Fail("Invalid role format"))
			c.Abort()
			return
		}

		if userRole != requiredRole {
			c.JSON(http.StatusForbidden, models.Fail("Insufficient permissions"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireUser demands a decodable user identity in the token. Admin tokens
// carry no user id, so admin sessions cannot reach user-scoped routes even
// though their tokens pass TokenAuth.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, exists := c.Get(ContextUserID)
		if !exists {
			c.JSON(http.StatusUnauthorized, models.Fail("Token carries no user identity"))
			c.Abort()
			return
		}

		if _, ok := id.(uint); !ok {
			c.JSON(http.StatusUnauthorized, models.Fail("Invalid user identity"))
			c.Abort()
			return
		}

		c.Next()
	}
}
