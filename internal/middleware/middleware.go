package middleware

import (
	"net/http"

	"github.com/felicityfest/fest-api/internal/auth"
	"github.com/felicityfest/fest-api/internal/models"
	"github.com/gin-gonic/gin"
)

// TokenHeader is the request header carrying the session token. The token is
// passed raw, without a "Bearer " prefix.
const TokenHeader = "token"

// Context keys set by TokenAuth for downstream handlers
const (
	ContextUserID = "userID"
	ContextRole   = "userRole"
	ContextClaims = "claims"
)

// TokenAuth validates the session token and attaches the decoded claims to
// the request context. It is purely a validity gate: role and identity
// requirements are enforced by RequireRole and RequireUser per route.
//
// A missing token is a 403 (no credential presented at all); a present but
// invalid or expired token is a 401.
func TokenAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(TokenHeader)
		if tokenString == "" {
			respondWithAuthError(c, http.StatusForbidden, models.ErrMissingCredential,
				"Missing token header")
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			respondWithAuthError(c, http.StatusUnauthorized, models.ErrInvalidCredential,
				"Invalid or expired token")
			return
		}

		role, err := auth.ExtractRole(claims)
		if err != nil {
			respondWithAuthError(c, http.StatusUnauthorized, models.ErrInvalidCredential,
				err.Error())
			return
		}
		c.Set(ContextRole, role)

		// User id is optional at this layer; admin tokens do not carry one.
		if uid, err := auth.ExtractUserID(claims); err == nil {
			c.Set(ContextUserID, uid)
		}

		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// respondWithAuthError aborts the request with an envelope error
func respondWithAuthError(c *gin.Context, status int, code, description string) {
	c.JSON(status, models.Fail(code+": "+description))
	c.Abort()
}
