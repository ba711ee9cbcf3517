package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/felicityfest/fest-api/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(tokens *auth.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	admin := router.Group("/admin")
	admin.Use(TokenAuth(tokens), RequireRole(auth.RoleAdmin))
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	user := router.Group("/me")
	user.Use(TokenAuth(tokens), RequireUser())
	user.GET("/ping", func(c *gin.Context) {
		id, _ := c.Get(ContextUserID)
		c.JSON(http.StatusOK, gin.H{"uid": id})
	})

	return router
}

func doGet(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(TokenHeader, token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTokenAuthMissingHeader(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	router := setupRouter(tokens)

	w := doGet(router, "/admin/ping", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTokenAuthInvalidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	router := setupRouter(tokens)

	w := doGet(router, "/admin/ping", "garbage.token.value")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenAuthExpiredToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	router := setupRouter(tokens)

	expired, err := tokens.Issue(auth.AdminClaims(), -time.Minute)
	require.NoError(t, err)

	w := doGet(router, "/admin/ping", expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRouteAcceptsAdminToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	router := setupRouter(tokens)

	token, err := tokens.Issue(auth.AdminClaims(), time.Hour)
	require.NoError(t, err)

	w := doGet(router, "/admin/ping", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRouteRejectsStudentToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	router := setupRouter(tokens)

	token, err := tokens.Issue(auth.UserClaims(5), time.Hour)
	require.NoError(t, err)

	w := doGet(router, "/admin/ping", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserRouteRejectsAdminToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	router := setupRouter(tokens)

	// Admin tokens have no uid claim, so the user-scoped route must reject
	// them even though the token itself is valid.
	token, err := tokens.Issue(auth.AdminClaims(), time.Hour)
	require.NoError(t, err)

	w := doGet(router, "/me/ping", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserRouteAcceptsStudentToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	router := setupRouter(tokens)

	token, err := tokens.Issue(auth.UserClaims(5), time.Hour)
	require.NoError(t, err)

	w := doGet(router, "/me/ping", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"uid":5`)
}

func TestRequestIDAssigned(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestIDHonorsIncoming(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "upstream-id-1", w.Header().Get(RequestIDHeader))
}
