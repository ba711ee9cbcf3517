package controllers

import (
	"net/http"
	"time"

	"github.com/felicityfest/fest-api/internal/auth"
	"github.com/felicityfest/fest-api/internal/models"
	"github.com/felicityfest/fest-api/internal/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthController handles admin and student authentication
type AuthController struct {
	userService       services.UserService
	tokens            *auth.TokenService
	adminPasswordHash []byte
	adminTokenTTL     time.Duration
	userTokenTTL      time.Duration
}

func NewAuthController(userService services.UserService, tokens *auth.TokenService,
	adminPasswordHash string, adminTTL, userTTL time.Duration) *AuthController {
	return &AuthController{
		userService:       userService,
		tokens:            tokens,
		adminPasswordHash: []byte(adminPasswordHash),
		adminTokenTTL:     adminTTL,
		userTokenTTL:      userTTL,
	}
}

// AdminLogin godoc
// @Summary Admin login
// @Description Exchange the admin password for a short-lived admin token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body object true "Admin password"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.Envelope
// @Router /api/admin/login [post]
func (ac *AuthController) AdminLogin(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail(models.ErrBadRequest))
		return
	}

	if err := bcrypt.CompareHashAndPassword(ac.adminPasswordHash, []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, models.Fail(models.ErrInvalidLogin))
		return
	}

	token, err := ac.tokens.Issue(auth.AdminClaims(), ac.adminTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Fail("token_generation_failed"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// Signup godoc
// @Summary Student signup
// @Description Create a student account and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param user body object true "Signup fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.Envelope
// @Router /api/auth/signup [post]
func (ac *AuthController) Signup(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		CollegeID string `json:"collegeId"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail(err.Error()))
		return
	}

	user := &models.User{
		Name:      req.Name,
		CollegeID: req.CollegeID,
		Email:     req.Email,
		Password:  req.Password,
		Role:      auth.RoleStudent,
	}

	if err := user.HashPassword(); err != nil {
		c.JSON(http.StatusInternalServerError, models.Fail("password_hashing_failed"))
		return
	}

	if err := ac.userService.CreateUser(user); err != nil {
		if err == services.ErrUserExists {
			c.JSON(http.StatusBadRequest, models.Fail(models.ErrDuplicateEmail))
			return
		}
		c.JSON(http.StatusInternalServerError, models.Fail(models.ErrInternalServer))
		return
	}

	token, err := ac.tokens.Issue(auth.UserClaims(user.ID), ac.userTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Fail("token_generation_failed"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// Login godoc
// @Summary Student login
// @Description Exchange email and password for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body object true "Login fields"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.Envelope
// @Router /api/auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail(err.Error()))
		return
	}

	// Unknown email and wrong password return the same response so the two
	// cases cannot be told apart.
	user, err := ac.userService.GetUserByEmail(req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, models.Fail(models.ErrInvalidLogin))
		return
	}

	token, err := ac.tokens.Issue(auth.UserClaims(user.ID), ac.userTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Fail("token_generation_failed"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    user,
	})
}
