package controllers

import (
	"net/http"

	"github.com/felicityfest/fest-api/internal/middleware"
	"github.com/felicityfest/fest-api/internal/models"
	"github.com/felicityfest/fest-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RegistrationController handles HTTP requests related to event registrations
type RegistrationController interface {
	// Register creates a registration from a public submission
	Register(c *gin.Context)
	// GetAllRegistrations retrieves every registration for the admin dashboard
	GetAllRegistrations(c *gin.Context)
	// UpdateStatus changes a registration's status
	UpdateStatus(c *gin.Context)
	// DeleteRegistration deletes a registration by its ID
	DeleteRegistration(c *gin.Context)
	// MyRegistrations lists the calling student's registrations
	MyRegistrations(c *gin.Context)
}

type registrationController struct {
	service     services.RegistrationService
	userService services.UserService
}

// NewRegistrationController creates a new instance of RegistrationController
func NewRegistrationController(service services.RegistrationService, userService services.UserService) *registrationController {
	return &registrationController{service: service, userService: userService}
}

// Register godoc
// @Summary Register for an event
// @Description Create an event registration and return its ticket id
// @Tags registrations
// @Accept json
// @Produce json
// @Param registration body object true "Registration fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Router /api/register [post]
func (rc *registrationController) Register(ctx *gin.Context) {
	var req struct {
		Name      string   `json:"name" binding:"required"`
		CollegeID string   `json:"collegeId"`
		Email     string   `json:"email" binding:"required,email"`
		Phone     string   `json:"phone"`
		Event     string   `json:"event"`
		Interest  string   `json:"interest"`
		TeamName  string   `json:"teamName"`
		Members   []string `json:"members"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.Fail(models.ErrRegistrationData))
		return
	}

	// Older site builds submit the event name under "interest".
	event := req.Event
	if event == "" {
		event = req.Interest
	}
	if event == "" {
		ctx.JSON(http.StatusBadRequest, models.Fail(models.ErrRegistrationData))
		return
	}

	reg := models.Registration{
		Name:      req.Name,
		CollegeID: req.CollegeID,
		Email:     req.Email,
		Phone:     req.Phone,
		Event:     event,
		TeamName:  req.TeamName,
		Members:   joinMembers(req.Members),
	}

	created, err := rc.service.CreateRegistration(reg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.Fail("Failed to create registration"))
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "ticketId": created.ID})
}

// GetAllRegistrations godoc
// @Summary List registrations
// @Description Get all registrations, newest first
// @Tags registrations
// @Produce json
// @Success 200 {array} models.Registration
// @Failure 500 {object} models.Envelope
// @Security TokenAuth
// @Router /api/admin/registrations [get]
func (rc *registrationController) GetAllRegistrations(ctx *gin.Context) {
	regs, err := rc.service.GetAllRegistrations()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.Fail("Failed to retrieve registrations"))
		return
	}
	ctx.JSON(http.StatusOK, regs)
}

// UpdateStatus godoc
// @Summary Update registration status
// @Description Change only a registration's status field
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path int true "Registration ID"
// @Param status body object true "New status"
// @Success 200 {object} models.Envelope
// @Failure 400 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Security TokenAuth
// @Router /api/admin/registrations/{id} [put]
func (rc *registrationController) UpdateStatus(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.Fail(models.ErrBadRequest))
		return
	}

	if err := rc.service.UpdateStatus(id, req.Status); err != nil {
		if isNotFound(err) {
			ctx.JSON(http.StatusNotFound, models.Fail(models.ErrNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.Fail("Failed to update registration"))
		return
	}
	ctx.JSON(http.StatusOK, models.Envelope{Success: true})
}

// DeleteRegistration godoc
// @Summary Delete a registration
// @Tags registrations
// @Produce json
// @Param id path int true "Registration ID"
// @Success 200 {object} models.Envelope
// @Failure 400 {object} models.Envelope
// @Security TokenAuth
// @Router /api/admin/registrations/{id} [delete]
func (rc *registrationController) DeleteRegistration(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	if err := rc.service.DeleteRegistration(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, models.Fail("Failed to delete registration"))
		return
	}
	ctx.JSON(http.StatusOK, models.Envelope{Success: true})
}

// MyRegistrations godoc
// @Summary List the caller's registrations
// @Description Registrations scoped to the authenticated student's email
// @Tags registrations
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.Envelope
// @Security TokenAuth
// @Router /api/my-registrations [get]
func (rc *registrationController) MyRegistrations(ctx *gin.Context) {
	id, exists := ctx.Get(middleware.ContextUserID)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, models.Fail("User not authenticated"))
		return
	}

	userID, ok := id.(uint)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, models.Fail("Invalid user identity"))
		return
	}

	user, err := rc.userService.GetUserByID(userID)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, models.Fail("Unknown user"))
		return
	}

	regs, err := rc.service.GetRegistrationsByEmail(user.Email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.Fail("Failed to retrieve registrations"))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "registrations": regs})
}
