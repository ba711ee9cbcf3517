package controllers

import (
	"net/http"

	"github.com/felicityfest/fest-api/internal/models"
	"github.com/felicityfest/fest-api/internal/services"
	"github.com/gin-gonic/gin"
)

// MessageController handles contact-form submissions and the admin inbox
type MessageController interface {
	CreateMessage(c *gin.Context)
	GetAllMessages(c *gin.Context)
	DeleteMessage(c *gin.Context)
}

type messageController struct {
	service services.MessageService
}

// NewMessageController creates a new instance of MessageController
func NewMessageController(service services.MessageService) *messageController {
	return &messageController{service: service}
}

// messageResponse adds a human-readable date alongside the raw timestamp for
// the admin inbox.
type messageResponse struct {
	models.Message
	Date string `json:"date"`
}

// CreateMessage godoc
// @Summary Submit a contact message
// @Tags messages
// @Accept json
// @Produce json
// @Param message body object true "Contact fields"
// @Success 201 {object} models.Envelope
// @Failure 400 {object} models.Envelope
// @Router /api/contact [post]
func (mc *messageController) CreateMessage(ctx *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Message string `json:"message" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.Fail(models.ErrBadRequest))
		return
	}

	msg := models.Message{Name: req.Name, Email: req.Email, Message: req.Message}
	if _, err := mc.service.CreateMessage(msg); err != nil {
		ctx.JSON(http.StatusInternalServerError, models.Fail("Failed to save message"))
		return
	}

	ctx.JSON(http.StatusCreated, models.Envelope{Success: true})
}

// GetAllMessages godoc
// @Summary List contact messages
// @Description Get all messages, newest first, with a formatted date string
// @Tags messages
// @Produce json
// @Success 200 {array} object
// @Failure 500 {object} models.Envelope
// @Security TokenAuth
// @Router /api/admin/messages [get]
func (mc *messageController) GetAllMessages(ctx *gin.Context) {
	msgs, err := mc.service.GetAllMessages()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.Fail("Failed to retrieve messages"))
		return
	}

	out := make([]messageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messageResponse{
			Message: m,
			Date:    m.CreatedAt.Format("Jan 2, 2006 3:04 PM"),
		})
	}
	ctx.JSON(http.StatusOK, out)
}

// DeleteMessage godoc
// @Summary Delete a contact message
// @Tags messages
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} models.Envelope
// @Failure 400 {object} models.Envelope
// @Security TokenAuth
// @Router /api/admin/messages/{id} [delete]
func (mc *messageController) DeleteMessage(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	if err := mc.service.DeleteMessage(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, models.Fail("Failed to delete message"))
		return
	}
	ctx.JSON(http.StatusOK, models.Envelope{Success: true})
}
