package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/felicityfest/fest-api/internal/models"
	"github.com/felicityfest/fest-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ImageController handles the public gallery and admin uploads
type ImageController interface {
	GetAllImages(c *gin.Context)
	UploadImage(c *gin.Context)
	UpdateImage(c *gin.Context)
	DeleteImage(c *gin.Context)
}

type imageController struct {
	service   services.ImageService
	uploadDir string
}

// NewImageController creates a new instance of ImageController
func NewImageController(service services.ImageService, uploadDir string) *imageController {
	return &imageController{service: service, uploadDir: uploadDir}
}

// GetAllImages godoc
// @Summary List gallery images
// @Description Get all gallery images, newest first
// @Tags images
// @Produce json
// @Success 200 {array} models.Image
// @Failure 500 {object} models.Envelope
// @Router /api/images [get]
func (ic *imageController) GetAllImages(ctx *gin.Context) {
	images, err := ic.service.GetAllImages()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.Fail("Failed to retrieve images"))
		return
	}
	ctx.JSON(http.StatusOK, images)
}

// UploadImage godoc
// @Summary Upload a gallery image
// @Description Store a multipart file in the content directory and record its metadata
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param title formData string false "Title"
// @Param category formData string false "Category"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.Envelope
// @Failure 500 {object} models.Envelope
// @Security TokenAuth
// @Router /api/admin/images [post]
func (ic *imageController) UploadImage(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.Fail(models.ErrMissingFile))
		return
	}

	if err := os.MkdirAll(ic.uploadDir, 0o755); err != nil {
		ctx.JSON(http.StatusInternalServerError, models.Fail("Failed to prepare upload directory"))
		return
	}

	filename := storedFilename(file.Filename)
	if err := ctx.SaveUploadedFile(file, filepath.Join(ic.uploadDir, filename)); err != nil {
		ctx.JSON(http.StatusInternalServerError, models.Fail("Failed to store file"))
		return
	}

	img := models.Image{
		Filename: filename,
		URL:      "/uploads/" + filename,
		Title:    ctx.PostForm("title"),
		Category: ctx.PostForm("category"),
	}

	created, err := ic.service.CreateImage(img)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.Fail("Failed to save image record"))
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "image": created})
}

// UpdateImage godoc
// @Summary Update image metadata
// @Description Change an image's title and/or category
// @Tags images
// @Accept json
// @Produce json
// @Param id path int true "Image ID"
// @Param metadata body object true "Title and category"
// @Success 200 {object} models.Envelope
// @Failure 400 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Security TokenAuth
// @Router /api/admin/images/{id} [put]
func (ic *imageController) UpdateImage(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	var req struct {
		Title    string `json:"title"`
		Category string `json:"category"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.Fail(models.ErrBadRequest))
		return
	}

	if err := ic.service.UpdateImage(id, req.Title, req.Category); err != nil {
		if isNotFound(err) {
			ctx.JSON(http.StatusNotFound, models.Fail(models.ErrNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.Fail("Failed to update image"))
		return
	}
	ctx.JSON(http.StatusOK, models.Envelope{Success: true})
}

// DeleteImage godoc
// @Summary Delete a gallery image
// @Description Remove the record and its backing file; deleting an unknown id succeeds
// @Tags images
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} models.Envelope
// @Failure 400 {object} models.Envelope
// @Security TokenAuth
// @Router /api/admin/images/{id} [delete]
func (ic *imageController) DeleteImage(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	if err := ic.service.DeleteImage(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, models.Fail("Failed to delete image"))
		return
	}
	ctx.JSON(http.StatusOK, models.Envelope{Success: true})
}

// storedFilename builds a collision-resistant name for an uploaded file:
// millisecond timestamp prefix plus the whitespace-normalized original name.
func storedFilename(original string) string {
	base := filepath.Base(original)
	base = strings.Join(strings.Fields(base), "-")
	if base == "" || base == "." {
		base = "upload"
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)
}
