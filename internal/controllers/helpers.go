package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/felicityfest/fest-api/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// paramID parses the :id route parameter, writing a 400 envelope on failure.
func paramID(ctx *gin.Context) (uint, bool) {
	raw, exists := ctx.Params.Get("id")
	if !exists {
		ctx.JSON(http.StatusBadRequest, models.Fail("Missing id"))
		return 0, false
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.Fail("Invalid id format"))
		return 0, false
	}
	return uint(id), true
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func joinMembers(members []string) string {
	trimmed := make([]string, 0, len(members))
	for _, m := range members {
		if m = strings.TrimSpace(m); m != "" {
			trimmed = append(trimmed, m)
		}
	}
	return strings.Join(trimmed, ", ")
}
