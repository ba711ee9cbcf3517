package pages

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/felicityfest/fest-api/internal/models"
	"github.com/gin-gonic/gin"
)

// routes maps clean URL paths to page assets under the pages directory.
var routes = map[string]string{
	"/":         "index.html",
	"/events":   "events.html",
	"/gallery":  "gallery.html",
	"/register": "register.html",
	"/contact":  "contact.html",
	"/admin":    "admin.html",
}

// Register mounts the static page routes, the uploaded-content directory,
// and the unmatched-route handler. Unknown paths get a 404, never a
// redirect: API callers receive a JSON envelope, browsers the 404 page.
func Register(router *gin.Engine, pagesDir, uploadDir string) {
	for path, file := range routes {
		router.GET(path, servePage(filepath.Join(pagesDir, file)))
	}

	router.Static("/uploads", uploadDir)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, models.Fail(models.ErrNotFound))
			return
		}
		serveNotFound(c, pagesDir)
	})
}

func servePage(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.File(path)
	}
}

func serveNotFound(c *gin.Context, pagesDir string) {
	body, err := os.ReadFile(filepath.Join(pagesDir, "404.html"))
	if err != nil {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}
	c.Data(http.StatusNotFound, "text/html; charset=utf-8", body)
}
