package main

import (
	"net/http"
	"path/filepath"
	"strings"

	"lightbnb/internal/logging"

	"github.com/gin-gonic/gin"
)

// setupStaticFiles serves the web client from dir, falling back to index.html
func setupStaticFiles(router *gin.Engine, dir string) {
	logging.Info().Str("dir", dir).Msg("Serving frontend assets from local filesystem")

	index := filepath.Join(dir, "index.html")
	router.Static("/static", filepath.Join(dir, "static"))
	router.StaticFile("/", index)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}
		c.File(index)
	})
}
