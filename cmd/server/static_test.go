package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupStaticFiles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "static"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>lightbnb</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "static", "app.js"), []byte("console.log('app')"), 0o644))

	router := gin.New()
	setupStaticFiles(router, dir+string(filepath.Separator))

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantBody string
	}{
		{name: "index", path: "/", wantCode: http.StatusOK, wantBody: "lightbnb"},
		{name: "asset", path: "/static/app.js", wantCode: http.StatusOK, wantBody: "console.log"},
		{name: "client route falls back to index", path: "/properties/new", wantCode: http.StatusOK, wantBody: "lightbnb"},
		{name: "unknown api route", path: "/api/v1/nope", wantCode: http.StatusNotFound, wantBody: "API endpoint not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
