package handler

import (
	"errors"
	"net/http"

	"lightbnb/internal/logging"
	"lightbnb/internal/repository"

	"github.com/gin-gonic/gin"
)

// respondError logs a failed call and writes a 500 with the error message
func respondError(c *gin.Context, message string, err error) {
	event := logging.Error().Err(err).Str("path", c.FullPath())
	var dbErr *repository.DatabaseError
	if errors.As(err, &dbErr) {
		event = event.Str("op", dbErr.Op)
	}
	event.Msg(message)

	c.JSON(http.StatusInternalServerError, gin.H{"error": message + ": " + err.Error()})
}
