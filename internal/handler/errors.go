package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"gamevault/backend/internal/content"

	"github.com/gin-gonic/gin"
)

// respondError maps the content error kinds to a status and a readable
// reason. Anything else is logged and reported as fallback.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var validation *content.ValidationError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validation.Error(), Field: validation.Field})
	case errors.Is(err, content.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, content.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, content.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger.Error(fallback, "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}
