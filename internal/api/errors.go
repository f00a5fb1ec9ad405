package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/healthtrack/backend/internal/planner"
)

const errInvalidBody = "invalid request body"

// respondError maps service and planner errors onto HTTP responses.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	if errors.Is(err, planner.ErrInvalidInput) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": planner.InvalidInputMessage})
		return
	}

	log.Error("Request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err))
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBody})
}
