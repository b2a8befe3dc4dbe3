// Package handler provides HTTP handlers for hint endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hexathon/quiz-backend/internal/hint/service"
)

// Handler handles HTTP requests for hint endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new hint handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /get-hints request.
func (h *Handler) List(c *gin.Context) {
	hints, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing hints", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"code": "INTERNAL_ERROR", "message": "internal server error"},
		})
		return
	}

	c.JSON(http.StatusOK, hints)
}
