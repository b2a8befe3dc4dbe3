// Package handler provides HTTP handlers for question endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hexathon/quiz-backend/internal/question/model"
	"github.com/hexathon/quiz-backend/internal/question/service"
)

// Handler handles HTTP requests for question endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new question handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Add handles POST /add-question request.
func (h *Handler) Add(c *gin.Context) {
	var req model.AddQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	question, err := h.service.Add(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidQuestion) {
			errorResponse(c, "INVALID_REQUEST", "question_text and answer are required", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error adding question", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"question": question,
	})
}

// List handles GET /get-questions request.
func (h *Handler) List(c *gin.Context) {
	questions, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing questions", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, questions)
}
