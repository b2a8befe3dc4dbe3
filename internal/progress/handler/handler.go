// Package handler provides the HTTP handler for answer submission.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	progressModel "github.com/hexathon/quiz-backend/internal/progress/model"
	"github.com/hexathon/quiz-backend/internal/progress/service"
	questionModel "github.com/hexathon/quiz-backend/internal/question/model"
	teamModel "github.com/hexathon/quiz-backend/internal/team/model"
)

// Handler handles HTTP requests for answer submission.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new progress handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Submit handles POST /submit-answer request.
func (h *Handler) Submit(c *gin.Context) {
	var req progressModel.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, teamModel.ErrTeamNotFound):
			notFoundResponse(c, "Team not found")
		case errors.Is(err, questionModel.ErrQuestionNotFound):
			notFoundResponse(c, "Question not found.")
		case errors.Is(err, progressModel.ErrAlreadyCompleted):
			errorResponse(c, "ALREADY_COMPLETED",
				"This team has already submitted the correct answer for this question.",
				http.StatusBadRequest)
		case errors.Is(err, progressModel.ErrIncorrectAnswer):
			errorResponse(c, "INCORRECT_ANSWER", "Incorrect answer.", http.StatusBadRequest)
		default:
			h.logger.Errorw("error submitting answer",
				"team_name", req.TeamName, "question_id", req.QuestionID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"message": "Correct answer! Question marked as completed."})
}
