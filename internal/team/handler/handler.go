// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hexathon/quiz-backend/internal/team/model"
	"github.com/hexathon/quiz-backend/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register handles POST /register-team request.
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	team, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrTeamExists) {
			errorResponse(c, "TEAM_EXISTS", "Team name already exists", http.StatusBadRequest)
			return
		}
		if errors.Is(err, model.ErrUserTaken) {
			errorResponse(c, "USER_TAKEN", "User in another team", http.StatusBadRequest)
			return
		}
		if errors.Is(err, model.ErrInvalidTeamName) {
			errorResponse(c, "INVALID_REQUEST", "team_name is required", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error registering team", "team_name", req.TeamName, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"team": team,
	})
}

// Login handles POST /login-team request.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			errorResponse(c, "UNAUTHORIZED", "Invalid team name or password", http.StatusUnauthorized)
			return
		}
		h.logger.Errorw("error logging in team", "team_name", req.TeamName, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ToggleLock handles POST /toggle-team-lock request.
func (h *Handler) ToggleLock(c *gin.Context) {
	var req model.TeamNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "team_name is required", http.StatusBadRequest)
		return
	}

	locked, err := h.service.ToggleLock(c.Request.Context(), req.TeamName)
	if err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			notFoundResponse(c, "Team not found")
			return
		}
		h.logger.Errorw("error toggling team lock", "team_name", req.TeamName, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	state := "unlocked"
	if locked {
		state = "locked"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Team %s has been %s.", req.TeamName, state),
	})
}

// LockStatus handles POST /team-locked request.
func (h *Handler) LockStatus(c *gin.Context) {
	var req model.TeamNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "team_name is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.LockStatus(c.Request.Context(), req.TeamName)
	if err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			notFoundResponse(c, "Team not found")
			return
		}
		h.logger.Errorw("error reading team lock", "team_name", req.TeamName, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// LockAll handles POST /lock-all-teams request.
func (h *Handler) LockAll(c *gin.Context) {
	if err := h.service.SetAllLocks(c.Request.Context(), true); err != nil {
		h.logger.Errorw("error locking all teams", "error", err)
		errorResponse(c, "INTERNAL_ERROR", err.Error(), http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All teams locked successfully."})
}

// UnlockAll handles POST /unlock-all-teams request.
func (h *Handler) UnlockAll(c *gin.Context) {
	if err := h.service.SetAllLocks(c.Request.Context(), false); err != nil {
		h.logger.Errorw("error unlocking all teams", "error", err)
		errorResponse(c, "INTERNAL_ERROR", err.Error(), http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All teams unlocked successfully."})
}
