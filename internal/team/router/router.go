// Package router provides team module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hexathon/quiz-backend/internal/team/handler"
	"github.com/hexathon/quiz-backend/internal/team/repository"
	"github.com/hexathon/quiz-backend/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	r.POST("/register-team", h.Register)
	r.POST("/login-team", h.Login)
	r.POST("/toggle-team-lock", h.ToggleLock)
	r.POST("/team-locked", h.LockStatus)
	r.POST("/lock-all-teams", h.LockAll)
	r.POST("/unlock-all-teams", h.UnlockAll)
}
