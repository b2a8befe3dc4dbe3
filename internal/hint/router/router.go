// Package router provides hint module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hexathon/quiz-backend/internal/hint/handler"
	"github.com/hexathon/quiz-backend/internal/hint/repository"
	"github.com/hexathon/quiz-backend/internal/hint/service"
)

// RegisterRoutes registers hint module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/get-hints", h.List)
}
