// Package router provides question module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hexathon/quiz-backend/internal/question/handler"
	"github.com/hexathon/quiz-backend/internal/question/repository"
	"github.com/hexathon/quiz-backend/internal/question/service"
)

// RegisterRoutes registers question module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.POST("/add-question", h.Add)
	r.GET("/get-questions", h.List)
}
