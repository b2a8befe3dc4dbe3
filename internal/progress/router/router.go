// Package router provides progress module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hexathon/quiz-backend/internal/progress/handler"
	progressRepo "github.com/hexathon/quiz-backend/internal/progress/repository"
	"github.com/hexathon/quiz-backend/internal/progress/service"
	questionRepo "github.com/hexathon/quiz-backend/internal/question/repository"
	teamRepo "github.com/hexathon/quiz-backend/internal/team/repository"
)

// RegisterRoutes registers progress module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	svc := service.New(progressRepo.New(db), teamRepo.New(db), questionRepo.New(db), logger)
	h := handler.New(svc, logger)

	r.POST("/submit-answer", h.Submit)
}
