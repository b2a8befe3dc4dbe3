package ws

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hexathon/quiz-backend/internal/config"
	hintRepository "github.com/hexathon/quiz-backend/internal/hint/repository"
	hintService "github.com/hexathon/quiz-backend/internal/hint/service"
	teamRepository "github.com/hexathon/quiz-backend/internal/team/repository"
	teamService "github.com/hexathon/quiz-backend/internal/team/service"
)

// RegisterRoutes registers the websocket endpoint and starts its hub.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.WebsocketConfig, logger *zap.SugaredLogger) {
	hints := hintService.New(hintRepository.New(db), logger)
	teams := teamService.New(teamRepository.New(db), db, logger)

	hub := NewHub()
	h := New(hub, hints, teams, cfg, logger)

	r.GET("/ws", h.Serve)
}
