// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/hexathon/quiz-backend/internal/config"
	"github.com/hexathon/quiz-backend/internal/database/database"
	"github.com/hexathon/quiz-backend/internal/database/migrate"
	"github.com/hexathon/quiz-backend/internal/health"
	hintRouter "github.com/hexathon/quiz-backend/internal/hint/router"
	"github.com/hexathon/quiz-backend/internal/middleware"
	progressRouter "github.com/hexathon/quiz-backend/internal/progress/router"
	questionRouter "github.com/hexathon/quiz-backend/internal/question/router"
	teamRouter "github.com/hexathon/quiz-backend/internal/team/router"
	"github.com/hexathon/quiz-backend/internal/ws"
	"github.com/hexathon/quiz-backend/pkg/logger"
)

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := database.New()
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}
	defer func() { _ = database.Close(db) }()

	if cfg.AutoMigrate {
		if err := migrate.Up(db); err != nil {
			zlog.Fatalw("failed to apply migrations", "error", err)
		}
		zlog.Infow("migrations applied")
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Logger(zlog))
	r.Use(middleware.Recovery(zlog))
	r.Use(middleware.CORS())

	teamRouter.RegisterRoutes(r, db, zlog)
	questionRouter.RegisterRoutes(r, db, zlog)
	progressRouter.RegisterRoutes(r, db, zlog)
	hintRouter.RegisterRoutes(r, db, zlog)
	ws.RegisterRoutes(r, db, cfg.Websocket, zlog)

	r.GET("/health", health.New(db, zlog).Check)

	server := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zlog.Infow("server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Infow("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zlog.Errorw("forced shutdown", "error", err)
	}
	zlog.Infow("server stopped")
}
