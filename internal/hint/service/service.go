// Package service provides business logic for the hint module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/hexathon/quiz-backend/internal/hint/model"
	"github.com/hexathon/quiz-backend/internal/hint/repository"
)

// Service defines the interface for hint business logic operations.
type Service interface {
	// Create persists a new hint; the text must be non-empty after trimming.
	Create(ctx context.Context, hintText string) (*model.Hint, error)

	// List returns all hints in creation order.
	List(ctx context.Context) ([]model.Hint, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new hint service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// Create persists a new hint. Validation trims for the emptiness check only;
// the stored text keeps its original whitespace.
func (s *service) Create(ctx context.Context, hintText string) (*model.Hint, error) {
	if strings.TrimSpace(hintText) == "" {
		return nil, model.ErrEmptyHint
	}

	hint := &model.Hint{HintText: hintText}
	if err := s.repo.Create(ctx, hint); err != nil {
		return nil, err
	}

	s.logger.Infow("hint saved", "hint_id", hint.ID)
	return hint, nil
}

// List returns all hints in creation order.
func (s *service) List(ctx context.Context) ([]model.Hint, error) {
	return s.repo.List(ctx)
}
