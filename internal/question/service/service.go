// Package service provides business logic for the question module.
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hexathon/quiz-backend/internal/question/model"
	"github.com/hexathon/quiz-backend/internal/question/repository"
)

// Service defines the interface for question business logic operations.
type Service interface {
	// Add creates a new question with a generated id.
	Add(ctx context.Context, req *model.AddQuestionRequest) (*model.Question, error)

	// List returns all questions without their answers.
	List(ctx context.Context) ([]model.QuestionView, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new question service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// Add creates a new question with a generated id.
func (s *service) Add(ctx context.Context, req *model.AddQuestionRequest) (*model.Question, error) {
	if strings.TrimSpace(req.QuestionText) == "" || strings.TrimSpace(req.Answer) == "" {
		return nil, model.ErrInvalidQuestion
	}

	question := &model.Question{
		QuestionID:          uuid.NewString(),
		QuestionText:        req.QuestionText,
		QuestionDescription: req.QuestionDescription,
		Answer:              req.Answer,
	}

	if err := s.repo.Create(ctx, question); err != nil {
		return nil, err
	}

	s.logger.Infow("question added", "question_id", question.QuestionID)
	return question, nil
}

// List returns all questions without their answers.
func (s *service) List(ctx context.Context) ([]model.QuestionView, error) {
	return s.repo.List(ctx)
}
