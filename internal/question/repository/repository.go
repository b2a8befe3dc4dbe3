// Package repository provides the data access layer for the question module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hexathon/quiz-backend/internal/question/model"
)

// Repository defines the interface for question data access operations.
type Repository interface {
	// Create inserts a new question.
	Create(ctx context.Context, question *model.Question) error

	// GetByID finds a question by question_id.
	GetByID(ctx context.Context, questionID string) (*model.Question, error)

	// List returns all questions without their answers.
	List(ctx context.Context) ([]model.QuestionView, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new question repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a new question.
func (r *repository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

// GetByID finds a question by question_id.
func (r *repository) GetByID(ctx context.Context, questionID string) (*model.Question, error) {
	var question model.Question
	err := r.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrQuestionNotFound
		}
		return nil, err
	}
	return &question, nil
}

// List returns all questions without their answers. The answer column is
// never selected, so it cannot leak through this path.
func (r *repository) List(ctx context.Context) ([]model.QuestionView, error) {
	var views []model.QuestionView
	err := r.db.WithContext(ctx).
		Model(&model.Question{}).
		Select("question_id, question_text, question_description").
		Order("created_at ASC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}

	if views == nil {
		return []model.QuestionView{}, nil
	}
	return views, nil
}
