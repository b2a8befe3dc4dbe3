// Package repository provides the data access layer for the progress module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/hexathon/quiz-backend/internal/progress/model"
)

// Repository defines the interface for team progress data access operations.
type Repository interface {
	// GetByTeamAndQuestion finds the progress record for a (team, question) pair.
	GetByTeamAndQuestion(ctx context.Context, teamName, questionID string) (*model.TeamProgress, error)

	// Create inserts a new progress record. A unique constraint violation on
	// the (team, question) pair is reported as ErrAlreadyCompleted: losing
	// that race means someone else recorded the completion first.
	Create(ctx context.Context, progress *model.TeamProgress) error

	// MarkCompleted transitions an existing record to the completed state.
	MarkCompleted(ctx context.Context, progressID string, solvedAt time.Time) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new progress repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// GetByTeamAndQuestion finds the progress record for a (team, question) pair.
func (r *repository) GetByTeamAndQuestion(ctx context.Context, teamName, questionID string) (*model.TeamProgress, error) {
	var progress model.TeamProgress
	err := r.db.WithContext(ctx).
		Where("team_name = ? AND question_id = ?", teamName, questionID).
		First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrProgressNotFound
		}
		return nil, err
	}
	return &progress, nil
}

// Create inserts a new progress record.
func (r *repository) Create(ctx context.Context, progress *model.TeamProgress) error {
	err := r.db.WithContext(ctx).Create(progress).Error
	if err != nil {
		if isDuplicateError(err) {
			return model.ErrAlreadyCompleted
		}
		return err
	}
	return nil
}

// MarkCompleted transitions an existing record to the completed state.
func (r *repository) MarkCompleted(ctx context.Context, progressID string, solvedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.TeamProgress{}).
		Where("progress_id = ?", progressID).
		Updates(map[string]interface{}{
			"is_completed": true,
			"solved_at":    solvedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrProgressNotFound
	}
	return nil
}
