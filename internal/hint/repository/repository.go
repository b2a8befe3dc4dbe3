// Package repository provides the data access layer for the hint module.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/hexathon/quiz-backend/internal/hint/model"
)

// Repository defines the interface for hint data access operations.
type Repository interface {
	// Create appends a new hint.
	Create(ctx context.Context, hint *model.Hint) error

	// List returns all hints in creation order.
	List(ctx context.Context) ([]model.Hint, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new hint repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create appends a new hint.
func (r *repository) Create(ctx context.Context, hint *model.Hint) error {
	return r.db.WithContext(ctx).Create(hint).Error
}

// List returns all hints in creation order.
func (r *repository) List(ctx context.Context) ([]model.Hint, error) {
	var hints []model.Hint
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&hints).Error
	if err != nil {
		return nil, err
	}

	if hints == nil {
		hints = []model.Hint{}
	}
	return hints, nil
}
