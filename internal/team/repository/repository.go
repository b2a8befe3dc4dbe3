// Package repository provides the data access layer for the team module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/hexathon/quiz-backend/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create inserts a new team row.
	Create(ctx context.Context, team *model.Team) error

	// CreateUser inserts a new user row belonging to a team.
	CreateUser(ctx context.Context, user *model.User) error

	// GetByName finds a team by team_name.
	GetByName(ctx context.Context, teamName string) (*model.Team, error)

	// GetWithUsers finds a team by team_name with its users preloaded.
	GetWithUsers(ctx context.Context, teamName string) (*model.Team, error)

	// SetLocked sets a single team's locked flag.
	SetLocked(ctx context.Context, teamName string, locked bool) error

	// SetAllLocked sets every team's locked flag.
	SetAllLocked(ctx context.Context, locked bool) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// isDuplicateError checks if err is a unique constraint violation.
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

// Create inserts a new team row.
func (r *repository) Create(ctx context.Context, team *model.Team) error {
	err := r.db.WithContext(ctx).Omit("Users").Create(team).Error
	if err != nil {
		if isDuplicateError(err) {
			return model.ErrTeamExists
		}
		return err
	}
	return nil
}

// CreateUser inserts a new user row belonging to a team.
func (r *repository) CreateUser(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		// EnrollNo is globally unique: a duplicate means the user is already on some team
		if isDuplicateError(err) {
			return model.ErrUserTaken
		}
		return err
	}
	return nil
}

// GetByName finds a team by team_name.
func (r *repository) GetByName(ctx context.Context, teamName string) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Where("team_name = ?", teamName).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// GetWithUsers finds a team by team_name with its users preloaded.
func (r *repository) GetWithUsers(ctx context.Context, teamName string) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Preload("Users").
		Where("team_name = ?", teamName).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// SetLocked sets a single team's locked flag.
func (r *repository) SetLocked(ctx context.Context, teamName string, locked bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.Team{}).
		Where("team_name = ?", teamName).
		Update("locked", locked)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrTeamNotFound
	}
	return nil
}

// SetAllLocked sets every team's locked flag.
func (r *repository) SetAllLocked(ctx context.Context, locked bool) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&model.Team{}).
		Update("locked", locked).Error
}
