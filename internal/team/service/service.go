// Package service provides business logic for the team module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hexathon/quiz-backend/internal/team/model"
	"github.com/hexathon/quiz-backend/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// Register creates a team together with its users.
	Register(ctx context.Context, req *model.RegisterTeamRequest) (*model.Team, error)

	// Login checks team credentials by plaintext equality.
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)

	// ToggleLock flips a team's locked flag and returns the new state.
	ToggleLock(ctx context.Context, teamName string) (bool, error)

	// LockStatus reports a team's current locked flag.
	LockStatus(ctx context.Context, teamName string) (*model.LockStatusResponse, error)

	// SetLock sets a single team's locked flag.
	SetLock(ctx context.Context, teamName string, locked bool) error

	// SetAllLocks sets every team's locked flag.
	SetAllLocks(ctx context.Context, locked bool) error
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

// Register creates the team and all of its users in one transaction, so a
// rejected user (already on another team) rolls back the team row as well.
func (s *service) Register(ctx context.Context, req *model.RegisterTeamRequest) (*model.Team, error) {
	if req.TeamName == "" {
		return nil, model.ErrInvalidTeamName
	}

	var result *model.Team
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		team := &model.Team{
			TeamName:     req.TeamName,
			TeamPassword: req.TeamPassword,
		}
		if err := txRepo.Create(ctx, team); err != nil {
			return err
		}

		for _, u := range req.Users {
			user := &model.User{
				EnrollNo: u.EnrollNo,
				Name:     u.Name,
				TeamName: req.TeamName,
			}
			if err := txRepo.CreateUser(ctx, user); err != nil {
				return err
			}
		}

		created, err := txRepo.GetWithUsers(ctx, req.TeamName)
		if err != nil {
			return err
		}
		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team registered", "team_name", result.TeamName, "users", len(result.Users))
	return result, nil
}

// Login checks team credentials by plaintext equality.
// Unknown team and wrong password are indistinguishable to the caller.
func (s *service) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	team, err := s.repo.GetByName(ctx, req.TeamName)
	if err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if team.TeamPassword != req.TeamPassword {
		return nil, model.ErrInvalidCredentials
	}

	return &model.LoginResponse{
		Message:  "Login successful",
		TeamName: team.TeamName,
	}, nil
}

// ToggleLock flips a team's locked flag and returns the new state.
func (s *service) ToggleLock(ctx context.Context, teamName string) (bool, error) {
	team, err := s.repo.GetByName(ctx, teamName)
	if err != nil {
		return false, err
	}

	newState := !team.Locked
	if err := s.repo.SetLocked(ctx, teamName, newState); err != nil {
		return false, err
	}

	return newState, nil
}

// LockStatus reports a team's current locked flag.
func (s *service) LockStatus(ctx context.Context, teamName string) (*model.LockStatusResponse, error) {
	team, err := s.repo.GetByName(ctx, teamName)
	if err != nil {
		return nil, err
	}

	return &model.LockStatusResponse{
		TeamName: team.TeamName,
		Locked:   team.Locked,
	}, nil
}

// SetLock sets a single team's locked flag.
func (s *service) SetLock(ctx context.Context, teamName string, locked bool) error {
	return s.repo.SetLocked(ctx, teamName, locked)
}

// SetAllLocks sets every team's locked flag.
func (s *service) SetAllLocks(ctx context.Context, locked bool) error {
	return s.repo.SetAllLocked(ctx, locked)
}
