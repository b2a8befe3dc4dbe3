// Package service provides the answer submission state machine.
//
// Per (team, question) pair the lifecycle is: no record, then an incomplete
// record (only if one was created by an earlier deployment; this service
// never persists failed attempts), then a completed record, which is
// terminal. Incorrect answers never mutate anything, so teams may keep
// guessing until correct.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	progressModel "github.com/hexathon/quiz-backend/internal/progress/model"
	progressRepo "github.com/hexathon/quiz-backend/internal/progress/repository"
	questionRepo "github.com/hexathon/quiz-backend/internal/question/repository"
	teamRepo "github.com/hexathon/quiz-backend/internal/team/repository"
)

// Service defines the interface for answer submission operations.
type Service interface {
	// Submit evaluates an answer for a (team, question) pair and advances the
	// progress state machine. On success the result says whether a new record
	// was created. Failures are reported as the module's sentinel errors plus
	// team/question not-found errors from their own modules.
	Submit(ctx context.Context, req *progressModel.SubmitAnswerRequest) (*progressModel.SubmitResult, error)
}

type service struct {
	progress  progressRepo.Repository
	teams     teamRepo.Repository
	questions questionRepo.Repository
	logger    *zap.SugaredLogger
}

// New creates a new progress service instance.
func New(
	progress progressRepo.Repository,
	teams teamRepo.Repository,
	questions questionRepo.Repository,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		progress:  progress,
		teams:     teams,
		questions: questions,
		logger:    logger,
	}
}

// Submit evaluates an answer for a (team, question) pair.
func (s *service) Submit(ctx context.Context, req *progressModel.SubmitAnswerRequest) (*progressModel.SubmitResult, error) {
	if _, err := s.teams.GetByName(ctx, req.TeamName); err != nil {
		return nil, err
	}

	existing, err := s.progress.GetByTeamAndQuestion(ctx, req.TeamName, req.QuestionID)
	if err != nil && !errors.Is(err, progressModel.ErrProgressNotFound) {
		return nil, err
	}

	if existing != nil {
		if existing.IsCompleted {
			return nil, progressModel.ErrAlreadyCompleted
		}

		question, err := s.questions.GetByID(ctx, req.QuestionID)
		if err != nil {
			return nil, err
		}
		if !AnswersMatch(req.Answer, question.Answer) {
			return nil, progressModel.ErrIncorrectAnswer
		}

		if err := s.progress.MarkCompleted(ctx, existing.ProgressID, time.Now()); err != nil {
			return nil, err
		}
		s.logger.Infow("question completed", "team_name", req.TeamName, "question_id", req.QuestionID)
		return &progressModel.SubmitResult{Created: false}, nil
	}

	question, err := s.questions.GetByID(ctx, req.QuestionID)
	if err != nil {
		return nil, err
	}
	if !AnswersMatch(req.Answer, question.Answer) {
		// No record is written for a failed first attempt.
		return nil, progressModel.ErrIncorrectAnswer
	}

	now := time.Now()
	record := &progressModel.TeamProgress{
		ProgressID:  uuid.NewString(),
		TeamName:    req.TeamName,
		QuestionID:  req.QuestionID,
		IsCompleted: true,
		SolvedAt:    &now,
	}
	// A duplicate-key failure here means a concurrent submission completed
	// the pair first; Create already reports that as ErrAlreadyCompleted.
	if err := s.progress.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Infow("question completed", "team_name", req.TeamName, "question_id", req.QuestionID)
	return &progressModel.SubmitResult{Created: true}, nil
}
