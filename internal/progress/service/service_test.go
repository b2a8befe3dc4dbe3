package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	progressModel "github.com/hexathon/quiz-backend/internal/progress/model"
	progressRepo "github.com/hexathon/quiz-backend/internal/progress/repository"
	questionModel "github.com/hexathon/quiz-backend/internal/question/model"
	questionRepo "github.com/hexathon/quiz-backend/internal/question/repository"
	teamModel "github.com/hexathon/quiz-backend/internal/team/model"
	teamRepo "github.com/hexathon/quiz-backend/internal/team/repository"
)

func setupService(t *testing.T) (Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&teamModel.Team{}, &teamModel.User{},
		&questionModel.Question{}, &progressModel.TeamProgress{},
	)
	require.NoError(t, err)

	require.NoError(t, db.Create(&teamModel.Team{TeamName: "alpha", TeamPassword: "pw"}).Error)
	require.NoError(t, db.Create(&questionModel.Question{
		QuestionID: "q1", QuestionText: "Capital of France?", Answer: "paris",
	}).Error)

	svc := New(progressRepo.New(db), teamRepo.New(db), questionRepo.New(db), zap.NewNop().Sugar())
	return svc, db
}

func progressCount(t *testing.T, db *gorm.DB) int64 {
	var count int64
	require.NoError(t, db.Model(&progressModel.TeamProgress{}).Count(&count).Error)
	return count
}

func submit(team, question, answer string) *progressModel.SubmitAnswerRequest {
	return &progressModel.SubmitAnswerRequest{TeamName: team, QuestionID: question, Answer: answer}
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("correct first submission creates a completed record", func(t *testing.T) {
		svc, db := setupService(t)

		result, err := svc.Submit(ctx, submit("alpha", "q1", "paris"))

		require.NoError(t, err)
		assert.True(t, result.Created)

		var progress progressModel.TeamProgress
		require.NoError(t, db.First(&progress).Error)
		assert.True(t, progress.IsCompleted)
		require.NotNil(t, progress.SolvedAt)
		assert.Equal(t, int64(1), progressCount(t, db))
	})

	t.Run("second submission after completion is rejected without mutation", func(t *testing.T) {
		svc, db := setupService(t)

		_, err := svc.Submit(ctx, submit("alpha", "q1", "paris"))
		require.NoError(t, err)

		_, err = svc.Submit(ctx, submit("alpha", "q1", "paris"))
		assert.ErrorIs(t, err, progressModel.ErrAlreadyCompleted)

		_, err = svc.Submit(ctx, submit("alpha", "q1", "wrong"))
		assert.ErrorIs(t, err, progressModel.ErrAlreadyCompleted)

		assert.Equal(t, int64(1), progressCount(t, db))
	})

	t.Run("incorrect first submission leaves no trace", func(t *testing.T) {
		svc, db := setupService(t)

		_, err := svc.Submit(ctx, submit("alpha", "q1", "london"))
		assert.ErrorIs(t, err, progressModel.ErrIncorrectAnswer)
		assert.Equal(t, int64(0), progressCount(t, db))

		// the team may keep guessing until correct
		result, err := svc.Submit(ctx, submit("alpha", "q1", "paris"))
		require.NoError(t, err)
		assert.True(t, result.Created)
	})

	t.Run("case insensitive matching", func(t *testing.T) {
		svc, _ := setupService(t)

		result, err := svc.Submit(ctx, submit("alpha", "q1", "PARIS"))

		require.NoError(t, err)
		assert.True(t, result.Created)
	})

	t.Run("trailing whitespace is not trimmed", func(t *testing.T) {
		svc, db := setupService(t)

		_, err := svc.Submit(ctx, submit("alpha", "q1", "paris "))

		assert.ErrorIs(t, err, progressModel.ErrIncorrectAnswer)
		assert.Equal(t, int64(0), progressCount(t, db))
	})

	t.Run("completes a pre-existing incomplete record in place", func(t *testing.T) {
		svc, db := setupService(t)
		require.NoError(t, db.Create(&progressModel.TeamProgress{
			ProgressID: "p-old", TeamName: "alpha", QuestionID: "q1",
		}).Error)

		result, err := svc.Submit(ctx, submit("alpha", "q1", "paris"))

		require.NoError(t, err)
		assert.False(t, result.Created, "existing record is updated, not recreated")

		var progress progressModel.TeamProgress
		require.NoError(t, db.Where("progress_id = ?", "p-old").First(&progress).Error)
		assert.True(t, progress.IsCompleted)
		assert.Equal(t, int64(1), progressCount(t, db))
	})

	t.Run("incorrect answer on incomplete record does not mutate it", func(t *testing.T) {
		svc, db := setupService(t)
		require.NoError(t, db.Create(&progressModel.TeamProgress{
			ProgressID: "p-old", TeamName: "alpha", QuestionID: "q1",
		}).Error)

		_, err := svc.Submit(ctx, submit("alpha", "q1", "london"))

		assert.ErrorIs(t, err, progressModel.ErrIncorrectAnswer)

		var progress progressModel.TeamProgress
		require.NoError(t, db.Where("progress_id = ?", "p-old").First(&progress).Error)
		assert.False(t, progress.IsCompleted)
	})

	t.Run("unknown team", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.Submit(ctx, submit("ghost", "q1", "paris"))

		assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
	})

	t.Run("unknown question", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.Submit(ctx, submit("alpha", "q-ghost", "paris"))

		assert.ErrorIs(t, err, questionModel.ErrQuestionNotFound)
	})
}
