package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hexathon/quiz-backend/internal/question/model"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, question *model.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, questionID string) (*model.Question, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context) ([]model.QuestionView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.QuestionView), args.Error(1)
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("generates a uuid question id", func(t *testing.T) {
		mockRepo := new(mockRepository)
		mockRepo.On("Create", ctx, mock.Anything).Return(nil)
		svc := New(mockRepo, zap.NewNop().Sugar())

		question, err := svc.Add(ctx, &model.AddQuestionRequest{
			QuestionText:        "Capital of France?",
			QuestionDescription: "Geography round",
			Answer:              "paris",
		})

		require.NoError(t, err)
		_, parseErr := uuid.Parse(question.QuestionID)
		assert.NoError(t, parseErr)
		assert.Equal(t, "paris", question.Answer)
	})

	t.Run("blank question text", func(t *testing.T) {
		svc := New(new(mockRepository), zap.NewNop().Sugar())

		question, err := svc.Add(ctx, &model.AddQuestionRequest{
			QuestionText: "   ", QuestionDescription: "d", Answer: "a",
		})

		assert.Nil(t, question)
		assert.ErrorIs(t, err, model.ErrInvalidQuestion)
	})

	t.Run("blank answer", func(t *testing.T) {
		svc := New(new(mockRepository), zap.NewNop().Sugar())

		_, err := svc.Add(ctx, &model.AddQuestionRequest{
			QuestionText: "q", QuestionDescription: "d", Answer: "",
		})

		assert.ErrorIs(t, err, model.ErrInvalidQuestion)
	})

	t.Run("repository failure", func(t *testing.T) {
		mockRepo := new(mockRepository)
		mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("db down"))
		svc := New(mockRepo, zap.NewNop().Sugar())

		_, err := svc.Add(ctx, &model.AddQuestionRequest{
			QuestionText: "q", QuestionDescription: "d", Answer: "a",
		})

		assert.ErrorContains(t, err, "db down")
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(mockRepository)
	mockRepo.On("List", ctx).Return([]model.QuestionView{
		{QuestionID: "q1", QuestionText: "Capital of France?"},
	}, nil)
	svc := New(mockRepo, zap.NewNop().Sugar())

	views, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Len(t, views, 1)
}
