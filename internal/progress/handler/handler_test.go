package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	progressModel "github.com/hexathon/quiz-backend/internal/progress/model"
	"github.com/hexathon/quiz-backend/internal/progress/service"
	questionModel "github.com/hexathon/quiz-backend/internal/question/model"
	teamModel "github.com/hexathon/quiz-backend/internal/team/model"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Submit(ctx context.Context, req *progressModel.SubmitAnswerRequest) (*progressModel.SubmitResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*progressModel.SubmitResult), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func submitRequest(t *testing.T, router *gin.Engine, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, "/submit-answer", bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func setupRouter(svc service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/submit-answer", New(svc, zap.NewNop().Sugar()).Submit)
	return r
}

func TestHandler_Submit(t *testing.T) {
	validReq := &progressModel.SubmitAnswerRequest{
		TeamName: "alpha", QuestionID: "q1", Answer: "paris",
	}

	t.Run("correct new submission returns 201", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Submit", mock.Anything, validReq).
			Return(&progressModel.SubmitResult{Created: true}, nil)

		w := submitRequest(t, setupRouter(mockSvc), validReq)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Correct answer!")
	})

	t.Run("correct submission completing an existing record returns 200", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Submit", mock.Anything, validReq).
			Return(&progressModel.SubmitResult{Created: false}, nil)

		w := submitRequest(t, setupRouter(mockSvc), validReq)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("incorrect answer returns 400", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Submit", mock.Anything, validReq).
			Return(nil, progressModel.ErrIncorrectAnswer)

		w := submitRequest(t, setupRouter(mockSvc), validReq)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Incorrect answer.")
	})

	t.Run("already completed returns 400", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Submit", mock.Anything, validReq).
			Return(nil, progressModel.ErrAlreadyCompleted)

		w := submitRequest(t, setupRouter(mockSvc), validReq)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "already submitted")
	})

	t.Run("unknown team returns 404", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Submit", mock.Anything, validReq).
			Return(nil, teamModel.ErrTeamNotFound)

		w := submitRequest(t, setupRouter(mockSvc), validReq)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Team not found")
	})

	t.Run("unknown question returns 404", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Submit", mock.Anything, validReq).
			Return(nil, questionModel.ErrQuestionNotFound)

		w := submitRequest(t, setupRouter(mockSvc), validReq)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		mockSvc := new(mockService)

		w := submitRequest(t, setupRouter(mockSvc), gin.H{"team_name": "alpha"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "Submit")
	})
}
