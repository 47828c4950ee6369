package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"careerpath/internal/domain"
	"careerpath/internal/dto"
	"careerpath/internal/middleware"
	"careerpath/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) CreateSession(ctx context.Context, userID string) (*dto.SessionResponse, error) {
	args := m.Called(ctx, userID)
	if resp, ok := args.Get(0).(*dto.SessionResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuizService) GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	args := m.Called(ctx, sessionID)
	if resp, ok := args.Get(0).(*dto.SessionResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuizService) SubmitQuiz(ctx context.Context, sessionID string, answers []domain.QuizAnswer) (*dto.SubmitQuizResponse, error) {
	args := m.Called(ctx, sessionID, answers)
	if resp, ok := args.Get(0).(*dto.SubmitQuizResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) GenerateRecommendations(ctx context.Context, sessionID string) (*dto.RecommendationsResponse, error) {
	args := m.Called(ctx, sessionID)
	if resp, ok := args.Get(0).(*dto.RecommendationsResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestApp(quizService *MockQuizService, recService *MockRecommendationService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := NewQuizHandler(quizService, recService)
	app.Get("/api/quizzes/:id", h.GetSession)
	app.Post("/api/quizzes/:id/submit", h.SubmitQuiz)
	app.Post("/api/quizzes/:id/recommendations", h.GenerateRecommendations)
	return app
}

func TestSubmitQuizHandler(t *testing.T) {
	quizService := new(MockQuizService)
	recService := new(MockRecommendationService)
	app := newTestApp(quizService, recService)
	sessionID := util.NewULID()

	quizService.On("SubmitQuiz", mock.Anything, sessionID, []domain.QuizAnswer{
		{QuestionID: "q1", Text: "def"},
	}).Return(&dto.SubmitQuizResponse{
		QuizID:         sessionID,
		TotalScore:     1,
		TotalQuestions: 3,
		Percentage:     33.33,
		SkillBreakdown: []dto.SkillScoreResponse{{Skill: "Python", Correct: 1, Total: 1, Percentage: 100}},
		CareerMatches:  []dto.CareerMatchResponse{},
	}, nil)

	body, _ := json.Marshal(dto.SubmitQuizRequest{Answers: []dto.SubmitAnswerRequest{{QuestionID: "q1", Answer: "def"}}})
	req := httptest.NewRequest(http.MethodPost, "/api/quizzes/"+sessionID+"/submit", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.SubmitQuizResponse
	payload, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(payload, &result))
	assert.Equal(t, sessionID, result.QuizID)
	assert.Equal(t, 33.33, result.Percentage)
	require.Len(t, result.SkillBreakdown, 1)
	assert.Equal(t, "Python", result.SkillBreakdown[0].Skill)

	quizService.AssertExpectations(t)
}

func TestSubmitQuizHandler_InvalidSessionID(t *testing.T) {
	quizService := new(MockQuizService)
	app := newTestApp(quizService, new(MockRecommendationService))

	body, _ := json.Marshal(dto.SubmitQuizRequest{Answers: []dto.SubmitAnswerRequest{{QuestionID: "q1", Answer: "x"}}})
	req := httptest.NewRequest(http.MethodPost, "/api/quizzes/not-a-ulid/submit", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp middleware.ValidationErrorResponse
	payload, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(payload, &errResp))
	assert.Equal(t, string(domain.CodeValidation), errResp.Code)
	require.NotEmpty(t, errResp.Errors)
	assert.Equal(t, "session_id", errResp.Errors[0].Field)

	quizService.AssertNotCalled(t, "SubmitQuiz", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitQuizHandler_UnknownQuestion(t *testing.T) {
	quizService := new(MockQuizService)
	app := newTestApp(quizService, new(MockRecommendationService))
	sessionID := util.NewULID()

	quizService.On("SubmitQuiz", mock.Anything, sessionID, mock.Anything).
		Return(nil, domain.NewUnknownQuestionError("999"))

	body, _ := json.Marshal(dto.SubmitQuizRequest{Answers: []dto.SubmitAnswerRequest{{QuestionID: "999", Answer: "x"}}})
	req := httptest.NewRequest(http.MethodPost, "/api/quizzes/"+sessionID+"/submit", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp middleware.ErrorResponse
	payload, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(payload, &errResp))
	assert.Equal(t, string(domain.CodeUnknownQuestion), errResp.Code)
}

func TestGetSessionHandler_NotFound(t *testing.T) {
	quizService := new(MockQuizService)
	app := newTestApp(quizService, new(MockRecommendationService))
	sessionID := util.NewULID()

	quizService.On("GetSession", mock.Anything, sessionID).
		Return(nil, domain.NewSessionNotFoundError(sessionID))

	req := httptest.NewRequest(http.MethodGet, "/api/quizzes/"+sessionID, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp middleware.ErrorResponse
	payload, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(payload, &errResp))
	assert.Equal(t, string(domain.CodeSessionNotFound), errResp.Code)
}

func TestGenerateRecommendationsHandler(t *testing.T) {
	recService := new(MockRecommendationService)
	app := newTestApp(new(MockQuizService), recService)
	sessionID := util.NewULID()

	recService.On("GenerateRecommendations", mock.Anything, sessionID).
		Return(&dto.RecommendationsResponse{Recommendations: []dto.RecommendationResponse{
			{UserID: "user-1", CareerID: "c1", MatchPercentage: 66.67, Reasoning: "You scored strongly in 2 of 3 required skills for Data Analyst, making you a 66.67% match."},
		}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/quizzes/"+sessionID+"/recommendations", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.RecommendationsResponse
	payload, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(payload, &result))
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "c1", result.Recommendations[0].CareerID)

	recService.AssertExpectations(t)
}
