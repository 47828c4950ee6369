package service

import (
	"context"
	"time"

	"careerpath/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) CreateSession(ctx context.Context, session *domain.QuizSession) (string, error) {
	args := m.Called(ctx, session)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) GetSessionByID(ctx context.Context, sessionID string) (*domain.QuizSession, error) {
	args := m.Called(ctx, sessionID)
	if session, ok := args.Get(0).(*domain.QuizSession); ok {
		return session, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionRepository) CompleteSession(ctx context.Context, sessionID string, answers []domain.QuizAnswer, completedAt time.Time) error {
	args := m.Called(ctx, sessionID, answers, completedAt)
	return args.Error(0)
}

type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) GetActiveQuestions(ctx context.Context, limit int) ([]domain.QuizQuestion, error) {
	args := m.Called(ctx, limit)
	if questions, ok := args.Get(0).([]domain.QuizQuestion); ok {
		return questions, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCareerRepository struct {
	mock.Mock
}

func (m *MockCareerRepository) GetAllCareers(ctx context.Context) ([]domain.Career, error) {
	args := m.Called(ctx)
	if careers, ok := args.Get(0).([]domain.Career); ok {
		return careers, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCareerRepository) GetCareerByID(ctx context.Context, careerID string) (*domain.Career, error) {
	args := m.Called(ctx, careerID)
	if career, ok := args.Get(0).(*domain.Career); ok {
		return career, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) SaveRecommendations(ctx context.Context, sessionID string, recommendations []domain.Recommendation) error {
	args := m.Called(ctx, sessionID, recommendations)
	return args.Error(0)
}

type MockCareerService struct {
	mock.Mock
}

func (m *MockCareerService) GetAllCareers(ctx context.Context) ([]domain.Career, error) {
	args := m.Called(ctx)
	if careers, ok := args.Get(0).([]domain.Career); ok {
		return careers, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCareerService) GetCareerByID(ctx context.Context, careerID string) (*domain.Career, error) {
	args := m.Called(ctx, careerID)
	if career, ok := args.Get(0).(*domain.Career); ok {
		return career, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
