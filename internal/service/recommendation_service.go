package service

import (
	"context"
	"encoding/json"
	"time"

	"careerpath/internal/cache"
	"careerpath/internal/domain"
	"careerpath/internal/dto"
	"careerpath/internal/logger"

	"go.uber.org/zap"
)

// RecommendationService derives career recommendations from completed quiz
// sessions.
type RecommendationService interface {
	// GenerateRecommendations recomputes the full pipeline for a completed
	// session and persists the result. Regenerating is idempotent.
	GenerateRecommendations(ctx context.Context, sessionID string) (*dto.RecommendationsResponse, error)
}

// RecommendationServiceImpl implements RecommendationService.
type RecommendationServiceImpl struct {
	sessionRepo   domain.SessionRepository
	recRepo       domain.RecommendationRepository
	careerService CareerService
	scorer        *domain.AnswerScorer
	matchCfg      domain.MatchConfig
	cache         domain.Cache
	resultTTL     time.Duration
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(
	sessionRepo domain.SessionRepository,
	recRepo domain.RecommendationRepository,
	careerService CareerService,
	openEnded domain.OpenEndedScorer,
	matchCfg domain.MatchConfig,
	cacheImpl domain.Cache,
	resultTTL time.Duration,
) RecommendationService {
	return &RecommendationServiceImpl{
		sessionRepo:   sessionRepo,
		recRepo:       recRepo,
		careerService: careerService,
		scorer:        domain.NewAnswerScorer(openEnded),
		matchCfg:      matchCfg,
		cache:         cacheImpl,
		resultTTL:     resultTTL,
	}
}

func recommendationCacheKey(sessionID string) string {
	return cache.GenerateCacheKey("recommendation", "session", sessionID)
}

// GenerateRecommendations implements RecommendationService. It rescores the
// stored answers rather than trusting any previously derived result, so the
// output always reflects the current catalog and configuration.
func (s *RecommendationServiceImpl) GenerateRecommendations(ctx context.Context, sessionID string) (*dto.RecommendationsResponse, error) {
	l := logger.Get()

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, recommendationCacheKey(sessionID)); err == nil {
			var resp dto.RecommendationsResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
			l.Warn("failed to decode cached recommendations", zap.Error(err), zap.String("sessionID", sessionID))
		}
	}

	session, err := s.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	if !session.Completed {
		return nil, domain.NewValidationError("quiz session is not completed yet: " + sessionID)
	}

	scored, err := s.scorer.ScoreSubmission(ctx, session, session.Answers)
	if err != nil {
		return nil, err
	}
	skillScores := domain.AggregateSkills(session.Questions, scored)

	catalog, err := s.careerService.GetAllCareers(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := domain.MatchCareers(ctx, skillScores, catalog, s.matchCfg)
	if err != nil {
		return nil, err
	}

	recommendations := domain.BuildRecommendations(session.UserID, matches, skillScores, s.matchCfg, time.Now())
	if err := s.recRepo.SaveRecommendations(ctx, sessionID, recommendations); err != nil {
		return nil, err
	}

	resp := dto.RecommendationsToResponse(recommendations)
	if s.cache != nil {
		if payload, err := json.Marshal(&resp); err == nil {
			if err := s.cache.Set(ctx, recommendationCacheKey(sessionID), string(payload), s.resultTTL); err != nil {
				l.Warn("failed to cache recommendations", zap.Error(err), zap.String("sessionID", sessionID))
			}
		}
	}

	l.Info("recommendations generated",
		zap.String("sessionID", sessionID),
		zap.String("userID", session.UserID),
		zap.Int("count", len(recommendations)),
	)
	return &resp, nil
}
