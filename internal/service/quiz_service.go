package service

import (
	"context"
	"encoding/json"
	"time"

	"careerpath/internal/cache"
	"careerpath/internal/domain"
	"careerpath/internal/dto"
	"careerpath/internal/logger"
	"careerpath/internal/util"

	"go.uber.org/zap"
)

// QuizService drives the quiz lifecycle: session provisioning, submission
// scoring and result retrieval.
type QuizService interface {
	// CreateSession provisions a new session with a fixed question order.
	CreateSession(ctx context.Context, userID string) (*dto.SessionResponse, error)
	// GetSession returns the session without correct answers.
	GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	// SubmitQuiz scores a full submission, completes the session exactly
	// once and returns the skill breakdown with ranked career matches.
	SubmitQuiz(ctx context.Context, sessionID string, answers []domain.QuizAnswer) (*dto.SubmitQuizResponse, error)
}

// QuizServiceImpl implements QuizService.
type QuizServiceImpl struct {
	sessionRepo   domain.SessionRepository
	questionRepo  domain.QuestionRepository
	careerService CareerService
	scorer        *domain.AnswerScorer
	matchCfg      domain.MatchConfig
	questionCount int
	cache         domain.Cache
	resultTTL     time.Duration
}

// NewQuizService creates a new quiz service. A nil openEnded strategy falls
// back to the keyword heuristic; a nil cache disables result caching.
func NewQuizService(
	sessionRepo domain.SessionRepository,
	questionRepo domain.QuestionRepository,
	careerService CareerService,
	openEnded domain.OpenEndedScorer,
	matchCfg domain.MatchConfig,
	questionCount int,
	cacheImpl domain.Cache,
	resultTTL time.Duration,
) QuizService {
	if questionCount <= 0 {
		questionCount = 10
	}
	return &QuizServiceImpl{
		sessionRepo:   sessionRepo,
		questionRepo:  questionRepo,
		careerService: careerService,
		scorer:        domain.NewAnswerScorer(openEnded),
		matchCfg:      matchCfg,
		questionCount: questionCount,
		cache:         cacheImpl,
		resultTTL:     resultTTL,
	}
}

func resultCacheKey(sessionID string) string {
	return cache.GenerateCacheKey("quiz", "result", sessionID)
}

// CreateSession implements QuizService.
func (s *QuizServiceImpl) CreateSession(ctx context.Context, userID string) (*dto.SessionResponse, error) {
	questions, err := s.questionRepo.GetActiveQuestions(ctx, s.questionCount)
	if err != nil {
		return nil, err
	}

	session := domain.NewQuizSession(userID, questions)
	sessionID, err := s.sessionRepo.CreateSession(ctx, session)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("quiz session created",
		zap.String("sessionID", sessionID),
		zap.String("userID", userID),
		zap.Int("questions", len(questions)),
	)

	resp := dto.SessionToResponse(session)
	return &resp, nil
}

// GetSession implements QuizService.
func (s *QuizServiceImpl) GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	resp := dto.SessionToResponse(session)
	return &resp, nil
}

// SubmitQuiz implements QuizService. The order of operations matters: every
// answer is validated and scored before the session is completed, so a
// submission containing an unknown question id leaves the session
// in-progress and untouched.
func (s *QuizServiceImpl) SubmitQuiz(ctx context.Context, sessionID string, answers []domain.QuizAnswer) (*dto.SubmitQuizResponse, error) {
	l := logger.Get()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Completed {
		return nil, domain.NewSessionCompletedError(sessionID)
	}

	scored, err := s.scorer.ScoreSubmission(ctx, session, answers)
	if err != nil {
		return nil, err
	}

	completedAt := time.Now()
	if err := s.sessionRepo.CompleteSession(ctx, sessionID, answers, completedAt); err != nil {
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

	totalScore := 0
	for _, sa := range scored {
		if sa.Correct {
			totalScore++
		}
	}
	totalQuestions := len(session.Questions)
	percentage := 0.0
	if totalQuestions > 0 {
		percentage = util.RoundPercent(float64(totalScore) / float64(totalQuestions) * 100)
	}

	resp := &dto.SubmitQuizResponse{
		QuizID:         sessionID,
		TotalScore:     totalScore,
		TotalQuestions: totalQuestions,
		Percentage:     percentage,
		SkillBreakdown: dto.SkillScoresToResponse(skillScores),
		CareerMatches:  dto.CareerMatchesToResponse(matches),
	}

	if s.cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, resultCacheKey(sessionID), string(payload), s.resultTTL); err != nil {
				l.Warn("failed to cache quiz result", zap.Error(err), zap.String("sessionID", sessionID))
			}
		}
	}

	l.Info("quiz submitted",
		zap.String("sessionID", sessionID),
		zap.Int("totalScore", totalScore),
		zap.Int("totalQuestions", totalQuestions),
		zap.Int("careerMatches", len(matches)),
	)
	return resp, nil
}

func (s *QuizServiceImpl) loadSession(ctx context.Context, sessionID string) (*domain.QuizSession, error) {
	session, err := s.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	return session, nil
}
