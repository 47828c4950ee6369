package service

import (
	"context"
	"encoding/json"
	"time"

	"careerpath/internal/cache"
	"careerpath/internal/domain"
	"careerpath/internal/logger"

	"go.uber.org/zap"
)

// CareerService provides read access to the career catalog.
type CareerService interface {
	// GetAllCareers returns the full catalog, served from cache when fresh.
	GetAllCareers(ctx context.Context) ([]domain.Career, error)
	// GetCareerByID returns a CAREER_NOT_FOUND domain error for unknown ids.
	GetCareerByID(ctx context.Context, careerID string) (*domain.Career, error)
}

// CareerServiceImpl implements CareerService with a read-through Redis cache
// in front of the repository. The catalog changes rarely, so a short TTL is
// the only invalidation needed.
type CareerServiceImpl struct {
	careerRepo domain.CareerRepository
	cache      domain.Cache
	cacheTTL   time.Duration
}

// NewCareerService creates a new career service. A nil cache disables caching.
func NewCareerService(careerRepo domain.CareerRepository, cacheImpl domain.Cache, cacheTTL time.Duration) CareerService {
	return &CareerServiceImpl{
		careerRepo: careerRepo,
		cache:      cacheImpl,
		cacheTTL:   cacheTTL,
	}
}

func (s *CareerServiceImpl) catalogCacheKey() string {
	return cache.GenerateCacheKey("career", "catalog", "all")
}

// GetAllCareers implements CareerService.
func (s *CareerServiceImpl) GetAllCareers(ctx context.Context) ([]domain.Career, error) {
	l := logger.Get()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, s.catalogCacheKey())
		if err == nil {
			var careers []domain.Career
			if err := json.Unmarshal([]byte(cached), &careers); err == nil {
				return careers, nil
			}
			l.Warn("failed to decode cached career catalog, falling back to DB", zap.Error(err))
		} else if err != domain.ErrCacheMiss {
			l.Warn("career catalog cache read failed", zap.Error(err))
		}
	}

	careers, err := s.careerRepo.GetAllCareers(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(careers); err == nil {
			if err := s.cache.Set(ctx, s.catalogCacheKey(), string(payload), s.cacheTTL); err != nil {
				l.Warn("failed to cache career catalog", zap.Error(err))
			}
		}
	}
	return careers, nil
}

// GetCareerByID implements CareerService.
func (s *CareerServiceImpl) GetCareerByID(ctx context.Context, careerID string) (*domain.Career, error) {
	career, err := s.careerRepo.GetCareerByID(ctx, careerID)
	if err != nil {
		return nil, err
	}
	if career == nil {
		return nil, domain.NewCareerNotFoundError(careerID)
	}
	return career, nil
}
