package repository

import (
	"context"
	"fmt"

	"careerpath/internal/domain"
	"careerpath/internal/repository/models"
	"careerpath/internal/util"

	"github.com/jmoiron/sqlx"
)

// RecommendationRepositoryImpl stores derived recommendations in Oracle.
type RecommendationRepositoryImpl struct {
	db *sqlx.DB
}

// NewRecommendationRepository creates a new recommendation repository.
func NewRecommendationRepository(db *sqlx.DB) domain.RecommendationRepository {
	return &RecommendationRepositoryImpl{db: db}
}

// SaveRecommendations replaces the stored recommendations for the session.
// Delete-then-insert inside one transaction makes regeneration idempotent.
func (r *RecommendationRepositoryImpl) SaveRecommendations(ctx context.Context, sessionID string, recommendations []domain.Recommendation) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM recommendations WHERE session_id = :1`, sessionID); err != nil {
		return fmt.Errorf("failed to clear recommendations for session %s: %w", sessionID, err)
	}

	insertQuery := `INSERT INTO recommendations
		(id, session_id, user_id, career_id, match_percentage, reasoning, strengths, areas_to_develop, created_at)
		VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9)`
	for i := range recommendations {
		rec := &recommendations[i]
		_, err := tx.ExecContext(ctx, insertQuery,
			util.NewULID(),
			sessionID,
			rec.UserID,
			rec.CareerID,
			rec.MatchPercentage,
			rec.Reasoning,
			models.StringSlice(rec.Strengths),
			models.StringSlice(rec.AreasToDevelop),
			rec.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert recommendation for career %s: %w", rec.CareerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
