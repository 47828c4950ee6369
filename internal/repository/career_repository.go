package repository

import (
	"context"
	"database/sql"
	"fmt"

	"careerpath/internal/domain"
	"careerpath/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// CareerRepositoryImpl reads the career catalog from Oracle.
type CareerRepositoryImpl struct {
	db *sqlx.DB
}

// NewCareerRepository creates a new career repository.
func NewCareerRepository(db *sqlx.DB) domain.CareerRepository {
	return &CareerRepositoryImpl{db: db}
}

// GetAllCareers returns the full catalog ordered by name.
func (r *CareerRepositoryImpl) GetAllCareers(ctx context.Context) ([]domain.Career, error) {
	var rows []models.Career
	query := `SELECT id, name, required_skills, description, salary_range, created_at, updated_at FROM careers ORDER BY name, id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to get careers: %w", err)
	}

	careers := make([]domain.Career, 0, len(rows))
	for i := range rows {
		careers = append(careers, careerToDomain(&rows[i]))
	}
	return careers, nil
}

// GetCareerByID returns (nil, nil) when the career does not exist.
func (r *CareerRepositoryImpl) GetCareerByID(ctx context.Context, careerID string) (*domain.Career, error) {
	var row models.Career
	query := `SELECT id, name, required_skills, description, salary_range, created_at, updated_at FROM careers WHERE id = :1`
	if err := r.db.GetContext(ctx, &row, query, careerID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get career %s: %w", careerID, err)
	}
	career := careerToDomain(&row)
	return &career, nil
}

func careerToDomain(row *models.Career) domain.Career {
	return domain.Career{
		ID:             row.ID,
		Name:           row.Name,
		RequiredSkills: row.RequiredSkills,
		Description:    row.Description.String,
		SalaryRange:    row.SalaryRange.String,
	}
}
