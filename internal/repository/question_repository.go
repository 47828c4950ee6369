package repository

import (
	"context"
	"fmt"

	"careerpath/internal/domain"
	"careerpath/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// QuestionRepositoryImpl reads quiz questions from Oracle.
type QuestionRepositoryImpl struct {
	db *sqlx.DB
}

// NewQuestionRepository creates a new question repository.
func NewQuestionRepository(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionRepositoryImpl{db: db}
}

// GetActiveQuestions returns up to limit active questions in insertion order.
func (r *QuestionRepositoryImpl) GetActiveQuestions(ctx context.Context, limit int) ([]domain.QuizQuestion, error) {
	var rows []models.Question
	query := `SELECT id, question_text, question_type, options, skill_category, correct_answer, active, created_at, updated_at
		FROM questions
		WHERE active = 1
		ORDER BY created_at, id
		FETCH FIRST :1 ROWS ONLY`
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to get active questions: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.NewNotFoundError("no active questions available")
	}

	questions := make([]domain.QuizQuestion, 0, len(rows))
	for i := range rows {
		questions = append(questions, questionToDomain(&rows[i]))
	}
	return questions, nil
}

func questionToDomain(row *models.Question) domain.QuizQuestion {
	return domain.QuizQuestion{
		ID:            row.ID,
		Text:          row.Text,
		Type:          domain.QuestionType(row.QuestionType),
		Options:       row.Options,
		SkillCategory: row.SkillCategory,
		CorrectAnswer: row.CorrectAnswer,
	}
}
