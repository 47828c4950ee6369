package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"careerpath/internal/domain"
	"careerpath/internal/repository/models"
	"careerpath/internal/util"

	"github.com/jmoiron/sqlx"
)

// SessionRepositoryImpl persists quiz sessions in Oracle.
type SessionRepositoryImpl struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *sqlx.DB) domain.SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

// CreateSession inserts the session row and its ordered question list in one
// transaction, minting the session id.
func (r *SessionRepositoryImpl) CreateSession(ctx context.Context, session *domain.QuizSession) (string, error) {
	if err := session.Validate(); err != nil {
		return "", err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sessionID := util.NewULID()
	query := `INSERT INTO quiz_sessions (id, user_id, completed, created_at) VALUES (:1, :2, 0, :3)`
	if _, err := tx.ExecContext(ctx, query, sessionID, session.UserID, session.CreatedAt); err != nil {
		return "", fmt.Errorf("failed to insert session: %w", err)
	}

	orderQuery := `INSERT INTO session_questions (session_id, question_id, position) VALUES (:1, :2, :3)`
	for i := range session.Questions {
		if _, err := tx.ExecContext(ctx, orderQuery, sessionID, session.Questions[i].ID, i); err != nil {
			return "", fmt.Errorf("failed to insert session question: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	session.ID = sessionID
	return sessionID, nil
}

// GetSessionByID loads the session row, its questions in assignment order and
// any submitted answers. Returns (nil, nil) when the session does not exist.
func (r *SessionRepositoryImpl) GetSessionByID(ctx context.Context, sessionID string) (*domain.QuizSession, error) {
	var row models.QuizSession
	query := `SELECT id, user_id, completed, created_at, completed_at FROM quiz_sessions WHERE id = :1`
	if err := r.db.GetContext(ctx, &row, query, sessionID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session %s: %w", sessionID, err)
	}

	questions, err := r.sessionQuestions(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	answers, err := r.sessionAnswers(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session := &domain.QuizSession{
		ID:        row.ID,
		UserID:    row.UserID,
		Questions: questions,
		Answers:   answers,
		Completed: row.Completed != 0,
		CreatedAt: row.CreatedAt,
	}
	if row.CompletedAt.Valid {
		t := row.CompletedAt.Time
		session.CompletedAt = &t
	}
	return session, nil
}

func (r *SessionRepositoryImpl) sessionQuestions(ctx context.Context, sessionID string) ([]domain.QuizQuestion, error) {
	var rows []models.Question
	query := `SELECT q.id, q.question_text, q.question_type, q.options, q.skill_category, q.correct_answer, q.active, q.created_at, q.updated_at
		FROM questions q
		JOIN session_questions sq ON sq.question_id = q.id
		WHERE sq.session_id = :1
		ORDER BY sq.position`
	if err := r.db.SelectContext(ctx, &rows, query, sessionID); err != nil {
		return nil, fmt.Errorf("failed to get session questions: %w", err)
	}

	questions := make([]domain.QuizQuestion, 0, len(rows))
	for i := range rows {
		questions = append(questions, questionToDomain(&rows[i]))
	}
	return questions, nil
}

func (r *SessionRepositoryImpl) sessionAnswers(ctx context.Context, sessionID string) ([]domain.QuizAnswer, error) {
	var rows []models.SessionAnswer
	query := `SELECT session_id, question_id, answer_text, created_at FROM session_answers WHERE session_id = :1 ORDER BY created_at`
	if err := r.db.SelectContext(ctx, &rows, query, sessionID); err != nil {
		return nil, fmt.Errorf("failed to get session answers: %w", err)
	}

	answers := make([]domain.QuizAnswer, 0, len(rows))
	for i := range rows {
		answers = append(answers, domain.QuizAnswer{
			QuestionID: rows[i].QuestionID,
			Text:       rows[i].AnswerText.String,
		})
	}
	return answers, nil
}

// CompleteSession flips the completed flag with a check-and-set on the
// uncompleted row and attaches the answers. Losing the race (or re-submitting)
// reports SESSION_ALREADY_COMPLETED without touching the stored answers.
func (r *SessionRepositoryImpl) CompleteSession(ctx context.Context, sessionID string, answers []domain.QuizAnswer, completedAt time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `UPDATE quiz_sessions SET completed = 1, completed_at = :1 WHERE id = :2 AND completed = 0`
	result, err := tx.ExecContext(ctx, query, completedAt, sessionID)
	if err != nil {
		return fmt.Errorf("failed to complete session %s: %w", sessionID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NewSessionCompletedError(sessionID)
	}

	insertQuery := `INSERT INTO session_answers (session_id, question_id, answer_text, created_at) VALUES (:1, :2, :3, :4)`
	for i := range answers {
		_, err := tx.ExecContext(ctx, insertQuery,
			sessionID,
			answers[i].QuestionID,
			util.StringToNullString(answers[i].Text),
			completedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert answer for question %s: %w", answers[i].QuestionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
