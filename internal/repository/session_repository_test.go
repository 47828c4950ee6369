package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"careerpath/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestSessionRepository_CreateSession(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	session := domain.NewQuizSession("user-1", []domain.QuizQuestion{
		{ID: "q1", Text: "What does SQL stand for?", Type: domain.QuestionTypeOpenEnded, SkillCategory: "SQL", CorrectAnswer: "structured query language"},
		{ID: "q2", Text: "Pick the Python keyword", Type: domain.QuestionTypeMultipleChoice, Options: []string{"def", "func"}, SkillCategory: "Python", CorrectAnswer: "def"},
	})

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO quiz_sessions`)).
		WithArgs(sqlmock.AnyArg(), "user-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO session_questions`)).
		WithArgs(sqlmock.AnyArg(), "q1", 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO session_questions`)).
		WithArgs(sqlmock.AnyArg(), "q2", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := repo.CreateSession(context.Background(), session)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, session.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_CreateSession_InvalidSession(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewSessionRepository(db)

	_, err := repo.CreateSession(context.Background(), domain.NewQuizSession("", nil))
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestSessionRepository_GetSessionByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	completedAt := createdAt.Add(20 * time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, completed, created_at, completed_at FROM quiz_sessions`)).
		WithArgs("sess-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "completed", "created_at", "completed_at"}).
			AddRow("sess-1", "user-1", 1, createdAt, completedAt))
	mock.ExpectQuery(regexp.QuoteMeta(`JOIN session_questions sq ON sq.question_id = q.id`)).
		WithArgs("sess-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "question_text", "question_type", "options", "skill_category", "correct_answer", "active", "created_at", "updated_at"}).
			AddRow("q1", "Pick the Python keyword", "multiple_choice", `["def","func"]`, "Python", "def", 1, createdAt, createdAt))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT session_id, question_id, answer_text, created_at FROM session_answers`)).
		WithArgs("sess-1").
		WillReturnRows(sqlmock.NewRows([]string{"session_id", "question_id", "answer_text", "created_at"}).
			AddRow("sess-1", "q1", "def", completedAt))

	session, err := repo.GetSessionByID(context.Background(), "sess-1")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.True(t, session.Completed)
	require.NotNil(t, session.CompletedAt)
	assert.Equal(t, completedAt, *session.CompletedAt)
	require.Len(t, session.Questions, 1)
	assert.Equal(t, []string{"def", "func"}, session.Questions[0].Options)
	require.Len(t, session.Answers, 1)
	assert.Equal(t, domain.QuizAnswer{QuestionID: "q1", Text: "def"}, session.Answers[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_GetSessionByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM quiz_sessions WHERE id = :1`)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "completed", "created_at", "completed_at"}))

	session, err := repo.GetSessionByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_CompleteSession(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)
	completedAt := time.Date(2025, 3, 1, 10, 20, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE quiz_sessions SET completed = 1, completed_at = :1 WHERE id = :2 AND completed = 0`)).
		WithArgs(completedAt, "sess-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO session_answers`)).
		WithArgs("sess-1", "q1", sqlmock.AnyArg(), completedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CompleteSession(context.Background(), "sess-1", []domain.QuizAnswer{{QuestionID: "q1", Text: "def"}}, completedAt)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The check-and-set must report the already-completed state without writing
// any answers when zero rows match.
func TestSessionRepository_CompleteSession_AlreadyCompleted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)
	completedAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE quiz_sessions SET completed = 1`)).
		WithArgs(completedAt, "sess-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.CompleteSession(context.Background(), "sess-1", []domain.QuizAnswer{{QuestionID: "q1", Text: "def"}}, completedAt)
	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeSessionCompleted, domainErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
