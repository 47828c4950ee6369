package domain

import (
	"context"
	"time"
)

// User represents a platform user authenticated via Google.
type User struct {
	ID                string
	GoogleID          string
	Email             string
	Name              string
	ProfilePictureURL string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}

// NewUser creates a new User instance
func NewUser(googleID, email string) *User {
	now := time.Now()
	return &User{
		GoogleID:  googleID,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the user
func (u *User) Validate() error {
	if u.GoogleID == "" {
		return NewValidationError("google_id is required")
	}
	if u.Email == "" {
		return NewValidationError("email is required")
	}
	return nil
}

// SessionRepository is the persistence collaborator for quiz sessions.
type SessionRepository interface {
	// CreateSession persists a new in-progress session with its fixed
	// question order and returns its generated id.
	CreateSession(ctx context.Context, session *QuizSession) (string, error)

	// GetSessionByID loads a session with its questions and any submitted
	// answers. It returns (nil, nil) when the session does not exist.
	GetSessionByID(ctx context.Context, sessionID string) (*QuizSession, error)

	// CompleteSession atomically attaches the answers and flips the
	// completed flag via a check-and-set on the uncompleted row. It returns
	// a SESSION_ALREADY_COMPLETED domain error when the flag was already
	// set, leaving the session untouched.
	CompleteSession(ctx context.Context, sessionID string, answers []QuizAnswer, completedAt time.Time) error
}

// QuestionRepository is the question-provider collaborator.
type QuestionRepository interface {
	// GetActiveQuestions returns an ordered, non-empty question list for a
	// new session.
	GetActiveQuestions(ctx context.Context, limit int) ([]QuizQuestion, error)
}

// CareerRepository is the career-catalog provider.
type CareerRepository interface {
	GetAllCareers(ctx context.Context) ([]Career, error)
	// GetCareerByID returns (nil, nil) when the career does not exist.
	GetCareerByID(ctx context.Context, careerID string) (*Career, error)
}

// RecommendationRepository stores derived recommendations.
type RecommendationRepository interface {
	// SaveRecommendations replaces the stored recommendations for the
	// user/session pair; saving the same derivation twice is idempotent.
	SaveRecommendations(ctx context.Context, sessionID string, recommendations []Recommendation) error
}

// UserRepository defines the interface for user data persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByGoogleID(ctx context.Context, googleID string) (*User, error)
	GetUserByID(ctx context.Context, userID string) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
}
