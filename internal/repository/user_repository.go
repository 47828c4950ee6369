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

// UserRepositoryImpl persists users in Oracle.
type UserRepositoryImpl struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *sqlx.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// CreateUser inserts the user, minting its id.
func (r *UserRepositoryImpl) CreateUser(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	user.ID = util.NewULID()
	query := `INSERT INTO users (id, google_id, email, name, profile_picture_url, created_at, updated_at)
		VALUES (:1, :2, :3, :4, :5, :6, :7)`
	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.GoogleID,
		user.Email,
		util.StringToNullString(user.Name),
		util.StringToNullString(user.ProfilePictureURL),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByGoogleID returns (nil, nil) when no user matches.
func (r *UserRepositoryImpl) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return r.getUser(ctx, `SELECT id, google_id, email, name, profile_picture_url, created_at, updated_at, deleted_at
		FROM users WHERE google_id = :1 AND deleted_at IS NULL`, googleID)
}

// GetUserByID returns (nil, nil) when no user matches.
func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUser(ctx, `SELECT id, google_id, email, name, profile_picture_url, created_at, updated_at, deleted_at
		FROM users WHERE id = :1 AND deleted_at IS NULL`, userID)
}

func (r *UserRepositoryImpl) getUser(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var row models.User
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user := &domain.User{
		ID:                row.ID,
		GoogleID:          row.GoogleID,
		Email:             row.Email,
		Name:              row.Name.String,
		ProfilePictureURL: row.ProfilePictureURL.String,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
	if row.DeletedAt.Valid {
		t := row.DeletedAt.Time
		user.DeletedAt = &t
	}
	return user, nil
}

// UpdateUser updates the mutable profile fields.
func (r *UserRepositoryImpl) UpdateUser(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now()
	query := `UPDATE users SET email = :1, name = :2, profile_picture_url = :3, updated_at = :4 WHERE id = :5`
	result, err := r.db.ExecContext(ctx, query,
		user.Email,
		util.StringToNullString(user.Name),
		util.StringToNullString(user.ProfilePictureURL),
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError("user not found: " + user.ID)
	}
	return nil
}
