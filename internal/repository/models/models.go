package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice is a custom type for storing string arrays as JSON in CLOB
// columns.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// User row in the users table.
type User struct {
	ID                string         `db:"id"`
	GoogleID          string         `db:"google_id"`
	Email             string         `db:"email"`
	Name              sql.NullString `db:"name"`
	ProfilePictureURL sql.NullString `db:"profile_picture_url"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
	DeletedAt         sql.NullTime   `db:"deleted_at"`
}

// Question row in the questions table. Options and the correct answer are
// stored verbatim; the scoring interpretation lives in the domain.
type Question struct {
	ID            string      `db:"id"`
	Text          string      `db:"question_text"`
	QuestionType  string      `db:"question_type"`
	Options       StringSlice `db:"options"`
	SkillCategory string      `db:"skill_category"`
	CorrectAnswer string      `db:"correct_answer"`
	Active        int         `db:"active"`
	CreatedAt     time.Time   `db:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at"`
}

// QuizSession row. The question order lives in session_questions.
type QuizSession struct {
	ID          string       `db:"id"`
	UserID      string       `db:"user_id"`
	Completed   int          `db:"completed"`
	CreatedAt   time.Time    `db:"created_at"`
	CompletedAt sql.NullTime `db:"completed_at"`
}

// SessionAnswer row in the session_answers table.
type SessionAnswer struct {
	SessionID  string         `db:"session_id"`
	QuestionID string         `db:"question_id"`
	AnswerText sql.NullString `db:"answer_text"`
	CreatedAt  time.Time      `db:"created_at"`
}

// Career row in the careers table.
type Career struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	RequiredSkills StringSlice    `db:"required_skills"`
	Description    sql.NullString `db:"description"`
	SalaryRange    sql.NullString `db:"salary_range"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

// Recommendation row in the recommendations table.
type Recommendation struct {
	ID              string      `db:"id"`
	SessionID       string      `db:"session_id"`
	UserID          string      `db:"user_id"`
	CareerID        string      `db:"career_id"`
	MatchPercentage float64     `db:"match_percentage"`
	Reasoning       string      `db:"reasoning"`
	Strengths       StringSlice `db:"strengths"`
	AreasToDevelop  StringSlice `db:"areas_to_develop"`
	CreatedAt       time.Time   `db:"created_at"`
}
