package domain

import (
	"strings"
	"time"
)

// QuestionType discriminates how a question is answered and scored.
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeOpenEnded      QuestionType = "open_ended"
)

// QuizQuestion represents a single question in a quiz session.
// For multiple_choice questions CorrectAnswer holds the accepted option,
// either as its exact text or as the zero-based index into Options.
// For open_ended questions CorrectAnswer is a keyword specification
// (comma or semicolon delimited) interpreted by the scoring strategy.
type QuizQuestion struct {
	ID            string
	Text          string
	Type          QuestionType
	Options       []string // present iff Type == multiple_choice
	SkillCategory string
	CorrectAnswer string
}

// Validate validates the question
func (q *QuizQuestion) Validate() error {
	if q.ID == "" {
		return NewValidationError("question ID is required")
	}
	if q.Text == "" {
		return NewValidationError("question text is required")
	}
	if q.SkillCategory == "" {
		return NewValidationError("skill category is required")
	}
	switch q.Type {
	case QuestionTypeMultipleChoice:
		if len(q.Options) == 0 {
			return NewValidationError("multiple choice question requires options")
		}
	case QuestionTypeOpenEnded:
		if len(q.Options) != 0 {
			return NewValidationError("open ended question must not have options")
		}
	default:
		return NewValidationError("unknown question type: " + string(q.Type))
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		return NewValidationError("correct answer is required")
	}
	return nil
}

// QuizAnswer is a user's submitted answer to one question in a session.
type QuizAnswer struct {
	QuestionID string
	Text       string
}

// QuizSession is an ordered, immutable set of questions assigned to a user.
// Answers are attached once, at submission. The in-progress -> completed
// transition happens exactly once and is enforced atomically by the
// persistence layer; the domain treats it as a precondition.
type QuizSession struct {
	ID          string
	UserID      string
	Questions   []QuizQuestion
	Answers     []QuizAnswer
	Completed   bool
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// NewQuizSession creates a new in-progress session with a fixed question order.
func NewQuizSession(userID string, questions []QuizQuestion) *QuizSession {
	return &QuizSession{
		UserID:    userID,
		Questions: questions,
		CreatedAt: time.Now(),
	}
}

// Validate validates the session
func (s *QuizSession) Validate() error {
	if s.UserID == "" {
		return NewValidationError("user ID is required")
	}
	if len(s.Questions) == 0 {
		return NewValidationError("session requires at least one question")
	}
	seen := make(map[string]struct{}, len(s.Questions))
	for i := range s.Questions {
		if err := s.Questions[i].Validate(); err != nil {
			return err
		}
		if _, dup := seen[s.Questions[i].ID]; dup {
			return NewValidationError("duplicate question ID in session: " + s.Questions[i].ID)
		}
		seen[s.Questions[i].ID] = struct{}{}
	}
	return nil
}

// QuestionByID returns the session question with the given id, or nil.
func (s *QuizSession) QuestionByID(id string) *QuizQuestion {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i]
		}
	}
	return nil
}
