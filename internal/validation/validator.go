package validation

import (
	"fmt"
	"strings"

	"careerpath/internal/domain"
	"careerpath/internal/dto"

	"github.com/oklog/ulid/v2"
)

// Validator performs request-level validation before anything reaches the
// services. Semantic checks (unknown question ids, completed sessions) stay
// in the domain.
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSessionID checks the path parameter is a plausible session id.
func (v *Validator) ValidateSessionID(sessionID string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(sessionID) == "" {
		errs = append(errs, domain.NewMissingFieldError("session_id"))
		return errs
	}
	if _, err := ulid.Parse(sessionID); err != nil {
		errs = append(errs, domain.NewInvalidFormatError("session_id", sessionID))
	}
	return errs
}

// ValidateSubmitQuizRequest checks the structural shape of a submission.
// Answer texts may be empty (they score as incorrect); question ids may not.
func (v *Validator) ValidateSubmitQuizRequest(req *dto.SubmitQuizRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if req == nil || req.Answers == nil {
		errs = append(errs, domain.NewMissingFieldError("answers"))
		return errs
	}

	seen := make(map[string]struct{}, len(req.Answers))
	for i, answer := range req.Answers {
		field := fmt.Sprintf("answers[%d].question_id", i)
		id := strings.TrimSpace(answer.QuestionID)
		if id == "" {
			errs = append(errs, domain.NewMissingFieldError(field))
			continue
		}
		if _, dup := seen[id]; dup {
			errs = append(errs, domain.FieldError{
				Field:   field,
				Code:    domain.CodeInvalidFormat,
				Message: fmt.Sprintf("duplicate answer for question %s", id),
			})
		}
		seen[id] = struct{}{}
	}
	return errs
}
