package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Field-level validation errors
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Quiz/career specific errors
	CodeSessionNotFound    ErrorCode = "SESSION_NOT_FOUND"
	CodeCareerNotFound     ErrorCode = "CAREER_NOT_FOUND"
	CodeSessionCompleted   ErrorCode = "SESSION_ALREADY_COMPLETED"
	CodeUnknownQuestion    ErrorCode = "UNKNOWN_QUESTION"
	CodeScoringUnavailable ErrorCode = "SCORING_UNAVAILABLE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper constructors for common errors

func NewValidationError(message string) *DomainError {
	return NewError(CodeValidation, message, nil)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewSessionNotFoundError(sessionID string) *DomainError {
	return NewError(CodeSessionNotFound, fmt.Sprintf("Quiz session not found with ID: %s", sessionID), nil)
}

func NewCareerNotFoundError(careerID string) *DomainError {
	return NewError(CodeCareerNotFound, fmt.Sprintf("Career not found with ID: %s", careerID), nil)
}

func NewSessionCompletedError(sessionID string) *DomainError {
	return NewError(CodeSessionCompleted, fmt.Sprintf("Quiz session %s is already completed", sessionID), nil)
}

func NewUnknownQuestionError(questionID string) *DomainError {
	return NewError(CodeUnknownQuestion, fmt.Sprintf("Answer references unknown question ID: %s", questionID), nil)
}

func NewScoringUnavailableError(cause error) *DomainError {
	return NewError(CodeScoringUnavailable, "Failed to score open-ended answer", cause)
}

// IsValidation reports whether err is a validation-class DomainError.
func IsValidation(err error) bool {
	if de, ok := err.(*DomainError); ok {
		switch de.Code {
		case CodeValidation, CodeSessionCompleted, CodeUnknownQuestion,
			CodeMissingField, CodeInvalidFormat, CodeOutOfRange:
			return true
		}
	}
	return false
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	Field   string    `json:"field"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field-level failures for one request.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", e[0].Error())
}

func NewMissingFieldError(field string) FieldError {
	return FieldError{Field: field, Code: CodeMissingField, Message: fmt.Sprintf("%s is required", field)}
}

func NewInvalidFormatError(field, value string) FieldError {
	return FieldError{Field: field, Code: CodeInvalidFormat, Message: fmt.Sprintf("%s has invalid format: %s", field, value)}
}

func NewOutOfRangeError(field string, value, min, max int) FieldError {
	return FieldError{Field: field, Code: CodeOutOfRange, Message: fmt.Sprintf("%s must be between %d and %d, got %d", field, min, max, value)}
}
