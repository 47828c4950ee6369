package domain

import (
	"context"
	"strconv"
	"strings"
)

// ScoredAnswer is the outcome of judging one answer.
type ScoredAnswer struct {
	QuestionID    string
	SkillCategory string
	Correct       bool
}

// OpenEndedScorer is the pluggable policy for judging open-ended answers.
// The default keyword heuristic lives in KeywordScorer; alternative
// strategies (e.g. LLM-backed) implement the same interface and can be
// swapped without touching the rest of the pipeline.
type OpenEndedScorer interface {
	ScoreOpenEnded(ctx context.Context, answer, correctAnswer string) (bool, error)
}

// KeywordScorer judges an open-ended answer by keyword presence.
// The correct answer is a comma/semicolon-delimited keyword set; the answer
// is correct if it contains at least MinKeywordHits of the keywords as
// case-insensitive substrings.
type KeywordScorer struct {
	MinKeywordHits int
}

// NewKeywordScorer creates a KeywordScorer. A non-positive minHits falls
// back to the default of 1.
func NewKeywordScorer(minHits int) *KeywordScorer {
	if minHits <= 0 {
		minHits = 1
	}
	return &KeywordScorer{MinKeywordHits: minHits}
}

// ScoreOpenEnded implements OpenEndedScorer.
func (k *KeywordScorer) ScoreOpenEnded(_ context.Context, answer, correctAnswer string) (bool, error) {
	keywords := SplitKeywords(correctAnswer)
	if len(keywords) == 0 {
		return false, nil
	}
	haystack := strings.ToLower(answer)
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			hits++
			if hits >= k.MinKeywordHits {
				return true, nil
			}
		}
	}
	return false, nil
}

// SplitKeywords parses a keyword specification, splitting on commas and
// semicolons and dropping empty entries.
func SplitKeywords(spec string) []string {
	fields := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ';'
	})
	keywords := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			keywords = append(keywords, f)
		}
	}
	return keywords
}

// AnswerScorer judges answers against their question's expected answer.
type AnswerScorer struct {
	openEnded OpenEndedScorer
}

// NewAnswerScorer creates an AnswerScorer using the given open-ended
// strategy. A nil strategy falls back to the default keyword heuristic.
func NewAnswerScorer(openEnded OpenEndedScorer) *AnswerScorer {
	if openEnded == nil {
		openEnded = NewKeywordScorer(1)
	}
	return &AnswerScorer{openEnded: openEnded}
}

// Score judges a single answer. An empty answer is incorrect, never an error.
func (s *AnswerScorer) Score(ctx context.Context, question *QuizQuestion, answerText string) (ScoredAnswer, error) {
	scored := ScoredAnswer{
		QuestionID:    question.ID,
		SkillCategory: question.SkillCategory,
	}

	answer := strings.TrimSpace(answerText)
	if answer == "" {
		return scored, nil
	}

	switch question.Type {
	case QuestionTypeMultipleChoice:
		scored.Correct = matchChoice(question, answer)
	case QuestionTypeOpenEnded:
		correct, err := s.openEnded.ScoreOpenEnded(ctx, answer, question.CorrectAnswer)
		if err != nil {
			return scored, NewScoringUnavailableError(err)
		}
		scored.Correct = correct
	}
	return scored, nil
}

// ScoreSubmission judges every submitted answer of a session. An answer
// referencing a question absent from the session aborts the whole
// submission with a validation error; no partial result is returned.
func (s *AnswerScorer) ScoreSubmission(ctx context.Context, session *QuizSession, answers []QuizAnswer) ([]ScoredAnswer, error) {
	scored := make([]ScoredAnswer, 0, len(answers))
	for _, ans := range answers {
		question := session.QuestionByID(ans.QuestionID)
		if question == nil {
			return nil, NewUnknownQuestionError(ans.QuestionID)
		}
		sa, err := s.Score(ctx, question, ans.Text)
		if err != nil {
			return nil, err
		}
		scored = append(scored, sa)
	}
	return scored, nil
}

// matchChoice accepts either the correct answer text or, when the correct
// answer is stored as a canonical option index, the option text at that
// index. Comparison is case-insensitive and whitespace-trimmed.
func matchChoice(question *QuizQuestion, answer string) bool {
	expected := strings.TrimSpace(question.CorrectAnswer)
	if strings.EqualFold(answer, expected) {
		return true
	}
	if idx, err := strconv.Atoi(expected); err == nil && idx >= 0 && idx < len(question.Options) {
		return strings.EqualFold(answer, strings.TrimSpace(question.Options[idx]))
	}
	return false
}
