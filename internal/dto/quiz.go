package dto

import (
	"time"

	"careerpath/internal/domain"
)

// SubmitAnswerRequest is one answer inside a quiz submission.
type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// SubmitQuizRequest is the full submission for a quiz session.
type SubmitQuizRequest struct {
	Answers []SubmitAnswerRequest `json:"answers"`
}

// SkillScoreResponse is the per-skill aggregate in a quiz result.
type SkillScoreResponse struct {
	Skill      string  `json:"skill"`
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// CareerMatchResponse is one matched career in a quiz result.
type CareerMatchResponse struct {
	CareerID        string   `json:"career_id"`
	CareerName      string   `json:"career_name"`
	MatchPercentage float64  `json:"match_percentage"`
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
	SalaryRange     string   `json:"salary_range,omitempty"`
}

// SubmitQuizResponse is the result of a scored quiz submission.
type SubmitQuizResponse struct {
	QuizID         string                `json:"quiz_id"`
	TotalScore     int                   `json:"total_score"`
	TotalQuestions int                   `json:"total_questions"`
	Percentage     float64               `json:"percentage"`
	SkillBreakdown []SkillScoreResponse  `json:"skill_breakdown"`
	CareerMatches  []CareerMatchResponse `json:"career_matches"`
}

// RecommendationResponse is one career recommendation.
type RecommendationResponse struct {
	UserID          string    `json:"user_id"`
	CareerID        string    `json:"career_id"`
	MatchPercentage float64   `json:"match_percentage"`
	Reasoning       string    `json:"reasoning"`
	Strengths       []string  `json:"strengths"`
	AreasToDevelop  []string  `json:"areas_to_develop"`
	CreatedAt       time.Time `json:"created_at"`
}

// RecommendationsResponse wraps the recommendation list for a session.
type RecommendationsResponse struct {
	Recommendations []RecommendationResponse `json:"recommendations"`
}

// QuestionResponse is a session question as shown to the taker. The correct
// answer never leaves the server.
type QuestionResponse struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Type          string   `json:"type"`
	Options       []string `json:"options,omitempty"`
	SkillCategory string   `json:"skill_category"`
}

// SessionResponse describes a quiz session.
type SessionResponse struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user_id"`
	Questions   []QuestionResponse `json:"questions"`
	Completed   bool               `json:"completed"`
	CreatedAt   time.Time          `json:"created_at"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
}

// SkillScoresToResponse converts domain skill scores for the wire.
func SkillScoresToResponse(scores []domain.SkillScore) []SkillScoreResponse {
	out := make([]SkillScoreResponse, 0, len(scores))
	for _, s := range scores {
		out = append(out, SkillScoreResponse{
			Skill:      s.Skill,
			Correct:    s.Correct,
			Total:      s.Total,
			Percentage: s.Percentage,
		})
	}
	return out
}

// CareerMatchesToResponse converts domain career matches for the wire.
func CareerMatchesToResponse(matches []domain.CareerMatch) []CareerMatchResponse {
	out := make([]CareerMatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, CareerMatchResponse{
			CareerID:        m.CareerID,
			CareerName:      m.CareerName,
			MatchPercentage: m.MatchPercentage,
			MatchingSkills:  m.MatchingSkills,
			MissingSkills:   m.MissingSkills,
			SalaryRange:     m.SalaryRange,
		})
	}
	return out
}

// RecommendationsToResponse converts domain recommendations for the wire.
func RecommendationsToResponse(recs []domain.Recommendation) RecommendationsResponse {
	out := make([]RecommendationResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, RecommendationResponse{
			UserID:          rec.UserID,
			CareerID:        rec.CareerID,
			MatchPercentage: rec.MatchPercentage,
			Reasoning:       rec.Reasoning,
			Strengths:       rec.Strengths,
			AreasToDevelop:  rec.AreasToDevelop,
			CreatedAt:       rec.CreatedAt,
		})
	}
	return RecommendationsResponse{Recommendations: out}
}

// SessionToResponse converts a domain session for the wire, withholding
// correct answers.
func SessionToResponse(session *domain.QuizSession) SessionResponse {
	questions := make([]QuestionResponse, 0, len(session.Questions))
	for _, q := range session.Questions {
		questions = append(questions, QuestionResponse{
			ID:            q.ID,
			Text:          q.Text,
			Type:          string(q.Type),
			Options:       q.Options,
			SkillCategory: q.SkillCategory,
		})
	}
	return SessionResponse{
		ID:          session.ID,
		UserID:      session.UserID,
		Questions:   questions,
		Completed:   session.Completed,
		CreatedAt:   session.CreatedAt,
		CompletedAt: session.CompletedAt,
	}
}

// ToDomainAnswers converts the submission payload to domain answers.
func (r *SubmitQuizRequest) ToDomainAnswers() []domain.QuizAnswer {
	answers := make([]domain.QuizAnswer, 0, len(r.Answers))
	for _, a := range r.Answers {
		answers = append(answers, domain.QuizAnswer{QuestionID: a.QuestionID, Text: a.Answer})
	}
	return answers
}
