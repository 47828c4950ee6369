package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// StrengthThreshold is the skill percentage at or above which a matched
// skill counts as a strength rather than an area to develop.
const StrengthThreshold = 80.0

// BuildRecommendations turns ranked career matches plus skill scores into
// human-readable recommendations. It is a pure function of its inputs: the
// same matches, scores and timestamp always produce identical output.
func BuildRecommendations(userID string, matches []CareerMatch, skillScores []SkillScore, cfg MatchConfig, now time.Time) []Recommendation {
	cfg = cfg.normalize()

	percentages := make(map[string]float64, len(skillScores))
	for _, s := range skillScores {
		percentages[strings.ToLower(s.Skill)] = s.Percentage
	}

	recommendations := make([]Recommendation, 0, len(matches))
	for _, m := range matches {
		strengths := make([]string, 0, len(m.MatchingSkills))
		areas := make([]string, 0, len(m.MatchingSkills)+len(m.MissingSkills))
		areas = append(areas, m.MissingSkills...)
		for _, skill := range m.MatchingSkills {
			if percentages[strings.ToLower(skill)] >= StrengthThreshold {
				strengths = append(strengths, skill)
			} else {
				areas = append(areas, skill)
			}
		}

		recommendations = append(recommendations, Recommendation{
			UserID:          userID,
			CareerID:        m.CareerID,
			MatchPercentage: m.MatchPercentage,
			Reasoning:       reasoningFor(&m),
			Strengths:       strengths,
			AreasToDevelop:  areas,
			CreatedAt:       now,
		})
	}
	return recommendations
}

// reasoningFor renders the fixed recommendation template. The wording is
// interchangeable; the inputs (matched count, required count, career name,
// match percentage) are not.
func reasoningFor(m *CareerMatch) string {
	matched := len(m.MatchingSkills)
	required := matched + len(m.MissingSkills)
	return fmt.Sprintf("You scored strongly in %d of %d required skills for %s, making you a %s%% match.",
		matched, required, m.CareerName, strconv.FormatFloat(m.MatchPercentage, 'f', -1, 64))
}
