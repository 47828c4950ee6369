package domain

import (
	"strings"

	"careerpath/internal/util"
)

// AggregateSkills groups scored answers by skill category into percentage
// scores. Output order follows the first appearance of each category in the
// session's question sequence, independent of map iteration order.
// Categories with no answered question are omitted entirely, so a zero
// total can never reach the percentage division.
func AggregateSkills(questions []QuizQuestion, scored []ScoredAnswer) []SkillScore {
	type tally struct {
		correct int
		total   int
	}
	tallies := make(map[string]*tally, len(questions))
	for _, sa := range scored {
		key := strings.ToLower(sa.SkillCategory)
		t, ok := tallies[key]
		if !ok {
			t = &tally{}
			tallies[key] = t
		}
		t.total++
		if sa.Correct {
			t.correct++
		}
	}

	scores := make([]SkillScore, 0, len(tallies))
	emitted := make(map[string]struct{}, len(tallies))
	for i := range questions {
		name := questions[i].SkillCategory
		key := strings.ToLower(name)
		if _, done := emitted[key]; done {
			continue
		}
		t, ok := tallies[key]
		if !ok {
			continue
		}
		emitted[key] = struct{}{}
		scores = append(scores, SkillScore{
			Skill:      name,
			Correct:    t.correct,
			Total:      t.total,
			Percentage: util.RoundPercent(float64(t.correct) / float64(t.total) * 100),
		})
	}
	return scores
}
