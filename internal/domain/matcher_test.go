package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSkills() []SkillScore {
	return []SkillScore{
		{Skill: "Python", Correct: 2, Total: 2, Percentage: 100},
		{Skill: "SQL", Correct: 1, Total: 1, Percentage: 100},
		{Skill: "Statistics", Correct: 1, Total: 2, Percentage: 50},
	}
}

func TestMatchCareers_PartialMatch(t *testing.T) {
	catalog := []Career{
		{ID: "c1", Name: "Data Analyst", RequiredSkills: []string{"Python", "SQL", "Excel"}, SalaryRange: "$60k-$90k"},
	}

	matches, err := MatchCareers(context.Background(), testSkills(), catalog, DefaultMatchConfig())
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, 66.67, m.MatchPercentage)
	assert.Equal(t, []string{"Python", "SQL"}, m.MatchingSkills)
	assert.Equal(t, []string{"Excel"}, m.MissingSkills)
	assert.Equal(t, "$60k-$90k", m.SalaryRange)
}

func TestMatchCareers_ThresholdGovernsPossession(t *testing.T) {
	catalog := []Career{
		{ID: "c1", Name: "Data Analyst", RequiredSkills: []string{"Statistics"}},
	}

	// Statistics is 50%, below the default threshold of 60.
	matches, err := MatchCareers(context.Background(), testSkills(), catalog, DefaultMatchConfig())
	require.NoError(t, err)
	assert.Empty(t, matches, "0% falls below the min match floor")

	cfg := DefaultMatchConfig()
	cfg.MatchThreshold = 50
	matches, err = MatchCareers(context.Background(), testSkills(), catalog, cfg)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 100.0, matches[0].MatchPercentage)
}

func TestMatchCareers_SkillLookupCaseInsensitive(t *testing.T) {
	catalog := []Career{
		{ID: "c1", Name: "Backend Engineer", RequiredSkills: []string{"python", "sql"}},
	}

	matches, err := MatchCareers(context.Background(), testSkills(), catalog, DefaultMatchConfig())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 100.0, matches[0].MatchPercentage)
	assert.Equal(t, []string{"python", "sql"}, matches[0].MatchingSkills, "catalog spelling preserved")
}

func TestMatchCareers_EmptyRequiredSkillsExcluded(t *testing.T) {
	catalog := []Career{
		{ID: "c1", Name: "Generalist", RequiredSkills: nil},
		{ID: "c2", Name: "Data Analyst", RequiredSkills: []string{"Python"}},
	}

	matches, err := MatchCareers(context.Background(), testSkills(), catalog, DefaultMatchConfig())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "c2", matches[0].CareerID)
}

func TestMatchCareers_SortingAndTieBreaks(t *testing.T) {
	catalog := []Career{
		{ID: "c3", Name: "Zeta Analyst", RequiredSkills: []string{"Python", "Excel"}},
		{ID: "c2", Name: "Analyst", RequiredSkills: []string{"Python", "Excel"}},
		{ID: "c9", Name: "Analyst", RequiredSkills: []string{"SQL", "Excel"}},
		{ID: "c1", Name: "Data Engineer", RequiredSkills: []string{"Python", "SQL"}},
	}

	matches, err := MatchCareers(context.Background(), testSkills(), catalog, DefaultMatchConfig())
	require.NoError(t, err)
	require.Len(t, matches, 4)

	// 100% first, then 50% ties ordered by name then id.
	assert.Equal(t, "c1", matches[0].CareerID)
	assert.Equal(t, "c2", matches[1].CareerID)
	assert.Equal(t, "c9", matches[2].CareerID)
	assert.Equal(t, "c3", matches[3].CareerID)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].MatchPercentage, matches[i].MatchPercentage)
	}
}

func TestMatchCareers_FloorAndTopN(t *testing.T) {
	catalog := []Career{
		{ID: "c1", Name: "A", RequiredSkills: []string{"Python"}},
		{ID: "c2", Name: "B", RequiredSkills: []string{"Python", "SQL"}},
		{ID: "c3", Name: "C", RequiredSkills: []string{"Go", "Rust", "C", "Zig", "Lisp", "Perl", "Ada", "COBOL", "Fortran", "Haskell", "Java", "Kotlin"}},
	}

	cfg := DefaultMatchConfig()
	cfg.TopN = 1
	matches, err := MatchCareers(context.Background(), testSkills(), catalog, cfg)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "A", matches[0].CareerName)

	cfg.TopN = 10
	matches, err = MatchCareers(context.Background(), testSkills(), catalog, cfg)
	require.NoError(t, err)
	require.Len(t, matches, 2, "0% career discarded by the floor")
}

func TestMatchCareers_Invariants(t *testing.T) {
	catalog := []Career{
		{ID: "c1", Name: "Data Analyst", RequiredSkills: []string{"Python", "SQL", "Excel"}},
		{ID: "c2", Name: "Backend Engineer", RequiredSkills: []string{"Python", "Go"}},
	}
	cfg := DefaultMatchConfig()
	cfg.MinMatchFloor = 0

	matches, err := MatchCareers(context.Background(), testSkills(), catalog, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	required := map[string][]string{"c1": catalog[0].RequiredSkills, "c2": catalog[1].RequiredSkills}
	for _, m := range matches {
		assert.GreaterOrEqual(t, m.MatchPercentage, 0.0)
		assert.LessOrEqual(t, m.MatchPercentage, 100.0)

		union := append(append([]string{}, m.MatchingSkills...), m.MissingSkills...)
		assert.ElementsMatch(t, required[m.CareerID], union)
		for _, skill := range m.MatchingSkills {
			assert.NotContains(t, m.MissingSkills, skill)
		}
	}
}

func TestMatchCareers_Deterministic(t *testing.T) {
	catalog := make([]Career, 0, 40)
	names := []string{"Analyst", "Engineer", "Scientist", "Architect"}
	for i := 0; i < 40; i++ {
		catalog = append(catalog, Career{
			ID:             string(rune('a'+i%26)) + "x",
			Name:           names[i%len(names)],
			RequiredSkills: []string{"Python", "SQL", "Excel"}[:1+i%3],
		})
	}
	cfg := DefaultMatchConfig()
	cfg.TopN = 40
	cfg.MinMatchFloor = 0

	first, err := MatchCareers(context.Background(), testSkills(), catalog, cfg)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := MatchCareers(context.Background(), testSkills(), catalog, cfg)
		require.NoError(t, err)
		assert.Equal(t, first, again, "parallel evaluation must not leak arrival order")
	}
}
