package domain

import "time"

// Career is a read-only catalog record. Only careers with a non-empty
// required-skill set participate in matching.
type Career struct {
	ID             string
	Name           string
	RequiredSkills []string
	Description    string
	SalaryRange    string
}

// Validate validates the career record
func (c *Career) Validate() error {
	if c.ID == "" {
		return NewValidationError("career ID is required")
	}
	if c.Name == "" {
		return NewValidationError("career name is required")
	}
	return nil
}

// Matchable reports whether the career can participate in matching.
func (c *Career) Matchable() bool {
	return len(c.RequiredSkills) > 0
}

// SkillScore is the per-skill tally derived from a scored submission.
// Percentage is round(Correct/Total*100, 2); Total is never zero because
// skills without answered questions are omitted by the aggregator.
type SkillScore struct {
	Skill      string
	Correct    int
	Total      int
	Percentage float64
}

// CareerMatch compares a user's skill scores against one career.
// MatchingSkills and MissingSkills are disjoint and their union equals the
// career's required skill set, preserving the catalog's skill order.
type CareerMatch struct {
	CareerID        string
	CareerName      string
	MatchPercentage float64
	MatchingSkills  []string
	MissingSkills   []string
	SalaryRange     string
}

// Recommendation is a derived artifact: reasoning plus strengths and gaps
// for one matched career. It is recomputed on demand and persisted only by
// the storage collaborator.
type Recommendation struct {
	UserID          string
	CareerID        string
	MatchPercentage float64
	Reasoning       string
	Strengths       []string
	AreasToDevelop  []string
	CreatedAt       time.Time
}
