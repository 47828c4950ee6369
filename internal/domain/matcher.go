package domain

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"careerpath/internal/util"
)

// Defaults for MatchConfig.
const (
	DefaultMatchThreshold = 60.0
	DefaultTopN           = 5
	DefaultMinMatchFloor  = 10.0
)

// MatchConfig tunes career matching.
type MatchConfig struct {
	// MatchThreshold is the minimum skill percentage for a skill to count
	// as possessed.
	MatchThreshold float64
	// TopN caps the number of returned matches.
	TopN int
	// MinMatchFloor discards careers matching below this percentage.
	MinMatchFloor float64
}

// DefaultMatchConfig returns the standard matching configuration.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		MatchThreshold: DefaultMatchThreshold,
		TopN:           DefaultTopN,
		MinMatchFloor:  DefaultMinMatchFloor,
	}
}

// normalize fills zero values with defaults so a partially populated config
// behaves predictably.
func (c MatchConfig) normalize() MatchConfig {
	if c.MatchThreshold <= 0 {
		c.MatchThreshold = DefaultMatchThreshold
	}
	if c.TopN <= 0 {
		c.TopN = DefaultTopN
	}
	if c.MinMatchFloor < 0 {
		c.MinMatchFloor = DefaultMinMatchFloor
	}
	return c
}

// MatchCareers compares skill scores against each career's required-skill
// set and returns ranked matches. Careers with an empty required-skill set
// are excluded entirely, which also guards the percentage division.
//
// Per-career evaluation is independent and runs concurrently; results are
// collected by catalog index and then sorted deterministically (descending
// match percentage, ties broken by ascending name then ascending id), so
// parallel and serial execution produce identical output.
func MatchCareers(ctx context.Context, skillScores []SkillScore, catalog []Career, cfg MatchConfig) ([]CareerMatch, error) {
	cfg = cfg.normalize()

	possessed := make(map[string]float64, len(skillScores))
	for _, s := range skillScores {
		possessed[strings.ToLower(s.Skill)] = s.Percentage
	}

	results := make([]*CareerMatch, len(catalog))
	g, ctx := errgroup.WithContext(ctx)
	for i := range catalog {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = evaluateCareer(&catalog[i], possessed, cfg.MatchThreshold)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := make([]CareerMatch, 0, len(catalog))
	for _, m := range results {
		if m != nil && m.MatchPercentage >= cfg.MinMatchFloor {
			matches = append(matches, *m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchPercentage != matches[j].MatchPercentage {
			return matches[i].MatchPercentage > matches[j].MatchPercentage
		}
		if matches[i].CareerName != matches[j].CareerName {
			return matches[i].CareerName < matches[j].CareerName
		}
		return matches[i].CareerID < matches[j].CareerID
	})

	if len(matches) > cfg.TopN {
		matches = matches[:cfg.TopN]
	}
	return matches, nil
}

// evaluateCareer scores a single career. It is read-only and side-effect
// free; skill lookup is case-insensitive and the matching/missing split
// preserves the catalog's required-skill order.
func evaluateCareer(career *Career, possessed map[string]float64, threshold float64) *CareerMatch {
	if !career.Matchable() {
		return nil
	}

	matching := make([]string, 0, len(career.RequiredSkills))
	missing := make([]string, 0, len(career.RequiredSkills))
	for _, skill := range career.RequiredSkills {
		if pct, ok := possessed[strings.ToLower(skill)]; ok && pct >= threshold {
			matching = append(matching, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	return &CareerMatch{
		CareerID:        career.ID,
		CareerName:      career.Name,
		MatchPercentage: util.RoundPercent(float64(len(matching)) / float64(len(career.RequiredSkills)) * 100),
		MatchingSkills:  matching,
		MissingSkills:   missing,
		SalaryRange:     career.SalaryRange,
	}
}
