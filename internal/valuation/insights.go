package valuation

import (
	"sort"

	"github.com/fairplay-nil/backend/internal/contracts"
)

// Sub-score thresholds for rationale text
const (
	strongThreshold = 80.0
	weakThreshold   = 40.0
)

// ImprovementHint names one concrete step an athlete can take to
// raise their valuation.
type ImprovementHint struct {
	Area     string `json:"area"`
	Action   string `json:"action"`
	Impact   string `json:"impact"` // "high", "medium", "low"
	Priority int    `json:"priority"`
}

// Insights holds the derived rationale attached to a valuation
type Insights struct {
	Strengths  []string          `json:"strengths"`
	Weaknesses []string          `json:"weaknesses"`
	Hints      []ImprovementHint `json:"hints,omitempty"`
}

// BuildInsights inspects the sub-scores behind a valuation and emits
// deterministic strength and weakness strings plus improvement hints.
func (c *Calculator) BuildInsights(athlete *contracts.AthleteProfile) *Insights {
	reach, engagement, credibility := c.Breakdown(athlete)

	out := &Insights{
		Strengths:  []string{},
		Weaknesses: []string{},
	}

	if reach >= strongThreshold {
		out.Strengths = append(out.Strengths, "Strong social media reach")
	} else if reach < weakThreshold {
		out.Weaknesses = append(out.Weaknesses, "Limited social media reach")
	}

	if engagement >= strongThreshold {
		out.Strengths = append(out.Strengths, "Highly engaged audience")
	} else if engagement < weakThreshold {
		out.Weaknesses = append(out.Weaknesses, "Low audience engagement")
	}

	if credibility >= strongThreshold {
		out.Strengths = append(out.Strengths, "Established credibility and recognition")
	} else if credibility < weakThreshold {
		out.Weaknesses = append(out.Weaknesses, "Few verified accounts or achievements")
	}

	out.Hints = c.buildHints(athlete, reach, engagement, credibility)
	return out
}

// buildHints proposes concrete growth actions for weak sub-signals,
// highest priority first.
func (c *Calculator) buildHints(athlete *contracts.AthleteProfile, reach, engagement, credibility float64) []ImprovementHint {
	var hints []ImprovementHint

	if reach < weakThreshold {
		hints = append(hints, ImprovementHint{
			Area:     "Social Media Growth",
			Action:   "Post consistently on your strongest platform, aiming for 3-5 posts per week.",
			Impact:   "high",
			Priority: 5,
		})
	}

	if engagement < weakThreshold {
		hints = append(hints, ImprovementHint{
			Area:     "Engagement Rate",
			Action:   "Increase audience interaction through stories, polls, and replying to comments.",
			Impact:   "high",
			Priority: 4,
		})
	}

	if len(athlete.SocialStats) < 3 {
		hints = append(hints, ImprovementHint{
			Area:     "Platform Diversity",
			Action:   "Expand to at least 3 major platforms.",
			Impact:   "medium",
			Priority: 3,
		})
	}

	if credibility < weakThreshold {
		hints = append(hints, ImprovementHint{
			Area:     "Credibility",
			Action:   "Pursue platform verification and document notable achievements on your profile.",
			Impact:   "medium",
			Priority: 3,
		})
	}

	sort.SliceStable(hints, func(i, j int) bool {
		return hints[i].Priority > hints[j].Priority
	})
	return hints
}
