package contracts

import "sort"

// Confidence classifies how strong a match result is
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// DimensionScores is the per-dimension breakdown behind a composite
// score. Each value is bounded to [0,100].
type DimensionScores struct {
	Sport          float64 `json:"sport"`
	Followers      float64 `json:"followers"`
	Geography      float64 `json:"geography"`
	Tier           float64 `json:"tier"`
	TraitAlignment float64 `json:"trait_alignment"`
	Budget         float64 `json:"budget"`
}

// MatchResult is the scored outcome for one athlete against one
// campaign. It lives only for the duration of a matchmaking call.
type MatchResult struct {
	AthleteID      string `json:"athlete_id"`
	AthleteName    string `json:"athlete_name,omitempty"`
	CompositeScore int    `json:"composite_score"` // 0-100

	ValuationScore int  `json:"valuation_score"`
	Tier           Tier `json:"tier"`

	// Breakdown is nil when the caller asked for the compact form.
	Breakdown     *DimensionScores `json:"breakdown,omitempty"`
	Confidence    Confidence       `json:"confidence"`
	Strengths     []string         `json:"strengths,omitempty"`
	Concerns      []string         `json:"concerns,omitempty"`
	MatchedTraits []string         `json:"matched_traits,omitempty"`

	OfferLow  float64 `json:"offer_low"`
	OfferHigh float64 `json:"offer_high"`
}

// MatchOptions controls one matchmaking invocation
type MatchOptions struct {
	MinScore         int  `json:"min_score"`         // exclude results below this composite
	MaxResults       int  `json:"max_results"`       // 0 means unbounded
	IncludeBreakdown bool `json:"include_breakdown"` // false returns the compact form
}

// MatchSummary is derived per batch, never stored
type MatchSummary struct {
	Returned     int                `json:"returned"`
	Skipped      int                `json:"skipped"` // candidates excluded by per-athlete failure
	AverageScore float64            `json:"average_score"`
	Confidence   map[Confidence]int `json:"confidence"`
}

// SortMatches orders results by composite score descending, then
// valuation score descending, then athlete ID ascending. The ordering
// is total, so repeated runs over the same inputs agree byte for byte.
func SortMatches(results []*MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].CompositeScore != results[j].CompositeScore {
			return results[i].CompositeScore > results[j].CompositeScore
		}
		if results[i].ValuationScore != results[j].ValuationScore {
			return results[i].ValuationScore > results[j].ValuationScore
		}
		return results[i].AthleteID < results[j].AthleteID
	})
}
