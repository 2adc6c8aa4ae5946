package alignment

import "strings"

// Alignment scores sit on a 1-5 scale; the composite scorer
// normalizes them to 0-100.
const (
	// MinScore and MaxScore bound the step function output
	MinScore = 1.0
	MaxScore = 5.0

	// NeutralNoTraits signals "insufficient athlete data", distinct
	// from a genuine zero-match score of 1.
	NeutralNoTraits = 3.0

	// NeutralNoValues signals "campaign declared no preference",
	// a stronger neutral than missing athlete data.
	NeutralNoValues = 4.0
)

// Result pairs the numeric alignment score with the matched traits
// used later as rationale strings.
type Result struct {
	Score         float64  `json:"score"` // 1-5
	MatchedTraits []string `json:"matched_traits"`
}

// Score evaluates how well an athlete's top traits line up with a
// campaign's declared brand values. Both lists may be empty; each
// empty case maps to its own fixed neutral score.
func Score(athleteTraits, brandValues []string) Result {
	if len(brandValues) == 0 {
		return Result{Score: NeutralNoValues, MatchedTraits: []string{}}
	}
	if len(athleteTraits) == 0 {
		return Result{Score: NeutralNoTraits, MatchedTraits: []string{}}
	}

	// Union of traits associated with any declared brand value
	wanted := make(map[string]bool)
	for _, value := range brandValues {
		for _, trait := range TraitsForBrandValue(normalize(value)) {
			wanted[trait] = true
		}
	}

	// Collect athlete traits in that union, deduplicated, keeping
	// first-encountered order.
	matched := []string{}
	seen := make(map[string]bool)
	for _, trait := range athleteTraits {
		code := normalize(trait)
		if wanted[code] && !seen[code] {
			matched = append(matched, code)
			seen[code] = true
		}
	}

	return Result{
		Score:         stepScore(len(matched)),
		MatchedTraits: matched,
	}
}

// stepScore maps the matched-trait count onto the 1-5 scale
func stepScore(matches int) float64 {
	switch {
	case matches <= 0:
		return 1
	case matches == 1:
		return 2
	case matches == 2:
		return 3
	case matches == 3:
		return 4
	default:
		return 5
	}
}

// Normalized100 rescales a 1-5 alignment score onto 0-100 for the
// composite scorer.
func (r Result) Normalized100() float64 {
	return (r.Score - MinScore) / (MaxScore - MinScore) * 100
}

func normalize(tag string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(tag)), " ", "_")
}
