package match

import (
	"math"

	"github.com/fairplay-nil/backend/internal/contracts"
)

// Confidence thresholds on the composite score
const (
	confidenceHighMin   = 75
	confidenceMediumMin = 50
)

// Sub-score thresholds for rationale text generation
const (
	strengthThreshold = 80.0
	concernThreshold  = 40.0
)

// WeightConfig defines dimension weights for the composite score
type WeightConfig struct {
	Sport          float64 // sport match (default: 0.20)
	Followers      float64 // follower-range fit (default: 0.20)
	Geography      float64 // region fit (default: 0.10)
	Tier           float64 // valuation tier fit (default: 0.15)
	TraitAlignment float64 // brand-value alignment (default: 0.20)
	Budget         float64 // deal-range vs budget fit (default: 0.15)
}

// DefaultWeightConfig returns the canonical weight table
func DefaultWeightConfig() WeightConfig {
	return WeightConfig{
		Sport:          0.20,
		Followers:      0.20,
		Geography:      0.10,
		Tier:           0.15,
		TraitAlignment: 0.20,
		Budget:         0.15,
	}
	// Total: 100%
}

// ValidateWeights checks if weights sum to 1.0
func (w *WeightConfig) ValidateWeights() bool {
	sum := w.Sport + w.Followers + w.Geography + w.Tier + w.TraitAlignment + w.Budget
	// Allow small floating point error
	return sum >= 0.99 && sum <= 1.01
}

// dimensionLabels drive deterministic strength and concern strings
var dimensionLabels = []struct {
	name     string
	strength string
	concern  string
	score    func(*contracts.DimensionScores) float64
}{
	{"sport", "Sport matches campaign target", "Sport outside campaign target",
		func(d *contracts.DimensionScores) float64 { return d.Sport }},
	{"followers", "Follower count fits campaign range", "Follower count far from campaign range",
		func(d *contracts.DimensionScores) float64 { return d.Followers }},
	{"geography", "Located in a target region", "Outside target regions",
		func(d *contracts.DimensionScores) float64 { return d.Geography }},
	{"tier", "Valuation tier fits campaign target", "Valuation tier outside campaign target",
		func(d *contracts.DimensionScores) float64 { return d.Tier }},
	{"trait_alignment", "Strong brand-value alignment", "Weak brand-value alignment",
		func(d *contracts.DimensionScores) float64 { return d.TraitAlignment }},
	{"budget", "Deal range fits campaign budget", "Deal range exceeds campaign budget",
		func(d *contracts.DimensionScores) float64 { return d.Budget }},
}

// CompositeScore combines the six dimension sub-scores into a single
// 0-100 integer. The same sub-scores always produce the same composite.
func (w WeightConfig) CompositeScore(d *contracts.DimensionScores) int {
	weighted := d.Sport*w.Sport +
		d.Followers*w.Followers +
		d.Geography*w.Geography +
		d.Tier*w.Tier +
		d.TraitAlignment*w.TraitAlignment +
		d.Budget*w.Budget

	score := int(math.Round(weighted))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ConfidenceFor derives the coarse confidence label from a composite
// score. Thresholds are inclusive and fixed so results stay
// comparable across campaigns.
func ConfidenceFor(composite int) contracts.Confidence {
	switch {
	case composite >= confidenceHighMin:
		return contracts.ConfidenceHigh
	case composite >= confidenceMediumMin:
		return contracts.ConfidenceMedium
	default:
		return contracts.ConfidenceLow
	}
}

// Rationale re-inspects each sub-score against fixed thresholds and
// emits ordered strength and concern strings.
func Rationale(d *contracts.DimensionScores) (strengths, concerns []string) {
	strengths = []string{}
	concerns = []string{}
	for _, dim := range dimensionLabels {
		score := dim.score(d)
		if score >= strengthThreshold {
			strengths = append(strengths, dim.strength)
		} else if score < concernThreshold {
			concerns = append(concerns, dim.concern)
		}
	}
	return strengths, concerns
}
