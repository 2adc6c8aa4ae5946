package match

import "github.com/fairplay-nil/backend/internal/contracts"

// Offer adjustment anchors: the base deal range is scaled by a factor
// interpolated linearly between these points.
const (
	offerFactorAtZero    = 0.85 // composite 0
	offerFactorAtMid     = 1.0  // composite 50
	offerFactorAtHundred = 1.1  // composite 100
)

// RecommendOffer adjusts an athlete's estimated deal range by the
// composite match score and clamps it under the campaign's per-athlete
// budget ceiling. The returned pair always satisfies low <= high: if
// clamping pushes the high bound below the low, both collapse to the
// clamped high.
func RecommendOffer(dealLow, dealHigh float64, composite int, criteria *contracts.CampaignCriteria) (low, high float64) {
	factor := offerFactor(composite)

	low = dealLow * factor
	high = dealHigh * factor

	if ceiling := criteria.PerAthleteBudget; ceiling > 0 && high > ceiling {
		high = ceiling
	}
	if low > high {
		low = high
	}
	return low, high
}

// offerFactor interpolates between the three anchor points
func offerFactor(composite int) float64 {
	if composite < 0 {
		composite = 0
	}
	if composite > 100 {
		composite = 100
	}

	c := float64(composite)
	if c <= 50 {
		return offerFactorAtZero + (offerFactorAtMid-offerFactorAtZero)*(c/50)
	}
	return offerFactorAtMid + (offerFactorAtHundred-offerFactorAtMid)*((c-50)/50)
}
