package valuation

import "github.com/fairplay-nil/backend/internal/contracts"

// dealBand holds the base dollar value and spread multiplier for one tier
type dealBand struct {
	Base       float64
	Multiplier float64
}

// dealBands is the tier-indexed deal value ladder. The low bound is
// the base scaled by position within the tier band; the high bound is
// the base times the spread multiplier with the same scaling.
var dealBands = map[contracts.Tier]dealBand{
	contracts.TierEmerging:    {Base: 500, Multiplier: 1.2},
	contracts.TierDeveloping:  {Base: 1500, Multiplier: 1.5},
	contracts.TierEstablished: {Base: 5000, Multiplier: 2.0},
	contracts.TierElite:       {Base: 25000, Multiplier: 2.5},
}

// DealValues estimates the dollar range an athlete with the given
// score can command. Scores deeper into a tier band scale the range
// up to 1.5x the band base.
func DealValues(score int) (low, high float64) {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	tier := contracts.TierForScore(score)
	band := dealBands[tier]

	bandMin, bandWidth := tierBandBounds(tier)
	position := float64(score-bandMin) / float64(bandWidth)
	scale := 1 + position*0.5

	return band.Base * scale, band.Base * band.Multiplier * scale
}

// tierBandBounds returns the lower bound and width of a tier's score band
func tierBandBounds(tier contracts.Tier) (min, width int) {
	for _, band := range contracts.TierBands {
		if band.Tier == tier {
			return band.Min, band.Max - band.Min
		}
	}
	return 0, 100
}
