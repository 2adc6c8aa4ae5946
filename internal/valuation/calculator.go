package valuation

import (
	"math"
	"time"

	"github.com/fairplay-nil/backend/internal/contracts"
	"github.com/fairplay-nil/backend/pkg/logger"
)

// Reference ceilings for signal normalization
const (
	// 1,000,000 followers maps to a reach sub-score of 100
	reachCeiling = 1_000_000

	// 10% average engagement maps to an engagement sub-score of 100
	engagementCeiling = 10.0

	// Credibility increments and caps
	verifiedPoints    = 20.0
	verifiedCap       = 60.0
	achievementPoints = 8.0
	achievementCap    = 40.0
)

// WeightConfig defines sub-signal weights for the fair market value score
type WeightConfig struct {
	Reach       float64 // log-scaled total followers (default: 0.45)
	Engagement  float64 // average engagement rate (default: 0.35)
	Credibility float64 // verified accounts and achievements (default: 0.20)
}

// DefaultWeightConfig returns the canonical weight table
func DefaultWeightConfig() WeightConfig {
	return WeightConfig{
		Reach:       0.45,
		Engagement:  0.35,
		Credibility: 0.20,
	}
	// Total: 100%
}

// ValidateWeights checks if weights sum to 1.0
func (w *WeightConfig) ValidateWeights() bool {
	sum := w.Reach + w.Engagement + w.Credibility
	// Allow small floating point error
	return sum >= 0.99 && sum <= 1.01
}

// Calculator computes fair market value scores from social metrics.
// It is pure: no I/O, no shared state, safe for concurrent use.
type Calculator struct {
	weights WeightConfig
	logger  *logger.Logger
}

// NewCalculator creates a new calculator
func NewCalculator(weights WeightConfig, logger *logger.Logger) *Calculator {
	return &Calculator{
		weights: weights,
		logger:  logger,
	}
}

// Calculate produces a valuation record for one athlete. An athlete
// with no social data anywhere scores 0 with tier emerging; missing
// data never produces an error.
func (c *Calculator) Calculate(athlete *contracts.AthleteProfile, now time.Time) *contracts.ValuationRecord {
	reach := c.reachScore(athlete.FollowerCount())
	engagement := c.engagementScore(athlete.EngagementRate())
	credibility := c.credibilityScore(athlete.VerifiedCount(), len(athlete.Achievements))

	weighted := reach*c.weights.Reach +
		engagement*c.weights.Engagement +
		credibility*c.weights.Credibility

	score := int(math.Round(weighted))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	tier := contracts.TierForScore(score)
	low, high := DealValues(score)

	return &contracts.ValuationRecord{
		AthleteID:     athlete.ID,
		Score:         score,
		Tier:          tier,
		Percentile:    scalePercentile(score),
		DealValueLow:  low,
		DealValueHigh: high,
		CalculatedAt:  now,
	}
}

// Breakdown returns the three sub-scores behind a valuation, used by
// rationale text generation and the profile API.
func (c *Calculator) Breakdown(athlete *contracts.AthleteProfile) (reach, engagement, credibility float64) {
	return c.reachScore(athlete.FollowerCount()),
		c.engagementScore(athlete.EngagementRate()),
		c.credibilityScore(athlete.VerifiedCount(), len(athlete.Achievements))
}

// reachScore log-scales total followers against the reference ceiling
func (c *Calculator) reachScore(followers int64) float64 {
	if followers <= 0 {
		return 0
	}
	score := math.Log10(1+float64(followers)) / math.Log10(1+reachCeiling) * 100
	return clamp(score)
}

// engagementScore normalizes the average rate against the ceiling
func (c *Calculator) engagementScore(rate float64) float64 {
	if rate <= 0 {
		return 0
	}
	return clamp(rate / engagementCeiling * 100)
}

// credibilityScore sums fixed increments for verified platforms and
// achievements, each capped separately.
func (c *Calculator) credibilityScore(verifiedCount, achievements int) float64 {
	verified := math.Min(verifiedCap, float64(verifiedCount)*verifiedPoints)
	achieved := math.Min(achievementCap, float64(achievements)*achievementPoints)
	return clamp(verified + achieved)
}

// scalePercentile estimates a percentile from the score alone, used
// when no comparison population is available.
func scalePercentile(score int) float64 {
	return math.Min(99, math.Round(float64(score)/100*95))
}

// PercentileRank computes the percent of population scores strictly
// below the given score. Falls back to the score-scaled estimate for
// an empty population.
func PercentileRank(score int, population []int) float64 {
	if len(population) == 0 {
		return scalePercentile(score)
	}
	below := 0
	for _, s := range population {
		if s < score {
			below++
		}
	}
	return math.Round(float64(below) / float64(len(population)) * 100)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
