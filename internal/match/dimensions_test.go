package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fairplay-nil/backend/internal/contracts"
)

func TestSportScore(t *testing.T) {
	athlete := &contracts.AthleteProfile{Sport: "basketball"}

	// Empty target set matches everyone
	assert.Equal(t, 100.0, SportScore(athlete, &contracts.CampaignCriteria{}))

	targeted := &contracts.CampaignCriteria{Sports: []string{"basketball", "soccer"}}
	assert.Equal(t, 100.0, SportScore(athlete, targeted))

	missed := &contracts.CampaignCriteria{Sports: []string{"golf"}}
	assert.Equal(t, 0.0, SportScore(athlete, missed))
}

func TestFollowerScoreInclusiveBoundaries(t *testing.T) {
	criteria := &contracts.CampaignCriteria{FollowerMin: 100_000, FollowerMax: 500_000}

	// Exact boundary values score full credit
	assert.Equal(t, 100.0, FollowerScore(100_000, criteria))
	assert.Equal(t, 100.0, FollowerScore(500_000, criteria))
	assert.Equal(t, 100.0, FollowerScore(250_000, criteria))
}

func TestFollowerScoreDecayBelowMin(t *testing.T) {
	criteria := &contracts.CampaignCriteria{FollowerMin: 100_000, FollowerMax: 500_000}

	// Halfway into the below-min tolerance band
	mid := FollowerScore(75_000, criteria)
	assert.InDelta(t, 50.0, mid, 0.01)

	// 50% below the minimum scores zero
	assert.Equal(t, 0.0, FollowerScore(50_000, criteria))
	assert.Equal(t, 0.0, FollowerScore(10_000, criteria))

	// Just inside the band scores above zero
	assert.Greater(t, FollowerScore(50_001, criteria), 0.0)
}

func TestFollowerScoreDecayAboveMax(t *testing.T) {
	criteria := &contracts.CampaignCriteria{FollowerMin: 100_000, FollowerMax: 500_000}

	// 200% above the maximum scores zero
	assert.Equal(t, 0.0, FollowerScore(1_500_000, criteria))
	assert.Equal(t, 0.0, FollowerScore(2_000_000, criteria))

	// Halfway into the above-max band
	mid := FollowerScore(1_000_000, criteria)
	assert.InDelta(t, 50.0, mid, 0.01)
}

func TestFollowerScoreNoRange(t *testing.T) {
	assert.Equal(t, 100.0, FollowerScore(0, &contracts.CampaignCriteria{}))
	assert.Equal(t, 100.0, FollowerScore(10_000_000, &contracts.CampaignCriteria{}))

	// Min only, unbounded max
	minOnly := &contracts.CampaignCriteria{FollowerMin: 1000}
	assert.Equal(t, 100.0, FollowerScore(1000, minOnly))
	assert.Equal(t, 100.0, FollowerScore(50_000_000, minOnly))
	assert.Equal(t, 0.0, FollowerScore(500, minOnly))
}

func TestGeographyScore(t *testing.T) {
	athlete := &contracts.AthleteProfile{Region: "CA"}

	assert.Equal(t, 100.0, GeographyScore(athlete, &contracts.CampaignCriteria{}))
	assert.Equal(t, 100.0, GeographyScore(athlete, &contracts.CampaignCriteria{Regions: []string{"CA", "TX"}}))
	assert.Equal(t, 0.0, GeographyScore(athlete, &contracts.CampaignCriteria{Regions: []string{"NY"}}))
}

func TestTierScore(t *testing.T) {
	// Empty target set matches every tier
	assert.Equal(t, 100.0, TierScore(contracts.TierEmerging, &contracts.CampaignCriteria{}))

	criteria := &contracts.CampaignCriteria{Tiers: []contracts.Tier{contracts.TierEstablished}}

	assert.Equal(t, 100.0, TierScore(contracts.TierEstablished, criteria))
	// Adjacent tiers earn partial credit
	assert.Equal(t, 50.0, TierScore(contracts.TierDeveloping, criteria))
	assert.Equal(t, 50.0, TierScore(contracts.TierElite, criteria))
	// Two bands away earns nothing
	assert.Equal(t, 0.0, TierScore(contracts.TierEmerging, criteria))
}

func TestBudgetScore(t *testing.T) {
	// No ceiling declared
	assert.Equal(t, 100.0, BudgetScore(5000, 10000, &contracts.CampaignCriteria{}))

	criteria := &contracts.CampaignCriteria{PerAthleteBudget: 5000}

	// Deal range overlaps the ceiling
	assert.Equal(t, 100.0, BudgetScore(3000, 8000, criteria))
	assert.Equal(t, 100.0, BudgetScore(5000, 12000, criteria))

	// Low bound above the ceiling scales proportionally
	assert.InDelta(t, 50.0, BudgetScore(10000, 20000, criteria), 0.01)
	assert.InDelta(t, 25.0, BudgetScore(20000, 40000, criteria), 0.01)

	// Zero deal range overlaps any ceiling
	assert.Equal(t, 100.0, BudgetScore(0, 0, criteria))
}

func TestDimensionsAreClamped(t *testing.T) {
	criteria := &contracts.CampaignCriteria{
		Sports:           []string{"golf"},
		FollowerMin:      100_000,
		FollowerMax:      200_000,
		Regions:          []string{"NY"},
		Tiers:            []contracts.Tier{contracts.TierElite},
		PerAthleteBudget: 100,
	}
	athlete := &contracts.AthleteProfile{Sport: "chess", Region: "AK"}

	scores := []float64{
		SportScore(athlete, criteria),
		FollowerScore(0, criteria),
		GeographyScore(athlete, criteria),
		TierScore(contracts.TierEmerging, criteria),
		BudgetScore(1_000_000, 2_000_000, criteria),
	}
	for i, score := range scores {
		assert.GreaterOrEqual(t, score, 0.0, "dimension %d", i)
		assert.LessOrEqual(t, score, 100.0, "dimension %d", i)
	}
}
