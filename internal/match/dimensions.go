package match

import "github.com/fairplay-nil/backend/internal/contracts"

// The five criteria dimensions. Each is bounded to [0,100], depends
// only on its own inputs, and never reads another dimension's result.

// Follower tolerance band: the sub-score decays linearly to 0 at 50%
// below the minimum and 200% above the maximum.
const (
	followerBelowTolerance = 0.5
	followerAboveTolerance = 2.0
)

// Tier near-miss credit for a tier one band outside the target set
const tierPartialCredit = 50.0

// SportScore gives full credit when the athlete's sport is targeted
// or the campaign targets no sport. No partial credit.
func SportScore(athlete *contracts.AthleteProfile, criteria *contracts.CampaignCriteria) float64 {
	if criteria.WantsSport(athlete.Sport) {
		return 100
	}
	return 0
}

// FollowerScore gives full credit inside [min,max] inclusive, decaying
// linearly outside the range so a near-miss is not a hard cliff.
func FollowerScore(followers int64, criteria *contracts.CampaignCriteria) float64 {
	min := criteria.FollowerMin
	max := criteria.FollowerMax

	if min <= 0 && max <= 0 {
		return 100
	}

	if followers < min {
		// Zero at 50% below the minimum
		floor := float64(min) * followerBelowTolerance
		if float64(followers) <= floor {
			return 0
		}
		return (float64(followers) - floor) / (float64(min) - floor) * 100
	}

	if max > 0 && followers > max {
		// Zero at 200% above the maximum
		ceiling := float64(max) * (1 + followerAboveTolerance)
		if float64(followers) >= ceiling {
			return 0
		}
		return (ceiling - float64(followers)) / (ceiling - float64(max)) * 100
	}

	return 100
}

// GeographyScore gives full credit when the athlete's region is
// targeted or the campaign targets no region.
func GeographyScore(athlete *contracts.AthleteProfile, criteria *contracts.CampaignCriteria) float64 {
	if criteria.WantsRegion(athlete.Region) {
		return 100
	}
	return 0
}

// TierScore gives full credit for a targeted tier, partial credit for
// a tier exactly one band outside the target set, zero otherwise.
func TierScore(tier contracts.Tier, criteria *contracts.CampaignCriteria) float64 {
	if criteria.WantsTier(tier) {
		return 100
	}
	for _, target := range criteria.Tiers {
		if tier.Distance(target) == 1 {
			return tierPartialCredit
		}
	}
	return 0
}

// BudgetScore gives full credit when the athlete's estimated deal
// range overlaps the per-athlete budget ceiling, scaling down
// proportionally when even the low bound exceeds it.
func BudgetScore(dealLow, dealHigh float64, criteria *contracts.CampaignCriteria) float64 {
	ceiling := criteria.PerAthleteBudget
	if ceiling <= 0 {
		return 100
	}
	if dealLow <= ceiling {
		return 100
	}
	score := ceiling / dealLow * 100
	if score < 0 {
		return 0
	}
	return score
}
