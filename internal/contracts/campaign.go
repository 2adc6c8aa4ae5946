package contracts

import (
	"errors"
	"fmt"
)

// ErrInvalidCriteria marks a campaign record rejected before scoring.
// Callers match it with errors.Is.
var ErrInvalidCriteria = errors.New("invalid campaign criteria")

// CampaignCriteria is an immutable snapshot of a campaign's targeting
// rules. Empty target sets mean "no preference".
type CampaignCriteria struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Sports      []string `json:"sports,omitempty"`
	FollowerMin int64    `json:"follower_min,omitempty"`
	FollowerMax int64    `json:"follower_max,omitempty"` // 0 means unbounded
	Regions     []string `json:"regions,omitempty"`
	Tiers       []Tier   `json:"tiers,omitempty"`

	MinEngagementRate float64  `json:"min_engagement_rate,omitempty"`
	BrandValues       []string `json:"brand_values,omitempty"`

	TotalBudget      float64 `json:"total_budget,omitempty"`
	PerAthleteBudget float64 `json:"per_athlete_budget,omitempty"` // 0 means no ceiling
}

// Validate rejects internally inconsistent criteria. It runs once per
// batch, before any per-athlete scoring.
func (c *CampaignCriteria) Validate() error {
	if c.FollowerMin < 0 {
		return fmt.Errorf("%w: follower_min %d is negative", ErrInvalidCriteria, c.FollowerMin)
	}
	if c.FollowerMax < 0 {
		return fmt.Errorf("%w: follower_max %d is negative", ErrInvalidCriteria, c.FollowerMax)
	}
	if c.FollowerMax > 0 && c.FollowerMin > c.FollowerMax {
		return fmt.Errorf("%w: follower_min %d exceeds follower_max %d",
			ErrInvalidCriteria, c.FollowerMin, c.FollowerMax)
	}
	if c.MinEngagementRate < 0 {
		return fmt.Errorf("%w: min_engagement_rate %.2f is negative", ErrInvalidCriteria, c.MinEngagementRate)
	}
	if c.TotalBudget < 0 {
		return fmt.Errorf("%w: total_budget %.2f is negative", ErrInvalidCriteria, c.TotalBudget)
	}
	if c.PerAthleteBudget < 0 {
		return fmt.Errorf("%w: per_athlete_budget %.2f is negative", ErrInvalidCriteria, c.PerAthleteBudget)
	}
	if c.TotalBudget > 0 && c.PerAthleteBudget > c.TotalBudget {
		return fmt.Errorf("%w: per_athlete_budget %.2f exceeds total_budget %.2f",
			ErrInvalidCriteria, c.PerAthleteBudget, c.TotalBudget)
	}
	for _, tier := range c.Tiers {
		if tier < TierEmerging || tier > TierElite {
			return fmt.Errorf("%w: unknown tier %d", ErrInvalidCriteria, tier)
		}
	}
	return nil
}

// WantsSport checks the target-sport set; empty set matches any sport
func (c *CampaignCriteria) WantsSport(sport string) bool {
	if len(c.Sports) == 0 {
		return true
	}
	for _, s := range c.Sports {
		if s == sport {
			return true
		}
	}
	return false
}

// WantsRegion checks the target-region set; empty set matches any region
func (c *CampaignCriteria) WantsRegion(region string) bool {
	if len(c.Regions) == 0 {
		return true
	}
	for _, r := range c.Regions {
		if r == region {
			return true
		}
	}
	return false
}

// WantsTier checks the target-tier set; empty set matches any tier
func (c *CampaignCriteria) WantsTier(tier Tier) bool {
	if len(c.Tiers) == 0 {
		return true
	}
	for _, t := range c.Tiers {
		if t == tier {
			return true
		}
	}
	return false
}
