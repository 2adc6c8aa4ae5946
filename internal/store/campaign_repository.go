package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fairplay-nil/backend/internal/contracts"
)

// CampaignRepository implements contracts.CampaignRepository on Postgres
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `
	id, name, sports, follower_min, follower_max, regions, tiers,
	min_engagement_rate, brand_values, total_budget, per_athlete_budget
`

// GetByID retrieves one campaign's targeting criteria
func (r *CampaignRepository) GetByID(ctx context.Context, id string) (*contracts.CampaignCriteria, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

	campaign, err := scanCampaign(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign %s: %w", id, err)
	}
	return campaign, nil
}

// ListActive retrieves every campaign still accepting matches
func (r *CampaignRepository) ListActive(ctx context.Context) ([]*contracts.CampaignCriteria, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE active ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []*contracts.CampaignCriteria
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, rows.Err()
}

// Save upserts one campaign
func (r *CampaignRepository) Save(ctx context.Context, campaign *contracts.CampaignCriteria) error {
	tiers := make([]string, len(campaign.Tiers))
	for i, tier := range campaign.Tiers {
		tiers[i] = tier.String()
	}

	query := `
		INSERT INTO campaigns (id, name, sports, follower_min, follower_max, regions, tiers,
		                       min_engagement_rate, brand_values, total_budget, per_athlete_budget, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, true)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			sports = EXCLUDED.sports,
			follower_min = EXCLUDED.follower_min,
			follower_max = EXCLUDED.follower_max,
			regions = EXCLUDED.regions,
			tiers = EXCLUDED.tiers,
			min_engagement_rate = EXCLUDED.min_engagement_rate,
			brand_values = EXCLUDED.brand_values,
			total_budget = EXCLUDED.total_budget,
			per_athlete_budget = EXCLUDED.per_athlete_budget
	`

	_, err := r.pool.Exec(ctx, query,
		campaign.ID, campaign.Name, campaign.Sports, campaign.FollowerMin, campaign.FollowerMax,
		campaign.Regions, tiers, campaign.MinEngagementRate, campaign.BrandValues,
		campaign.TotalBudget, campaign.PerAthleteBudget,
	)
	if err != nil {
		return fmt.Errorf("failed to save campaign %s: %w", campaign.ID, err)
	}
	return nil
}

// scanCampaign reads one campaign row
func scanCampaign(row rowScanner) (*contracts.CampaignCriteria, error) {
	var (
		c         contracts.CampaignCriteria
		tierNames []string
	)

	err := row.Scan(
		&c.ID, &c.Name, &c.Sports, &c.FollowerMin, &c.FollowerMax, &c.Regions, &tierNames,
		&c.MinEngagementRate, &c.BrandValues, &c.TotalBudget, &c.PerAthleteBudget,
	)
	if err != nil {
		return nil, err
	}

	c.Tiers = make([]contracts.Tier, 0, len(tierNames))
	for _, name := range tierNames {
		tier, err := contracts.ParseTier(name)
		if err != nil {
			return nil, err
		}
		c.Tiers = append(c.Tiers, tier)
	}
	return &c, nil
}
