package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fairplay-nil/backend/internal/contracts"
)

// AthleteRepository implements contracts.AthleteRepository on Postgres
type AthleteRepository struct {
	pool *pgxpool.Pool
}

// NewAthleteRepository creates a new athlete repository
func NewAthleteRepository(pool *pgxpool.Pool) *AthleteRepository {
	return &AthleteRepository{pool: pool}
}

// GetByID retrieves one athlete profile with its latest valuation
func (r *AthleteRepository) GetByID(ctx context.Context, id string) (*contracts.AthleteProfile, error) {
	query := `
		SELECT a.id, a.name, a.sport, a.region, a.school,
		       a.social_stats, a.achievements, a.top_traits,
		       v.score, v.tier, v.percentile, v.deal_value_low, v.deal_value_high,
		       v.calculated_at, v.daily_calc_count, v.last_calc_date
		FROM athletes a
		LEFT JOIN valuations v ON v.athlete_id = a.id
		WHERE a.id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)
	athlete, err := scanAthlete(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get athlete %s: %w", id, err)
	}
	return athlete, nil
}

// List retrieves a page of athlete profiles
func (r *AthleteRepository) List(ctx context.Context, limit, offset int) ([]*contracts.AthleteProfile, error) {
	query := `
		SELECT a.id, a.name, a.sport, a.region, a.school,
		       a.social_stats, a.achievements, a.top_traits,
		       v.score, v.tier, v.percentile, v.deal_value_low, v.deal_value_high,
		       v.calculated_at, v.daily_calc_count, v.last_calc_date
		FROM athletes a
		LEFT JOIN valuations v ON v.athlete_id = a.id
		ORDER BY a.id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list athletes: %w", err)
	}
	defer rows.Close()

	var athletes []*contracts.AthleteProfile
	for rows.Next() {
		athlete, err := scanAthlete(rows)
		if err != nil {
			return nil, err
		}
		athletes = append(athletes, athlete)
	}
	return athletes, rows.Err()
}

// ListBySport retrieves all athletes in one sport
func (r *AthleteRepository) ListBySport(ctx context.Context, sport string) ([]*contracts.AthleteProfile, error) {
	query := `
		SELECT a.id, a.name, a.sport, a.region, a.school,
		       a.social_stats, a.achievements, a.top_traits,
		       v.score, v.tier, v.percentile, v.deal_value_low, v.deal_value_high,
		       v.calculated_at, v.daily_calc_count, v.last_calc_date
		FROM athletes a
		LEFT JOIN valuations v ON v.athlete_id = a.id
		WHERE a.sport = $1
		ORDER BY a.id
	`

	rows, err := r.pool.Query(ctx, query, sport)
	if err != nil {
		return nil, fmt.Errorf("failed to list athletes by sport: %w", err)
	}
	defer rows.Close()

	var athletes []*contracts.AthleteProfile
	for rows.Next() {
		athlete, err := scanAthlete(rows)
		if err != nil {
			return nil, err
		}
		athletes = append(athletes, athlete)
	}
	return athletes, rows.Err()
}

// Save upserts one athlete profile. Valuation records are owned by
// the valuation repository and not written here.
func (r *AthleteRepository) Save(ctx context.Context, athlete *contracts.AthleteProfile) error {
	stats, err := json.Marshal(athlete.SocialStats)
	if err != nil {
		return fmt.Errorf("failed to marshal social stats: %w", err)
	}

	query := `
		INSERT INTO athletes (id, name, sport, region, school, social_stats, achievements, top_traits)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			sport = EXCLUDED.sport,
			region = EXCLUDED.region,
			school = EXCLUDED.school,
			social_stats = EXCLUDED.social_stats,
			achievements = EXCLUDED.achievements,
			top_traits = EXCLUDED.top_traits
	`

	_, err = r.pool.Exec(ctx, query,
		athlete.ID, athlete.Name, athlete.Sport, athlete.Region, athlete.School,
		stats, athlete.Achievements, athlete.TopTraits,
	)
	if err != nil {
		return fmt.Errorf("failed to save athlete %s: %w", athlete.ID, err)
	}
	return nil
}

// rowScanner covers pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanAthlete reads one joined athlete+valuation row. A missing
// valuation leaves the field nil so the engine computes one fresh.
func scanAthlete(row rowScanner) (*contracts.AthleteProfile, error) {
	var (
		a         contracts.AthleteProfile
		statsJSON []byte

		// Left-joined valuation columns are nullable
		score          *int
		tierName       *string
		percentile     *float64
		dealLow        *float64
		dealHigh       *float64
		calculatedAt   *time.Time
		dailyCalcCount *int
		lastCalcDate   *time.Time
	)

	err := row.Scan(
		&a.ID, &a.Name, &a.Sport, &a.Region, &a.School,
		&statsJSON, &a.Achievements, &a.TopTraits,
		&score, &tierName, &percentile, &dealLow, &dealHigh,
		&calculatedAt, &dailyCalcCount, &lastCalcDate,
	)
	if err != nil {
		return nil, err
	}

	if len(statsJSON) > 0 {
		if err := json.Unmarshal(statsJSON, &a.SocialStats); err != nil {
			return nil, fmt.Errorf("failed to unmarshal social stats: %w", err)
		}
	}

	if score != nil && tierName != nil {
		tier, err := contracts.ParseTier(*tierName)
		if err != nil {
			return nil, err
		}
		v := &contracts.ValuationRecord{
			AthleteID: a.ID,
			Score:     *score,
			Tier:      tier,
		}
		if percentile != nil {
			v.Percentile = *percentile
		}
		if dealLow != nil {
			v.DealValueLow = *dealLow
		}
		if dealHigh != nil {
			v.DealValueHigh = *dealHigh
		}
		if calculatedAt != nil {
			v.CalculatedAt = *calculatedAt
		}
		if dailyCalcCount != nil {
			v.DailyCalcCount = *dailyCalcCount
		}
		if lastCalcDate != nil {
			v.LastCalcDate = *lastCalcDate
		}
		a.Valuation = v
	}

	return &a, nil
}
