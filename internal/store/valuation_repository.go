package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fairplay-nil/backend/internal/contracts"
)

// ValuationRepository implements contracts.ValuationRepository on
// Postgres. The daily calculation counter lives here too; the rate
// limiter reads it, the scoring engine never does.
type ValuationRepository struct {
	pool *pgxpool.Pool
}

// NewValuationRepository creates a new valuation repository
func NewValuationRepository(pool *pgxpool.Pool) *ValuationRepository {
	return &ValuationRepository{pool: pool}
}

// GetByAthleteID retrieves the stored valuation for one athlete
func (r *ValuationRepository) GetByAthleteID(ctx context.Context, athleteID string) (*contracts.ValuationRecord, error) {
	query := `
		SELECT athlete_id, score, tier, percentile, deal_value_low, deal_value_high,
		       calculated_at, daily_calc_count, last_calc_date
		FROM valuations
		WHERE athlete_id = $1
	`

	var (
		v        contracts.ValuationRecord
		tierName string
	)
	err := r.pool.QueryRow(ctx, query, athleteID).Scan(
		&v.AthleteID, &v.Score, &tierName, &v.Percentile, &v.DealValueLow, &v.DealValueHigh,
		&v.CalculatedAt, &v.DailyCalcCount, &v.LastCalcDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get valuation for %s: %w", athleteID, err)
	}

	tier, err := contracts.ParseTier(tierName)
	if err != nil {
		return nil, err
	}
	v.Tier = tier
	return &v, nil
}

// ListScores returns every stored valuation score, used for
// percentile ranking against the full population.
func (r *ValuationRepository) ListScores(ctx context.Context) ([]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT score FROM valuations`)
	if err != nil {
		return nil, fmt.Errorf("failed to list valuation scores: %w", err)
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}
	return scores, rows.Err()
}

// Save upserts one valuation. A recalculation on the same day bumps
// the daily counter, a new day resets it to 1.
func (r *ValuationRepository) Save(ctx context.Context, record *contracts.ValuationRecord) error {
	query := `
		INSERT INTO valuations (athlete_id, score, tier, percentile, deal_value_low, deal_value_high,
		                        calculated_at, daily_calc_count, last_calc_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 1, $7::date)
		ON CONFLICT (athlete_id) DO UPDATE SET
			score = EXCLUDED.score,
			tier = EXCLUDED.tier,
			percentile = EXCLUDED.percentile,
			deal_value_low = EXCLUDED.deal_value_low,
			deal_value_high = EXCLUDED.deal_value_high,
			calculated_at = EXCLUDED.calculated_at,
			daily_calc_count = CASE
				WHEN valuations.last_calc_date = EXCLUDED.last_calc_date
				THEN valuations.daily_calc_count + 1
				ELSE 1
			END,
			last_calc_date = EXCLUDED.last_calc_date
	`

	_, err := r.pool.Exec(ctx, query,
		record.AthleteID, record.Score, record.Tier.String(), record.Percentile,
		record.DealValueLow, record.DealValueHigh, record.CalculatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save valuation for %s: %w", record.AthleteID, err)
	}
	return nil
}

// ListStale returns valuations last computed before the cutoff,
// oldest first, used by the nightly refresh job.
func (r *ValuationRepository) ListStale(ctx context.Context, olderThan time.Time, limit int) ([]*contracts.ValuationRecord, error) {
	query := `
		SELECT athlete_id, score, tier, percentile, deal_value_low, deal_value_high,
		       calculated_at, daily_calc_count, last_calc_date
		FROM valuations
		WHERE calculated_at < $1
		ORDER BY calculated_at ASC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale valuations: %w", err)
	}
	defer rows.Close()

	var records []*contracts.ValuationRecord
	for rows.Next() {
		var (
			v        contracts.ValuationRecord
			tierName string
		)
		if err := rows.Scan(
			&v.AthleteID, &v.Score, &tierName, &v.Percentile, &v.DealValueLow, &v.DealValueHigh,
			&v.CalculatedAt, &v.DailyCalcCount, &v.LastCalcDate,
		); err != nil {
			return nil, err
		}
		tier, err := contracts.ParseTier(tierName)
		if err != nil {
			return nil, err
		}
		v.Tier = tier
		records = append(records, &v)
	}
	return records, rows.Err()
}
