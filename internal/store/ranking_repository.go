package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fairplay-nil/backend/internal/scout"
)

// RankingRepository stores scraped recruiting rankings
type RankingRepository struct {
	pool *pgxpool.Pool
}

// NewRankingRepository creates a new ranking repository
func NewRankingRepository(pool *pgxpool.Pool) *RankingRepository {
	return &RankingRepository{pool: pool}
}

// SaveRankings upserts one batch of scraped rankings
func (r *RankingRepository) SaveRankings(ctx context.Context, athletes []scout.ScoutedAthlete) error {
	if len(athletes) == 0 {
		return nil
	}

	query := `
		INSERT INTO scouted_rankings (sport, rank, name, school, state, star_rating, scraped_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (sport, rank) DO UPDATE SET
			name = EXCLUDED.name,
			school = EXCLUDED.school,
			state = EXCLUDED.state,
			star_rating = EXCLUDED.star_rating,
			scraped_at = EXCLUDED.scraped_at
	`

	for _, athlete := range athletes {
		_, err := r.pool.Exec(ctx, query,
			athlete.Sport, athlete.Rank, athlete.Name, athlete.School, athlete.State, athlete.StarRating,
		)
		if err != nil {
			return fmt.Errorf("failed to save ranking %s/%d: %w", athlete.Sport, athlete.Rank, err)
		}
	}
	return nil
}

// GetBySportAndName retrieves one scraped ranking row
func (r *RankingRepository) GetBySportAndName(ctx context.Context, sport, name string) (*scout.ScoutedAthlete, error) {
	query := `
		SELECT sport, rank, name, school, state, star_rating
		FROM scouted_rankings
		WHERE sport = $1 AND name = $2
	`

	var a scout.ScoutedAthlete
	err := r.pool.QueryRow(ctx, query, sport, name).Scan(
		&a.Sport, &a.Rank, &a.Name, &a.School, &a.State, &a.StarRating,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get ranking for %s/%s: %w", sport, name, err)
	}
	return &a, nil
}
