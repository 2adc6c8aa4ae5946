package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/fairplay-nil/backend/internal/contracts"
	"github.com/fairplay-nil/backend/internal/valuation"
	"github.com/fairplay-nil/backend/pkg/logger"
)

// refreshBatchSize bounds how many stale valuations one run touches
const refreshBatchSize = 500

// ValuationRefreshJob recomputes stale valuations nightly so match
// scoring works against fresh-enough numbers without computing on the
// request path.
type ValuationRefreshJob struct {
	athleteRepo   contracts.AthleteRepository
	valuationRepo contracts.ValuationRepository
	calculator    *valuation.Calculator
	ttl           time.Duration
	schedule      string
	logger        *logger.Logger
}

// NewValuationRefreshJob creates a new refresh job
func NewValuationRefreshJob(
	athleteRepo contracts.AthleteRepository,
	valuationRepo contracts.ValuationRepository,
	calculator *valuation.Calculator,
	ttl time.Duration,
	schedule string,
	log *logger.Logger,
) *ValuationRefreshJob {
	return &ValuationRefreshJob{
		athleteRepo:   athleteRepo,
		valuationRepo: valuationRepo,
		calculator:    calculator,
		ttl:           ttl,
		schedule:      schedule,
		logger:        log,
	}
}

// Name returns the job name
func (j *ValuationRefreshJob) Name() string {
	return "valuation_refresh"
}

// Schedule returns the cron schedule
func (j *ValuationRefreshJob) Schedule() string {
	return j.schedule
}

// Run recomputes every valuation older than the TTL
func (j *ValuationRefreshJob) Run(ctx context.Context) error {
	now := time.Now().UTC()
	cutoff := now.Add(-j.ttl)

	stale, err := j.valuationRepo.ListStale(ctx, cutoff, refreshBatchSize)
	if err != nil {
		return fmt.Errorf("list stale valuations: %w", err)
	}

	if len(stale) == 0 {
		j.logger.Debug("No stale valuations to refresh")
		return nil
	}

	// Population scores for percentile ranking
	scores, err := j.valuationRepo.ListScores(ctx)
	if err != nil {
		return fmt.Errorf("list valuation scores: %w", err)
	}

	refreshed := 0
	failed := 0
	for _, old := range stale {
		athlete, err := j.athleteRepo.GetByID(ctx, old.AthleteID)
		if err != nil {
			failed++
			j.logger.WithError(err).WithFields(map[string]interface{}{
				"athlete_id": old.AthleteID,
			}).Warn("Skipping valuation refresh for athlete")
			continue
		}

		record := j.calculator.Calculate(athlete, now)
		record.Percentile = valuation.PercentileRank(record.Score, scores)

		if err := j.valuationRepo.Save(ctx, record); err != nil {
			failed++
			j.logger.WithError(err).WithFields(map[string]interface{}{
				"athlete_id": old.AthleteID,
			}).Warn("Failed to save refreshed valuation")
			continue
		}
		refreshed++
	}

	j.logger.WithFields(map[string]interface{}{
		"stale":     len(stale),
		"refreshed": refreshed,
		"failed":    failed,
	}).Info("Valuation refresh completed")

	return nil
}
