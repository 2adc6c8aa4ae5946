package match

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fairplay-nil/backend/internal/alignment"
	"github.com/fairplay-nil/backend/internal/contracts"
	"github.com/fairplay-nil/backend/internal/valuation"
	"github.com/fairplay-nil/backend/pkg/logger"
)

// defaultConcurrency bounds the per-athlete scoring fan-out
const defaultConcurrency = 8

// Orchestrator runs the full scoring pipeline for one campaign over a
// candidate population. It holds no per-batch state, so one instance
// serves concurrent callers.
type Orchestrator struct {
	calculator  *valuation.Calculator
	weights     WeightConfig
	concurrency int
	logger      *logger.Logger
}

// NewOrchestrator creates a new orchestrator
func NewOrchestrator(calculator *valuation.Calculator, weights WeightConfig, logger *logger.Logger) *Orchestrator {
	return &Orchestrator{
		calculator:  calculator,
		weights:     weights,
		concurrency: defaultConcurrency,
		logger:      logger,
	}
}

// WithConcurrency overrides the scoring fan-out bound
func (o *Orchestrator) WithConcurrency(n int) *Orchestrator {
	if n > 0 {
		o.concurrency = n
	}
	return o
}

// Match scores every candidate against the campaign, filters by the
// caller's minimum composite score, sorts deterministically, and
// truncates to the requested result size. Invalid criteria reject the
// whole batch before any athlete is scored; a failure on one athlete
// only skips that athlete.
func (o *Orchestrator) Match(
	ctx context.Context,
	criteria *contracts.CampaignCriteria,
	candidates []*contracts.AthleteProfile,
	opts contracts.MatchOptions,
) ([]*contracts.MatchResult, *contracts.MatchSummary, error) {
	if err := criteria.Validate(); err != nil {
		return nil, nil, err
	}

	scored, skipped := o.scoreAll(ctx, criteria, candidates, opts)
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("matchmaking cancelled: %w", err)
	}

	// Filter below the minimum composite score
	filtered := scored[:0]
	for _, result := range scored {
		if result.CompositeScore >= opts.MinScore {
			filtered = append(filtered, result)
		}
	}

	// Sorting happens only after all scores are known so the
	// tie-break order is stable across runs.
	contracts.SortMatches(filtered)

	if opts.MaxResults > 0 && len(filtered) > opts.MaxResults {
		filtered = filtered[:opts.MaxResults]
	}

	summary := buildSummary(filtered, skipped)

	o.logger.WithFields(map[string]interface{}{
		"campaign_id": criteria.ID,
		"candidates":  len(candidates),
		"returned":    summary.Returned,
		"skipped":     summary.Skipped,
	}).Info("Matchmaking completed")

	return filtered, summary, nil
}

// scoreAll fans candidate scoring out across a bounded worker pool.
// Scoring one athlete is independent of every other, so order of
// completion does not matter; results are collected then sorted.
func (o *Orchestrator) scoreAll(
	ctx context.Context,
	criteria *contracts.CampaignCriteria,
	candidates []*contracts.AthleteProfile,
	opts contracts.MatchOptions,
) (results []*contracts.MatchResult, skipped int) {
	type outcome struct {
		result *contracts.MatchResult
		err    error
	}

	outcomes := make([]outcome, len(candidates))
	jobs := make(chan int)

	workers := o.concurrency
	if workers > len(candidates) {
		workers = len(candidates)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				result, err := o.scoreOne(criteria, candidates[i], opts)
				outcomes[i] = outcome{result: result, err: err}
			}
		}()
	}

	for i := range candidates {
		select {
		case jobs <- i:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, 0
		}
	}
	close(jobs)
	wg.Wait()

	results = make([]*contracts.MatchResult, 0, len(candidates))
	for i, oc := range outcomes {
		if oc.err != nil {
			skipped++
			athleteID := ""
			if candidates[i] != nil {
				athleteID = candidates[i].ID
			}
			o.logger.WithFields(map[string]interface{}{
				"athlete_id": athleteID,
				"error":      oc.err.Error(),
			}).Warn("Skipping athlete after scoring failure")
			continue
		}
		if oc.result != nil {
			results = append(results, oc.result)
		}
	}
	return results, skipped
}

// scoreOne runs the fixed pipeline for a single candidate. Any panic
// from a malformed record is converted to an error so the batch
// continues.
func (o *Orchestrator) scoreOne(
	criteria *contracts.CampaignCriteria,
	athlete *contracts.AthleteProfile,
	opts contracts.MatchOptions,
) (result *contracts.MatchResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("scoring panic: %v", r)
		}
	}()

	if athlete == nil {
		return nil, fmt.Errorf("nil athlete record")
	}
	if athlete.ID == "" {
		return nil, fmt.Errorf("athlete record missing ID")
	}

	// The engagement floor is a hard cut, not a scored dimension: a
	// candidate below it is excluded outright, without counting as a
	// scoring failure. Exactly at the floor passes.
	if criteria.MinEngagementRate > 0 && athlete.EngagementRate() < criteria.MinEngagementRate {
		return nil, nil
	}

	// Valuation: reuse the precomputed record when present; the
	// staleness policy belongs to the caller, not this pipeline.
	record := athlete.Valuation
	if record == nil {
		record = o.calculator.Calculate(athlete, time.Now().UTC())
	}

	align := alignment.Score(athlete.TopTraits, criteria.BrandValues)

	dims := &contracts.DimensionScores{
		Sport:          SportScore(athlete, criteria),
		Followers:      FollowerScore(athlete.FollowerCount(), criteria),
		Geography:      GeographyScore(athlete, criteria),
		Tier:           TierScore(record.Tier, criteria),
		TraitAlignment: align.Normalized100(),
		Budget:         BudgetScore(record.DealValueLow, record.DealValueHigh, criteria),
	}

	composite := o.weights.CompositeScore(dims)
	offerLow, offerHigh := RecommendOffer(record.DealValueLow, record.DealValueHigh, composite, criteria)

	result = &contracts.MatchResult{
		AthleteID:      athlete.ID,
		AthleteName:    athlete.Name,
		CompositeScore: composite,
		ValuationScore: record.Score,
		Tier:           record.Tier,
		Confidence:     ConfidenceFor(composite),
		OfferLow:       offerLow,
		OfferHigh:      offerHigh,
	}

	if opts.IncludeBreakdown {
		strengths, concerns := Rationale(dims)
		result.Breakdown = dims
		result.Strengths = strengths
		result.Concerns = concerns
		result.MatchedTraits = align.MatchedTraits
	}

	return result, nil
}

// buildSummary derives batch statistics from the final result list
func buildSummary(results []*contracts.MatchResult, skipped int) *contracts.MatchSummary {
	summary := &contracts.MatchSummary{
		Returned: len(results),
		Skipped:  skipped,
		Confidence: map[contracts.Confidence]int{
			contracts.ConfidenceLow:    0,
			contracts.ConfidenceMedium: 0,
			contracts.ConfidenceHigh:   0,
		},
	}

	if len(results) == 0 {
		return summary
	}

	total := 0
	for _, result := range results {
		total += result.CompositeScore
		summary.Confidence[result.Confidence]++
	}
	summary.AverageScore = float64(total) / float64(len(results))
	return summary
}
