package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairplay-nil/backend/internal/contracts"
	"github.com/fairplay-nil/backend/internal/valuation"
)

type memoryAthletes struct {
	athletes map[string]*contracts.AthleteProfile
}

func (m *memoryAthletes) GetByID(_ context.Context, id string) (*contracts.AthleteProfile, error) {
	a, ok := m.athletes[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return a, nil
}

func (m *memoryAthletes) List(_ context.Context, limit, offset int) ([]*contracts.AthleteProfile, error) {
	return nil, nil
}

func (m *memoryAthletes) ListBySport(_ context.Context, sport string) ([]*contracts.AthleteProfile, error) {
	return nil, nil
}

func (m *memoryAthletes) Save(_ context.Context, athlete *contracts.AthleteProfile) error {
	m.athletes[athlete.ID] = athlete
	return nil
}

type memoryValuations struct {
	records map[string]*contracts.ValuationRecord
}

func (m *memoryValuations) GetByAthleteID(_ context.Context, athleteID string) (*contracts.ValuationRecord, error) {
	r, ok := m.records[athleteID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return r, nil
}

func (m *memoryValuations) ListScores(_ context.Context) ([]int, error) {
	var scores []int
	for _, r := range m.records {
		scores = append(scores, r.Score)
	}
	return scores, nil
}

func (m *memoryValuations) Save(_ context.Context, record *contracts.ValuationRecord) error {
	m.records[record.AthleteID] = record
	return nil
}

func (m *memoryValuations) ListStale(_ context.Context, olderThan time.Time, limit int) ([]*contracts.ValuationRecord, error) {
	var out []*contracts.ValuationRecord
	for _, r := range m.records {
		if r.CalculatedAt.Before(olderThan) {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestValuationRefreshRecomputesStale(t *testing.T) {
	now := time.Now().UTC()

	athletes := &memoryAthletes{athletes: map[string]*contracts.AthleteProfile{
		"ath_stale": {
			ID: "ath_stale", Name: "Jordan Lee", Sport: "basketball",
			SocialStats: []contracts.SocialStat{
				{Platform: "instagram", Followers: 40_000, EngagementRate: 6.0, Verified: true},
			},
		},
	}}
	valuations := &memoryValuations{records: map[string]*contracts.ValuationRecord{
		"ath_stale": {AthleteID: "ath_stale", Score: 1, CalculatedAt: now.Add(-240 * time.Hour)},
		"ath_fresh": {AthleteID: "ath_fresh", Score: 70, CalculatedAt: now},
	}}

	calculator := valuation.NewCalculator(valuation.DefaultWeightConfig(), testLogger())
	job := NewValuationRefreshJob(athletes, valuations, calculator, 168*time.Hour, "0 0 3 * * *", testLogger())

	require.NoError(t, job.Run(context.Background()))

	refreshed := valuations.records["ath_stale"]
	assert.Greater(t, refreshed.Score, 1)
	assert.WithinDuration(t, now, refreshed.CalculatedAt, time.Minute)

	// The fresh record is left alone
	assert.Equal(t, 70, valuations.records["ath_fresh"].Score)
}

func TestValuationRefreshSkipsMissingAthlete(t *testing.T) {
	now := time.Now().UTC()

	athletes := &memoryAthletes{athletes: map[string]*contracts.AthleteProfile{}}
	valuations := &memoryValuations{records: map[string]*contracts.ValuationRecord{
		"ath_gone": {AthleteID: "ath_gone", Score: 10, CalculatedAt: now.Add(-240 * time.Hour)},
	}}

	calculator := valuation.NewCalculator(valuation.DefaultWeightConfig(), testLogger())
	job := NewValuationRefreshJob(athletes, valuations, calculator, 168*time.Hour, "0 0 3 * * *", testLogger())

	// A missing athlete is skipped, not a job failure
	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, 10, valuations.records["ath_gone"].Score)
}
