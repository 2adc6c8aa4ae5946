package jobs

import (
	"context"
	"fmt"
	"strings"

	"github.com/fairplay-nil/backend/internal/contracts"
	"github.com/fairplay-nil/backend/internal/scout"
	"github.com/fairplay-nil/backend/pkg/logger"
)

// rankCreditPrefix marks the achievement a ranking sync writes, so a
// later sync can replace it instead of stacking duplicates.
const rankCreditPrefix = "ranked #"

// ScoutSyncJob pulls public recruiting rankings weekly. Ranked
// athletes get an achievement credit on their profile, which feeds
// the credibility signal behind valuation.
type ScoutSyncJob struct {
	client    *scout.Client
	sports    []string
	sink      RankingSink
	directory AthleteDirectory
	logger    *logger.Logger
}

// RankingSink receives scraped rankings for persistence
type RankingSink interface {
	SaveRankings(ctx context.Context, athletes []scout.ScoutedAthlete) error
}

// AthleteDirectory matches scraped rankings back to stored profiles
type AthleteDirectory interface {
	ListBySport(ctx context.Context, sport string) ([]*contracts.AthleteProfile, error)
	Save(ctx context.Context, athlete *contracts.AthleteProfile) error
}

// NewScoutSyncJob creates a new scout sync job
func NewScoutSyncJob(
	client *scout.Client,
	sports []string,
	sink RankingSink,
	directory AthleteDirectory,
	log *logger.Logger,
) *ScoutSyncJob {
	return &ScoutSyncJob{
		client:    client,
		sports:    sports,
		sink:      sink,
		directory: directory,
		logger:    log,
	}
}

// Name returns the job name
func (j *ScoutSyncJob) Name() string {
	return "scout_sync"
}

// Schedule returns the cron schedule (Sundays at 4 AM)
func (j *ScoutSyncJob) Schedule() string {
	return "0 0 4 * * 0"
}

// Run fetches and stores rankings for every configured sport, then
// credits ranked athletes on their profiles.
func (j *ScoutSyncJob) Run(ctx context.Context) error {
	total := 0
	credited := 0
	for _, sport := range j.sports {
		athletes, err := j.client.FetchRankings(ctx, sport)
		if err != nil {
			return fmt.Errorf("fetch rankings for %s: %w", sport, err)
		}

		if err := j.sink.SaveRankings(ctx, athletes); err != nil {
			return fmt.Errorf("save rankings for %s: %w", sport, err)
		}
		total += len(athletes)

		n, err := j.creditRanked(ctx, sport, athletes)
		if err != nil {
			return fmt.Errorf("credit rankings for %s: %w", sport, err)
		}
		credited += n
	}

	j.logger.WithFields(map[string]interface{}{
		"sports":   len(j.sports),
		"count":    total,
		"credited": credited,
	}).Info("Scout sync completed")

	return nil
}

// creditRanked writes a ranking achievement onto every stored profile
// that appears in the scraped list, matching by name within the sport.
// An earlier ranking credit is replaced, never duplicated.
func (j *ScoutSyncJob) creditRanked(ctx context.Context, sport string, scouted []scout.ScoutedAthlete) (int, error) {
	profiles, err := j.directory.ListBySport(ctx, sport)
	if err != nil {
		return 0, err
	}

	byName := make(map[string]*contracts.AthleteProfile, len(profiles))
	for _, p := range profiles {
		byName[strings.ToLower(strings.TrimSpace(p.Name))] = p
	}

	credited := 0
	for _, s := range scouted {
		profile, ok := byName[strings.ToLower(strings.TrimSpace(s.Name))]
		if !ok {
			continue
		}

		credit := fmt.Sprintf("%s%d %s recruit", rankCreditPrefix, s.Rank, s.Sport)
		profile.Achievements = replaceRankCredit(profile.Achievements, credit)

		if err := j.directory.Save(ctx, profile); err != nil {
			j.logger.WithError(err).WithFields(map[string]interface{}{
				"athlete_id": profile.ID,
			}).Warn("Failed to credit ranked athlete")
			continue
		}
		credited++
	}

	return credited, nil
}

// replaceRankCredit drops any previous ranking achievement and appends
// the current one.
func replaceRankCredit(achievements []string, credit string) []string {
	out := make([]string, 0, len(achievements)+1)
	for _, a := range achievements {
		if strings.HasPrefix(a, rankCreditPrefix) {
			continue
		}
		out = append(out, a)
	}
	return append(out, credit)
}
