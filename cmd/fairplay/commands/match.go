package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fairplay-nil/backend/internal/contracts"
	"github.com/fairplay-nil/backend/internal/match"
	"github.com/fairplay-nil/backend/internal/store"
	"github.com/fairplay-nil/backend/internal/valuation"
	"github.com/fairplay-nil/backend/pkg/config"
	"github.com/fairplay-nil/backend/pkg/database"
	"github.com/fairplay-nil/backend/pkg/logger"
)

// matchCandidateLimit caps a CLI batch when the campaign targets no
// single sport and candidates come from the full athlete table.
const matchCandidateLimit = 1000

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match [campaign_id]",
	Short: "Rank athletes for a campaign",
	Long: `Runs matchmaking for one campaign.

This command:
- Loads the campaign criteria from the database
- Scores every candidate athlete against the criteria
- Prints the ranked results with offer ranges

Example:
  go run ./cmd/fairplay match cmp_456
  go run ./cmd/fairplay match cmp_456 --min-score 60 --max-results 10
  go run ./cmd/fairplay match cmp_456 --breakdown`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

var (
	matchMinScore   int
	matchMaxResults int
	matchBreakdown  bool
)

func init() {
	rootCmd.AddCommand(matchCmd)

	// Flags
	matchCmd.Flags().IntVar(&matchMinScore, "min-score", 0, "Exclude results below this composite score")
	matchCmd.Flags().IntVar(&matchMaxResults, "max-results", 20, "Maximum number of results (0 = unbounded)")
	matchCmd.Flags().BoolVar(&matchBreakdown, "breakdown", false, "Print per-dimension scores for each result")
}

func runMatch(cmd *cobra.Command, args []string) error {
	campaignID := args[0]

	fmt.Println("=== FairPlay Matchmaking ===")

	ctx := cmd.Context()

	// 1. Initialize dependencies
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	athleteRepo := store.NewAthleteRepository(db.Pool)
	campaignRepo := store.NewCampaignRepository(db.Pool)
	calculator := valuation.NewCalculator(valuation.DefaultWeightConfig(), log)
	orchestrator := match.NewOrchestrator(calculator, match.DefaultWeightConfig(), log)

	// 2. Load campaign
	campaign, err := campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("load campaign %s: %w", campaignID, err)
	}

	fmt.Printf("\n📋 Campaign: %s\n", campaign.Name)
	if len(campaign.Sports) > 0 {
		fmt.Printf("   Sports:  %s\n", strings.Join(campaign.Sports, ", "))
	}
	if len(campaign.Regions) > 0 {
		fmt.Printf("   Regions: %s\n", strings.Join(campaign.Regions, ", "))
	}
	if campaign.PerAthleteBudget > 0 {
		fmt.Printf("   Budget:  $%.0f per athlete\n", campaign.PerAthleteBudget)
	}

	// 3. Load candidates. A single target sport narrows the batch at
	// the query level; anything broader scans the athlete table.
	var candidates []*contracts.AthleteProfile
	if len(campaign.Sports) == 1 {
		candidates, err = athleteRepo.ListBySport(ctx, campaign.Sports[0])
	} else {
		candidates, err = athleteRepo.List(ctx, matchCandidateLimit, 0)
	}
	if err != nil {
		return fmt.Errorf("load candidates: %w", err)
	}

	fmt.Printf("\n🔍 Scoring %d candidates...\n", len(candidates))

	// 4. Run matchmaking
	opts := contracts.MatchOptions{
		MinScore:         matchMinScore,
		MaxResults:       matchMaxResults,
		IncludeBreakdown: matchBreakdown,
	}

	results, summary, err := orchestrator.Match(ctx, campaign, candidates, opts)
	if err != nil {
		return fmt.Errorf("run matchmaking: %w", err)
	}

	// 5. Print results
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("                  MATCH RESULTS")
	fmt.Println(strings.Repeat("=", 50))

	if len(results) == 0 {
		fmt.Println("No athletes matched the campaign criteria.")
	}

	for i, r := range results {
		fmt.Printf("\n%d. %s (%s)\n", i+1, r.AthleteName, r.AthleteID)
		fmt.Printf("   Score: %d (%s confidence), valuation %d (%s tier)\n",
			r.CompositeScore, r.Confidence, r.ValuationScore, r.Tier)
		fmt.Printf("   Offer: $%.0f - $%.0f\n", r.OfferLow, r.OfferHigh)

		if len(r.MatchedTraits) > 0 {
			fmt.Printf("   Traits: %s\n", strings.Join(r.MatchedTraits, ", "))
		}

		if matchBreakdown && r.Breakdown != nil {
			fmt.Printf("   Sport %.0f | Followers %.0f | Geography %.0f | Tier %.0f | Alignment %.0f | Budget %.0f\n",
				r.Breakdown.Sport, r.Breakdown.Followers, r.Breakdown.Geography,
				r.Breakdown.Tier, r.Breakdown.TraitAlignment, r.Breakdown.Budget)
			for _, s := range r.Strengths {
				fmt.Printf("   + %s\n", s)
			}
			for _, c := range r.Concerns {
				fmt.Printf("   - %s\n", c)
			}
		}
	}

	fmt.Println("\n📊 Summary")
	fmt.Printf("  Returned:      %d\n", summary.Returned)
	fmt.Printf("  Skipped:       %d\n", summary.Skipped)
	fmt.Printf("  Average Score: %.1f\n", summary.AverageScore)
	fmt.Printf("  Confidence:    high %d / medium %d / low %d\n",
		summary.Confidence[contracts.ConfidenceHigh],
		summary.Confidence[contracts.ConfidenceMedium],
		summary.Confidence[contracts.ConfidenceLow])

	return nil
}
