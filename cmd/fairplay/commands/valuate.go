package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fairplay-nil/backend/internal/store"
	"github.com/fairplay-nil/backend/internal/valuation"
	"github.com/fairplay-nil/backend/pkg/config"
	"github.com/fairplay-nil/backend/pkg/database"
	"github.com/fairplay-nil/backend/pkg/logger"
)

// valuateCmd represents the valuate command
var valuateCmd = &cobra.Command{
	Use:   "valuate [athlete_id]",
	Short: "Compute an athlete's fair market value",
	Long: `Computes the fair market value score for one athlete.

This command:
- Loads the athlete's profile from the database
- Computes the 0-100 valuation score and tier
- Ranks the score against all stored valuations
- Prints the deal value range and improvement hints

Example:
  go run ./cmd/fairplay valuate ath_123
  go run ./cmd/fairplay valuate ath_123 --save
  go run ./cmd/fairplay valuate ath_123 --insights`,
	Args: cobra.ExactArgs(1),
	RunE: runValuate,
}

var (
	valuateSave     bool
	valuateInsights bool
)

func init() {
	rootCmd.AddCommand(valuateCmd)

	// Flags
	valuateCmd.Flags().BoolVar(&valuateSave, "save", false, "Persist the computed valuation")
	valuateCmd.Flags().BoolVar(&valuateInsights, "insights", false, "Print strengths, weaknesses, and improvement hints")
}

func runValuate(cmd *cobra.Command, args []string) error {
	athleteID := args[0]

	fmt.Println("=== FairPlay Valuation ===")

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
	valuationRepo := store.NewValuationRepository(db.Pool)
	calculator := valuation.NewCalculator(valuation.DefaultWeightConfig(), log)

	// 2. Load athlete
	athlete, err := athleteRepo.GetByID(ctx, athleteID)
	if err != nil {
		return fmt.Errorf("load athlete %s: %w", athleteID, err)
	}

	fmt.Printf("\n🏅 %s (%s, %s)\n", athlete.Name, athlete.Sport, athlete.Region)
	fmt.Printf("   Followers:  %d across %d platforms\n", athlete.FollowerCount(), len(athlete.SocialStats))
	fmt.Printf("   Engagement: %.2f%%\n", athlete.EngagementRate())
	fmt.Printf("   Verified:   %d accounts, %d achievements\n", athlete.VerifiedCount(), len(athlete.Achievements))

	// 3. Compute valuation
	record := calculator.Calculate(athlete, time.Now().UTC())

	// Rank against the stored population when one exists
	scores, err := valuationRepo.ListScores(ctx)
	if err != nil {
		return fmt.Errorf("list valuation scores: %w", err)
	}
	if len(scores) > 0 {
		record.Percentile = valuation.PercentileRank(record.Score, scores)
	}

	reach, engagement, credibility := calculator.Breakdown(athlete)

	// 4. Print result
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("                 VALUATION RESULT")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("📊 Score:      %d / 100 (%s tier)\n", record.Score, record.Tier)
	fmt.Printf("📈 Percentile: %.1f\n", record.Percentile)
	fmt.Printf("💰 Deal Value: $%.0f - $%.0f\n", record.DealValueLow, record.DealValueHigh)
	fmt.Println("\nSub-scores:")
	fmt.Printf("  Reach:       %.1f\n", reach)
	fmt.Printf("  Engagement:  %.1f\n", engagement)
	fmt.Printf("  Credibility: %.1f\n", credibility)

	if valuateInsights {
		insights := calculator.BuildInsights(athlete)

		if len(insights.Strengths) > 0 {
			fmt.Println("\n✅ Strengths")
			for _, s := range insights.Strengths {
				fmt.Printf("  - %s\n", s)
			}
		}
		if len(insights.Weaknesses) > 0 {
			fmt.Println("\n⚠️  Weaknesses")
			for _, w := range insights.Weaknesses {
				fmt.Printf("  - %s\n", w)
			}
		}
		if len(insights.Hints) > 0 {
			fmt.Println("\n💡 Improvement hints")
			for _, h := range insights.Hints {
				fmt.Printf("  [P%d] %s: %s (impact: %s)\n", h.Priority, h.Area, h.Action, h.Impact)
			}
		}
	}

	// 5. Persist when asked
	if valuateSave {
		if err := valuationRepo.Save(ctx, record); err != nil {
			return fmt.Errorf("save valuation: %w", err)
		}
		fmt.Println("\n✅ Valuation saved")
	}

	return nil
}
