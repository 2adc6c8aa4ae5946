package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fairplay-nil/backend/internal/scheduler"
	"github.com/fairplay-nil/backend/internal/scheduler/jobs"
	"github.com/fairplay-nil/backend/internal/scout"
	"github.com/fairplay-nil/backend/internal/store"
	"github.com/fairplay-nil/backend/internal/valuation"
	"github.com/fairplay-nil/backend/pkg/config"
	"github.com/fairplay-nil/backend/pkg/database"
	"github.com/fairplay-nil/backend/pkg/httputil"
	"github.com/fairplay-nil/backend/pkg/logger"
)

// scoutSports are the recruiting verticals the weekly sync walks
var scoutSports = []string{"football", "basketball", "baseball", "soccer", "volleyball"}

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Manage the job scheduler",
	Long: `Starts the scheduler daemon or manages its jobs.

This command:
- Starts the scheduler daemon
- Lists registered jobs
- Runs a job immediately
- Shows job execution history

Subcommands:
  start   - Start the scheduler
  list    - List registered jobs
  run     - Run one job immediately
  status  - Show job execution history

Example:
  go run ./cmd/fairplay scheduler start
  go run ./cmd/fairplay scheduler list
  go run ./cmd/fairplay scheduler run valuation_refresh`,
}

var (
	schedulerStartCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the scheduler",
		Long: `Starts the scheduler and registers all jobs.

Registered jobs:
- valuation_refresh: nightly, recomputes stale valuations
- scout_sync: weekly, pulls recruiting rankings per sport

Stop the scheduler with Ctrl+C.`,
		RunE: runScheduler,
	}

	schedulerListCmd = &cobra.Command{
		Use:   "list",
		Short: "List registered jobs",
		RunE:  listJobs,
	}

	schedulerRunCmd = &cobra.Command{
		Use:   "run [job_name]",
		Short: "Run one job immediately",
		Args:  cobra.ExactArgs(1),
		RunE:  runJob,
	}

	schedulerStatusCmd = &cobra.Command{
		Use:   "status",
		Short: "Show job execution history",
		RunE:  showStatus,
	}
)

func init() {
	rootCmd.AddCommand(schedulerCmd)
	schedulerCmd.AddCommand(schedulerStartCmd)
	schedulerCmd.AddCommand(schedulerListCmd)
	schedulerCmd.AddCommand(schedulerRunCmd)
	schedulerCmd.AddCommand(schedulerStatusCmd)
}

func runScheduler(cmd *cobra.Command, args []string) error {
	fmt.Println("=== FairPlay Scheduler ===")

	// Initialize dependencies
	sched, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	// Start scheduler
	sched.Start()

	fmt.Println("\n✅ Scheduler started successfully")
	fmt.Println("\nRegistered jobs:")
	for _, jobName := range sched.GetAllJobs() {
		fmt.Printf("  - %s\n", jobName)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down scheduler...")
	sched.Stop()
	fmt.Println("Scheduler stopped")

	return nil
}

func listJobs(cmd *cobra.Command, args []string) error {
	sched, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	fmt.Println("Registered jobs:")
	for _, jobName := range sched.GetAllJobs() {
		fmt.Printf("  - %s\n", jobName)
	}

	return nil
}

func runJob(cmd *cobra.Command, args []string) error {
	jobName := args[0]

	fmt.Printf("Running job: %s\n", jobName)

	sched, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	if err := sched.RunJob(jobName); err != nil {
		return fmt.Errorf("run job: %w", err)
	}

	fmt.Println("Job started (running in background)")
	return nil
}

func showStatus(cmd *cobra.Command, args []string) error {
	sched, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	fmt.Println("Job History:")
	fmt.Println()

	for _, jobName := range sched.GetAllJobs() {
		history, err := sched.GetJobHistory(jobName)
		if err != nil {
			continue
		}

		fmt.Printf("📊 %s\n", jobName)
		fmt.Printf("   Total Runs:   %d\n", len(history.Results))
		fmt.Printf("   Success Rate: %.1f%%\n", history.GetSuccessRate()*100)

		for _, result := range history.GetLatestResults(3) {
			status := "✅"
			if !result.Success {
				status = "❌"
			}
			fmt.Printf("   %s %s (%s)\n", status,
				result.StartTime.Format("2006-01-02 15:04:05"), result.Duration)
			if result.Error != "" {
				fmt.Printf("      %s\n", result.Error)
			}
		}

		fmt.Println()
	}

	return nil
}

func initScheduler() (*scheduler.Scheduler, error) {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// 4. Create paced HTTP client for the recruiting site
	httpClient := httputil.NewWithTimeout(cfg, log, cfg.Scout.Timeout).
		WithPacing(cfg.Scout.RequestsPerSec)

	// 5. Create scout client
	scoutClient := scout.NewClient(httpClient, cfg.Scout.BaseURL, log)

	// 6. Create repositories
	athleteRepo := store.NewAthleteRepository(db.Pool)
	valuationRepo := store.NewValuationRepository(db.Pool)
	rankingRepo := store.NewRankingRepository(db.Pool)

	// 7. Create calculator
	calculator := valuation.NewCalculator(valuation.DefaultWeightConfig(), log)

	// 8. Create scheduler
	sched := scheduler.New(log)

	// 9. Register jobs
	sched.AddJob(jobs.NewValuationRefreshJob(
		athleteRepo, valuationRepo, calculator,
		cfg.Scheduler.ValuationTTL, cfg.Scheduler.RefreshCron, log))
	sched.AddJob(jobs.NewScoutSyncJob(scoutClient, scoutSports, rankingRepo, athleteRepo, log))

	return sched, nil
}
