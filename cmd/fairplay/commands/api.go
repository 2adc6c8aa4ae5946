package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fairplay-nil/backend/internal/api"
	"github.com/fairplay-nil/backend/internal/api/handlers"
	"github.com/fairplay-nil/backend/internal/match"
	"github.com/fairplay-nil/backend/internal/store"
	"github.com/fairplay-nil/backend/internal/valuation"
	"github.com/fairplay-nil/backend/pkg/config"
	"github.com/fairplay-nil/backend/pkg/database"
	"github.com/fairplay-nil/backend/pkg/logger"
	"github.com/fairplay-nil/backend/pkg/redis"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Starts the REST API server.

This command:
- Starts the HTTP API server
- Serves valuation lookup and recalculation endpoints
- Serves campaign matchmaking endpoints

Endpoints:
  GET  /health                                      - Health check
  GET  /api/athletes/{id}/valuation                 - Valuation lookup
  POST /api/athletes/{id}/valuation/recalculate     - Recalculate valuation
  POST /api/campaigns/{id}/matches                  - Rank candidates for a campaign
  GET  /api/campaigns/{id}/matches/stream           - Stream match results (WebSocket)
  GET  /api/campaigns/{id}/matches/{athleteID}      - Single-athlete breakdown

Example:
  go run ./cmd/fairplay api
  go run ./cmd/fairplay api --port 8080`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "8080", "API server port")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== FairPlay API Server ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 3. Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	log.Info("Connected to database")

	// 4. Connect to Redis
	redisClient, err := redis.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()

	cache := redis.NewCache(redisClient, "fairplay")
	limiter := redis.NewRateLimiter(redisClient, "fairplay")

	// 5. Create repositories
	athleteRepo := store.NewAthleteRepository(db.Pool)
	campaignRepo := store.NewCampaignRepository(db.Pool)
	valuationRepo := store.NewValuationRepository(db.Pool)

	// 6. Create scoring engines
	calculator := valuation.NewCalculator(valuation.DefaultWeightConfig(), log)
	orchestrator := match.NewOrchestrator(calculator, match.DefaultWeightConfig(), log)

	// 7. Create handlers
	valuationHandler := handlers.NewValuationHandler(
		athleteRepo, valuationRepo, calculator, cache, limiter, cfg.Scheduler.DailyLimit, log)
	matchHandler := handlers.NewMatchHandler(campaignRepo, athleteRepo, orchestrator, cache, log)

	// 8. Create router
	router := api.NewRouter(valuationHandler, matchHandler, log)

	// 9. Create server
	server := api.New(cfg, log, router)

	// 10. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nAvailable endpoints:")
	fmt.Println("  GET  /health")
	fmt.Println("  GET  /api/athletes/{id}/valuation")
	fmt.Println("  POST /api/athletes/{id}/valuation/recalculate")
	fmt.Println("  POST /api/campaigns/{id}/matches")
	fmt.Println("  GET  /api/campaigns/{id}/matches/stream")
	fmt.Println("  GET  /api/campaigns/{id}/matches/{athleteID}")
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
