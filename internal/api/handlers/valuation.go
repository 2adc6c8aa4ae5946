package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"

	"github.com/fairplay-nil/backend/internal/contracts"
	"github.com/fairplay-nil/backend/internal/valuation"
	"github.com/fairplay-nil/backend/pkg/logger"
	"github.com/fairplay-nil/backend/pkg/redis"
)

// ValuationHandler serves athlete valuation endpoints. Recalculation
// is rate limited per athlete per day; the limit lives here, outside
// the calculator.
type ValuationHandler struct {
	athleteRepo   contracts.AthleteRepository
	valuationRepo contracts.ValuationRepository
	calculator    *valuation.Calculator
	cache         *redis.Cache
	limiter       *redis.RateLimiter
	dailyLimit    int
	logger        *logger.Logger
}

// NewValuationHandler creates a new valuation handler
func NewValuationHandler(
	athleteRepo contracts.AthleteRepository,
	valuationRepo contracts.ValuationRepository,
	calculator *valuation.Calculator,
	cache *redis.Cache,
	limiter *redis.RateLimiter,
	dailyLimit int,
	log *logger.Logger,
) *ValuationHandler {
	return &ValuationHandler{
		athleteRepo:   athleteRepo,
		valuationRepo: valuationRepo,
		calculator:    calculator,
		cache:         cache,
		limiter:       limiter,
		dailyLimit:    dailyLimit,
		logger:        log,
	}
}

// ValuationResponse is the API shape for one valuation
type ValuationResponse struct {
	Valuation *contracts.ValuationRecord `json:"valuation"`
	Insights  *valuation.Insights        `json:"insights,omitempty"`
}

// GetValuation returns the stored valuation for an athlete, computing
// one on the fly when none exists yet.
// GET /api/athletes/{id}/valuation?insights=true
func (h *ValuationHandler) GetValuation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]
	if id == "" {
		respondError(w, http.StatusBadRequest, "athlete id is required")
		return
	}

	// Serve from cache when possible
	cacheKey := redis.ValuationKey(id)
	var cached ValuationResponse
	if found, _ := h.cache.Get(ctx, cacheKey, &cached); found {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    cached,
		})
		return
	}

	athlete, err := h.athleteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			respondError(w, http.StatusNotFound, "athlete not found")
			return
		}
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"athlete_id": id,
		}).Error("Failed to load athlete")
		respondError(w, http.StatusInternalServerError, "Failed to load athlete")
		return
	}

	record := athlete.Valuation
	if record == nil {
		record = h.calculator.Calculate(athlete, time.Now().UTC())
		if err := h.valuationRepo.Save(ctx, record); err != nil {
			h.logger.WithError(err).WithFields(map[string]interface{}{
				"athlete_id": id,
			}).Warn("Failed to persist fresh valuation")
		}
	}

	response := ValuationResponse{Valuation: record}
	if r.URL.Query().Get("insights") == "true" {
		response.Insights = h.calculator.BuildInsights(athlete)
	}

	if err := h.cache.Set(ctx, cacheKey, response, redis.TTLMedium); err != nil {
		h.logger.WithError(err).Debug("Valuation cache write failed")
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    response,
	})
}

// Recalculate recomputes an athlete's valuation, subject to the
// per-athlete daily limit.
// POST /api/athletes/{id}/valuation/recalculate
func (h *ValuationHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]
	if id == "" {
		respondError(w, http.StatusBadRequest, "athlete id is required")
		return
	}

	allowed, remaining, err := h.limiter.Allow(ctx, redis.ValuationLimit(id, h.dailyLimit))
	if err != nil {
		h.logger.WithError(err).Error("Rate limit check failed")
		respondError(w, http.StatusInternalServerError, "Rate limit check failed")
		return
	}
	if !allowed {
		respondJSON(w, http.StatusTooManyRequests, map[string]interface{}{
			"error":     "daily recalculation limit reached",
			"remaining": 0,
		})
		return
	}

	athlete, err := h.athleteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			respondError(w, http.StatusNotFound, "athlete not found")
			return
		}
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"athlete_id": id,
		}).Error("Failed to load athlete")
		respondError(w, http.StatusInternalServerError, "Failed to load athlete")
		return
	}

	record := h.calculator.Calculate(athlete, time.Now().UTC())

	// Rank against the stored population when one exists
	if scores, err := h.valuationRepo.ListScores(ctx); err == nil {
		record.Percentile = valuation.PercentileRank(record.Score, scores)
	}

	if err := h.valuationRepo.Save(ctx, record); err != nil {
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"athlete_id": id,
		}).Error("Failed to save valuation")
		respondError(w, http.StatusInternalServerError, "Failed to save valuation")
		return
	}

	// Drop the stale cache entry
	if err := h.cache.Delete(ctx, redis.ValuationKey(id)); err != nil {
		h.logger.WithError(err).Debug("Valuation cache invalidation failed")
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"data":      ValuationResponse{Valuation: record, Insights: h.calculator.BuildInsights(athlete)},
		"remaining": remaining,
	})
}
