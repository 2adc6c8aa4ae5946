package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5"

	"github.com/fairplay-nil/backend/internal/contracts"
	"github.com/fairplay-nil/backend/internal/match"
	"github.com/fairplay-nil/backend/pkg/logger"
	"github.com/fairplay-nil/backend/pkg/redis"
)

// candidateFetchLimit bounds how many athletes one batch considers
const candidateFetchLimit = 1000

// MatchHandler serves campaign matchmaking endpoints
type MatchHandler struct {
	campaignRepo contracts.CampaignRepository
	athleteRepo  contracts.AthleteRepository
	orchestrator *match.Orchestrator
	cache        *redis.Cache
	upgrader     websocket.Upgrader
	logger       *logger.Logger
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(
	campaignRepo contracts.CampaignRepository,
	athleteRepo contracts.AthleteRepository,
	orchestrator *match.Orchestrator,
	cache *redis.Cache,
	log *logger.Logger,
) *MatchHandler {
	return &MatchHandler{
		campaignRepo: campaignRepo,
		athleteRepo:  athleteRepo,
		orchestrator: orchestrator,
		cache:        cache,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		logger: log,
	}
}

// MatchRunResponse is the API shape for one matchmaking batch
type MatchRunResponse struct {
	Results []*contracts.MatchResult `json:"results"`
	Summary *contracts.MatchSummary  `json:"summary"`
}

// RunMatches scores every candidate athlete against a campaign.
// POST /api/campaigns/{id}/matches
func (h *MatchHandler) RunMatches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]
	if id == "" {
		respondError(w, http.StatusBadRequest, "campaign id is required")
		return
	}

	var opts contracts.MatchOptions
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
			respondError(w, http.StatusBadRequest, "invalid match options")
			return
		}
	}

	campaign, candidates, ok := h.loadBatch(w, r, id)
	if !ok {
		return
	}

	results, summary, err := h.orchestrator.Match(ctx, campaign, candidates, opts)
	if err != nil {
		if errors.Is(err, contracts.ErrInvalidCriteria) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"campaign_id": id,
		}).Error("Matchmaking failed")
		respondError(w, http.StatusInternalServerError, "Matchmaking failed")
		return
	}

	response := MatchRunResponse{Results: results, Summary: summary}
	if err := h.cache.Set(ctx, redis.CampaignMatchesKey(id), response, redis.TTLShort); err != nil {
		h.logger.WithError(err).Debug("Match cache write failed")
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    response,
	})
}

// GetBreakdown scores a single athlete against a campaign with the
// full per-dimension breakdown.
// GET /api/campaigns/{id}/matches/{athleteID}
func (h *MatchHandler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	campaignID := vars["id"]
	athleteID := vars["athleteID"]
	if campaignID == "" || athleteID == "" {
		respondError(w, http.StatusBadRequest, "campaign id and athlete id are required")
		return
	}

	campaign, err := h.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			respondError(w, http.StatusNotFound, "campaign not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to load campaign")
		return
	}

	athlete, err := h.athleteRepo.GetByID(ctx, athleteID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			respondError(w, http.StatusNotFound, "athlete not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to load athlete")
		return
	}

	results, _, err := h.orchestrator.Match(ctx, campaign, []*contracts.AthleteProfile{athlete},
		contracts.MatchOptions{IncludeBreakdown: true})
	if err != nil {
		if errors.Is(err, contracts.ErrInvalidCriteria) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Scoring failed")
		return
	}
	if len(results) == 0 {
		respondError(w, http.StatusUnprocessableEntity, "athlete could not be scored")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    results[0],
	})
}

// streamMessage frames one websocket payload
type streamMessage struct {
	Type    string                  `json:"type"` // "result" or "summary"
	Result  *contracts.MatchResult  `json:"result,omitempty"`
	Summary *contracts.MatchSummary `json:"summary,omitempty"`
}

// StreamMatches runs a matchmaking batch and streams results over a
// websocket, one result per message, finishing with the summary.
// GET /api/campaigns/{id}/matches/stream?min_score=0&max_results=0
func (h *MatchHandler) StreamMatches(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		respondError(w, http.StatusBadRequest, "campaign id is required")
		return
	}

	opts := contracts.MatchOptions{IncludeBreakdown: true}
	if v := r.URL.Query().Get("min_score"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.MinScore = n
		}
	}
	if v := r.URL.Query().Get("max_results"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.MaxResults = n
		}
	}

	campaign, candidates, ok := h.loadBatch(w, r, id)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Error("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	results, summary, err := h.orchestrator.Match(r.Context(), campaign, candidates, opts)
	if err != nil {
		conn.WriteJSON(map[string]string{"error": err.Error()})
		return
	}

	for _, result := range results {
		if err := conn.WriteJSON(streamMessage{Type: "result", Result: result}); err != nil {
			h.logger.WithError(err).Debug("Websocket write failed")
			return
		}
	}
	conn.WriteJSON(streamMessage{Type: "summary", Summary: summary})
}

// loadBatch loads the campaign and its candidate population, writing
// the error response itself when either load fails.
func (h *MatchHandler) loadBatch(w http.ResponseWriter, r *http.Request, campaignID string) (*contracts.CampaignCriteria, []*contracts.AthleteProfile, bool) {
	ctx := r.Context()

	campaign, err := h.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			respondError(w, http.StatusNotFound, "campaign not found")
			return nil, nil, false
		}
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"campaign_id": campaignID,
		}).Error("Failed to load campaign")
		respondError(w, http.StatusInternalServerError, "Failed to load campaign")
		return nil, nil, false
	}

	var candidates []*contracts.AthleteProfile
	if len(campaign.Sports) == 1 {
		// Narrow the population when the campaign targets one sport
		candidates, err = h.athleteRepo.ListBySport(ctx, campaign.Sports[0])
	} else {
		candidates, err = h.athleteRepo.List(ctx, candidateFetchLimit, 0)
	}
	if err != nil {
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"campaign_id": campaignID,
		}).Error("Failed to load candidates")
		respondError(w, http.StatusInternalServerError, "Failed to load candidates")
		return nil, nil, false
	}

	return campaign, candidates, true
}
