package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"vo-server/dao/redis"
	"vo-server/models"
	services "vo-server/service"
)

const (
	LAT_QUERY_ARG    = "lat"
	LON_QUERY_ARG    = "lon"
	RADIUS_QUERY_ARG = "radius"
)

type VenueHandler struct {
	optimizerService *services.VenueOptimizerService
	redisVenueDao    *redis.RedisVenueDAO
}

func NewVenueHandler(
	optimizerService *services.VenueOptimizerService,
	redisVenueDao *redis.RedisVenueDAO,
) *VenueHandler {
	return &VenueHandler{
		optimizerService: optimizerService,
		redisVenueDao:    redisVenueDao,
	}
}

// Optimize handles POST /v1/venues/optimize: runs the full pipeline and
// returns the ranked venues for the request's selected date.
func (h *VenueHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	var req models.OptimizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	optimizationType, err := models.ParseOptimizationType(req.OptimizationType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.optimizerService.FindOptimalVenues(
		r.Context(), req.Participants, req.SelectedDateID, req.Preferences, optimizationType)
	if err != nil {
		h.writeOptimizeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// writeOptimizeError maps pipeline failures to HTTP statuses. Callers treat
// anything non-200 as "could not calculate venues right now" and retry.
func (h *VenueHandler) writeOptimizeError(w http.ResponseWriter, err error) {
	var provErr *models.ProviderError
	switch {
	case errors.Is(err, models.ErrInvalidPreferences),
		errors.Is(err, models.ErrInsufficientParticipants):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &provErr):
		log.Printf("Provider failure during optimization: %v", err)
		http.Error(w, "Venue optimization unavailable", http.StatusBadGateway)
	default:
		log.Println("Error optimizing venues:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// GetVenuesNearby handles GET /v1/venues/nearby, serving the geo-indexed
// candidate cache populated by past optimizations and the refresher job.
func (h *VenueHandler) GetVenuesNearby(w http.ResponseWriter, r *http.Request) {
	lat, lon, radius, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	candidates, err := h.redisVenueDao.GetNearbyCandidates(lat, lon, radius)
	if err != nil {
		log.Println("Error loading nearby candidates:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(candidates); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func (h *VenueHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	lat, lon, radius float64, ok bool,
) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lon, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}
	ok = true
	return
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

// Ping handles GET /ping
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
