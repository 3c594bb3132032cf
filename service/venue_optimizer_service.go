package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"vo-server/api/distance"
	"vo-server/api/places"
	"vo-server/config"
	"vo-server/dao/redis"
	"vo-server/models"
)

// VenueOptimizerService runs the optimization pipeline: weights, centroid,
// search strategy, candidate filtering, per-venue metrics, ranking. It is
// stateless across invocations; every call builds its own working set.
type VenueOptimizerService struct {
	placesAPI places.PlacesAPI
	matrixAPI distance.DistanceMatrixAPI
	venueDao  *redis.RedisVenueDAO
}

// NewVenueOptimizerService constructs the service. venueDao may be nil in
// tests; caching is skipped then.
func NewVenueOptimizerService(
	placesAPI places.PlacesAPI,
	matrixAPI distance.DistanceMatrixAPI,
	venueDao *redis.RedisVenueDAO,
) *VenueOptimizerService {
	return &VenueOptimizerService{
		placesAPI: placesAPI,
		matrixAPI: matrixAPI,
		venueDao:  venueDao,
	}
}

// FindOptimalVenues returns the top venues for the poll's selected date,
// ranked ascending by the weighted metric.
func (s *VenueOptimizerService) FindOptimalVenues(
	ctx context.Context,
	participants []models.Participant,
	selectedDateID string,
	prefs models.VenuePreferences,
	optimizationType models.OptimizationType,
) (*models.OptimizationResult, error) {
	requestID := uuid.NewString()

	if prefs.VenueType == "" {
		return nil, models.ErrInvalidPreferences
	}

	weighted := weightParticipants(participants, selectedDateID)
	if len(weighted) < config.MIN_LOCATED_PARTICIPANTS {
		return nil, models.ErrInsufficientParticipants
	}

	if cached := s.lookupCachedResult(weighted, selectedDateID, prefs, optimizationType); cached != nil {
		log.Printf("[VenueOptimizerService] request=%s served from result cache", requestID)
		return cached, nil
	}

	centroid := calculateCentroid(weighted)
	log.Printf("[VenueOptimizerService] request=%s centroid=(%.6f, %.6f) participants=%d",
		requestID, centroid.Lat, centroid.Lng, len(weighted))

	candidates, err := s.searchCandidates(ctx, weighted, centroid, prefs, optimizationType)
	if err != nil {
		return nil, err
	}

	result := &models.OptimizationResult{RequestID: requestID, Centroid: centroid}
	if len(candidates) == 0 {
		log.Printf("[VenueOptimizerService] request=%s no candidates after filtering", requestID)
		s.storeCachedResult(weighted, selectedDateID, prefs, optimizationType, result)
		return result, nil
	}

	scores, err := s.scoreCandidates(ctx, requestID, candidates, weighted, optimizationType)
	if err != nil {
		return nil, err
	}

	ranked := rankVenues(scores)
	for i := range ranked {
		ranked[i].Metrics = roundMetrics(ranked[i].Metrics)
	}
	result.Venues = ranked

	s.storeCachedResult(weighted, selectedDateID, prefs, optimizationType, result)
	return result, nil
}

// searchCandidates picks the search strategy, issues the nearby search and
// applies the local filters. ZERO_RESULTS yields an empty candidate list,
// not an error.
func (s *VenueOptimizerService) searchCandidates(
	ctx context.Context,
	weighted []models.WeightedParticipant,
	centroid models.Coordinates,
	prefs models.VenuePreferences,
	optimizationType models.OptimizationType,
) ([]models.VenueCandidate, error) {
	req := places.NearbySearchRequest{
		Center:    centroid,
		VenueType: prefs.VenueType,
	}
	switch {
	case prefs.Radius != nil:
		req.RadiusMeters = *prefs.Radius
	case optimizationType == models.OptimizeDistance:
		// Rank-by-distance and an explicit radius are mutually exclusive
		// at the provider; distance mode wants nearest-first ordering.
		req.RankByDistance = true
	default:
		req.RadiusMeters = calculateSearchRadius(weighted, centroid)
	}

	resp, err := s.placesAPI.NearbySearch(ctx, req)
	if err != nil {
		return nil, models.NewProviderError("places", "", err)
	}
	switch resp.Status {
	case models.ProviderStatusOK:
	case models.ProviderStatusZeroResults:
		return nil, nil
	default:
		return nil, models.NewProviderError("places", resp.Status,
			errors.New("nearby search failed"))
	}

	filtered := filterPlaceResults(resp.Results, prefs)

	// Distance mode arrives nearest-first from the provider, so the top
	// slots are already known before metrics. ETA ordering is only
	// meaningful after the metrics stage, so everything is kept there.
	if optimizationType == models.OptimizeDistance && len(filtered) > config.TOP_VENUES_LIMIT {
		filtered = filtered[:config.TOP_VENUES_LIMIT]
	}

	candidates := make([]models.VenueCandidate, len(filtered))
	for i, place := range filtered {
		candidates[i] = place.ToCandidate()
	}

	s.cacheCandidates(candidates, models.SearchArea{
		Center:       centroid,
		VenueType:    prefs.VenueType,
		RadiusMeters: req.RadiusMeters,
	})
	return candidates, nil
}

// scoreCandidates fans the per-venue matrix queries out concurrently and
// waits for all of them. A single venue's failure drops that venue from
// the result; only all venues failing fails the call.
func (s *VenueOptimizerService) scoreCandidates(
	ctx context.Context,
	requestID string,
	candidates []models.VenueCandidate,
	weighted []models.WeightedParticipant,
	optimizationType models.OptimizationType,
) ([]models.VenueScore, error) {
	scored := make([]*models.VenueScore, len(candidates))
	var mu sync.Mutex
	var lastErr error

	g, gctx := errgroup.WithContext(ctx)
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			metrics, err := metricsForVenue(gctx, s.matrixAPI, candidate, weighted, optimizationType)
			if err != nil {
				log.Printf("[VenueOptimizerService] request=%s dropping venue %q: %v",
					requestID, candidate.Name, err)
				mu.Lock()
				lastErr = err
				mu.Unlock()
				return nil // partial-result policy: never abort the siblings
			}
			scored[i] = &models.VenueScore{VenueCandidate: candidate, Metrics: metrics}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	scores := make([]models.VenueScore, 0, len(candidates))
	for _, sc := range scored {
		if sc != nil {
			scores = append(scores, *sc)
		}
	}
	if len(scores) == 0 {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, models.NewProviderError("distance_matrix", "", errors.New("all venues failed metrics computation"))
	}
	return scores, nil
}

func (s *VenueOptimizerService) cacheCandidates(candidates []models.VenueCandidate, area models.SearchArea) {
	if s.venueDao == nil {
		return
	}
	for _, c := range candidates {
		if err := s.venueDao.UpsertCandidate(c); err != nil {
			log.Printf("[VenueOptimizerService] Failed to cache candidate %s: %v", c.PlaceID, err)
		}
	}
	if err := s.venueDao.RecordSearchArea(area); err != nil {
		log.Printf("[VenueOptimizerService] Failed to record search area: %v", err)
	}
}

func (s *VenueOptimizerService) lookupCachedResult(
	weighted []models.WeightedParticipant,
	selectedDateID string,
	prefs models.VenuePreferences,
	optimizationType models.OptimizationType,
) *models.OptimizationResult {
	if s.venueDao == nil {
		return nil
	}
	digest := resultDigest(weighted, selectedDateID, prefs, optimizationType)
	cached, err := s.venueDao.GetCachedResult(digest)
	if err != nil {
		log.Printf("[VenueOptimizerService] Result cache read failed: %v", err)
		return nil
	}
	return cached
}

func (s *VenueOptimizerService) storeCachedResult(
	weighted []models.WeightedParticipant,
	selectedDateID string,
	prefs models.VenuePreferences,
	optimizationType models.OptimizationType,
	result *models.OptimizationResult,
) {
	if s.venueDao == nil {
		return
	}
	digest := resultDigest(weighted, selectedDateID, prefs, optimizationType)
	if err := s.venueDao.SetCachedResult(digest, result); err != nil {
		log.Printf("[VenueOptimizerService] Result cache write failed: %v", err)
	}
}

// resultDigest derives a deterministic cache key from everything the
// pipeline's output depends on.
func resultDigest(
	weighted []models.WeightedParticipant,
	selectedDateID string,
	prefs models.VenuePreferences,
	optimizationType models.OptimizationType,
) string {
	payload := struct {
		Weighted       []models.WeightedParticipant
		SelectedDateID string
		Preferences    models.VenuePreferences
		Type           models.OptimizationType
	}{weighted, selectedDateID, prefs, optimizationType}

	data, err := json.Marshal(payload)
	if err != nil {
		return selectedDateID + ":" + string(optimizationType)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
