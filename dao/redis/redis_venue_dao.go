package redis

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"vo-server/config"
	"vo-server/db"
	"vo-server/models"
)

const CANDIDATES_GEO_KEY_V1 = "venue_candidates_geo_v1"
const CANDIDATE_MEMBER_FORMAT_V1 = "venue_candidate_v1:%s"

// OPTIMIZATION_RESULT_KEY_FORMAT caches full ranked results per request digest.
const OPTIMIZATION_RESULT_KEY_FORMAT = "optimization_result_v1:%s"

// RECENT_SEARCH_AREA_KEY_FORMAT records areas for the cache refresher.
const RECENT_SEARCH_AREA_KEY_FORMAT = "recent_search_area_v1:%s"
const RECENT_SEARCH_AREA_TTL = 24 * time.Hour

// RedisVenueDAO handles venue candidate and result caching using Redis.
type RedisVenueDAO struct {
	client db.RedisClient
}

// NewRedisVenueDAO initializes a RedisVenueDAO with the Redis client.
func NewRedisVenueDAO(client db.RedisClient) *RedisVenueDAO {
	return &RedisVenueDAO{client: client}
}

// UpsertCandidate stores the candidate as a geolocation with its JSON data.
func (dao *RedisVenueDAO) UpsertCandidate(c models.VenueCandidate) error {
	ctx := dao.client.GetContext()
	memberKey := fmt.Sprintf(CANDIDATE_MEMBER_FORMAT_V1, c.PlaceID)
	return dao.client.AddLocationWithJSON(ctx, CANDIDATES_GEO_KEY_V1, memberKey, c.Location.Lat, c.Location.Lng, c)
}

// GetNearbyCandidates retrieves cached candidates within radiusMeters.
func (dao *RedisVenueDAO) GetNearbyCandidates(lat, lng, radiusMeters float64) ([]models.VenueCandidate, error) {
	candidatesJSON, err := dao.client.GetLocationsWithinRadius(CANDIDATES_GEO_KEY_V1, lat, lng, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("[RedisVenueDAO] failed to get candidates: %v", err)
	}

	candidates := make([]models.VenueCandidate, len(candidatesJSON))
	for i, candidateJSON := range candidatesJSON {
		if err := json.Unmarshal([]byte(candidateJSON), &candidates[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal candidate JSON: %v", err)
		}
	}
	return candidates, nil
}

// SetCachedResult caches a full optimization result under its digest.
func (dao *RedisVenueDAO) SetCachedResult(digest string, result *models.OptimizationResult) error {
	key := fmt.Sprintf(OPTIMIZATION_RESULT_KEY_FORMAT, digest)
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal optimization result: %w", err)
	}
	ttl := time.Duration(config.OPTIMIZATION_RESULT_TTL_MINUTES) * time.Minute
	if err := dao.client.SetWithTTL(key, string(data), ttl); err != nil {
		return fmt.Errorf("failed to set optimization result in redis: %w", err)
	}
	return nil
}

// GetCachedResult returns the cached result for the digest, or nil on miss.
func (dao *RedisVenueDAO) GetCachedResult(digest string) (*models.OptimizationResult, error) {
	key := fmt.Sprintf(OPTIMIZATION_RESULT_KEY_FORMAT, digest)
	str, err := dao.client.Get(key)
	if err != nil {
		// Cache misses surface as key-not-found errors from the client.
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "nil") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get optimization result from redis: %w", err)
	}
	var result models.OptimizationResult
	if err := json.Unmarshal([]byte(str), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal optimization result JSON: %w", err)
	}
	return &result, nil
}

// RecordSearchArea remembers an area a search ran against so the refresher
// can re-warm it. Entries expire on their own.
func (dao *RedisVenueDAO) RecordSearchArea(area models.SearchArea) error {
	data, err := json.Marshal(area)
	if err != nil {
		return fmt.Errorf("failed to marshal search area: %w", err)
	}
	sum := sha256.Sum256(data)
	key := fmt.Sprintf(RECENT_SEARCH_AREA_KEY_FORMAT, hex.EncodeToString(sum[:8]))
	if err := dao.client.SetWithTTL(key, string(data), RECENT_SEARCH_AREA_TTL); err != nil {
		return fmt.Errorf("failed to record search area: %w", err)
	}
	return nil
}

// ListRecentSearchAreas returns every non-expired recorded search area.
func (dao *RedisVenueDAO) ListRecentSearchAreas() ([]models.SearchArea, error) {
	pattern := fmt.Sprintf(RECENT_SEARCH_AREA_KEY_FORMAT, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list search area keys: %w", err)
	}

	areas := make([]models.SearchArea, 0, len(keys))
	for _, k := range keys {
		str, err := dao.client.Get(k)
		if err != nil {
			continue
		}
		var area models.SearchArea
		if err := json.Unmarshal([]byte(str), &area); err != nil {
			continue
		}
		areas = append(areas, area)
	}
	return areas, nil
}

// DeleteCachedResult drops a cached optimization result.
func (dao *RedisVenueDAO) DeleteCachedResult(digest string) error {
	key := fmt.Sprintf(OPTIMIZATION_RESULT_KEY_FORMAT, digest)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete cached result %s: %w", key, err)
	}
	return nil
}
