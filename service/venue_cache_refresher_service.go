package services

import (
	"context"
	"log"
	"time"

	"vo-server/api/places"
	"vo-server/config"
	"vo-server/dao/redis"
	"vo-server/models"
)

// VenueCacheRefresherService periodically re-runs nearby searches for the
// areas recent optimizations touched, keeping the geo-indexed candidate
// cache behind /v1/venues/nearby warm.
type VenueCacheRefresherService struct {
	venueDao  *redis.RedisVenueDAO
	placesAPI places.PlacesAPI
}

// NewVenueCacheRefresherService constructs a new refresher with dependencies.
func NewVenueCacheRefresherService(
	venueDao *redis.RedisVenueDAO,
	placesAPI places.PlacesAPI,
) *VenueCacheRefresherService {
	return &VenueCacheRefresherService{
		venueDao:  venueDao,
		placesAPI: placesAPI,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (vr *VenueCacheRefresherService) StartPeriodicJob(interval time.Duration) {
	go vr.startPeriodicJob(interval)
}

func (vr *VenueCacheRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[VenueCacheRefresherService] Running periodic candidate cache refresh.")
		if err := vr.RefreshRecentAreas(context.Background()); err != nil {
			log.Printf("[VenueCacheRefresherService] RefreshRecentAreas returned error: %v", err)
		} else {
			log.Println("[VenueCacheRefresherService] RefreshRecentAreas completed successfully.")
		}
	}
}

// RefreshRecentAreas re-searches every recorded area and re-upserts the
// surviving candidates. A failing area is skipped, not fatal.
func (vr *VenueCacheRefresherService) RefreshRecentAreas(ctx context.Context) error {
	areas, err := vr.venueDao.ListRecentSearchAreas()
	if err != nil {
		return err
	}
	log.Printf("[VenueCacheRefresherService] Refreshing %d recent search areas", len(areas))

	for _, area := range areas {
		radius := area.RadiusMeters
		if radius <= 0 {
			radius = config.DEFAULT_ETA_SEARCH_RADIUS_METERS
		}

		resp, err := vr.placesAPI.NearbySearch(ctx, places.NearbySearchRequest{
			Center:       area.Center,
			VenueType:    area.VenueType,
			RadiusMeters: radius,
		})
		if err != nil {
			log.Printf("[VenueCacheRefresherService] Search failed for area (%.6f, %.6f) type=%s: %v",
				area.Center.Lat, area.Center.Lng, area.VenueType, err)
			continue
		}
		if resp.Status != models.ProviderStatusOK {
			log.Printf("[VenueCacheRefresherService] Search status=%s for area (%.6f, %.6f), skipping",
				resp.Status, area.Center.Lat, area.Center.Lng)
			continue
		}

		filtered := filterPlaceResults(resp.Results, models.VenuePreferences{VenueType: area.VenueType})
		for _, place := range filtered {
			if err := vr.venueDao.UpsertCandidate(place.ToCandidate()); err != nil {
				log.Printf("[VenueCacheRefresherService] Upsert failed for %s: %v", place.PlaceID, err)
			}
		}
		log.Printf("[VenueCacheRefresherService] Refreshed %d candidates for area type=%s",
			len(filtered), area.VenueType)
	}
	return nil
}
