package services

import (
	"vo-server/config"
	"vo-server/models"
	"vo-server/util"
)

// calculateCentroid returns the weight-biased geographic center of the
// participants. When the total weight is zero (nobody voted yes or
// ifNeedBe) it falls back to the unweighted arithmetic mean so a usable
// center still comes out. Callers guarantee a non-empty input.
func calculateCentroid(weighted []models.WeightedParticipant) models.Coordinates {
	var totalWeight, weightedLat, weightedLng float64
	for _, p := range weighted {
		totalWeight += p.Weight
		weightedLat += p.Weight * p.Location.Latitude
		weightedLng += p.Weight * p.Location.Longitude
	}

	if totalWeight == 0 {
		var sumLat, sumLng float64
		for _, p := range weighted {
			sumLat += p.Location.Latitude
			sumLng += p.Location.Longitude
		}
		n := float64(len(weighted))
		return models.Coordinates{Lat: sumLat / n, Lng: sumLng / n}
	}

	return models.Coordinates{Lat: weightedLat / totalWeight, Lng: weightedLng / totalWeight}
}

// calculateSearchRadius sizes the search to the participant spread: the
// maximum great-circle distance from the centroid to any participant,
// clamped to [MIN_SEARCH_RADIUS_METERS, MAX_SEARCH_RADIUS_METERS]. A fully
// co-located group falls back to the default ETA radius.
func calculateSearchRadius(weighted []models.WeightedParticipant, centroid models.Coordinates) float64 {
	var maxDistance float64
	for _, p := range weighted {
		d := util.HaversineMeters(p.Coordinates(), centroid)
		if d > maxDistance {
			maxDistance = d
		}
	}

	if maxDistance == 0 {
		return config.DEFAULT_ETA_SEARCH_RADIUS_METERS
	}
	if maxDistance < config.MIN_SEARCH_RADIUS_METERS {
		return config.MIN_SEARCH_RADIUS_METERS
	}
	if maxDistance > config.MAX_SEARCH_RADIUS_METERS {
		return config.MAX_SEARCH_RADIUS_METERS
	}
	return maxDistance
}
