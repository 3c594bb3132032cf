package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vo-server/config"
	"vo-server/models"
)

func weightedAt(weight, lat, lng float64) models.WeightedParticipant {
	return models.WeightedParticipant{
		Weight:        weight,
		Location:      models.ParticipantLocation{Latitude: lat, Longitude: lng},
		TransportMode: models.TransportDriving,
	}
}

func TestCalculateCentroid_EqualWeights(t *testing.T) {
	// Two yes-voters at (0,0) and (0,2) meet in the middle.
	centroid := calculateCentroid([]models.WeightedParticipant{
		weightedAt(1.0, 0, 0),
		weightedAt(1.0, 0, 2),
	})

	assert.Equal(t, models.Coordinates{Lat: 0, Lng: 1}, centroid)
}

func TestCalculateCentroid_ZeroWeightHasNoInfluence(t *testing.T) {
	centroid := calculateCentroid([]models.WeightedParticipant{
		weightedAt(1.0, 0, 0),
		weightedAt(0, 10, 10),
	})

	assert.Equal(t, models.Coordinates{Lat: 0, Lng: 0}, centroid)
}

func TestCalculateCentroid_AllZeroWeightsFallsBackToMean(t *testing.T) {
	centroid := calculateCentroid([]models.WeightedParticipant{
		weightedAt(0, 0, 0),
		weightedAt(0, 2, 0),
	})

	assert.Equal(t, models.Coordinates{Lat: 1, Lng: 0}, centroid)
}

func TestCalculateCentroid_SingleParticipant(t *testing.T) {
	centroid := calculateCentroid([]models.WeightedParticipant{
		weightedAt(1.0, -8.0622, -34.8711),
	})

	assert.Equal(t, models.Coordinates{Lat: -8.0622, Lng: -34.8711}, centroid)
}

func TestCalculateCentroid_OrderInvariant(t *testing.T) {
	a := []models.WeightedParticipant{
		weightedAt(1.0, 1, 1),
		weightedAt(0.5, 3, 5),
		weightedAt(1.0, -2, 4),
	}
	b := []models.WeightedParticipant{a[2], a[0], a[1]}

	assert.InDelta(t, calculateCentroid(a).Lat, calculateCentroid(b).Lat, 1e-12)
	assert.InDelta(t, calculateCentroid(a).Lng, calculateCentroid(b).Lng, 1e-12)
}

func TestCalculateSearchRadius_ClampedToBounds(t *testing.T) {
	centroid := models.Coordinates{Lat: 0, Lng: 0}

	// Participants ~100m away: clamped up to the minimum.
	tight := []models.WeightedParticipant{
		weightedAt(1.0, 0.0009, 0),
		weightedAt(1.0, -0.0009, 0),
	}
	assert.Equal(t, config.MIN_SEARCH_RADIUS_METERS, calculateSearchRadius(tight, centroid))

	// Participants ~100km away: clamped down to the maximum.
	wide := []models.WeightedParticipant{
		weightedAt(1.0, 0.9, 0),
		weightedAt(1.0, -0.9, 0),
	}
	assert.Equal(t, config.MAX_SEARCH_RADIUS_METERS, calculateSearchRadius(wide, centroid))
}

func TestCalculateSearchRadius_WithinBoundsUsesSpread(t *testing.T) {
	centroid := models.Coordinates{Lat: 0, Lng: 0}
	// ~2.2km from centroid.
	spread := []models.WeightedParticipant{
		weightedAt(1.0, 0.02, 0),
		weightedAt(1.0, -0.02, 0),
	}

	radius := calculateSearchRadius(spread, centroid)

	assert.Greater(t, radius, config.MIN_SEARCH_RADIUS_METERS)
	assert.Less(t, radius, config.MAX_SEARCH_RADIUS_METERS)
	assert.InDelta(t, 2224, radius, 30)
}

func TestCalculateSearchRadius_CoLocatedDefaults(t *testing.T) {
	centroid := models.Coordinates{Lat: 5, Lng: 5}
	same := []models.WeightedParticipant{
		weightedAt(1.0, 5, 5),
		weightedAt(0.5, 5, 5),
	}

	assert.Equal(t, config.DEFAULT_ETA_SEARCH_RADIUS_METERS, calculateSearchRadius(same, centroid))
}
