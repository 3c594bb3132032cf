package places

import (
	"context"

	"vo-server/models"
)

// NearbySearchRequest describes one category search around a center point.
// RankByDistance and RadiusMeters are mutually exclusive at the provider
// level: rank-by-distance searches must not carry a radius.
type NearbySearchRequest struct {
	Center         models.Coordinates
	VenueType      string
	RadiusMeters   float64
	RankByDistance bool
}

// PlacesAPI defines the interface the optimizer needs from a places provider.
type PlacesAPI interface {
	NearbySearch(ctx context.Context, req NearbySearchRequest) (*models.PlacesSearchResponse, error)
	SetCredentials(apiKey string)
}
