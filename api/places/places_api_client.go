package places

import (
	"context"
	"fmt"
	"net/url"

	"vo-server/api"
	"vo-server/models"
)

// PlacesApiClient embeds the common HTTPClient
type PlacesApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
}

// NewPlacesApiClient creates a new instance of PlacesApiClient
func NewPlacesApiClient(httpClient *api.HTTPClient) *PlacesApiClient {
	return &PlacesApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials sets the provider API key sent with every request.
func (c *PlacesApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// NearbySearch issues a category search around the given center and decodes
// the raw provider response. Status interpretation is left to the caller.
func (c *PlacesApiClient) NearbySearch(ctx context.Context, req NearbySearchRequest) (*models.PlacesSearchResponse, error) {
	query := url.Values{}
	query.Set("location", fmt.Sprintf("%.6f,%.6f", req.Center.Lat, req.Center.Lng))
	query.Set("type", req.VenueType)
	query.Set("key", c.apiKey)
	if req.RankByDistance {
		// The provider rejects requests carrying both rankby and radius.
		query.Set("rankby", "distance")
	} else {
		query.Set("radius", fmt.Sprintf("%.0f", req.RadiusMeters))
	}

	var response models.PlacesSearchResponse
	err := c.Request(ctx, "GET", "/nearbysearch/json", query, nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
