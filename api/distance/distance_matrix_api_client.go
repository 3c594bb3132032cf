package distance

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"vo-server/api"
	"vo-server/config"
	"vo-server/models"
)

// DistanceMatrixApiClient embeds the common HTTPClient. Responses are
// memoized in-process: repeated optimizations over the same poll hit the
// provider once per (origins, destination, mode) tuple within the TTL.
type DistanceMatrixApiClient struct {
	*api.HTTPClient
	apiKey string
	memo   *gocache.Cache
}

// NewDistanceMatrixApiClient creates a new instance of DistanceMatrixApiClient
func NewDistanceMatrixApiClient(httpClient *api.HTTPClient) *DistanceMatrixApiClient {
	ttl := time.Duration(config.MATRIX_MEMO_TTL_MINUTES) * time.Minute
	return &DistanceMatrixApiClient{
		HTTPClient: httpClient,
		memo:       gocache.New(ttl, 2*ttl),
	}
}

// SetCredentials sets the provider API key sent with every request.
func (c *DistanceMatrixApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// GetTravelMatrix fetches distance and duration from each origin to the
// destination using the given travel mode.
func (c *DistanceMatrixApiClient) GetTravelMatrix(ctx context.Context, origins []models.Coordinates, destination models.Coordinates, mode models.TransportMode) (*models.DistanceMatrixResponse, error) {
	originsParam := formatCoordinatesList(origins)
	destParam := formatCoordinates(destination)

	memoKey := originsParam + "->" + destParam + "@" + string(mode)
	if cached, found := c.memo.Get(memoKey); found {
		return cached.(*models.DistanceMatrixResponse), nil
	}

	query := url.Values{}
	query.Set("origins", originsParam)
	query.Set("destinations", destParam)
	query.Set("mode", string(mode))
	query.Set("key", c.apiKey)

	var response models.DistanceMatrixResponse
	err := c.Request(ctx, "GET", "/json", query, nil, nil, &response)
	if err != nil {
		return nil, err
	}

	c.memo.Set(memoKey, &response, gocache.DefaultExpiration)
	return &response, nil
}

func formatCoordinates(c models.Coordinates) string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng)
}

func formatCoordinatesList(coords []models.Coordinates) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = formatCoordinates(c)
	}
	return strings.Join(parts, "|")
}
