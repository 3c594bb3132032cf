package places

import (
	"context"
	"fmt"

	"vo-server/models"
	"vo-server/util"
)

const PLACES_NEARBY_RESPONSE_PATH = "./resources/places_nearby_response.json"

// PlacesApiClientMock serves a canned nearby-search response from disk.
type PlacesApiClientMock struct {
	FixturePath string
}

// NewPlacesApiClientMock creates a new instance of PlacesApiClientMock
func NewPlacesApiClientMock() *PlacesApiClientMock {
	return &PlacesApiClientMock{FixturePath: PLACES_NEARBY_RESPONSE_PATH}
}

// NearbySearch returns the fixture response regardless of the request.
func (c *PlacesApiClientMock) NearbySearch(ctx context.Context, req NearbySearchRequest) (*models.PlacesSearchResponse, error) {
	response, err := util.ReadPlacesSearchResponseFromJSON(c.FixturePath)
	if err != nil {
		fmt.Println("Could not read places nearby response from json")
		return nil, err
	}
	return response, nil
}

// SetCredentials is a no-op on the mock.
func (c *PlacesApiClientMock) SetCredentials(apiKey string) {}
