package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vo-server/api/places"
	redisdao "vo-server/dao/redis"
	"vo-server/db"
	"vo-server/models"
	services "vo-server/service"
)

// scriptedPlacesAPI returns a fixed response or error.
type scriptedPlacesAPI struct {
	response *models.PlacesSearchResponse
	err      error
}

func (s *scriptedPlacesAPI) NearbySearch(ctx context.Context, req places.NearbySearchRequest) (*models.PlacesSearchResponse, error) {
	return s.response, s.err
}

func (s *scriptedPlacesAPI) SetCredentials(apiKey string) {}

// constantMatrixAPI returns the same element for every origin.
type constantMatrixAPI struct {
	meters  int64
	seconds int64
}

func (s *constantMatrixAPI) GetTravelMatrix(ctx context.Context, origins []models.Coordinates, destination models.Coordinates, mode models.TransportMode) (*models.DistanceMatrixResponse, error) {
	rows := make([]models.DistanceMatrixRow, len(origins))
	for i := range origins {
		rows[i] = models.DistanceMatrixRow{
			Elements: []models.DistanceMatrixElement{{
				Status:   models.ProviderStatusOK,
				Distance: models.MatrixValue{Value: s.meters},
				Duration: models.MatrixValue{Value: s.seconds},
			}},
		}
	}
	return &models.DistanceMatrixResponse{Status: models.ProviderStatusOK, Rows: rows}, nil
}

func (s *constantMatrixAPI) SetCredentials(apiKey string) {}

func optimizeBody() string {
	return `{
		"participants": [
			{
				"id": "p1",
				"name": "Ana",
				"startLocation": {"latitude": -8.0622, "longitude": -34.8711},
				"transportMode": "driving",
				"votes": [{"optionId": "d1", "type": "yes"}]
			},
			{
				"id": "p2",
				"name": "Bruno",
				"startLocation": {"latitude": -8.0389, "longitude": -34.8731},
				"transportMode": "driving",
				"votes": [{"optionId": "d1", "type": "ifNeedBe"}]
			}
		],
		"selectedDateId": "d1",
		"preferences": {"venueType": "cafe"},
		"optimizationType": "eta"
	}`
}

func newOptimizeHandler(placesAPI places.PlacesAPI) *VenueHandler {
	svc := services.NewVenueOptimizerService(placesAPI, &constantMatrixAPI{meters: 2000, seconds: 600}, nil)
	return NewVenueHandler(svc, nil)
}

func TestOptimize_Success(t *testing.T) {
	placesAPI := &scriptedPlacesAPI{response: &models.PlacesSearchResponse{
		Status: models.ProviderStatusOK,
		Results: []models.PlaceResult{{
			PlaceID:  "p1",
			Name:     "Cafe Um",
			Vicinity: "Rua do Bom Jesus, 100",
			Types:    []string{"cafe"},
		}},
	}}
	handler := newOptimizeHandler(placesAPI)

	req := httptest.NewRequest("POST", "/v1/venues/optimize", strings.NewReader(optimizeBody()))
	rr := httptest.NewRecorder()

	handler.Optimize(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var result models.OptimizationResult
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(result.Venues) != 1 {
		t.Fatalf("Expected 1 ranked venue, got %d", len(result.Venues))
	}
	if result.Venues[0].PlaceID != "p1" {
		t.Errorf("Expected venue p1, got %s", result.Venues[0].PlaceID)
	}
	// 600s for every participant: weighted avg 10 minutes.
	if result.Venues[0].Metrics.Weighted != 10.0 {
		t.Errorf("Expected weighted metric 10.0, got %f", result.Venues[0].Metrics.Weighted)
	}
}

func TestOptimize_InvalidBody(t *testing.T) {
	handler := newOptimizeHandler(&scriptedPlacesAPI{})

	req := httptest.NewRequest("POST", "/v1/venues/optimize", strings.NewReader(`{invalid`))
	rr := httptest.NewRecorder()

	handler.Optimize(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestOptimize_UnknownOptimizationType(t *testing.T) {
	handler := newOptimizeHandler(&scriptedPlacesAPI{})

	body := strings.Replace(optimizeBody(), `"eta"`, `"teleport"`, 1)
	req := httptest.NewRequest("POST", "/v1/venues/optimize", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.Optimize(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestOptimize_MissingVenueTypeIsUnprocessable(t *testing.T) {
	handler := newOptimizeHandler(&scriptedPlacesAPI{})

	body := strings.Replace(optimizeBody(), `{"venueType": "cafe"}`, `{}`, 1)
	req := httptest.NewRequest("POST", "/v1/venues/optimize", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.Optimize(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422, got %d", rr.Code)
	}
}

func TestOptimize_ProviderFailureIsBadGateway(t *testing.T) {
	placesAPI := &scriptedPlacesAPI{response: &models.PlacesSearchResponse{Status: "REQUEST_DENIED"}}
	handler := newOptimizeHandler(placesAPI)

	req := httptest.NewRequest("POST", "/v1/venues/optimize", strings.NewReader(optimizeBody()))
	rr := httptest.NewRecorder()

	handler.Optimize(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", rr.Code)
	}
}

func TestGetVenuesNearby_ServesCachedCandidates(t *testing.T) {
	dao := redisdao.NewRedisVenueDAO(db.NewMockRedisClient(context.Background()))
	_ = dao.UpsertCandidate(models.VenueCandidate{
		PlaceID:  "p1",
		Name:     "Cafe Um",
		Location: models.Coordinates{Lat: 40.7128, Lng: -74.0060},
	})
	handler := NewVenueHandler(nil, dao)

	req := httptest.NewRequest("GET", "/v1/venues/nearby?lat=40.7128&lon=-74.0060&radius=1000", nil)
	rr := httptest.NewRecorder()

	handler.GetVenuesNearby(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var candidates []models.VenueCandidate
	if err := json.Unmarshal(rr.Body.Bytes(), &candidates); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(candidates) != 1 || candidates[0].PlaceID != "p1" {
		t.Errorf("Expected single candidate p1, got %+v", candidates)
	}
}

func TestGetVenuesNearby_InvalidArgs(t *testing.T) {
	dao := redisdao.NewRedisVenueDAO(db.NewMockRedisClient(context.Background()))
	handler := NewVenueHandler(nil, dao)

	tests := []struct {
		name  string
		query string
	}{
		{"missing lat", "lon=-74.0060&radius=1000"},
		{"missing lon", "lat=40.7128&radius=1000"},
		{"non-numeric radius", "lat=40.7128&lon=-74.0060&radius=close"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/venues/nearby?"+test.query, nil)
			rr := httptest.NewRecorder()

			handler.GetVenuesNearby(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rr.Code)
			}
		})
	}
}

func TestPing(t *testing.T) {
	handler := NewVenueHandler(nil, nil)

	req := httptest.NewRequest("GET", "/ping", nil)
	rr := httptest.NewRecorder()

	handler.Ping(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "pong") {
		t.Errorf("Expected pong response, got %s", rr.Body.String())
	}
}
