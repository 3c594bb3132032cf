package distance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"vo-server/api"
	"vo-server/models"
)

func matrixFixture() models.DistanceMatrixResponse {
	return models.DistanceMatrixResponse{
		Status: models.ProviderStatusOK,
		Rows: []models.DistanceMatrixRow{
			{Elements: []models.DistanceMatrixElement{{
				Status:   models.ProviderStatusOK,
				Distance: models.MatrixValue{Value: 2150, Text: "2.2 km"},
				Duration: models.MatrixValue{Value: 540, Text: "9 mins"},
			}}},
			{Elements: []models.DistanceMatrixElement{{
				Status:   models.ProviderStatusOK,
				Distance: models.MatrixValue{Value: 7420, Text: "7.4 km"},
				Duration: models.MatrixValue{Value: 1260, Text: "21 mins"},
			}}},
		},
	}
}

func TestGetTravelMatrix(t *testing.T) {
	var received url.Values
	requests := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.Method != "GET" {
			t.Errorf("expected GET; got %s", r.Method)
		}
		if r.URL.Path != "/json" {
			t.Errorf("expected path /json; got %s", r.URL.Path)
		}
		received = r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(matrixFixture())
	}))
	defer srv.Close()

	client := NewDistanceMatrixApiClient(api.NewHTTPClient(srv.URL))
	client.SetCredentials("secret")

	origins := []models.Coordinates{
		{Lat: -8.0622, Lng: -34.8711},
		{Lat: -8.0389, Lng: -34.8731},
	}
	destination := models.Coordinates{Lat: -8.0505, Lng: -34.8772}

	got, err := client.GetTravelMatrix(context.Background(), origins, destination, models.TransportDriving)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.ProviderStatusOK {
		t.Errorf("Status = %q; want OK", got.Status)
	}
	if len(got.Rows) != 2 {
		t.Fatalf("Rows = %d; want 2", len(got.Rows))
	}
	if got.Rows[0].Elements[0].Duration.Value != 540 {
		t.Errorf("Duration = %d; want 540", got.Rows[0].Elements[0].Duration.Value)
	}

	// verify all forced query params
	checks := []struct {
		key  string
		want string
	}{
		{"origins", "-8.062200,-34.871100|-8.038900,-34.873100"},
		{"destinations", "-8.050500,-34.877200"},
		{"mode", "driving"},
		{"key", "secret"},
	}
	for _, c := range checks {
		if got := received.Get(c.key); got != c.want {
			t.Errorf("query[%q] = %q; want %q", c.key, got, c.want)
		}
	}
	if requests != 1 {
		t.Errorf("requests = %d; want 1", requests)
	}
}

func TestGetTravelMatrix_MemoizesRepeatedQueries(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(matrixFixture())
	}))
	defer srv.Close()

	client := NewDistanceMatrixApiClient(api.NewHTTPClient(srv.URL))
	client.SetCredentials("secret")

	origins := []models.Coordinates{{Lat: 1, Lng: 2}, {Lat: 3, Lng: 4}}
	destination := models.Coordinates{Lat: 5, Lng: 6}

	first, err := client.GetTravelMatrix(context.Background(), origins, destination, models.TransportDriving)
	if err != nil {
		t.Fatal(err)
	}
	second, err := client.GetTravelMatrix(context.Background(), origins, destination, models.TransportDriving)
	if err != nil {
		t.Fatal(err)
	}

	if requests != 1 {
		t.Errorf("requests = %d; want 1 (second call must be memoized)", requests)
	}
	if first != second {
		t.Errorf("memoized call must return the same response instance")
	}

	// A different mode is a different tuple and must hit the provider.
	if _, err := client.GetTravelMatrix(context.Background(), origins, destination, models.TransportWalking); err != nil {
		t.Fatal(err)
	}
	if requests != 2 {
		t.Errorf("requests = %d; want 2 after a new mode", requests)
	}
}

func TestGetTravelMatrixMock_RowsPerOrigin(t *testing.T) {
	client := NewDistanceMatrixApiClientMock()

	origins := []models.Coordinates{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 0.01},
	}
	destination := models.Coordinates{Lat: 0, Lng: 0.02}

	resp, err := client.GetTravelMatrix(context.Background(), origins, destination, models.TransportWalking)
	if err != nil {
		t.Fatal(err)
	}

	if resp.Status != models.ProviderStatusOK {
		t.Errorf("Status = %q; want OK", resp.Status)
	}
	if len(resp.Rows) != len(origins) {
		t.Fatalf("Rows = %d; want %d", len(resp.Rows), len(origins))
	}
	// The nearer origin gets the shorter synthetic distance and duration.
	near := resp.Rows[1].Elements[0]
	far := resp.Rows[0].Elements[0]
	if near.Distance.Value >= far.Distance.Value {
		t.Errorf("expected nearer origin to have smaller distance: near=%d far=%d",
			near.Distance.Value, far.Distance.Value)
	}
	if near.Duration.Value >= far.Duration.Value {
		t.Errorf("expected nearer origin to have smaller duration: near=%d far=%d",
			near.Duration.Value, far.Duration.Value)
	}
}
