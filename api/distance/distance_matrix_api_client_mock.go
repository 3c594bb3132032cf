package distance

import (
	"context"
	"math"

	"vo-server/models"
	"vo-server/util"
)

// metersPerSecond approximates travel speed per mode for the mock matrix.
var metersPerSecond = map[models.TransportMode]float64{
	models.TransportDriving:   11.1,
	models.TransportWalking:   1.4,
	models.TransportBicycling: 4.2,
	models.TransportTransit:   8.3,
}

// DistanceMatrixApiClientMock synthesizes a deterministic matrix from
// great-circle distances so local runs and tests need no provider.
type DistanceMatrixApiClientMock struct {
}

// NewDistanceMatrixApiClientMock creates a new instance of DistanceMatrixApiClientMock
func NewDistanceMatrixApiClientMock() *DistanceMatrixApiClientMock {
	return &DistanceMatrixApiClientMock{}
}

// GetTravelMatrix returns one row per origin with straight-line distance
// and a duration derived from the mode's approximate speed.
func (c *DistanceMatrixApiClientMock) GetTravelMatrix(ctx context.Context, origins []models.Coordinates, destination models.Coordinates, mode models.TransportMode) (*models.DistanceMatrixResponse, error) {
	speed, ok := metersPerSecond[mode]
	if !ok {
		speed = metersPerSecond[models.TransportDriving]
	}

	rows := make([]models.DistanceMatrixRow, len(origins))
	for i, origin := range origins {
		meters := util.HaversineMeters(origin, destination)
		rows[i] = models.DistanceMatrixRow{
			Elements: []models.DistanceMatrixElement{
				{
					Status:   models.ProviderStatusOK,
					Distance: models.MatrixValue{Value: int64(math.Round(meters))},
					Duration: models.MatrixValue{Value: int64(math.Round(meters / speed))},
				},
			},
		}
	}

	return &models.DistanceMatrixResponse{
		Status: models.ProviderStatusOK,
		Rows:   rows,
	}, nil
}

// SetCredentials is a no-op on the mock.
func (c *DistanceMatrixApiClientMock) SetCredentials(apiKey string) {}
