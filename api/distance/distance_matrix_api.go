package distance

import (
	"context"

	"vo-server/models"
)

// DistanceMatrixAPI defines the travel-matrix capability the optimizer
// needs: per-origin distance and duration to a single destination, for one
// travel mode per call. Callers batch per transport-mode group.
type DistanceMatrixAPI interface {
	GetTravelMatrix(ctx context.Context, origins []models.Coordinates, destination models.Coordinates, mode models.TransportMode) (*models.DistanceMatrixResponse, error)
	SetCredentials(apiKey string)
}
