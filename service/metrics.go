package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"vo-server/api/distance"
	"vo-server/models"
)

// modeGroup is one transport-mode batch of a matrix query: the provider
// accepts a single travel mode per call, so participants are grouped by
// mode and the per-participant values merged back by index afterwards.
type modeGroup struct {
	mode    models.TransportMode
	indexes []int
}

func groupByTransportMode(weighted []models.WeightedParticipant) []modeGroup {
	order := make([]models.TransportMode, 0, 4)
	byMode := make(map[models.TransportMode][]int)
	for i, p := range weighted {
		if _, seen := byMode[p.TransportMode]; !seen {
			order = append(order, p.TransportMode)
		}
		byMode[p.TransportMode] = append(byMode[p.TransportMode], i)
	}

	groups := make([]modeGroup, 0, len(order))
	for _, mode := range order {
		groups = append(groups, modeGroup{mode: mode, indexes: byMode[mode]})
	}
	return groups
}

// metricsForVenue computes one venue's travel values for every participant
// and aggregates them. Values stay unrounded here; rounding happens once
// when the ranked result is assembled.
func metricsForVenue(
	ctx context.Context,
	matrixAPI distance.DistanceMatrixAPI,
	venue models.VenueCandidate,
	weighted []models.WeightedParticipant,
	optimizationType models.OptimizationType,
) (models.VenueMetrics, error) {
	values := make([]float64, len(weighted))

	for _, group := range groupByTransportMode(weighted) {
		origins := make([]models.Coordinates, len(group.indexes))
		for i, idx := range group.indexes {
			origins[i] = weighted[idx].Coordinates()
		}

		resp, err := matrixAPI.GetTravelMatrix(ctx, origins, venue.Location, group.mode)
		if err != nil {
			return models.VenueMetrics{}, models.NewProviderError("distance_matrix", "", err)
		}
		if resp.Status != models.ProviderStatusOK {
			return models.VenueMetrics{}, models.NewProviderError("distance_matrix", resp.Status,
				errors.New("travel matrix request rejected"))
		}
		if len(resp.Rows) != len(origins) {
			return models.VenueMetrics{}, models.NewProviderError("distance_matrix", resp.Status,
				fmt.Errorf("expected %d rows, got %d", len(origins), len(resp.Rows)))
		}

		for i, idx := range group.indexes {
			row := resp.Rows[i]
			if len(row.Elements) == 0 {
				return models.VenueMetrics{}, models.NewProviderError("distance_matrix", resp.Status,
					errors.New("empty matrix row"))
			}
			element := row.Elements[0]
			if element.Status != models.ProviderStatusOK {
				return models.VenueMetrics{}, models.NewProviderError("distance_matrix", element.Status,
					fmt.Errorf("no route for participant %s", weighted[idx].ID))
			}

			if optimizationType == models.OptimizeDistance {
				values[idx] = float64(element.Distance.Value) / 1000 // meters to km
			} else {
				values[idx] = float64(element.Duration.Value) / 60 // seconds to minutes
			}
		}
	}

	return aggregateMetrics(values, weighted), nil
}

// aggregateMetrics folds per-participant values into venue metrics.
// Min and max are taken over all participants regardless of weight; the
// weighted average is restricted to positive weights and falls back to the
// plain mean when the total weight is zero, mirroring the centroid fallback.
func aggregateMetrics(values []float64, weighted []models.WeightedParticipant) models.VenueMetrics {
	min := values[0]
	max := values[0]
	var sum float64
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	avg := sum / float64(len(values))

	var totalWeight, weightedSum float64
	for i, p := range weighted {
		if p.Weight > 0 {
			totalWeight += p.Weight
			weightedSum += values[i] * p.Weight
		}
	}

	weightedAvg := avg
	if totalWeight > 0 {
		weightedAvg = weightedSum / totalWeight
	}

	return models.VenueMetrics{Min: min, Max: max, Avg: avg, Weighted: weightedAvg}
}

// roundMetrics rounds for display stability. Applied after sorting so that
// values differing only beyond two decimals keep their rank order.
func roundMetrics(m models.VenueMetrics) models.VenueMetrics {
	return models.VenueMetrics{
		Min:      round2(m.Min),
		Max:      round2(m.Max),
		Avg:      round2(m.Avg),
		Weighted: round2(m.Weighted),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
