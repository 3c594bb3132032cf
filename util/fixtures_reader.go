package util

import (
	"encoding/json"
	"fmt"
	"os"

	"vo-server/models"
)

// ReadPlacesSearchResponseFromJSON loads a PlacesSearchResponse from JSON on disk.
func ReadPlacesSearchResponseFromJSON(filePath string) (*models.PlacesSearchResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.PlacesSearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal PlacesSearchResponse: %w", err)
	}
	return &resp, nil
}

// ReadDistanceMatrixResponseFromJSON loads a DistanceMatrixResponse from JSON on disk.
func ReadDistanceMatrixResponseFromJSON(filePath string) (*models.DistanceMatrixResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.DistanceMatrixResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal DistanceMatrixResponse: %w", err)
	}
	return &resp, nil
}

// PrintOptimizationResultPartially prints key fields of an OptimizationResult.
func PrintOptimizationResultPartially(result *models.OptimizationResult) {
	fmt.Printf("Request ID: %s\n", result.RequestID)
	fmt.Printf("Centroid: (%.6f, %.6f)\n", result.Centroid.Lat, result.Centroid.Lng)
	fmt.Printf("Ranked venues: %d\n", len(result.Venues))
	for i, v := range result.Venues {
		fmt.Printf("#%d %s at %s (weighted=%.2f min=%.2f max=%.2f)\n",
			i+1, v.Name, v.Address, v.Metrics.Weighted, v.Metrics.Min, v.Metrics.Max)
	}
}
