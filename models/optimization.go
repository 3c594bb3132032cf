package models

import (
	"fmt"
	"strings"
)

// OptimizationType selects which metric drives the search strategy and
// the ranking: travel duration ("eta") or travel distance ("distance").
type OptimizationType string

const (
	OptimizeETA      OptimizationType = "eta"
	OptimizeDistance OptimizationType = "distance"
)

// ParseOptimizationType rejects anything that is not eta or distance.
func ParseOptimizationType(s string) (OptimizationType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "eta":
		return OptimizeETA, nil
	case "distance":
		return OptimizeDistance, nil
	default:
		return "", fmt.Errorf("unknown optimization type %q", s)
	}
}

// OptimizationRequest is the payload of POST /v1/venues/optimize.
type OptimizationRequest struct {
	Participants     []Participant    `json:"participants"`
	SelectedDateID   string           `json:"selectedDateId"`
	Preferences      VenuePreferences `json:"preferences"`
	OptimizationType string           `json:"optimizationType"`
}

// OptimizationResult is the ranked outcome of one optimizer invocation.
type OptimizationResult struct {
	RequestID string       `json:"requestId"`
	Centroid  Coordinates  `json:"centroid"`
	Venues    []VenueScore `json:"venues"`
}
