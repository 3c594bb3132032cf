package models

// VenuePreferences constrains the candidate search. VenueType is the single
// provider category to search for and must be non-empty. Radius, when set,
// bypasses the spread-based radius computation and is used verbatim.
type VenuePreferences struct {
	VenueType string   `json:"venueType"`
	MinRating *float64 `json:"minRating,omitempty"` // 1-5
	MaxPrice  *int     `json:"maxPrice,omitempty"`  // 1-4
	Radius    *float64 `json:"radius,omitempty"`    // meters
}

// VenueCandidate is a venue returned by the search gateway after filtering.
// Identity belongs to the external provider.
type VenueCandidate struct {
	PlaceID    string      `json:"placeId"`
	Name       string      `json:"name"`
	Address    string      `json:"address"`
	Location   Coordinates `json:"location"`
	Rating     *float64    `json:"rating,omitempty"`
	PriceLevel *int        `json:"priceLevel,omitempty"`
}

// VenueMetrics aggregates per-participant travel metrics for one venue.
// Unit is kilometers in distance mode and minutes in ETA mode.
type VenueMetrics struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Avg      float64 `json:"avg"`
	Weighted float64 `json:"weighted"`
}

// VenueScore is a candidate with its computed metrics. Ranking sorts
// ascending on Metrics.Weighted.
type VenueScore struct {
	VenueCandidate
	Metrics VenueMetrics `json:"metrics"`
}
