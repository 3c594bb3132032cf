package models

// SearchArea records a centroid/category pair a search ran against, so the
// background refresher can keep the candidate cache warm for it.
type SearchArea struct {
	Center       Coordinates `json:"center"`
	VenueType    string      `json:"venueType"`
	RadiusMeters float64     `json:"radiusMeters"`
}
