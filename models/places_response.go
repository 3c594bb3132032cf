package models

// Provider status values shared by the places and distance-matrix APIs.
const (
	ProviderStatusOK          = "OK"
	ProviderStatusZeroResults = "ZERO_RESULTS"
)

// BusinessStatusClosedPermanently marks venues that must never be returned.
const BusinessStatusClosedPermanently = "CLOSED_PERMANENTLY"

// PlacesSearchResponse is the wire shape of a nearby-search call.
type PlacesSearchResponse struct {
	Results      []PlaceResult `json:"results"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

// PlaceResult is a single raw venue as returned by the places provider,
// before any local filtering.
type PlaceResult struct {
	PlaceID        string        `json:"place_id"`
	Name           string        `json:"name"`
	Vicinity       string        `json:"vicinity"`
	Geometry       PlaceGeometry `json:"geometry"`
	Types          []string      `json:"types"`
	BusinessStatus string        `json:"business_status,omitempty"`
	Rating         *float64      `json:"rating,omitempty"`
	PriceLevel     *int          `json:"price_level,omitempty"`
}

type PlaceGeometry struct {
	Location Coordinates `json:"location"`
}

// PrimaryType returns the first-listed type, which the provider treats as
// the venue's main category.
func (p PlaceResult) PrimaryType() string {
	if len(p.Types) == 0 {
		return ""
	}
	return p.Types[0]
}

// ToCandidate converts a filtered raw result into the optimizer's candidate.
func (p PlaceResult) ToCandidate() VenueCandidate {
	return VenueCandidate{
		PlaceID:    p.PlaceID,
		Name:       p.Name,
		Address:    p.Vicinity,
		Location:   p.Geometry.Location,
		Rating:     p.Rating,
		PriceLevel: p.PriceLevel,
	}
}
