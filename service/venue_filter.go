package services

import (
	"log"

	"vo-server/models"
)

// excludedTypesByCategory disqualifies venues whose type set shows they are
// not a dedicated venue of the requested category, e.g. a supermarket that
// merely sells coffee must not come back for a "cafe" search.
var excludedTypesByCategory = map[string][]string{
	"cafe": {
		"grocery_or_supermarket", "supermarket", "convenience_store",
		"department_store", "shopping_mall", "store",
	},
	"restaurant": {
		"grocery_or_supermarket", "supermarket", "convenience_store",
		"department_store", "shopping_mall", "store", "cafe", "bar",
	},
	"bar": {
		"grocery_or_supermarket", "supermarket", "convenience_store",
		"department_store", "shopping_mall", "store", "cafe", "restaurant",
	},
}

// filterPlaceResults applies the local post-search filters in order:
// permanently closed, primary-type match, category exclusion table, then
// rating/price thresholds. A venue missing a rating or price level is never
// excluded by the threshold rules.
func filterPlaceResults(results []models.PlaceResult, prefs models.VenuePreferences) []models.PlaceResult {
	filtered := make([]models.PlaceResult, 0, len(results))
	for _, place := range results {
		if place.BusinessStatus == models.BusinessStatusClosedPermanently {
			log.Printf("[VenueFilter] Excluding %q: permanently closed", place.Name)
			continue
		}

		if place.PrimaryType() != prefs.VenueType {
			log.Printf("[VenueFilter] Excluding %q: primary type %q is not %q",
				place.Name, place.PrimaryType(), prefs.VenueType)
			continue
		}

		if hasExcludedType(place.Types, prefs.VenueType) {
			log.Printf("[VenueFilter] Excluding %q: carries a disqualifying type for %q",
				place.Name, prefs.VenueType)
			continue
		}

		if prefs.MinRating != nil && place.Rating != nil && *place.Rating < *prefs.MinRating {
			log.Printf("[VenueFilter] Excluding %q: rating %.1f below minimum %.1f",
				place.Name, *place.Rating, *prefs.MinRating)
			continue
		}

		if prefs.MaxPrice != nil && place.PriceLevel != nil && *place.PriceLevel > *prefs.MaxPrice {
			log.Printf("[VenueFilter] Excluding %q: price level %d above maximum %d",
				place.Name, *place.PriceLevel, *prefs.MaxPrice)
			continue
		}

		filtered = append(filtered, place)
	}
	return filtered
}

func hasExcludedType(placeTypes []string, category string) bool {
	excluded, ok := excludedTypesByCategory[category]
	if !ok {
		return false
	}
	for _, t := range placeTypes {
		for _, e := range excluded {
			if t == e {
				return true
			}
		}
	}
	return false
}
