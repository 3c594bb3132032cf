package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vo-server/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func cafeResult(id string, types ...string) models.PlaceResult {
	return models.PlaceResult{
		PlaceID:  id,
		Name:     id,
		Vicinity: "somewhere",
		Types:    types,
	}
}

func TestFilterPlaceResults_ExcludesPermanentlyClosed(t *testing.T) {
	closed := cafeResult("closed", "cafe")
	closed.BusinessStatus = models.BusinessStatusClosedPermanently

	filtered := filterPlaceResults(
		[]models.PlaceResult{closed, cafeResult("open", "cafe")},
		models.VenuePreferences{VenueType: "cafe"},
	)

	assert.Len(t, filtered, 1)
	assert.Equal(t, "open", filtered[0].PlaceID)
}

func TestFilterPlaceResults_RequiresPrimaryType(t *testing.T) {
	// A supermarket that also sells coffee lists "supermarket" first.
	filtered := filterPlaceResults(
		[]models.PlaceResult{
			cafeResult("market", "supermarket", "cafe", "store"),
			cafeResult("real-cafe", "cafe", "food"),
		},
		models.VenuePreferences{VenueType: "cafe"},
	)

	assert.Len(t, filtered, 1)
	assert.Equal(t, "real-cafe", filtered[0].PlaceID)
}

func TestFilterPlaceResults_AppliesExclusionTable(t *testing.T) {
	// Primary type matches but a disqualifying secondary type is present.
	filtered := filterPlaceResults(
		[]models.PlaceResult{
			cafeResult("cafe-in-mall", "cafe", "shopping_mall"),
			cafeResult("standalone", "cafe"),
		},
		models.VenuePreferences{VenueType: "cafe"},
	)

	assert.Len(t, filtered, 1)
	assert.Equal(t, "standalone", filtered[0].PlaceID)
}

func TestFilterPlaceResults_RestaurantExcludesCafesAndBars(t *testing.T) {
	filtered := filterPlaceResults(
		[]models.PlaceResult{
			cafeResult("resto-bar", "restaurant", "bar"),
			cafeResult("resto", "restaurant", "food"),
		},
		models.VenuePreferences{VenueType: "restaurant"},
	)

	assert.Len(t, filtered, 1)
	assert.Equal(t, "resto", filtered[0].PlaceID)
}

func TestFilterPlaceResults_RatingAndPriceThresholds(t *testing.T) {
	lowRated := cafeResult("low-rated", "cafe")
	lowRated.Rating = floatPtr(3.1)

	pricey := cafeResult("pricey", "cafe")
	pricey.PriceLevel = intPtr(4)

	good := cafeResult("good", "cafe")
	good.Rating = floatPtr(4.5)
	good.PriceLevel = intPtr(2)

	// Missing rating/price must never exclude.
	unrated := cafeResult("unrated", "cafe")

	filtered := filterPlaceResults(
		[]models.PlaceResult{lowRated, pricey, good, unrated},
		models.VenuePreferences{
			VenueType: "cafe",
			MinRating: floatPtr(4.0),
			MaxPrice:  intPtr(2),
		},
	)

	ids := make([]string, len(filtered))
	for i, p := range filtered {
		ids[i] = p.PlaceID
	}
	assert.Equal(t, []string{"good", "unrated"}, ids)
}

func TestFilterPlaceResults_UnknownCategoryHasNoExclusionTable(t *testing.T) {
	filtered := filterPlaceResults(
		[]models.PlaceResult{cafeResult("museum", "museum", "store")},
		models.VenuePreferences{VenueType: "museum"},
	)

	assert.Len(t, filtered, 1)
}
