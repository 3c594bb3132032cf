package services

import (
	"sort"

	"vo-server/config"
	"vo-server/models"
)

// rankVenues sorts scored venues ascending by the weighted metric (lower
// distance or ETA is better) and truncates to the top limit. Pure: the
// input slice is left untouched and the sort is stable, so re-ranking an
// already ranked list preserves order.
func rankVenues(scores []models.VenueScore) []models.VenueScore {
	ranked := make([]models.VenueScore, len(scores))
	copy(ranked, scores)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Metrics.Weighted < ranked[j].Metrics.Weighted
	})

	if len(ranked) > config.TOP_VENUES_LIMIT {
		ranked = ranked[:config.TOP_VENUES_LIMIT]
	}
	return ranked
}
