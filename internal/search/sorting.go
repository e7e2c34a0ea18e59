package search

import (
	"sort"

	"github.com/gcbaptista/go-pro-directory/model"
)

// sortProfessionals orders records in place.
// Rating and review orders are descending and stable, so ties keep the order the filter
// stages produced. Anything else is natural order (ascending ID).
func sortProfessionals(records []model.Professional, order model.SortOrder) {
	switch order {
	case model.SortRating:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Rating > records[j].Rating
		})
	case model.SortReviews:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Reviews > records[j].Reviews
		})
	default:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].ID < records[j].ID
		})
	}
}
