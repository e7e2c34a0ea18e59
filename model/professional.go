package model

import "strings"

// Professional is a single directory entry.
// ID is the stable lookup key and the natural sort key. Records are never mutated after
// the store is built.
type Professional struct {
	ID       int     `json:"id" yaml:"id" validate:"gt=0"`
	Name     string  `json:"name" yaml:"name" validate:"required"`
	Role     string  `json:"role" yaml:"role" validate:"required"`
	City     string  `json:"city" yaml:"city" validate:"required"`
	Rating   float64 `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	Reviews  int     `json:"reviews" yaml:"reviews" validate:"gte=0"`
	Bio      string  `json:"bio" yaml:"bio"`
	Favorite bool    `json:"favorite" yaml:"favorite"`
}

// SortOrder selects how the query pipeline orders its output.
type SortOrder string

const (
	SortNatural SortOrder = "natural" // ascending by ID, shown as "relevance"
	SortRating  SortOrder = "rating"  // descending by rating, stable
	SortReviews SortOrder = "reviews" // descending by review count, stable
)

// ParseSortOrder maps a wire value onto a SortOrder.
// "relevance", "natural" and the empty string all mean natural order.
// The second return value is false for unrecognized values, which callers may either
// reject or treat as natural order.
func ParseSortOrder(value string) (SortOrder, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "relevance", string(SortNatural):
		return SortNatural, true
	case string(SortRating):
		return SortRating, true
	case string(SortReviews):
		return SortReviews, true
	default:
		return SortNatural, false
	}
}

// Query is the immutable set of filter and sort parameters for one render pass.
type Query struct {
	SearchTerm    string    `json:"search_term,omitempty"`
	RefineTerm    string    `json:"refine_term,omitempty"`
	RoleFilter    string    `json:"role_filter,omitempty"`
	FavoritesOnly bool      `json:"favorites_only,omitempty"`
	SortOrder     SortOrder `json:"sort_order,omitempty"`
}

// Result is the ordered output of the query pipeline.
type Result struct {
	Professionals []Professional `json:"professionals"`
	Total         int            `json:"total"`
}

// IDs returns the identifiers of the result in order.
func (r Result) IDs() []int {
	ids := make([]int, len(r.Professionals))
	for i, p := range r.Professionals {
		ids[i] = p.ID
	}
	return ids
}
