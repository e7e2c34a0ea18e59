package search

import (
	"github.com/gcbaptista/go-pro-directory/internal/fold"
	"github.com/gcbaptista/go-pro-directory/model"
)

// predicate decides whether a record survives a filter stage.
type predicate func(p model.Professional) bool

// applyFilter keeps the records matching keep, preserving order.
// A nil predicate means the stage is inactive and the input is returned unchanged.
func applyFilter(records []model.Professional, keep predicate) []model.Professional {
	if keep == nil {
		return records
	}

	filtered := make([]model.Professional, 0, len(records))
	for _, p := range records {
		if keep(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// textMatch builds the search/refine predicate. Name, role and city are matched as
// case-folded substrings. A blank term disables the stage.
func textMatch(rawTerm string) predicate {
	term := fold.Term(rawTerm)
	if term == "" {
		return nil
	}
	return func(p model.Professional) bool {
		return fold.ContainsAny(term, p.Name, p.Role, p.City)
	}
}

// favoritesOnly keeps favorited records when enabled.
func favoritesOnly(enabled bool) predicate {
	if !enabled {
		return nil
	}
	return func(p model.Professional) bool {
		return p.Favorite
	}
}

// roleEquals keeps records whose role is exactly the given value (case-sensitive).
func roleEquals(role string) predicate {
	if role == "" {
		return nil
	}
	return func(p model.Professional) bool {
		return p.Role == role
	}
}
