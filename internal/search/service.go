// Package search implements the directory query pipeline: text search, favorites,
// refine-search and role filters followed by the selected sort order.
package search

import (
	internalErrors "github.com/gcbaptista/go-pro-directory/internal/errors"
	"github.com/gcbaptista/go-pro-directory/model"
)

// RecordSource is the read-only view of the record store the pipeline needs.
type RecordSource interface {
	All() []model.Professional
	Get(id int) (model.Professional, bool)
	Roles() []string
}

// Service runs queries against a fixed record source.
type Service struct {
	records RecordSource
}

// NewService creates a search service over the given records.
func NewService(records RecordSource) *Service {
	return &Service{records: records}
}

// Search runs the pipeline over every record in the source.
func (s *Service) Search(query model.Query) model.Result {
	return Run(s.records.All(), query)
}

// Detail returns the professional with the given ID, or a ProfessionalNotFoundError.
// Callers that treat a miss as a no-op can check errors.Is(err, ErrProfessionalNotFound).
func (s *Service) Detail(id int) (model.Professional, error) {
	p, ok := s.records.Get(id)
	if !ok {
		return model.Professional{}, internalErrors.NewProfessionalNotFoundError(id)
	}
	return p, nil
}

// Roles returns the role options offered by the role filter.
func (s *Service) Roles() []string {
	return s.records.Roles()
}

// Run applies the query to records and returns the ordered result.
//
// Stages run in a fixed order, each narrowing the output of the previous one:
// search term, favorites-only, refine term, role filter, then sort. records is
// expected in natural order and is never modified.
func Run(records []model.Professional, query model.Query) model.Result {
	filtered := make([]model.Professional, len(records))
	copy(filtered, records)

	filtered = applyFilter(filtered, textMatch(query.SearchTerm))
	filtered = applyFilter(filtered, favoritesOnly(query.FavoritesOnly))
	filtered = applyFilter(filtered, textMatch(query.RefineTerm))
	filtered = applyFilter(filtered, roleEquals(query.RoleFilter))

	sortProfessionals(filtered, query.SortOrder)

	return model.Result{
		Professionals: filtered,
		Total:         len(filtered),
	}
}
