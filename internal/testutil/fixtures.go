// Package testutil provides shared fixtures and table-test helpers for directory tests.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-pro-directory/internal/search"
	"github.com/gcbaptista/go-pro-directory/model"
	"github.com/gcbaptista/go-pro-directory/store"
)

// SampleStore returns a store holding the built-in four-record directory.
func SampleStore(t *testing.T) *store.ProfessionalStore {
	t.Helper()
	ps, err := store.NewProfessionalStore(store.DefaultProfessionals())
	require.NoError(t, err, "Failed to build sample store")
	return ps
}

// ExtendedProfessionals returns the sample records plus entries that share ratings and
// review counts with them, some marked as favorites. Useful for tie and filter tests.
func ExtendedProfessionals() []model.Professional {
	records := store.DefaultProfessionals()
	return append(records,
		model.Professional{ID: 5, Name: "Júlia Rocha", Role: "DevOps", City: "São Paulo", Rating: 4.9, Reviews: 34, Favorite: true},
		model.Professional{ID: 6, Name: "Marcos Lima", Role: "Fullstack", City: "Recife", Rating: 4.7, Reviews: 57},
		model.Professional{ID: 7, Name: "Beatriz Nunes", Role: "Data Scientist", City: "Belo Horizonte", Rating: 4.8, Reviews: 12, Favorite: true},
		model.Professional{ID: 8, Name: "Rafael Souza", Role: "DevOps", City: "Porto Alegre", Rating: 4.7, Reviews: 45},
	)
}

// ExtendedStore returns a store built from ExtendedProfessionals.
func ExtendedStore(t *testing.T) *store.ProfessionalStore {
	t.Helper()
	ps, err := store.NewProfessionalStore(ExtendedProfessionals())
	require.NoError(t, err, "Failed to build extended store")
	return ps
}

// AssertIDs checks the exact ID sequence of a result.
func AssertIDs(t *testing.T, want []int, result model.Result) {
	t.Helper()
	if diff := cmp.Diff(want, result.IDs(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Result IDs mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, len(want), result.Total, "Total should equal the number of returned records")
}

// SearchTestCase represents a table entry for pipeline tests
type SearchTestCase struct {
	Name         string
	Query        model.Query
	ExpectedIDs  []int
	ValidateFunc func(t *testing.T, result model.Result)
}

// RunSearchTests runs a suite of pipeline tests against a search service
func RunSearchTests(t *testing.T, svc *search.Service, tests []SearchTestCase) {
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			result := svc.Search(tt.Query)

			AssertIDs(t, tt.ExpectedIDs, result)

			if tt.ValidateFunc != nil {
				tt.ValidateFunc(t, result)
			}
		})
	}
}
