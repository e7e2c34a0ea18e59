package services

import (
	"github.com/gcbaptista/go-pro-directory/model"
)

// Searcher runs the query pipeline
type Searcher interface {
	Search(query model.Query) model.Result
}

// DetailReader looks up a single professional for the detail overlay.
// A miss returns an error matching errors.ErrProfessionalNotFound.
type DetailReader interface {
	Detail(id int) (model.Professional, error)
}

// Directory is everything the presentation layers need from the core
type Directory interface {
	Searcher
	DetailReader
	Roles() []string
}
