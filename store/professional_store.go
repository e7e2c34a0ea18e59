package store

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	internalErrors "github.com/gcbaptista/go-pro-directory/internal/errors"
	"github.com/gcbaptista/go-pro-directory/model"
)

// ProfessionalStore is the fixed, ordered collection of professionals.
// It is built once and never changes afterwards, so it is safe to share between
// goroutines without locking.
type ProfessionalStore struct {
	records []model.Professional // ascending by ID
	byID    map[int]int          // ID -> position in records
	roles   []string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewProfessionalStore validates the records and builds a store from them.
// The input slice is copied; the store keeps records in ascending ID order regardless
// of the order they were given in.
func NewProfessionalStore(records []model.Professional) (*ProfessionalStore, error) {
	sorted := make([]model.Professional, len(records))
	copy(sorted, records)

	for i := range sorted {
		if err := validateRecord(i, sorted[i]); err != nil {
			return nil, err
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	ps := &ProfessionalStore{
		records: sorted,
		byID:    make(map[int]int, len(sorted)),
	}

	seenRoles := make(map[string]bool)
	for i, p := range sorted {
		if _, dup := ps.byID[p.ID]; dup {
			return nil, internalErrors.NewDuplicateProfessionalError(p.ID)
		}
		ps.byID[p.ID] = i

		if !seenRoles[p.Role] {
			seenRoles[p.Role] = true
			ps.roles = append(ps.roles, p.Role)
		}
	}

	return ps, nil
}

// MustNewProfessionalStore is like NewProfessionalStore but panics on invalid input.
func MustNewProfessionalStore(records []model.Professional) *ProfessionalStore {
	ps, err := NewProfessionalStore(records)
	if err != nil {
		panic(err)
	}
	return ps
}

func validateRecord(position int, p model.Professional) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return internalErrors.NewValidationError(
			fmt.Sprintf("professionals[%d].%s", position, fe.Field()),
			fmt.Sprintf("failed '%s' rule (value %v)", fe.Tag(), fe.Value()),
		)
	}
	return fmt.Errorf("failed to validate professional at position %d: %w", position, err)
}

// All returns a copy of every record in natural (ascending ID) order.
func (ps *ProfessionalStore) All() []model.Professional {
	out := make([]model.Professional, len(ps.records))
	copy(out, ps.records)
	return out
}

// Get looks up a professional by ID. The boolean is false when no record matches.
func (ps *ProfessionalStore) Get(id int) (model.Professional, bool) {
	i, ok := ps.byID[id]
	if !ok {
		return model.Professional{}, false
	}
	return ps.records[i], true
}

// Roles returns the distinct roles in the order they first appear in natural order.
func (ps *ProfessionalStore) Roles() []string {
	out := make([]string, len(ps.roles))
	copy(out, ps.roles)
	return out
}

// Len returns the number of records in the store.
func (ps *ProfessionalStore) Len() int {
	return len(ps.records)
}
