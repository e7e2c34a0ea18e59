// Package api provides validation utilities for API request handling.
package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/gcbaptista/go-pro-directory/model"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ListRequest carries the query-string parameters of a directory listing.
// Field names follow the controls of the listing page.
type ListRequest struct {
	Query     string `form:"q" json:"q"`
	Refine    string `form:"refine" json:"refine"`
	Role      string `form:"role" json:"role"`
	Order     string `form:"order" json:"order" binding:"omitempty,oneof=relevance natural rating reviews"`
	Favorites bool   `form:"favorites" json:"favorites"`
}

// Normalize canonicalises fields before validation. Order is matched case-insensitively,
// like the CLI's --order flag.
func (r *ListRequest) Normalize() {
	r.Order = strings.ToLower(strings.TrimSpace(r.Order))
}

// ToQuery converts the request into a pipeline query. An empty order falls back to
// defaultOrder; an unrecognized order (only reachable when binding was skipped) is
// natural order.
func (r ListRequest) ToQuery(defaultOrder model.SortOrder) model.Query {
	order := defaultOrder
	if strings.TrimSpace(r.Order) != "" {
		order, _ = model.ParseSortOrder(r.Order)
	}
	return model.Query{
		SearchTerm:    r.Query,
		RefineTerm:    r.Refine,
		RoleFilter:    r.Role,
		FavoritesOnly: r.Favorites,
		SortOrder:     order,
	}
}

// ValidateProfessionalID parses a path ID into a positive integer
func ValidateProfessionalID(raw string) (int, *ValidationResult) {
	result := &ValidationResult{Valid: true}

	if raw == "" {
		result.AddError("id", "Professional ID is required")
		return 0, result
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		result.AddError("id", "Professional ID must be an integer")
		return 0, result
	}

	if id <= 0 {
		result.AddError("id", "Professional ID must be greater than 0")
		return 0, result
	}

	return id, result
}

// SendValidationError sends a standardized validation error response
func SendValidationError(c *gin.Context, result *ValidationResult) {
	SendStructuredValidationError(c, result)
}

// normalizer is implemented by requests that canonicalise their fields before the
// binding tags are checked.
type normalizer interface {
	Normalize()
}

// ValidateQueryBinding maps query parameters onto target, normalises it when supported,
// then runs the binding validation tags.
func ValidateQueryBinding(c *gin.Context, target interface{}) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if err := binding.MapFormWithTag(target, c.Request.URL.Query(), "form"); err != nil {
		result.AddError("query_parameters", "Invalid query parameters: "+err.Error())
		return result
	}

	if n, ok := target.(normalizer); ok {
		n.Normalize()
	}

	if err := binding.Validator.ValidateStruct(target); err != nil {
		result.AddError("query_parameters", "Invalid query parameters: "+err.Error())
	}

	return result
}
