package api

import (
	"testing"

	"github.com/gcbaptista/go-pro-directory/model"
)

func TestValidationResult_AddError(t *testing.T) {
	result := &ValidationResult{Valid: true}

	result.AddError("field1", "error message")

	if result.Valid {
		t.Error("Expected Valid to be false after adding error")
	}

	if len(result.Errors) != 1 {
		t.Errorf("Expected 1 error, got %d", len(result.Errors))
	}

	if result.Errors[0].Field != "field1" {
		t.Errorf("Expected field 'field1', got '%s'", result.Errors[0].Field)
	}

	if result.Errors[0].Message != "error message" {
		t.Errorf("Expected message 'error message', got '%s'", result.Errors[0].Message)
	}
}

func TestValidationResult_HasErrors(t *testing.T) {
	result := &ValidationResult{Valid: true}

	if result.HasErrors() {
		t.Error("Expected HasErrors to be false for empty result")
	}

	result.AddError("field", "message")

	if !result.HasErrors() {
		t.Error("Expected HasErrors to be true after adding error")
	}
}

func TestValidateProfessionalID(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantID    int
		wantValid bool
		wantMsg   string
	}{
		{name: "valid", raw: "3", wantID: 3, wantValid: true},
		{name: "empty", raw: "", wantMsg: "Professional ID is required"},
		{name: "not a number", raw: "abc", wantMsg: "Professional ID must be an integer"},
		{name: "float", raw: "1.5", wantMsg: "Professional ID must be an integer"},
		{name: "zero", raw: "0", wantMsg: "Professional ID must be greater than 0"},
		{name: "negative", raw: "-2", wantMsg: "Professional ID must be greater than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, result := ValidateProfessionalID(tt.raw)

			if result.HasErrors() == tt.wantValid {
				t.Fatalf("ValidateProfessionalID(%q) valid = %v, want %v", tt.raw, !result.HasErrors(), tt.wantValid)
			}

			if id != tt.wantID {
				t.Errorf("ValidateProfessionalID(%q) id = %d, want %d", tt.raw, id, tt.wantID)
			}

			if !tt.wantValid && result.Errors[0].Message != tt.wantMsg {
				t.Errorf("Expected message '%s', got '%s'", tt.wantMsg, result.Errors[0].Message)
			}
		})
	}
}

func TestListRequest_ToQuery(t *testing.T) {
	tests := []struct {
		name         string
		req          ListRequest
		defaultOrder model.SortOrder
		wantOrder    model.SortOrder
	}{
		{name: "empty order uses default", req: ListRequest{}, defaultOrder: model.SortRating, wantOrder: model.SortRating},
		{name: "blank order uses default", req: ListRequest{Order: "  "}, defaultOrder: model.SortReviews, wantOrder: model.SortReviews},
		{name: "relevance is natural", req: ListRequest{Order: "relevance"}, defaultOrder: model.SortRating, wantOrder: model.SortNatural},
		{name: "explicit reviews", req: ListRequest{Order: "reviews"}, defaultOrder: model.SortNatural, wantOrder: model.SortReviews},
		{name: "unknown is natural", req: ListRequest{Order: "popularity"}, defaultOrder: model.SortRating, wantOrder: model.SortNatural},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.req.ToQuery(tt.defaultOrder)
			if q.SortOrder != tt.wantOrder {
				t.Errorf("ToQuery() order = %q, want %q", q.SortOrder, tt.wantOrder)
			}
		})
	}

	q := ListRequest{Query: "ana", Refine: "rio", Role: "DevOps", Favorites: true}.ToQuery(model.SortNatural)
	want := model.Query{SearchTerm: "ana", RefineTerm: "rio", RoleFilter: "DevOps", FavoritesOnly: true, SortOrder: model.SortNatural}
	if q != want {
		t.Errorf("ToQuery() = %+v, want %+v", q, want)
	}
}

func TestListRequest_Values(t *testing.T) {
	req := ListRequest{Query: "São Paulo", Order: "rating", Favorites: true}

	got := pageURL(req.values())
	want := "/?favorites=true&order=rating&q=S%C3%A3o+Paulo"
	if got != want {
		t.Errorf("pageURL() = %q, want %q", got, want)
	}

	if got := pageURL(ListRequest{}.values()); got != "/" {
		t.Errorf("pageURL() for empty request = %q, want \"/\"", got)
	}
}

func TestParseFlag(t *testing.T) {
	for raw, want := range map[string]bool{
		"true": true, "1": true, "TRUE": true,
		"false": false, "": false, "maybe": false,
	} {
		if got := parseFlag(raw); got != want {
			t.Errorf("parseFlag(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestListRequest_Normalize(t *testing.T) {
	for raw, want := range map[string]string{
		"Rating":     "rating",
		" REVIEWS ":  "reviews",
		"relevance":  "relevance",
		"   ":        "",
		"Popularity": "popularity",
	} {
		req := ListRequest{Order: raw}
		req.Normalize()
		if req.Order != want {
			t.Errorf("Normalize(%q) = %q, want %q", raw, req.Order, want)
		}
	}
}
