package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	internalErrors "github.com/gcbaptista/go-pro-directory/internal/errors"
	"github.com/gcbaptista/go-pro-directory/internal/metrics"
	"github.com/gcbaptista/go-pro-directory/model"
)

// ListResponse is the JSON body of a directory listing.
type ListResponse struct {
	QueryID       string               `json:"query_id"`
	Query         model.Query          `json:"query"`
	Professionals []model.Professional `json:"professionals"`
	Total         int                  `json:"total"`
	Label         string               `json:"label"`
}

// ListProfessionalsHandler runs the query pipeline from query-string parameters.
// Query params: q, refine, role, order (relevance|rating|reviews), favorites (bool).
func (api *API) ListProfessionalsHandler(c *gin.Context) {
	var req ListRequest
	if result := ValidateQueryBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	query := req.ToQuery(api.defaultOrder)
	result := api.directory.Search(query)
	metrics.ObserveQuery(query.SortOrder, result.Total)

	c.JSON(http.StatusOK, ListResponse{
		QueryID:       uuid.New().String(),
		Query:         query,
		Professionals: result.Professionals,
		Total:         result.Total,
		Label:         api.formatter.CountLabel(result.Total),
	})
}

// GetProfessionalHandler returns a single professional by ID.
func (api *API) GetProfessionalHandler(c *gin.Context) {
	id, result := ValidateProfessionalID(c.Param("id"))
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	professional, err := api.directory.Detail(id)
	if err != nil {
		if errors.Is(err, internalErrors.ErrProfessionalNotFound) {
			SendProfessionalNotFoundError(c, id)
			return
		}
		SendInternalError(c, "detail lookup", err)
		return
	}

	c.JSON(http.StatusOK, professional)
}

// ListRolesHandler returns the distinct roles offered by the role filter.
func (api *API) ListRolesHandler(c *gin.Context) {
	roles := api.directory.Roles()
	c.JSON(http.StatusOK, gin.H{
		"roles": roles,
		"total": len(roles),
	})
}
