package api

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	internalErrors "github.com/gcbaptista/go-pro-directory/internal/errors"
	"github.com/gcbaptista/go-pro-directory/internal/locale"
	logpkg "github.com/gcbaptista/go-pro-directory/internal/logger"
	"github.com/gcbaptista/go-pro-directory/internal/metrics"
	"github.com/gcbaptista/go-pro-directory/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

const pageTemplateName = "index.tmpl"

type roleOption struct {
	Value    string
	Selected bool
}

type orderOption struct {
	Value    string
	Label    string
	Selected bool
}

type cardView struct {
	ID           int
	Name         string
	Role         string
	City         string
	Rating       string
	ReviewsLabel string
	MoreLabel    string
	MoreLabelFor string
	DetailURL    string
}

type detailView struct {
	Name     string
	Bio      string
	CloseURL string
}

type pageView struct {
	Lang         string
	Text         map[string]string
	Request      ListRequest
	Roles        []roleOption
	Orders       []orderOption
	CountLabel   string
	EmptyMessage string
	Cards        []cardView
	FavoritesURL string
	ResetURL     string
	Detail       *detailView
}

// resetURL clears every filter and selects relevance explicitly, so a reset shows
// natural order even when another default order is configured.
var resetURL = pageURL(url.Values{"order": {"relevance"}})

// PageHandler renders the listing page. Parameters are read leniently: an unknown
// order renders natural order and an unknown detail ID renders no overlay.
func (api *API) PageHandler(c *gin.Context) {
	req := ListRequest{
		Query:     c.Query("q"),
		Refine:    c.Query("refine"),
		Role:      c.Query("role"),
		Order:     c.Query("order"),
		Favorites: parseFlag(c.Query("favorites")),
	}

	query := req.ToQuery(api.defaultOrder)
	result := api.directory.Search(query)
	metrics.ObserveQuery(query.SortOrder, result.Total)

	view := pageView{
		Lang:         api.formatter.Tag().String(),
		Text:         api.pageText(),
		Request:      req,
		Roles:        api.roleOptions(req.Role),
		Orders:       api.orderOptions(query.SortOrder),
		CountLabel:   api.formatter.CountLabel(result.Total),
		EmptyMessage: api.formatter.EmptyMessage(),
		FavoritesURL: pageURL(req.withFavorites(!req.Favorites).values()),
		ResetURL:     resetURL,
	}

	for _, p := range result.Professionals {
		detailParams := req.values()
		detailParams.Set("detail", strconv.Itoa(p.ID))

		view.Cards = append(view.Cards, cardView{
			ID:           p.ID,
			Name:         p.Name,
			Role:         p.Role,
			City:         p.City,
			Rating:       locale.FormatRating(p.Rating),
			ReviewsLabel: api.formatter.ReviewsLabel(p.Reviews),
			MoreLabel:    api.formatter.MoreLabel(),
			MoreLabelFor: api.formatter.MoreLabelFor(p.Name),
			DetailURL:    pageURL(detailParams),
		})
	}

	if raw := c.Query("detail"); raw != "" {
		view.Detail = api.resolveDetail(c, raw, req)
	}

	api.renderPage(c, view)
}

// renderPage executes the page into a buffer so a template failure becomes a structured
// error instead of a truncated page.
func (api *API) renderPage(c *gin.Context, view pageView) {
	var buf bytes.Buffer
	if err := api.page.ExecuteTemplate(&buf, pageTemplateName, view); err != nil {
		logpkg.FromContext(c.Request.Context()).Error("page render failed", zap.Error(err))
		SendError(c, http.StatusInternalServerError, ErrorCodeRenderFailed, "Failed to render page")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// resolveDetail resolves the overlay for a detail request. Misses are silent.
func (api *API) resolveDetail(c *gin.Context, raw string, req ListRequest) *detailView {
	log := logpkg.FromContext(c.Request.Context())

	id, result := ValidateProfessionalID(raw)
	if result.HasErrors() {
		log.Debug("ignoring malformed detail id", zap.String("detail", raw))
		return nil
	}

	p, err := api.directory.Detail(id)
	if err != nil {
		if !errors.Is(err, internalErrors.ErrProfessionalNotFound) {
			log.Warn("detail lookup failed", zap.Int("id", id), zap.Error(err))
		}
		return nil
	}

	return &detailView{
		Name:     p.Name,
		Bio:      p.Bio,
		CloseURL: pageURL(req.values()),
	}
}

func (api *API) pageText() map[string]string {
	f := api.formatter
	return map[string]string{
		"Title":        f.Text(locale.TextTitle),
		"Search":       f.Text(locale.TextSearch),
		"SearchHint":   f.Text(locale.TextSearchHint),
		"Refine":       f.Text(locale.TextRefine),
		"AllRoles":     f.Text(locale.TextAllRoles),
		"Favorites":    f.Text(locale.TextFavorites),
		"ShowAll":      f.Text(locale.TextShowAll),
		"Clear":        f.Text(locale.TextClear),
		"Close":        f.Text(locale.TextClose),
		"OrderBy":      f.Text(locale.TextOrderBy),
		"FilterByRole": f.Text(locale.TextFilterByRole),
	}
}

func (api *API) roleOptions(selected string) []roleOption {
	roles := api.directory.Roles()
	options := make([]roleOption, len(roles))
	for i, role := range roles {
		options[i] = roleOption{Value: role, Selected: role == selected}
	}
	return options
}

func (api *API) orderOptions(current model.SortOrder) []orderOption {
	return []orderOption{
		{Value: "relevance", Label: api.formatter.Text(locale.TextRelevance), Selected: current == model.SortNatural},
		{Value: string(model.SortRating), Label: api.formatter.Text(locale.TextRating), Selected: current == model.SortRating},
		{Value: string(model.SortReviews), Label: api.formatter.Text(locale.TextReviews), Selected: current == model.SortReviews},
	}
}

// values encodes the non-empty request fields as page query parameters.
func (r ListRequest) values() url.Values {
	v := url.Values{}
	if r.Query != "" {
		v.Set("q", r.Query)
	}
	if r.Refine != "" {
		v.Set("refine", r.Refine)
	}
	if r.Role != "" {
		v.Set("role", r.Role)
	}
	if r.Order != "" {
		v.Set("order", r.Order)
	}
	if r.Favorites {
		v.Set("favorites", "true")
	}
	return v
}

func (r ListRequest) withFavorites(on bool) ListRequest {
	r.Favorites = on
	return r
}

func pageURL(v url.Values) string {
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

// parseFlag reads a checkbox-style boolean; anything unparsable is false.
func parseFlag(raw string) bool {
	on, err := strconv.ParseBool(raw)
	return err == nil && on
}
