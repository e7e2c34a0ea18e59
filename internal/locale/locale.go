// Package locale formats the user-facing strings around a search result: the
// "N professionals found" count label, the empty-state message and card labels.
//
// The pipeline only produces an integer count; pluralisation lives here.
package locale

import (
	"fmt"
	"strconv"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. They double as the English source strings.
const (
	keyCount   = "%d professionals found"
	keyEmpty   = "No professionals found."
	keyReviews = "(%d reviews)"
	keyMore    = "See more"
	keyMoreFor = "See more about %s"
)

// Page chrome keys, passed to Formatter.Text.
const (
	TextTitle        = "Professionals"
	TextSearch       = "Search"
	TextSearchHint   = "Name, role or city"
	TextRefine       = "Refine search"
	TextAllRoles     = "All roles"
	TextRelevance    = "Relevance"
	TextRating       = "Best rated"
	TextReviews      = "Most reviews"
	TextFavorites    = "Favorites"
	TextShowAll      = "Show all"
	TextClear        = "Clear"
	TextClose        = "Close"
	TextOrderBy      = "Order by"
	TextFilterByRole = "Filter by role"
)

var portugueseText = map[string]string{
	TextTitle:        "Profissionais",
	TextSearch:       "Buscar",
	TextSearchHint:   "Nome, função ou cidade",
	TextRefine:       "Refinar busca",
	TextAllRoles:     "Todas as funções",
	TextRelevance:    "Relevância",
	TextRating:       "Melhor avaliados",
	TextReviews:      "Mais avaliações",
	TextFavorites:    "Favoritos",
	TextShowAll:      "Mostrar todos",
	TextClear:        "Limpar",
	TextClose:        "Fechar",
	TextOrderBy:      "Ordenar por",
	TextFilterByRole: "Filtrar por função",
}

// DefaultTag is the display locale used when none is configured.
var DefaultTag = language.BrazilianPortuguese

var supported = []language.Tag{language.BrazilianPortuguese, language.English}

var dictionary = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(DefaultTag))

	mustSet(b.Set(language.BrazilianPortuguese, keyCount, plural.Selectf(1, "%d",
		"=1", "%[1]d profissional encontrado",
		plural.Other, "%[1]d profissionais encontrados",
	)))
	mustSet(b.SetString(language.BrazilianPortuguese, keyEmpty, "Nenhum profissional encontrado."))
	mustSet(b.SetString(language.BrazilianPortuguese, keyReviews, "(%d avaliações)"))
	mustSet(b.SetString(language.BrazilianPortuguese, keyMore, "Ver mais"))
	mustSet(b.SetString(language.BrazilianPortuguese, keyMoreFor, "Ver mais sobre %s"))
	for key, text := range portugueseText {
		mustSet(b.SetString(language.BrazilianPortuguese, key, text))
		mustSet(b.SetString(language.English, key, key))
	}

	mustSet(b.Set(language.English, keyCount, plural.Selectf(1, "%d",
		"=1", "%[1]d professional found",
		plural.Other, "%[1]d professionals found",
	)))
	mustSet(b.SetString(language.English, keyEmpty, keyEmpty))
	mustSet(b.SetString(language.English, keyReviews, keyReviews))
	mustSet(b.SetString(language.English, keyMore, keyMore))
	mustSet(b.SetString(language.English, keyMoreFor, keyMoreFor))

	return b
}

func mustSet(err error) {
	if err != nil {
		panic(fmt.Sprintf("locale: invalid catalog entry: %v", err))
	}
}

// Formatter renders display strings for one locale.
// A Formatter is immutable after construction and safe for concurrent use.
type Formatter struct {
	tag language.Tag
}

// NewFormatter returns a formatter for a BCP 47 locale such as "pt-BR" or "en".
// An empty locale selects DefaultTag.
func NewFormatter(locale string) (*Formatter, error) {
	if locale == "" {
		return &Formatter{tag: DefaultTag}, nil
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	for _, s := range supported {
		if s.String() == tag.String() {
			return &Formatter{tag: s}, nil
		}
	}
	return nil, fmt.Errorf("unsupported locale %q (supported: pt-BR, en)", locale)
}

// MustNewFormatter is like NewFormatter but panics on an unsupported locale.
func MustNewFormatter(locale string) *Formatter {
	f, err := NewFormatter(locale)
	if err != nil {
		panic(err)
	}
	return f
}

// Tag returns the formatter's locale.
func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// printer is created per call; message.Printer is not documented as safe for
// concurrent use.
func (f *Formatter) printer() *message.Printer {
	return message.NewPrinter(f.tag, message.Catalog(dictionary))
}

// CountLabel returns the count line shown above the result list, e.g.
// "1 profissional encontrado" or "0 profissionais encontrados". Every count other than
// exactly one takes the plural form.
func (f *Formatter) CountLabel(n int) string {
	return f.printer().Sprintf(keyCount, n)
}

// EmptyMessage is shown in place of the card list when nothing matched.
func (f *Formatter) EmptyMessage() string {
	return f.printer().Sprintf(keyEmpty)
}

// ReviewsLabel renders the review count shown on a card.
func (f *Formatter) ReviewsLabel(n int) string {
	return f.printer().Sprintf(keyReviews, n)
}

// MoreLabel is the caption of the detail trigger on a card.
func (f *Formatter) MoreLabel() string {
	return f.printer().Sprintf(keyMore)
}

// MoreLabelFor is the accessible label of the detail trigger for a named professional.
func (f *Formatter) MoreLabelFor(name string) string {
	return f.printer().Sprintf(keyMoreFor, name)
}

// Text translates a page chrome key such as TextSearch.
func (f *Formatter) Text(key string) string {
	return f.printer().Sprintf(key)
}

// FormatRating renders a rating with exactly one decimal digit and a dot separator,
// independent of locale ("4.9").
func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', 1, 64)
}
