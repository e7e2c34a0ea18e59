package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gcbaptista/go-pro-directory/internal/locale"
	"github.com/gcbaptista/go-pro-directory/model"
)

// cardStyles holds the terminal styles for one output stream. Styles are bound to the
// writer's renderer so color is dropped when output is not a terminal.
type cardStyles struct {
	card   lipgloss.Style
	name   lipgloss.Style
	role   lipgloss.Style
	rating lipgloss.Style
	muted  lipgloss.Style
	count  lipgloss.Style
}

func newCardStyles(w io.Writer) cardStyles {
	r := lipgloss.NewRenderer(w)
	return cardStyles{
		card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B82F6")).
			Padding(0, 1),
		name:   r.NewStyle().Bold(true),
		role:   r.NewStyle().Foreground(lipgloss.Color("#2563EB")),
		rating: r.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		count:  r.NewStyle().Bold(true).MarginBottom(1),
	}
}

// renderCard lays out one professional the way the listing page card does:
// name, "role — city", then rating with the review count.
func renderCard(s cardStyles, f *locale.Formatter, p model.Professional) string {
	lines := []string{
		s.name.Render(p.Name),
		s.role.Render(p.Role) + " — " + p.City,
		s.rating.Render(locale.FormatRating(p.Rating)+" ★") + " " + s.muted.Render(f.ReviewsLabel(p.Reviews)),
		s.muted.Render(fmt.Sprintf("#%d", p.ID)),
	}
	return s.card.Render(strings.Join(lines, "\n"))
}

// renderResult writes the count label followed by one card per record, or the
// empty-state message.
func renderResult(w io.Writer, f *locale.Formatter, result model.Result) error {
	s := newCardStyles(w)

	var b strings.Builder
	b.WriteString(s.count.Render(f.CountLabel(result.Total)))
	b.WriteString("\n")

	if len(result.Professionals) == 0 {
		b.WriteString(s.muted.Render(f.EmptyMessage()))
		b.WriteString("\n")
	}
	for _, p := range result.Professionals {
		b.WriteString(renderCard(s, f, p))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// renderDetail writes the overlay content for a single professional.
func renderDetail(w io.Writer, p model.Professional) error {
	s := newCardStyles(w)
	out := s.card.Render(s.name.Render(p.Name) + "\n\n" + p.Bio)
	_, err := fmt.Fprintln(w, out)
	return err
}
