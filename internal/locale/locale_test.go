package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCountLabel_Portuguese(t *testing.T) {
	f := MustNewFormatter("pt-BR")

	tests := []struct {
		count    int
		expected string
	}{
		{0, "0 profissionais encontrados"},
		{1, "1 profissional encontrado"},
		{2, "2 profissionais encontrados"},
		{4, "4 profissionais encontrados"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, f.CountLabel(tt.count))
	}
}

func TestCountLabel_English(t *testing.T) {
	f := MustNewFormatter("en")

	assert.Equal(t, "0 professionals found", f.CountLabel(0))
	assert.Equal(t, "1 professional found", f.CountLabel(1))
	assert.Equal(t, "3 professionals found", f.CountLabel(3))
}

func TestFormatterLabels(t *testing.T) {
	pt := MustNewFormatter("")
	assert.Equal(t, language.BrazilianPortuguese, pt.Tag())
	assert.Equal(t, "Nenhum profissional encontrado.", pt.EmptyMessage())
	assert.Equal(t, "(57 avaliações)", pt.ReviewsLabel(57))
	assert.Equal(t, "Ver mais", pt.MoreLabel())
	assert.Equal(t, "Ver mais sobre Ana Costa", pt.MoreLabelFor("Ana Costa"))

	en := MustNewFormatter("en")
	assert.Equal(t, "No professionals found.", en.EmptyMessage())
	assert.Equal(t, "(45 reviews)", en.ReviewsLabel(45))
	assert.Equal(t, "See more about Ana Costa", en.MoreLabelFor("Ana Costa"))
}

func TestNewFormatter_Invalid(t *testing.T) {
	_, err := NewFormatter("fr")
	require.Error(t, err)

	_, err = NewFormatter("not a locale!!")
	require.Error(t, err)
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "4.9", FormatRating(4.9))
	assert.Equal(t, "5.0", FormatRating(5))
	assert.Equal(t, "0.0", FormatRating(0))
	assert.Equal(t, "4.7", FormatRating(4.72))
}

func TestText(t *testing.T) {
	pt := MustNewFormatter("pt-BR")
	en := MustNewFormatter("en")

	assert.Equal(t, "Buscar", pt.Text(TextSearch))
	assert.Equal(t, "Todas as funções", pt.Text(TextAllRoles))
	assert.Equal(t, "Search", en.Text(TextSearch))
	assert.Equal(t, "All roles", en.Text(TextAllRoles))
}
