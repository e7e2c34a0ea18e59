package fold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"MARIANA", "mariana"},
		{"São Paulo", "são paulo"},
		{"Sa\u0303o Paulo", "são paulo"}, // decomposed tilde
		{"UI/UX Designer", "ui/ux designer"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, String(tt.input))
		})
	}
}

func TestTerm(t *testing.T) {
	assert.Equal(t, "devops", Term("  DevOps \t"))
	assert.Equal(t, "", Term("   "))
}

func TestContainsAny(t *testing.T) {
	assert.True(t, ContainsAny("paulo", "Mariana Silva", "Fullstack", "São Paulo"))
	assert.True(t, ContainsAny("são", "São Paulo"))
	assert.False(t, ContainsAny("recife", "Mariana Silva", "Fullstack", "São Paulo"))
	assert.False(t, ContainsAny("x"))
}
