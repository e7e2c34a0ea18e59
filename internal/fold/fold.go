// Package fold normalizes free text for case-insensitive substring matching.
package fold

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// String returns the comparison form of s: NFC-normalized and case-folded.
// Composed and decomposed spellings of the same accented text ("São" typed either way)
// compare equal after folding.
func String(s string) string {
	// Casers keep internal state, so a fresh one is used per call.
	return cases.Fold().String(norm.NFC.String(s))
}

// Term prepares a user-supplied search term: surrounding whitespace is trimmed before
// folding. An empty result means the term imposes no constraint.
func Term(s string) string {
	return String(strings.TrimSpace(s))
}

// ContainsAny reports whether any of the fields, once folded, contains the already
// folded term.
func ContainsAny(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(String(f), term) {
			return true
		}
	}
	return false
}
