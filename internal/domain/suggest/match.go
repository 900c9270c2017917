// Package suggest holds the pure ranking and matching rules behind every
// suggestion list: bucket merging, recent-list maintenance and substring matching.
package suggest

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds s for comparison: NFKC (so composed and decomposed Hangul
// compare equal), case folding, and surrounding whitespace removal.
func Normalize(s string) string {
	// cases.Caser is stateful, one per call.
	return cases.Fold().String(norm.NFKC.String(strings.TrimSpace(s)))
}

// Match reports whether candidate contains query after normalization.
// An empty query matches everything.
func Match(candidate, query string) bool {
	q := Normalize(query)
	if q == "" {
		return true
	}
	return strings.Contains(Normalize(candidate), q)
}

// Equal reports whether a and b are the same after normalization.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
