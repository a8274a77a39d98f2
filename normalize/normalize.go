// Package normalize maps display names to a stable lookup key.
//
// The key is used throughout the planner as the canonical identity of a
// Course: catalog codes drift between academic years, but a normalized name
// is stable, so normalize.Key is the join key the Master Map merges on.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks is a transform.Transformer that removes Unicode combining marks
// (category Mn) from an NFD-decomposed string, e.g. "á" (NFD: "a" + U+0301)
// becomes "a".
var stripMarks = runes.Remove(runes.In(unicode.Mn))

// Key normalizes s into a stable lookup key:
//  1. case-fold to lower,
//  2. strip diacritical marks (NFD decompose, drop combining marks, NFC recompose),
//  3. retain alphanumerics and single spaces, collapsing runs of whitespace,
//  4. trim leading/trailing space.
//
// Key is pure, deterministic, and idempotent: Key(Key(s)) == Key(s) for all s.
func Key(s string) string {
	folded := strings.ToLower(s)

	ascii, _, err := transform.String(transform.Chain(norm.NFD, stripMarks, norm.NFC), folded)
	if err != nil {
		// transform.String over a pure rune-removal chain cannot fail on
		// well-formed UTF-8 input; fall back to the un-decomposed string
		// rather than propagating an error from a normalizer that must be
		// total by contract.
		ascii = folded
	}

	var b strings.Builder
	b.Grow(len(ascii))
	lastWasSpace := false
	for _, r := range ascii {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastWasSpace = false
		case unicode.IsSpace(r):
			if !lastWasSpace {
				b.WriteRune(' ')
			}
			lastWasSpace = true
		default:
			// drop punctuation and symbols entirely
		}
	}

	return strings.TrimSpace(b.String())
}
