// Package textmatch implements the case-insensitive substring matching
// used by recipe search, ingredient matching and allergy checks.
package textmatch

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Fold lower-cases s after NFC normalization, so precomposed and
// decomposed spellings ("jalapeño") compare equal.
func Fold(s string) string {
	// Casers are stateful; one per call.
	return cases.Lower(language.Und).String(norm.NFC.String(s))
}

// Contains reports whether needle occurs in haystack, ignoring case.
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}

// ContainsFolded is Contains for a needle already passed through Fold.
func ContainsFolded(haystack, foldedNeedle string) bool {
	return strings.Contains(Fold(haystack), foldedNeedle)
}
