// Package textkey normalizes labels, sector keys and account numbers for matching and sorting.
package textkey

import (
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold trims, lower-cases and strips diacritics so that "Peças", " PECAS " and "peças" match.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		folded = strings.TrimSpace(s)
	}
	return strings.ToLower(folded)
}

// AccountKey normalizes a ledger account number: separators removed, surrounding space trimmed.
func AccountKey(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, ".", ""))
}

// Upper trims and upper-cases a label for preset lookups.
func Upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NewCollator returns a pt-BR collator for label ordering.
// Collators keep internal buffers and must not be shared across goroutines.
func NewCollator() *collate.Collator {
	return collate.New(language.BrazilianPortuguese)
}

// NewCodeCollator returns a pt-BR collator that orders digit runs numerically, so "2" < "10".
func NewCodeCollator() *collate.Collator {
	return collate.New(language.BrazilianPortuguese, collate.Numeric)
}
