// Package catalog holds the pizzeria catalogue rules: name normalization,
// recipe line parsing and reconciliation of recipe names with the
// ingredient table.
package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonASCII = runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })

// Normalize folds a display name into its comparison key: accents and any
// non-ASCII rune are dropped, the result is lowercased and trimmed
// (e.g. " Chèvre " -> "chevre", "Œuf" -> "uf"). The empty string stands
// for a missing value and yields "".
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	// A Chain keeps state between calls; build one per call.
	fold := transform.Chain(norm.NFKD, runes.Remove(nonASCII))
	result, _, err := transform.String(fold, strings.ToValidUTF8(s, ""))
	if err != nil {
		return ""
	}
	return trimSpace(strings.ToLower(result))
}

// trimSpace trims Unicode white space and the ASCII information separators
// 0x1C-0x1F, which spreadsheet exports sometimes leave around cell text.
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
