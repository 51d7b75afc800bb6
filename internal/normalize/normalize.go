// Package normalize contains the field-level cleaning rules for scraped
// job-offer data. Every function is pure and total: any input string,
// however malformed, maps to either a canonical value or ok=false
// ("unknown"). Nothing here panics and nothing reads the ambient clock;
// date resolution takes the batch timestamp as an argument.
//
// The rules mirror the conventions of the Peruvian job boards the
// scraper covers: Spanish relative dates ("hace 3 días"), soles and
// dollars mixed in free text, and "no disponible"-style placeholders.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// notSpecified is the general placeholder set. Matched case-insensitively
// against the trimmed input.
var notSpecified = map[string]bool{
	"":              true,
	"nan":           true,
	"no disponible": true,
}

// listPlaceholders extends the general set with junk the scraper is known
// to emit in list columns.
var listPlaceholders = map[string]bool{
	"llena nomas xd": true,
}

// NotSpecified reports whether the raw value is empty or a known
// "value not provided" placeholder.
func NotSpecified(raw string) bool {
	return notSpecified[strings.ToLower(strings.TrimSpace(raw))]
}

// Capitalize trims the input and upper-cases only the first rune,
// lower-casing the remainder. Placeholder values map to ok=false.
// The operation is idempotent.
func Capitalize(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if notSpecified[strings.ToLower(s)] {
		return "", false
	}
	return capitalizeWord(s), true
}

// capitalizeWord is the raw form of Capitalize with no placeholder check.
func capitalizeWord(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// List splits a delimited string, trims and unquotes each token, drops
// empty tokens, capitalizes the survivors and re-joins them with the
// same delimiter. Token order is preserved. Placeholder inputs and
// inputs that filter down to nothing map to ok=false.
func List(raw, delim string) (string, bool) {
	s := strings.TrimSpace(raw)
	lower := strings.ToLower(s)
	if notSpecified[lower] || listPlaceholders[lower] {
		return "", false
	}

	var items []string
	for _, item := range strings.Split(s, delim) {
		item = strings.TrimSpace(strings.Trim(strings.TrimSpace(item), `"`))
		if item == "" {
			continue
		}
		items = append(items, capitalizeWord(item))
	}
	if len(items) == 0 {
		return "", false
	}
	return strings.Join(items, delim), true
}
