package helpers

import "strings"

// TrimField removes leading and trailing whitespace from a record field.
// Letter case is left untouched so the value can be displayed as written.
func TrimField(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeKey returns the canonical lookup key for a course identifier:
// surrounding whitespace trimmed, then upper-cased. Interior characters are kept.
func NormalizeKey(s string) string {
	return strings.ToUpper(TrimField(s))
}
