package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeName trims s and upper-cases its first letter, lower-casing the rest.
// NormalizeName(NormalizeName(s)) == NormalizeName(s).
func NormalizeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// ColorKey is the case-insensitive matching key for a color name.
func ColorKey(color string) string {
	return strings.ToLower(strings.TrimSpace(color))
}
