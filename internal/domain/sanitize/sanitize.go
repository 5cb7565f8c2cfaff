// Package sanitize normalizes raw user input into the canonical forms
// the EPC payload fields require.
package sanitize

import "strings"

// Alphanumeric strips every character outside [A-Za-z0-9] and
// upper-cases the remainder. Total and idempotent.
func Alphanumeric(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= 'a' && r <= 'z':
			return r - ('a' - 'A')
		default:
			return -1
		}
	}, s)
}

// FreeText trims surrounding whitespace and silently truncates to
// maxLen characters. Internal whitespace is left untouched.
func FreeText(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen])
	}
	return s
}

// Digits keeps decimal digits only.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
