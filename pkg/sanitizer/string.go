// Package sanitizer normalizes free-text request fields before
// validation and storage.
package sanitizer

import (
	"strings"
	"unicode"
)

// SanitizeName trims, collapses internal whitespace, and strips control
// characters from a display name.
func SanitizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastSpace := false
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsControl(r) {
			continue
		}
		if unicode.IsSpace(r) {
			if lastSpace {
				continue
			}
			lastSpace = true
			b.WriteRune(' ')
			continue
		}
		lastSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// SanitizeEmail lowercases and trims an email address. Format validation
// is the validator's job.
func SanitizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
