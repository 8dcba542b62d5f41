package sanitizer

import (
	"strings"
	"unicode"
)

// TrimAndNormalize trims the string and collapses every run of
// whitespace into a single space.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var b strings.Builder
	var lastWasSpace bool
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				b.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			b.WriteRune(r)
			lastWasSpace = false
		}
	}
	return b.String()
}

func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

// NormalizeLabel canonicalizes treatment names and slot labels. Case
// is preserved: bookings match services and slots by exact string
// equality, and the catalog stores labels as entered.
func NormalizeLabel(label string) string {
	return TrimAndNormalize(label)
}

// NormalizeEmail lowercases so the same mailbox always hits the same
// user record and booking dedupe key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
