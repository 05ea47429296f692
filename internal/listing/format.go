package listing

import (
	"strings"
	"time"
	"unicode"
)

// FormatDate renders a date the way the admin tables display it,
// e.g. "Sep 1, 2026".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatRole capitalizes the first letter and lowercases the rest.
func FormatRole(role string) string {
	if role == "" {
		return ""
	}
	runes := []rune(strings.ToLower(role))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
