package utils

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from a display name: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, leading and trailing
// hyphens trimmed. Slugs already in this form pass through unchanged, so stored
// slugs stay stable across re-saves.
func Slugify(name string) string {
	s := nonAlnum.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}
