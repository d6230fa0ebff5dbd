package textnorm

import (
	"regexp"
	"strings"
)

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases s, collapses every run of characters outside [a-z0-9]
// into a single hyphen and trims hyphens from both ends.
func Slug(s string) string {
	out := nonAlnumRun.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(out, "-")
}

// CanonicalName is the dedup key of a dish within one restaurant.
func CanonicalName(name string) string {
	return Slug(name)
}
