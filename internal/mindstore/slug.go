package mindstore

import (
	"regexp"
	"strings"
)

var (
	slugStripPattern    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapsePattern = regexp.MustCompile(`[\s_]+`)
)

// Slugify converts a display name to its filesystem-safe storage key:
// lower-cased, non-word characters stripped, whitespace and underscore runs
// collapsed to single hyphens, leading and trailing hyphens trimmed. It is
// idempotent, and two display names that slugify identically share a storage
// location by design.
func Slugify(text string) string {
	slug := slugStripPattern.ReplaceAllString(strings.ToLower(text), "")
	slug = slugCollapsePattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
