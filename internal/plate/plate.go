package plate

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	invalidChars  = regexp.MustCompile(`[^A-Z0-9-]`)
)

// Normalize canonicalizes a user-supplied plate: trim, upper-case,
// collapse whitespace runs into a single hyphen, then drop everything
// that is not an uppercase ASCII letter, digit or hyphen.
// Total and idempotent.
func Normalize(raw string) string {
	p := strings.ToUpper(strings.TrimSpace(raw))
	p = whitespaceRun.ReplaceAllString(p, "-")
	return invalidChars.ReplaceAllString(p, "")
}
