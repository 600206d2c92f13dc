package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	slugPattern    = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	hyphenRunsExpr = regexp.MustCompile(`-+`)
)

// Slug is a URL-safe tenant identifier: lowercase alphanumeric with hyphens,
// 3-60 characters.
type Slug string

// NewSlug validates a slug string
func NewSlug(value string) (Slug, error) {
	if len(value) < 3 || len(value) > 60 || !slugPattern.MatchString(value) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlug, value)
	}
	return Slug(value), nil
}

// SlugFromName derives a slug from a display name: lowercases, strips
// non-alphanumerics and collapses whitespace/hyphen runs.
func SlugFromName(name string) (Slug, error) {
	s := strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}

	collapsed := hyphenRunsExpr.ReplaceAllString(b.String(), "-")
	collapsed = strings.Trim(collapsed, "-")

	return NewSlug(collapsed)
}

func (s Slug) String() string {
	return string(s)
}
