package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a route regex with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns lists the dynamic routes, most specific first.
// Pre-compiled at init so normalization stays cheap on the hot path.
var pathPatterns = []pathPattern{
	// Category listing before the id route: a category name would otherwise
	// be mistaken for an identifier.
	{pattern: regexp.MustCompile(`^/articles/category/[^/]+$`), template: "/articles/category/:category"},
	{pattern: regexp.MustCompile(`^/articles/[0-9a-fA-F]{24}$`), template: "/articles/:id"},
	// Malformed ids still hit the id route and must not become labels.
	{pattern: regexp.MustCompile(`^/articles/[^/]+$`), template: "/articles/:id"},
}

// NormalizePath maps dynamic URL paths onto route templates so that metric
// labels stay bounded. Identifier-carrying paths collapse to /articles/:id
// and category listings to /articles/category/:category; static paths pass
// through unchanged.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
