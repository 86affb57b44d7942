package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

const uuidSegment = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/api/articles/slug/[^/]+$`), Template: "/api/articles/slug/:slug"},
	{Pattern: regexp.MustCompile(`^/api/articles/[^/]+/view$`), Template: "/api/articles/:slug/view"},
	{Pattern: regexp.MustCompile(`^/api/articles/` + uuidSegment + `$`), Template: "/api/articles/:id"},
	{Pattern: regexp.MustCompile(`^/uploads/[^/]+$`), Template: "/uploads/:file"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. Paths carrying IDs or slugs are collapsed to their
// route template; static paths pass through unchanged.
//
// Examples:
//
//	NormalizePath("/api/articles/3f1c...b10")        // "/api/articles/:id"
//	NormalizePath("/api/articles/slug/hello-world")  // "/api/articles/slug/:slug"
//	NormalizePath("/api/articles/hello-world/view")  // "/api/articles/:slug/view"
//	NormalizePath("/api/articles")                   // "/api/articles" (unchanged)
//	NormalizePath("/health")                         // "/health" (unchanged)
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}
