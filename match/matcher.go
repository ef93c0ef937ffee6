package match

import "context"

// Matcher locates every occurrence of a phrase within a span of text.
type Matcher interface {
	// FindMatches returns the ascending byte offsets into span at which
	// phrase starts. A phrase with no occurrences yields an empty (or nil)
	// slice, not an error. When parallel is true the matcher may split the
	// work internally; callers must not assume anything about how.
	FindMatches(ctx context.Context, span, phrase string, parallel bool) ([]int, error)
}
