package mock

import (
	"context"
	"sync/atomic"

	"github.com/poiesic/phrasegrep/match"
)

// MockMatcher is a test double for match.Matcher.
// It allows custom behavior injection via function fields.
type MockMatcher struct {
	// FindMatchesFunc is called by FindMatches if set.
	// If nil, a plain sequential scan is used.
	FindMatchesFunc func(ctx context.Context, span, phrase string, parallel bool) ([]int, error)

	callCount atomic.Int64
}

// NewMockMatcher creates a mock matcher with default sequential behavior.
func NewMockMatcher() *MockMatcher {
	return &MockMatcher{}
}

var _ match.Matcher = (*MockMatcher)(nil)

// FindMatches delegates to FindMatchesFunc when set, otherwise scans
// sequentially. Safe for concurrent use as long as FindMatchesFunc is.
func (m *MockMatcher) FindMatches(ctx context.Context, span, phrase string, parallel bool) ([]int, error) {
	m.callCount.Add(1)

	if m.FindMatchesFunc != nil {
		return m.FindMatchesFunc(ctx, span, phrase, parallel)
	}

	fallback, err := match.NewLiteralMatcher()
	if err != nil {
		return nil, err
	}
	return fallback.FindMatches(ctx, span, phrase, false)
}

// CallCount returns the number of times FindMatches was called.
func (m *MockMatcher) CallCount() int {
	return int(m.callCount.Load())
}
