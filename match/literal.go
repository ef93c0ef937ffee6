package match

import (
	"context"
	"strings"

	"github.com/poiesic/phrasegrep/forkjoin"
)

// defaultMinSpan is the span length below which a parallel search stops
// splitting and scans directly. Splitting tiny spans costs more than the
// scan itself.
const defaultMinSpan = 1024

// LiteralMatcher finds literal (substring) occurrences of a phrase.
// Overlapping occurrences are all reported.
type LiteralMatcher struct {
	pool    *forkjoin.Pool
	minSpan int
}

// Option configures a LiteralMatcher.
type Option func(*LiteralMatcher) error

// WithPool sets the fork/join pool used when a search is asked to
// parallelize. Without a pool the matcher always scans sequentially.
func WithPool(pool *forkjoin.Pool) Option {
	return func(m *LiteralMatcher) error {
		m.pool = pool
		return nil
	}
}

// WithMinSpan sets the span length below which a parallel search scans
// directly instead of splitting further. Values below 1 reset the default.
func WithMinSpan(size int) Option {
	return func(m *LiteralMatcher) error {
		if size < 1 {
			size = defaultMinSpan
		}
		m.minSpan = size
		return nil
	}
}

// NewLiteralMatcher creates a literal substring matcher.
func NewLiteralMatcher(opts ...Option) (*LiteralMatcher, error) {
	m := &LiteralMatcher{
		minSpan: defaultMinSpan,
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

var _ Matcher = (*LiteralMatcher)(nil)

// FindMatches returns the ascending byte offsets into span where phrase
// starts. With parallel set and a pool configured, the span is searched by
// recursive halving over the pool.
func (m *LiteralMatcher) FindMatches(ctx context.Context, span, phrase string, parallel bool) ([]int, error) {
	if phrase == "" {
		return nil, ErrEmptyPhrase
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !parallel || m.pool == nil {
		return scan(span, phrase), nil
	}
	return m.findParallel(ctx, span, phrase)
}

// findParallel recursively halves span, forking the left half to the pool
// and searching the right half on the current goroutine. The left segment
// extends len(phrase)-1 bytes past the midpoint so an occurrence straddling
// the split is seen by exactly one side: starts before the midpoint belong
// to the left, starts at or after it to the right.
func (m *LiteralMatcher) findParallel(ctx context.Context, span, phrase string) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mid := len(span) / 2
	leftEnd := mid + len(phrase) - 1

	// Stop splitting when the span is small, or when the overlap would make
	// the left segment cover the whole span and the recursion stop shrinking.
	if len(span) < m.minSpan || mid == 0 || leftEnd >= len(span) {
		return scan(span, phrase), nil
	}

	var leftPositions []int
	var leftErr error
	leftTask := m.pool.Fork(func(workerID int64) {
		leftPositions, leftErr = m.findParallel(ctx, span[:leftEnd], phrase)
	})

	rightPositions, rightErr := m.findParallel(ctx, span[mid:], phrase)

	leftTask.Join()
	if leftErr != nil {
		return nil, leftErr
	}
	if rightErr != nil {
		return nil, rightErr
	}

	// Right positions are relative to span[mid:].
	for i := range rightPositions {
		rightPositions[i] += mid
	}
	return append(leftPositions, rightPositions...), nil
}

// scan finds every start offset of phrase in span, in ascending order.
func scan(span, phrase string) []int {
	var positions []int
	for offset := 0; offset+len(phrase) <= len(span); {
		i := strings.Index(span[offset:], phrase)
		if i < 0 {
			break
		}
		positions = append(positions, offset+i)
		offset += i + 1
	}
	return positions
}
