package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/poiesic/phrasegrep/core"
	"github.com/poiesic/phrasegrep/forkjoin"
	"github.com/poiesic/phrasegrep/match"
	"github.com/poiesic/phrasegrep/match/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSearcher(t *testing.T) *Searcher {
	t.Helper()
	pool, err := forkjoin.NewPool(4)
	require.NoError(t, err)
	t.Cleanup(pool.Release)

	matcher, err := match.NewLiteralMatcher(match.WithPool(pool))
	require.NoError(t, err)

	searcher, err := NewSearcher(pool, matcher)
	require.NoError(t, err)
	return searcher
}

func TestNewSearcher(t *testing.T) {
	pool, err := forkjoin.NewPool(2)
	require.NoError(t, err)
	defer pool.Release()

	matcher, err := match.NewLiteralMatcher()
	require.NoError(t, err)

	t.Run("valid configuration", func(t *testing.T) {
		searcher, err := NewSearcher(pool, matcher)
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("with custom logger", func(t *testing.T) {
		searcher, err := NewSearcher(pool, matcher, WithLogger(slog.Default()))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		searcher, err := NewSearcher(pool, matcher, WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("nil pool", func(t *testing.T) {
		_, err := NewSearcher(nil, matcher)
		assert.Equal(t, ErrPoolRequired, err)
	})

	t.Run("nil matcher", func(t *testing.T) {
		_, err := NewSearcher(pool, nil)
		assert.Equal(t, ErrMatcherRequired, err)
	})
}

func TestSearchTitleExclusion(t *testing.T) {
	searcher := newTestSearcher(t)
	ctx := context.Background()

	text := "Title line\nThe cat sat. The cat ran."

	t.Run("matches in the body, positions body-relative", func(t *testing.T) {
		results, err := searcher.Search(ctx, text, []string{"cat"}, false, false)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "cat", results[0].Phrase)
		assert.Equal(t, "Title line", results[0].Title)
		assert.Equal(t, 2, results[0].Count())
		assert.Equal(t, []int{4, 17}, results[0].Positions)
	})

	t.Run("phrase occurring only in the title never matches", func(t *testing.T) {
		results, err := searcher.Search(ctx, text, []string{"Title"}, false, false)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestSearchNoMatches(t *testing.T) {
	searcher := newTestSearcher(t)
	ctx := context.Background()

	results, err := searcher.Search(ctx, "Title\nNo matches here.", []string{"zzz"}, false, false)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchPreconditions(t *testing.T) {
	searcher := newTestSearcher(t)
	ctx := context.Background()

	t.Run("empty phrase list", func(t *testing.T) {
		_, err := searcher.Search(ctx, "Title\nbody", nil, true, true)
		assert.ErrorIs(t, err, core.ErrEmptyPhraseList)
	})

	t.Run("empty phrase in list", func(t *testing.T) {
		_, err := searcher.Search(ctx, "Title\nbody", []string{"ok", ""}, true, true)
		assert.ErrorIs(t, err, core.ErrEmptyPhrase)
	})

	t.Run("empty text is not an error", func(t *testing.T) {
		results, err := searcher.Search(ctx, "", []string{"cat"}, true, true)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("single line text has no body", func(t *testing.T) {
		results, err := searcher.Search(ctx, "the cat in the hat", []string{"cat"}, false, false)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

// searchText builds a body with a known multiset of phrase occurrences.
const searchText = "Famous pangrams\n" +
	"The quick brown fox jumps over the lazy dog. " +
	"Pack my box with five dozen liquor jugs. " +
	"The five boxing wizards jump quickly. " +
	"How vexingly quick daft zebras jump."

var searchPhrases = []string{
	"quick", "fox", "lazy", "five", "jump", "wizards", "zebras",
	"missing phrase", "pangrams", "dog", "box", "The",
}

// countsOf reduces results to a phrase -> occurrence count map.
func countsOf(results []*core.MatchResult) map[string]int {
	counts := make(map[string]int, len(results))
	for _, r := range results {
		counts[r.Phrase] = r.Count()
	}
	return counts
}

func TestSearchCompleteness(t *testing.T) {
	searcher := newTestSearcher(t)
	ctx := context.Background()

	results, err := searcher.Search(ctx, searchText, searchPhrases, true, true)
	require.NoError(t, err)

	// Every phrase with at least one body occurrence appears exactly once;
	// "missing phrase" and "pangrams" (title-only) do not appear at all.
	expected := map[string]int{
		"quick":   3, // "quickly" contains "quick"
		"fox":     1,
		"lazy":    1,
		"five":    2,
		"jump":    3,
		"wizards": 1,
		"zebras":  1,
		"dog":     1,
		"box":     2, // "box" and "boxing"
		"The":     2,
	}
	assert.Equal(t, expected, countsOf(results))

	seen := make(map[core.ID]int)
	for _, r := range results {
		seen[r.Id]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "result %d reported more than once", id)
	}
}

func TestSearchFlagInvariance(t *testing.T) {
	searcher := newTestSearcher(t)
	ctx := context.Background()

	flags := []struct{ searching, phrases bool }{
		{true, true},
		{false, true},
		{true, false},
		{false, false},
	}

	baseline, err := searcher.Search(ctx, searchText, searchPhrases, false, false)
	require.NoError(t, err)
	want := countsOf(baseline)

	for _, f := range flags {
		name := fmt.Sprintf("searching=%v phrases=%v", f.searching, f.phrases)
		t.Run(name, func(t *testing.T) {
			results, err := searcher.Search(ctx, searchText, searchPhrases, f.searching, f.phrases)
			require.NoError(t, err)
			assert.Equal(t, want, countsOf(results))
		})
	}
}

func TestSearchMergeOrderIsInputOrder(t *testing.T) {
	// Left results always precede right results, and the left half is
	// always the earlier half of the sub-range, so the merged output
	// preserves phrase input order no matter how the work was scheduled.
	searcher := newTestSearcher(t)
	ctx := context.Background()

	phrases := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta"}
	text := "Greek letters\n" + strings.Join(phrases, " ")

	for i := 0; i < 20; i++ {
		results, err := searcher.Search(ctx, text, phrases, false, true)
		require.NoError(t, err)
		require.Len(t, results, len(phrases))
		for j, r := range results {
			assert.Equal(t, phrases[j], r.Phrase)
		}
	}
}

func TestSearchTitleConsistentAcrossLeaves(t *testing.T) {
	searcher := newTestSearcher(t)
	ctx := context.Background()

	results, err := searcher.Search(ctx, searchText, searchPhrases, false, true)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Equal(t, "Famous pangrams", r.Title)
	}
}

func TestSearchMatcherErrorPropagates(t *testing.T) {
	pool, err := forkjoin.NewPool(4)
	require.NoError(t, err)
	defer pool.Release()

	errBroken := errors.New("matcher broke")
	matcher := mock.NewMockMatcher()
	matcher.FindMatchesFunc = func(ctx context.Context, span, phrase string, parallel bool) ([]int, error) {
		// Fail on the first phrase, which lands in the left-most forked
		// leaf; the failure must surface through the join chain.
		if phrase == "alpha" {
			return nil, errBroken
		}
		return []int{0}, nil
	}

	searcher, err := NewSearcher(pool, matcher)
	require.NoError(t, err)

	results, err := searcher.Search(context.Background(),
		"Title\nbody", []string{"alpha", "beta", "gamma", "delta"}, false, true)
	assert.ErrorIs(t, err, errBroken)
	assert.Nil(t, results, "sibling results must not be reported on failure")
}

func TestSearchCancelledContext(t *testing.T) {
	searcher := newTestSearcher(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := searcher.Search(ctx, searchText, searchPhrases, false, false)
	assert.ErrorIs(t, err, context.Canceled)
}
