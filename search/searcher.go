package search

import (
	"context"
	"log/slog"

	"github.com/poiesic/phrasegrep/core"
	"github.com/poiesic/phrasegrep/forkjoin"
	"github.com/poiesic/phrasegrep/match"
)

// Searcher finds all occurrences of a list of phrases in a block of text.
type Searcher struct {
	pool    *forkjoin.Pool
	matcher match.Matcher
	logger  *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher drawing workers from pool and
// delegating single-phrase matching to matcher.
func NewSearcher(pool *forkjoin.Pool, matcher match.Matcher, opts ...Option) (*Searcher, error) {
	if pool == nil {
		return nil, ErrPoolRequired
	}
	if matcher == nil {
		return nil, ErrMatcherRequired
	}

	s := &Searcher{
		pool:    pool,
		matcher: matcher,
		logger:  slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search finds every occurrence of every phrase in the body of text (the
// part after the first line, which is treated as a title). Phrases with no
// occurrences are omitted from the results.
//
// parallelSearching lets the matcher parallelize within a single phrase's
// scan; parallelPhrases lets the searcher fork across the phrase list.
// Neither flag affects which results are produced, only how.
func (s *Searcher) Search(ctx context.Context, text string, phrases []string, parallelSearching, parallelPhrases bool) ([]*core.MatchResult, error) {
	return s.SearchWithMonitor(ctx, text, phrases, parallelSearching, parallelPhrases, nil)
}

// SearchWithMonitor is Search with monitoring. The monitor receives
// callbacks as the phrase list is split and as phrases match.
func (s *Searcher) SearchWithMonitor(ctx context.Context, text string, phrases []string, parallelSearching, parallelPhrases bool, monitor SearchMonitor) ([]*core.MatchResult, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if err := core.ValidatePhrases(phrases); err != nil {
		s.logger.Error("rejecting search", "err", err)
		return nil, err
	}

	// The split threshold is fixed here, at the root, from the original
	// list size. Descendant tasks inherit it unchanged.
	minSplit := len(phrases) / 2
	monitor.Start(len(phrases), minSplit)

	root := &splitTask{
		text:              text,
		phrases:           phrases,
		parallelSearching: parallelSearching,
		parallelPhrases:   parallelPhrases,
		minSplit:          minSplit,
		matcher:           s.matcher,
		pool:              s.pool,
		monitor:           monitor,
	}

	results, err := root.compute(ctx, 0)
	if err != nil {
		s.logger.Error("search failed", "phraseCount", len(phrases), "err", err)
		return nil, err
	}

	s.logger.Debug("search finished", "phraseCount", len(phrases), "matched", len(results))
	monitor.Finish(results)
	return results, nil
}
