package search

import (
	"context"

	"github.com/poiesic/phrasegrep/core"
	"github.com/poiesic/phrasegrep/forkjoin"
	"github.com/poiesic/phrasegrep/match"
)

// splitTask is one node in the recursive fork/join tree over the phrase
// list. The text, flags, threshold, and collaborators are identical across
// the whole tree; phrases is the node's exclusive, contiguous sub-range.
// Tasks are values created per recursive call and never shared between
// goroutines, so nothing here needs locking.
type splitTask struct {
	text              string
	phrases           []string
	parallelSearching bool
	parallelPhrases   bool
	minSplit          int
	matcher           match.Matcher
	pool              *forkjoin.Pool
	monitor           SearchMonitor
}

// compute evaluates this task's phrase sub-range, splitting it across the
// pool while it stays at or above the fixed threshold. The threshold was
// computed once at the root and is never recomputed here, so split depth is
// governed by the original list size, not the current sub-range.
func (t *splitTask) compute(ctx context.Context, workerID int64) ([]*core.MatchResult, error) {
	// A sub-range of one cannot be split meaningfully.
	if len(t.phrases) < 2 || len(t.phrases) < t.minSplit || !t.parallelPhrases {
		return t.computeSequentially(ctx, workerID)
	}
	return t.split(ctx, workerID, len(t.phrases)/2)
}

// computeSequentially is the leaf phase: scan each phrase of the sub-range
// against the body, in input order, keeping only phrases that matched.
func (t *splitTask) computeSequentially(ctx context.Context, workerID int64) ([]*core.MatchResult, error) {
	t.monitor.Leaf(t.phrases, workerID)

	// Every leaf re-derives the title from the full original text. The
	// shrinking phrase sub-range never changes what counts as the body.
	title := ExtractTitle(t.text)
	body := bodyOf(t.text, title)

	results := make([]*core.MatchResult, 0, len(t.phrases))
	for _, phrase := range t.phrases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		positions, err := t.matcher.FindMatches(ctx, body, phrase, t.parallelSearching)
		if err != nil {
			return nil, err
		}
		if len(positions) == 0 {
			continue
		}

		result := &core.MatchResult{
			Id:        core.IDFromContent(phrase),
			WorkerID:  workerID,
			Phrase:    phrase,
			Title:     title,
			Positions: positions,
		}
		t.monitor.PhraseMatched(result)
		results = append(results, result)
	}

	return results, nil
}

// split forks the left half of the sub-range to the pool, continues with
// the right half on the current goroutine, then joins the left task and
// concatenates left results before right ones. Completion order and merge
// order are independent: the right half finishes first by construction, but
// its results always follow the left's.
func (t *splitTask) split(ctx context.Context, workerID int64, splitPos int) ([]*core.MatchResult, error) {
	t.monitor.Split(len(t.phrases), splitPos)

	left := t.sub(t.phrases[:splitPos])

	var leftResults []*core.MatchResult
	var leftErr error
	leftTask := t.pool.Fork(func(id int64) {
		leftResults, leftErr = left.compute(ctx, id)
	})

	right := t.sub(t.phrases[splitPos:])
	rightResults, rightErr := right.compute(ctx, workerID)

	leftTask.Join()
	if leftErr != nil {
		return nil, leftErr
	}
	if rightErr != nil {
		return nil, rightErr
	}

	return append(leftResults, rightResults...), nil
}

// sub derives a child task over the given sub-range, inheriting everything
// else unchanged, including the fixed threshold.
func (t *splitTask) sub(phrases []string) *splitTask {
	child := *t
	child.phrases = phrases
	return &child
}
