package search

import "github.com/poiesic/phrasegrep/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track how the phrase list is split and which
// phrases match. Hooks may be invoked concurrently from multiple workers
// and must be safe for that.
type SearchMonitor interface {
	Start(phraseCount, minSplit int)
	Split(size, splitPos int)
	Leaf(phrases []string, workerID int64)
	PhraseMatched(result *core.MatchResult)
	Finish(results []*core.MatchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_, _ int)                    {}
func (n *noopMonitor) Split(_, _ int)                    {}
func (n *noopMonitor) Leaf(_ []string, _ int64)          {}
func (n *noopMonitor) PhraseMatched(_ *core.MatchResult) {}
func (n *noopMonitor) Finish(_ []*core.MatchResult)      {}
