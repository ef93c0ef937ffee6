// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package phrasegrep searches a block of text for many phrases at once,
// splitting the work across a fork/join worker pool.
package phrasegrep

import (
	"context"
	"log/slog"

	"github.com/poiesic/phrasegrep/core"
	"github.com/poiesic/phrasegrep/forkjoin"
	"github.com/poiesic/phrasegrep/match"
	"github.com/poiesic/phrasegrep/search"
)

// Engine bundles a worker pool, a matcher, and a searcher behind one handle.
type Engine struct {
	pool     *forkjoin.Pool
	searcher *search.Searcher
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	workers int
	matcher match.Matcher
	logger  *slog.Logger
}

// WithWorkers sets the worker pool size. Default is the machine's CPU count.
func WithWorkers(n int) EngineOption {
	return func(o *engineOptions) {
		o.workers = n
	}
}

// WithMatcher replaces the default literal matcher.
func WithMatcher(m match.Matcher) EngineOption {
	return func(o *engineOptions) {
		o.matcher = m
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// NewEngine creates an engine with its own worker pool.
// Call Close when done to release the pool.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	pool, err := forkjoin.NewPool(options.workers)
	if err != nil {
		return nil, err
	}

	matcher := options.matcher
	if matcher == nil {
		matcher, err = match.NewLiteralMatcher(match.WithPool(pool))
		if err != nil {
			pool.Release()
			return nil, err
		}
	}

	searcher, err := search.NewSearcher(pool, matcher, search.WithLogger(options.logger))
	if err != nil {
		pool.Release()
		return nil, err
	}

	return &Engine{
		pool:     pool,
		searcher: searcher,
		logger:   options.logger,
	}, nil
}

// Search finds every occurrence of every phrase in the body of text: the
// part after the first line, which is treated as a title and skipped.
// Phrases with no occurrences are omitted from the results.
func (e *Engine) Search(ctx context.Context, text string, phrases []string, parallelSearching, parallelPhrases bool) ([]*core.MatchResult, error) {
	return e.searcher.Search(ctx, text, phrases, parallelSearching, parallelPhrases)
}

// Close releases the engine's worker pool.
func (e *Engine) Close() {
	e.pool.Release()
}

// Search is a one-shot convenience: it builds a default engine, runs a
// single search, and tears the engine down again.
func Search(text string, phrases []string, parallelSearching, parallelPhrases bool) ([]*core.MatchResult, error) {
	engine, err := NewEngine()
	if err != nil {
		return nil, err
	}
	defer engine.Close()

	return engine.Search(context.Background(), text, phrases, parallelSearching, parallelPhrases)
}
