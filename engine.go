// SPDX-License-Identifier: MIT
// File: engine.go
// Role: Engine facade guarding the index and graph with an RWMutex.

package wordgraph

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"sync"

	"github.com/katalvlaran/wordgraph/augment"
	"github.com/katalvlaran/wordgraph/bfs"
	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/tokenizer"
	"github.com/katalvlaran/wordgraph/walk"
)

// Engine owns the word index and graph of one corpus.
//
// Read-only queries share a read lock. RandomWalk tombstones edges while it
// runs and Augment draws from the shared Source, so both take the write lock.
type Engine struct {
	mu  sync.RWMutex
	idx *core.WordIndex
	g   *core.Graph
	src walk.Source
	log *slog.Logger
}

// Build creates an Engine from an already tokenized corpus.
func Build(seq []string, opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return build(seq, cfg)
}

// FromText tokenizes lines and builds an Engine from the resulting words.
func FromText(lines iter.Seq[string], opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return build(tokenizer.Collect(cfg.tokenizer.Lines(lines)), cfg)
}

func build(seq []string, cfg engineConfig) (*Engine, error) {
	idx, g, err := core.Build(seq)
	if err != nil {
		return nil, fmt.Errorf("wordgraph: build: %w", err)
	}
	src := cfg.src
	if src == nil {
		src = walk.NewSource(0)
	}
	e := &Engine{idx: idx, g: g, src: src, log: cfg.logger}
	e.log.Info("graph built",
		slog.Int("tokens", len(seq)),
		slog.Int("words", idx.Len()),
		slog.Int("edges", g.EdgeCount()),
	)
	return e, nil
}

// Len returns the number of distinct words.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.idx.Len()
}

// EdgeCount returns the number of distinct adjacent-word pairs.
func (e *Engine) EdgeCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.g.EdgeCount()
}

// Words returns every distinct word in first-occurrence order.
func (e *Engine) Words() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.idx.All()
}

// Has reports whether word occurs in the corpus.
func (e *Engine) Has(word string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.idx.Has(word)
}

// Snapshot returns an independent copy of the current graph.
func (e *Engine) Snapshot() *core.Graph {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.g.Clone()
}

// Bridges returns the bridge words from word1 to word2 in first-occurrence
// order. The slice is empty, not nil, when both words are known but nothing
// bridges them. Unknown words yield ErrNotFound.
func (e *Engine) Bridges(word1, word2 string) ([]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out, err := bridge.Find(e.g, e.idx, word1, word2)
	e.log.Debug("bridges", slog.String("from", word1), slog.String("to", word2),
		slog.Int("found", len(out)), slog.Any("err", err))
	return out, err
}

// ShortestPath returns one fewest-hop word chain from word1 to word2, both
// included. Among equally short chains the one through the earliest
// corpus words wins. word1 == word2 yields [word1].
// Unknown words yield ErrNotFound; disconnected words yield ErrUnreachable.
func (e *Engine) ShortestPath(word1, word2 string, opts ...bfs.Option) ([]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	from, err := e.idx.Index(word1)
	if err != nil {
		return nil, err
	}
	to, err := e.idx.Index(word2)
	if err != nil {
		return nil, err
	}
	path, err := bfs.ShortestPath(e.g, from, to, opts...)
	if err != nil {
		e.log.Debug("shortest path", slog.String("from", word1), slog.String("to", word2), slog.Any("err", err))
		return nil, fmt.Errorf("%q → %q: %w", word1, word2, err)
	}
	e.log.Debug("shortest path", slog.String("from", word1), slog.String("to", word2), slog.Int("hops", len(path)-1))
	return e.idx.Words(path), nil
}

// RandomWalk performs one random walk and returns the visited words, start
// word first. The graph is restored before the method returns.
// The result is empty only for an empty corpus.
func (e *Engine) RandomWalk() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	path := walk.Walk(e.g, e.src)
	e.log.Debug("random walk", slog.Int("steps", len(path)))
	return e.idx.Words(path)
}

// Augment inserts a randomly chosen bridge word between each adjacent pair
// of phrase tokens (split on single spaces) that has one.
func (e *Engine) Augment(phrase string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := augment.Augment(e.g, e.idx, phrase, e.src)
	e.log.Debug("augment", slog.String("in", phrase), slog.String("out", out))
	return out
}

// RenderTo writes the adjacency lists, one word per line.
func (e *Engine) RenderTo(w io.Writer) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return core.RenderTo(w, e.g, e.idx)
}

// Render returns the adjacency lists as a string.
func (e *Engine) Render() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return core.Render(e.g, e.idx)
}
