// SPDX-License-Identifier: MIT
// File: options.go
// Role: Functional options for Build and FromText.

package wordgraph

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/wordgraph/tokenizer"
	"github.com/katalvlaran/wordgraph/walk"
)

// Option customizes an Engine before the graph is built.
// Option constructors panic on nil arguments.
type Option func(*engineConfig)

type engineConfig struct {
	src       walk.Source
	logger    *slog.Logger
	tokenizer *tokenizer.Tokenizer
}

func defaultConfig() engineConfig {
	return engineConfig{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		tokenizer: tokenizer.New(),
	}
}

// WithSource sets the randomness used by RandomWalk and Augment.
func WithSource(src walk.Source) Option {
	if src == nil {
		panic("wordgraph: WithSource(nil)")
	}
	return func(c *engineConfig) {
		c.src = src
	}
}

// WithSeed seeds a private math/rand stream. Seed 0 means "seed from the clock".
func WithSeed(seed int64) Option {
	return func(c *engineConfig) {
		c.src = walk.NewSource(seed)
	}
}

// WithLogger attaches a structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("wordgraph: WithLogger(nil)")
	}
	return func(c *engineConfig) {
		c.logger = l
	}
}

// WithTokenizer replaces the tokenizer used by FromText.
func WithTokenizer(t *tokenizer.Tokenizer) Option {
	if t == nil {
		panic("wordgraph: WithTokenizer(nil)")
	}
	return func(c *engineConfig) {
		c.tokenizer = t
	}
}
