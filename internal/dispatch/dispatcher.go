// SPDX-License-Identifier: MIT
// File: dispatcher.go
// Role: Single-query execution with metrics and formatting.

// Package dispatch connects user commands to a wordgraph.Engine: it runs the
// query, records metrics and formats the answer.
package dispatch

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/wordgraph"
	"github.com/katalvlaran/wordgraph/internal/metrics"
	"github.com/katalvlaran/wordgraph/internal/present"
)

// Dispatcher runs single commands against one engine.
type Dispatcher struct {
	eng     *wordgraph.Engine
	metrics *metrics.Metrics
	log     *slog.Logger
}

// New returns a Dispatcher. m may be nil to disable metrics.
func New(eng *wordgraph.Engine, m *metrics.Metrics, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if m != nil {
		m.SetGraph(eng.Len(), eng.EdgeCount())
	}
	return &Dispatcher{eng: eng, metrics: m, log: log}
}

// Bridge answers a bridge-word query.
func (d *Dispatcher) Bridge(word1, word2 string) string {
	bridges, err := d.eng.Bridges(word1, word2)
	switch {
	case errors.Is(err, wordgraph.ErrNotFound):
		d.observe(metrics.OpBridge, metrics.ResultNotFound)
	case len(bridges) == 0:
		d.observe(metrics.OpBridge, metrics.ResultEmpty)
	default:
		d.observe(metrics.OpBridge, metrics.ResultOK)
	}
	return present.Bridges(word1, word2, bridges, err)
}

// Path answers a shortest-path query.
func (d *Dispatcher) Path(word1, word2 string) string {
	path, err := d.eng.ShortestPath(word1, word2)
	switch {
	case errors.Is(err, wordgraph.ErrNotFound):
		d.observe(metrics.OpPath, metrics.ResultNotFound)
	case errors.Is(err, wordgraph.ErrUnreachable):
		d.observe(metrics.OpPath, metrics.ResultUnreachable)
	case err != nil:
		d.log.Error("shortest path failed", "from", word1, "to", word2, "err", err)
	default:
		d.observe(metrics.OpPath, metrics.ResultOK)
	}
	return present.Path(word1, word2, path, err)
}

// Walk performs one random walk.
func (d *Dispatcher) Walk() string {
	words := d.eng.RandomWalk()
	if len(words) == 0 {
		d.observe(metrics.OpWalk, metrics.ResultEmpty)
	} else {
		d.observe(metrics.OpWalk, metrics.ResultOK)
	}
	if d.metrics != nil {
		d.metrics.WalkLength.Observe(float64(len(words)))
	}
	return present.Walk(words)
}

// Generate augments phrase with bridge words.
func (d *Dispatcher) Generate(phrase string) string {
	out := d.eng.Augment(phrase)
	inserted := len(strings.Split(out, " ")) - len(strings.Split(phrase, " "))
	if inserted == 0 {
		d.observe(metrics.OpGenerate, metrics.ResultEmpty)
	} else {
		d.observe(metrics.OpGenerate, metrics.ResultOK)
	}
	if d.metrics != nil {
		d.metrics.InsertedBridges.Add(float64(inserted))
	}
	return out
}

// Show writes the adjacency lists.
func (d *Dispatcher) Show(w io.Writer) error {
	return d.eng.RenderTo(w)
}

func (d *Dispatcher) observe(op, result string) {
	d.log.Debug("query", "op", op, "result", result)
	if d.metrics != nil {
		d.metrics.ObserveQuery(op, result)
	}
}
