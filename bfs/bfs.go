// SPDX-License-Identifier: MIT
// File: bfs.go
// Role: BFS walker with early exit and shortest-path reconstruction.

// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with an optional visit hook, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/wordgraph/core"
)

// noTarget disables early termination.
const noTarget = -1

// queueItem pairs a vertex index with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited *roaring.Bitmap
	res     *Result
	target  int
	found   bool
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx errors, or any OnVisit error.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, noTarget, opts)
	if err != nil {
		return nil, err
	}
	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, -1)
	// Main loop
	return w.res, w.loop()
}

// ShortestPath returns one shortest directed path from → to as a list of
// vertex indices, both ends included. The search stops at the first
// discovery of to. from == to yields [from].
// Returns ErrUnreachable when the queue is exhausted first.
func ShortestPath(g *core.Graph, from, to int, opts ...Option) ([]int, error) {
	w, err := newWalker(g, from, to, opts)
	if err != nil {
		return nil, err
	}
	if to < 0 || to >= g.N() {
		return nil, fmt.Errorf("%w: %d", ErrTargetNotFound, to)
	}
	// zero-length path: nothing to explore
	if from == to {
		return []int{from}, nil
	}

	w.enqueue(from, 0, -1)
	if err = w.loop(); err != nil {
		return nil, err
	}
	if !w.found {
		return nil, fmt.Errorf("%w: %d → %d", ErrUnreachable, from, to)
	}
	return w.res.PathTo(to)
}

// newWalker validates input, applies options and allocates walker state.
func newWalker(g *core.Graph, start, target int, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	n := g.N()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: roaring.New(),
		target:  target,
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}
	return w, nil
}

// enqueue marks id visited at depth d, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.visited.Add(uint32(id))
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, target found, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.found {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors scans present out-edges in ascending order, applies
// filtering and MaxDepth, and enqueues each unseen neighbor. Discovering
// the target ends the scan.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if w.visited.Contains(uint32(nbr)) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
		if nbr == w.target {
			w.found = true
			return
		}
	}
}
