// SPDX-License-Identifier: MIT
// File: graph.go
// Role: Adjacency-matrix primitives (edge states, neighbors, tombstones, clone).
// Determinism:
//   - Neighbors() returns column indices in ascending order.
// Concurrency:
//   - None. See package doc.

package core

import "fmt"

// NewGraph returns an N×N graph with every cell EdgeAbsent.
// Panics if n is negative.
//
// Complexity: O(n²) memory.
func NewGraph(n int) *Graph {
	if n < 0 {
		panic(fmt.Sprintf("core: NewGraph(%d): negative size", n))
	}
	return &Graph{n: n, cells: make([]EdgeState, n*n)}
}

// N returns the number of vertices.
func (g *Graph) N() int {
	return g.n
}

// cell returns the flat offset of (from,to), panicking on out-of-range indices.
func (g *Graph) cell(from, to int) int {
	if from < 0 || from >= g.n || to < 0 || to >= g.n {
		panic(fmt.Sprintf("core: edge (%d,%d) out of range [0,%d)", from, to, g.n))
	}
	return from*g.n + to
}

// State returns the raw state of the edge from→to.
func (g *Graph) State(from, to int) EdgeState {
	return g.cells[g.cell(from, to)]
}

// HasEdge reports whether from→to is present. Tombstoned edges count as absent.
func (g *Graph) HasEdge(from, to int) bool {
	return g.cells[g.cell(from, to)] == EdgePresent
}

// SetEdge marks from→to present. Idempotent.
func (g *Graph) SetEdge(from, to int) {
	g.cells[g.cell(from, to)] = EdgePresent
}

// Tombstone hides the present edge from→to until Untombstone is called.
// It reports false, leaving the cell untouched, if the edge was not present.
func (g *Graph) Tombstone(from, to int) bool {
	c := g.cell(from, to)
	if g.cells[c] != EdgePresent {
		return false
	}
	g.cells[c] = EdgeTombstone
	return true
}

// Untombstone turns a tombstoned edge back into a present one.
// Cells in any other state are left untouched.
func (g *Graph) Untombstone(from, to int) {
	c := g.cell(from, to)
	if g.cells[c] == EdgeTombstone {
		g.cells[c] = EdgePresent
	}
}

// Tombstones counts cells currently in the EdgeTombstone state.
//
// Complexity: O(n²).
func (g *Graph) Tombstones() int {
	var cnt int
	for _, s := range g.cells {
		if s == EdgeTombstone {
			cnt++
		}
	}
	return cnt
}

// Neighbors returns the present out-neighbors of from in ascending order.
// The result is never nil.
//
// Complexity: O(n).
func (g *Graph) Neighbors(from int) []int {
	start := g.cell(from, 0)
	row := g.cells[start : start+g.n]
	out := make([]int, 0, 4)
	for to, s := range row {
		if s == EdgePresent {
			out = append(out, to)
		}
	}
	return out
}

// EdgeCount returns the number of edges, tombstoned ones included.
//
// Complexity: O(n²).
func (g *Graph) EdgeCount() int {
	var cnt int
	for _, s := range g.cells {
		if s != EdgeAbsent {
			cnt++
		}
	}
	return cnt
}

// Clone returns an independent copy of g, tombstones included.
func (g *Graph) Clone() *Graph {
	cells := make([]EdgeState, len(g.cells))
	copy(cells, g.cells)
	return &Graph{n: g.n, cells: cells}
}

// Equal reports whether g and other have the same size and identical cells.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.n != other.n {
		return false
	}
	for i, s := range g.cells {
		if other.cells[i] != s {
			return false
		}
	}
	return true
}
