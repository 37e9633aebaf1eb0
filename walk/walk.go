// SPDX-License-Identifier: MIT
// File: walk.go
// Role: Self-terminating random walk with scoped tombstones.

package walk

import (
	"github.com/katalvlaran/wordgraph/core"
)

// mark is one tombstoned edge awaiting restoration.
type mark struct{ from, to int }

// Walk returns the vertex sequence of one random walk over g, start vertex
// first. The result has length >= 1 for a non-empty graph and is empty for
// a graph with no vertices. Panics if src is nil.
func Walk(g *core.Graph, src Source) []int {
	if src == nil {
		panic("walk: nil Source")
	}
	n := g.N()
	if n == 0 {
		return []int{}
	}

	var trail []mark
	defer func() {
		for _, m := range trail {
			g.Untombstone(m.from, m.to)
		}
	}()

	pos := src.Intn(n)
	path := []int{pos}
	for {
		candidates := g.Neighbors(pos)
		if len(candidates) == 0 {
			break
		}
		next := Pick(src, candidates)
		g.Tombstone(pos, next)
		trail = append(trail, mark{from: pos, to: next})
		pos = next
		path = append(path, pos)
	}
	return path
}
