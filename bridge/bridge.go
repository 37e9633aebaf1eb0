// SPDX-License-Identifier: MIT
// File: bridge.go
// Role: Bridge-word lookup over present edges.

package bridge

import (
	"github.com/katalvlaran/wordgraph/core"
)

// FindIndices returns the indices w with from→w and w→to both present,
// in ascending order. from and to must be valid indices of g.
func FindIndices(g *core.Graph, from, to int) []int {
	out := make([]int, 0, 2)
	for _, w := range g.Neighbors(from) {
		if g.HasEdge(w, to) {
			out = append(out, w)
		}
	}
	return out
}

// Find returns the bridge words from word1 to word2.
// It fails with core.ErrWordNotFound when either word is unknown.
func Find(g *core.Graph, idx *core.WordIndex, word1, word2 string) ([]string, error) {
	from, err := idx.Index(word1)
	if err != nil {
		return nil, err
	}
	to, err := idx.Index(word2)
	if err != nil {
		return nil, err
	}
	return idx.Words(FindIndices(g, from, to)), nil
}
