// SPDX-License-Identifier: MIT
// File: builder.go
// Role: One-shot construction of WordIndex and Graph from a corpus word sequence.

package core

import "fmt"

// BuildGraph returns the graph whose edges are the consecutive pairs of seq.
// Every element of seq must already be registered in idx; an unknown word
// is a programmer error and panics.
//
// Complexity: O(N² + len(seq)).
func BuildGraph(idx *WordIndex, seq []string) *Graph {
	g := NewGraph(idx.Len())
	if len(seq) == 0 {
		return g
	}
	prev := mustIndex(idx, seq[0])
	for _, w := range seq[1:] {
		cur := mustIndex(idx, w)
		g.SetEdge(prev, cur)
		prev = cur
	}
	return g
}

// Build registers every word of seq in first-occurrence order and builds
// the graph over the resulting index. It fails only on empty words.
func Build(seq []string) (*WordIndex, *Graph, error) {
	idx := NewWordIndex(len(seq))
	for pos, w := range seq {
		if _, _, err := idx.Add(w); err != nil {
			return nil, nil, fmt.Errorf("core: sequence position %d: %w", pos, err)
		}
	}
	return idx, BuildGraph(idx, seq), nil
}

func mustIndex(idx *WordIndex, w string) int {
	i, ok := idx.byWord[w]
	if !ok {
		panic(fmt.Sprintf("core: BuildGraph: word %q missing from index", w))
	}
	return i
}
