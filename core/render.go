// SPDX-License-Identifier: MIT
// File: render.go
// Role: Text rendering of the adjacency lists.
// Determinism:
//   - Rows in index order, neighbors in index order.

package core

import (
	"bufio"
	"io"
	"strings"
)

// RenderTo writes one line per word: "word -> n1, n2, ...".
// A word without out-edges is written as "word ->".
// Tombstoned edges are not listed.
func RenderTo(w io.Writer, g *Graph, idx *WordIndex) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < g.N(); i++ {
		bw.WriteString(idx.Word(i))
		bw.WriteString(" ->")
		for k, j := range g.Neighbors(i) {
			if k == 0 {
				bw.WriteByte(' ')
			} else {
				bw.WriteString(", ")
			}
			bw.WriteString(idx.Word(j))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Render returns the RenderTo output as a string.
func Render(g *Graph, idx *WordIndex) string {
	var sb strings.Builder
	_ = RenderTo(&sb, g, idx) // strings.Builder never fails
	return sb.String()
}
