package core_test

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
)

// ExampleBuild builds the graph of a short sentence and prints its
// adjacency lists. Repeated pairs collapse into one edge.
func ExampleBuild() {
	idx, g, err := core.Build([]string{"to", "be", "or", "not", "to", "be"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("words:", idx.Len(), "edges:", g.EdgeCount())
	fmt.Print(core.Render(g, idx))
	// Output:
	// words: 4 edges: 4
	// to -> be
	// be -> or
	// or -> not
	// not -> to
}
