// Package wordgraph builds a directed word-adjacency graph from free-form
// text and answers four kinds of queries on it.
//
// 🚀 What is wordgraph?
//
//	Every distinct word of a corpus becomes a vertex; an edge a → b exists
//	when b immediately follows a somewhere in the text. On top of that graph:
//		• Bridge words: w with word1 → w → word2
//		• Shortest path: fewest-hop chain from one word to another (BFS)
//		• Random walk: wander until an edge would be reused
//		• Text augmentation: splice bridge words into a new phrase
//		• Rendering: adjacency lists as text
//
// Under the hood, the work is split across small packages:
//
//	tokenizer/ — corpus lines → word sequence
//	core/      — WordIndex, adjacency-matrix Graph, builder, renderer
//	bridge/    — bridge-word lookup
//	bfs/       — breadth-first search and shortest path
//	walk/      — random walk with scoped tombstones, RNG sources
//	augment/   — bridge-word text augmentation
//
// The Engine in this package owns one index and one graph and serializes
// access to them, so it can be shared between goroutines.
//
// Quick example:
//
//	eng, err := wordgraph.FromText(slices.Values(lines))
//	words, err := eng.Bridges("Better", "than")   // [late]
//	path, err := eng.ShortestPath("Better", "never")
//	if errors.Is(err, wordgraph.ErrUnreachable) { ... }
//
// Errors are plain values: ErrNotFound for words absent from the corpus,
// ErrUnreachable for known words without a connecting path.
package wordgraph
