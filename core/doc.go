// Package core defines the word graph's two data structures, WordIndex and
// Graph, and the builder that turns a corpus word sequence into them.
//
// The Graph G = (V,E) is a dense N×N adjacency matrix over word indices:
//
//   - V = words of the corpus, numbered 0..N-1 in first-occurrence order.
//   - E = { (a,b) : word b immediately follows word a somewhere in the corpus }.
//   - Edges are directed and unweighted; repeating a pair does not create a
//     second edge. Self-loops ("a a") are ordinary edges.
//
// Cell states (EdgeState):
//
//	EdgeAbsent    (0) no edge
//	EdgePresent   (1) edge exists
//	EdgeTombstone (2) edge exists but was already traversed by an in-flight
//	                  random walk; never observable once the walk returns
//
// Determinism
//
//	Neighbors and Render scan columns in ascending index order, so every
//	consumer (bridge lookup, BFS, walk) sees neighbors lowest-index first.
//
// Concurrency
//
//	Graph and WordIndex carry no locks. A Graph is read-only after Build
//	except for Tombstone/Untombstone, which a walker uses inside a single
//	call. Callers sharing a Graph between goroutines must serialize walks
//	against every other access (the wordgraph.Engine does this).
//
// Errors:
//
//	ErrWordNotFound - a queried word never appeared in the corpus.
//	ErrEmptyWord    - an empty string was offered to WordIndex.Add.
//
// Out-of-range indices and unknown words during BuildGraph are programmer
// errors and panic.
package core
