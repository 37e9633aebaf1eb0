// Package walk performs self-terminating random walks over a core.Graph.
//
// What
//
//   - Start at a uniformly random vertex.
//   - At each step, choose uniformly among the present out-edges of the
//     current vertex, tombstone that edge and follow it.
//   - Stop when the current vertex has no present out-edge left.
//
// Every edge is followed at most once per walk, so walks on cyclic graphs
// (self-loops included) are finite: each revisit of a vertex sees strictly
// fewer traversable edges.
//
// Scoped mutation
//
//	Tombstones are the only mutation. Walk records every edge it marks and
//	restores all of them in a deferred pass, so the graph is cell-for-cell
//	identical before and after the call, even if the Source panics.
//
// Randomness
//
//	Walk draws from a Source (any type with Intn(n int) int, such as
//	*math/rand.Rand). NewSource(seed) gives a reproducible stream; tests may
//	supply scripted sources.
//
// Concurrency
//
//	A walk mutates the graph for its whole duration. Do not run it
//	concurrently with any other reader or writer of the same graph.
//
// Complexity: O(L·N) for a walk of L steps over N vertices.
package walk
