// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order, plus
// the word graph's shortest-path query.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start index.
//   - BFS returns a Result containing:
//   - Order: visit sequence
//   - Depth: distance (edges) from start, -1 when unreached
//   - Parent: predecessor in the BFS tree, -1 for the start and unreached vertices
//   - ShortestPath stops as soon as the target is discovered and returns the
//     index path start → target.
//   - Supports an OnVisit hook (may abort with an error), neighbor
//     filtering, a depth limit and context cancellation.
//
// Determinism
//
//	core.Graph.Neighbors returns indices in ascending order and BFS enqueues
//	them in that order. A vertex's parent is fixed at first discovery, so
//	among several shortest paths the one through the lowest-index neighbor
//	at each layer is reported.
//
// Degenerate cases
//
//   - start == target: the path is [start]; nothing is explored.
//   - Self-loops never re-enqueue a vertex.
//   - Disconnected targets: ErrUnreachable.
//
// Complexity (N = vertices, dense matrix)
//
//   - Time:   O(N²)  (a full row scan per dequeued vertex)
//   - Memory: O(N)   (queue, depth/parent slices, roaring visited set)
//
// Usage
//
//	path, err := bfs.ShortestPath(g, from, to)
//	switch {
//	case errors.Is(err, bfs.ErrUnreachable):
//	    // both words known, no directed path
//	case err != nil:
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrTargetNotFound, ErrOptionViolation, ctx or hook errors
//	}
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != banned }),
//	    bfs.WithOnVisit(func(id, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start index is out of range.
//   - ErrTargetNotFound       if the target index is out of range.
//   - ErrOptionViolation      if an invalid Option was supplied.
//   - ErrUnreachable          if the target cannot be reached.
//   - Wrapped OnVisit errors and ctx.Err() on cancellation.
package bfs
