// Package bfs provides breadth-first search over a core.Graph:
// full traversal order, fewest-edge shortest paths, and connected
// components, all driven by the same FIFO frontier discipline.
//
// What
//
//   - BFS(g, start, opts...) explores vertices in non-decreasing distance
//     (edge count) from start and returns a BFSResult containing:
//   - Order: visit sequence, start first
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - ShortestPath(g, start, target) returns a minimum-length path and an
//     ok flag; absence of a path is a value, never an error.
//   - ConnectedComponents(g) partitions the declared vertex set into
//     components, each listed in BFS visit order from its root.
//
// Determinism
//
//	core.Graph adjacency lists keep insertion order and Vertices() keeps
//	declaration order, so visit sequences, path tie-breaking at equal
//	length, and component ordering are fully reproducible.
//
// Preconditions
//
//	BFS is the strict entry point: an unknown start vertex is
//	ErrStartVertexNotFound. ShortestPath and ConnectedComponents are
//	lenient by contract — unknown vertices yield an absent path or are
//	simply not seeded; neither ever reports an error.
//
// Undeclared adjacency targets
//
//	A neighbor that has no adjacency entry of its own is still visited
//	when dequeued but contributes no further neighbors. In component
//	enumeration such vertices are never seeding roots: they appear inside
//	whichever component reaches them, and nowhere if none does.
//
// Complexity (V = |Vertices|, E = |Arcs|)
//
//   - Time:   O(V + E)   (each vertex and arc seen at most once)
//   - Memory: O(V)       (queue, visited set, result maps)
//
// Usage
//
//	res, err := bfs.BFS(g, "A")
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // a cancelled context, or a wrapped OnVisit hook error
//	}
//	path, ok := bfs.ShortestPath(g, "A", "F")
//	comps := bfs.ConnectedComponents(g)
//
// Options (BFS only)
//
//   - WithContext(ctx):       cancellation / deadline for long traversals.
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0); 0 = no limit.
//   - WithFilterNeighbor(fn): skip arcs for which fn(curr, neighbor) == false.
//   - WithOnEnqueue(fn):      hook when a vertex joins the frontier.
//   - WithOnDequeue(fn):      hook immediately before visiting a vertex.
//   - WithOnVisit(fn):        hook during visit; returning error aborts BFS.
package bfs
