// Package core defines the Graph container used by all lvlbfs algorithms:
// an adjacency mapping from vertex ID to an ordered list of neighbor IDs.
//
// What
//
//   - Vertices are declared explicitly (AddVertex) or implicitly as the
//     source of an arc (AddArc) or either endpoint of an edge (AddEdge).
//   - Declaration order is remembered: Vertices() enumerates keys in the
//     order they first appeared, and adjacency lists keep append order.
//   - An adjacency target need not be declared itself. Such a vertex has
//     no entry of its own: NeighborIDs returns an empty list for it, and
//     HasVertex reports false. This mirrors a raw map whose values may
//     reference keys that were never inserted.
//
// Why
//
//   - Breadth-first traversal over an unweighted graph needs nothing more
//     than ordered neighbor lists, and nothing less: insertion order is
//     what makes visit order, path tie-breaking, and component listing
//     reproducible run after run.
//
// Concurrency
//
//	All methods take an internal sync.RWMutex, so any number of readers
//	(traversals) may run concurrently. Mutating a Graph while traversals
//	are in flight is serialized by the same lock but will interleave with
//	snapshot reads; build first, then traverse.
//
// Complexity
//
//   - AddVertex / AddArc / AddEdge: O(1) amortized
//   - Vertices / NeighborIDs: O(result) copy-out
//   - Clone: O(V + E)
package core
