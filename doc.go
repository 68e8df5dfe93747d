// Package lvlbfs is a compact in-memory toolkit for breadth-first
// exploration of unweighted graphs given as adjacency mappings.
//
// 🚀 What is lvlbfs?
//
//	A small, thread-safe, zero-dependency library built around one
//	mechanism — level-by-level frontier expansion — consumed three ways:
//		• bfs.BFS                  — visitation order, depths, parent links
//		• bfs.ShortestPath         — fewest-edge path between two vertices
//		• bfs.ConnectedComponents  — partition of the declared vertex set
//
// ✨ Why choose lvlbfs?
//
//   - Deterministic – adjacency lists keep insertion order, so every
//     traversal, path and component listing is fully reproducible
//   - Faithful containers – the graph is exactly a vertex → neighbors
//     mapping; targets without their own entry simply have no neighbors
//   - Extensible – hooks (OnVisit, OnEnqueue…), depth limits and neighbor
//     filters on the traversal entry point
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	core/ — the Graph container: declaration-ordered vertices and
//	        insertion-ordered adjacency lists
//	bfs/  — the three breadth-first operations and their options
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	BFS from A visits A, then {B,C} in the order they were declared
//	adjacent to A, then D.
//
// Dive into examples/ for a runnable route-planner walkthrough.
//
//	go get github.com/katalvlaran/lvlbfs
package lvlbfs
