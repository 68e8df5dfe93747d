// Package core defines the Graph adjacency-mapping container
// and its sentinel errors.
//
// This file declares Graph, its sentinel errors, and the NewGraph
// constructor. Query and mutation methods live in methods.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")
)

// Graph is an insertion-ordered adjacency mapping: each declared vertex ID
// maps to the ordered list of IDs reachable from it via one arc.
//
// order records declared vertex IDs in first-appearance order; adj holds
// the per-vertex neighbor lists in append order. Neighbor entries are not
// required to be declared vertices themselves.
//
// mu guards both order and adj so concurrent read-only traversals are safe.
type Graph struct {
	mu sync.RWMutex

	order []string            // declared vertex IDs, first-appearance order
	adj   map[string][]string // vertex ID → neighbor IDs, append order
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adj: make(map[string][]string),
	}
}
