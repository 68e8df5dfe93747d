package core

// AddVertex declares id as a graph key with an (initially) empty adjacency
// list. Declaring an existing vertex is a no-op; its adjacency list and
// position in declaration order are preserved.
// Returns ErrEmptyVertexID if id is the empty string.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.declare(id)

	return nil
}

// AddArc appends a single directional adjacency entry from→to.
// The source vertex is declared if new; the target is NOT declared — an
// undeclared target contributes zero neighbors when traversed through.
// Duplicate arcs are kept as given; traversal dedup is the algorithms' job.
// Returns ErrEmptyVertexID if either endpoint is the empty string.
// Complexity: O(1) amortized.
func (g *Graph) AddArc(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.declare(from)
	g.adj[from] = append(g.adj[from], to)

	return nil
}

// AddEdge records an undirected edge between u and v as a pair of mirrored
// arcs (u→v and v→u). Both endpoints are declared.
// Returns ErrEmptyVertexID if either endpoint is the empty string.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.declare(u)
	g.declare(v)
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)

	return nil
}

// declare registers id as a key if unseen. Caller must hold mu.
func (g *Graph) declare(id string) {
	if _, ok := g.adj[id]; ok {
		return
	}
	g.adj[id] = nil
	g.order = append(g.order, id)
}

// HasVertex reports whether id was declared as a graph key.
// Adjacency targets that were never declared report false.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[id]

	return ok
}

// Vertices returns the declared vertex IDs in declaration order.
// The returned slice is a copy; mutating it does not affect the graph.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// NeighborIDs returns the adjacency list of id in insertion order.
// Unknown vertices — including undeclared adjacency targets — yield an
// empty list, never an error: a vertex with no entry simply has no
// outgoing arcs. The returned slice is a copy.
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs := g.adj[id]
	if len(nbrs) == 0 {
		return nil
	}
	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out
}

// VertexCount returns the number of declared vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// ArcCount returns the total number of adjacency entries across all
// declared vertices. An undirected edge added via AddEdge counts twice.
// Complexity: O(V).
func (g *Graph) ArcCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var n int
	for _, nbrs := range g.adj {
		n += len(nbrs)
	}

	return n
}

// Clone returns a deep copy of the graph: declaration order and every
// adjacency list are copied, so mutations on either graph never leak into
// the other.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		order: make([]string, len(g.order)),
		adj:   make(map[string][]string, len(g.adj)),
	}
	copy(c.order, g.order)
	for id, nbrs := range g.adj {
		if len(nbrs) == 0 {
			c.adj[id] = nil
			continue
		}
		cp := make([]string, len(nbrs))
		copy(cp, nbrs)
		c.adj[id] = cp
	}

	return c
}
