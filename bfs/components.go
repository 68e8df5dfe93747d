package bfs

import "github.com/katalvlaran/lvlbfs/core"

// ConnectedComponents partitions the declared vertex set of g into
// connected components of the adjacency relation as given.
// Returns a slice of components in the order their roots appear in
// declaration order; within a component, vertices appear in BFS visit
// order from that root. Never errors; a nil or empty graph yields nil.
//
// Seeding is key-only: each declared vertex not yet swept starts a fresh
// BFS with its own local frontier and the shared visited set. Undeclared
// adjacency targets are collected into whichever component reaches them
// first, but are never roots themselves — if no declared vertex reaches
// them, they appear in no component. A declared vertex with an empty
// adjacency list forms a singleton component.
//
// Time:   O(V + E)
// Memory: O(V) for the shared visited set and per-sweep queue.
func ConnectedComponents(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}

	visited := make(map[string]bool, g.VertexCount())
	var comps [][]string

	for _, root := range g.Vertices() {
		if visited[root] {
			continue
		}
		// BFS sweep collecting one component
		queue := []string{root}
		visited[root] = true
		var comp []string

		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			comp = append(comp, u)

			for _, nbr := range g.NeighborIDs(u) {
				if !visited[nbr] {
					visited[nbr] = true
					queue = append(queue, nbr)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
