package bfs

import "github.com/katalvlaran/lvlbfs/core"

// pathItem pairs a frontier vertex with the path taken to reach it,
// start and vertex inclusive.
type pathItem struct {
	id   string
	path []string
}

// ShortestPath returns a minimum-length (fewest-edges) path from startID to
// targetID, both endpoints inclusive, and ok == true when such a path
// exists.
//
// Absence is a value here, never an error: a nil graph, an unknown start or
// target key, or an unreachable target all yield (nil, false). This is
// deliberately more lenient than BFS, which rejects an unknown start with
// ErrStartVertexNotFound.
//
// When start == target the single-element path is returned with no
// traversal performed. Among equal-length shortest paths the one following
// the earliest adjacency entries wins: the frontier is FIFO and neighbors
// are scanned in insertion order, so the first route to reach the target is
// returned.
//
// Time: O(V + E) dequeues in the worst case; each enqueued item carries a
// copy of its path, so memory is O(V·L) with L the longest frontier path.
func ShortestPath(g *core.Graph, startID, targetID string) ([]string, bool) {
	if g == nil || !g.HasVertex(startID) || !g.HasVertex(targetID) {
		return nil, false
	}
	if startID == targetID {
		return []string{startID}, true
	}

	queue := []pathItem{{id: startID, path: []string{startID}}}
	visited := map[string]bool{startID: true}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		for _, nbr := range g.NeighborIDs(item.id) {
			// first route to the target is shortest: BFS explores in
			// non-decreasing depth and the frontier is FIFO
			if nbr == targetID {
				return appendVertex(item.path, nbr), true
			}
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, pathItem{id: nbr, path: appendVertex(item.path, nbr)})
			}
		}
	}

	return nil, false
}

// appendVertex extends path by id into a fresh slice; frontier items must
// never share backing arrays, or later appends would clobber earlier paths.
func appendVertex(path []string, id string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = id

	return out
}
