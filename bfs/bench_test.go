package bfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlbfs/bfs"
	"github.com/katalvlaran/lvlbfs/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	// build a chain of N+1 vertices, N edges
	g := core.NewGraph()
	for i := 0; i < N; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}
	V := N + 1
	E := N

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0")
	}
}

// BenchmarkBFS_Grid runs BFS on an M×M grid (M² nodes, ≈2*M*(M−1) edges).
func BenchmarkBFS_Grid(b *testing.B) {
	const M = 100
	V := M * M
	E := 2 * M * (M - 1)

	g := buildGrid(M)

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "0_0")
	}
}

// BenchmarkShortestPath_Grid measures corner-to-corner path search on an
// M×M grid; the frontier carries full path copies, the worst case for this
// operation's memory profile.
func BenchmarkShortestPath_Grid(b *testing.B) {
	const M = 50
	g := buildGrid(M)
	target := fmt.Sprintf("%d_%d", M-1, M-1)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(g, "0_0", target)
	}
}

// BenchmarkConnectedComponents_RandomSparse sweeps a sparse random graph
// with many small components.
func BenchmarkConnectedComponents_RandomSparse(b *testing.B) {
	const V = 5000
	const E = 4000

	rnd := rand.New(rand.NewSource(42))
	g := core.NewGraph()
	for i := 0; i < V; i++ {
		_ = g.AddVertex(fmt.Sprintf("n%d", i))
	}
	for k := 0; k < E; k++ {
		u := fmt.Sprintf("n%d", rnd.Intn(V))
		v := fmt.Sprintf("n%d", rnd.Intn(V))
		_ = g.AddEdge(u, v)
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + 2*E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = bfs.ConnectedComponents(g)
	}
}

// buildGrid constructs an M×M undirected grid with "i_j" vertex IDs.
func buildGrid(m int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			id := fmt.Sprintf("%d_%d", i, j)
			if i+1 < m {
				_ = g.AddEdge(id, fmt.Sprintf("%d_%d", i+1, j))
			}
			if j+1 < m {
				_ = g.AddEdge(id, fmt.Sprintf("%d_%d", i, j+1))
			}
		}
	}

	return g
}
