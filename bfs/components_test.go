package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlbfs/bfs"
	"github.com/katalvlaran/lvlbfs/core"
)

// TestConnectedComponents_ThreeGroups checks the canonical disconnected
// graph: a triangle, a pair, and an isolated vertex with an empty list.
func TestConnectedComponents_ThreeGroups(t *testing.T) {
	g := buildGraph(t, []adjEntry{
		{"A", []string{"B", "C"}},
		{"B", []string{"A", "C"}},
		{"C", []string{"A", "B"}},
		{"D", []string{"E"}},
		{"E", []string{"D"}},
		{"F", nil},
	})

	comps := bfs.ConnectedComponents(g)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"D", "E"}, {"F"}}, comps)
}

// TestConnectedComponents_NilAndEmpty never error and yield nothing.
func TestConnectedComponents_NilAndEmpty(t *testing.T) {
	assert.Nil(t, bfs.ConnectedComponents(nil))
	assert.Nil(t, bfs.ConnectedComponents(core.NewGraph()))
}

// TestConnectedComponents_SingleComponent returns one group for a
// fully-connected graph, listed in BFS order from the first key.
func TestConnectedComponents_SingleComponent(t *testing.T) {
	g := sampleGraph(t)

	comps := bfs.ConnectedComponents(g)
	require.Len(t, comps, 1)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, comps[0])
}

// TestConnectedComponents_UndeclaredTarget: an adjacency target without an
// entry of its own joins the component that reaches it, but never seeds one.
func TestConnectedComponents_UndeclaredTarget(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddArc("A", "X"))
	require.NoError(t, g.AddVertex("B"))

	comps := bfs.ConnectedComponents(g)
	assert.Equal(t, [][]string{{"A", "X"}, {"B"}}, comps,
		"X rides along with A's sweep and is not a root")
}

// TestConnectedComponents_RootOrderFollowsDeclaration: components appear in
// the order their roots were declared, not lexicographically.
func TestConnectedComponents_RootOrderFollowsDeclaration(t *testing.T) {
	g := buildGraph(t, []adjEntry{
		{"D", []string{"E"}},
		{"E", []string{"D"}},
		{"A", []string{"B"}},
		{"B", []string{"A"}},
	})

	comps := bfs.ConnectedComponents(g)
	assert.Equal(t, [][]string{{"D", "E"}, {"A", "B"}}, comps)
}

// TestConnectedComponents_Partition asserts the partition property: every
// declared key appears in exactly one component.
func TestConnectedComponents_Partition(t *testing.T) {
	g := buildGraph(t, []adjEntry{
		{"A", []string{"B", "C"}},
		{"B", []string{"A", "D", "E"}},
		{"C", []string{"A", "F"}},
		{"D", []string{"B"}},
		{"E", []string{"B", "F"}},
		{"F", []string{"C", "E"}},
		{"G", []string{"H"}},
		{"H", []string{"G"}},
		{"I", nil},
	})

	comps := bfs.ConnectedComponents(g)

	seen := make(map[string]int)
	for _, comp := range comps {
		for _, v := range comp {
			seen[v]++
		}
	}
	for _, key := range g.Vertices() {
		assert.Equal(t, 1, seen[key], "key %q must appear exactly once", key)
	}
	assert.Len(t, seen, g.VertexCount(), "union of components equals the key set")
}
