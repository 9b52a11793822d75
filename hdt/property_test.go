package hdt_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/dynaconn/algorithms"
	"github.com/katalvlaran/dynaconn/builder"
	"github.com/katalvlaran/dynaconn/core"
	"github.com/katalvlaran/dynaconn/hdt"
	"github.com/stretchr/testify/require"
)

// mirror builds an hdt.Graph whose nodes and tree/non-tree structure track a
// core.Graph edge for edge, so that property tests can create and delete the
// same logical edges on both sides and compare hdt's answers against a
// ground-truth BFS oracle over core.Graph.
type mirror struct {
	nodes map[string]*testNode
	edges map[string]*testEdge
	hg    *hdt.Graph
}

func newMirror() *mirror {
	return &mirror{
		nodes: make(map[string]*testNode),
		edges: make(map[string]*testEdge),
		hg:    hdt.NewGraph(),
	}
}

func (m *mirror) nodeFor(id string) *testNode {
	n, ok := m.nodes[id]
	if !ok {
		n = node(id)
		m.nodes[id] = n
	}
	return n
}

func (m *mirror) deleteEdge(g *core.Graph, id string) {
	e, ok := m.edges[id]
	if !ok {
		return
	}
	delete(m.edges, id)
	m.hg.DeleteEdge(e)
}

// buildRandomMirror constructs a random sparse graph with builder, then
// replays its edges identically into a fresh hdt.Graph via mirror.
func buildRandomMirror(t *testing.T, n int, p float64, seed int64) (*core.Graph, *mirror) {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.RandomSparse(n, p),
	)
	require.NoError(t, err)

	m := newMirror()
	for _, id := range g.Vertices() {
		m.nodeFor(id)
	}
	for _, e := range g.Edges() {
		m.edges[e.ID] = edge(e.ID)
		m.hg.CreateEdge(m.nodeFor(e.From), m.nodeFor(e.To), m.edges[e.ID])
	}
	return g, m
}

func assertHasPathMatchesOracle(t *testing.T, g *core.Graph, m *mirror) {
	t.Helper()
	vertices := g.Vertices()
	for _, u := range vertices {
		reached, err := algorithms.ReachableSet(g, u)
		require.NoError(t, err)
		for _, v := range vertices {
			_, wantConnected := reached[v]
			gotConnected := m.hg.HasPath(m.nodeFor(u), m.nodeFor(v))
			require.Equalf(t, wantConnected, gotConnected, "HasPath(%s, %s)", u, v)
		}
	}
}

func assertClustersMatchOracle(t *testing.T, g *core.Graph, m *mirror) {
	t.Helper()
	want := algorithms.ConnectedComponents(g)
	seen := make(map[string]bool)
	for _, comp := range want {
		rep := m.hg.FindClusterRep(m.nodeFor(comp[0]))
		require.Equal(t, len(comp), m.hg.ClusterSize(m.nodeFor(comp[0])))
		for _, id := range comp {
			require.Equal(t, rep, m.hg.FindClusterRep(m.nodeFor(id)), "member %s of component %v", id, comp)
			seen[id] = true
		}
		var got []string
		for n := range m.hg.Cluster(m.nodeFor(comp[0])) {
			got = append(got, n.(*testNode).Name)
		}
		sort.Strings(got)
		require.Equal(t, comp, got)
	}
}

// hasPath, cluster membership, and clusterSize must always agree with a
// BFS oracle computed directly over the same edge set.
func TestProperty_RandomGraphMatchesOracle(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 7, 42} {
		g, m := buildRandomMirror(t, 24, 0.12, seed)
		assertHasPathMatchesOracle(t, g, m)
		assertClustersMatchOracle(t, g, m)
	}
}

// Deleting edges one at a time, in random order, keeps hdt's
// connectivity answers consistent with the oracle recomputed over the
// shrinking edge set at every step, whether or not the deletion happens to
// disconnect anything.
func TestProperty_DeletionSequenceMatchesOracle(t *testing.T) {
	g, m := buildRandomMirror(t, 20, 0.18, 99)

	ids := make([]string, 0, len(m.edges))
	for id := range m.edges {
		ids = append(ids, id)
	}
	r := rand.New(rand.NewSource(99))
	r.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	for _, id := range ids {
		eb := g.Edges()
		for _, e := range eb {
			if e.ID == id {
				require.NoError(t, g.RemoveEdge(id))
				break
			}
		}
		m.deleteEdge(g, id)
		assertHasPathMatchesOracle(t, g, m)
	}
	assertClustersMatchOracle(t, g, m)
}

// A node with no edges is always its own singleton cluster.
func TestProperty_IsolatedNodeIsSingletonCluster(t *testing.T) {
	g := hdt.NewGraph()
	n := node("lonely")
	require.Equal(t, 1, g.ClusterSize(n))
	require.True(t, g.IsClusterRep(n))
}

// Repeatedly deleting and recreating the same logical edge between two
// nodes leaves connectivity exactly as if the edge had never been touched.
func TestProperty_DeleteThenRecreateIsIdempotent(t *testing.T) {
	g := hdt.NewGraph()
	a, b, c := node("a"), node("b"), node("c")
	ab := edge("ab")
	bc := edge("bc")
	g.CreateEdge(a, b, ab)
	g.CreateEdge(b, c, bc)

	for i := 0; i < 3; i++ {
		disconnected := g.DeleteEdge(ab)
		require.True(t, disconnected)
		require.False(t, g.HasPath(a, b))

		ab = edge("ab")
		g.CreateEdge(a, b, ab)
		require.True(t, g.HasPath(a, b))
		require.Equal(t, 3, g.ClusterSize(a))
	}
}

// findClusterRep is a fixed point - applying it to its own result
// returns the same node again.
func TestProperty_FindClusterRepIsIdempotent(t *testing.T) {
	_, m := buildRandomMirror(t, 15, 0.2, 5)
	for id, n := range m.nodes {
		rep := m.hg.FindClusterRep(n)
		require.Equal(t, rep, m.hg.FindClusterRep(rep), "vertex %s", id)
		require.True(t, m.hg.IsClusterRep(rep))
	}
}
