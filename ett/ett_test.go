package ett_test

import (
	"testing"

	"github.com/katalvlaran/dynaconn/ett"
	"github.com/katalvlaran/dynaconn/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(occs []*ett.NodeOcc) []string {
	out := make([]string, len(occs))
	for i, o := range occs {
		out[i] = o.Data.(string)
	}
	return out
}

func enumerateNames(f *ett.Forest, u *ett.NodeOcc) []string {
	var out []string
	for occ := range f.Enumerate(u) {
		out = append(out, occ.Data.(string))
	}
	return out
}

func TestAddNodeIsIsolated(t *testing.T) {
	f := ett.NewForest()
	a := f.AddNode("a")
	b := f.AddNode("b")
	assert.False(t, f.Connected(a, b))
	assert.Equal(t, 1, f.Size(a))
}

func TestLinkConnectsAndSizes(t *testing.T) {
	f := ett.NewForest()
	a := f.AddNode("a")
	b := f.AddNode("b")
	c := f.AddNode("c")

	f.Link(a, b, "ab")
	assert.True(t, f.Connected(a, b))
	assert.False(t, f.Connected(a, c))
	assert.Equal(t, 2, f.Size(a))
	assert.Equal(t, 2, f.Size(b))

	f.Link(b, c, "bc")
	assert.True(t, f.Connected(a, c))
	assert.Equal(t, 3, f.Size(c))
}

func TestCutSplitsTree(t *testing.T) {
	f := ett.NewForest()
	a := f.AddNode("a")
	b := f.AddNode("b")
	c := f.AddNode("c")

	f.Link(a, b, "ab")
	e := f.Link(b, c, "bc")

	f.Cut(e)
	assert.True(t, f.Connected(a, b))
	assert.False(t, f.Connected(b, c))
	assert.Equal(t, 2, f.Size(a))
	assert.Equal(t, 1, f.Size(c))
}

// TestCutInteriorEdgeSplitsTree cuts the FIRST-linked edge of a three-node
// chain, not the last. Its two arc occurrences end up straddling the
// second link's rotation-to-front (they are not simply sitting at the tour
// tail), which is exactly the shape TestCutSplitsTree cannot exercise.
func TestCutInteriorEdgeSplitsTree(t *testing.T) {
	f := ett.NewForest()
	a := f.AddNode("a")
	b := f.AddNode("b")
	c := f.AddNode("c")

	ab := f.Link(a, b, "ab")
	f.Link(b, c, "bc")
	require.True(t, f.Connected(a, c))

	f.Cut(ab)

	assert.False(t, f.Connected(a, b))
	assert.False(t, f.Connected(a, c))
	assert.True(t, f.Connected(b, c))
	assert.Equal(t, 1, f.Size(a))
	assert.Equal(t, 2, f.Size(b))
	assert.Equal(t, 2, f.Size(c))
	assert.ElementsMatch(t, []string{"b", "c"}, enumerateNames(f, b))
}

func TestEnumerateVisitsEveryNode(t *testing.T) {
	f := ett.NewForest()
	a := f.AddNode("a")
	b := f.AddNode("b")
	c := f.AddNode("c")
	f.Link(a, b, "ab")
	f.Link(b, c, "bc")

	got := enumerateNames(f, a)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, got)
}

func TestEnumerateSingleton(t *testing.T) {
	f := ett.NewForest()
	a := f.AddNode("a")
	assert.Equal(t, []string{"a"}, enumerateNames(f, a))
}

func TestFirstIsStableAcrossRelinking(t *testing.T) {
	f := ett.NewForest()
	a := f.AddNode("a")
	b := f.AddNode("b")
	e := f.Link(a, b, "ab")

	rep1 := f.First(a)
	rep2 := f.First(b)
	assert.Equal(t, rep1, rep2)

	f.Cut(e)
	assert.Equal(t, a, f.First(a))
	assert.Equal(t, b, f.First(b))
}

func TestMarksTrackIncidentEdges(t *testing.T) {
	f := ett.NewForest()
	a := f.AddNode("a")
	b := f.AddNode("b")
	f.Link(a, b, "ab")

	_, ok := f.NextMarked(a, seq.MarkTreeEdge)
	require.False(t, ok)

	f.SetMark(b, seq.MarkTreeEdge, true)
	found, ok := f.NextMarked(a, seq.MarkTreeEdge)
	require.True(t, ok)
	assert.Equal(t, b, found)

	f.SetMark(b, seq.MarkTreeEdge, false)
	_, ok = f.NextMarked(a, seq.MarkTreeEdge)
	assert.False(t, ok)
}

func TestEnumeratePanicsOnMutationDuringIteration(t *testing.T) {
	f := ett.NewForest()
	a := f.AddNode("a")
	b := f.AddNode("b")
	c := f.AddNode("c")
	f.Link(a, b, "ab")

	assert.Panics(t, func() {
		for range f.Enumerate(a) {
			f.Link(b, c, "bc")
		}
	})
}
