package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/core"
)

// edgeSet lists every present edge as "from->to" words.
func edgeSet(g *core.Graph, idx *core.WordIndex) []string {
	var out []string
	for i := 0; i < g.N(); i++ {
		for _, j := range g.Neighbors(i) {
			out = append(out, idx.Word(i)+"->"+idx.Word(j))
		}
	}
	return out
}

func TestBuild_BetterLateThanNever(t *testing.T) {
	idx, g, err := core.Build([]string{"Better", "late", "than", "never"})
	require.NoError(t, err)
	require.Equal(t, 4, idx.Len())
	require.Equal(t, []string{"Better->late", "late->than", "than->never"}, edgeSet(g, idx))
}

func TestBuild_CaseSensitive(t *testing.T) {
	idx, g, err := core.Build([]string{"To", "be", "or", "not", "to", "be"})
	require.NoError(t, err)

	// "To" and "to" are separate nodes; "be" is shared.
	require.Equal(t, []string{"To", "be", "or", "not", "to"}, idx.All())
	require.ElementsMatch(t,
		[]string{"To->be", "be->or", "or->not", "not->to", "to->be"},
		edgeSet(g, idx),
	)
	require.Equal(t, 5, g.EdgeCount())
}

func TestBuild_DuplicatePairsCollapse(t *testing.T) {
	idx, g, err := core.Build([]string{"a", "b", "a", "b", "a", "b"})
	require.NoError(t, err)
	require.Equal(t, 2, idx.Len())
	require.Equal(t, []string{"a->b", "b->a"}, edgeSet(g, idx))
}

func TestBuild_SelfLoop(t *testing.T) {
	idx, g, err := core.Build([]string{"a", "a"})
	require.NoError(t, err)
	require.Equal(t, 1, idx.Len())
	require.True(t, g.HasEdge(0, 0))
}

func TestBuild_EmptyAndSingle(t *testing.T) {
	idx, g, err := core.Build(nil)
	require.NoError(t, err)
	require.Zero(t, idx.Len())
	require.Zero(t, g.N())

	idx, g, err = core.Build([]string{"solo"})
	require.NoError(t, err)
	require.Equal(t, 1, idx.Len())
	require.Zero(t, g.EdgeCount())
}

func TestBuild_EmptyWordRejected(t *testing.T) {
	_, _, err := core.Build([]string{"a", ""})
	require.ErrorIs(t, err, core.ErrEmptyWord)
}

func TestBuildGraph_UnknownWordPanics(t *testing.T) {
	idx := core.NewWordIndex(1)
	_, _, _ = idx.Add("known")
	require.Panics(t, func() {
		core.BuildGraph(idx, []string{"known", "stranger"})
	})
}
