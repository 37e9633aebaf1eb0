package augment_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/augment"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/tokenizer"
	"github.com/katalvlaran/wordgraph/walk"
)

// fixed always returns the same draw, clamped to n-1.
type fixed int

func (f fixed) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

// counting records how often it was asked for a draw.
type counting struct{ calls int }

func (c *counting) Intn(int) int {
	c.calls++
	return 0
}

func build(t *testing.T, lines ...string) (*core.WordIndex, *core.Graph) {
	t.Helper()
	idx, g, err := core.Build(tokenizer.Tokenize(lines...))
	require.NoError(t, err)
	return idx, g
}

func TestAugment_InsertsBridge(t *testing.T) {
	idx, g := build(t, "Better late than never")
	got := augment.Augment(g, idx, "Better than never", fixed(0))
	require.Equal(t, "Better late than never", got)
}

func TestAugment_ChoosesAmongBridges(t *testing.T) {
	// seek → a → new, seek → b → new
	idx, g := build(t, "seek a new", "seek b new")
	require.Equal(t, "seek a new", augment.Augment(g, idx, "seek new", fixed(0)))
	require.Equal(t, "seek b new", augment.Augment(g, idx, "seek new", fixed(1)))
}

func TestAugment_EveryPair(t *testing.T) {
	idx, g := build(t, "a x b y c")
	require.Equal(t, "a x b y c", augment.Augment(g, idx, "a b c", fixed(0)))
}

func TestAugment_Unchanged(t *testing.T) {
	idx, g := build(t, "Better late than never")
	cases := []struct {
		name   string
		phrase string
	}{
		{"empty", ""},
		{"single token", "Better"},
		{"single unknown token", "monkey"},
		{"unknown words", "monkey eats pig"},
		{"no bridge", "never late"},
		{"leading and trailing spaces", " Better  late "},
		{"punctuation kept", "Better, than!"},
		{"tab is not a separator", "Better\tthan"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := &counting{}
			require.Equal(t, tc.phrase, augment.Augment(g, idx, tc.phrase, src))
			require.Zero(t, src.calls)
		})
	}
}

func TestAugment_MixedKnownAndUnknown(t *testing.T) {
	idx, g := build(t, "Better late than never")
	got := augment.Augment(g, idx, "ghost Better than never", fixed(0))
	require.Equal(t, "ghost Better late than never", got)
}

func TestAugment_SelfLoopBridge(t *testing.T) {
	// a→a and a→b make "a" a bridge from a to b
	idx, g := build(t, "a a b")
	require.Equal(t, "a a b", augment.Augment(g, idx, "a b", fixed(0)))
}

func TestAugment_DoesNotMutateGraph(t *testing.T) {
	idx, g := build(t, "seek a new", "seek b new")
	before := g.Clone()
	for seed := int64(1); seed < 20; seed++ {
		out := augment.Augment(g, idx, "seek new life", walk.NewSource(seed))
		require.Contains(t, []string{"seek a new life", "seek b new life"}, out)
	}
	require.True(t, before.Equal(g))
}
