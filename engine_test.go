package wordgraph_test

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph"
	"github.com/katalvlaran/wordgraph/tokenizer"
)

func newEngine(t *testing.T, lines ...string) *wordgraph.Engine {
	t.Helper()
	eng, err := wordgraph.FromText(slices.Values(lines), wordgraph.WithSeed(1))
	require.NoError(t, err)
	return eng
}

func TestEngine_BetterLateThanNever(t *testing.T) {
	eng := newEngine(t, "Better late than never")
	require.Equal(t, 4, eng.Len())
	require.Equal(t, 3, eng.EdgeCount())
	require.Equal(t, []string{"Better", "late", "than", "never"}, eng.Words())

	got, err := eng.Bridges("Better", "than")
	require.NoError(t, err)
	require.Equal(t, []string{"late"}, got)

	got, err = eng.Bridges("Better", "never")
	require.NoError(t, err)
	require.Empty(t, got)

	path, err := eng.ShortestPath("Better", "never")
	require.NoError(t, err)
	require.Equal(t, []string{"Better", "late", "than", "never"}, path)
}

func TestEngine_ToBeOrNotToBe(t *testing.T) {
	eng := newEngine(t, "To be or not to be")
	require.Equal(t, []string{"To", "be", "or", "not", "to"}, eng.Words())
	require.Equal(t, 5, eng.EdgeCount())
	require.True(t, eng.Has("To"))
	require.True(t, eng.Has("to"))
	require.False(t, eng.Has("TO"))

	path, err := eng.ShortestPath("to", "To")
	require.ErrorIs(t, err, wordgraph.ErrUnreachable)
	require.Nil(t, path)

	path, err = eng.ShortestPath("To", "to")
	require.NoError(t, err)
	require.Equal(t, []string{"To", "be", "or", "not", "to"}, path)
}

func TestEngine_NotFound(t *testing.T) {
	eng := newEngine(t, "Better late than never")

	_, err := eng.Bridges("monkey", "pig")
	require.ErrorIs(t, err, wordgraph.ErrNotFound)
	_, err = eng.Bridges("Better", "pig")
	require.ErrorIs(t, err, wordgraph.ErrNotFound)

	_, err = eng.ShortestPath("monkey", "never")
	require.ErrorIs(t, err, wordgraph.ErrNotFound)
	_, err = eng.ShortestPath("Better", "pig")
	require.ErrorIs(t, err, wordgraph.ErrNotFound)
	require.NotErrorIs(t, err, wordgraph.ErrUnreachable)
}

func TestEngine_ShortestPathSelf(t *testing.T) {
	eng := newEngine(t, "Better late than never")
	for _, w := range eng.Words() {
		path, err := eng.ShortestPath(w, w)
		require.NoError(t, err)
		require.Equal(t, []string{w}, path)
	}
}

func TestEngine_RandomWalkRestoresGraph(t *testing.T) {
	eng := newEngine(t,
		"the cat sat on the mat",
		"the mat was on the cat and the cat sat",
	)
	before := eng.Snapshot()
	for i := 0; i < 100; i++ {
		path := eng.RandomWalk()
		require.NotEmpty(t, path)
		require.True(t, before.Equal(eng.Snapshot()))
	}
}

func TestEngine_EmptyCorpus(t *testing.T) {
	eng := newEngine(t, "", "123 !!!")
	require.Zero(t, eng.Len())
	require.Empty(t, eng.RandomWalk())
	require.Equal(t, "hello world", eng.Augment("hello world"))
	require.Empty(t, eng.Render())
}

func TestEngine_Augment(t *testing.T) {
	eng := newEngine(t, "Better late than never")
	require.Equal(t, "Better late than never", eng.Augment("Better than never"))
	require.Equal(t, "Better", eng.Augment("Better"))
	require.Equal(t, "", eng.Augment(""))
}

func TestEngine_Render(t *testing.T) {
	eng := newEngine(t, "a b", "b a c")
	// the corpus spans lines, so "b" ending line one links to "b" starting line two
	want := "a -> b, c\nb -> a, b\nc ->\n"
	require.Equal(t, want, eng.Render())

	var buf bytes.Buffer
	require.NoError(t, eng.RenderTo(&buf))
	require.Equal(t, want, buf.String())
}

func TestBuild_Errors(t *testing.T) {
	_, err := wordgraph.Build([]string{"ok", ""})
	require.Error(t, err)

	eng, err := wordgraph.Build(tokenizer.Tokenize("x y"))
	require.NoError(t, err)
	require.Equal(t, 2, eng.Len())
}

func TestOptions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tk := tokenizer.New(tokenizer.WithSeparator(func(r rune) bool { return r == '/' }))

	eng, err := wordgraph.FromText(slices.Values([]string{"a/b/c"}),
		wordgraph.WithLogger(logger),
		wordgraph.WithTokenizer(tk),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, eng.Words())
	require.Contains(t, buf.String(), "graph built")

	_, _ = eng.Bridges("a", "c")
	require.Contains(t, buf.String(), "msg=bridges")

	require.Panics(t, func() { wordgraph.WithLogger(nil) })
	require.Panics(t, func() { wordgraph.WithSource(nil) })
	require.Panics(t, func() { wordgraph.WithTokenizer(nil) })
}

// TestEngine_Concurrent mixes walks with read queries; the graph must come
// out untouched and every query must keep answering consistently.
func TestEngine_Concurrent(t *testing.T) {
	corpus := strings.Repeat("alpha beta gamma alpha delta beta ", 20)
	eng := newEngine(t, corpus)
	before := eng.Snapshot()

	var wg sync.WaitGroup
	const workers = 8
	errs := make(chan error, workers*50)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				switch (id + i) % 4 {
				case 0:
					_ = eng.RandomWalk()
				case 1:
					if _, err := eng.Bridges("alpha", "gamma"); err != nil {
						errs <- err
					}
				case 2:
					if _, err := eng.ShortestPath("alpha", "delta"); err != nil {
						errs <- err
					}
				default:
					_ = eng.Augment("alpha gamma")
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	require.True(t, before.Equal(eng.Snapshot()))
}
