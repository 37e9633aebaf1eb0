package present_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wordgraph"
	"github.com/katalvlaran/wordgraph/internal/present"
)

func TestBridges(t *testing.T) {
	notFound := fmt.Errorf("wrapped: %w", wordgraph.ErrNotFound)
	assert.Equal(t, "No monkey or pig in the graph!", present.Bridges("monkey", "pig", nil, notFound))
	assert.Equal(t, "No bridge words from help to us!", present.Bridges("help", "us", []string{}, nil))
	assert.Equal(t, "The bridge words from Better to than are: late", present.Bridges("Better", "than", []string{"late"}, nil))
	assert.Equal(t, "The bridge words from a to b are: x, y, z", present.Bridges("a", "b", []string{"x", "y", "z"}, nil))
	assert.Equal(t, "The bridge words from a to b are: x, y", present.Bridges("a", "b", []string{"x", "y"}, nil))
	assert.Equal(t, "Error: boom", present.Bridges("a", "b", nil, errors.New("boom")))
}

func TestPath(t *testing.T) {
	assert.Equal(t, "Better->late->than->never",
		present.Path("Better", "never", []string{"Better", "late", "than", "never"}, nil))
	assert.Equal(t, "solo", present.Path("solo", "solo", []string{"solo"}, nil))
	assert.Equal(t, "No x or y in the graph!", present.Path("x", "y", nil, wordgraph.ErrNotFound))
	assert.Equal(t, "Better is unreachable from never!",
		present.Path("never", "Better", nil, fmt.Errorf("q: %w", wordgraph.ErrUnreachable)))
	assert.Equal(t, "Error: boom", present.Path("a", "b", nil, errors.New("boom")))
}

func TestWalk(t *testing.T) {
	assert.Equal(t, "a b a", present.Walk([]string{"a", "b", "a"}))
	assert.Equal(t, "The graph is empty!", present.Walk(nil))
}
