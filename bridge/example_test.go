package bridge_test

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/tokenizer"
)

func ExampleFind() {
	seq := tokenizer.Tokenize("Better late than never")
	idx, g, _ := core.Build(seq)

	words, err := bridge.Find(g, idx, "Better", "than")
	fmt.Println(words, err)

	_, err = bridge.Find(g, idx, "Better", "monkey")
	fmt.Println(err)
	// Output:
	// [late] <nil>
	// core: word not found: "monkey"
}
