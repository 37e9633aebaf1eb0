// SPDX-License-Identifier: MIT
// File: augment.go
// Role: Phrase augmentation by random bridge-word insertion.

package augment

import (
	"errors"
	"strings"

	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/walk"
)

// tokenSep is the only delimiter recognized in an input phrase.
const tokenSep = " "

// Augment returns phrase with one randomly chosen bridge word inserted
// between each adjacent pair of tokens that has at least one bridge.
// src is consulted once per pair that has a bridge, even a single one.
func Augment(g *core.Graph, idx *core.WordIndex, phrase string, src walk.Source) string {
	tokens := strings.Split(phrase, tokenSep)
	if len(tokens) < 2 {
		return phrase
	}

	out := make([]string, 0, 2*len(tokens)-1)
	for i := 0; i < len(tokens)-1; i++ {
		out = append(out, tokens[i])
		if w, ok := pickBridge(g, idx, tokens[i], tokens[i+1], src); ok {
			out = append(out, w)
		}
	}
	out = append(out, tokens[len(tokens)-1])
	return strings.Join(out, tokenSep)
}

// pickBridge chooses one bridge from word1 to word2, if any.
func pickBridge(g *core.Graph, idx *core.WordIndex, word1, word2 string, src walk.Source) (string, bool) {
	bridges, err := bridge.Find(g, idx, word1, word2)
	if errors.Is(err, core.ErrWordNotFound) || len(bridges) == 0 {
		return "", false
	}
	return walk.Pick(src, bridges), true
}
