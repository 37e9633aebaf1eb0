// SPDX-License-Identifier: MIT
// File: present.go
// Role: User-facing messages for query results.

// Package present turns engine query results into the messages shown to
// CLI users.
package present

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/wordgraph"
)

// pathArrow joins the words of a shortest path.
const pathArrow = "->"

// bridgeSep joins the words of a bridge listing.
const bridgeSep = ", "

// Bridges describes the outcome of a bridge-word query.
func Bridges(word1, word2 string, bridges []string, err error) string {
	switch {
	case errors.Is(err, wordgraph.ErrNotFound):
		return missing(word1, word2)
	case err != nil:
		return fmt.Sprintf("Error: %v", err)
	case len(bridges) == 0:
		return fmt.Sprintf("No bridge words from %s to %s!", word1, word2)
	default:
		return fmt.Sprintf("The bridge words from %s to %s are: %s",
			word1, word2, strings.Join(bridges, bridgeSep))
	}
}

// Path describes the outcome of a shortest-path query.
func Path(word1, word2 string, path []string, err error) string {
	switch {
	case errors.Is(err, wordgraph.ErrNotFound):
		return missing(word1, word2)
	case errors.Is(err, wordgraph.ErrUnreachable):
		return fmt.Sprintf("%s is unreachable from %s!", word2, word1)
	case err != nil:
		return fmt.Sprintf("Error: %v", err)
	default:
		return strings.Join(path, pathArrow)
	}
}

// Walk renders the words of a random walk separated by spaces.
func Walk(words []string) string {
	if len(words) == 0 {
		return "The graph is empty!"
	}
	return strings.Join(words, " ")
}

func missing(word1, word2 string) string {
	return fmt.Sprintf("No %s or %s in the graph!", word1, word2)
}
