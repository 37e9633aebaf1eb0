// SPDX-License-Identifier: MIT
// File: types.go
// Role: Sentinel errors, EdgeState, WordIndex and Graph declarations.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core word-graph operations.
var (
	// ErrWordNotFound indicates a queried word is not part of the corpus.
	ErrWordNotFound = errors.New("core: word not found")

	// ErrEmptyWord indicates an empty string was offered as a word.
	ErrEmptyWord = errors.New("core: word is empty")
)

// EdgeState is the value stored in one adjacency cell.
type EdgeState uint8

const (
	// EdgeAbsent marks a pair of words that never appear adjacent.
	EdgeAbsent EdgeState = iota

	// EdgePresent marks an edge from the row word to the column word.
	EdgePresent

	// EdgeTombstone marks a present edge that an in-flight walk already used.
	EdgeTombstone
)

// String implements fmt.Stringer.
func (s EdgeState) String() string {
	switch s {
	case EdgeAbsent:
		return "absent"
	case EdgePresent:
		return "present"
	case EdgeTombstone:
		return "tombstone"
	default:
		return fmt.Sprintf("EdgeState(%d)", uint8(s))
	}
}

// WordIndex is a bijection between distinct words and dense indices [0,N).
// Indices are assigned in first-occurrence order and never change.
type WordIndex struct {
	byWord  map[string]int // word → index
	byIndex []string       // index → word
}

// Graph is a directed, unweighted adjacency matrix over word indices.
//
// cells is row-major: cells[from*n+to].
type Graph struct {
	n     int
	cells []EdgeState
}
