// SPDX-License-Identifier: MIT
// File: index.go
// Role: WordIndex construction and lookups.
// Determinism:
//   - Indices follow first-occurrence order; Words() returns them in index order.

package core

import "fmt"

// NewWordIndex returns an empty index with room for capacity words.
func NewWordIndex(capacity int) *WordIndex {
	if capacity < 0 {
		capacity = 0
	}
	return &WordIndex{
		byWord:  make(map[string]int, capacity),
		byIndex: make([]string, 0, capacity),
	}
}

// Add registers word if it is new and returns its index.
// The second result reports whether the word was newly added.
//
// Complexity: O(1) amortized.
func (x *WordIndex) Add(word string) (int, bool, error) {
	if word == "" {
		return 0, false, ErrEmptyWord
	}
	if i, ok := x.byWord[word]; ok {
		return i, false, nil
	}
	i := len(x.byIndex)
	x.byWord[word] = i
	x.byIndex = append(x.byIndex, word)
	return i, true, nil
}

// Index returns the index of word, or ErrWordNotFound.
func (x *WordIndex) Index(word string) (int, error) {
	i, ok := x.byWord[word]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrWordNotFound, word)
	}
	return i, nil
}

// Has reports whether word is registered.
func (x *WordIndex) Has(word string) bool {
	_, ok := x.byWord[word]
	return ok
}

// Word returns the word at index i. Panics if i is out of range.
func (x *WordIndex) Word(i int) string {
	if i < 0 || i >= len(x.byIndex) {
		panic(fmt.Sprintf("core: word index %d out of range [0,%d)", i, len(x.byIndex)))
	}
	return x.byIndex[i]
}

// Words maps a slice of indices to their words.
func (x *WordIndex) Words(indices []int) []string {
	out := make([]string, len(indices))
	for k, i := range indices {
		out[k] = x.Word(i)
	}
	return out
}

// Len returns the number of distinct words N.
func (x *WordIndex) Len() int {
	return len(x.byIndex)
}

// All returns a copy of every word in index order.
func (x *WordIndex) All() []string {
	out := make([]string, len(x.byIndex))
	copy(out, x.byIndex)
	return out
}
