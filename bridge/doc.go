// Package bridge finds bridge words: the single-hop intermediaries between
// two words of a core.Graph.
//
// A word w bridges word1 to word2 when both edges word1→w and w→word2 are
// present. Candidates are scanned in ascending index order, so results come
// back in first-occurrence order of the corpus.
//
// Errors
//
//   - core.ErrWordNotFound if either word is absent from the index.
//
// A known pair with no bridge is not an error: Find returns an empty,
// non-nil slice.
//
// Complexity: O(N) per query.
package bridge
