// SPDX-License-Identifier: MIT
// Package walk - RNG utilities shared by the walker and text augmentation.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a Source across goroutines
//     without external locking.

package walk

import (
	"math/rand"
	"time"
)

// Source yields uniformly distributed integers in [0,n) for n > 0.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a private *rand.Rand stream.
// Policy: seed==0 ⇒ seed from the wall clock, so unseeded walks differ
// between runs; any other seed is used verbatim and is reproducible.
//
// Complexity: O(1).
func NewSource(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

// Pick returns a uniformly chosen element of items. Panics on an empty slice.
func Pick[T any](src Source, items []T) T {
	if len(items) == 0 {
		panic("walk: Pick from empty slice")
	}
	return items[src.Intn(len(items))]
}
