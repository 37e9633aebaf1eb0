// SPDX-License-Identifier: MIT
// File: errors.go
// Role: Sentinel errors re-exported from the algorithm packages.

package wordgraph

import (
	"github.com/katalvlaran/wordgraph/bfs"
	"github.com/katalvlaran/wordgraph/core"
)

// Query outcomes callers are expected to handle. Both alias the sentinels
// of the underlying packages, so errors.Is matches either name.
var (
	// ErrNotFound reports a word that never appeared in the corpus.
	ErrNotFound = core.ErrWordNotFound

	// ErrUnreachable reports two known words with no directed path between them.
	ErrUnreachable = bfs.ErrUnreachable
)
