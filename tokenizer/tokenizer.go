// SPDX-License-Identifier: MIT
// File: tokenizer.go
// Role: Rune-level word splitting with configurable letter/separator predicates.

package tokenizer

import (
	"iter"
	"strings"
)

// fullWidthComma is U+FF0C, the comma used in CJK text.
const fullWidthComma = '，'

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// Tokenizer classifies runes into letters, separators and hard breaks.
// The zero value is not usable; construct with New.
type Tokenizer struct {
	isLetter    func(r rune) bool
	isSeparator func(r rune) bool
}

// IsASCIILetter reports whether r is in a–z or A–Z.
func IsASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsDefaultSeparator reports whether r is one of the default separators:
// space, comma, full-width comma, semicolon or colon.
func IsDefaultSeparator(r rune) bool {
	switch r {
	case ' ', ',', fullWidthComma, ';', ':':
		return true
	}
	return false
}

// WithLetter replaces the letter predicate. Panics on nil.
func WithLetter(fn func(r rune) bool) Option {
	if fn == nil {
		panic("tokenizer: WithLetter(nil)")
	}
	return func(t *Tokenizer) {
		t.isLetter = fn
	}
}

// WithSeparator replaces the separator predicate. Panics on nil.
func WithSeparator(fn func(r rune) bool) Option {
	if fn == nil {
		panic("tokenizer: WithSeparator(nil)")
	}
	return func(t *Tokenizer) {
		t.isSeparator = fn
	}
}

// New returns a Tokenizer with ASCII letters and the default separators,
// adjusted by opts.
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{
		isLetter:    IsASCIILetter,
		isSeparator: IsDefaultSeparator,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Words yields the words of a single line in order.
// The separator check runs before the letter check, so a rune accepted by
// both predicates acts as a separator.
func (t *Tokenizer) Words(line string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var cur strings.Builder
		for _, r := range line {
			switch {
			case t.isSeparator(r):
				if cur.Len() > 0 {
					if !yield(cur.String()) {
						return
					}
				}
				cur.Reset()
			case t.isLetter(r):
				cur.WriteRune(r)
			default:
				// hard break: drop the partial word
				cur.Reset()
			}
		}
		if cur.Len() > 0 {
			yield(cur.String())
		}
	}
}

// Lines yields the words of every line produced by lines, line by line.
func (t *Tokenizer) Lines(lines iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range lines {
			for w := range t.Words(line) {
				if !yield(w) {
					return
				}
			}
		}
	}
}

// Collect drains seq into a slice. The result is never nil.
func Collect(seq iter.Seq[string]) []string {
	out := make([]string, 0, 16)
	for w := range seq {
		out = append(out, w)
	}
	return out
}

// Tokenize splits every line with the default Tokenizer and returns the
// concatenated word sequence.
func Tokenize(lines ...string) []string {
	t := New()
	out := make([]string, 0, len(lines)*8)
	for _, line := range lines {
		for w := range t.Words(line) {
			out = append(out, w)
		}
	}
	return out
}
