// Package augment rewrites a phrase by splicing a bridge word between every
// adjacent pair of its words that has one.
//
// The phrase is split on the single ASCII space only. Unlike the corpus
// tokenizer it keeps punctuation and digits, and consecutive spaces produce
// empty tokens. Tokens are rejoined with single spaces, so a phrase without
// any eligible pair comes back unchanged.
//
// A pair containing a word unknown to the corpus simply gets no insertion;
// core.ErrWordNotFound is never returned from this package.
package augment
