// Package tokenizer turns raw lines of text into the ordered word sequence
// a word graph is built from.
//
// What
//
//   - A word is a maximal run of letter runes (ASCII a–z, A–Z by default).
//   - Separator runes (space, ASCII comma, full-width comma '，', semicolon,
//     colon by default) end the current word and emit it if non-empty.
//   - Any other rune (digits, punctuation, control characters) is a hard
//     break: the partially built word is discarded, nothing is emitted.
//   - The end of a line flushes a pending word. No state carries from one
//     line to the next.
//
// Matching is case-sensitive; "To" and "to" are different words.
//
// Usage
//
//	tk := tokenizer.New()
//	for w := range tk.Words("Better late than never") {
//	    fmt.Println(w)
//	}
//
//	// Whole corpus at once:
//	seq := tokenizer.Tokenize(lines...)
//
// Both predicates can be replaced with WithLetter and WithSeparator.
// Sequences returned by Words and Lines are lazy and can be ranged over
// any number of times.
package tokenizer
