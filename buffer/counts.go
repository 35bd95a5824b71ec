package buffer

import "strings"

// CharacterCount returns the number of runes in the document.
func (b *Buffer) CharacterCount() int { return b.Len() }

// WordCount returns the number of whitespace-delimited tokens, 0 for a blank
// document.
func (b *Buffer) WordCount() int {
	return len(strings.Fields(b.Text()))
}
