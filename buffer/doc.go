// Package buffer implements the document model for mischief: a segment tree
// of plain text leaves and tagged word wrappers, plus a caret.
//
// Linear offsets count runes in document order. A Pos addresses a rune offset
// inside one tree node and is translated to and from linear offsets on demand;
// nodes never store offsets. Offsets outside the document are clamped, never
// rejected.
package buffer
