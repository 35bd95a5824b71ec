package buffer

import "strings"

// Buffer is the document state of one session: the segment tree and the caret.
type Buffer struct {
	root   *node
	nextID NodeID

	caret   Pos
	version uint64

	lastChange    Change
	hasLastChange bool
}

// New returns a buffer holding text as a single untagged leaf, with the caret
// at the start.
func New(text string) *Buffer {
	b := &Buffer{}
	b.root = b.newNode(NodeRoot)
	if text != "" {
		b.setItems([]*node{b.newText([]rune(text))})
	}
	b.caret = b.PosFromOffset(0)
	return b
}

// Root returns the ID of the root node.
func (b *Buffer) Root() NodeID { return b.root.id }

func (b *Buffer) Text() string {
	var sb strings.Builder
	walkLeaves(b.root, func(l *node) bool {
		sb.WriteString(string(l.text))
		return true
	})
	return sb.String()
}

// Runes returns a copy of the document runes.
func (b *Buffer) Runes() []rune { return itemRunes(b.root) }

// Len returns the document length in runes.
func (b *Buffer) Len() int { return runeLen(b.root) }

func (b *Buffer) Version() uint64 { return b.version }

// Cursor returns the caret as a linear rune offset.
func (b *Buffer) Cursor() int { return b.OffsetFromPos(b.caret) }

// SetCursor moves the caret to the linear offset off, clamped to the document.
func (b *Buffer) SetCursor(off int) {
	next := b.PosFromOffset(off)
	if next == b.caret {
		return
	}
	b.caret = next
	b.version++
}

// Caret returns the caret as a tree position.
func (b *Buffer) Caret() Pos { return b.caret }

// SetCaret moves the caret to p. Stale or out-of-range positions are clamped.
func (b *Buffer) SetCaret(p Pos) {
	b.SetCursor(b.OffsetFromPos(p))
}

// Spans returns the top-level items of the tree in document order.
func (b *Buffer) Spans() []Span {
	out := make([]Span, 0, len(b.root.children))
	acc := 0
	for _, it := range b.root.children {
		rs := itemRunes(it)
		sp := Span{Text: string(rs), Start: acc}
		if it.kind == NodeWord {
			sp.Word = it.id
		}
		out = append(out, sp)
		acc += len(rs)
	}
	return out
}

// Segments returns the tagged words in document order.
func (b *Buffer) Segments() []Segment {
	var out []Segment
	for _, sp := range b.Spans() {
		if sp.Word == 0 {
			continue
		}
		out = append(out, Segment{ID: sp.Word, Text: sp.Text, Start: sp.Start})
	}
	return out
}

// Kind reports the kind of the node with the given ID, or false if no such
// node is part of the tree.
func (b *Buffer) Kind(id NodeID) (NodeKind, bool) {
	n := b.find(id)
	if n == nil {
		return 0, false
	}
	return n.kind, true
}

func (b *Buffer) find(id NodeID) *node {
	var found *node
	var visit func(n *node) bool
	visit = func(n *node) bool {
		if n.id == id {
			found = n
			return false
		}
		for _, c := range n.children {
			if !visit(c) {
				return false
			}
		}
		return true
	}
	visit(b.root)
	return found
}
