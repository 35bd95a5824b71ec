package buffer

import "unicode"

type node struct {
	id       NodeID
	kind     NodeKind
	text     []rune // NodeText only
	parent   *node
	children []*node
}

func (b *Buffer) newNode(kind NodeKind) *node {
	b.nextID++
	return &node{id: b.nextID, kind: kind}
}

func (b *Buffer) newText(rs []rune) *node {
	n := b.newNode(NodeText)
	n.text = rs
	return n
}

func (b *Buffer) newWord(rs []rune) *node {
	w := b.newNode(NodeWord)
	leaf := b.newText(rs)
	leaf.parent = w
	w.children = []*node{leaf}
	return w
}

func (b *Buffer) setItems(items []*node) {
	for _, it := range items {
		it.parent = b.root
	}
	b.root.children = items
}

// walkLeaves visits text leaves depth-first, left to right, until fn returns false.
func walkLeaves(n *node, fn func(*node) bool) bool {
	if n.kind == NodeText {
		return fn(n)
	}
	for _, c := range n.children {
		if !walkLeaves(c, fn) {
			return false
		}
	}
	return true
}

func runeLen(n *node) int {
	total := 0
	walkLeaves(n, func(l *node) bool {
		total += len(l.text)
		return true
	})
	return total
}

// itemRunes returns a copy of the runes under n.
func itemRunes(n *node) []rune {
	if n.kind == NodeText {
		return append([]rune(nil), n.text...)
	}
	var out []rune
	walkLeaves(n, func(l *node) bool {
		out = append(out, l.text...)
		return true
	})
	return out
}

// setItemRunes stores rs in the first leaf of n and drops any other leaves.
func (b *Buffer) setItemRunes(n *node, rs []rune) {
	if n.kind == NodeText {
		n.text = rs
		return
	}
	var leaf *node
	walkLeaves(n, func(l *node) bool {
		leaf = l
		return false
	})
	if leaf == nil {
		leaf = b.newText(nil)
	}
	leaf.text = rs
	leaf.parent = n
	n.children = []*node{leaf}
}

func isSpaceRunes(rs []rune) bool {
	if len(rs) == 0 {
		return false
	}
	for _, r := range rs {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// splitKeepSpace splits rs into alternating runs of whitespace and
// non-whitespace, keeping both.
func splitKeepSpace(rs []rune) [][]rune {
	var out [][]rune
	start := 0
	for i := 1; i <= len(rs); i++ {
		if i == len(rs) || unicode.IsSpace(rs[i]) != unicode.IsSpace(rs[start]) {
			out = append(out, rs[start:i:i])
			start = i
		}
	}
	return out
}

func concatRunes(parts ...[]rune) []rune {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]rune, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
