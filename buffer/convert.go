package buffer

// PosFromOffset translates a linear rune offset into a tree position.
//
// off is clamped into [0, Len()]. An offset on a leaf boundary binds to the
// end of the left leaf. The empty document maps to the root.
func (b *Buffer) PosFromOffset(off int) Pos {
	off = clampOffset(off, b.Len())

	acc := 0
	out := Pos{Node: b.root.id}
	walkLeaves(b.root, func(l *node) bool {
		next := acc + len(l.text)
		if next >= off {
			out = Pos{Node: l.id, Offset: off - acc}
			return false
		}
		acc = next
		return true
	})
	return out
}

// OffsetFromPos translates a tree position into a linear rune offset.
//
// p.Offset is clamped to the addressed node. A position whose node no longer
// exists clamps to Len(): the document may have shrunk since p was captured.
func (b *Buffer) OffsetFromPos(p Pos) int {
	if p.Node == b.root.id {
		return clampOffset(p.Offset, b.Len())
	}

	acc := 0
	res := -1
	var visit func(n *node) bool
	visit = func(n *node) bool {
		if n.id == p.Node {
			res = acc + clampInt(p.Offset, 0, runeLen(n))
			return false
		}
		if n.kind == NodeText {
			acc += len(n.text)
			return true
		}
		for _, c := range n.children {
			if !visit(c) {
				return false
			}
		}
		return true
	}
	for _, c := range b.root.children {
		if !visit(c) {
			break
		}
	}
	if res < 0 {
		return acc
	}
	return res
}

// LineCol returns the 0-based line and rune column of a linear offset.
func (b *Buffer) LineCol(off int) (line, col int) {
	return lineColIn(b.Runes(), off)
}

func lineColIn(rs []rune, off int) (line, col int) {
	off = clampOffset(off, len(rs))
	for i := 0; i < off; i++ {
		if rs[i] == '\n' {
			line++
			col = 0
			continue
		}
		col++
	}
	return line, col
}

func clampOffset(off, max int) int {
	return clampInt(off, 0, max)
}
