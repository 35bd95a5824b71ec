package buffer

import "unicode"

// InsertText inserts s at the caret and leaves the caret after it.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		return
	}
	change := b.beginChange(ChangeSourceLocal)
	at := b.Cursor()
	applied, changed := b.splice(at, at, []rune(s))
	if !changed {
		return
	}
	b.caret = b.PosFromOffset(at + len([]rune(s)))
	b.version++
	change.addAppliedEdit(applied)
	b.commitChange(change)
}

// InsertNewline inserts a line break at the caret.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	at := b.Cursor()
	if at == 0 {
		return
	}
	b.Apply(ChangeSourceLocal, TextEdit{Start: at - 1, End: at})
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	at := b.Cursor()
	if at >= b.Len() {
		return
	}
	b.Apply(ChangeSourceLocal, TextEdit{Start: at, End: at + 1})
}

// Apply applies a sequence of text edits in order as one change. Each edit's
// range is interpreted against the buffer state at the time that edit is
// applied, and is clamped into the document.
//
// The caret is re-anchored after every edit: a caret after the edited range
// shifts by the length delta, a caret inside a deleted range moves to its start.
// Apply reports whether anything changed.
func (b *Buffer) Apply(source ChangeSource, edits ...TextEdit) bool {
	if len(edits) == 0 {
		return false
	}

	change := b.beginChange(source)
	anyChanged := false
	for _, e := range edits {
		applied, changed := b.splice(e.Start, e.End, []rune(e.Text))
		if !changed {
			continue
		}
		anyChanged = true
		change.addAppliedEdit(applied)
	}
	if !anyChanged {
		return false
	}

	b.version++
	b.commitChange(change)
	return true
}

// Clear empties the document. Every node is discarded, so all word identities
// are gone afterwards.
func (b *Buffer) Clear() {
	if len(b.root.children) == 0 {
		return
	}
	change := b.beginChange(ChangeSourceLocal)
	deleted := b.Text()
	b.setItems(nil)
	b.caret = Pos{Node: b.root.id}
	b.version++
	change.addAppliedEdit(AppliedEdit{Start: 0, End: len([]rune(deleted)), DeletedText: deleted})
	b.commitChange(change)
}

// splice replaces [start, end) with ins and re-anchors the caret. It does not
// bump the version.
func (b *Buffer) splice(start, end int, ins []rune) (AppliedEdit, bool) {
	total := b.Len()
	start = clampOffset(start, total)
	end = clampOffset(end, total)
	if end < start {
		start, end = end, start
	}
	if start == end && len(ins) == 0 {
		return AppliedEdit{}, false
	}

	cur := b.Cursor()
	deleted := b.deleteRange(start, end)
	b.insertRunes(start, ins)
	b.pruneEmpty()

	switch {
	case cur >= end && cur > start:
		cur += len(ins) - (end - start)
	case cur > start:
		cur = start
	}
	b.caret = b.PosFromOffset(cur)

	return AppliedEdit{
		Start:       start,
		End:         end,
		InsertText:  string(ins),
		DeletedText: string(deleted),
	}, true
}

// deleteRange removes [start, end) from the top-level items. Items fully
// covered by the range are dropped with their identity; partially covered
// items keep theirs.
func (b *Buffer) deleteRange(start, end int) []rune {
	if start == end {
		return nil
	}

	var deleted []rune
	items := make([]*node, 0, len(b.root.children))
	acc := 0
	for _, it := range b.root.children {
		rs := itemRunes(it)
		s, e := acc, acc+len(rs)
		acc = e
		if e <= start || s >= end {
			items = append(items, it)
			continue
		}

		lo := maxInt(start, s) - s
		hi := minInt(end, e) - s
		deleted = append(deleted, rs[lo:hi]...)
		if lo == 0 && hi == len(rs) {
			continue
		}
		b.setItemRunes(it, concatRunes(rs[:lo], rs[hi:]))
		items = append(items, it)
	}
	b.setItems(items)
	return deleted
}

// insertRunes inserts ins at the linear offset at.
//
// Text strictly inside an item joins that item. On a boundary the text joins
// an adjacent untagged leaf when there is one; otherwise it extends the word
// on its left unless it starts with whitespace, and falls back to a new
// untagged leaf. Typing at the end of a word therefore keeps the word's
// identity, while text after a separator starts a new run.
//
// A word never holds whitespace: when the text reaching into a word contains
// any, the word keeps what precedes the first whitespace rune and the rest
// moves to an untagged leaf after it.
func (b *Buffer) insertRunes(at int, ins []rune) {
	if len(ins) == 0 {
		return
	}

	items := b.root.children
	idx := 0
	acc := 0
	for i, it := range items {
		rs := itemRunes(it)
		s, e := acc, acc+len(rs)
		if at > s && at < e {
			if it.kind == NodeWord {
				b.extendWord(i, concatRunes(rs[:at-s], ins), rs[at-s:])
				return
			}
			b.setItemRunes(it, concatRunes(rs[:at-s], ins, rs[at-s:]))
			return
		}
		if e <= at {
			idx = i + 1
		}
		acc = e
	}

	var left, right *node
	if idx > 0 {
		left = items[idx-1]
	}
	if idx < len(items) {
		right = items[idx]
	}

	switch {
	case left != nil && left.kind == NodeText:
		left.text = concatRunes(left.text, ins)
	case right != nil && right.kind == NodeText:
		right.text = concatRunes(ins, right.text)
	case left != nil && left.kind == NodeWord && !unicode.IsSpace(ins[0]):
		b.extendWord(idx-1, concatRunes(itemRunes(left), ins), nil)
	default:
		out := make([]*node, 0, len(items)+1)
		out = append(out, items[:idx]...)
		out = append(out, b.newText(ins))
		out = append(out, items[idx:]...)
		b.setItems(out)
	}
}

// extendWord sets the word at items[i] to head followed by tail. Everything
// from the first whitespace rune of head on moves, together with tail, into
// an untagged leaf right after the word, merging with a following untagged
// leaf.
func (b *Buffer) extendWord(i int, head, tail []rune) {
	items := b.root.children
	word := items[i]

	cut := len(head)
	for j, r := range head {
		if unicode.IsSpace(r) {
			cut = j
			break
		}
	}
	if cut == len(head) {
		b.setItemRunes(word, concatRunes(head, tail))
		return
	}

	b.setItemRunes(word, head[:cut])
	rest := concatRunes(head[cut:], tail)
	if i+1 < len(items) && items[i+1].kind == NodeText {
		items[i+1].text = concatRunes(rest, items[i+1].text)
		return
	}
	out := make([]*node, 0, len(items)+1)
	out = append(out, items[:i+1]...)
	out = append(out, b.newText(rest))
	out = append(out, items[i+1:]...)
	b.setItems(out)
}

func (b *Buffer) pruneEmpty() {
	items := b.root.children[:0]
	for _, it := range b.root.children {
		if runeLen(it) == 0 {
			continue
		}
		items = append(items, it)
	}
	b.setItems(items)
}
