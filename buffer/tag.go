package buffer

// TagWords wraps every maximal non-whitespace run of the untagged text leaves
// in a word node and returns the IDs of the words it created.
//
// Leaves already enclosed by a word are left alone, whatever their content, so
// existing words keep their identity. Whitespace runs stay plain text leaves.
// Content and the caret's linear offset are preserved. A second call without
// intervening edits is a no-op.
func (b *Buffer) TagWords() []NodeID {
	cur := b.Cursor()

	var created []NodeID
	items := make([]*node, 0, len(b.root.children))
	for _, it := range b.root.children {
		if it.kind != NodeText || isSpaceRunes(it.text) {
			items = append(items, it)
			continue
		}
		for _, piece := range splitKeepSpace(it.text) {
			if isSpaceRunes(piece) {
				items = append(items, b.newText(piece))
				continue
			}
			w := b.newWord(piece)
			created = append(created, w.id)
			items = append(items, w)
		}
	}
	if len(created) == 0 {
		return nil
	}

	b.setItems(items)
	b.caret = b.PosFromOffset(cur)
	b.version++
	return created
}
