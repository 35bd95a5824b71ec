package buffer

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	// ChangeSourceLocal marks edits typed by the user.
	ChangeSourceLocal ChangeSource = iota
	// ChangeSourceChaos marks edits drawn at random by the mutation engine.
	ChangeSourceChaos
)

// AppliedEdit describes one effective edit in a change transaction.
// Start and End address the document as it stood when the edit was applied.
type AppliedEdit struct {
	Start       int
	End         int
	InsertText  string
	DeletedText string
}

// Change is a normalized, versioned mutation payload.
type Change struct {
	Source        ChangeSource
	VersionBefore uint64
	VersionAfter  uint64
	CursorBefore  int
	CursorAfter   int
	AppliedEdits  []AppliedEdit
}

type changeBuilder struct {
	source        ChangeSource
	versionBefore uint64
	cursorBefore  int
	appliedEdits  []AppliedEdit
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return cloneChange(b.lastChange), true
}

func cloneChange(in Change) Change {
	out := in
	out.AppliedEdits = append([]AppliedEdit(nil), in.AppliedEdits...)
	return out
}

func (b *Buffer) beginChange(source ChangeSource) changeBuilder {
	return changeBuilder{
		source:        source,
		versionBefore: b.version,
		cursorBefore:  b.Cursor(),
	}
}

func (cb *changeBuilder) addAppliedEdit(edit AppliedEdit) {
	cb.appliedEdits = append(cb.appliedEdits, edit)
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		Source:        cb.source,
		VersionBefore: cb.versionBefore,
		VersionAfter:  b.version,
		CursorBefore:  cb.cursorBefore,
		CursorAfter:   b.Cursor(),
		AppliedEdits:  append([]AppliedEdit(nil), cb.appliedEdits...),
	}
	b.hasLastChange = true
}

// DeletedRunes returns the runes removed by c, in the order they were removed.
func (c Change) DeletedRunes() []rune {
	var out []rune
	for _, e := range c.AppliedEdits {
		out = append(out, []rune(e.DeletedText)...)
	}
	return out
}
