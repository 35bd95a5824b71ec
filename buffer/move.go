package buffer

import "unicode"

type MoveUnit int

const (
	MoveRune MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

func (b *Buffer) Move(m Move) {
	rs := b.Runes()
	cur := b.Cursor()
	next := clampOffset(moveCursor(rs, cur, m), len(rs))
	if next == cur {
		return
	}
	b.SetCursor(next)
}

func moveCursor(rs []rune, off int, m Move) int {
	switch m.Unit {
	case MoveRune:
		return moveRune(rs, off, m.Dir)
	case MoveWord:
		return moveWord(rs, off, m.Dir)
	case MoveLine:
		return moveLine(rs, off, m.Dir)
	case MoveDoc:
		return moveDoc(rs, off, m.Dir)
	default:
		return off
	}
}

func moveRune(rs []rune, off int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		return off - 1
	case DirRight:
		return off + 1
	default:
		return moveLine(rs, off, dir)
	}
}

func moveWord(rs []rune, off int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		return prevWordBoundary(rs, off)
	case DirRight:
		return nextWordBoundary(rs, off)
	default:
		return moveLine(rs, off, dir)
	}
}

func moveLine(rs []rune, off int, dir MoveDir) int {
	start, end := lineBounds(rs, off)
	col := off - start

	switch dir {
	case DirHome:
		return start
	case DirEnd:
		return end
	case DirUp:
		if start == 0 {
			return off
		}
		ps, pe := lineBounds(rs, start-1)
		return ps + minInt(col, pe-ps)
	case DirDown:
		if end == len(rs) {
			return off
		}
		ns, ne := lineBounds(rs, end+1)
		return ns + minInt(col, ne-ns)
	default:
		return off
	}
}

func moveDoc(rs []rune, off int, dir MoveDir) int {
	switch dir {
	case DirHome, DirUp:
		return 0
	case DirEnd, DirDown:
		return len(rs)
	default:
		return off
	}
}

// lineBounds returns the [start, end) rune range of the line holding off,
// excluding the trailing newline.
func lineBounds(rs []rune, off int) (start, end int) {
	off = clampOffset(off, len(rs))
	start = off
	for start > 0 && rs[start-1] != '\n' {
		start--
	}
	end = off
	for end < len(rs) && rs[end] != '\n' {
		end++
	}
	return start, end
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - newline counts as whitespace
func prevWordBoundary(rs []rune, off int) int {
	i := clampOffset(off, len(rs))
	for i > 0 && unicode.IsSpace(rs[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(rs[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(rs []rune, off int) int {
	i := clampOffset(off, len(rs))
	for i < len(rs) && unicode.IsSpace(rs[i]) {
		i++
	}
	for i < len(rs) && !unicode.IsSpace(rs[i]) {
		i++
	}
	return i
}
