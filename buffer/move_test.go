package buffer

import "testing"

func TestBuffer_MoveRune_BoundsAndLineCrossing(t *testing.T) {
	b := New("ab\ncd")

	b.Move(Move{Unit: MoveRune, Dir: DirLeft})
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor=%d, want 0", got)
	}

	b.Move(Move{Unit: MoveRune, Dir: DirRight})
	if got := b.Cursor(); got != 1 {
		t.Fatalf("cursor=%d, want 1", got)
	}

	b.SetCursor(2)
	b.Move(Move{Unit: MoveRune, Dir: DirRight})
	if got := b.Cursor(); got != 3 {
		t.Fatalf("cursor=%d, want 3", got)
	}

	b.SetCursor(5)
	b.Move(Move{Unit: MoveRune, Dir: DirRight})
	if got := b.Cursor(); got != 5 {
		t.Fatalf("cursor=%d, want 5", got)
	}
}

func TestBuffer_MoveLine_HomeEndAndVerticalClamp(t *testing.T) {
	b := New("hello\nw\nworld")

	b.SetCursor(3)
	b.Move(Move{Unit: MoveLine, Dir: DirEnd})
	if got := b.Cursor(); got != 5 {
		t.Fatalf("cursor=%d, want 5", got)
	}

	b.Move(Move{Unit: MoveLine, Dir: DirHome})
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor=%d, want 0", got)
	}

	b.Move(Move{Unit: MoveLine, Dir: DirDown})
	if got := b.Cursor(); got != 6 {
		t.Fatalf("cursor=%d, want 6", got)
	}

	b.SetCursor(13)
	b.Move(Move{Unit: MoveLine, Dir: DirUp})
	if got := b.Cursor(); got != 7 {
		t.Fatalf("cursor=%d, want 7", got)
	}

	b.SetCursor(13)
	b.Move(Move{Unit: MoveLine, Dir: DirDown})
	if got := b.Cursor(); got != 13 {
		t.Fatalf("cursor=%d, want 13 on the last line", got)
	}
}

func TestBuffer_MoveWordAndDoc(t *testing.T) {
	b := New("foo  bar baz")

	b.SetCursor(12)
	b.Move(Move{Unit: MoveWord, Dir: DirLeft})
	if got := b.Cursor(); got != 9 {
		t.Fatalf("cursor=%d, want 9", got)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirLeft})
	if got := b.Cursor(); got != 5 {
		t.Fatalf("cursor=%d, want 5", got)
	}

	b.SetCursor(0)
	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got := b.Cursor(); got != 3 {
		t.Fatalf("cursor=%d, want 3", got)
	}

	b.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	if got := b.Cursor(); got != 12 {
		t.Fatalf("cursor=%d, want 12", got)
	}
	b.Move(Move{Unit: MoveDoc, Dir: DirHome})
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor=%d, want 0", got)
	}
}
