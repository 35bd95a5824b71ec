package buffer

import "testing"

func TestConvert_RoundTrip(t *testing.T) {
	texts := []string{
		"",
		"a",
		"hello world",
		"hello  big\nworld ",
		"  leading and trailing  ",
		"π テ 🙂x",
	}

	for _, text := range texts {
		for _, tagged := range []bool{false, true} {
			b := New(text)
			if tagged {
				b.TagWords()
			}
			for c := 0; c <= b.Len(); c++ {
				if got := b.OffsetFromPos(b.PosFromOffset(c)); got != c {
					t.Fatalf("text=%q tagged=%v: round trip of %d gave %d", text, tagged, c, got)
				}
			}
		}
	}
}

func TestConvert_BoundaryBindsLeft(t *testing.T) {
	b := New("ab cd")
	b.TagWords()

	p := b.PosFromOffset(2)
	if k, _ := b.Kind(p.Node); k != NodeText {
		t.Fatalf("pos node kind=%v, want text leaf", k)
	}
	if p.Offset != 2 {
		t.Fatalf("pos offset=%d, want 2 (end of the left leaf)", p.Offset)
	}

	p = b.PosFromOffset(3)
	if p.Offset != 1 {
		t.Fatalf("pos offset=%d, want 1 (end of the space leaf)", p.Offset)
	}
}

func TestConvert_Clamps(t *testing.T) {
	b := New("abc")
	if got, want := b.PosFromOffset(-5), b.PosFromOffset(0); got != want {
		t.Fatalf("below range=%v, want %v", got, want)
	}
	if got := b.OffsetFromPos(b.PosFromOffset(99)); got != 3 {
		t.Fatalf("above range offset=%d, want 3", got)
	}

	leaf := b.PosFromOffset(1).Node
	if got := b.OffsetFromPos(Pos{Node: leaf, Offset: 99}); got != 3 {
		t.Fatalf("in-leaf clamp=%d, want 3", got)
	}
	if got := b.OffsetFromPos(Pos{Node: leaf, Offset: -4}); got != 0 {
		t.Fatalf("in-leaf clamp=%d, want 0", got)
	}
}

func TestConvert_EmptyBufferMapsToRoot(t *testing.T) {
	b := New("")
	root := Pos{Node: b.Root()}
	if got := b.PosFromOffset(0); got != root {
		t.Fatalf("pos=%v, want %v", got, root)
	}
	if got := b.PosFromOffset(7); got != root {
		t.Fatalf("clamped pos=%v, want %v", got, root)
	}
	if got := b.OffsetFromPos(Pos{Node: b.Root(), Offset: 3}); got != 0 {
		t.Fatalf("offset=%d, want 0", got)
	}
}

func TestConvert_StalePositionClampsToEnd(t *testing.T) {
	b := New("ab cd")
	b.TagWords()
	p := b.PosFromOffset(4) // inside "cd"

	b.Apply(ChangeSourceChaos, TextEdit{Start: 3, End: 5})
	if got, want := b.OffsetFromPos(p), b.Len(); got != want {
		t.Fatalf("stale offset=%d, want %d", got, want)
	}
}

func TestConvert_WordNodeAddressesItsText(t *testing.T) {
	b := New("ab cd")
	b.TagWords()
	segs := b.Segments()
	if got := b.OffsetFromPos(Pos{Node: segs[1].ID, Offset: 1}); got != 4 {
		t.Fatalf("offset=%d, want 4", got)
	}
}

func TestLineCol(t *testing.T) {
	b := New("ab\ncde\n")
	cases := []struct {
		off       int
		line, col int
	}{
		{off: 0, line: 0, col: 0},
		{off: 2, line: 0, col: 2},
		{off: 3, line: 1, col: 0},
		{off: 5, line: 1, col: 2},
		{off: 7, line: 2, col: 0},
		{off: 99, line: 2, col: 0},
	}
	for _, tc := range cases {
		line, col := b.LineCol(tc.off)
		if line != tc.line || col != tc.col {
			t.Fatalf("LineCol(%d)=(%d,%d), want (%d,%d)", tc.off, line, col, tc.line, tc.col)
		}
	}
}
