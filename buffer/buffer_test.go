package buffer

import "testing"

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc")
	if b.Version() != 0 {
		t.Fatalf("expected version 0, got %d", b.Version())
	}
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor=%d, want 0", got)
	}

	b.SetCursor(999)
	if got := b.Cursor(); got != 4 {
		t.Fatalf("cursor=%d, want 4", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}

	b.SetCursor(4)
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}

	b.SetCursor(-3)
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor=%d, want 0", got)
	}
}

func TestBuffer_Empty_CaretAtRoot(t *testing.T) {
	b := New("")
	if got, want := b.Caret(), (Pos{Node: b.Root()}); got != want {
		t.Fatalf("caret=%v, want %v", got, want)
	}
	if b.Len() != 0 || b.Text() != "" {
		t.Fatalf("expected empty buffer, got len=%d text=%q", b.Len(), b.Text())
	}
	if got := b.Spans(); len(got) != 0 {
		t.Fatalf("spans=%v, want none", got)
	}
}

func TestBuffer_SpansAndSegments(t *testing.T) {
	b := New("hi there")
	if got := b.Segments(); len(got) != 0 {
		t.Fatalf("segments before tagging=%v, want none", got)
	}

	b.TagWords()
	spans := b.Spans()
	if len(spans) != 3 {
		t.Fatalf("span count=%d, want 3", len(spans))
	}
	wantText := []string{"hi", " ", "there"}
	wantStart := []int{0, 2, 3}
	for i, sp := range spans {
		if sp.Text != wantText[i] || sp.Start != wantStart[i] {
			t.Fatalf("span %d=%+v, want text %q start %d", i, sp, wantText[i], wantStart[i])
		}
	}
	if spans[1].Word != 0 {
		t.Fatalf("whitespace span must be untagged, got word %d", spans[1].Word)
	}

	segs := b.Segments()
	if len(segs) != 2 {
		t.Fatalf("segment count=%d, want 2", len(segs))
	}
	if segs[1].Text != "there" || segs[1].Start != 3 {
		t.Fatalf("segment 1=%+v", segs[1])
	}
	if k, ok := b.Kind(segs[0].ID); !ok || k != NodeWord {
		t.Fatalf("kind(%d)=%v,%v, want word", segs[0].ID, k, ok)
	}
	if _, ok := b.Kind(NodeID(9999)); ok {
		t.Fatalf("expected unknown node to be absent")
	}
}
