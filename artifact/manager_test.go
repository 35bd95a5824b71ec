package artifact

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// runAll executes cmd and any batch it expands to, returning the messages.
// Only use it on commands whose ticks are short.
func runAll(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runAll(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestManager_EmitAddsAndExpires(t *testing.T) {
	board := NewBoard()
	m := NewManager(board)

	if cmd := m.Emit(Descriptor{Kind: KindWord, Original: "a", Replacement: "b"}); cmd == nil {
		t.Fatalf("expected an expiry command")
	}
	if board.Len() != 1 || m.Live() != 1 {
		t.Fatalf("board=%d live=%d, want 1 1", board.Len(), m.Live())
	}

	h := board.Items()[0].Handle
	m.Update(expireMsg{id: m.id, epoch: m.epoch, h: h})
	if board.Len() != 0 || m.Live() != 0 {
		t.Fatalf("board=%d live=%d, want 0 0", board.Len(), m.Live())
	}

	// A second expiry for the same handle is harmless.
	m.Update(expireMsg{id: m.id, epoch: m.epoch, h: h})
}

func TestManager_EmitStaggeredSpawnsInOrder(t *testing.T) {
	board := NewBoard()
	m := NewManager(board)

	cmd := m.EmitStaggered([]Descriptor{
		{Kind: KindLetter, Char: 'a'},
		{Kind: KindLetter, Char: 'b'},
	})
	if board.Len() != 0 {
		t.Fatalf("nothing may spawn before its delay")
	}

	msgs := runAll(cmd)
	if len(msgs) != 2 {
		t.Fatalf("msgs=%d, want 2", len(msgs))
	}
	for _, msg := range msgs {
		if m.Update(msg) == nil {
			t.Fatalf("a spawn must schedule its expiry")
		}
	}

	items := board.Items()
	if len(items) != 2 || items[0].Char != 'a' || items[1].Char != 'b' {
		t.Fatalf("items=%+v", items)
	}
}

func TestManager_ClearRemovesAllAndDropsPending(t *testing.T) {
	board := NewBoard()
	m := NewManager(board)

	m.Emit(Descriptor{Kind: KindZoom, Zoom: 1.1})
	m.Emit(Descriptor{Kind: KindWord})
	pending := runAll(m.EmitStaggered([]Descriptor{{Kind: KindLetter, Char: 'x'}}))
	h := board.Items()[0].Handle
	staleExpiry := expireMsg{id: m.id, epoch: m.epoch, h: h}

	m.Clear()
	if board.Len() != 0 || m.Live() != 0 {
		t.Fatalf("clear must remove everything at once")
	}

	for _, msg := range pending {
		if cmd := m.Update(msg); cmd != nil {
			t.Fatalf("pending spawn must be dropped after clear")
		}
	}
	if board.Len() != 0 {
		t.Fatalf("stale spawn reached the board")
	}

	m.Emit(Descriptor{Kind: KindWord})
	m.Update(staleExpiry)
	if board.Len() != 1 {
		t.Fatalf("stale expiry must not touch new artifacts")
	}
}

func TestManager_PopOnlyLetters(t *testing.T) {
	board := NewBoard()
	m := NewManager(board)

	m.Emit(Descriptor{Kind: KindWord})
	m.Emit(Descriptor{Kind: KindLetter, Char: 'q'})
	items := board.Items()

	if _, ok := m.Pop(items[0].Handle); ok {
		t.Fatalf("word artifacts cannot be popped")
	}
	d, ok := m.Pop(items[1].Handle)
	if !ok || d.Char != 'q' {
		t.Fatalf("pop=(%+v,%v), want letter q", d, ok)
	}
	if board.Len() != 1 || m.Live() != 1 {
		t.Fatalf("popped artifact must be removed")
	}
	if _, ok := m.Pop(items[1].Handle); ok {
		t.Fatalf("a popped artifact cannot be popped again")
	}
}

func TestManager_CloseRejectsEmits(t *testing.T) {
	board := NewBoard()
	m := NewManager(board)
	m.Emit(Descriptor{Kind: KindWord})

	m.Close()
	if board.Len() != 0 {
		t.Fatalf("close must clear the board")
	}
	if m.Emit(Descriptor{Kind: KindWord}) != nil || m.EmitStaggered([]Descriptor{{}}) != nil {
		t.Fatalf("emits after close must be no-ops")
	}
	if board.Len() != 0 {
		t.Fatalf("nothing may be added after close")
	}
}

func TestManager_IgnoresOtherManagers(t *testing.T) {
	a := NewManager(NewBoard())
	board := NewBoard()
	b := NewManager(board)

	msgs := runAll(a.EmitStaggered([]Descriptor{{Kind: KindLetter, Char: 'z'}}))
	for _, msg := range msgs {
		b.Update(msg)
	}
	if board.Len() != 0 {
		t.Fatalf("foreign spawn reached the board")
	}
}

func TestLifetime(t *testing.T) {
	if Lifetime(KindWord) != WordLifetime || Lifetime(KindZoom) != ZoomLifetime || Lifetime(KindLetter) != LetterLifetime {
		t.Fatalf("unexpected lifetimes")
	}
}
