package artifact

import "github.com/iw2rmb/mischief/internal/grapheme"

// Item is an artifact shown on a Board.
type Item struct {
	Handle Handle
	Descriptor
}

// Board is an in-memory Sink that keeps artifacts in spawn order.
type Board struct {
	// Width returns the number of cells an artifact covers on its row. Nil
	// measures the bare label.
	Width func(Descriptor) int

	next  Handle
	items []Item
}

// NewBoard returns an empty board.
func NewBoard() *Board { return &Board{} }

func (b *Board) Add(d Descriptor) Handle {
	b.next++
	b.items = append(b.items, Item{Handle: b.next, Descriptor: d})
	return b.next
}

func (b *Board) Remove(h Handle) {
	for i, it := range b.items {
		if it.Handle == h {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return
		}
	}
}

// Items returns the shown artifacts, oldest first.
func (b *Board) Items() []Item {
	return append([]Item(nil), b.items...)
}

func (b *Board) Len() int { return len(b.items) }

// At returns the artifact drawn at the given cell. Newer artifacts are drawn
// above older ones and win.
func (b *Board) At(col, row int) (Item, bool) {
	for i := len(b.items) - 1; i >= 0; i-- {
		it := b.items[i]
		if it.At.Row != row || col < it.At.Col {
			continue
		}
		if col < it.At.Col+b.width(it.Descriptor) {
			return it, true
		}
	}
	return Item{}, false
}

func (b *Board) width(d Descriptor) int {
	if b.Width != nil {
		return b.Width(d)
	}
	return grapheme.Columns(d.Label(), grapheme.DefaultTabWidth)
}
