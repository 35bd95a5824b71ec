package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mischief/artifact"
	"github.com/iw2rmb/mischief/schedule"
	graphemeutil "github.com/iw2rmb/mischief/internal/grapheme"
)

const wheelDelta = 3

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonWheelUp:
		return m.scroll(-wheelDelta)
	case tea.MouseButtonWheelDown:
		return m.scroll(wheelDelta)
	case tea.MouseButtonLeft:
		if !m.focused || !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}
		col, row := m.screenToContent(msg.X, msg.Y)
		if m.board != nil {
			if it, ok := m.board.At(col, row); ok {
				return m.pop(it.Handle)
			}
		}
		m.buf.SetCursor(m.offsetAt(col+m.xOffset, row))
		m.sync(false)
	}
	return m, nil
}

// scroll moves the viewport by delta lines, which the coordinator may invert.
func (m Model) scroll(delta int) (Model, tea.Cmd) {
	d, inverted := m.sched.Scroll(delta, m.cfg.Rand)
	m.viewport.SetYOffset(m.viewport.YOffset + d)
	if !inverted {
		return m, nil
	}

	m.log.Printf("chaos: inverted scroll")
	m.scrollFlash = true
	m.applyFrame()
	return m, m.sched.Rearm(schedule.KindScrollChaos, scrollFlashDuration)
}

// pop bursts a letter bubble and puts its rune back at a random offset.
func (m Model) pop(h artifact.Handle) (Model, tea.Cmd) {
	d, ok := m.artifacts.Pop(h)
	if !ok {
		return m, nil
	}
	m.reinsert(d.Char)
	m.sync(true)
	return m, nil
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

// screenToContent maps a screen cell to a content cell: document row and
// visible column inside the zoom margin.
func (m Model) screenToContent(x, y int) (col, row int) {
	st := m.viewport.Style
	col = x - st.GetBorderLeftSize() - st.GetPaddingLeft() - st.GetMarginLeft() - m.zoomPad()
	row = y - st.GetBorderTopSize() - st.GetPaddingTop() - st.GetMarginTop() + m.viewport.YOffset
	return col, row
}

// offsetAt returns the document offset drawn at the given content cell,
// clamped to the line.
func (m Model) offsetAt(col, row int) int {
	rs := m.buf.Runes()
	off := 0
	for r := 0; r < row && off < len(rs); off++ {
		if rs[off] == '\n' {
			r++
		}
	}
	if row > 0 && off == len(rs) {
		return off
	}

	end := off
	for end < len(rs) && rs[end] != '\n' {
		end++
	}

	cells := 0
	for _, cl := range graphemeutil.Split(string(rs[off:end])) {
		w := graphemeutil.Width(cl, cells, graphemeutil.DefaultTabWidth)
		if col < cells+w {
			return off
		}
		cells += w
		off += len([]rune(cl))
	}
	return off
}
