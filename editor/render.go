package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/mischief/artifact"
	"github.com/iw2rmb/mischief/chaos"
	graphemeutil "github.com/iw2rmb/mischief/internal/grapheme"
)

type runKind uint8

const (
	runText runKind = iota
	runFaded
	runCursor
)

// lineWriter groups consecutive clusters of the same kind so each run is
// styled once.
type lineWriter struct {
	style  Style
	lines  []string
	sb     strings.Builder
	run    strings.Builder
	kind   runKind
	col    int
	hasRun bool
}

func (w *lineWriter) write(kind runKind, s string, cells int) {
	if w.hasRun && kind != w.kind {
		w.flushRun()
	}
	w.kind = kind
	w.hasRun = true
	w.run.WriteString(s)
	w.col += cells
}

func (w *lineWriter) flushRun() {
	if !w.hasRun {
		return
	}
	var st lipgloss.Style
	switch w.kind {
	case runFaded:
		st = w.style.Faded
	case runCursor:
		st = w.style.Cursor
	default:
		st = w.style.Text
	}
	w.sb.WriteString(st.Render(w.run.String()))
	w.run.Reset()
	w.hasRun = false
}

func (w *lineWriter) newline() {
	w.flushRun()
	w.lines = append(w.lines, w.sb.String())
	w.sb.Reset()
	w.col = 0
}

func (m *Model) renderContent() string {
	lines := m.renderLines()
	if m.xOffset > 0 {
		for i, line := range lines {
			lines[i] = ansi.Cut(line, m.xOffset, ansi.StringWidth(line))
		}
	}
	if m.board != nil {
		lines = m.overlayBubbles(lines)
	}

	if pad := m.zoomPad(); pad > 0 {
		prefix := strings.Repeat(" ", pad)
		for i := range lines {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

// renderLines draws the document one styled line per logical line. Faded
// words take the Faded style; the cursor cell takes the Cursor style.
func (m *Model) renderLines() []string {
	w := &lineWriter{style: m.cfg.Style}
	cur := m.buf.Cursor()
	off := 0

	for _, sp := range m.buf.Spans() {
		kind := runText
		if sp.Word != 0 && m.faded[sp.Word] {
			kind = runFaded
		}
		for _, cl := range graphemeutil.Split(sp.Text) {
			n := utf8.RuneCountInString(cl)
			atCursor := m.focused && cur >= off && cur < off+n
			off += n

			if cl == "\n" {
				if atCursor {
					w.write(runCursor, " ", 1)
				}
				w.newline()
				continue
			}

			k := kind
			if atCursor {
				k = runCursor
			}
			cells := graphemeutil.Width(cl, w.col, graphemeutil.DefaultTabWidth)
			if cl == "\t" {
				w.write(k, strings.Repeat(" ", cells), cells)
				continue
			}
			w.write(k, cl, cells)
		}
	}
	if m.focused && cur >= off {
		w.write(runCursor, " ", 1)
	}
	w.newline()
	return w.lines
}

// overlayBubbles draws the board's artifacts over the text, oldest first, so
// newer bubbles cover older ones.
func (m *Model) overlayBubbles(lines []string) []string {
	width := m.contentWidth()
	for _, it := range m.board.Items() {
		label := m.cfg.Style.bubble(it.Descriptor).Render(it.Label())
		lw := ansi.StringWidth(label)
		row, col := it.At.Row, it.At.Col
		if row < 0 || col < 0 {
			continue
		}
		for len(lines) <= row {
			lines = append(lines, "")
		}

		line := lines[row]
		have := ansi.StringWidth(line)
		if have < col {
			line += strings.Repeat(" ", col-have)
			have = col
		}
		out := ansi.Cut(line, 0, col) + label
		if have > col+lw {
			out += ansi.Cut(line, col+lw, have)
		}
		if width > 0 {
			out = ansi.Truncate(out, width, "")
		}
		lines[row] = out
	}
	return lines
}

// visible shifts a document cell to the column it is drawn at.
func (m Model) visible(p chaos.Point) chaos.Point {
	p.Col -= m.xOffset
	return p
}

// place keeps an artifact inside the text area horizontally.
func (m Model) place(d artifact.Descriptor) artifact.Descriptor {
	width := m.contentWidth()
	if width <= 0 {
		return d
	}
	lw := lipgloss.Width(m.cfg.Style.bubble(d).Render(d.Label()))
	d.At.Col = min(d.At.Col, max(width-lw, 0))
	d.At.Col = max(d.At.Col, 0)
	d.At.Row = max(d.At.Row, 0)
	return d
}

// contentWidth is the number of cells inside the frame.
func (m Model) contentWidth() int {
	return max(m.viewport.Width-m.viewport.Style.GetHorizontalFrameSize(), 0)
}
