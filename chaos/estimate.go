package chaos

import "github.com/iw2rmb/mischief/internal/grapheme"

const (
	// JitterCols is the largest horizontal offset added to an estimate.
	JitterCols = 10
	// JitterRows is the largest vertical offset added to an estimate.
	JitterRows = 2
)

// Point is a location in terminal cells, relative to the top-left corner of
// the text area.
type Point struct {
	Col int
	Row int
}

// Locate returns the row and cell column at which the rune at off is drawn.
func Locate(text []rune, off int) Point {
	if off < 0 {
		off = 0
	}
	if off > len(text) {
		off = len(text)
	}

	row, lineStart := 0, 0
	for i := 0; i < off; i++ {
		if text[i] == '\n' {
			row++
			lineStart = i + 1
		}
	}
	col := grapheme.Columns(string(text[lineStart:off]), grapheme.DefaultTabWidth)
	return Point{Col: col, Row: row}
}

// Estimate is Locate plus a random jitter of up to JitterCols cells and
// JitterRows rows, so artifacts land near the text they came from rather than
// on top of it.
func Estimate(text []rune, off int, rng Rand) Point {
	p := Locate(text, off)
	p.Col += rng.IntN(JitterCols + 1)
	p.Row += rng.IntN(JitterRows + 1)
	return p
}
