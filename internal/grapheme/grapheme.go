// Package grapheme measures text the way a terminal lays it out.
package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is the tab stop distance used when callers pass <= 0.
const DefaultTabWidth = 4

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Width returns the cell width of a single cluster drawn at visual column col.
func Width(cluster string, col, tabWidth int) int {
	if cluster == "\t" {
		return tabAdvance(col, tabWidth)
	}
	if cluster == "\n" {
		return 0
	}

	w := runewidth.StringWidth(cluster)
	if w == 0 {
		// runewidth reports 0 for some emoji sequences that uniseg measures.
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		return 0
	}
	return w
}

// Columns returns the visual column reached after drawing line from column 0.
// line must not contain '\n'.
func Columns(line string, tabWidth int) int {
	col := 0
	for _, c := range Split(line) {
		col += Width(c, col, tabWidth)
	}
	return col
}

func tabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	if col < 0 {
		col = 0
	}
	return tabWidth - (col % tabWidth)
}
