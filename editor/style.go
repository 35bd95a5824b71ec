package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/mischief/artifact"
)

// Style controls the editor's rendering.
type Style struct {
	Text   lipgloss.Style
	Faded  lipgloss.Style
	Cursor lipgloss.Style

	// Frame wraps the text area. The cue styles replace it while their cue
	// is active.
	Frame       lipgloss.Style
	AutoTyping  lipgloss.Style
	ScrollChaos lipgloss.Style
	Shake       lipgloss.Style

	WordBubble   lipgloss.Style
	EnterBubble  lipgloss.Style
	ZoomBubble   lipgloss.Style
	LetterBubble lipgloss.Style
}

func DefaultStyle() Style {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	bubble := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color("231"))

	return Style{
		Text:   lipgloss.NewStyle(),
		Faded:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Faint(true),
		Cursor: lipgloss.NewStyle().Reverse(true),

		Frame:       frame,
		AutoTyping:  frame.BorderForeground(lipgloss.Color("135")),
		ScrollChaos: frame.BorderForeground(lipgloss.Color("167")),
		Shake:       frame.BorderForeground(lipgloss.Color("196")).PaddingLeft(1),

		WordBubble:   bubble.Background(lipgloss.Color("62")),
		EnterBubble:  bubble.Background(lipgloss.Color("97")),
		ZoomBubble:   bubble.Background(lipgloss.Color("32")),
		LetterBubble: bubble.Background(lipgloss.Color("208")).Bold(true),
	}
}

func (s Style) bubble(d artifact.Descriptor) lipgloss.Style {
	switch d.Kind {
	case artifact.KindWord:
		if d.Trigger == '\n' {
			return s.EnterBubble
		}
		return s.WordBubble
	case artifact.KindZoom:
		return s.ZoomBubble
	default:
		return s.LetterBubble
	}
}
