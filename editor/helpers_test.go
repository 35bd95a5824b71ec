package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

// fixedRand answers every draw with the same values. IntN is capped to n-1.
type fixedRand struct {
	i int
	f float64
}

func (r fixedRand) IntN(n int) int {
	if r.i >= n {
		return n - 1
	}
	return r.i
}

func (r fixedRand) Float64() float64 { return r.f }

type memClipboard struct {
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

// collect runs cmd, expanding batches, and returns the produced messages.
// Only use it on commands whose ticks are short.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		switch r {
		case ' ':
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		case '\n':
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		default:
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}
	}
	return m
}
