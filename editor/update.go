package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mischief/artifact"
	"github.com/iw2rmb/mischief/buffer"
	"github.com/iw2rmb/mischief/chaos"
	"github.com/iw2rmb/mischief/schedule"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Any real key ends a running auto-typing burst before it is handled.
	if m.sched.KeyDown() {
		m.burst = nil
		m.applyFrame()
		m.rebuildContent()
		m.log.Printf("chaos: auto-typing interrupted")
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.buf.InsertText(normalizeNewlines(string(msg.Runes)))
		return m.afterInput()
	}

	km := m.cfg.KeyMap
	var cmds []tea.Cmd

	switch {
	case key.Matches(msg, km.Chaos):
		cmds = append(cmds, m.chaoticDelete())
	case key.Matches(msg, km.Clear):
		var cmd tea.Cmd
		m, cmd = m.Clear()
		return m, cmd

	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})
	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})
	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		m.buf.DeleteBackward()
		return m.afterInput()
	case key.Matches(msg, km.Delete):
		m.buf.DeleteForward()
		return m.afterInput()

	case key.Matches(msg, km.Space):
		cmd := m.substitute(' ')
		m.buf.InsertText(" ")
		return m.afterInput(cmd)
	case key.Matches(msg, km.Enter):
		cmd := m.substitute('\n')
		m.buf.InsertNewline()
		return m.afterInput(cmd)

	case key.Matches(msg, km.Paste):
		if m.pasteClipboard() {
			return m.afterInput()
		}
	case key.Matches(msg, km.Copy):
		m.copyClipboard()

	default:
		if msg.Type == tea.KeyTab {
			m.buf.InsertText("\t")
			return m.afterInput()
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.buf.InsertText(string(msg.Runes))
			return m.afterInput()
		}
	}

	// Keys that do not produce input still count as activity for the idle
	// timer.
	cmds = append(cmds, m.sched.Touch())
	m.sync(false)
	return m, tea.Batch(cmds...)
}

// afterInput finishes handling of real input: the typing latch is set, the
// idle and zoom timers are debounced and the view is refreshed.
func (m Model) afterInput(cmds ...tea.Cmd) (Model, tea.Cmd) {
	m.sched.Input()
	cmds = append(cmds, m.sched.Activity())
	m.sync(false)
	return m, tea.Batch(cmds...)
}

// substitute replaces the word before the cursor when replacement is enabled
// and emits its bubble.
func (m *Model) substitute(trigger rune) tea.Cmd {
	if m.cfg.DisableWordReplacement {
		return nil
	}
	sub, ok := chaos.SubstituteWord(m.buf, m.cfg.Rand, trigger)
	if !ok {
		return nil
	}
	m.log.Printf("chaos: substituted %q with %q", sub.Original, sub.Replacement)
	return m.artifacts.Emit(m.place(artifact.Descriptor{
		Kind:        artifact.KindWord,
		Original:    sub.Original,
		Replacement: sub.Replacement,
		Trigger:     trigger,
		At:          m.visible(sub.At),
	}))
}

// chaoticDelete removes random runes and releases them as letter bubbles. An
// empty document only shakes the frame.
func (m *Model) chaoticDelete() tea.Cmd {
	d, outcome := chaos.Delete(m.buf, m.cfg.Rand)
	if outcome == chaos.OutcomeEmpty {
		m.shaking = true
		m.applyFrame()
		return m.sched.Rearm(schedule.KindShake, shakeDuration)
	}

	m.log.Printf("chaos: deleted %d runes", len(d.Removals))
	ds := make([]artifact.Descriptor, 0, len(d.Removals))
	for _, r := range d.Removals {
		ds = append(ds, m.place(artifact.Descriptor{
			Kind: artifact.KindLetter,
			Char: r.Char,
			At:   m.visible(r.At),
		}))
	}
	return m.artifacts.EmitStaggered(ds)
}

// reinsert puts r back at a random offset.
func (m *Model) reinsert(r rune) {
	at := chaos.Reinsert(m.buf, m.cfg.Rand, r)
	m.log.Printf("chaos: reinserted %q at %d", r, at)
}

func (m Model) pasteClipboard() bool {
	if m.cfg.Clipboard == nil {
		return false
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return false
	}
	m.buf.InsertText(normalizeNewlines(s))
	return true
}

// copyClipboard puts the whole document on the clipboard.
func (m Model) copyClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	if err := m.cfg.Clipboard.WriteText(m.buf.Text()); err != nil {
		m.log.Printf("clipboard: %v", err)
	}
}

// Normalize newlines from external sources.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
