package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mischief/chaos"
	"github.com/iw2rmb/mischief/schedule"
)

// startAutoType begins a gibberish burst. The first word is typed at once,
// the rest one by one after random pauses.
func (m *Model) startAutoType() tea.Cmd {
	if !m.sched.BeginAutoType() {
		return nil
	}
	m.burst = chaos.Gibberish(m.cfg.Rand, m.cfg.GibberishWords)
	m.applyFrame()
	m.log.Printf("chaos: auto-typing %d words", len(m.burst))
	return m.typeNextWord()
}

// typeNextWord appends the next word of the burst, or ends the burst when
// none are left. Ending does not re-arm the idle timer; only real input does.
func (m *Model) typeNextWord() tea.Cmd {
	if !m.sched.AutoTyping() {
		m.burst = nil
		return nil
	}
	if len(m.burst) == 0 {
		m.sched.EndAutoType()
		m.applyFrame()
		m.rebuildContent()
		return nil
	}

	chaos.AppendWord(m.buf, m.burst[0])
	m.burst = m.burst[1:]
	m.sync(false)
	return m.sched.Rearm(schedule.KindAutoTypeStep, chaos.WordDelay(m.cfg.Rand))
}
