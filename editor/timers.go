package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mischief/schedule"
)

func (m Model) updateTimer(msg schedule.FireMsg) (Model, tea.Cmd) {
	if !m.sched.Fire(msg) {
		return m, nil
	}

	var cmd tea.Cmd
	switch msg.Kind {
	case schedule.KindIdle:
		cmd = m.startAutoType()
	case schedule.KindAutoTypeStep:
		cmd = m.typeNextWord()
	case schedule.KindZoom:
		cmd = m.applyZoom()
	case schedule.KindAging:
		changed := m.sweep()
		cmd = m.sched.Rearm(schedule.KindAging, m.cfg.AgingInterval)
		if changed {
			m.sync(true)
		}
		return m, cmd
	case schedule.KindScrollChaos:
		m.scrollFlash = false
		m.applyFrame()
	case schedule.KindShake:
		m.shaking = false
		m.applyFrame()
	}
	m.sync(false)
	return m, cmd
}
