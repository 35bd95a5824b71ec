package editor

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mischief/artifact"
	"github.com/iw2rmb/mischief/chaos"
)

// applyZoom picks a new scale in [MinZoom, MaxZoom] unless a zoom was applied
// within the cooldown, and announces it with a bubble.
func (m *Model) applyZoom() tea.Cmd {
	now := m.cfg.Now()
	if !m.sched.ZoomDue(now) {
		return nil
	}

	scale := m.cfg.MinZoom + m.cfg.Rand.Float64()*(m.cfg.MaxZoom-m.cfg.MinZoom)
	m.zoom = ZoomState{Scale: scale, At: now}
	m.log.Printf("chaos: zoom %.2f", scale)

	w := m.contentWidth()
	at := chaos.Point{
		Col: m.cfg.Rand.IntN(max(1, w-15)),
		Row: m.viewport.YOffset + 2 + m.cfg.Rand.IntN(4),
	}
	cmd := m.artifacts.Emit(m.place(artifact.Descriptor{
		Kind: artifact.KindZoom,
		Zoom: scale,
		At:   at,
	}))
	m.sync(true)
	return cmd
}

// zoomPad returns the left margin that renders the current zoom: scales
// below 1 narrow the text block, scales above 1 leave it flush.
func (m Model) zoomPad() int {
	if m.zoom.Scale >= 1 {
		return 0
	}
	pad := int(math.Round((1 - m.zoom.Scale) * float64(m.contentWidth()) / 2))
	return max(pad, 0)
}
