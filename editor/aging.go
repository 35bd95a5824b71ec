package editor

import (
	"strings"

	"github.com/iw2rmb/mischief/buffer"
)

// sweep tags new words, anchors the age of every word it sees for the first
// time, and marks words older than the threshold as faded. Anchors are never
// refreshed, so a faded word stays faded until the document is cleared. It
// reports whether anything visible changed.
func (m *Model) sweep() bool {
	if strings.TrimSpace(m.buf.Text()) == "" {
		return false
	}

	created := m.buf.TagWords()
	now := m.cfg.Now()
	changed := len(created) > 0

	seen := make(map[buffer.NodeID]struct{})
	for _, seg := range m.buf.Segments() {
		seen[seg.ID] = struct{}{}
		born, ok := m.ages[seg.ID]
		if !ok {
			born = now
			m.ages[seg.ID] = now
		}
		faded := now.Sub(born) > m.cfg.AgingThreshold
		if faded != m.faded[seg.ID] {
			changed = true
		}
		if faded {
			m.faded[seg.ID] = true
		} else {
			delete(m.faded, seg.ID)
		}
	}

	// Words removed by edits no longer need an anchor.
	for id := range m.ages {
		if _, ok := seen[id]; !ok {
			delete(m.ages, id)
			delete(m.faded, id)
		}
	}
	return changed
}
