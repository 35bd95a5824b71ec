package editor

import (
	"slices"

	"github.com/iw2rmb/mischief/buffer"
)

// RenderEvent is handed to Config.OnRender after every mutation.
type RenderEvent struct {
	Version uint64
	Cursor  int

	// v0: simplest payload; host can diff if needed.
	Text string

	Zoom  float64
	Faded []buffer.NodeID
}

func (m Model) renderEvent() RenderEvent {
	faded := make([]buffer.NodeID, 0, len(m.faded))
	for id := range m.faded {
		faded = append(faded, id)
	}
	slices.Sort(faded)

	return RenderEvent{
		Version: m.buf.Version(),
		Cursor:  m.buf.Cursor(),
		Text:    m.buf.Text(),
		Zoom:    m.zoom.Scale,
		Faded:   faded,
	}
}
