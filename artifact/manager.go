package artifact

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type spawnMsg struct {
	id    int
	epoch uint64
	d     Descriptor
}

type expireMsg struct {
	id    int
	epoch uint64
	h     Handle
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Manager pairs every artifact it puts into a Sink with its removal.
//
// Spawns and expiries travel as Bubble Tea messages, so the host must route
// unknown messages through Update. Messages issued before the latest Clear
// are ignored.
type Manager struct {
	id     int
	sink   Sink
	live   map[Handle]Descriptor
	epoch  uint64
	closed bool
}

// NewManager returns a Manager that displays artifacts through sink.
func NewManager(sink Sink) *Manager {
	return &Manager{
		id:   nextID(),
		sink: sink,
		live: make(map[Handle]Descriptor),
	}
}

// Emit shows d now and schedules its removal after its lifetime.
func (m *Manager) Emit(d Descriptor) tea.Cmd {
	if m.closed {
		return nil
	}
	return m.add(d)
}

// EmitStaggered shows ds one by one, item i after Stagger*i. Each item lives
// for its full lifetime counted from its own spawn.
func (m *Manager) EmitStaggered(ds []Descriptor) tea.Cmd {
	if m.closed || len(ds) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(ds))
	for i, d := range ds {
		msg := spawnMsg{id: m.id, epoch: m.epoch, d: d}
		cmds = append(cmds, tea.Tick(time.Duration(i)*Stagger, func(time.Time) tea.Msg {
			return msg
		}))
	}
	return tea.Batch(cmds...)
}

// Update handles the manager's own spawn and expiry messages and ignores
// everything else.
func (m *Manager) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spawnMsg:
		if !m.current(msg.id, msg.epoch) {
			return nil
		}
		return m.add(msg.d)
	case expireMsg:
		if !m.current(msg.id, msg.epoch) {
			return nil
		}
		m.remove(msg.h)
	}
	return nil
}

// Pop removes a live letter artifact ahead of its expiry and returns it.
// Other kinds cannot be popped.
func (m *Manager) Pop(h Handle) (Descriptor, bool) {
	d, ok := m.live[h]
	if !ok || d.Kind != KindLetter {
		return Descriptor{}, false
	}
	m.remove(h)
	return d, true
}

// Clear removes every live artifact at once and drops pending spawns and
// expiries.
func (m *Manager) Clear() {
	for h := range m.live {
		m.sink.Remove(h)
	}
	clear(m.live)
	m.epoch++
}

// Close clears the manager and makes later emits no-ops.
func (m *Manager) Close() {
	m.Clear()
	m.closed = true
}

// Live returns the number of artifacts currently shown.
func (m *Manager) Live() int { return len(m.live) }

func (m *Manager) current(id int, epoch uint64) bool {
	return !m.closed && id == m.id && epoch == m.epoch
}

func (m *Manager) add(d Descriptor) tea.Cmd {
	h := m.sink.Add(d)
	m.live[h] = d

	msg := expireMsg{id: m.id, epoch: m.epoch, h: h}
	return tea.Tick(Lifetime(d.Kind), func(time.Time) tea.Msg {
		return msg
	})
}

func (m *Manager) remove(h Handle) {
	if _, ok := m.live[h]; !ok {
		return
	}
	delete(m.live, h)
	m.sink.Remove(h)
}
