package editor

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/mischief/artifact"
	"github.com/iw2rmb/mischief/buffer"
	"github.com/iw2rmb/mischief/chaos"
	"github.com/iw2rmb/mischief/schedule"
)

// ZoomState is the current text scale and when it was last changed.
type ZoomState struct {
	Scale float64
	At    time.Time
}

// Model is a Bubble Tea component that owns one buffer and everything that
// happens to it.
//
// Model is a value type like other Bubble Tea components, but the buffer,
// timers and artifacts it refers to are shared by its copies. Keep using the
// Model returned by Update.
type Model struct {
	cfg Config
	buf *buffer.Buffer
	log *log.Logger

	sched     *schedule.Coordinator
	artifacts *artifact.Manager
	board     *artifact.Board // nil when the host supplies a sink

	ages  map[buffer.NodeID]time.Time
	faded map[buffer.NodeID]bool
	zoom  ZoomState

	// Words left in the running auto-typing burst.
	burst []string

	shaking     bool
	scrollFlash bool

	focused  bool
	viewport viewport.Model
	// First document column drawn; lines wider than the view scroll with the
	// cursor.
	xOffset int

	lastBufVersion uint64
	lastCursor     int
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)

	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text),
		log:      cfg.Logger,
		ages:     make(map[buffer.NodeID]time.Time),
		faded:    make(map[buffer.NodeID]bool),
		zoom:     ZoomState{Scale: 1},
		focused:  true,
		viewport: viewport.New(0, 0),
		sched: schedule.New(schedule.Config{
			IdleDelay:         cfg.IdleDelay,
			ZoomDelay:         cfg.ZoomDelay,
			ScrollChaosChance: cfg.ScrollChaosChance,
		}),
	}
	m.viewport.MouseWheelEnabled = false

	sink := cfg.Artifacts
	if sink == nil {
		style := cfg.Style
		m.board = artifact.NewBoard()
		m.board.Width = func(d artifact.Descriptor) int {
			return lipgloss.Width(style.bubble(d).Render(d.Label()))
		}
		sink = m.board
	}
	m.artifacts = artifact.NewManager(sink)

	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.applyFrame()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Board returns the internal artifact board, or nil when Config.Artifacts was
// set.
func (m Model) Board() *artifact.Board { return m.board }

// Init starts the aging sweep.
func (m Model) Init() tea.Cmd {
	return m.sched.Rearm(schedule.KindAging, m.cfg.AgingInterval)
}

// Close tears the session down. Every timer is canceled, every artifact is
// removed, and later timer messages are ignored.
func (m Model) Close() Model {
	m.sched.Close()
	m.artifacts.Close()
	m.burst = nil
	m.rebuildContent()
	return m
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Zoom returns the current zoom state.
func (m Model) Zoom() ZoomState { return m.zoom }

// AutoTyping reports whether a gibberish burst is running.
func (m Model) AutoTyping() bool { return m.sched.AutoTyping() }

// Faded reports whether the word with the given ID is drawn faded.
func (m Model) Faded(id buffer.NodeID) bool { return m.faded[id] }

// Age returns when the word with the given ID was first seen by the aging
// sweep.
func (m Model) Age(id buffer.NodeID) (time.Time, bool) {
	t, ok := m.ages[id]
	return t, ok
}

// CharacterCount returns the number of characters in the document.
func (m Model) CharacterCount() int { return m.buf.CharacterCount() }

// WordCount returns the number of whitespace-delimited words in the document.
func (m Model) WordCount() int { return m.buf.WordCount() }

func (m Model) View() string { return m.viewport.View() }

// Clear empties the document. Ages, artifacts and the typing latch are reset
// and the idle, zoom and auto-typing timers are canceled; aging keeps
// running.
func (m Model) Clear() (Model, tea.Cmd) {
	m.buf.Clear()
	clear(m.ages)
	clear(m.faded)
	m.artifacts.Clear()
	m.sched.Reset()
	m.burst = nil
	m.applyFrame()

	cmd := m.sched.Rearm(schedule.KindAging, m.cfg.AgingInterval)
	m.sync(true)
	return m, cmd
}

// Idle delivers an idle signal from the host: if the user has typed, the
// auto-typing burst starts right away instead of waiting for IdleDelay.
func (m Model) Idle() (Model, tea.Cmd) {
	if !m.sched.HasTyped() {
		return m, nil
	}
	m.sched.Cancel(schedule.KindIdle)
	cmd := m.startAutoType()
	return m, cmd
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case schedule.FireMsg:
		return m.updateTimer(msg)
	default:
		cmd := m.artifacts.Update(msg)
		// Spawns and expiries change the overlay only.
		if m.board != nil {
			m.rebuildContent()
		}
		// Rebuild content in case the host mutated the buffer outside of the editor.
		m.sync(false)
		return m, cmd
	}
}

// sync refreshes the view after a mutation and notifies the render sink. It
// does nothing when neither the buffer nor the cursor changed, unless force
// is set.
func (m *Model) sync(force bool) {
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if !force && ver == m.lastBufVersion && cur == m.lastCursor {
		return
	}
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.rebuildContent()
	m.followCursor()
	if m.cfg.OnRender != nil {
		m.cfg.OnRender(m.renderEvent())
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) applyFrame() {
	st := m.cfg.Style.Frame
	switch {
	case m.shaking:
		st = m.cfg.Style.Shake
	case m.scrollFlash:
		st = m.cfg.Style.ScrollChaos
	case m.sched.AutoTyping():
		st = m.cfg.Style.AutoTyping
	}
	m.viewport.Style = st
}

func (m *Model) followCursor() {
	if m.followColumn() {
		m.rebuildContent()
	}

	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row, _ := m.buf.LineCol(m.buf.Cursor())

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

// followColumn keeps the cursor cell inside the visible columns. It reports
// whether the horizontal offset moved.
func (m *Model) followColumn() bool {
	w := m.contentWidth() - m.zoomPad()
	if w <= 0 {
		return false
	}
	col := chaos.Locate(m.buf.Runes(), m.buf.Cursor()).Col

	x := m.xOffset
	switch {
	case col < x:
		x = col
	case col >= x+w:
		x = col - w + 1
	}
	if x == m.xOffset {
		return false
	}
	m.xOffset = x
	return true
}
