// Package schedule coordinates the timer-driven behaviors of an editing
// session on top of Bubble Tea's message loop.
//
// Every behavior owns one slot. A slot holds at most one live timer: arming a
// slot supersedes whatever it held before, and a fire message only counts if
// it carries the slot's current generation. Since Update runs one message at
// a time, no locking is involved.
package schedule

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mischief/chaos"
)

// Kind names a timer slot.
type Kind uint8

const (
	// KindIdle fires after a quiet period and starts auto-typing.
	KindIdle Kind = iota
	// KindAutoTypeStep paces the words of a running auto-typing burst.
	KindAutoTypeStep
	// KindZoom fires after typing settles and may change the zoom.
	KindZoom
	// KindAging drives the periodic aging sweep.
	KindAging
	// KindScrollChaos ends the cue shown after an inverted scroll.
	KindScrollChaos
	// KindShake ends the cue shown after a no-op deletion.
	KindShake

	numKinds
)

func (k Kind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindAutoTypeStep:
		return "autotype-step"
	case KindZoom:
		return "zoom"
	case KindAging:
		return "aging"
	case KindScrollChaos:
		return "scroll-chaos"
	case KindShake:
		return "shake"
	default:
		return "unknown"
	}
}

// FireMsg is delivered to Update when a timer elapses. Pass it to Fire to
// learn whether it is still current.
type FireMsg struct {
	ID   int
	Kind Kind
	Gen  uint64
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

type slot struct {
	gen  uint64
	live bool
}

// Config holds the delays and odds used by a Coordinator. Zero fields take
// the defaults below.
type Config struct {
	IdleDelay         time.Duration
	ZoomDelay         time.Duration
	ScrollChaosChance float64
}

const (
	DefaultIdleDelay         = 5 * time.Second
	DefaultZoomDelay         = 3 * time.Second
	DefaultScrollChaosChance = 0.15
)

// Coordinator owns the timer slots of one session, together with the small
// amount of state the timed behaviors share.
type Coordinator struct {
	id     int
	cfg    Config
	slots  [numKinds]slot
	closed bool

	hasTyped   bool
	autoTyping bool

	lastZoom time.Time

	invertNext bool
}

// New returns a Coordinator with no timers armed.
func New(cfg Config) *Coordinator {
	if cfg.IdleDelay <= 0 {
		cfg.IdleDelay = DefaultIdleDelay
	}
	if cfg.ZoomDelay <= 0 {
		cfg.ZoomDelay = DefaultZoomDelay
	}
	if cfg.ScrollChaosChance < 0 {
		cfg.ScrollChaosChance = 0
	}
	if cfg.ScrollChaosChance > 1 {
		cfg.ScrollChaosChance = 1
	}
	return &Coordinator{id: nextID(), cfg: cfg}
}

// ID returns the coordinator's identity, carried by its fire messages.
func (c *Coordinator) ID() int { return c.id }

// Rearm cancels the pending timer of kind, if any, and schedules a new one
// that fires after d. It returns nil once the coordinator is closed.
func (c *Coordinator) Rearm(kind Kind, d time.Duration) tea.Cmd {
	if c.closed || kind >= numKinds {
		return nil
	}
	s := &c.slots[kind]
	s.gen++
	s.live = true

	msg := FireMsg{ID: c.id, Kind: kind, Gen: s.gen}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// Cancel drops the pending timer of kind. Its message, if it still arrives,
// is ignored by Fire.
func (c *Coordinator) Cancel(kind Kind) {
	if kind >= numKinds {
		return
	}
	s := &c.slots[kind]
	s.gen++
	s.live = false
}

// Live reports whether kind has a pending timer.
func (c *Coordinator) Live(kind Kind) bool {
	if kind >= numKinds {
		return false
	}
	return c.slots[kind].live
}

// Fire reports whether msg is the current timer of its slot and, if so,
// consumes it. Superseded, canceled and foreign messages report false.
func (c *Coordinator) Fire(msg FireMsg) bool {
	if c.closed || msg.ID != c.id || msg.Kind >= numKinds {
		return false
	}
	s := &c.slots[msg.Kind]
	if !s.live || s.gen != msg.Gen {
		return false
	}
	s.live = false
	return true
}

// Close cancels every timer. Afterwards Rearm returns nil and Fire rejects
// everything.
func (c *Coordinator) Close() {
	for k := Kind(0); k < numKinds; k++ {
		c.Cancel(k)
	}
	c.autoTyping = false
	c.closed = true
}

// Closed reports whether Close was called.
func (c *Coordinator) Closed() bool { return c.closed }

// Input records real user input. The first call arms the idle behavior for
// the rest of the session, until Reset.
func (c *Coordinator) Input() { c.hasTyped = true }

// HasTyped reports whether real input has been seen since the last Reset.
func (c *Coordinator) HasTyped() bool { return c.hasTyped }

// KeyDown preempts a running auto-typing burst: the pending word is canceled
// and the burst ends. It reports whether a burst was interrupted.
func (c *Coordinator) KeyDown() bool {
	if !c.autoTyping {
		return false
	}
	c.autoTyping = false
	c.Cancel(KindAutoTypeStep)
	return true
}

// Touch debounces the idle timer. The timer is only armed after the first
// real input and never while auto-typing.
func (c *Coordinator) Touch() tea.Cmd {
	c.Cancel(KindIdle)
	if !c.hasTyped || c.autoTyping {
		return nil
	}
	return c.Rearm(KindIdle, c.cfg.IdleDelay)
}

// Activity debounces the idle and zoom timers after an input event.
func (c *Coordinator) Activity() tea.Cmd {
	return tea.Batch(c.Touch(), c.Rearm(KindZoom, c.cfg.ZoomDelay))
}

// BeginAutoType marks a burst as running. It reports false when one already
// is.
func (c *Coordinator) BeginAutoType() bool {
	if c.autoTyping || c.closed {
		return false
	}
	c.autoTyping = true
	c.Cancel(KindIdle)
	return true
}

// EndAutoType marks the running burst as finished.
func (c *Coordinator) EndAutoType() {
	c.autoTyping = false
	c.Cancel(KindAutoTypeStep)
}

// AutoTyping reports whether a burst is running.
func (c *Coordinator) AutoTyping() bool { return c.autoTyping }

// Reset returns the session to its untyped state after a clear. The idle,
// step and zoom timers are canceled; aging keeps running.
func (c *Coordinator) Reset() {
	c.hasTyped = false
	c.autoTyping = false
	c.Cancel(KindIdle)
	c.Cancel(KindAutoTypeStep)
	c.Cancel(KindZoom)
}

// ZoomDue reports whether more than the zoom delay has passed since the last
// applied zoom. When it has, now becomes the last applied zoom.
func (c *Coordinator) ZoomDue(now time.Time) bool {
	if !c.lastZoom.IsZero() && now.Sub(c.lastZoom) <= c.cfg.ZoomDelay {
		return false
	}
	c.lastZoom = now
	return true
}

// Scroll filters one scroll event. With ScrollChaosChance odds, and only if
// no inversion is pending, it arms a one-shot inversion; a pending inversion
// is then consumed by this same event. It returns the delta to apply and
// whether it was inverted.
func (c *Coordinator) Scroll(delta int, rng chaos.Rand) (int, bool) {
	if !c.invertNext && rng.Float64() < c.cfg.ScrollChaosChance {
		c.invertNext = true
	}
	if !c.invertNext {
		return delta, false
	}
	c.invertNext = false
	return -delta, true
}
