package schedule

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type floatRand struct{ v float64 }

func (r floatRand) IntN(int) int      { return 0 }
func (r floatRand) Float64() float64 { return r.v }

func fire(t *testing.T, cmd tea.Cmd) FireMsg {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	msg, ok := cmd().(FireMsg)
	if !ok {
		t.Fatalf("expected FireMsg")
	}
	return msg
}

func TestCoordinator_RearmSupersedesPending(t *testing.T) {
	c := New(Config{})

	first := fire(t, c.Rearm(KindZoom, time.Millisecond))
	second := fire(t, c.Rearm(KindZoom, time.Millisecond))

	if c.Fire(first) {
		t.Fatalf("superseded fire must be dropped")
	}
	if !c.Fire(second) {
		t.Fatalf("current fire must be accepted")
	}
	if c.Fire(second) {
		t.Fatalf("a fire must only be accepted once")
	}
	if c.Live(KindZoom) {
		t.Fatalf("slot must be idle after its timer fired")
	}
}

func TestCoordinator_SlotsAreIndependent(t *testing.T) {
	c := New(Config{})

	zoom := fire(t, c.Rearm(KindZoom, time.Millisecond))
	aging := fire(t, c.Rearm(KindAging, time.Millisecond))
	c.Rearm(KindIdle, time.Hour)

	if !c.Fire(zoom) || !c.Fire(aging) {
		t.Fatalf("arming one kind must not cancel another")
	}
	if !c.Live(KindIdle) {
		t.Fatalf("idle slot must still be live")
	}
}

func TestCoordinator_CancelAndForeignMessages(t *testing.T) {
	c := New(Config{})
	other := New(Config{})

	msg := fire(t, c.Rearm(KindAging, time.Millisecond))
	if other.Fire(msg) {
		t.Fatalf("a coordinator must ignore another's messages")
	}

	c.Cancel(KindAging)
	if c.Fire(msg) {
		t.Fatalf("canceled fire must be dropped")
	}
	if c.Fire(FireMsg{ID: c.ID(), Kind: numKinds}) {
		t.Fatalf("unknown kind must be dropped")
	}
}

func TestCoordinator_CloseStopsEverything(t *testing.T) {
	c := New(Config{})
	c.Input()
	msg := fire(t, c.Rearm(KindAging, time.Millisecond))

	c.Close()
	if c.Fire(msg) {
		t.Fatalf("nothing may fire after Close")
	}
	if cmd := c.Rearm(KindAging, time.Millisecond); cmd != nil {
		t.Fatalf("Rearm after Close must return nil")
	}
	if c.BeginAutoType() {
		t.Fatalf("auto-typing must not start after Close")
	}
	for k := Kind(0); k < numKinds; k++ {
		if c.Live(k) {
			t.Fatalf("slot %v still live after Close", k)
		}
	}
}

func TestCoordinator_IdleArmsOnlyAfterFirstInput(t *testing.T) {
	c := New(Config{})

	if cmd := c.Touch(); cmd != nil {
		t.Fatalf("idle must not arm before the first input")
	}
	if c.Live(KindIdle) {
		t.Fatalf("idle slot must be empty")
	}

	c.Input()
	if cmd := c.Touch(); cmd == nil || !c.Live(KindIdle) {
		t.Fatalf("idle must arm after input")
	}

	c.Reset()
	if c.HasTyped() || c.Live(KindIdle) {
		t.Fatalf("reset must clear the latch and the idle timer")
	}
	if cmd := c.Touch(); cmd != nil {
		t.Fatalf("idle must not arm after reset until new input")
	}
}

func TestCoordinator_KeyDownPreemptsAutoTyping(t *testing.T) {
	c := New(Config{})
	c.Input()

	if c.KeyDown() {
		t.Fatalf("no burst is running yet")
	}
	if !c.BeginAutoType() {
		t.Fatalf("expected burst to start")
	}
	if c.BeginAutoType() {
		t.Fatalf("a second burst must not start")
	}
	if c.Touch() != nil || c.Live(KindIdle) {
		t.Fatalf("idle must stay disarmed while auto-typing")
	}

	step := fire(t, c.Rearm(KindAutoTypeStep, time.Millisecond))
	if !c.KeyDown() {
		t.Fatalf("keydown must interrupt the burst")
	}
	if c.AutoTyping() {
		t.Fatalf("auto-typing flag must be cleared")
	}
	if c.Fire(step) {
		t.Fatalf("pending word must be discarded")
	}
	if cmd := c.Touch(); cmd == nil {
		t.Fatalf("idle must re-arm once the burst is over")
	}
}

func TestCoordinator_ActivityArmsIdleAndZoom(t *testing.T) {
	c := New(Config{})
	c.Input()

	if cmd := c.Activity(); cmd == nil {
		t.Fatalf("expected commands")
	}
	if !c.Live(KindIdle) || !c.Live(KindZoom) {
		t.Fatalf("idle=%v zoom=%v, want both armed", c.Live(KindIdle), c.Live(KindZoom))
	}

	c.Reset()
	if c.Live(KindZoom) {
		t.Fatalf("reset must cancel zoom")
	}
}

func TestCoordinator_ResetKeepsAging(t *testing.T) {
	c := New(Config{})
	msg := fire(t, c.Rearm(KindAging, time.Millisecond))

	c.Reset()
	if !c.Fire(msg) {
		t.Fatalf("aging must survive a reset")
	}
}

func TestCoordinator_ZoomCooldown(t *testing.T) {
	c := New(Config{ZoomDelay: 3 * time.Second})
	t0 := time.Unix(1000, 0)

	if !c.ZoomDue(t0) {
		t.Fatalf("first zoom must apply")
	}
	if c.ZoomDue(t0.Add(3 * time.Second)) {
		t.Fatalf("zoom at exactly the cooldown must not apply")
	}
	if !c.ZoomDue(t0.Add(3*time.Second + time.Millisecond)) {
		t.Fatalf("zoom past the cooldown must apply")
	}
	if c.ZoomDue(t0.Add(4 * time.Second)) {
		t.Fatalf("cooldown restarts from the last applied zoom")
	}
}

func TestCoordinator_ScrollInvertsOneEvent(t *testing.T) {
	c := New(Config{ScrollChaosChance: 0.15})

	if d, inv := c.Scroll(3, floatRand{v: 0.5}); d != 3 || inv {
		t.Fatalf("scroll=(%d,%v), want (3,false)", d, inv)
	}
	if d, inv := c.Scroll(3, floatRand{v: 0.1}); d != -3 || !inv {
		t.Fatalf("scroll=(%d,%v), want (-3,true)", d, inv)
	}
	if d, inv := c.Scroll(-2, floatRand{v: 0.5}); d != -2 || inv {
		t.Fatalf("inversion must not persist: (%d,%v)", d, inv)
	}
}

func TestKind_String(t *testing.T) {
	if KindIdle.String() != "idle" || KindShake.String() != "shake" || numKinds.String() != "unknown" {
		t.Fatalf("unexpected kind names")
	}
}
