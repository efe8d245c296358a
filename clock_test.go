package overlay

import (
	"math"
	"testing"
)

func newTestClock() (*Clock, *manualTime) {
	tm := &manualTime{}
	return NewClock(tm), tm
}

func advance(c *Clock, tm *manualTime, ms int64) {
	tm.ms += ms
	c.Update()
}

func TestClockDelta(t *testing.T) {
	c, tm := newTestClock()
	advance(c, tm, 250)
	if c.Delta() != 0.25 {
		t.Errorf("expected delta 0.25, got %v", c.Delta())
	}
	if c.Now() != 250 {
		t.Errorf("expected now 250, got %d", c.Now())
	}
}

func TestOneShotTimerLatches(t *testing.T) {
	c, tm := newTestClock()
	timer := c.NewTimer(100)

	advance(c, tm, 50)
	if timer.Query() {
		t.Fatal("fired early")
	}
	advance(c, tm, 50)
	if !timer.Query() || !timer.Tick() {
		t.Fatal("expected the timer to fire at its period")
	}
	if timer.Running() {
		t.Error("a one-shot timer stops after firing")
	}

	advance(c, tm, 10)
	if !timer.Query() {
		t.Error("a fired one-shot keeps its signal")
	}
	if timer.Tick() {
		t.Error("the edge lasts one tick")
	}

	timer.Reset()
	advance(c, tm, 10)
	if timer.Query() {
		t.Error("reset should clear the signal")
	}
}

func TestPeriodicTimer(t *testing.T) {
	c, tm := newTestClock()
	timer := c.NewTimer(30, Periodic())

	var fired int
	for range 10 {
		advance(c, tm, 10)
		if timer.Tick() {
			fired++
		}
	}
	if fired != 3 {
		t.Errorf("expected 3 firings in 100ms, got %d", fired)
	}
	if !timer.Running() {
		t.Error("periodic timer should keep running")
	}
}

func TestStoppedTimerAndForce(t *testing.T) {
	c, tm := newTestClock()
	timer := c.NewTimer(1000, Stopped())

	advance(c, tm, 5000)
	if timer.Query() {
		t.Fatal("stopped timer fired")
	}
	if timer.Progress() != 1 {
		t.Errorf("expected progress 1 while stopped, got %v", timer.Progress())
	}

	timer.Force()
	advance(c, tm, 1)
	if !timer.Tick() {
		t.Error("expected forced firing")
	}
}

func TestTimerInitiallySetAndModifier(t *testing.T) {
	c, tm := newTestClock()
	timer := c.NewTimer(100, InitiallySet())
	if !timer.Query() {
		t.Error("expected raised signal before the first update")
	}

	timer.SetModifier(0.5)
	advance(c, tm, 20)
	if timer.Query() {
		t.Error("signal should drop on the first update")
	}
	if p := timer.Progress(); math.Abs(p-0.4) > 1e-9 {
		t.Errorf("expected progress 0.4, got %v", p)
	}
	advance(c, tm, 30)
	if !timer.Query() {
		t.Error("expected the halved period to elapse")
	}
}

func TestTimerCallbackAndRemove(t *testing.T) {
	c, tm := newTestClock()
	var calls int
	once := c.NewTimer(10, WithCallback(func() { calls++ }))
	advance(c, tm, 10)
	once.Reset()
	advance(c, tm, 10)
	if calls != 1 {
		t.Errorf("one-shot callback should run once, ran %d times", calls)
	}

	var ticks int
	rep := c.NewTimer(10, Periodic(), WithCallback(func() { ticks++ }))
	advance(c, tm, 10)
	advance(c, tm, 10)
	c.Remove(rep)
	advance(c, tm, 10)
	if ticks != 2 {
		t.Errorf("expected 2 periodic callbacks, got %d", ticks)
	}
}

func TestTimerTickReset(t *testing.T) {
	c, tm := newTestClock()
	timer := c.NewTimer(10)
	advance(c, tm, 10)
	if !timer.TickReset(40) {
		t.Fatal("expected edge")
	}
	if timer.Period() != 40 || !timer.Running() {
		t.Errorf("expected restart with period 40, got %d running=%v", timer.Period(), timer.Running())
	}
	advance(c, tm, 20)
	if timer.Query() {
		t.Error("fired before the new period")
	}
	advance(c, tm, 20)
	if !timer.Query() {
		t.Error("expected firing after the new period")
	}
}

func TestTimerDelay(t *testing.T) {
	c, tm := newTestClock()
	timer := c.NewTimer(10)
	timer.Delay(50)
	advance(c, tm, 40)
	if timer.Query() {
		t.Error("delayed timer fired early")
	}
	advance(c, tm, 20)
	if !timer.Query() {
		t.Error("expected delayed timer to fire")
	}
}

func TestSystemClockIsMonotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.Millis()
	b := c.Millis()
	if b < a {
		t.Errorf("expected monotonic time, got %d then %d", a, b)
	}
}

func TestFilter(t *testing.T) {
	f := NewFilter(0.5, 10)
	if got := f.Apply(20); got != 15 {
		t.Errorf("expected 15, got %v", got)
	}
	if got := f.Apply(15); got != 15 {
		t.Errorf("expected 15, got %v", got)
	}
	if f.Value() != 15 {
		t.Errorf("expected value 15, got %v", f.Value())
	}
}
