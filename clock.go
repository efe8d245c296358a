package overlay

import (
	"slices"
	"time"
)

// TimeSource is a monotonic millisecond counter.
type TimeSource interface {
	Millis() int64
}

// SystemClock is a TimeSource backed by the runtime's monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts counting from now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Millis returns the milliseconds elapsed since NewSystemClock.
func (c *SystemClock) Millis() int64 {
	return time.Since(c.start).Milliseconds()
}

// Clock samples a TimeSource once per tick and advances its timers.
type Clock struct {
	src    TimeSource
	now    int64
	dt     float64
	timers []*Timer
}

// NewClock creates a clock reading from src.
func NewClock(src TimeSource) *Clock {
	return &Clock{src: src, now: src.Millis()}
}

// Update samples the source, computes the frame delta and advances every
// timer. Call it once at the start of each tick.
func (c *Clock) Update() {
	now := c.src.Millis()
	c.dt = float64(now-c.now) / 1000
	c.now = now
	for _, t := range slices.Clone(c.timers) {
		t.update()
	}
}

// Now returns the time of the current tick in milliseconds.
func (c *Clock) Now() int64 { return c.now }

// Delta returns the duration of the last tick in seconds.
func (c *Clock) Delta() float64 { return c.dt }

// Remove detaches a timer. It stops receiving updates.
func (c *Clock) Remove(t *Timer) {
	c.timers = slices.DeleteFunc(c.timers, func(x *Timer) bool { return x == t })
}

// TimerOption configures a Timer.
type TimerOption func(*Timer)

// Periodic makes the timer re-arm itself every time it fires.
func Periodic() TimerOption {
	return func(t *Timer) { t.periodic = true }
}

// Stopped creates the timer without starting it.
func Stopped() TimerOption {
	return func(t *Timer) { t.running = false }
}

// InitiallySet starts the timer with its signal raised.
func InitiallySet() TimerOption {
	return func(t *Timer) { t.signal[0] = true }
}

// WithCallback runs fn every time the timer fires. A one-shot timer
// drops the callback after running it.
func WithCallback(fn func()) TimerOption {
	return func(t *Timer) { t.fn = fn }
}

// Timer fires after a period of clock time. Its signal is sampled on
// Clock.Update, so every reader within one tick sees the same value.
//
// A one-shot timer that has fired keeps its signal raised and does
// nothing more until it is reset.
type Timer struct {
	clock    *Clock
	period   int64
	periodic bool
	running  bool
	forced   bool
	mark     int64
	modifier float64
	signal   [2]bool // current, previous
	fn       func()
}

// NewTimer creates a timer attached to the clock.
func (c *Clock) NewTimer(period int64, opts ...TimerOption) *Timer {
	t := &Timer{
		clock:    c,
		period:   period,
		running:  true,
		modifier: 1,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.mark = c.now
	if !t.running {
		t.mark = c.now - period
	}
	c.timers = append(c.timers, t)
	return t
}

func (t *Timer) update() {
	t.signal[1] = t.signal[0]
	if !t.running {
		return
	}
	t.signal[0] = false
	if !t.forced && float64(t.clock.now-t.mark) < float64(t.period)*t.modifier {
		return
	}
	t.forced = false
	t.signal[0] = true
	t.running = t.periodic
	t.mark = t.clock.now
	if t.fn != nil {
		fn := t.fn
		if !t.periodic {
			t.fn = nil
		}
		fn()
	}
}

// Period returns the current period in milliseconds.
func (t *Timer) Period() int64 { return t.period }

// Running reports whether the timer is counting.
func (t *Timer) Running() bool { return t.running }

// Force makes the timer fire on the next update.
func (t *Timer) Force() {
	t.running = true
	t.forced = true
}

// Reset restarts the countdown from the current tick.
func (t *Timer) Reset() {
	t.mark = t.clock.now
	t.running = true
	t.forced = false
}

// ResetPeriod restarts the countdown with a new period.
func (t *Timer) ResetPeriod(period int64) {
	t.period = period
	t.Reset()
}

// Delay pushes the start of the countdown ms into the future.
func (t *Timer) Delay(ms int64) {
	t.mark = t.clock.now + ms
}

// Stop halts the timer without firing.
func (t *Timer) Stop() {
	t.running = false
	t.forced = false
}

// SetModifier scales the period, e.g. 0.5 fires twice as fast.
func (t *Timer) SetModifier(m float64) {
	if m > 0 {
		t.modifier = m
	}
}

// Query returns the signal of the current tick.
func (t *Timer) Query() bool {
	return t.signal[0]
}

// QueryReset is Query, restarting the timer with period when it is set.
func (t *Timer) QueryReset(period int64) bool {
	if t.signal[0] {
		t.ResetPeriod(period)
	}
	return t.signal[0]
}

// Tick returns true only on the tick the signal rose.
func (t *Timer) Tick() bool {
	return t.signal[0] && !t.signal[1]
}

// TickReset is Tick, restarting the timer with period on the edge.
func (t *Timer) TickReset(period int64) bool {
	edge := t.Tick()
	if edge {
		t.ResetPeriod(period)
	}
	return edge
}

// OnFire arms a callback if none is set and restarts the countdown.
func (t *Timer) OnFire(fn func()) {
	if t.fn == nil {
		t.fn = fn
		t.Reset()
	}
}

// RawProgress is the elapsed fraction of the period. It exceeds 1 when
// the timer is overdue.
func (t *Timer) RawProgress() float64 {
	span := float64(t.period) * t.modifier
	if span <= 0 {
		return 1
	}
	return float64(t.clock.now-t.mark) / span
}

// Progress is RawProgress while running, and 1 once stopped.
func (t *Timer) Progress() float64 {
	if !t.running {
		return 1
	}
	return t.RawProgress()
}
