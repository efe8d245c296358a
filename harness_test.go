package overlay

import (
	"io"
	"log/slog"
	"testing"
)

// manualTime is a TimeSource the test advances by hand.
type manualTime struct{ ms int64 }

func (m *manualTime) Millis() int64 { return m.ms }

// fakeDevice is a scriptable input Device.
type fakeDevice struct {
	pointer Vec2
	buttons [MouseButtonCount]bool
	keys    map[Key]bool
	events  []DeviceEvent
}

func (d *fakeDevice) Pointer() Vec2                   { return d.pointer }
func (d *fakeDevice) Buttons() [MouseButtonCount]bool { return d.buttons }
func (d *fakeDevice) KeyHeld(k Key) bool              { return d.keys[k] }

func (d *fakeDevice) Drain() []DeviceEvent {
	out := d.events
	d.events = nil
	return out
}

// rig drives a GUI one tick at a time.
type rig struct {
	t       *testing.T
	ui      *GUI
	time    *manualTime
	clock   *Clock
	tracker *InputTracker
	dev     *fakeDevice
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRig(t *testing.T, opts ...GUIOption) *rig {
	t.Helper()
	tm := &manualTime{}
	clock := NewClock(tm)
	return &rig{
		t:       t,
		ui:      New(append([]GUIOption{WithLogger(quietLogger())}, opts...)...),
		time:    tm,
		clock:   clock,
		tracker: NewInputTracker(clock),
		dev:     &fakeDevice{keys: make(map[Key]bool)},
	}
}

// snapshot advances time by 16ms and samples the device without
// dispatching.
func (r *rig) snapshot() *InputSnapshot {
	r.time.ms += 16
	r.clock.Update()
	return r.tracker.Update(r.dev)
}

// step runs one full tick through the GUI.
func (r *rig) step() *InputSnapshot {
	in := r.snapshot()
	r.ui.HandleInput(in)
	return in
}

func (r *rig) moveTo(x, y float32) *InputSnapshot {
	r.dev.pointer = Vec2{X: x, Y: y}
	return r.step()
}

// press moves to (x, y) and puts the left button down.
func (r *rig) press(x, y float32) *InputSnapshot {
	r.dev.pointer = Vec2{X: x, Y: y}
	r.dev.buttons[MouseButtonLeft] = true
	return r.step()
}

func (r *rig) release() *InputSnapshot {
	r.dev.buttons[MouseButtonLeft] = false
	return r.step()
}

// click presses and releases at (x, y) over two ticks.
func (r *rig) click(x, y float32) {
	r.press(x, y)
	r.release()
}

func (r *rig) scroll(n int) *InputSnapshot {
	r.dev.events = append(r.dev.events, DeviceEvent{Kind: EventScroll, Scroll: n})
	return r.step()
}

// typeText feeds one character per tick.
func (r *rig) typeText(s string) {
	for _, c := range s {
		r.dev.events = append(r.dev.events, DeviceEvent{Kind: EventKeyDown, Char: c})
		r.step()
	}
}

func (r *rig) key(k Key) *InputSnapshot {
	r.dev.events = append(r.dev.events, DeviceEvent{Kind: EventKeyDown, Key: k})
	return r.step()
}

// center returns the middle of a widget's rectangle.
func center(w Widget) (x, y float32) {
	p := w.Rect().Point(AlignCenter)
	return p.X, p.Y
}

// drawOp is one recorded canvas call.
type drawOp struct {
	fill  bool
	rect  Rect
	text  string
	color uint32
}

// recordCanvas is a Canvas that remembers what was drawn.
type recordCanvas struct {
	MonoMetrics
	ops []drawOp
}

func (c *recordCanvas) FillRect(r Rect, color uint32) {
	c.ops = append(c.ops, drawOp{fill: true, rect: r, color: color})
}

func (c *recordCanvas) DrawText(s string, size int, bold bool, color uint32, at Vec2, align Align) Rect {
	r := Rect{}.Resized(c.MeasureText(s, size, bold)).Aligned(align, at)
	c.ops = append(c.ops, drawOp{rect: r, text: s, color: color})
	return r
}

func (c *recordCanvas) texts() []string {
	var out []string
	for _, op := range c.ops {
		if !op.fill {
			out = append(out, op.text)
		}
	}
	return out
}
