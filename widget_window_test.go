package overlay

import "testing"

func newTestWindow(r *rig, opts ...Option) (*FloatingWindow, *Label) {
	w := NewFloatingWindow(r.ui, Rect{X: 100, Y: 100, W: 200, H: 150}, DefaultTheme().Window, "Debug", opts...)
	l := NewLabel(w.Group(), Vec2{X: 10, Y: 10}, 0xffffffff, "child")
	return w, l
}

func TestWindowGeometry(t *testing.T) {
	r := newRig(t)
	w, l := newTestWindow(r)

	if h := w.Header(); h != (Rect{X: 100, Y: 60, W: 200, H: HeaderHeight}) {
		t.Errorf("unexpected header %v", h)
	}
	if b := w.Bounds(); b != (Rect{X: 100, Y: 60, W: 200, H: 190}) {
		t.Errorf("unexpected bounds %v", b)
	}
	if cb := w.CloseBox(); cb != (Rect{X: 268, Y: 68, W: 24, H: 24}) {
		t.Errorf("unexpected close box %v", cb)
	}
	if p := l.Rect().Pos(); p != (Vec2{X: 110, Y: 110}) {
		t.Errorf("expected child anchored to the body, got %v", p)
	}
	if p := w.Title().Rect().Pos(); p != (Vec2{X: 108, Y: 68}) {
		t.Errorf("expected title in the header, got %v", p)
	}
	if w.Visible() {
		t.Error("a window starts hidden")
	}
}

func TestWindowShowHide(t *testing.T) {
	r := newRig(t)
	w, _ := newTestWindow(r, Active())
	if !w.Visible() || !r.ui.IsActive(w) {
		t.Fatal("expected Active to show the window")
	}
	w.Hide()
	if w.Visible() {
		t.Error("expected hidden")
	}
	w.Show()
	if !w.Visible() {
		t.Error("expected visible")
	}
}

func TestWindowDragMovesChildren(t *testing.T) {
	r := newRig(t)
	w, l := newTestWindow(r, Active())

	r.moveTo(150, 80)
	r.press(150, 80)
	if !w.Held() || !r.ui.IsFocused(w) {
		t.Fatal("expected a header press to hold and focus the window")
	}
	if w.Layer() != -1 || w.Group().Layer() != -1 {
		t.Errorf("a focused window floats, got %d / %d", w.Layer(), w.Group().Layer())
	}

	r.dev.pointer = Vec2{X: 170, Y: 100}
	r.step()
	if o := w.Origin(); o != (Vec2{X: 120, Y: 120}) {
		t.Errorf("expected body at (120, 120), got %v", o)
	}
	if p := l.Rect().Pos(); p != (Vec2{X: 130, Y: 130}) {
		t.Errorf("expected child to follow, got %v", p)
	}
	if h := w.Header(); h.Y != 80 {
		t.Errorf("expected header to follow, got %v", h)
	}

	r.release()
	if w.Held() {
		t.Error("release should end the drag")
	}
	r.moveTo(300, 300)
	if o := w.Origin(); o != (Vec2{X: 120, Y: 120}) {
		t.Errorf("window moved without a drag: %v", o)
	}

	r.press(200, 90)
	r.dev.pointer = Vec2{X: 190, Y: 90}
	r.step()
	if o := w.Origin(); o != (Vec2{X: 110, Y: 120}) {
		t.Errorf("expected a second drag from the new spot, got %v", o)
	}
}

func TestWindowCloseBox(t *testing.T) {
	r := newRig(t)
	w, _ := newTestWindow(r, Active())
	x, y := w.CloseBox().Point(AlignCenter).X, w.CloseBox().Point(AlignCenter).Y

	r.moveTo(x, y)
	r.press(x, y)
	if w.Visible() || r.ui.HasFocus() || w.Held() {
		t.Error("close box should hide the window and drop focus")
	}

	c := &recordCanvas{}
	r.ui.Render(c)
	if len(c.ops) != 0 {
		t.Error("hidden window was rendered")
	}
}

func TestWindowClickOutsideReleases(t *testing.T) {
	r := newRig(t)
	w, _ := newTestWindow(r, Active())
	g := r.ui.NewGroup(0)
	b := NewButton(g, Vec2{X: 10, Y: 400}, Swatch{}, "Behind")
	r.ui.Activate(g)

	r.click(200, 150)
	if !r.ui.IsFocused(w) {
		t.Fatal("a body click should focus the window")
	}

	bx, by := center(b)
	r.press(bx, by)
	if r.ui.IsFocused(w) {
		t.Error("a click outside should release the window")
	}
	if !b.Pressed() {
		t.Error("the outside click should reach the widget below")
	}
}

func TestWindowChildrenGetInput(t *testing.T) {
	r := newRig(t)
	w := NewFloatingWindow(r.ui, Rect{X: 100, Y: 100, W: 200, H: 150}, DefaultTheme().Window, "Debug", Active())
	f := NewFlipSwitch(w.Group(), Vec2{X: 10, Y: 10}, DefaultTheme().Control, "Fog", false)
	x, y := center(f)

	r.press(x, y)
	if !f.On() {
		t.Error("expected the child switch to toggle")
	}
	if !r.ui.IsFocused(w) {
		t.Error("a body click should also focus the window")
	}
	r.release()

	// Focused: input now goes through the window.
	r.press(x, y)
	if f.On() {
		t.Error("expected the child switch to toggle back")
	}
	r.release()

	w.Hide()
	r.press(x, y)
	if f.On() {
		t.Error("a hidden window's children must not get input")
	}
}

func TestWindowRenderOrder(t *testing.T) {
	r := newRig(t)
	w, _ := newTestWindow(r, Active())

	c := &recordCanvas{}
	r.ui.Render(c)
	if len(c.ops) < 5 {
		t.Fatalf("expected frame, body, close box and children, got %d ops", len(c.ops))
	}
	if !c.ops[0].fill || c.ops[0].rect != w.Bounds() {
		t.Errorf("expected the frame first, got %+v", c.ops[0])
	}
	if c.ops[2].rect != w.CloseBox() {
		t.Errorf("expected the close box third, got %+v", c.ops[2])
	}
	texts := c.texts()
	if len(texts) != 2 || texts[0] != "Debug" || texts[1] != "child" {
		t.Errorf("expected title then child, got %v", texts)
	}
}
