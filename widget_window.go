package overlay

// Window chrome in pixels.
const (
	HeaderHeight = 40
	WindowGap    = 8
)

// FloatingWindow is a draggable panel that carries its own group of
// child widgets. Children are positioned relative to the top-left of
// the body; the header strip sits above it.
//
// Click the window to bring it to the front and give it focus, drag the
// header to move it, and press the close box to deactivate it. A click
// outside releases focus and the click goes on to whatever is there.
type FloatingWindow struct {
	Base
	carrier
	style WindowStyle
	title *Label

	held       bool
	closeHover bool
	home       Vec2 // body position when the current drag started
}

// NewFloatingWindow creates a window whose body covers rect. The window
// starts inactive unless Active is passed; open it with Show.
func NewFloatingWindow(gui *GUI, rect Rect, style WindowStyle, title string, opts ...Option) *FloatingWindow {
	o := applyOptions(opts)
	w := &FloatingWindow{style: style}
	w.setup(gui, nil, KindWindow, rect, o)
	w.home = w.pos
	w.carrier = newCarrier(gui, w, w.layer)
	w.title = NewLabel(w.children, Vec2{X: WindowGap, Y: WindowGap - HeaderHeight}, style.Title, title)
	if GetOpt(o, OptActive) {
		w.Show()
	}
	return w
}

// Group returns the group of child widgets.
func (w *FloatingWindow) Group() *Group { return w.children }

// Origin returns the top-left of the body.
func (w *FloatingWindow) Origin() Vec2 { return w.rect.Pos() }

// Title returns the header label.
func (w *FloatingWindow) Title() *Label { return w.title }

// Header returns the strip above the body.
func (w *FloatingWindow) Header() Rect {
	return Rect{X: w.rect.X, Y: w.rect.Y - HeaderHeight, W: w.rect.W, H: HeaderHeight}
}

// CloseBox returns the close button inside the header.
func (w *FloatingWindow) CloseBox() Rect {
	side := float32(HeaderHeight - 2*WindowGap)
	h := w.Header()
	return Rect{X: h.X + h.W - WindowGap - side, Y: h.Y + WindowGap, W: side, H: side}
}

// Bounds returns header and body together.
func (w *FloatingWindow) Bounds() Rect {
	h := w.Header()
	return Rect{X: h.X, Y: h.Y, W: w.rect.W, H: w.rect.H + HeaderHeight}
}

// Held reports whether the header is being dragged.
func (w *FloatingWindow) Held() bool { return w.held }

// Show activates the window's group.
func (w *FloatingWindow) Show() { w.gui.Activate(w.children) }

// Hide releases focus and deactivates the window's group.
func (w *FloatingWindow) Hide() {
	w.held = false
	w.gui.Release(w, nil)
	w.gui.Deactivate(w.children)
}

// Visible reports whether the window's group is active.
func (w *FloatingWindow) Visible() bool { return w.gui.IsActive(w) }

// Layer is -1 while the window holds focus.
func (w *FloatingWindow) Layer() int {
	if w.gui.IsFocused(w) {
		return -1
	}
	return w.layer
}

// move places the body at pos and re-anchors the children.
func (w *FloatingWindow) move(pos Vec2) {
	w.SetPosition(pos)
	w.resnap(w.Origin())
}

// HandleInput feeds the children, then handles the title bar and focus.
func (w *FloatingWindow) HandleInput(in *InputSnapshot) {
	if !w.begin(in) {
		return
	}
	w.children.dispatch(in)

	click := in.Pressed(MouseButtonLeft)
	w.closeHover = w.CloseBox().Contains(in.Pointer())
	if w.closeHover && click {
		w.Hide()
		return
	}

	headerPressed := click && w.Header().Contains(in.Pointer())
	if headerPressed {
		w.held = true
	}
	if !in.Held(MouseButtonLeft) {
		w.held = false
	}
	if w.held {
		w.move(w.home.Sub(in.Drag()))
	} else {
		w.home = w.pos
	}

	w.pressed = w.pressed || headerPressed
	w.pressedElsewhere = !w.pressed && click
	switch {
	case w.pressed:
		w.gui.Focus(w, true)
	case w.pressedElsewhere:
		w.gui.Release(w, in)
	}
}

// Render draws the window chrome and then its children.
func (w *FloatingWindow) Render(c Canvas) {
	focused := w.gui.IsFocused(w)
	c.FillRect(w.Bounds(), w.style.Frame.Pick(focused))
	body := w.rect
	c.FillRect(Rect{X: body.X + WindowGap, Y: body.Y, W: body.W - 2*WindowGap, H: body.H - WindowGap}, w.style.Body)
	c.FillRect(w.CloseBox(), w.style.Close.Pick(w.closeHover))
	w.children.paint(c)
}
