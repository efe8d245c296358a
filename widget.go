package overlay

// Item is anything the GUI can activate, focus or dispatch input to:
// a *Group or a Widget.
type Item interface {
	HandleInput(in *InputSnapshot)
	Layer() int
	seq() uint64
}

// Widget is one of the built-in widget kinds. The set is closed; every
// implementation embeds Base.
//
// Each tick a widget sees HandleInput and then Render. Render paints
// from the state HandleInput left behind; text widgets may resize their
// rectangle to fit the measured text.
type Widget interface {
	Item
	ID() WidgetID
	Kind() Kind
	Rect() Rect
	Render(c Canvas)
	base() *Base
}

// Base holds what all widgets share: identity, geometry, layer and the
// per-tick pointer flags.
type Base struct {
	id    WidgetID
	order uint64
	gui   *GUI
	group *Group

	rect   Rect
	layer  int
	align  Align
	pos    Vec2 // relative to anchor
	anchor Vec2

	hovered          bool
	entered          bool
	exited           bool
	pressed          bool
	pressedElsewhere bool
	lastHovered      bool

	seen uint64 // last tick handled
}

func (b *Base) setup(gui *GUI, group *Group, k Kind, r Rect, o options) {
	b.id = nextWidgetID(k)
	b.order = nextSeq()
	b.gui = gui
	b.group = group
	b.rect = r
	b.pos = r.Pos()
	b.align = GetOpt(o, OptAlign)
	switch {
	case HasOpt(o, OptLayer):
		b.layer = GetOpt(o, OptLayer)
	case group != nil:
		b.layer = group.layer
	default:
		b.layer = 1
	}
	if group != nil && group.host != nil {
		b.anchor = group.host.Origin()
	}
	b.snap()
}

func (b *Base) base() *Base  { return b }
func (b *Base) seq() uint64  { return b.order }
func (b *Base) ID() WidgetID { return b.id }
func (b *Base) Kind() Kind   { return b.id.Kind }
func (b *Base) Rect() Rect   { return b.rect }

// Layer returns the configured layer. Kinds that float while open or
// focused report -1 instead.
func (b *Base) Layer() int { return b.layer }

// Group returns the owning group, nil for a floating window.
func (b *Base) Group() *Group { return b.group }

// Position returns the position relative to the anchor.
func (b *Base) Position() Vec2 { return b.pos }

// Anchor returns the origin the position is relative to.
func (b *Base) Anchor() Vec2 { return b.anchor }

// SetPosition moves the widget's align point to pos, relative to its
// anchor.
func (b *Base) SetPosition(pos Vec2) {
	b.pos = pos
	b.snap()
}

// SetAlign changes which rectangle point tracks the position.
func (b *Base) SetAlign(a Align) {
	b.align = a
	b.snap()
}

func (b *Base) setAnchor(anchor Vec2) {
	b.anchor = anchor
	b.snap()
}

// Hovered reports whether the pointer is over the widget this tick.
func (b *Base) Hovered() bool { return b.hovered }

// Entered is true on the tick the pointer moved onto the widget.
func (b *Base) Entered() bool { return b.entered }

// Exited is true on the tick the pointer left the widget.
func (b *Base) Exited() bool { return b.exited }

// Pressed is true on the tick the left button went down over the widget.
func (b *Base) Pressed() bool { return b.pressed }

// PressedElsewhere is true on the tick the left button went down
// outside the widget.
func (b *Base) PressedElsewhere() bool { return b.pressedElsewhere }

func (b *Base) snap() {
	b.rect = b.rect.Aligned(b.align, b.pos.Add(b.anchor))
}

func (b *Base) resize(size Vec2) {
	b.rect = b.rect.Resized(size)
	b.snap()
}

// begin starts a widget's input pass. It returns false when the widget
// already handled this tick, which happens when a focus release replays
// the snapshot.
func (b *Base) begin(in *InputSnapshot) bool {
	if in.Tick() == b.seen {
		return false
	}
	b.seen = in.Tick()
	b.track(in)
	return true
}

// track recomputes the pointer flags from a snapshot.
func (b *Base) track(in *InputSnapshot) {
	press := in.Pressed(MouseButtonLeft)
	b.hovered = b.rect.Contains(in.Pointer())
	b.entered = b.hovered && !b.lastHovered
	b.exited = b.lastHovered && !b.hovered
	b.pressed = b.hovered && press
	b.pressedElsewhere = !b.hovered && press
	b.lastHovered = b.hovered
}

// textStyle is shared by the text-drawing kinds.
type textStyle struct {
	size int
	bold bool
}

func newTextStyle(gui *GUI, o options) textStyle {
	size := GetOpt(o, OptTextSize)
	if size <= 0 {
		size = gui.TextSize()
	}
	return textStyle{size: size, bold: GetOpt(o, OptBold)}
}

func (t textStyle) measure(m TextMetrics, s string) Vec2 {
	return m.MeasureText(s, t.size, t.bold)
}

// pairSize is the size of caption and value drawn side by side.
func (t textStyle) pairSize(m TextMetrics, caption, value string) Vec2 {
	a, b := t.measure(m, caption), t.measure(m, value)
	return Vec2{X: a.X + b.X, Y: max(a.Y, b.Y)}
}

// drawPair paints caption and value side by side from the rectangle's
// mid-left point.
func (t textStyle) drawPair(c Canvas, r Rect, caption, value string, tone Tone) {
	left := r.Point(AlignMidLeft)
	a := c.DrawText(caption, t.size, t.bold, tone.Caption, left, AlignMidLeft)
	c.DrawText(value, t.size, t.bold, tone.Value, left.Add(Vec2{X: a.W}), AlignMidLeft)
}
