package overlay

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Slider geometry in pixels.
const (
	SliderKnob = 20.0
	SliderRail = 5.0

	// scrollNudge is the share of the track one wheel step moves.
	scrollNudge = 0.005
	// glideTime is how long the knob takes to reach a value set from
	// outside, in seconds.
	glideTime = 0.15
)

// Orientation is the axis a slider moves along.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// Slider selects a fraction in [0, 1] by dragging a knob along a rail.
//
// Its register stores the knob offset in pixels, in [0, length], so
// sliders of equal length can share one register by name. Press the
// secondary button over it to go back to the initial value.
type Slider struct {
	Base
	colors  Palette
	orient  Orientation
	length  float32
	initial float64
	offset  *Register

	held  bool
	moved bool

	// knob is the drawn offset; it glides towards the register value.
	knob  float32
	glide *gween.Tween
	goal  float32
}

// NewSlider creates a slider of the given track length with its value at
// initial (a fraction). A shared register that already holds an offset
// keeps it.
func NewSlider(grp *Group, pos Vec2, length float32, orient Orientation, colors Palette, initial float64, opts ...Option) *Slider {
	o := applyOptions(opts)
	s := &Slider{
		colors:  colors,
		orient:  orient,
		length:  max(length, 1),
		initial: clamp64(initial, 0, 1),
	}
	s.offset = grp.gui.Register(GetOpt(o, OptRegister), s.initial*float64(s.length))
	s.knob = s.current()

	size := Vec2{X: s.length, Y: SliderKnob}
	if orient == Vertical {
		size = Vec2{X: SliderKnob, Y: s.length}
	}
	s.setup(grp.gui, grp, KindSlider, sizedRect(pos, size), o)
	grp.add(s)
	return s
}

// Value returns the knob position as a fraction of the track.
func (s *Slider) Value() float64 { return float64(s.current() / s.length) }

// SetValue moves the knob to fraction v, clamped to [0, 1].
func (s *Slider) SetValue(v float64) {
	s.offset.Set(clamp64(v, 0, 1) * float64(s.length))
}

// Reset returns to the initial value.
func (s *Slider) Reset() { s.SetValue(s.initial) }

// Moved is true on the tick the value changed.
func (s *Slider) Moved() bool { return s.moved }

// Held reports whether the knob is being dragged.
func (s *Slider) Held() bool { return s.held }

// Length returns the track length.
func (s *Slider) Length() float32 { return s.length }

func (s *Slider) current() float32 {
	return clampf(float32(s.offset.Float()), 0, s.length)
}

// along projects a point on the slider's axis, relative to the track.
func (s *Slider) along(p Vec2) float32 {
	if s.orient == Vertical {
		return p.Y - s.rect.Y
	}
	return p.X - s.rect.X
}

// HandleInput moves the knob from pointer and scroll input.
func (s *Slider) HandleInput(in *InputSnapshot) {
	if !s.begin(in) {
		return
	}
	before := s.current()

	if s.hovered {
		switch {
		case s.pressed:
			s.held = true
		case in.Pressed(MouseButtonRight):
			s.Reset()
		}
		if n := in.Scroll(); n != 0 {
			s.offset.Set(float64(clampf(s.current()+float32(n)*scrollNudge*s.length, 0, s.length)))
		}
	}
	if in.Released(MouseButtonLeft) || !in.Held(MouseButtonLeft) {
		s.held = false
	}
	if s.held {
		s.offset.Set(float64(clampf(s.along(in.Pointer()), 0, s.length)))
	}

	now := s.current()
	s.moved = now != before
	s.animate(now, float32(in.Delta()))
}

func (s *Slider) animate(target float32, dt float32) {
	switch {
	case s.held:
		s.knob, s.glide = target, nil
	case s.knob == target:
		s.glide = nil
	default:
		if s.glide == nil || s.goal != target {
			s.glide = gween.New(s.knob, target, glideTime, ease.OutQuad)
			s.goal = target
		}
		v, done := s.glide.Update(dt)
		s.knob = v
		if done {
			s.knob, s.glide = target, nil
		}
	}
}

// Render draws the rail and the knob.
func (s *Slider) Render(c Canvas) {
	tone := s.colors.Pick(s.hovered || s.held)
	r := s.rect
	if s.orient == Vertical {
		c.FillRect(Rect{X: r.X + r.W/2 - SliderRail/2, Y: r.Y, W: SliderRail, H: r.H}, tone.Value)
		c.FillRect(Rect{X: r.X, Y: r.Y + s.knob - SliderKnob/2, W: SliderKnob, H: SliderKnob}, tone.Caption)
		return
	}
	c.FillRect(Rect{X: r.X, Y: r.Y + r.H/2 - SliderRail/2, W: r.W, H: SliderRail}, tone.Value)
	c.FillRect(Rect{X: r.X + s.knob - SliderKnob/2, Y: r.Y, W: SliderKnob, H: SliderKnob}, tone.Caption)
}
