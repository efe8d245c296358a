package overlay

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadLimits is returned for a numeric input whose minimum exceeds its
// maximum.
var ErrBadLimits = errors.New("overlay: min limit above max limit")

// editor is the editing state shared by the text entry kinds.
type editor struct {
	editing bool
	buf     []rune
	changed bool

	accept func(r rune) bool
	// commit receives the buffer. explicit is set for RETURN and clear
	// when the edit ends because the pointer was pressed elsewhere.
	commit func(s string, explicit bool)
}

// Editing reports whether the widget is taking keystrokes.
func (e *editor) Editing() bool { return e.editing }

// Changed is true on the tick a commit changed the value.
func (e *editor) Changed() bool { return e.changed }

// Buffer returns the text typed so far.
func (e *editor) Buffer() string { return string(e.buf) }

func (e *editor) handle(b *Base, self Widget, in *InputSnapshot) {
	e.changed = false
	switch {
	case !e.editing && b.pressed:
		e.editing = true
		e.buf = e.buf[:0]
		b.gui.Focus(self, false)
		return
	case e.editing && (b.pressed || b.pressedElsewhere):
		if len(e.buf) > 0 {
			e.commit(string(e.buf), false)
		}
		e.editing = false
		// A press on the field itself is consumed; one elsewhere is
		// replayed so it reaches the widget under the pointer.
		replay := in
		if b.pressed {
			replay = nil
		}
		b.gui.Release(self, replay)
		return
	case !e.editing:
		return
	}

	tok := in.Text()
	switch tok.Kind {
	case TextBackspace:
		if n := len(e.buf); n > 0 {
			e.buf = e.buf[:n-1]
		}
	case TextReturn:
		e.commit(string(e.buf), true)
		e.editing = false
		b.gui.Release(self, nil)
	case TextEscape:
		e.editing = false
		b.gui.Release(self, nil)
	case TextChar:
		if e.accept == nil || e.accept(tok.Char) {
			e.buf = append(e.buf, tok.Char)
		}
	}
}

// shown is what the value half of the widget displays.
func (e *editor) shown(value string) string {
	if e.editing {
		return string(e.buf) + "_"
	}
	return value
}

// TextInput is a "caption: value" field that is edited in place. Click
// it to start typing; RETURN or another click commits and ESCAPE
// cancels. An empty commit keeps the previous value.
type TextInput struct {
	Base
	editor
	style   textStyle
	colors  Palette
	caption string
	value   *Register
}

// NewTextInput creates a text field with an initial value.
func NewTextInput(grp *Group, pos Vec2, colors Palette, caption, value string, opts ...Option) *TextInput {
	o := applyOptions(opts)
	t := &TextInput{
		style:   newTextStyle(grp.gui, o),
		colors:  colors,
		caption: caption + ": ",
		value:   grp.gui.Register(GetOpt(o, OptRegister), value),
	}
	t.commit = func(s string, _ bool) {
		if s == "" {
			return
		}
		t.changed = s != t.value.String()
		t.value.Set(s)
	}
	size := t.style.pairSize(grp.gui.Metrics(), t.caption, t.value.String())
	t.setup(grp.gui, grp, KindTextInput, sizedRect(pos, size), o)
	grp.add(t)
	return t
}

// Value returns the committed text.
func (t *TextInput) Value() string { return t.value.String() }

// SetValue replaces the committed text.
func (t *TextInput) SetValue(s string) { t.value.Set(s) }

// HandleInput runs the edit cycle.
func (t *TextInput) HandleInput(in *InputSnapshot) {
	if !t.begin(in) {
		return
	}
	t.handle(&t.Base, t, in)
}

// Render draws the caption and the value, or the buffer while editing.
func (t *TextInput) Render(c Canvas) {
	v := t.shown(t.value.String())
	t.resize(t.style.pairSize(c, t.caption, v))
	t.style.drawPair(c, t.rect, t.caption, v, t.colors.Pick(t.hovered || t.editing))
}

// NumericInput is a text field for numbers. It accepts digits and the
// characters ".-+", clamps to its limits and rounds to its decimals.
// Scrolling over it steps the value by the increment.
type NumericInput struct {
	Base
	editor
	style     textStyle
	colors    Palette
	caption   string
	value     *Register
	limits    Limits
	increment float64
	decimals  int
}

// NewNumericInput creates a numeric field. It fails with ErrBadLimits
// when the limits are inverted.
func NewNumericInput(grp *Group, pos Vec2, colors Palette, caption string, value float64, opts ...Option) (*NumericInput, error) {
	o := applyOptions(opts)
	lim := GetOpt(o, OptLimits)
	if lim.HasMin && lim.HasMax && lim.Min > lim.Max {
		return nil, fmt.Errorf("numeric input %q [%g, %g]: %w", caption, lim.Min, lim.Max, ErrBadLimits)
	}

	n := &NumericInput{
		style:     newTextStyle(grp.gui, o),
		colors:    colors,
		caption:   caption + ": ",
		limits:    lim,
		increment: GetOpt(o, OptIncrement),
		decimals:  max(GetOpt(o, OptDecimals), 0),
	}
	n.value = grp.gui.Register(GetOpt(o, OptRegister), n.normalize(value))
	n.accept = func(r rune) bool {
		return (r >= '0' && r <= '9') || strings.ContainsRune(".-+", r)
	}
	n.commit = n.commitText

	size := n.style.pairSize(grp.gui.Metrics(), n.caption, n.formatted())
	n.setup(grp.gui, grp, KindNumericInput, sizedRect(pos, size), o)
	grp.add(n)
	return n, nil
}

// Value returns the committed number.
func (n *NumericInput) Value() float64 { return n.value.Float() }

// SetValue stores v clamped and rounded.
func (n *NumericInput) SetValue(v float64) { n.value.Set(n.normalize(v)) }

// Limits returns the configured bounds.
func (n *NumericInput) Limits() Limits { return n.limits }

func (n *NumericInput) normalize(v float64) float64 {
	return round(n.limits.clamp(v), n.decimals)
}

func (n *NumericInput) commitText(s string, explicit bool) {
	var v float64
	if s != "" {
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			n.gui.log.Debug("numeric input rejected", "id", n.id, "text", s)
			return
		}
		v = parsed
	} else if !explicit {
		return
	}
	n.set(v)
}

func (n *NumericInput) set(v float64) {
	v = n.normalize(v)
	n.changed = v != n.value.Float()
	n.value.Set(v)
}

func (n *NumericInput) formatted() string {
	return strconv.FormatFloat(n.value.Float(), 'f', n.decimals, 64)
}

// HandleInput edits the number and steps it on scroll.
func (n *NumericInput) HandleInput(in *InputSnapshot) {
	if !n.begin(in) {
		return
	}
	n.handle(&n.Base, n, in)
	if n.hovered && !n.editing && in.Scroll() != 0 {
		n.set(n.value.Float() + float64(in.Scroll())*n.increment)
	}
}

// Render draws the caption and the formatted number.
func (n *NumericInput) Render(c Canvas) {
	v := n.shown(n.formatted())
	n.resize(n.style.pairSize(c, n.caption, v))
	n.style.drawPair(c, n.rect, n.caption, v, n.colors.Pick(n.hovered || n.editing))
}
