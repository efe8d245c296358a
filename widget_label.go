package overlay

import (
	"math"
	"strconv"
)

// Label draws a line of text. With WithRegister the text is read from a
// named string register, so other code can change it by name.
type Label struct {
	Base
	style textStyle
	color uint32
	text  *Register
}

// NewLabel creates a label in grp with its align point at pos.
func NewLabel(grp *Group, pos Vec2, color uint32, text string, opts ...Option) *Label {
	o := applyOptions(opts)
	l := &Label{
		style: newTextStyle(grp.gui, o),
		color: color,
		text:  grp.gui.Register(GetOpt(o, OptRegister), text),
	}
	size := l.style.measure(grp.gui.Metrics(), l.text.String())
	l.setup(grp.gui, grp, KindLabel, sizedRect(pos, size), o)
	grp.add(l)
	return l
}

// Text returns the current text.
func (l *Label) Text() string { return l.text.String() }

// SetText replaces the text.
func (l *Label) SetText(s string) { l.text.Set(s) }

// SetColor replaces the text color.
func (l *Label) SetColor(c uint32) { l.color = c }

// HandleInput updates the pointer flags.
func (l *Label) HandleInput(in *InputSnapshot) { l.begin(in) }

// Render draws the text, resizing to fit it.
func (l *Label) Render(c Canvas) {
	s := l.text.String()
	l.resize(l.style.measure(c, s))
	c.DrawText(s, l.style.size, l.style.bold, l.color, l.rect.Pos(), AlignTopLeft)
}

// DataLabel shows "caption: value" for a float register.
type DataLabel struct {
	Base
	style    textStyle
	tone     Tone
	caption  string
	decimals int
	value    *Register
}

// NewDataLabel creates a data label. The value starts at 0 unless a
// shared register already holds one.
func NewDataLabel(grp *Group, pos Vec2, tone Tone, caption string, opts ...Option) *DataLabel {
	o := applyOptions(opts)
	d := &DataLabel{
		style:    newTextStyle(grp.gui, o),
		tone:     tone,
		caption:  caption + ": ",
		decimals: max(GetOpt(o, OptDecimals), 0),
		value:    grp.gui.Register(GetOpt(o, OptRegister), 0.0),
	}
	size := d.style.pairSize(grp.gui.Metrics(), d.caption, d.formatted())
	d.setup(grp.gui, grp, KindDataLabel, sizedRect(pos, size), o)
	grp.add(d)
	return d
}

// Value returns the displayed value.
func (d *DataLabel) Value() float64 { return d.value.Float() }

// SetValue stores v rounded to the label's decimals.
func (d *DataLabel) SetValue(v float64) { d.value.Set(round(v, d.decimals)) }

func (d *DataLabel) formatted() string {
	return strconv.FormatFloat(d.value.Float(), 'f', d.decimals, 64)
}

// HandleInput updates the pointer flags.
func (d *DataLabel) HandleInput(in *InputSnapshot) { d.begin(in) }

// Render draws the caption and the formatted register value.
func (d *DataLabel) Render(c Canvas) {
	v := d.formatted()
	d.resize(d.style.pairSize(c, d.caption, v))
	d.style.drawPair(c, d.rect, d.caption, v, d.tone)
}

// Button is a label that lights up under the pointer. Pressed reports
// the click.
type Button struct {
	Base
	style  textStyle
	colors Swatch
	text   string
}

// NewButton creates a button in grp.
func NewButton(grp *Group, pos Vec2, colors Swatch, text string, opts ...Option) *Button {
	o := applyOptions(opts)
	b := &Button{
		style:  newTextStyle(grp.gui, o),
		colors: colors,
		text:   text,
	}
	size := b.style.measure(grp.gui.Metrics(), text)
	b.setup(grp.gui, grp, KindButton, sizedRect(pos, size), o)
	grp.add(b)
	return b
}

// Text returns the caption.
func (b *Button) Text() string { return b.text }

// SetText replaces the caption.
func (b *Button) SetText(s string) { b.text = s }

// HandleInput records hover and press for the tick.
func (b *Button) HandleInput(in *InputSnapshot) { b.begin(in) }

// Render draws the caption in the hover color when hovered.
func (b *Button) Render(c Canvas) {
	b.resize(b.style.measure(c, b.text))
	c.DrawText(b.text, b.style.size, b.style.bold, b.colors.Pick(b.hovered), b.rect.Pos(), AlignTopLeft)
}

func sizedRect(pos, size Vec2) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// round rounds v to n decimals.
func round(v float64, n int) float64 {
	p := math.Pow(10, float64(n))
	return math.Round(v*p) / p
}
