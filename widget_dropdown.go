package overlay

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrNoItems is returned for a dropdown without items.
var ErrNoItems = errors.New("overlay: dropdown needs at least one item")

// ErrDuplicateItem is returned for a dropdown listing an item twice.
var ErrDuplicateItem = errors.New("overlay: dropdown items must be unique")

// Dropdown picks one string from a fixed list. Closed, it shows the
// selection; open, it lists every item with the selection first. It
// floats to layer -1 and holds focus while open.
//
// Scrolling over a closed dropdown steps through the items, wrapping at
// both ends.
type Dropdown struct {
	Base
	style   textStyle
	colors  Palette
	caption string
	items   []string
	value   *Register

	open     bool
	hoverIdx int
	changed  bool

	captionW float32
	itemW    float32
}

// NewDropdown creates a dropdown selecting items[0], unless a shared
// register already names one of the items.
func NewDropdown(grp *Group, pos Vec2, colors Palette, caption string, items []string, opts ...Option) (*Dropdown, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("dropdown %q: %w", caption, ErrNoItems)
	}
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it]; dup {
			return nil, fmt.Errorf("dropdown %q: item %q: %w", caption, it, ErrDuplicateItem)
		}
		seen[it] = struct{}{}
	}
	o := applyOptions(opts)
	d := &Dropdown{
		style:   newTextStyle(grp.gui, o),
		colors:  colors,
		caption: caption + ": ",
		items:   slices.Clone(items),
		value:   grp.gui.Register(GetOpt(o, OptRegister), items[0]),
	}
	d.measure(grp.gui.Metrics())
	d.setup(grp.gui, grp, KindDropdown, sizedRect(pos, d.size()), o)
	grp.add(d)
	return d, nil
}

// Items returns the choices in their original order.
func (d *Dropdown) Items() []string { return slices.Clone(d.items) }

// Selected returns the selected item.
func (d *Dropdown) Selected() string { return d.items[d.Index()] }

// Index returns the position of the selection in Items. A register
// holding something that is not an item reads as the first one.
func (d *Dropdown) Index() int {
	if i := slices.Index(d.items, d.value.String()); i >= 0 {
		return i
	}
	return 0
}

// Select picks item. It returns false if item is not a choice.
func (d *Dropdown) Select(item string) bool {
	if !slices.Contains(d.items, item) {
		return false
	}
	d.changed = d.changed || item != d.value.String()
	d.value.Set(item)
	return true
}

// Step moves the selection by dir items, wrapping around.
func (d *Dropdown) Step(dir int) {
	n := len(d.items)
	i := ((d.Index()+dir)%n + n) % n
	d.Select(d.items[i])
}

// Open reports whether the list is expanded.
func (d *Dropdown) Open() bool { return d.open }

// Changed is true on the tick input changed the selection.
func (d *Dropdown) Changed() bool { return d.changed }

// HoveredIndex returns the row under the pointer while open, indexing
// Order.
func (d *Dropdown) HoveredIndex() int { return d.hoverIdx }

// Order returns the rows as listed when open: the selection, then the
// other items in their original order.
func (d *Dropdown) Order() []string {
	sel := d.Selected()
	out := make([]string, 0, len(d.items))
	out = append(out, sel)
	for _, it := range d.items {
		if it != sel {
			out = append(out, it)
		}
	}
	return out
}

// Layer is -1 while open.
func (d *Dropdown) Layer() int {
	if d.open {
		return -1
	}
	return d.layer
}

func (d *Dropdown) rowHeight() float32 { return float32(d.style.size + 5) }

func (d *Dropdown) measure(m TextMetrics) {
	d.captionW = d.style.measure(m, d.caption).X
	d.itemW = 0
	for _, it := range d.items {
		d.itemW = max(d.itemW, d.style.measure(m, it).X)
	}
}

func (d *Dropdown) size() Vec2 {
	rows := 1
	if d.open {
		rows = len(d.items)
	}
	return Vec2{X: d.captionW + d.itemW, Y: d.rowHeight() * float32(rows)}
}

func (d *Dropdown) expand() {
	d.open = true
	d.resize(d.size())
	d.gui.Focus(d, true)
}

func (d *Dropdown) collapse() {
	d.open = false
	d.resize(d.size())
	d.gui.Release(d, nil)
}

// HandleInput opens the list and selects the row pressed in it.
func (d *Dropdown) HandleInput(in *InputSnapshot) {
	if !d.begin(in) {
		return
	}
	d.changed = false

	if !d.hovered {
		if d.open {
			d.collapse()
		}
		return
	}

	if d.open {
		order := d.Order()
		n := len(order)
		i := int(math.Floor(float64((in.Pointer().Y - d.rect.Y) * float32(n) / d.rect.H)))
		d.hoverIdx = min(max(i, 0), n-1)
		if d.pressed {
			d.Select(order[d.hoverIdx])
			d.collapse()
		}
		return
	}

	if s := in.Scroll(); s != 0 {
		d.Step(s)
	}
	if d.pressed {
		d.hoverIdx = 0
		d.expand()
	}
}

// Render draws the selection, or every row while open.
func (d *Dropdown) Render(c Canvas) {
	d.measure(c)
	d.resize(d.size())

	tone := d.colors.Pick(d.hovered || d.open)
	left := d.rect.Pos()
	c.DrawText(d.caption, d.style.size, d.style.bold, tone.Caption, left, AlignTopLeft)

	if !d.open {
		c.DrawText(d.Selected(), d.style.size, d.style.bold, tone.Value, left.Add(Vec2{X: d.captionW}), AlignTopLeft)
		return
	}

	if d.colors.Background != 0 {
		c.FillRect(Rect{X: left.X + d.captionW, Y: left.Y, W: d.itemW, H: d.rect.H}, d.colors.Background)
	}
	for i, it := range d.Order() {
		col := d.colors.Idle.Value
		if i == d.hoverIdx {
			col = d.colors.Hot.Value
		}
		at := left.Add(Vec2{X: d.captionW, Y: d.rowHeight() * float32(i)})
		c.DrawText(it, d.style.size, d.style.bold, col, at, AlignTopLeft)
	}
}
