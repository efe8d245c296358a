package overlay

import (
	"fmt"
	"log/slog"
	"slices"
)

// FontSizes are the text sizes the GUI snaps its default size to.
var FontSizes = []int{12, 14, 16, 18, 20, 22, 24, 26, 28, 30, 32}

// GUI is the registry that ties groups together: which are active,
// which hold focus, and the table of named registers. Create one in the
// application root and pass it to every group and window.
type GUI struct {
	log      *slog.Logger
	textSize int
	metrics  TextMetrics

	groups    []*Group
	active    map[*Group]struct{}
	focused   map[Item]struct{}
	registers map[string]*Register

	replaying  bool
	lastReplay uint64
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithFontSize sets the default text size; it snaps to the nearest of
// FontSizes.
func WithFontSize(size int) GUIOption {
	return func(g *GUI) { g.textSize = size }
}

// WithMetrics sets the text measurer used for sizing at construction.
// It should agree with the Canvas the GUI renders to.
func WithMetrics(m TextMetrics) GUIOption {
	return func(g *GUI) { g.metrics = m }
}

// WithLogger replaces the package logger.
func WithLogger(l *slog.Logger) GUIOption {
	return func(g *GUI) { g.log = l }
}

// New creates a new GUI.
func New(opts ...GUIOption) *GUI {
	g := &GUI{
		log:       defaultLogger,
		textSize:  20,
		metrics:   MonoMetrics{},
		active:    make(map[*Group]struct{}),
		focused:   make(map[Item]struct{}),
		registers: make(map[string]*Register),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// TextSize returns the entry of FontSizes nearest to the configured size.
func (g *GUI) TextSize() int {
	best := FontSizes[0]
	for _, s := range FontSizes[1:] {
		if abs(s-g.textSize) < abs(best-g.textSize) {
			best = s
		}
	}
	return best
}

// Metrics returns the text measurer.
func (g *GUI) Metrics() TextMetrics { return g.metrics }

// Register returns the register called name, creating it with def if
// needed. A register holding nil adopts def; otherwise the existing
// value is left alone. An empty name yields a private register.
func (g *GUI) Register(name string, def any) *Register {
	if name == "" {
		return NewRegister(def)
	}
	r, ok := g.registers[name]
	switch {
	case !ok:
		r = NewRegister(def)
		g.registers[name] = r
	case !r.IsSet():
		r.Set(def)
	}
	return r
}

// Groups returns every registered group in creation order.
func (g *GUI) Groups() []*Group { return slices.Clone(g.groups) }

// Activate adds groups to the active set.
func (g *GUI) Activate(groups ...*Group) {
	for _, grp := range groups {
		g.active[grp] = struct{}{}
		g.log.Debug("activate", "group", grp.id)
	}
}

// Deactivate removes groups from the active set. Focus is left as is;
// an inactive item simply cannot gain focus again.
func (g *GUI) Deactivate(groups ...*Group) {
	for _, grp := range groups {
		delete(g.active, grp)
		g.log.Debug("deactivate", "group", grp.id)
	}
}

// IsActive reports whether an item takes part in dispatch: a group when
// it is in the active set, a widget when its group is.
func (g *GUI) IsActive(item Item) bool {
	switch v := item.(type) {
	case *Group:
		_, ok := g.active[v]
		return ok
	case Carrier:
		_, ok := g.active[v.Group()]
		return ok
	case Widget:
		grp := v.base().group
		if grp == nil {
			return false
		}
		_, ok := g.active[grp]
		return ok
	}
	return false
}

// HasFocus reports whether anything holds focus.
func (g *GUI) HasFocus() bool { return len(g.focused) > 0 }

// IsFocused reports whether item holds focus. A group counts as focused
// when it, its carrier or any of its widgets does.
func (g *GUI) IsFocused(item Item) bool {
	switch v := item.(type) {
	case *Group:
		if _, ok := g.focused[v]; ok {
			return true
		}
		if v.host != nil {
			if _, ok := g.focused[v.host]; ok {
				return true
			}
		}
		for _, w := range v.widgets {
			if _, ok := g.focused[w]; ok {
				return true
			}
		}
		return false
	case Carrier:
		return g.IsFocused(v.Group())
	}
	_, ok := g.focused[item]
	return ok
}

// Focus gives item exclusive input. It only succeeds for an active
// item, and only when nothing else holds focus unless overwrite is set.
func (g *GUI) Focus(item Item, overwrite bool) {
	if (len(g.focused) > 0 && !overwrite) || !g.IsActive(item) {
		return
	}
	clear(g.focused)
	g.focused[item] = struct{}{}
	g.log.Debug("focus", "item", itemName(item), "overwrite", overwrite)
}

// Release drops item from focus. With a non-nil replay snapshot the
// input pass is run again on the new focus state so the same click
// reaches whatever is now eligible. Replays do not nest and happen at
// most once per tick.
func (g *GUI) Release(item Item, replay *InputSnapshot) {
	if _, ok := g.focused[item]; !ok {
		return
	}
	delete(g.focused, item)
	g.log.Debug("release", "item", itemName(item))

	if replay == nil {
		return
	}
	if g.replaying || replay.Tick() == g.lastReplay {
		g.log.Debug("replay suppressed", "tick", replay.Tick())
		return
	}
	g.replaying = true
	g.lastReplay = replay.Tick()
	g.HandleInput(replay)
	g.replaying = false
}

// HandleInput dispatches a snapshot. While something holds focus only
// the focused items receive it; otherwise every active group does.
// Targets are visited in descending layer order.
func (g *GUI) HandleInput(in *InputSnapshot) {
	var targets []Item
	if len(g.focused) > 0 {
		for it := range g.focused {
			targets = append(targets, it)
		}
	} else {
		for _, grp := range g.activeGroups() {
			targets = append(targets, grp)
		}
	}
	sortItems(targets)
	for _, it := range targets {
		it.HandleInput(in)
	}
}

// Render paints every active group in descending layer order. Focus
// does not affect what is drawn.
func (g *GUI) Render(c Canvas) {
	groups := g.activeGroups()
	items := make([]Item, len(groups))
	for i, grp := range groups {
		items[i] = grp
	}
	sortItems(items)
	for _, it := range items {
		it.(*Group).Render(c)
	}
}

func (g *GUI) activeGroups() []*Group {
	out := make([]*Group, 0, len(g.active))
	for _, grp := range g.groups {
		if _, ok := g.active[grp]; ok {
			out = append(out, grp)
		}
	}
	return out
}

// sortItems orders by layer descending, then creation order.
func sortItems(items []Item) {
	slices.SortFunc(items, func(a, b Item) int {
		if la, lb := a.Layer(), b.Layer(); la != lb {
			return lb - la
		}
		switch {
		case a.seq() < b.seq():
			return -1
		case a.seq() > b.seq():
			return 1
		}
		return 0
	})
}

func itemName(item Item) string {
	switch v := item.(type) {
	case *Group:
		return fmt.Sprintf("group_%d", v.id)
	case Widget:
		return v.ID().String()
	}
	return "?"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
