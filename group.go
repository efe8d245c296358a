package overlay

import "slices"

// Group is a set of widgets that is activated, focused and layered as a
// unit. A widget joins a group at construction and never leaves it.
type Group struct {
	id      GroupID
	order   uint64
	gui     *GUI
	layer   int
	widgets []Widget

	// host is set when the group holds a carrier's children.
	host Carrier
}

// NewGroup registers an inactive group with the GUI.
func (g *GUI) NewGroup(layer int) *Group {
	grp := &Group{
		id:    nextGroupID(),
		order: nextSeq(),
		gui:   g,
		layer: layer,
	}
	g.groups = append(g.groups, grp)
	return grp
}

// ID returns the group's identity.
func (grp *Group) ID() GroupID { return grp.id }

// GUI returns the owning GUI.
func (grp *Group) GUI() *GUI { return grp.gui }

// Host returns the carrier whose children this group holds, or nil.
func (grp *Group) Host() Carrier { return grp.host }

func (grp *Group) seq() uint64 { return grp.order }

// Layer returns the ordering key among groups. A focused group floats
// in front with -1; a carrier's group reports the carrier's layer.
func (grp *Group) Layer() int {
	if grp.host != nil {
		return grp.host.Layer()
	}
	if grp.gui.IsFocused(grp) {
		return -1
	}
	return grp.layer
}

// Len returns the number of widgets.
func (grp *Group) Len() int { return len(grp.widgets) }

// Widgets returns the members in dispatch order: layer descending,
// insertion order among equal layers.
func (grp *Group) Widgets() []Widget {
	ws := slices.Clone(grp.widgets)
	slices.SortStableFunc(ws, func(a, b Widget) int {
		return b.Layer() - a.Layer()
	})
	return ws
}

// Contains reports whether w is a member.
func (grp *Group) Contains(w Widget) bool {
	return slices.Contains(grp.widgets, w)
}

func (grp *Group) add(w Widget) {
	grp.widgets = append(grp.widgets, w)
	if grp.host != nil {
		w.base().setAnchor(grp.host.Origin())
	}
}

// HandleInput dispatches the snapshot to the members. A carrier's group
// hands it to the carrier, which dispatches to its children itself.
func (grp *Group) HandleInput(in *InputSnapshot) {
	if grp.host != nil {
		grp.host.HandleInput(in)
		return
	}
	grp.dispatch(in)
}

// Render paints the members in dispatch order.
func (grp *Group) Render(c Canvas) {
	if grp.host != nil {
		grp.host.Render(c)
		return
	}
	grp.paint(c)
}

func (grp *Group) dispatch(in *InputSnapshot) {
	for _, w := range grp.Widgets() {
		w.HandleInput(in)
	}
}

func (grp *Group) paint(c Canvas) {
	for _, w := range grp.Widgets() {
		w.Render(c)
	}
}
