package overlay

// Carrier is a widget that also owns a group of children anchored to
// its moving origin.
type Carrier interface {
	Widget
	// Group returns the group holding the children.
	Group() *Group
	// Origin returns the point children are positioned from.
	Origin() Vec2
}

// carrier is the group half of a Carrier, embedded by concrete kinds
// next to Base.
type carrier struct {
	children *Group
}

func newCarrier(g *GUI, host Carrier, layer int) carrier {
	grp := g.NewGroup(layer)
	grp.host = host
	return carrier{children: grp}
}

// resnap moves every child's anchor to origin.
func (c carrier) resnap(origin Vec2) {
	for _, w := range c.children.widgets {
		w.base().setAnchor(origin)
	}
}
