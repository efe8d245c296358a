package overlay

// switchState is the bool register and edge detection behind switches.
// Edges are computed once per tick at the end of the owner's input pass,
// so a Relay or Toggle from application code shows up on the next tick.
type switchState struct {
	state       *Register
	last        bool
	activated   bool
	deactivated bool
}

func newSwitchState(gui *GUI, name string, on bool) switchState {
	r := gui.Register(name, on)
	return switchState{state: r, last: r.Bool()}
}

// On reports the current state.
func (s *switchState) On() bool { return s.state.Bool() }

// Relay sets the state.
func (s *switchState) Relay(on bool) { s.state.Set(on) }

// Toggle flips the state.
func (s *switchState) Toggle() { s.state.Set(!s.state.Bool()) }

// Activated is true on the tick the state turned on.
func (s *switchState) Activated() bool { return s.activated }

// Deactivated is true on the tick the state turned off.
func (s *switchState) Deactivated() bool { return s.deactivated }

func (s *switchState) latch() {
	on := s.state.Bool()
	s.activated = on && !s.last
	s.deactivated = !on && s.last
	s.last = on
}

// FlipSwitch is a clickable "caption: ON/OFF" toggle.
type FlipSwitch struct {
	Base
	switchState
	style   textStyle
	colors  Palette
	caption string
}

// NewFlipSwitch creates a switch showing caption, initially on or off.
// A shared register that already holds a state keeps it.
func NewFlipSwitch(grp *Group, pos Vec2, colors Palette, caption string, on bool, opts ...Option) *FlipSwitch {
	o := applyOptions(opts)
	f := &FlipSwitch{
		switchState: newSwitchState(grp.gui, GetOpt(o, OptRegister), on),
		style:       newTextStyle(grp.gui, o),
		colors:      colors,
		caption:     caption + ": ",
	}
	size := f.style.pairSize(grp.gui.Metrics(), f.caption, "OFF")
	f.setup(grp.gui, grp, KindFlipSwitch, sizedRect(pos, size), o)
	grp.add(f)
	return f
}

// HandleInput toggles the switch on a press.
func (f *FlipSwitch) HandleInput(in *InputSnapshot) {
	if !f.begin(in) {
		return
	}
	if f.pressed {
		f.Toggle()
	}
	f.latch()
}

// Render draws the caption and ON or OFF.
func (f *FlipSwitch) Render(c Canvas) {
	v := "OFF"
	if f.On() {
		v = "ON"
	}
	f.resize(f.style.pairSize(c, f.caption, v))
	f.style.drawPair(c, f.rect, f.caption, v, f.colors.Pick(f.hovered))
}
