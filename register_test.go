package overlay

import "testing"

func TestRegisterCoercion(t *testing.T) {
	r := NewRegister("3.5")
	if r.Float() != 3.5 {
		t.Errorf("expected 3.5, got %v", r.Float())
	}
	r.Set(true)
	if !r.Bool() || r.String() != "true" {
		t.Errorf("expected true, got %v / %q", r.Bool(), r.String())
	}
	r.Set(42)
	if r.Int() != 42 || r.Float() != 42 {
		t.Errorf("expected 42, got %d / %v", r.Int(), r.Float())
	}
	r.Set(struct{}{})
	if r.Float() != 0 || r.Bool() {
		t.Error("unconvertible values should read as zero")
	}
}

func TestGUIRegisterSharing(t *testing.T) {
	ui := New(WithLogger(quietLogger()))

	a := ui.Register("speed", 1.0)
	b := ui.Register("speed", 99.0)
	if a != b {
		t.Fatal("expected the same register for one name")
	}
	if a.Float() != 1 {
		t.Errorf("existing value should win, got %v", a.Float())
	}

	a.Set(nil)
	if ui.Register("speed", 5.0).Float() != 5 {
		t.Error("an unset register should adopt the default")
	}

	p, q := ui.Register("", 1), ui.Register("", 1)
	if p == q {
		t.Error("empty names should give private registers")
	}
}

func TestWidgetsShareRegister(t *testing.T) {
	r := newRig(t)
	g := r.ui.NewGroup(0)
	theme := DefaultTheme()

	a := NewFlipSwitch(g, Vec2{X: 0, Y: 0}, theme.Control, "A", true, WithRegister("fog"))
	b := NewFlipSwitch(g, Vec2{X: 0, Y: 50}, theme.Control, "B", false, WithRegister("fog"))
	if !b.On() {
		t.Fatal("second switch should see the stored state")
	}

	a.Relay(false)
	if b.On() {
		t.Error("expected the shared state to change for both switches")
	}

	l := NewLabel(g, Vec2{}, theme.Label, "first", WithRegister("caption"))
	r.ui.Register("caption", "").Set("second")
	if l.Text() != "second" {
		t.Errorf("expected label to follow its register, got %q", l.Text())
	}
}
