package overlay

import (
	"slices"
	"strings"
	"testing"
)

// spy is a minimal widget that records the ticks it handles.
type spy struct {
	Base
	name  string
	log   *[]string
	calls int
	onIn  func(in *InputSnapshot)
}

func newSpy(grp *Group, name string, r Rect, log *[]string, opts ...Option) *spy {
	p := &spy{name: name, log: log}
	p.setup(grp.gui, grp, KindLabel, r, applyOptions(opts))
	grp.add(p)
	return p
}

func (p *spy) HandleInput(in *InputSnapshot) {
	p.calls++
	if !p.begin(in) {
		return
	}
	*p.log = append(*p.log, p.name)
	if p.onIn != nil {
		p.onIn(in)
	}
}

func (p *spy) Render(c Canvas) {
	c.DrawText(p.name, 12, false, 0xffffffff, p.rect.Pos(), AlignTopLeft)
}

func TestGroupDispatchOrder(t *testing.T) {
	r := newRig(t)
	var log []string

	low := r.ui.NewGroup(0)
	high := r.ui.NewGroup(2)
	mid := r.ui.NewGroup(1)
	mid2 := r.ui.NewGroup(1)
	newSpy(low, "low", Rect{W: 10, H: 10}, &log)
	newSpy(high, "high", Rect{W: 10, H: 10}, &log)
	newSpy(mid, "mid", Rect{W: 10, H: 10}, &log)
	newSpy(mid2, "mid2", Rect{W: 10, H: 10}, &log)
	r.ui.Activate(low, high, mid, mid2)

	r.step()
	want := []string{"high", "mid", "mid2", "low"}
	if !slices.Equal(log, want) {
		t.Errorf("expected %v, got %v", want, log)
	}

	c := &recordCanvas{}
	r.ui.Render(c)
	if got := c.texts(); !slices.Equal(got, want) {
		t.Errorf("expected render order %v, got %v", want, got)
	}
}

func TestWidgetLayerWithinGroup(t *testing.T) {
	r := newRig(t)
	var log []string
	g := r.ui.NewGroup(0)
	newSpy(g, "a", Rect{}, &log)
	newSpy(g, "b", Rect{}, &log, WithLayer(3))
	newSpy(g, "c", Rect{}, &log)
	r.ui.Activate(g)

	r.step()
	if want := []string{"b", "a", "c"}; !slices.Equal(log, want) {
		t.Errorf("expected %v, got %v", want, log)
	}
}

func TestInactiveGroupsAreSkipped(t *testing.T) {
	r := newRig(t)
	var log []string
	g := r.ui.NewGroup(0)
	newSpy(g, "p", Rect{}, &log)

	r.step()
	if len(log) != 0 {
		t.Fatalf("inactive group received input: %v", log)
	}

	r.ui.Activate(g)
	r.step()
	r.ui.Deactivate(g)
	r.step()
	if len(log) != 1 {
		t.Errorf("expected exactly one dispatch, got %v", log)
	}

	c := &recordCanvas{}
	r.ui.Render(c)
	if len(c.ops) != 0 {
		t.Error("inactive group was rendered")
	}
}

func TestFocusIsExclusive(t *testing.T) {
	r := newRig(t)
	var log []string
	g := r.ui.NewGroup(0)
	a := newSpy(g, "a", Rect{}, &log)
	b := newSpy(g, "b", Rect{}, &log)
	hidden := newSpy(r.ui.NewGroup(0), "hidden", Rect{}, &log)
	r.ui.Activate(g)

	r.ui.Focus(hidden, true)
	if r.ui.HasFocus() {
		t.Fatal("an inactive widget must not gain focus")
	}

	r.ui.Focus(a, false)
	r.ui.Focus(b, false)
	if !r.ui.IsFocused(a) || r.ui.IsFocused(b) {
		t.Fatal("focus without overwrite must not steal")
	}

	r.step()
	if want := []string{"a"}; !slices.Equal(log, want) {
		t.Errorf("only the focused widget should get input, got %v", log)
	}

	r.ui.Focus(b, true)
	if r.ui.IsFocused(a) || !r.ui.IsFocused(b) {
		t.Fatal("overwrite should move focus")
	}

	r.ui.Release(a, nil)
	if !r.ui.IsFocused(b) {
		t.Error("releasing an unfocused item must not touch focus")
	}
	r.ui.Release(b, nil)
	if r.ui.HasFocus() {
		t.Error("expected no focus")
	}
}

func TestFocusedGroupFloats(t *testing.T) {
	r := newRig(t)
	var log []string
	back := r.ui.NewGroup(5)
	front := r.ui.NewGroup(0)
	newSpy(back, "back", Rect{}, &log)
	p := newSpy(front, "front", Rect{}, &log)
	r.ui.Activate(back, front)

	r.ui.Focus(p, false)
	if !r.ui.IsFocused(front) {
		t.Error("a group with a focused member counts as focused")
	}
	if front.Layer() != -1 {
		t.Errorf("expected focused group at layer -1, got %d", front.Layer())
	}

	c := &recordCanvas{}
	r.ui.Render(c)
	if want := []string{"back", "front"}; !slices.Equal(c.texts(), want) {
		t.Errorf("expected %v, got %v", want, c.texts())
	}
}

func TestReleaseReplaysInput(t *testing.T) {
	r := newRig(t)
	var log []string
	g := r.ui.NewGroup(0)
	owner := newSpy(g, "owner", Rect{}, &log)
	other := newSpy(g, "other", Rect{}, &log)
	r.ui.Activate(g)
	r.ui.Focus(owner, false)

	owner.onIn = func(in *InputSnapshot) { r.ui.Release(owner, in) }
	r.step()

	if want := []string{"owner", "other"}; !slices.Equal(log, want) {
		t.Errorf("expected the replay to reach the rest once, got %v", log)
	}
	if owner.calls != 2 || other.calls != 1 {
		t.Errorf("expected owner called twice and other once, got %d and %d", owner.calls, other.calls)
	}
}

func TestReplayAtMostOncePerTick(t *testing.T) {
	r := newRig(t)
	var log []string
	g := r.ui.NewGroup(0)
	a := newSpy(g, "a", Rect{}, &log)
	b := newSpy(g, "b", Rect{}, &log)
	r.ui.Activate(g)

	in := r.snapshot()
	r.ui.Focus(a, false)
	r.ui.Release(a, in)
	if a.calls != 1 || b.calls != 1 {
		t.Fatalf("expected one replay, got %d and %d", a.calls, b.calls)
	}

	r.ui.Focus(a, false)
	r.ui.Release(a, in)
	if a.calls != 1 || b.calls != 1 {
		t.Errorf("second replay in one tick should be suppressed, got %d and %d", a.calls, b.calls)
	}
	if r.ui.HasFocus() {
		t.Error("suppressed replay still releases focus")
	}

	next := r.snapshot()
	r.ui.Focus(a, false)
	r.ui.Release(a, next)
	if b.calls != 2 {
		t.Errorf("expected replay on the next tick, got %d calls", b.calls)
	}
}

func TestTextSizeSnaps(t *testing.T) {
	cases := map[int]int{1: 12, 18: 18, 100: 32, 31: 30}
	for in, want := range cases {
		if got := New(WithFontSize(in)).TextSize(); got != want {
			t.Errorf("WithFontSize(%d): expected %d, got %d", in, want, got)
		}
	}
	if New().TextSize() != 20 {
		t.Error("expected default text size 20")
	}
}

func TestWidgetIDsArePerKind(t *testing.T) {
	r := newRig(t)
	g := r.ui.NewGroup(0)
	theme := DefaultTheme()

	l1 := NewLabel(g, Vec2{}, theme.Label, "one")
	b := NewButton(g, Vec2{}, theme.Button, "btn")
	l2 := NewLabel(g, Vec2{}, theme.Label, "two")

	if l1.ID() == l2.ID() {
		t.Fatal("expected distinct ids")
	}
	if l2.ID().N != l1.ID().N+1 {
		t.Errorf("label counter should not advance for other kinds: %v then %v", l1.ID(), l2.ID())
	}
	if b.Kind() != KindButton || !strings.HasPrefix(b.ID().String(), "Button_") {
		t.Errorf("unexpected button id %v", b.ID())
	}
	if !g.Contains(b) || g.Len() != 3 {
		t.Error("expected all widgets in the group")
	}
}

func TestIsActive(t *testing.T) {
	r := newRig(t)
	var log []string
	g := r.ui.NewGroup(0)
	p := newSpy(g, "p", Rect{}, &log)
	if r.ui.IsActive(p) || r.ui.IsActive(g) {
		t.Fatal("nothing is active yet")
	}
	r.ui.Activate(g)
	if !r.ui.IsActive(p) || !r.ui.IsActive(g) {
		t.Error("expected widget and group active")
	}
	if len(r.ui.Groups()) != 1 {
		t.Errorf("expected one group, got %d", len(r.ui.Groups()))
	}
}
