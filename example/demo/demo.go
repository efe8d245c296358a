// Package demo is the screen logic shared by the example programs: a
// menu and a running scene with an FPS readout and a debug window.
package demo

import (
	"fmt"
	"log/slog"

	"github.com/go-theft-auto/overlay"
	"github.com/go-theft-auto/overlay/config"
	"github.com/go-theft-auto/overlay/fsm"
)

// Frame is what each screen sees per tick.
type Frame struct {
	In     *overlay.InputSnapshot
	Canvas overlay.Canvas
}

// DefaultKeymap is used when no keymap file is present.
func DefaultKeymap() map[string]overlay.Binding {
	return map[string]overlay.Binding{
		"menu":  {Key: overlay.KeyEscape},
		"debug": {Key: overlay.KeyF1},
		"nudge": {Key: overlay.KeyRight, Delay: 300, Period: 60},
	}
}

// App owns the GUI and drives the screens.
type App struct {
	UI      *overlay.GUI
	Clock   *overlay.Clock
	Tracker *overlay.InputTracker

	machine *fsm.Machine[*Frame]
	quit    bool
}

// New builds the example screens.
func New(src overlay.TimeSource, settings config.Values, keymap map[string]overlay.Binding, metrics overlay.TextMetrics) (*App, error) {
	overlay.SetVerbose(settings.Verbose)

	a := &App{
		UI:    overlay.New(overlay.WithFontSize(settings.TextSize), overlay.WithMetrics(metrics)),
		Clock: overlay.NewClock(src),
	}
	a.Tracker = overlay.NewInputTracker(a.Clock)
	config.Bind(a.Tracker, keymap)

	theme := overlay.DefaultTheme()
	menu, err := newMenu(a, theme)
	if err != nil {
		return nil, err
	}
	scene, err := newScene(a, theme, settings)
	if err != nil {
		return nil, err
	}

	a.machine, err = fsm.New[*Frame](menu, scene)
	if err != nil {
		return nil, err
	}
	a.machine.SetLogger(slog.Default())
	return a, nil
}

// Screen returns the name of the active screen.
func (a *App) Screen() string { return a.machine.Current() }

// Quit reports whether the app asked to exit.
func (a *App) Quit() bool { return a.quit }

// Update runs one tick of input and logic.
func (a *App) Update(dev overlay.Device) error {
	a.Clock.Update()
	f := &Frame{In: a.Tracker.Update(dev)}
	if f.In.Quit() {
		a.quit = true
	}

	a.UI.HandleInput(f.In)
	a.machine.Input(f)
	a.machine.Tick(f)
	if err := a.machine.Update(); err != nil {
		return fmt.Errorf("screen change: %w", err)
	}
	return nil
}

// Render paints the GUI onto c.
func (a *App) Render(c overlay.Canvas) {
	a.UI.Render(c)
	a.machine.Render(&Frame{Canvas: c})
}

// menu is the start screen.
type menu struct {
	fsm.Nop[*Frame]
	app     *App
	group   *overlay.Group
	start   *overlay.Button
	exit    *overlay.Button
	verbose *overlay.FlipSwitch
	next    string
}

func newMenu(a *App, theme overlay.Theme) (*menu, error) {
	g := a.UI.NewGroup(1)
	m := &menu{Nop: fsm.Nop[*Frame]{ID: "menu"}, app: a, group: g}

	overlay.NewLabel(g, overlay.Vec2{X: 40, Y: 40}, theme.Label, "overlay demo", overlay.WithTextSize(32))
	m.start = overlay.NewButton(g, overlay.Vec2{X: 40, Y: 100}, theme.Button, "Start")
	m.verbose = overlay.NewFlipSwitch(g, overlay.Vec2{X: 40, Y: 140}, theme.Control, "Verbose", overlay.IsVerbose())
	if _, err := overlay.NewDropdown(g, overlay.Vec2{X: 40, Y: 180}, theme.Control, "Difficulty",
		[]string{"easy", "normal", "hard"}, overlay.WithRegister("difficulty")); err != nil {
		return nil, err
	}
	m.exit = overlay.NewButton(g, overlay.Vec2{X: 40, Y: 260}, theme.Danger, "Exit")
	return m, nil
}

func (m *menu) OnEnter() {
	m.next = ""
	m.app.UI.Activate(m.group)
}

func (m *menu) OnExit() { m.app.UI.Deactivate(m.group) }

func (m *menu) OnUpdate(f *Frame) {
	switch {
	case m.verbose.Activated():
		overlay.SetVerbose(true)
	case m.verbose.Deactivated():
		overlay.SetVerbose(false)
	}
	if m.exit.Pressed() {
		m.app.quit = true
	}
	if m.start.Pressed() {
		m.next = "scene"
	}
}

func (m *menu) Next() string { return m.next }

// scene is the running screen with a HUD and a debug window.
type scene struct {
	fsm.Nop[*Frame]
	app    *App
	hud    *overlay.Group
	fps    *overlay.DataLabel
	filter *overlay.Filter
	debug  *overlay.Button
	window *overlay.FloatingWindow
	gain   *overlay.Slider
	next   string
}

func newScene(a *App, theme overlay.Theme, settings config.Values) (*scene, error) {
	hud := a.UI.NewGroup(2)
	s := &scene{
		Nop:    fsm.Nop[*Frame]{ID: "scene"},
		app:    a,
		hud:    hud,
		filter: overlay.NewFilter(settings.FPSFilter, float64(settings.FPS)),
	}
	s.fps = overlay.NewDataLabel(hud, overlay.Vec2{X: 8, Y: 8}, theme.Data, "FPS", overlay.WithDecimals(0))
	s.debug = overlay.NewButton(hud, overlay.Vec2{X: 8, Y: 40}, theme.Button, "Debug")
	overlay.NewLabel(hud, overlay.Vec2{X: 8, Y: 72}, theme.Label, "player", overlay.WithRegister("status"))

	s.window = overlay.NewFloatingWindow(a.UI, overlay.Rect{X: 300, Y: 120, W: 320, H: 260}, theme.Window, "Debug")
	body := s.window.Group()
	// Two sliders on one register move together.
	s.gain = overlay.NewSlider(body, overlay.Vec2{X: 20, Y: 20}, 200, overlay.Horizontal, theme.Slider, 0.5, overlay.WithRegister("gain"))
	overlay.NewSlider(body, overlay.Vec2{X: 20, Y: 60}, 200, overlay.Horizontal, theme.Slider, 0.5, overlay.WithRegister("gain"))
	overlay.NewTextInput(body, overlay.Vec2{X: 20, Y: 100}, theme.Control, "Name", "player", overlay.WithRegister("status"))
	if _, err := overlay.NewNumericInput(body, overlay.Vec2{X: 20, Y: 140}, theme.Control, "Speed", 1,
		overlay.WithLimits(0, 10), overlay.WithIncrement(0.5), overlay.WithDecimals(1)); err != nil {
		return nil, err
	}
	if _, err := overlay.NewDropdown(body, overlay.Vec2{X: 20, Y: 180}, theme.Control, "Difficulty",
		[]string{"easy", "normal", "hard"}, overlay.WithRegister("difficulty")); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *scene) OnEnter() {
	s.next = ""
	s.app.UI.Activate(s.hud)
}

func (s *scene) OnExit() {
	s.window.Hide()
	s.app.UI.Deactivate(s.hud)
}

func (s *scene) OnUpdate(f *Frame) {
	if dt := f.In.Delta(); dt > 0 {
		s.fps.SetValue(s.filter.Apply(1 / dt))
	}

	toggle, _ := f.In.Action("debug")
	if s.debug.Pressed() || toggle {
		if s.window.Visible() {
			s.window.Hide()
		} else {
			s.window.Show()
		}
	}
	if nudge, _ := f.In.Action("nudge"); nudge {
		s.gain.SetValue(s.gain.Value() + 0.05)
	}
	if menu, _ := f.In.Action("menu"); menu {
		s.next = "menu"
	}
}

func (s *scene) Next() string { return s.next }
