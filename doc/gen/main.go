// Command gen builds each widget kind with sample data, renders it
// through the OpenGL backend, captures framebuffer pixels, and saves
// JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/overlay"
	"github.com/go-theft-auto/overlay/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// step is one scripted input tick.
type step struct {
	pointer overlay.Vec2
	press   bool
	text    []rune
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string // filename without extension
	width  int
	height int
	build  func(ui *overlay.GUI, theme overlay.Theme) error
	script []step // input fed before capture; empty means two idle ticks
}

// scripted replays steps as an overlay.Device.
type scripted struct {
	cur    step
	events []overlay.DeviceEvent
}

func (s *scripted) load(st step) {
	s.cur = st
	for _, r := range st.text {
		s.events = append(s.events, overlay.DeviceEvent{Kind: overlay.EventKeyDown, Char: r})
	}
}

func (s *scripted) Pointer() overlay.Vec2 { return s.cur.pointer }

func (s *scripted) Buttons() (b [overlay.MouseButtonCount]bool) {
	b[overlay.MouseButtonLeft] = s.cur.press
	return b
}

func (s *scripted) KeyHeld(overlay.Key) bool { return false }

func (s *scripted) Drain() []overlay.DeviceEvent {
	out := s.events
	s.events = nil
	return out
}

// ticks is a TimeSource advancing one 60 Hz frame per read.
type ticks struct{ n int64 }

func (t *ticks) Millis() int64 {
	t.n++
	return t.n * 1000 / 60
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("overlay renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	renderer.Resize(s.width, s.height)

	ui := overlay.New(overlay.WithFontSize(14))
	if err := s.build(ui, overlay.DefaultTheme()); err != nil {
		return err
	}

	clock := overlay.NewClock(&ticks{})
	tracker := overlay.NewInputTracker(clock)
	dev := &scripted{}
	script := s.script
	if len(script) == 0 {
		script = []step{{}, {}}
	}
	for _, st := range script {
		clock.Update()
		dev.load(st)
		ui.HandleInput(tracker.Update(dev))
	}

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	dl := overlay.AcquireDrawList(renderer.FontTextureID())
	ui.Render(dl)
	err := renderer.Render(dl)
	overlay.ReleaseDrawList(dl)
	if err != nil {
		return err
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func at(x, y float32) overlay.Vec2 { return overlay.Vec2{X: x, Y: y} }

func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "label", width: 400, height: 120,
			build: func(ui *overlay.GUI, th overlay.Theme) error {
				g := ui.NewGroup(0)
				overlay.NewLabel(g, at(10, 10), th.Label, "Plain label")
				overlay.NewLabel(g, at(10, 40), th.Label, "Bold and large", overlay.WithBold(true), overlay.WithTextSize(24))
				overlay.NewDataLabel(g, at(10, 80), th.Data, "Speed", overlay.WithDecimals(2)).SetValue(12.345)
				ui.Activate(g)
				return nil
			},
		},
		{
			name: "button", width: 300, height: 80,
			build: func(ui *overlay.GUI, th overlay.Theme) error {
				g := ui.NewGroup(0)
				overlay.NewButton(g, at(10, 10), th.Button, "Start")
				overlay.NewButton(g, at(10, 40), th.Danger, "Quit")
				ui.Activate(g)
				return nil
			},
			script: []step{{pointer: at(20, 48)}},
		},
		{
			name: "flip_switch", width: 300, height: 80,
			build: func(ui *overlay.GUI, th overlay.Theme) error {
				g := ui.NewGroup(0)
				overlay.NewFlipSwitch(g, at(10, 10), th.Control, "Vsync", true)
				overlay.NewFlipSwitch(g, at(10, 40), th.Control, "Wireframe", false)
				ui.Activate(g)
				return nil
			},
		},
		{
			name: "text_input", width: 400, height: 60,
			build: func(ui *overlay.GUI, th overlay.Theme) error {
				g := ui.NewGroup(0)
				overlay.NewTextInput(g, at(10, 10), th.Control, "Name", "")
				ui.Activate(g)
				return nil
			},
			script: []step{
				{pointer: at(20, 18)},
				{pointer: at(20, 18), press: true},
				{pointer: at(20, 18), text: []rune("Tommy")},
			},
		},
		{
			name: "numeric_input", width: 400, height: 60,
			build: func(ui *overlay.GUI, th overlay.Theme) error {
				g := ui.NewGroup(0)
				_, err := overlay.NewNumericInput(g, at(10, 10), th.Control, "Gravity", 9.81,
					overlay.WithDecimals(2), overlay.WithLimits(0, 20))
				ui.Activate(g)
				return err
			},
		},
		{
			name: "slider", width: 300, height: 100,
			build: func(ui *overlay.GUI, th overlay.Theme) error {
				g := ui.NewGroup(0)
				overlay.NewSlider(g, at(20, 20), 200, overlay.Horizontal, th.Slider, 0.65)
				overlay.NewSlider(g, at(260, 10), 80, overlay.Vertical, th.Slider, 0.3)
				ui.Activate(g)
				return nil
			},
		},
		{
			name: "dropdown", width: 300, height: 140,
			build: func(ui *overlay.GUI, th overlay.Theme) error {
				g := ui.NewGroup(0)
				_, err := overlay.NewDropdown(g, at(10, 10), th.Control, "Weather",
					[]string{"sunny", "cloudy", "rain", "fog"})
				ui.Activate(g)
				return err
			},
			script: []step{
				{pointer: at(20, 18)},
				{pointer: at(20, 18), press: true},
				{pointer: at(20, 40)},
			},
		},
		{
			name: "floating_window", width: 500, height: 320,
			build: func(ui *overlay.GUI, th overlay.Theme) error {
				w := overlay.NewFloatingWindow(ui, overlay.Rect{X: 40, Y: 60, W: 400, H: 220}, th.Window, "Debug", overlay.Active())
				body := w.Group()
				overlay.NewLabel(body, at(10, 10), th.Label, "Window body")
				overlay.NewSlider(body, at(10, 50), 200, overlay.Horizontal, th.Slider, 0.4)
				overlay.NewFlipSwitch(body, at(10, 90), th.Control, "Fog", true)
				return nil
			},
		},
	}
}
