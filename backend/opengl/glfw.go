package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/overlay"
)

// GLFWDevice implements overlay.Device for a GLFW window. Callbacks
// queue scroll, key and close events; pointer and button state is
// polled.
type GLFWDevice struct {
	window *glfw.Window
	events []overlay.DeviceEvent
}

// NewGLFWDevice installs input callbacks on window.
func NewGLFWDevice(window *glfw.Window) *GLFWDevice {
	d := &GLFWDevice{window: window}
	window.SetKeyCallback(d.keyCallback)
	window.SetCharCallback(d.charCallback)
	window.SetScrollCallback(d.scrollCallback)
	window.SetCloseCallback(d.closeCallback)
	return d
}

// Pointer returns the cursor position in window coordinates.
func (d *GLFWDevice) Pointer() overlay.Vec2 {
	x, y := d.window.GetCursorPos()
	return overlay.Vec2{X: float32(x), Y: float32(y)}
}

// Buttons polls the five mouse buttons.
func (d *GLFWDevice) Buttons() [overlay.MouseButtonCount]bool {
	var held [overlay.MouseButtonCount]bool
	for b, gb := range glfwButtons {
		held[b] = d.window.GetMouseButton(gb) == glfw.Press
	}
	return held
}

// KeyHeld polls a key.
func (d *GLFWDevice) KeyHeld(k overlay.Key) bool {
	gk, ok := overlayToGLFW[k]
	return ok && d.window.GetKey(gk) == glfw.Press
}

// Drain returns the queued events.
func (d *GLFWDevice) Drain() []overlay.DeviceEvent {
	out := d.events
	d.events = nil
	return out
}

func (d *GLFWDevice) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	k := glfwKeyToOverlay(key)
	if k == overlay.KeyNone {
		return
	}
	// Printable keys arrive through the char callback.
	switch k {
	case overlay.KeyBackspace, overlay.KeyEnter, overlay.KeyKeypadEnter, overlay.KeyEscape:
		d.events = append(d.events, overlay.DeviceEvent{Kind: overlay.EventKeyDown, Key: k})
	}
}

func (d *GLFWDevice) charCallback(w *glfw.Window, char rune) {
	d.events = append(d.events, overlay.DeviceEvent{Kind: overlay.EventKeyDown, Char: char})
}

func (d *GLFWDevice) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	steps := int(yoff)
	if steps == 0 {
		return
	}
	d.events = append(d.events, overlay.DeviceEvent{Kind: overlay.EventScroll, Scroll: steps})
}

func (d *GLFWDevice) closeCallback(w *glfw.Window) {
	w.SetShouldClose(false)
	d.events = append(d.events, overlay.DeviceEvent{Kind: overlay.EventQuit})
}

// GLFWTime is an overlay.TimeSource reading glfw.GetTime.
type GLFWTime struct{}

// Millis returns milliseconds since GLFW was initialized.
func (GLFWTime) Millis() int64 { return int64(glfw.GetTime() * 1000) }

var glfwButtons = [overlay.MouseButtonCount]glfw.MouseButton{
	overlay.MouseButtonLeft:   glfw.MouseButtonLeft,
	overlay.MouseButtonMiddle: glfw.MouseButtonMiddle,
	overlay.MouseButtonRight:  glfw.MouseButtonRight,
	overlay.MouseButtonX1:     glfw.MouseButton4,
	overlay.MouseButtonX2:     glfw.MouseButton5,
}

var overlayToGLFW = func() map[overlay.Key]glfw.Key {
	m := map[overlay.Key]glfw.Key{
		overlay.KeyTab:         glfw.KeyTab,
		overlay.KeyLeft:        glfw.KeyLeft,
		overlay.KeyRight:       glfw.KeyRight,
		overlay.KeyUp:          glfw.KeyUp,
		overlay.KeyDown:        glfw.KeyDown,
		overlay.KeyPageUp:      glfw.KeyPageUp,
		overlay.KeyPageDown:    glfw.KeyPageDown,
		overlay.KeyHome:        glfw.KeyHome,
		overlay.KeyEnd:         glfw.KeyEnd,
		overlay.KeyInsert:      glfw.KeyInsert,
		overlay.KeyDelete:      glfw.KeyDelete,
		overlay.KeyBackspace:   glfw.KeyBackspace,
		overlay.KeySpace:       glfw.KeySpace,
		overlay.KeyEnter:       glfw.KeyEnter,
		overlay.KeyKeypadEnter: glfw.KeyKPEnter,
		overlay.KeyEscape:      glfw.KeyEscape,
	}
	for i := 0; i < 26; i++ {
		m[overlay.KeyA+overlay.Key(i)] = glfw.KeyA + glfw.Key(i)
	}
	for i := 0; i < 10; i++ {
		m[overlay.Key0+overlay.Key(i)] = glfw.Key0 + glfw.Key(i)
	}
	for i := 0; i < 12; i++ {
		m[overlay.KeyF1+overlay.Key(i)] = glfw.KeyF1 + glfw.Key(i)
	}
	return m
}()

var glfwToOverlay = func() map[glfw.Key]overlay.Key {
	m := make(map[glfw.Key]overlay.Key, len(overlayToGLFW))
	for k, gk := range overlayToGLFW {
		m[gk] = k
	}
	return m
}()

func glfwKeyToOverlay(key glfw.Key) overlay.Key {
	return glfwToOverlay[key]
}
