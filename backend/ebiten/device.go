package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-theft-auto/overlay"
)

// Device implements overlay.Device by polling Ebitengine. Call Poll once
// at the start of each Update, before overlay.InputTracker.Update.
type Device struct {
	events []overlay.DeviceEvent
	keys   []ebiten.Key
	chars  []rune
}

// NewDevice creates a device and takes over window closing, so a close
// request shows up as a quit event instead of ending the game loop.
func NewDevice() *Device {
	ebiten.SetWindowClosingHandled(true)
	return &Device{}
}

// Poll queues this frame's wheel, key and close events.
func (d *Device) Poll() {
	if _, dy := ebiten.Wheel(); dy != 0 {
		steps := int(dy)
		if steps == 0 {
			steps = 1
			if dy < 0 {
				steps = -1
			}
		}
		d.events = append(d.events, overlay.DeviceEvent{Kind: overlay.EventScroll, Scroll: steps})
	}

	d.keys = inpututil.AppendJustPressedKeys(d.keys[:0])
	for _, k := range d.keys {
		switch key := ebitenToOverlay[k]; key {
		case overlay.KeyBackspace, overlay.KeyEnter, overlay.KeyKeypadEnter, overlay.KeyEscape:
			d.events = append(d.events, overlay.DeviceEvent{Kind: overlay.EventKeyDown, Key: key})
		}
	}
	d.chars = ebiten.AppendInputChars(d.chars[:0])
	for _, r := range d.chars {
		d.events = append(d.events, overlay.DeviceEvent{Kind: overlay.EventKeyDown, Char: r})
	}

	if ebiten.IsWindowBeingClosed() {
		d.events = append(d.events, overlay.DeviceEvent{Kind: overlay.EventQuit})
	}
}

// Pointer returns the cursor position.
func (d *Device) Pointer() overlay.Vec2 {
	x, y := ebiten.CursorPosition()
	return overlay.Vec2{X: float32(x), Y: float32(y)}
}

// Buttons polls the five mouse buttons.
func (d *Device) Buttons() [overlay.MouseButtonCount]bool {
	var held [overlay.MouseButtonCount]bool
	for b, eb := range ebitenButtons {
		held[b] = ebiten.IsMouseButtonPressed(eb)
	}
	return held
}

// KeyHeld polls a key.
func (d *Device) KeyHeld(k overlay.Key) bool {
	ek, ok := overlayToEbiten[k]
	return ok && ebiten.IsKeyPressed(ek)
}

// Drain returns the queued events.
func (d *Device) Drain() []overlay.DeviceEvent {
	out := d.events
	d.events = nil
	return out
}

// Time is an overlay.TimeSource counting Ebitengine ticks, so the
// overlay clock advances with the game's fixed update rate.
type Time struct {
	ticks int64
}

// Advance counts one update.
func (t *Time) Advance() { t.ticks++ }

// Millis converts the tick count to milliseconds.
func (t *Time) Millis() int64 {
	return t.ticks * 1000 / int64(ebiten.TPS())
}

var ebitenButtons = [overlay.MouseButtonCount]ebiten.MouseButton{
	overlay.MouseButtonLeft:   ebiten.MouseButtonLeft,
	overlay.MouseButtonMiddle: ebiten.MouseButtonMiddle,
	overlay.MouseButtonRight:  ebiten.MouseButtonRight,
	overlay.MouseButtonX1:     ebiten.MouseButton3,
	overlay.MouseButtonX2:     ebiten.MouseButton4,
}

var overlayToEbiten = func() map[overlay.Key]ebiten.Key {
	m := map[overlay.Key]ebiten.Key{
		overlay.KeyTab:         ebiten.KeyTab,
		overlay.KeyLeft:        ebiten.KeyArrowLeft,
		overlay.KeyRight:       ebiten.KeyArrowRight,
		overlay.KeyUp:          ebiten.KeyArrowUp,
		overlay.KeyDown:        ebiten.KeyArrowDown,
		overlay.KeyPageUp:      ebiten.KeyPageUp,
		overlay.KeyPageDown:    ebiten.KeyPageDown,
		overlay.KeyHome:        ebiten.KeyHome,
		overlay.KeyEnd:         ebiten.KeyEnd,
		overlay.KeyInsert:      ebiten.KeyInsert,
		overlay.KeyDelete:      ebiten.KeyDelete,
		overlay.KeyBackspace:   ebiten.KeyBackspace,
		overlay.KeySpace:       ebiten.KeySpace,
		overlay.KeyEnter:       ebiten.KeyEnter,
		overlay.KeyKeypadEnter: ebiten.KeyNumpadEnter,
		overlay.KeyEscape:      ebiten.KeyEscape,
	}
	letters := [...]ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF,
		ebiten.KeyG, ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL,
		ebiten.KeyM, ebiten.KeyN, ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR,
		ebiten.KeyS, ebiten.KeyT, ebiten.KeyU, ebiten.KeyV, ebiten.KeyW, ebiten.KeyX,
		ebiten.KeyY, ebiten.KeyZ,
	}
	for i, ek := range letters {
		m[overlay.KeyA+overlay.Key(i)] = ek
	}
	digits := [...]ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
		ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	for i, ek := range digits {
		m[overlay.Key0+overlay.Key(i)] = ek
	}
	fkeys := [...]ebiten.Key{
		ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5, ebiten.KeyF6,
		ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9, ebiten.KeyF10, ebiten.KeyF11, ebiten.KeyF12,
	}
	for i, ek := range fkeys {
		m[overlay.KeyF1+overlay.Key(i)] = ek
	}
	return m
}()

var ebitenToOverlay = func() map[ebiten.Key]overlay.Key {
	m := make(map[ebiten.Key]overlay.Key, len(overlayToEbiten))
	for k, ek := range overlayToEbiten {
		m[ek] = k
	}
	return m
}()
