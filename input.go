package overlay

import "unicode"

// MouseButton represents a pointer button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonX1
	MouseButtonX2
	MouseButtonCount
)

// TextKind classifies the single text token a snapshot carries.
type TextKind uint8

const (
	TextNone TextKind = iota
	TextChar
	TextBackspace
	TextReturn
	TextEscape
)

// TextToken is the normalized text/key event of one tick.
type TextToken struct {
	Kind TextKind
	Char rune // set when Kind is TextChar
}

// EventKind tells DeviceEvent variants apart.
type EventKind uint8

const (
	EventScroll EventKind = iota
	EventKeyDown
	EventQuit
)

// DeviceEvent is one raw queued event from the platform layer.
type DeviceEvent struct {
	Kind   EventKind
	Key    Key  // EventKeyDown: the key, KeyNone for pure text
	Char   rune // EventKeyDown: printable character, 0 if none
	Scroll int  // EventScroll: signed wheel steps
}

// Device is the raw input source polled once per tick.
type Device interface {
	// Pointer returns the pointer position in canvas coordinates.
	Pointer() Vec2
	// Buttons returns the raw held state of the five pointer buttons.
	Buttons() [MouseButtonCount]bool
	// KeyHeld reports whether a key is currently down.
	KeyHeld(k Key) bool
	// Drain returns and clears the events queued since the last call.
	Drain() []DeviceEvent
}

// InputSnapshot holds the input state of one tick. It is built by
// InputTracker.Update and never changes afterwards, so any number of
// widgets may read it.
type InputSnapshot struct {
	tick  uint64
	now   int64
	delta float64

	pointer Vec2
	drag    Vec2

	held     [MouseButtonCount]bool
	pressed  [MouseButtonCount]bool // True on the tick the button went down
	released [MouseButtonCount]bool // True on the tick the button went up

	scroll  int
	text    TextToken
	quit    bool
	actions map[string]ActionState
}

// ActionState is the state of a key binding on one tick.
type ActionState struct {
	Press bool // edge, re-asserted while auto-repeating
	Hold  bool
}

// Tick returns the tick counter, starting at 1.
func (s *InputSnapshot) Tick() uint64 { return s.tick }

// Now returns the clock time of this tick in milliseconds.
func (s *InputSnapshot) Now() int64 { return s.now }

// Delta returns the frame time in seconds.
func (s *InputSnapshot) Delta() float64 { return s.delta }

// Pointer returns the pointer position.
func (s *InputSnapshot) Pointer() Vec2 { return s.pointer }

// Drag returns the drag origin minus the current pointer position.
// It is zero whenever the left button is up.
func (s *InputSnapshot) Drag() Vec2 { return s.drag }

// Held returns true while a button is down.
func (s *InputSnapshot) Held(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.held[button]
}

// Pressed returns true on the tick a button went down.
func (s *InputSnapshot) Pressed(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.pressed[button]
}

// Released returns true on the tick a button went up.
func (s *InputSnapshot) Released(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.released[button]
}

// Scroll returns the wheel steps of this tick.
func (s *InputSnapshot) Scroll() int { return s.scroll }

// Text returns the text token of this tick.
func (s *InputSnapshot) Text() TextToken { return s.text }

// Quit reports whether the platform asked to close.
func (s *InputSnapshot) Quit() bool { return s.quit }

// Action returns the state of a named key binding.
func (s *InputSnapshot) Action(name string) (press, hold bool) {
	st := s.actions[name]
	return st.Press, st.Hold
}

// InputTracker turns raw device state into snapshots. It keeps the
// previous tick's button state for edge detection and the drag origin.
type InputTracker struct {
	clock     *Clock
	tick      uint64
	prevHeld  [MouseButtonCount]bool
	dragStart Vec2
	bindings  map[string]*binding
}

// NewInputTracker creates a tracker reading time from clock.
func NewInputTracker(clock *Clock) *InputTracker {
	return &InputTracker{
		clock:    clock,
		bindings: make(map[string]*binding),
	}
}

// Update polls dev and returns this tick's snapshot.
// Call it once per tick, after Clock.Update.
func (t *InputTracker) Update(dev Device) *InputSnapshot {
	t.tick++
	s := &InputSnapshot{
		tick:    t.tick,
		now:     t.clock.Now(),
		delta:   t.clock.Delta(),
		pointer: dev.Pointer(),
		held:    dev.Buttons(),
	}

	for _, ev := range dev.Drain() {
		switch ev.Kind {
		case EventScroll:
			s.scroll += ev.Scroll
		case EventQuit:
			s.quit = true
		case EventKeyDown:
			if s.text.Kind != TextNone {
				continue
			}
			if tok, ok := resolveText(ev); ok {
				s.text = tok
			}
		}
	}

	// The drag origin follows the pointer until the tick the button goes down.
	if !s.held[MouseButtonLeft] || !t.prevHeld[MouseButtonLeft] {
		t.dragStart = s.pointer
	}
	s.drag = t.dragStart.Sub(s.pointer)

	for b := MouseButton(0); b < MouseButtonCount; b++ {
		s.pressed[b] = s.held[b] && !t.prevHeld[b]
		s.released[b] = !s.held[b] && t.prevHeld[b]
	}
	t.prevHeld = s.held

	if len(t.bindings) > 0 {
		s.actions = make(map[string]ActionState, len(t.bindings))
		for name, b := range t.bindings {
			s.actions[name] = b.update(dev.KeyHeld(b.key), s.now)
		}
	}

	return s
}

// resolveText maps a key-down event to a text token.
func resolveText(ev DeviceEvent) (TextToken, bool) {
	switch ev.Key {
	case KeyBackspace:
		return TextToken{Kind: TextBackspace}, true
	case KeyEnter, KeyKeypadEnter:
		return TextToken{Kind: TextReturn}, true
	case KeyEscape:
		return TextToken{Kind: TextEscape}, true
	}
	if ev.Char != 0 && unicode.IsPrint(ev.Char) {
		return TextToken{Kind: TextChar, Char: ev.Char}, true
	}
	return TextToken{}, false
}
