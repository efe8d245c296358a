package overlay

import (
	"strconv"
	"strings"
	"sync"
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyKeypadEnter
	KeyEscape
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCount
)

var keyNames = map[Key]string{
	KeyNone:        "--",
	KeyTab:         "Tab",
	KeyLeft:        "Left",
	KeyRight:       "Right",
	KeyUp:          "Up",
	KeyDown:        "Down",
	KeyPageUp:      "PgUp",
	KeyPageDown:    "PgDn",
	KeyHome:        "Home",
	KeyEnd:         "End",
	KeyInsert:      "Ins",
	KeyDelete:      "Del",
	KeyBackspace:   "Backspace",
	KeySpace:       "Space",
	KeyEnter:       "Enter",
	KeyKeypadEnter: "KpEnter",
	KeyEscape:      "Esc",
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + int(k-Key0)))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}

var (
	parseOnce  sync.Once
	parseTable map[string]Key
)

// ParseKey looks a key up by name, ignoring case. Besides KeyName's
// output it accepts "escape", "return", "backspace", "space" and friends.
func ParseKey(name string) (Key, bool) {
	parseOnce.Do(func() {
		parseTable = map[string]Key{
			"escape": KeyEscape, "return": KeyEnter, "enter": KeyEnter,
			"delete": KeyDelete, "insert": KeyInsert, "pageup": KeyPageUp,
			"pagedown": KeyPageDown, "keypad enter": KeyKeypadEnter,
		}
		for k := KeyNone + 1; k < KeyCount; k++ {
			parseTable[strings.ToLower(KeyName(k))] = k
		}
	})
	k, ok := parseTable[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// Binding maps a key to a named action with auto-repeat.
// Delay and Period are in milliseconds; a Period of zero disables repeat.
type Binding struct {
	Key    Key
	Delay  int64
	Period int64
}

type binding struct {
	key    Key
	delay  int64
	signal *Timer
	hold   bool
	mark   int64
}

// Bind registers a key binding under an action name, replacing any
// previous binding of that name.
func (t *InputTracker) Bind(name string, b Binding) {
	if old, ok := t.bindings[name]; ok && old.signal != nil {
		t.clock.Remove(old.signal)
	}
	nb := &binding{key: b.Key, delay: b.Delay}
	if b.Period > 0 {
		nb.signal = t.clock.NewTimer(b.Period, Periodic())
	}
	t.bindings[name] = nb
}

func (b *binding) update(held bool, now int64) ActionState {
	var press bool
	switch {
	case held && !b.hold:
		press = true
		b.mark = now
	case held:
		if b.signal != nil && now-b.delay > b.mark {
			press = b.signal.Query()
		}
	}
	b.hold = held
	return ActionState{Press: press, Hold: held}
}
