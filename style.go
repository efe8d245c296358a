package overlay

// Swatch is a color pair switched by a widget's hot state (hovered,
// held or editing).
type Swatch struct {
	Idle, Hot uint32
}

// Pick returns Hot when hot is set.
func (s Swatch) Pick(hot bool) uint32 {
	if hot {
		return s.Hot
	}
	return s.Idle
}

// Tone colors the two parts of a compound widget: the caption and the
// value. Sliders use Caption for the knob and Value for the rail.
type Tone struct {
	Caption, Value uint32
}

// Palette switches between two tones.
type Palette struct {
	Idle, Hot Tone

	// Background fills an open dropdown list. Zero skips it.
	Background uint32
}

// Pick returns the Hot tone when hot is set.
func (p Palette) Pick(hot bool) Tone {
	if hot {
		return p.Hot
	}
	return p.Idle
}

// WindowStyle colors a FloatingWindow.
type WindowStyle struct {
	Body  uint32
	Frame Swatch // Hot while the window holds focus
	Title uint32
	Close Swatch // Hot while the close box is hovered
}

// Theme is a ready-made set of colors for the built-in widgets.
type Theme struct {
	Background uint32
	Label      uint32
	Data       Tone
	Button     Swatch
	Danger     Swatch
	Control    Palette
	Slider     Palette
	Window     WindowStyle
}

// DefaultTheme returns a grey debug-overlay theme.
func DefaultTheme() Theme {
	grey := func(v uint8) uint32 { return RGBA(v, v, v, 255) }
	return Theme{
		Background: grey(24),
		Label:      grey(200),
		Data:       Tone{Caption: grey(150), Value: grey(230)},
		Button:     Swatch{Idle: grey(170), Hot: grey(250)},
		Danger:     Swatch{Idle: RGBA(190, 60, 60, 255), Hot: RGBA(250, 90, 90, 255)},
		Control: Palette{
			Idle:       Tone{Caption: grey(150), Value: grey(200)},
			Hot:        Tone{Caption: grey(200), Value: grey(250)},
			Background: grey(40),
		},
		Slider: Palette{
			Idle: Tone{Caption: grey(160), Value: grey(80)},
			Hot:  Tone{Caption: grey(230), Value: grey(110)},
		},
		Window: WindowStyle{
			Body:  grey(32),
			Frame: Swatch{Idle: grey(60), Hot: grey(90)},
			Title: grey(220),
			Close: Swatch{Idle: RGBA(150, 50, 50, 255), Hot: RGBA(230, 70, 70, 255)},
		},
	}
}
