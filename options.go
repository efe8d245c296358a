package overlay

// Option configures a widget at construction.
type Option func(*options)

// options holds widget configuration via the extensions map.
// All options use the OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
//
// Example:
//
//	var OptGlow = overlay.NewOptKey("glow", false)
//
//	overlay.NewButton(group, pos, colors, "Run", overlay.WithOpt(OptGlow, true))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Limits bounds a numeric input. Either side may be open.
type Limits struct {
	Min, Max       float64
	HasMin, HasMax bool
}

// clamp applies the set bounds to v.
func (l Limits) clamp(v float64) float64 {
	if l.HasMin && v < l.Min {
		v = l.Min
	}
	if l.HasMax && v > l.Max {
		v = l.Max
	}
	return v
}

// --- Built-in option keys ---
var (
	OptLayer     = NewOptKey("layer", 0)
	OptAlign     = NewOptKey("align", AlignTopLeft)
	OptTextSize  = NewOptKey("textSize", 0)
	OptBold      = NewOptKey("bold", true)
	OptRegister  = NewOptKey("register", "")
	OptDecimals  = NewOptKey("decimals", 2)
	OptLimits    = NewOptKey("limits", Limits{})
	OptIncrement = NewOptKey("increment", 1.0)
	OptActive    = NewOptKey("active", false)
)

// WithLayer sets the widget layer. Without it a widget takes its
// group's layer.
func WithLayer(layer int) Option { return WithOpt(OptLayer, layer) }

// WithAlign picks the rectangle point that tracks the widget position.
func WithAlign(a Align) Option { return WithOpt(OptAlign, a) }

// WithTextSize overrides the GUI text size.
func WithTextSize(size int) Option { return WithOpt(OptTextSize, size) }

// WithBold toggles bold text (default on).
func WithBold(bold bool) Option { return WithOpt(OptBold, bold) }

// WithRegister binds the widget's value to a named register of the GUI.
func WithRegister(name string) Option { return WithOpt(OptRegister, name) }

// WithDecimals sets how many decimals numeric values keep.
func WithDecimals(n int) Option { return WithOpt(OptDecimals, n) }

// WithLimits bounds a numeric input on both sides.
func WithLimits(minVal, maxVal float64) Option {
	return WithOpt(OptLimits, Limits{Min: minVal, Max: maxVal, HasMin: true, HasMax: true})
}

// WithMin bounds a numeric input from below only.
func WithMin(minVal float64) Option {
	return WithOpt(OptLimits, Limits{Min: minVal, HasMin: true})
}

// WithMax bounds a numeric input from above only.
func WithMax(maxVal float64) Option {
	return WithOpt(OptLimits, Limits{Max: maxVal, HasMax: true})
}

// WithIncrement sets the scroll step of a numeric input.
func WithIncrement(step float64) Option { return WithOpt(OptIncrement, step) }

// Active creates a floating window already activated.
func Active() Option { return WithOpt(OptActive, true) }
