package overlay

// Filter is an exponential moving average, used to steady readouts such
// as the frame rate.
type Filter struct {
	coef  float64
	state float64
}

// NewFilter creates a filter. coef is the weight of each new sample and
// is clamped to [0, 1]; 1 passes samples through unchanged.
func NewFilter(coef, initial float64) *Filter {
	return &Filter{coef: clamp64(coef, 0, 1), state: initial}
}

// Apply feeds a sample and returns the filtered value.
func (f *Filter) Apply(v float64) float64 {
	f.state = f.state*(1-f.coef) + v*f.coef
	return f.state
}

// Value returns the current filtered value.
func (f *Filter) Value() float64 { return f.state }
