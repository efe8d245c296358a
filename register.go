package overlay

import "github.com/spf13/cast"

// Register is a mutable value cell that several widgets can share.
// Named registers live in the GUI's table (see GUI.Register); every
// lookup of the same name returns the same *Register.
//
// Typed reads are best effort: a value that cannot be converted reads as
// the zero value of the requested type.
type Register struct {
	value any
}

// NewRegister creates a private register that is not entered into any
// table.
func NewRegister(v any) *Register {
	return &Register{value: v}
}

// Value returns the raw value.
func (r *Register) Value() any { return r.value }

// Set replaces the value.
func (r *Register) Set(v any) { r.value = v }

// IsSet reports whether the register holds a value.
func (r *Register) IsSet() bool { return r.value != nil }

// Bool reads the value as a bool.
func (r *Register) Bool() bool { return cast.ToBool(r.value) }

// Int reads the value as an int.
func (r *Register) Int() int { return cast.ToInt(r.value) }

// Float reads the value as a float64.
func (r *Register) Float() float64 { return cast.ToFloat64(r.value) }

// String reads the value as a string.
func (r *Register) String() string { return cast.ToString(r.value) }
