// Package clamped provides bounded numeric values. Each value carries an
// inclusive [min, max] range it can never leave, and every arithmetic
// operation saturates to those bounds instead of wrapping, trapping, or
// invoking undefined behavior. The intended use is counters, accumulators
// and ratios that must stay inside a validated range: a health bar, a
// normalized value in [-1, 1], a byte counter that should never wrap.
//
// The package defines one storage model applied to three numeric domains:
// Natural for unsigned integers, Integer for signed integers, and Decimal
// for floats. The domains differ only in which arithmetic rules apply;
// selection is a type-level choice, not a runtime branch. Width aliases
// (Uint8 ... Float64) instantiate the domains with default bounds equal
// to the representable extremes of the primitive, turning each alias into
// a non-wrapping counterpart of its primitive type.
//
// The overflow checks never evaluate an expression that could itself
// overflow: they compare against a bound-derived headroom (for example
// max-current against the operand) rather than computing the raw result
// first. See Verdict for the three-way outcome classification.
package clamped

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the capability set required of a wrapped primitive:
// total ordering, the basic arithmetic operators, and comparability
// against the literals 0 and 1.
type Number interface {
	constraints.Integer | constraints.Float
}

// bounded is the storage shared by the three domain types. It maintains
// min <= val <= max after construction and after every mutation.
type bounded[T Number] struct {
	val, min, max T
}

// newBounded stretches inconsistent bounds to fit the starting value
// instead of rejecting them: a minimum above the value is lowered to the
// value, a maximum below the value is raised to it.
func newBounded[T Number](value, min, max T) bounded[T] {
	if min > value {
		min = value
	}
	if max < value {
		max = value
	}
	return bounded[T]{val: value, min: min, max: max}
}

// Value returns the current value.
func (b bounded[T]) Value() T { return b.val }

// MinValue returns the inclusive lower bound.
func (b bounded[T]) MinValue() T { return b.min }

// MaxValue returns the inclusive upper bound.
func (b bounded[T]) MaxValue() T { return b.max }

// SetValue stores v clamped into [min, max] and returns what was stored.
// It cannot fail: out-of-range inputs become the nearest bound.
func (b *bounded[T]) SetValue(v T) T {
	if v < b.min {
		v = b.min
	} else if v > b.max {
		v = b.max
	}
	b.val = v
	return v
}

// SetMin adopts newMin as the lower bound, unless that would place the
// bound above the current value; then the current value is adopted
// instead. Returns the bound actually stored.
func (b *bounded[T]) SetMin(newMin T) T {
	if newMin > b.val {
		newMin = b.val
	}
	b.min = newMin
	return newMin
}

// SetMax adopts newMax as the upper bound, unless that would place the
// bound below the current value; then the current value is adopted
// instead. Returns the bound actually stored.
func (b *bounded[T]) SetMax(newMax T) T {
	if newMax < b.val {
		newMax = b.val
	}
	b.max = newMax
	return newMax
}

// Minimize forces the value to the lower bound.
func (b *bounded[T]) Minimize() T {
	b.val = b.min
	return b.val
}

// Maximize forces the value to the upper bound.
func (b *bounded[T]) Maximize() T {
	b.val = b.max
	return b.val
}

// Bool reports whether the value equals zero. Note the polarity: this is
// the inverse of the usual truthy-nonzero convention, so a value whose
// range excludes zero can never be true.
func (b bounded[T]) Bool() bool { return b.val == 0 }

func (b bounded[T]) String() string {
	return fmt.Sprintf("%v [%v, %v]", b.val, b.min, b.max)
}

// equal and less compare stored values only; bounds play no part.
// The remaining relations are derived from these two, so the six
// comparison operators can never disagree with each other.
func (b bounded[T]) equal(o bounded[T]) bool { return b.val == o.val }
func (b bounded[T]) less(o bounded[T]) bool  { return b.val < o.val }
