package clamped

import "golang.org/x/exp/constraints"

// Decimal is a bounded floating-point value. Unlike the integer domains
// its arithmetic does not clamp: floats already saturate to infinities
// instead of wrapping, so every operation carries the Unchanged verdict
// and applies the primitive operation directly. Only SetValue clamps,
// which means a chain of arithmetic can drift outside the bounds until
// the next explicit set. There is no modulo in this domain.
type Decimal[T constraints.Float] struct {
	bounded[T]
}

// NewDecimal constructs a bounded float. Bounds inconsistent with the
// starting value are stretched to fit it, never the reverse.
func NewDecimal[T constraints.Float](value, min, max T) Decimal[T] {
	return Decimal[T]{newBounded(value, min, max)}
}

// NewNormalized constructs the default decimal: zero in [-1, 1],
// a "normalized" real number.
func NewNormalized[T constraints.Float]() Decimal[T] {
	return NewDecimal[T](0, -1, 1)
}

// Add adds other to the value. Returns the receiver to allow chaining.
func (d *Decimal[T]) Add(other T) *Decimal[T] {
	d.val += other
	return d
}

// Sub subtracts other from the value.
func (d *Decimal[T]) Sub(other T) *Decimal[T] {
	d.val -= other
	return d
}

// Mul multiplies the value by other.
func (d *Decimal[T]) Mul(other T) *Decimal[T] {
	d.val *= other
	return d
}

// Div divides the value by other. A zero divisor follows the primitive's
// native float semantics and produces an infinity or NaN.
func (d *Decimal[T]) Div(other T) *Decimal[T] {
	d.val /= other
	return d
}

// Inc adds one.
func (d *Decimal[T]) Inc() *Decimal[T] { return d.Add(1) }

// Dec subtracts one.
func (d *Decimal[T]) Dec() *Decimal[T] { return d.Sub(1) }

// Neg returns the negation: the value flips sign and the bounds carry
// over unchanged, except that construction-time stretching applies
// again, so a negated value outside the original bounds stretches them
// to fit.
func (d Decimal[T]) Neg() Decimal[T] {
	return NewDecimal(-d.val, d.min, d.max)
}

// Plus returns a copy with other added; the receiver is untouched.
func (d Decimal[T]) Plus(other T) Decimal[T] {
	out := d
	out.Add(other)
	return out
}

// Minus returns a copy with other subtracted; the receiver is untouched.
func (d Decimal[T]) Minus(other T) Decimal[T] {
	out := d
	out.Sub(other)
	return out
}

// Times returns a copy multiplied by other; the receiver is untouched.
func (d Decimal[T]) Times(other T) Decimal[T] {
	out := d
	out.Mul(other)
	return out
}

// DivBy returns a copy divided by other; the receiver is untouched.
func (d Decimal[T]) DivBy(other T) Decimal[T] {
	out := d
	out.Div(other)
	return out
}

// Comparisons consider stored values only; bounds are ignored.
func (d Decimal[T]) Eq(o Decimal[T]) bool { return d.bounded.equal(o.bounded) }
func (d Decimal[T]) Ne(o Decimal[T]) bool { return !d.Eq(o) }
func (d Decimal[T]) Lt(o Decimal[T]) bool { return d.bounded.less(o.bounded) }
func (d Decimal[T]) Le(o Decimal[T]) bool { return d.Lt(o) || d.Eq(o) }
func (d Decimal[T]) Gt(o Decimal[T]) bool { return !d.Le(o) }
func (d Decimal[T]) Ge(o Decimal[T]) bool { return !d.Lt(o) }
