package clamped

import "golang.org/x/exp/constraints"

// Natural is a bounded unsigned integer: the non-negative domain.
// All arithmetic saturates to the value's [min, max] range. Negative
// operands and bounds are unrepresentable by construction, which is what
// makes this the simplest of the three domains.
type Natural[T constraints.Unsigned] struct {
	bounded[T]
}

// NewNatural constructs a bounded unsigned value. Bounds inconsistent
// with the starting value are stretched to fit it, never the reverse.
func NewNatural[T constraints.Unsigned](value, min, max T) Natural[T] {
	return Natural[T]{newBounded(value, min, max)}
}

// AddVerdict classifies Add(other) without mutating. The headroom test
// max-val >= other cannot overflow: val never exceeds max.
func (n Natural[T]) AddVerdict(other T) Verdict {
	if n.max-n.val >= other {
		return Unchanged
	}
	return SaturateMax
}

// SubVerdict classifies Sub(other) without mutating.
func (n Natural[T]) SubVerdict(other T) Verdict {
	if n.val-n.min >= other {
		return Unchanged
	}
	return SaturateMin
}

// MulVerdict classifies Mul(other) without mutating. The quotient-first
// test max/val >= other is exact for integers and cannot overflow.
func (n Natural[T]) MulVerdict(other T) Verdict {
	switch {
	case other == 0:
		// The raw result is zero; a positive floor still clamps it.
		if n.min > 0 {
			return SaturateMin
		}
		return Unchanged
	case n.val == 0 || other == 1:
		return Unchanged
	case n.max/n.val >= other:
		return Unchanged
	default:
		return SaturateMax
	}
}

// DivVerdict classifies Div(other) without mutating. Division by zero is
// defined, not an error: it models an infinite result, saturating to max
// for a positive dividend and leaving zero at zero.
func (n Natural[T]) DivVerdict(other T) Verdict {
	switch {
	case n.val == 0:
		return Unchanged
	case other == 0:
		return SaturateMax
	case n.val/other < n.min:
		return SaturateMin
	default:
		return Unchanged
	}
}

// Add adds other to the value, saturating at max.
// Returns the receiver to allow chaining.
func (n *Natural[T]) Add(other T) *Natural[T] {
	if n.AddVerdict(other) == SaturateMax {
		n.val = n.max
	} else {
		n.val += other
	}
	return n
}

// Sub subtracts other from the value, saturating at min.
func (n *Natural[T]) Sub(other T) *Natural[T] {
	if n.SubVerdict(other) == SaturateMin {
		n.val = n.min
	} else {
		n.val -= other
	}
	return n
}

// Mul multiplies the value by other, saturating at max.
func (n *Natural[T]) Mul(other T) *Natural[T] {
	switch n.MulVerdict(other) {
	case SaturateMax:
		n.val = n.max
	case SaturateMin:
		n.val = n.min
	default:
		n.val *= other
	}
	return n
}

// Div divides the value by other, clamping the quotient at min.
// Dividing by zero saturates to max unless the value is zero.
func (n *Natural[T]) Div(other T) *Natural[T] {
	switch n.DivVerdict(other) {
	case SaturateMax:
		n.val = n.max
	case SaturateMin:
		n.val = n.min
	default:
		if other != 0 { // zero dividend over zero divisor stays zero
			n.val /= other
		}
	}
	return n
}

// Mod replaces the value with the remainder of dividing it by other,
// clamped into bounds. A zero divisor yields zero rather than a fault.
// This is the one operation whose raw arithmetic step is always safe to
// perform first, so no verdict precedes it.
func (n *Natural[T]) Mod(other T) *Natural[T] {
	var raw T
	if other != 0 {
		raw = n.val % other
	}
	n.SetValue(raw)
	return n
}

// Inc adds one, within bounds.
func (n *Natural[T]) Inc() *Natural[T] { return n.Add(1) }

// Dec subtracts one, within bounds.
func (n *Natural[T]) Dec() *Natural[T] { return n.Sub(1) }

// Plus returns a copy with other added; the receiver is untouched.
func (n Natural[T]) Plus(other T) Natural[T] {
	out := n
	out.Add(other)
	return out
}

// Minus returns a copy with other subtracted; the receiver is untouched.
func (n Natural[T]) Minus(other T) Natural[T] {
	out := n
	out.Sub(other)
	return out
}

// Times returns a copy multiplied by other; the receiver is untouched.
func (n Natural[T]) Times(other T) Natural[T] {
	out := n
	out.Mul(other)
	return out
}

// DivBy returns a copy divided by other; the receiver is untouched.
func (n Natural[T]) DivBy(other T) Natural[T] {
	out := n
	out.Div(other)
	return out
}

// ModBy returns a copy reduced modulo other; the receiver is untouched.
func (n Natural[T]) ModBy(other T) Natural[T] {
	out := n
	out.Mod(other)
	return out
}

// Comparisons consider stored values only; bounds are ignored.
func (n Natural[T]) Eq(o Natural[T]) bool { return n.bounded.equal(o.bounded) }
func (n Natural[T]) Ne(o Natural[T]) bool { return !n.Eq(o) }
func (n Natural[T]) Lt(o Natural[T]) bool { return n.bounded.less(o.bounded) }
func (n Natural[T]) Le(o Natural[T]) bool { return n.Lt(o) || n.Eq(o) }
func (n Natural[T]) Gt(o Natural[T]) bool { return !n.Le(o) }
func (n Natural[T]) Ge(o Natural[T]) bool { return !n.Lt(o) }
