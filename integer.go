package clamped

import "golang.org/x/exp/constraints"

// Integer is a bounded signed integer. It carries everything Natural
// does plus negative values, negative bounds and unary negation, which
// makes it the hardest domain: every verdict has to account for the
// sign interaction between the value, the operand and the bounds.
type Integer[T constraints.Signed] struct {
	bounded[T]
}

// NewInteger constructs a bounded signed value. Bounds inconsistent
// with the starting value are stretched to fit it, never the reverse.
func NewInteger[T constraints.Signed](value, min, max T) Integer[T] {
	return Integer[T]{newBounded(value, min, max)}
}

// AddVerdict classifies Add(other) without mutating. Negative operands
// classify as the mirrored subtraction; the most negative operand has no
// positive counterpart and is classified as two subtractions that
// together remove -other.
func (n Integer[T]) AddVerdict(other T) Verdict {
	switch {
	case other == 0:
		return Unchanged
	case other > 0:
		return n.addPos(other)
	default:
		if q := -other; q > 0 {
			return n.subPos(q)
		}
		step := n
		if step.subPos(-(other + 1)) == SaturateMin {
			return SaturateMin
		}
		step.val -= -(other + 1)
		return step.subPos(1)
	}
}

// SubVerdict classifies Sub(other) without mutating, mirroring
// AddVerdict with the roles of the two bounds swapped.
func (n Integer[T]) SubVerdict(other T) Verdict {
	switch {
	case other == 0:
		return Unchanged
	case other > 0:
		return n.subPos(other)
	default:
		if q := -other; q > 0 {
			return n.addPos(q)
		}
		step := n
		if step.addPos(-(other + 1)) == SaturateMax {
			return SaturateMax
		}
		step.val += -(other + 1)
		return step.addPos(1)
	}
}

// addPos classifies adding a strictly positive operand. When the value
// and max sit on opposite sides of zero the raw sum cannot overflow and
// is compared directly; otherwise the subtraction-first headroom test
// max-val >= other is itself overflow-free.
func (n Integer[T]) addPos(other T) Verdict {
	if n.max >= 0 && n.val <= 0 {
		if n.val+other <= n.max {
			return Unchanged
		}
		return SaturateMax
	}
	if n.max-n.val >= other {
		return Unchanged
	}
	return SaturateMax
}

// subPos classifies subtracting a strictly positive operand. Zero sits
// in the mixed-sign branch: val-min overflows at the type extremes when
// the value is exactly zero, while val-other never can.
func (n Integer[T]) subPos(other T) Verdict {
	if n.min <= 0 && n.val >= 0 {
		if n.val-other >= n.min {
			return Unchanged
		}
		return SaturateMin
	}
	if n.val-n.min >= other {
		return Unchanged
	}
	return SaturateMin
}

// MulVerdict classifies Mul(other) without mutating. The sign of the
// true product selects the bound at risk; the quotient-first comparisons
// are exact for truncating integer division and cannot overflow.
func (n Integer[T]) MulVerdict(other T) Verdict {
	switch {
	case n.val == 0 || other == 1:
		return Unchanged
	case other == 0:
		// The raw result is zero; bounds on one side of zero clamp it.
		if n.min > 0 {
			return SaturateMin
		}
		if n.max < 0 {
			return SaturateMax
		}
		return Unchanged
	case n.val > 0 && other > 0:
		if n.max/n.val >= other {
			return Unchanged
		}
		return SaturateMax
	case n.val < 0 && other < 0:
		// Product is positive.
		if n.max < 0 {
			return SaturateMax
		}
		if other >= n.max/n.val {
			return Unchanged
		}
		return SaturateMax
	case n.val > 0:
		// other < 0: product is negative.
		if n.min > 0 {
			return SaturateMin
		}
		if other >= n.min/n.val {
			return Unchanged
		}
		return SaturateMin
	default:
		// val < 0, other > 1: product is more negative.
		if n.val >= n.min/other {
			return Unchanged
		}
		return SaturateMin
	}
}

// DivVerdict classifies Div(other) without mutating. A zero divisor is
// defined to model an infinite result: it saturates toward the bound
// matching the dividend's sign, and zero stays zero. Dividing by -1 is
// the one quotient that can overflow, so it classifies as the
// multiplication it delegates to.
func (n Integer[T]) DivVerdict(other T) Verdict {
	switch {
	case n.val == 0 || other == 1:
		return Unchanged
	case other == 0:
		if n.val > 0 {
			return SaturateMax
		}
		return SaturateMin
	case other == -1:
		return n.MulVerdict(-1)
	default:
		// |other| >= 2: the quotient is exactly representable.
		q := n.val / other
		if q < n.min {
			return SaturateMin
		}
		if q > n.max {
			return SaturateMax
		}
		return Unchanged
	}
}

// Add adds other to the value, saturating at the bounds.
// Returns the receiver to allow chaining.
func (n *Integer[T]) Add(other T) *Integer[T] {
	switch n.AddVerdict(other) {
	case SaturateMax:
		n.val = n.max
	case SaturateMin:
		n.val = n.min
	default:
		n.val += other
	}
	return n
}

// Sub subtracts other from the value, saturating at the bounds.
func (n *Integer[T]) Sub(other T) *Integer[T] {
	switch n.SubVerdict(other) {
	case SaturateMax:
		n.val = n.max
	case SaturateMin:
		n.val = n.min
	default:
		n.val -= other
	}
	return n
}

// Mul multiplies the value by other, saturating at the bounds.
func (n *Integer[T]) Mul(other T) *Integer[T] {
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

// Div divides the value by other, clamping the quotient at the bounds.
// Dividing by zero saturates toward the bound matching the value's sign.
func (n *Integer[T]) Div(other T) *Integer[T] {
	if other == -1 {
		return n.Mul(-1)
	}
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
func (n *Integer[T]) Mod(other T) *Integer[T] {
	var raw T
	if other != 0 {
		raw = n.val % other
	}
	n.SetValue(raw)
	return n
}

// Inc adds one, within bounds.
func (n *Integer[T]) Inc() *Integer[T] { return n.Add(1) }

// Dec subtracts one, within bounds.
func (n *Integer[T]) Dec() *Integer[T] { return n.Sub(1) }

// Neg returns the negation: the value flips sign and the bounds carry
// over unchanged, except that construction-time stretching applies
// again, so a negated value outside the original bounds stretches them
// to fit. The most negative value has no representable negation and
// saturates to the type maximum.
func (n Integer[T]) Neg() Integer[T] {
	v := -n.val
	if v == n.val && v != 0 {
		v = -(n.val + 1)
	}
	return NewInteger(v, n.min, n.max)
}

// Plus returns a copy with other added; the receiver is untouched.
func (n Integer[T]) Plus(other T) Integer[T] {
	out := n
	out.Add(other)
	return out
}

// Minus returns a copy with other subtracted; the receiver is untouched.
func (n Integer[T]) Minus(other T) Integer[T] {
	out := n
	out.Sub(other)
	return out
}

// Times returns a copy multiplied by other; the receiver is untouched.
func (n Integer[T]) Times(other T) Integer[T] {
	out := n
	out.Mul(other)
	return out
}

// DivBy returns a copy divided by other; the receiver is untouched.
func (n Integer[T]) DivBy(other T) Integer[T] {
	out := n
	out.Div(other)
	return out
}

// ModBy returns a copy reduced modulo other; the receiver is untouched.
func (n Integer[T]) ModBy(other T) Integer[T] {
	out := n
	out.Mod(other)
	return out
}

// Comparisons consider stored values only; bounds are ignored.
func (n Integer[T]) Eq(o Integer[T]) bool { return n.bounded.equal(o.bounded) }
func (n Integer[T]) Ne(o Integer[T]) bool { return !n.Eq(o) }
func (n Integer[T]) Lt(o Integer[T]) bool { return n.bounded.less(o.bounded) }
func (n Integer[T]) Le(o Integer[T]) bool { return n.Lt(o) || n.Eq(o) }
func (n Integer[T]) Gt(o Integer[T]) bool { return !n.Le(o) }
func (n Integer[T]) Ge(o Integer[T]) bool { return !n.Lt(o) }
