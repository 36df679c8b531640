package clamped

import "math/big"

// Reference model for the saturating engines, computed in math/big so
// the expected outcome can never overflow. Mirrors the style of
// cross-checking arithmetic against big.Int reference values.

func refClamp(x, lo, hi *big.Int) *big.Int {
	if x.Cmp(lo) < 0 {
		return new(big.Int).Set(lo)
	}
	if x.Cmp(hi) > 0 {
		return new(big.Int).Set(hi)
	}
	return new(big.Int).Set(x)
}

// refStretch applies construction-time bound stretching.
func refStretch(v, lo, hi *big.Int) (outLo, outHi *big.Int) {
	outLo, outHi = new(big.Int).Set(lo), new(big.Int).Set(hi)
	if outLo.Cmp(v) > 0 {
		outLo.Set(v)
	}
	if outHi.Cmp(v) < 0 {
		outHi.Set(v)
	}
	return
}

// refApply returns the expected post-operation value for the integer
// domains: the true mathematical result clamped into [lo, hi], with the
// zero-divisor conventions of the engines.
func refApply(op string, v, w, lo, hi *big.Int) *big.Int {
	zero := new(big.Int)
	switch op {
	case "add":
		return refClamp(new(big.Int).Add(v, w), lo, hi)
	case "sub":
		return refClamp(new(big.Int).Sub(v, w), lo, hi)
	case "mul":
		return refClamp(new(big.Int).Mul(v, w), lo, hi)
	case "div":
		if w.Sign() == 0 {
			// "infinite" result: saturate toward the sign-matching bound
			switch v.Sign() {
			case 1:
				return new(big.Int).Set(hi)
			case -1:
				return new(big.Int).Set(lo)
			default:
				return zero
			}
		}
		return refClamp(new(big.Int).Quo(v, w), lo, hi)
	case "mod":
		if w.Sign() == 0 {
			return refClamp(zero, lo, hi)
		}
		return refClamp(new(big.Int).Rem(v, w), lo, hi)
	default:
		panic("unknown op " + op)
	}
}
