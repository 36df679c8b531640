package clamped

// Verdict classifies the outcome of an arithmetic operation before the
// stored value is touched: either the true mathematical result fits the
// bounds and the operation applies unchanged, or it saturates to one of
// them. Verdicts are computed without evaluating any expression that
// could itself overflow the primitive type.
type Verdict int8

const (
	SaturateMin Verdict = iota - 1 // −1 keeps the natural ordering: SaturateMin < Unchanged < SaturateMax
	Unchanged                      // 0
	SaturateMax                    // 1
)

// String lets fmt / log print nice names.
func (v Verdict) String() string {
	switch v {
	case SaturateMin:
		return "saturate-min"
	case SaturateMax:
		return "saturate-max"
	default:
		return "unchanged"
	}
}

// Saturates reports whether the verdict clamps to either bound.
func (v Verdict) Saturates() bool { return v != Unchanged }
