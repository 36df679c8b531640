package clamped

import (
	"math/big"
	"testing"

	"golang.org/x/exp/constraints"

	"github.com/stretchr/testify/require"
)

func TestNaturalAddBoundary(t *testing.T) {
	num := NewNatural[uint](5, 0, 10)
	require.Equal(t, uint(10), num.Add(10).Value(), "saturates, does not become 15")
}

// TestNaturalIdempotentSaturation checks that once the value sits at
// max, any further positive addition leaves it there.
func TestNaturalIdempotentSaturation(t *testing.T) {
	num := NewNatural[uint64](5, 0, 10)
	num.Maximize()
	for _, k := range []uint64{1, 10, ^uint64(0)} {
		num.Add(k)
		require.Equal(t, uint64(10), num.Value())
	}
}

func TestNaturalSubBoundary(t *testing.T) {
	num := NewNatural[uint](5, 0, 10)
	require.Equal(t, uint(0), num.Sub(10).Value())
}

func TestNaturalMulBoundary(t *testing.T) {
	num := NewNatural[uint](10, 0, 50)
	require.Equal(t, uint(50), num.Mul(10).Value())
}

func TestNaturalDivBoundary(t *testing.T) {
	num := NewNatural[uint](50, 25, 100)
	require.Equal(t, uint(25), num.Div(10).Value())
}

func TestNaturalDivByZero(t *testing.T) {
	num := NewNatural[uint](7, 0, 10)
	require.Equal(t, uint(10), num.Div(0).Value(), "positive dividend saturates to max")

	num = NewNatural[uint](0, 0, 10)
	require.Equal(t, uint(0), num.Div(0).Value(), "zero dividend stays zero")
}

func TestNaturalModByZero(t *testing.T) {
	num := NewNatural[uint](7, 0, 10)
	require.Equal(t, uint(0), num.Mod(0).Value())
}

func TestNaturalMulByZeroClampsToFloor(t *testing.T) {
	num := NewNatural[uint](7, 3, 10)
	require.Equal(t, uint(3), num.Mul(0).Value(), "raw zero clamps up to a positive floor")
}

func TestNaturalChaining(t *testing.T) {
	num := NewNatural[uint](5, 0, 100)
	got := num.Add(10).Mul(2).Sub(5).Value()
	require.Equal(t, uint(25), got)
	require.Equal(t, uint(25), num.Value(), "chained calls mutate the same instance")
}

func TestNaturalIncDec(t *testing.T) {
	num := NewNatural[uint8](254, 0, 255)
	require.Equal(t, uint8(255), num.Inc().Value())
	require.Equal(t, uint8(255), num.Inc().Value(), "pinned at max")
	require.Equal(t, uint8(254), num.Dec().Value())
}

func TestNaturalNonMutatingForms(t *testing.T) {
	num := NewNatural[uint](5, 0, 10)
	require.Equal(t, uint(10), num.Plus(10).Value())
	require.Equal(t, uint(0), num.Minus(10).Value())
	require.Equal(t, uint(10), num.Times(3).Value())
	require.Equal(t, uint(1), num.DivBy(4).Value())
	require.Equal(t, uint(2), num.ModBy(3).Value())
	require.Equal(t, uint(5), num.Value(), "left operand is never mutated")
}

func TestNaturalVerdicts(t *testing.T) {
	num := NewNatural[uint8](200, 0, 250)
	require.Equal(t, Unchanged, num.AddVerdict(50))
	require.Equal(t, SaturateMax, num.AddVerdict(51))
	require.Equal(t, Unchanged, num.SubVerdict(200))
	require.Equal(t, SaturateMin, NewNatural[uint8](5, 3, 10).SubVerdict(3))
	require.Equal(t, SaturateMax, num.MulVerdict(2))
	require.Equal(t, SaturateMax, num.DivVerdict(0))
	require.Equal(t, uint8(200), num.Value(), "verdicts never mutate")
}

// TestNaturalGrid drives every operation across combinations of edge
// values, bounds and operands, checking each outcome and the bounds
// invariant against the big.Int reference model.
func TestNaturalGrid(t *testing.T) {
	t.Run("uint8", testNaturalGrid[uint8])
	t.Run("uint16", testNaturalGrid[uint16])
	t.Run("uint64", testNaturalGrid[uint64])
}

func testNaturalGrid[V constraints.Unsigned](t *testing.T) {
	m := ^V(0)
	require.Less(t, m+1, m, "sanity check max value does overflow")
	vals := []V{0, 1, 2, 3, m, m - 1, m / 2, (m / 2) + 1}
	ops := []string{"add", "sub", "mul", "div", "mod"}

	toBig := func(v V) *big.Int { return new(big.Int).SetUint64(uint64(v)) }

	for _, lo := range vals {
		for _, hi := range vals {
			for _, v := range vals {
				for _, w := range vals {
					num := NewNatural(v, lo, hi)
					bLo, bHi := refStretch(toBig(v), toBig(lo), toBig(hi))
					for _, op := range ops {
						work := num
						switch op {
						case "add":
							work.Add(w)
						case "sub":
							work.Sub(w)
						case "mul":
							work.Mul(w)
						case "div":
							work.Div(w)
						case "mod":
							work.Mod(w)
						}
						want := refApply(op, toBig(v), toBig(w), bLo, bHi)
						if got := toBig(work.Value()); got.Cmp(want) != 0 {
							t.Fatalf("%s: value %d [%d, %d] with operand %d: got %s, want %s",
								op, v, lo, hi, w, got, want)
						}
						if work.Value() < work.MinValue() || work.Value() > work.MaxValue() {
							t.Fatalf("%s: invariant broken: %s", op, work)
						}
						if work.MinValue() != num.MinValue() || work.MaxValue() != num.MaxValue() {
							t.Fatalf("%s: arithmetic moved the bounds: %s -> %s", op, num, work)
						}
					}
				}
			}
		}
	}
}
