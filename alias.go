package clamped

import "math"

// Width and category aliases. Each is a plain instantiation of one of
// the three domain types; the New* constructors default the bounds to
// the representable extremes of the primitive, turning the alias into a
// non-wrapping counterpart of its primitive type. No new logic lives
// here.
type (
	Uint8  = Natural[uint8]
	Uint16 = Natural[uint16]
	Uint32 = Natural[uint32]
	Uint64 = Natural[uint64]
	Uint   = Natural[uint]

	Int8  = Integer[int8]
	Int16 = Integer[int16]
	Int32 = Integer[int32]
	Int64 = Integer[int64]
	Int   = Integer[int]

	Float32 = Decimal[float32]
	Float64 = Decimal[float64]
)

func NewUint8(v uint8) Uint8    { return NewNatural[uint8](v, 0, math.MaxUint8) }
func NewUint16(v uint16) Uint16 { return NewNatural[uint16](v, 0, math.MaxUint16) }
func NewUint32(v uint32) Uint32 { return NewNatural[uint32](v, 0, math.MaxUint32) }
func NewUint64(v uint64) Uint64 { return NewNatural[uint64](v, 0, math.MaxUint64) }
func NewUint(v uint) Uint       { return NewNatural[uint](v, 0, math.MaxUint) }

func NewInt8(v int8) Int8    { return NewInteger[int8](v, math.MinInt8, math.MaxInt8) }
func NewInt16(v int16) Int16 { return NewInteger[int16](v, math.MinInt16, math.MaxInt16) }
func NewInt32(v int32) Int32 { return NewInteger[int32](v, math.MinInt32, math.MaxInt32) }
func NewInt64(v int64) Int64 { return NewInteger[int64](v, math.MinInt64, math.MaxInt64) }
func NewInt(v int) Int       { return NewInteger[int](v, math.MinInt, math.MaxInt) }

func NewFloat32(v float32) Float32 {
	return NewDecimal[float32](v, -math.MaxFloat32, math.MaxFloat32)
}

func NewFloat64(v float64) Float64 {
	return NewDecimal[float64](v, -math.MaxFloat64, math.MaxFloat64)
}
