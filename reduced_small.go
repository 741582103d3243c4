package strength

import (
	"math/bits"
)

// ReducedU8 implements uint8 division and modulo via multiplication and shifts.
//
// The multiplier needs 9 bits. Division is a single widened multiply followed
// by a single shift of the whole product.
type ReducedU8 struct {
	multiplier uint16
	divisor    uint8
	shift      uint8
}

// ReduceU8 creates a reduced divisor. Avoid calling it from an inner loop:
// build it once outside the loop and use it inside.
//
// ReduceU8 panics if divisor is 0. See TryReduceU8.
func ReduceU8(divisor uint8) ReducedU8 {
	if divisor == 0 {
		panic(zeroDivisorPanic)
	}
	if divisor == 1 {
		return ReducedU8{multiplier: 1, divisor: 1}
	}

	wide := uint32(divisor)
	shift := uint(bits.Len8(divisor-1)) + 8

	return ReducedU8{
		multiplier: uint16(((1 << shift) + wide - 1) / wide),
		divisor:    divisor,
		shift:      uint8(shift),
	}
}

// TryReduceU8 is like ReduceU8, but returns ErrZeroDivisor instead of panicking.
func TryReduceU8(divisor uint8) (ReducedU8, error) {
	if divisor == 0 {
		return ReducedU8{}, ErrZeroDivisor
	}
	return ReduceU8(divisor), nil
}

// Div returns n / r.Get().
func (r ReducedU8) Div(n uint8) uint8 {
	return uint8((uint32(n) * uint32(r.multiplier)) >> r.shift)
}

// Rem returns n % r.Get().
func (r ReducedU8) Rem(n uint8) uint8 {
	return n - r.Div(n)*r.divisor
}

// DivRem returns the truncated quotient and remainder of n / r.Get() using a
// single multiply-shift.
func (r ReducedU8) DivRem(n uint8) (q, rem uint8) {
	q = r.Div(n)
	return q, n - q*r.divisor
}

// Get returns the divisor used to create r.
func (r ReducedU8) Get() uint8 { return r.divisor }

func (r ReducedU8) Magic() Magic {
	return Magic{
		Bits:       8,
		Variant:    VariantA,
		Divisor:    U128From8(r.divisor),
		Multiplier: U128From16(r.multiplier),
		Shift:      uint(r.shift),
	}
}

// ReducedU16 implements uint16 division and modulo via multiplication and
// shifts. It uses the same layout as ReducedU8 with a 17-bit multiplier.
type ReducedU16 struct {
	multiplier uint32
	divisor    uint16
	shift      uint8
}

// ReduceU16 creates a reduced divisor. It panics if divisor is 0. See
// TryReduceU16.
func ReduceU16(divisor uint16) ReducedU16 {
	if divisor == 0 {
		panic(zeroDivisorPanic)
	}
	if divisor == 1 {
		return ReducedU16{multiplier: 1, divisor: 1}
	}

	wide := uint64(divisor)
	shift := uint(bits.Len16(divisor-1)) + 16

	return ReducedU16{
		multiplier: uint32(((1 << shift) + wide - 1) / wide),
		divisor:    divisor,
		shift:      uint8(shift),
	}
}

// TryReduceU16 is like ReduceU16, but returns ErrZeroDivisor instead of panicking.
func TryReduceU16(divisor uint16) (ReducedU16, error) {
	if divisor == 0 {
		return ReducedU16{}, ErrZeroDivisor
	}
	return ReduceU16(divisor), nil
}

func (r ReducedU16) Div(n uint16) uint16 {
	return uint16((uint64(n) * uint64(r.multiplier)) >> r.shift)
}

func (r ReducedU16) Rem(n uint16) uint16 {
	return n - r.Div(n)*r.divisor
}

func (r ReducedU16) DivRem(n uint16) (q, rem uint16) {
	q = r.Div(n)
	return q, n - q*r.divisor
}

func (r ReducedU16) Get() uint16 { return r.divisor }

func (r ReducedU16) Magic() Magic {
	return Magic{
		Bits:       16,
		Variant:    VariantA,
		Divisor:    U128From16(r.divisor),
		Multiplier: U128From32(r.multiplier),
		Shift:      uint(r.shift),
	}
}
