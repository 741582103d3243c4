package strength

import (
	"math/bits"
)

// ReducedU32 implements uint32 division and modulo via multiplication and
// shifts.
//
// The full multiplier needs 33 bits. Its top bit is implicit: the stored value
// is the remainder above 1<<32, kept at the 64-bit intermediate width. The
// product is shifted down by 32 and narrowed, the implicit bit is folded back
// in without overflowing 32 bits, then the result is shifted once more.
type ReducedU32 struct {
	multiplier uint64
	divisor    uint32
	shift      uint8
}

// ReduceU32 creates a reduced divisor. It panics if divisor is 0. See
// TryReduceU32.
func ReduceU32(divisor uint32) ReducedU32 {
	if divisor == 0 {
		panic(zeroDivisorPanic)
	}
	mul, shift := magic32(divisor)
	return ReducedU32{multiplier: mul, divisor: divisor, shift: shift}
}

// TryReduceU32 is like ReduceU32, but returns ErrZeroDivisor instead of panicking.
func TryReduceU32(divisor uint32) (ReducedU32, error) {
	if divisor == 0 {
		return ReducedU32{}, ErrZeroDivisor
	}
	return ReduceU32(divisor), nil
}

func (r ReducedU32) Div(n uint32) uint32 {
	t := uint32((uint64(n) * r.multiplier) >> 32)
	return (t + (n-t)>>1) >> r.shift
}

func (r ReducedU32) Rem(n uint32) uint32 {
	return n - r.Div(n)*r.divisor
}

func (r ReducedU32) DivRem(n uint32) (q, rem uint32) {
	q = r.Div(n)
	return q, n - q*r.divisor
}

func (r ReducedU32) Get() uint32 { return r.divisor }

func (r ReducedU32) Magic() Magic {
	return Magic{
		Bits:       32,
		Variant:    VariantB,
		Divisor:    U128From32(r.divisor),
		Multiplier: U128From64(r.multiplier),
		Shift:      uint(r.shift),
	}
}

// ReducedU64 implements uint64 division and modulo via multiplication and
// shifts, using U128 as the intermediate type. The layout matches ReducedU32.
//
// Creating a ReducedU64 involves a 128-bit division, so it only pays off when
// the divisor is reused more than a handful of times.
type ReducedU64 struct {
	multiplier U128
	divisor    uint64
	shift      uint8
}

// ReduceU64 creates a reduced divisor. It panics if divisor is 0. See
// TryReduceU64.
func ReduceU64(divisor uint64) ReducedU64 {
	if divisor == 0 {
		panic(zeroDivisorPanic)
	}
	mul, shift := magic64(divisor)
	return ReducedU64{multiplier: mul, divisor: divisor, shift: shift}
}

// TryReduceU64 is like ReduceU64, but returns ErrZeroDivisor instead of panicking.
func TryReduceU64(divisor uint64) (ReducedU64, error) {
	if divisor == 0 {
		return ReducedU64{}, ErrZeroDivisor
	}
	return ReduceU64(divisor), nil
}

func (r ReducedU64) Div(n uint64) uint64 {
	t := r.multiplier.mul64Hi(n)
	return (t + (n-t)>>1) >> r.shift
}

func (r ReducedU64) Rem(n uint64) uint64 {
	return n - r.Div(n)*r.divisor
}

func (r ReducedU64) DivRem(n uint64) (q, rem uint64) {
	q = r.Div(n)
	return q, n - q*r.divisor
}

func (r ReducedU64) Get() uint64 { return r.divisor }

func (r ReducedU64) Magic() Magic {
	return Magic{
		Bits:       64,
		Variant:    VariantB,
		Divisor:    U128From64(r.divisor),
		Multiplier: r.multiplier,
		Shift:      uint(r.shift),
	}
}

// magic32 derives the variant B multiplier and shift for a 32-bit divisor.
//
// With l = ceil(log2(divisor)), the full multiplier is
// ceil(2^(32+l) / divisor), which always lies in [2^32, 2^33). Only the part
// above 2^32 is returned: ceil(2^32 * (2^l - divisor) / divisor). A divisor of
// 1 gets 1<<32 and no shift, which makes Div the identity.
func magic32(divisor uint32) (mul uint64, shift uint8) {
	if divisor == 1 {
		return 1 << 32, 0
	}
	l := uint(bits.Len32(divisor - 1))
	wide := uint64(divisor)
	excess := (uint64(1) << l) - wide
	return ((excess << 32) + wide - 1) / wide, uint8(l - 1)
}

// magic64 is magic32 for 64-bit divisors. 2^l can be 2^64, which wraps to 0
// in the subtraction below; the difference is still exact modulo 2^64 and
// is always smaller than the divisor, so bits.Div64 cannot overflow.
func magic64(divisor uint64) (mul U128, shift uint8) {
	if divisor == 1 {
		return U128{hi: 1}, 0
	}
	l := uint(bits.Len64(divisor - 1))
	excess := (uint64(1) << l) - divisor
	mul.lo, _ = bits.Div64(excess, divisor-1, divisor)
	return mul, uint8(l - 1)
}
