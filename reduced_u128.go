package strength

// ReducedU128 implements U128 division and modulo via multiplication and
// shifts.
//
// It follows the ReducedU64 layout one size up: the stored multiplier is the
// part of the 129-bit multiplier above 1<<128. A divisor of 1 needs a stored
// multiplier of exactly 1<<128, which does not fit in a U128, so that case is
// represented by carry: a mask applied to the numerator and added to the high
// half of the product.
type ReducedU128 struct {
	multiplier U128
	carry      U128
	divisor    U128
	shift      uint8
}

// ReduceU128 creates a reduced divisor. Construction performs a 256-bit long
// division, so it is considerably more expensive than for the narrower types.
//
// ReduceU128 panics if divisor is 0. See TryReduceU128.
func ReduceU128(divisor U128) ReducedU128 {
	if divisor.IsZero() {
		panic(zeroDivisorPanic)
	}
	if divisor.Equal(oneU128) {
		return ReducedU128{carry: MaxU128, divisor: divisor}
	}

	// See magic64; Lsh(128) yields 0, so excess wraps exactly as it does there.
	l := divisor.Dec().BitLen()
	excess := oneU128.Lsh(l).Sub(divisor)
	adj := divisor.Dec()
	numer := u256{hi: excess.hi, hm: excess.lo, lm: adj.hi, lo: adj.lo}
	mul := numer.quo(u256From128(divisor))
	if !mul.isU128() {
		panic("strength: u128 multiplier overflow")
	}

	return ReducedU128{
		multiplier: mul.asU128(),
		divisor:    divisor,
		shift:      uint8(l - 1),
	}
}

// TryReduceU128 is like ReduceU128, but returns ErrZeroDivisor instead of
// panicking.
func TryReduceU128(divisor U128) (ReducedU128, error) {
	if divisor.IsZero() {
		return ReducedU128{}, ErrZeroDivisor
	}
	return ReduceU128(divisor), nil
}

func (r ReducedU128) Div(n U128) U128 {
	t := mul128Hi(n, r.multiplier).Add(n.And(r.carry))
	return t.Add(n.Sub(t).Rsh(1)).Rsh(uint(r.shift))
}

func (r ReducedU128) Rem(n U128) U128 {
	return n.Sub(r.Div(n).Mul(r.divisor))
}

func (r ReducedU128) DivRem(n U128) (q, rem U128) {
	q = r.Div(n)
	return q, n.Sub(q.Mul(r.divisor))
}

func (r ReducedU128) Get() U128 { return r.divisor }

func (r ReducedU128) Magic() Magic {
	return Magic{
		Bits:       128,
		Variant:    VariantB,
		Divisor:    r.divisor,
		Multiplier: r.multiplier,
		Carry:      !r.carry.IsZero(),
		Shift:      uint(r.shift),
	}
}
