//go:build !386 && !arm && !mips && !mipsle && !mips64p32 && !mips64p32le && !ppc && !riscv && !s390 && !sparc

package strength

// ReducedUint implements uint division and modulo via multiplication and
// shifts. On this platform uint is 64 bits wide, so ReducedUint shares the
// layout and derivation of ReducedU64.
type ReducedUint struct {
	multiplier U128
	divisor    uint
	shift      uint8
}

// ReduceUint creates a reduced divisor. It panics if divisor is 0. See
// TryReduceUint.
func ReduceUint(divisor uint) ReducedUint {
	if divisor == 0 {
		panic(zeroDivisorPanic)
	}
	mul, shift := magic64(uint64(divisor))
	return ReducedUint{multiplier: mul, divisor: divisor, shift: shift}
}

func (r ReducedUint) Div(n uint) uint {
	t := r.multiplier.mul64Hi(uint64(n))
	return uint((t + (uint64(n)-t)>>1) >> r.shift)
}

func (r ReducedUint) Magic() Magic {
	return Magic{
		Bits:       64,
		Variant:    VariantB,
		Divisor:    U128From64(uint64(r.divisor)),
		Multiplier: r.multiplier,
		Shift:      uint(r.shift),
	}
}
