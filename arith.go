package strength

import "math/bits"

// mul128to256 returns the full 256-bit product of n and by as two U128 halves.
func mul128to256(n, by U128) (hi, lo U128) {
	h0, l0 := bits.Mul64(n.lo, by.lo)
	h1, l1 := bits.Mul64(n.lo, by.hi)
	h2, l2 := bits.Mul64(n.hi, by.lo)
	h3, l3 := bits.Mul64(n.hi, by.hi)

	var c1, c2, c3, c4 uint64
	lo.lo = l0
	lo.hi, c1 = bits.Add64(h0, l1, 0)
	lo.hi, c2 = bits.Add64(lo.hi, l2, 0)
	hi.lo, c3 = bits.Add64(h1, h2, c1)
	hi.lo, c4 = bits.Add64(hi.lo, l3, c2)
	hi.hi = h3 + c3 + c4
	return hi, lo
}

// mul128Hi returns the high 128 bits of n * by.
func mul128Hi(n, by U128) U128 {
	hi, _ := mul128to256(n, by)
	return hi
}
