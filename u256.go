package strength

import (
	"math/bits"
)

// u256 implements just enough of a 256-bit integer to derive the multiplier
// for 128-bit reduction, which needs a 256-bit dividend.
type u256 struct {
	hi, hm, lm, lo uint64
}

func u256From128(in U128) u256 {
	return u256{lm: in.hi, lo: in.lo}
}

func (u u256) sub(n u256) (v u256) {
	var b uint64
	v.lo, b = bits.Sub64(u.lo, n.lo, 0)
	v.lm, b = bits.Sub64(u.lm, n.lm, b)
	v.hm, b = bits.Sub64(u.hm, n.hm, b)
	v.hi, _ = bits.Sub64(u.hi, n.hi, b)
	return v
}

func (u u256) cmp(n u256) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.hm > n.hm {
		return 1
	} else if u.hm < n.hm {
		return -1
	} else if u.lm > n.lm {
		return 1
	} else if u.lm < n.lm {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u u256) isZero() bool {
	return u.hi|u.hm|u.lm|u.lo == 0
}

func (u u256) leadingZeros() uint {
	if u.hi != 0 {
		return uint(bits.LeadingZeros64(u.hi))
	} else if u.hm != 0 {
		return uint(bits.LeadingZeros64(u.hm)) + 64
	} else if u.lm != 0 {
		return uint(bits.LeadingZeros64(u.lm)) + 128
	} else if u.lo != 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 192
	}
	return 256
}

func (u u256) lsh1() u256 {
	return u256{
		hi: (u.hi << 1) | (u.hm >> 63),
		hm: (u.hm << 1) | (u.lm >> 63),
		lm: (u.lm << 1) | (u.lo >> 63),
		lo: u.lo << 1,
	}
}

func (u u256) rsh1() u256 {
	return u256{
		hi: u.hi >> 1,
		hm: (u.hm >> 1) | (u.hi << 63),
		lm: (u.lm >> 1) | (u.hm << 63),
		lo: (u.lo >> 1) | (u.lm << 63),
	}
}

func (u u256) lsh(n uint) u256 {
	for ; n >= 64; n -= 64 {
		u = u256{hi: u.hm, hm: u.lm, lm: u.lo}
	}
	if n == 0 {
		return u
	}
	return u256{
		hi: (u.hi << n) | (u.hm >> (64 - n)),
		hm: (u.hm << n) | (u.lm >> (64 - n)),
		lm: (u.lm << n) | (u.lo >> (64 - n)),
		lo: u.lo << n,
	}
}

func (u u256) isU128() bool { return u.hi == 0 && u.hm == 0 }

func (u u256) asU128() U128 { return U128{hi: u.lm, lo: u.lo} }

// quo implements binary long division. It only runs during construction, so
// it favours simplicity over speed.
func (u u256) quo(by u256) (q u256) {
	if by.isZero() {
		panic("u256: division by zero")
	}
	if u.cmp(by) < 0 {
		return q
	}

	shift := int(by.leadingZeros() - u.leadingZeros())
	by = by.lsh(uint(shift))

	for {
		q = q.lsh1()
		if u.cmp(by) >= 0 {
			u = u.sub(by)
			q.lo |= 1
		}
		by = by.rsh1()

		if shift <= 0 {
			break
		}
		shift--
	}
	return q
}
