package strength

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// U128 is an unsigned 128-bit integer value type. It implements just enough
// arithmetic to act as the intermediate type for 64-bit reduction and as the
// operand type for 128-bit reduction. All operations return new values.
type U128 struct {
	hi, lo uint64
}

type RandSource interface {
	Uint64() uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{lo: v} }
func U128From32(v uint32) U128       { return U128{lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{lo: uint64(v)} }

// U128FromString creates a U128 from a decimal string. Overflow truncates to
// MaxU128 and sets accurate to 'false'.
func U128FromString(s string) (out U128, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("strength: u128 string %q invalid", s)
	}
	out, accurate = U128FromBigInt(b)
	return out, accurate, nil
}

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'. Negative numbers are not accurate.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		switch len(words) {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{hi: uint64(words[1]), lo: uint64(words[0])}, true
		default:
			return MaxU128, false
		}

	case 32:
		switch len(words) {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 3:
			return U128{hi: uint64(words[2]), lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 4:
			return U128{
				hi: (uint64(words[3]) << 32) | (uint64(words[2])),
				lo: (uint64(words[1]) << 32) | (uint64(words[0])),
			}, true
		default:
			return MaxU128, false
		}

	default:
		panic("strength: unsupported bit size")
	}
}

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return u.AsBigInt().String()
}

func (u U128) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u U128) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		words := b.Bits()
		if ln := len(words); ln < 2 {
			words = append(words, make([]big.Word, 2-ln)...)
		}
		words = words[:2]
		words[0] = big.Word(u.lo)
		words[1] = big.Word(u.hi)
		b.SetBits(words)

	default:
		b.SetUint64(u.hi)
		b.Lsh(b, 64)
		var lo big.Int
		lo.SetUint64(u.lo)
		b.Add(b, &lo)
	}
}

func (u U128) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will overflow. See IsUint64() if you want to check before you convert.
func (u U128) AsUint64() uint64 { return u.lo }

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool { return u.hi == 0 }

func (u U128) Inc() (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, 1, 0)
	v.hi = u.hi + carry
	return v
}

func (u U128) Dec() (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, 1, 0)
	v.hi = u.hi - borrow
	return v
}

func (u U128) Add(n U128) (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.hi, _ = bits.Add64(u.hi, n.hi, carry)
	return v
}

func (u U128) Add64(n uint64) (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n, 0)
	v.hi = u.hi + carry
	return v
}

func (u U128) Sub(n U128) (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, borrow)
	return v
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) And(v U128) (out U128) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else {
		v.hi = u.lo
	}
	return v
}

func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else {
		v.lo = u.hi
	}
	return v
}

// Mul returns the low 128 bits of u * n.
func (u U128) Mul(n U128) (dest U128) {
	dest.hi, dest.lo = bits.Mul64(u.lo, n.lo)
	dest.hi += u.hi*n.lo + u.lo*n.hi
	return dest
}

// mul64Hi returns bits 64 to 127 of u * n. The caller guarantees the full
// product fits in 128 bits.
func (u U128) mul64Hi(n uint64) uint64 {
	hi, _ := bits.Mul64(u.lo, n)
	return hi + u.hi*n
}

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go).
func (u U128) Quo(by U128) (q U128) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u U128) Rem(by U128) (r U128) {
	_, r = u.QuoRem(by)
	return r
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// This is the naive path that ReducedU128 exists to avoid.
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.hi == 0 && by.lo == 0 {
		panic("u128: division by zero")
	}

	if by.hi == 0 {
		var r64 uint64
		q, r64 = quorem128by64(u, by.lo)
		return q, U128{lo: r64}
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder
	} else if cmp == 0 {
		return oneU128, r
	}

	return quorem128bin(u, by, u.LeadingZeros(), by.LeadingZeros())
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

// BitLen returns the minimum number of bits required to represent u. The
// result is 0 for u == 0.
func (u U128) BitLen() uint {
	return 128 - u.LeadingZeros()
}

// quorem128by64 divides a 128-bit dividend by a 64-bit divisor in two hardware
// steps; splitting on u.hi keeps each step's high word below v.
func quorem128by64(u U128, v uint64) (q U128, r uint64) {
	q.hi, r = bits.Div64(0, u.hi, v)
	q.lo, r = bits.Div64(r, u.lo, v)
	return q, r
}

func quorem128bin(u, by U128, uLeading0, byLeading0 uint) (q, r U128) {
	shift := int(byLeading0 - uLeading0)
	by = by.Lsh(uint(shift))

	for {
		q = q.Lsh(1)

		// performance tweak: simulate greater than or equal by hand-inlining "not less than".
		if !(u.hi < by.hi || (u.hi == by.hi && u.lo < by.lo)) {
			u = u.Sub(by)
			q.lo |= 1
		}

		by = by.Rsh(1)

		if shift <= 0 {
			break
		}
		shift--
	}

	return q, u
}

func (u U128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, accurate, err := U128FromString(string(bts))
	if err != nil {
		return err
	}
	if !accurate {
		return fmt.Errorf("strength: u128 string %q out of range", string(bts))
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(bts, "u128")
	if err != nil {
		return err
	}
	return u.UnmarshalText(bts)
}

// unquoteJSON strips the quotes from a JSON string holding a number, if
// present. Bare numbers pass through unchanged.
func unquoteJSON(bts []byte, kind string) ([]byte, error) {
	ln := len(bts)
	if ln == 0 {
		return nil, fmt.Errorf("strength: %s empty JSON", kind)
	}
	if bts[0] == '"' {
		if ln < 2 || bts[ln-1] != '"' {
			return nil, fmt.Errorf("strength: %s invalid JSON %q", kind, string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return bts, nil
}
