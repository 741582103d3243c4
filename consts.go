package strength

import "errors"

const (
	maxUint8  = 1<<8 - 1
	maxUint16 = 1<<16 - 1
	maxUint32 = 1<<32 - 1
	maxUint64 = 1<<64 - 1

	intSize = 32 << (^uint(0) >> 63)
)

// ErrZeroDivisor is returned by the TryReduce functions and by the unmarshalling
// methods when asked to reduce a divisor of 0.
var ErrZeroDivisor = errors.New("strength: zero divisor")

const zeroDivisorPanic = "strength: zero divisor"

var (
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	zeroU128 U128
	oneU128  = U128{lo: 1}
)

// Variant identifies which layout a reduced divisor uses.
type Variant uint8

const (
	// VariantA stores the whole multiplier, which is one bit wider than the
	// operand. The numerator is widened, multiplied and shifted once. Used for
	// 8 and 16 bits.
	VariantA Variant = iota + 1

	// VariantB stores the multiplier minus 1<<W, where W is the operand width.
	// The high half of the product is corrected with a halving add, then
	// shifted again. Used for 32, 64 and 128 bits and for uint.
	VariantB
)

func (v Variant) String() string {
	switch v {
	case VariantA:
		return "A"
	case VariantB:
		return "B"
	default:
		return "?"
	}
}

// Magic describes the numbers derived for a reduced divisor. It is intended
// for diagnostics; the hot path never builds one.
type Magic struct {
	Bits       int
	Variant    Variant
	Divisor    U128
	Multiplier U128

	// Carry is the 129th bit of the multiplier. It is only ever set for a
	// 128-bit divisor of 1, whose multiplier is 1<<128.
	Carry bool

	Shift uint
}
