/*
Package strength implements unsigned integer division and modulo by a divisor
that is only known at runtime, using a precomputed multiply and shift instead of
a hardware divide.

Creating a reduced divisor costs more than a single division, but once created
it can be reused for any number of divisions. The intended use is to build it
outside a hot loop and use it inside:

	rd := strength.ReduceU64(divisor)
	rm := strength.ReduceU64(modulo)
	for i, v := range values {
		values[i] = rm.Rem(rd.Div(v))
	}

Reduced divisors are value types; they hold no pointers and may be copied and
shared between goroutines freely.

Reduced divisors exist for every unsigned width:

	ReduceU8(d uint8) ReducedU8
	ReduceU16(d uint16) ReducedU16
	ReduceU32(d uint32) ReducedU32
	ReduceU64(d uint64) ReducedU64
	ReduceUint(d uint) ReducedUint
	ReduceU128(d U128) ReducedU128

Each ReduceXXX function panics if the divisor is zero. A TryReduceXXX
counterpart returns ErrZeroDivisor instead.

The reduced types support the following formatting and marshalling interfaces,
all of which operate on the original divisor:

  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler

U128 is a minimal unsigned 128-bit value type. It is the intermediate type for
64-bit reduction and the operand type for 128-bit reduction.
*/
package strength
