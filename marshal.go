package strength

import (
	"fmt"
	"math/bits"
	"strconv"
)

// Reduced divisors marshal as their divisor. Unmarshalling re-derives the
// multiplier and shift, so the derived numbers never travel over the wire.

func (r ReducedU8) String() string   { return strconv.FormatUint(uint64(r.divisor), 10) }
func (r ReducedU16) String() string  { return strconv.FormatUint(uint64(r.divisor), 10) }
func (r ReducedU32) String() string  { return strconv.FormatUint(uint64(r.divisor), 10) }
func (r ReducedU64) String() string  { return strconv.FormatUint(r.divisor, 10) }
func (r ReducedUint) String() string { return strconv.FormatUint(uint64(r.divisor), 10) }
func (r ReducedU128) String() string { return r.divisor.String() }

func (r ReducedU8) MarshalText() ([]byte, error)   { return []byte(r.String()), nil }
func (r ReducedU16) MarshalText() ([]byte, error)  { return []byte(r.String()), nil }
func (r ReducedU32) MarshalText() ([]byte, error)  { return []byte(r.String()), nil }
func (r ReducedU64) MarshalText() ([]byte, error)  { return []byte(r.String()), nil }
func (r ReducedUint) MarshalText() ([]byte, error) { return []byte(r.String()), nil }
func (r ReducedU128) MarshalText() ([]byte, error) { return r.divisor.MarshalText() }

func (r ReducedU8) MarshalJSON() ([]byte, error)   { return []byte(r.String()), nil }
func (r ReducedU16) MarshalJSON() ([]byte, error)  { return []byte(r.String()), nil }
func (r ReducedU32) MarshalJSON() ([]byte, error)  { return []byte(r.String()), nil }
func (r ReducedU64) MarshalJSON() ([]byte, error)  { return []byte(r.String()), nil }
func (r ReducedUint) MarshalJSON() ([]byte, error) { return []byte(r.String()), nil }

// MarshalJSON encodes the divisor as a string, as U128 does, because most JSON
// decoders cannot represent 128-bit numbers.
func (r ReducedU128) MarshalJSON() ([]byte, error) { return r.divisor.MarshalJSON() }

func (r *ReducedU8) UnmarshalText(bts []byte) error {
	v, err := parseDivisor(bts, "u8", 8)
	if err != nil {
		return err
	}
	*r = ReduceU8(uint8(v))
	return nil
}

func (r *ReducedU16) UnmarshalText(bts []byte) error {
	v, err := parseDivisor(bts, "u16", 16)
	if err != nil {
		return err
	}
	*r = ReduceU16(uint16(v))
	return nil
}

func (r *ReducedU32) UnmarshalText(bts []byte) error {
	v, err := parseDivisor(bts, "u32", 32)
	if err != nil {
		return err
	}
	*r = ReduceU32(uint32(v))
	return nil
}

func (r *ReducedU64) UnmarshalText(bts []byte) error {
	v, err := parseDivisor(bts, "u64", 64)
	if err != nil {
		return err
	}
	*r = ReduceU64(v)
	return nil
}

func (r *ReducedUint) UnmarshalText(bts []byte) error {
	v, err := parseDivisor(bts, "uint", bits.UintSize)
	if err != nil {
		return err
	}
	*r = ReduceUint(uint(v))
	return nil
}

func (r *ReducedU128) UnmarshalText(bts []byte) error {
	var d U128
	if err := d.UnmarshalText(bts); err != nil {
		return err
	}
	if d.IsZero() {
		return fmt.Errorf("strength: u128 divisor %q: %w", string(bts), ErrZeroDivisor)
	}
	*r = ReduceU128(d)
	return nil
}

func (r *ReducedU8) UnmarshalJSON(bts []byte) error {
	return unmarshalJSONDivisor(bts, "u8", r)
}

func (r *ReducedU16) UnmarshalJSON(bts []byte) error {
	return unmarshalJSONDivisor(bts, "u16", r)
}

func (r *ReducedU32) UnmarshalJSON(bts []byte) error {
	return unmarshalJSONDivisor(bts, "u32", r)
}

func (r *ReducedU64) UnmarshalJSON(bts []byte) error {
	return unmarshalJSONDivisor(bts, "u64", r)
}

func (r *ReducedUint) UnmarshalJSON(bts []byte) error {
	return unmarshalJSONDivisor(bts, "uint", r)
}

func (r *ReducedU128) UnmarshalJSON(bts []byte) error {
	return unmarshalJSONDivisor(bts, "u128", r)
}

type textUnmarshaler interface {
	UnmarshalText(bts []byte) error
}

// unmarshalJSONDivisor accepts both bare and quoted numbers. A JSON null
// leaves the destination untouched, matching encoding/json's convention.
func unmarshalJSONDivisor(bts []byte, kind string, into textUnmarshaler) error {
	if string(bts) == "null" {
		return nil
	}
	bts, err := unquoteJSON(bts, kind)
	if err != nil {
		return err
	}
	return into.UnmarshalText(bts)
}

func parseDivisor(bts []byte, kind string, bitSize int) (uint64, error) {
	v, err := strconv.ParseUint(string(bts), 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("strength: %s divisor %q invalid: %w", kind, string(bts), err)
	}
	if v == 0 {
		return 0, fmt.Errorf("strength: %s divisor %q: %w", kind, string(bts), ErrZeroDivisor)
	}
	return v, nil
}
