package main

import (
	"fmt"
	"math/big"
	"math/bits"
	"sort"
	"strings"

	strength "github.com/shabbyrobe/go-strength"
)

// width adapts one of the reduced divisor types to U128 operands so the
// commands can treat every width the same way. The adapters are only used by
// the tool; the library itself never converts.
type width interface {
	Name() string
	Bits() int
	Max() strength.U128
	Reduce(divisor strength.U128) (reduced, error)
	Naive(n, d strength.U128) (q, r strength.U128)
}

type reduced interface {
	DivRem(n strength.U128) (q, r strength.U128)
	Magic() strength.Magic
}

var widths = map[string]width{
	"8":    width8{},
	"16":   width16{},
	"32":   width32{},
	"64":   width64{},
	"uint": widthUint{},
	"128":  width128{},
}

func widthNames() []string {
	names := make([]string, 0, len(widths))
	for k := range widths {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		return widths[names[i]].Bits() < widths[names[j]].Bits() ||
			(widths[names[i]].Bits() == widths[names[j]].Bits() && names[i] < names[j])
	})
	return names
}

func lookupWidth(name string) (width, error) {
	key := strings.ToLower(name)
	if key != "uint" {
		key = strings.TrimPrefix(key, "u")
	}
	w, ok := widths[key]
	if !ok {
		return nil, fmt.Errorf("strength: unknown bits %q, expected one of %s", name, strings.Join(widthNames(), ", "))
	}
	return w, nil
}

// parseOperand parses a decimal operand and checks it fits in w.
func parseOperand(w width, s string) (strength.U128, error) {
	v, accurate, err := strength.U128FromString(s)
	if err != nil {
		return v, err
	}
	if !accurate || w.Max().LessThan(v) {
		return v, fmt.Errorf("strength: %s does not fit in %d bits", s, w.Bits())
	}
	return v, nil
}

func maxBits(n int) strength.U128 {
	return strength.MaxU128.Rsh(uint(128 - n))
}

type width8 struct{}

func (width8) Name() string       { return "u8" }
func (width8) Bits() int          { return 8 }
func (width8) Max() strength.U128 { return maxBits(8) }

func (width8) Reduce(d strength.U128) (reduced, error) {
	r, err := strength.TryReduceU8(uint8(d.AsUint64()))
	return reduced8{r}, err
}

func (width8) Naive(n, d strength.U128) (q, r strength.U128) {
	nv, dv := uint8(n.AsUint64()), uint8(d.AsUint64())
	return strength.U128From8(nv / dv), strength.U128From8(nv % dv)
}

type reduced8 struct{ strength.ReducedU8 }

func (r reduced8) DivRem(n strength.U128) (q, rem strength.U128) {
	qv, rv := r.ReducedU8.DivRem(uint8(n.AsUint64()))
	return strength.U128From8(qv), strength.U128From8(rv)
}

type width16 struct{}

func (width16) Name() string       { return "u16" }
func (width16) Bits() int          { return 16 }
func (width16) Max() strength.U128 { return maxBits(16) }

func (width16) Reduce(d strength.U128) (reduced, error) {
	r, err := strength.TryReduceU16(uint16(d.AsUint64()))
	return reduced16{r}, err
}

func (width16) Naive(n, d strength.U128) (q, r strength.U128) {
	nv, dv := uint16(n.AsUint64()), uint16(d.AsUint64())
	return strength.U128From16(nv / dv), strength.U128From16(nv % dv)
}

type reduced16 struct{ strength.ReducedU16 }

func (r reduced16) DivRem(n strength.U128) (q, rem strength.U128) {
	qv, rv := r.ReducedU16.DivRem(uint16(n.AsUint64()))
	return strength.U128From16(qv), strength.U128From16(rv)
}

type width32 struct{}

func (width32) Name() string       { return "u32" }
func (width32) Bits() int          { return 32 }
func (width32) Max() strength.U128 { return maxBits(32) }

func (width32) Reduce(d strength.U128) (reduced, error) {
	r, err := strength.TryReduceU32(uint32(d.AsUint64()))
	return reduced32{r}, err
}

func (width32) Naive(n, d strength.U128) (q, r strength.U128) {
	nv, dv := uint32(n.AsUint64()), uint32(d.AsUint64())
	return strength.U128From32(nv / dv), strength.U128From32(nv % dv)
}

type reduced32 struct{ strength.ReducedU32 }

func (r reduced32) DivRem(n strength.U128) (q, rem strength.U128) {
	qv, rv := r.ReducedU32.DivRem(uint32(n.AsUint64()))
	return strength.U128From32(qv), strength.U128From32(rv)
}

type width64 struct{}

func (width64) Name() string       { return "u64" }
func (width64) Bits() int          { return 64 }
func (width64) Max() strength.U128 { return maxBits(64) }

func (width64) Reduce(d strength.U128) (reduced, error) {
	r, err := strength.TryReduceU64(d.AsUint64())
	return reduced64{r}, err
}

func (width64) Naive(n, d strength.U128) (q, r strength.U128) {
	nv, dv := n.AsUint64(), d.AsUint64()
	return strength.U128From64(nv / dv), strength.U128From64(nv % dv)
}

type reduced64 struct{ strength.ReducedU64 }

func (r reduced64) DivRem(n strength.U128) (q, rem strength.U128) {
	qv, rv := r.ReducedU64.DivRem(n.AsUint64())
	return strength.U128From64(qv), strength.U128From64(rv)
}

type widthUint struct{}

func (widthUint) Name() string       { return "uint" }
func (widthUint) Bits() int          { return bits.UintSize }
func (widthUint) Max() strength.U128 { return maxBits(bits.UintSize) }

func (widthUint) Reduce(d strength.U128) (reduced, error) {
	r, err := strength.TryReduceUint(uint(d.AsUint64()))
	return reducedUint{r}, err
}

func (widthUint) Naive(n, d strength.U128) (q, r strength.U128) {
	nv, dv := uint(n.AsUint64()), uint(d.AsUint64())
	return strength.U128From64(uint64(nv / dv)), strength.U128From64(uint64(nv % dv))
}

type reducedUint struct{ strength.ReducedUint }

func (r reducedUint) DivRem(n strength.U128) (q, rem strength.U128) {
	qv, rv := r.ReducedUint.DivRem(uint(n.AsUint64()))
	return strength.U128From64(uint64(qv)), strength.U128From64(uint64(rv))
}

type width128 struct{}

func (width128) Name() string       { return "u128" }
func (width128) Bits() int          { return 128 }
func (width128) Max() strength.U128 { return strength.MaxU128 }

func (width128) Reduce(d strength.U128) (reduced, error) {
	return strength.TryReduceU128(d)
}

// Naive uses math/big rather than U128.QuoRem so that the check does not
// share any code with the library.
func (width128) Naive(n, d strength.U128) (q, r strength.U128) {
	qb, rb := new(big.Int).QuoRem(n.AsBigInt(), d.AsBigInt(), new(big.Int))
	q, _ = strength.U128FromBigInt(qb)
	r, _ = strength.U128FromBigInt(rb)
	return q, r
}
