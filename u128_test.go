package strength

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var (
	u64 = U128From64

	maxBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)
)

func bigU64(u uint64) *big.Int { return new(big.Int).SetUint64(u) }

func bigs(s string) *big.Int {
	v, _ := new(big.Int).SetString(strings.Replace(s, " ", "", -1), 0)
	return v
}

func u128s(s string) U128 {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("strength: u128 string %q invalid", s))
	}
	out, acc := U128FromBigInt(b)
	if !acc {
		panic(fmt.Errorf("strength: inaccurate u128 %s", s))
	}
	return out
}

func randU128() U128 {
	u := U128{lo: globalRNG.Uint64()}
	if globalRNG.Intn(2) == 1 {
		// if we always generate hi bits, the universe will die before we
		// test a number < maxInt64
		u.hi = globalRNG.Uint64()
	}
	return u
}

func TestU128AsBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a U128
		b *big.Int
	}{
		{U128{0, 2}, bigU64(2)},
		{U128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFE}, bigs("0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFE")},
		{U128{0x1, 0x0}, bigs("18446744073709551616")},
		{U128{0x1, 0xFFFFFFFFFFFFFFFF}, bigs("36893488147419103231")}, // (1<<65) - 1
		{U128{0x1, 0x8AC7230489E7FFFF}, bigs("28446744073709551615")},
		{U128{0x7FFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, bigs("170141183460469231731687303715884105727")},
		{U128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF")},
		{U128{0x8000000000000000, 0}, bigs("0x 8000000000000000 0000000000000000")},
	} {
		t.Run(fmt.Sprintf("%d/%d,%d=%s", idx, tc.a.hi, tc.a.lo, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.AsBigInt()
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: %s", v)
		})
	}
}

func TestU128Add(t *testing.T) {
	for _, tc := range []struct {
		a, b, c U128
	}{
		{u64(1), u64(2), u64(3)},
		{u64(10), u64(3), u64(13)},
		{MaxU128, u64(1), u64(0)},                               // Overflow wraps
		{u64(maxUint64), u64(1), u128s("18446744073709551616")}, // lo carries to hi
		{u128s("18446744073709551615"), u128s("18446744073709551615"), u128s("36893488147419103230")},
	} {
		t.Run(fmt.Sprintf("%s+%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.c.Equal(tc.a.Add(tc.b)))
			if tc.b.IsUint64() {
				tt.MustAssert(tc.c.Equal(tc.a.Add64(tc.b.AsUint64())))
			}
		})
	}
}

func TestU128Sub(t *testing.T) {
	for _, tc := range []struct {
		a, b, c U128
	}{
		{u64(3), u64(2), u64(1)},
		{u64(0), u64(1), MaxU128}, // Underflow wraps
		{u128s("18446744073709551616"), u64(1), u64(maxUint64)},
		{MaxU128, MaxU128, u64(0)},
	} {
		t.Run(fmt.Sprintf("%s-%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.c.Equal(tc.a.Sub(tc.b)))
		})
	}
}

func TestU128Dec(t *testing.T) {
	for _, tc := range []struct {
		a, b U128
	}{
		{u64(1), u64(0)},
		{u64(10), u64(9)},
		{u64(maxUint64), u128s("18446744073709551614")},
		{u64(0), MaxU128},
		{u64(maxUint64).Add(u64(1)), u64(maxUint64)},
	} {
		t.Run(fmt.Sprintf("%s-1=%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			dec := tc.a.Dec()
			tt.MustAssert(tc.b.Equal(dec), "%s - 1 != %s, found %s", tc.a, tc.b, dec)
		})
	}
}

func TestU128Inc(t *testing.T) {
	for _, tc := range []struct {
		a, b U128
	}{
		{u64(1), u64(2)},
		{u64(10), u64(11)},
		{u64(maxUint64), u128s("18446744073709551616")},
		{u64(maxUint64), u64(maxUint64).Add(u64(1))},
		{MaxU128, u64(0)},
	} {
		t.Run(fmt.Sprintf("%s+1=%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			inc := tc.a.Inc()
			tt.MustAssert(tc.b.Equal(inc), "%s + 1 != %s, found %s", tc.a, tc.b, inc)
		})
	}
}

func TestU128Format(t *testing.T) {
	for idx, tc := range []struct {
		v   U128
		fmt string
		out string
	}{
		{u64(1), "%d", "1"},
		{u64(1), "%s", "1"},
		{u64(1), "%v", "1"},
		{MaxU128, "%d", "340282366920938463463374607431768211455"},
		{MaxU128, "%o", "3777777777777777777777777777777777777777777"},
		{MaxU128, "%b", strings.Repeat("1", 128)},
		{MaxU128, "%#x", "0xffffffffffffffffffffffffffffffff"},
		{MaxU128, "%#X", "0XFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"},
	} {
		t.Run(fmt.Sprintf("%d/%s/%s", idx, tc.fmt, tc.v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			result := fmt.Sprintf(tc.fmt, tc.v)
			tt.MustEqual(tc.out, result)
		})
	}
}

func TestU128FromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a   *big.Int
		b   U128
		acc bool
	}{
		{bigU64(2), u64(2), true},
		{bigs("18446744073709551616"), U128{hi: 0x1, lo: 0x0}, true},                // 1 << 64
		{bigs("36893488147419103231"), U128{hi: 0x1, lo: 0xFFFFFFFFFFFFFFFF}, true}, // (1<<65) - 1
		{bigs("28446744073709551615"), u128s("28446744073709551615"), true},
		{bigs("170141183460469231731687303715884105727"), u128s("170141183460469231731687303715884105727"), true},
		{bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF"), U128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, true},
		{bigs("0x 1 0000000000000000 00000000000000000"), MaxU128, false},
		{bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFFF"), MaxU128, false},
		{bigs("-1"), U128{}, false},
	} {
		t.Run(fmt.Sprintf("%d/%s=%d,%d", idx, tc.a, tc.b.lo, tc.b.hi), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc := U128FromBigInt(tc.a)
			tt.MustEqual(acc, tc.acc)
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: (%d, %d), expected (%d, %d)", v.hi, v.lo, tc.b.hi, tc.b.lo)
		})
	}
}

func TestU128FromString(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out U128
		acc bool
		ok  bool
	}{
		{"0", u64(0), true, true},
		{"18446744073709551616", U128{hi: 1}, true, true},
		{"340282366920938463463374607431768211455", MaxU128, true, true},
		{"340282366920938463463374607431768211456", MaxU128, false, true},
		{"0x10", U128{}, false, false},
		{"", U128{}, false, false},
	} {
		t.Run(fmt.Sprintf("%d/%q", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc, err := U128FromString(tc.in)
			tt.MustEqual(tc.ok, err == nil, "%v", err)
			if tc.ok {
				tt.MustEqual(tc.acc, acc)
				tt.MustAssert(tc.out.Equal(v), "%s != %s", tc.out, v)
			}
		})
	}
}

func TestU128FromSize(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(U128From8(255), u128s("255"))
	tt.MustEqual(U128From16(65535), u128s("65535"))
	tt.MustEqual(U128From32(4294967295), u128s("4294967295"))
	tt.MustEqual(U128FromRaw(1, 2), U128{hi: 1, lo: 2})
}

func TestU128BitLen(t *testing.T) {
	for _, tc := range []struct {
		u      U128
		bitLen uint
		tz     uint
	}{
		{u64(1), 1, 0},
		{u64(2), 2, 1},
		{u64(maxUint64), 64, 0},
		{U128{hi: 1}, 65, 64},
		{MaxU128, 128, 0},
		{U128{hi: 1 << 63}, 128, 127},
	} {
		t.Run(fmt.Sprintf("bitlen(%s)=%d", tc.u, tc.bitLen), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.bitLen, tc.u.BitLen())
			tt.MustEqual(tc.tz, tc.u.TrailingZeros())
			tt.MustEqual(uint(tc.u.AsBigInt().BitLen()), tc.u.BitLen())
		})
	}

	tt := assert.WrapTB(t)
	tt.MustEqual(uint(0), zeroU128.BitLen())
}

func TestU128Lsh(t *testing.T) {
	for idx, tc := range []struct {
		u  U128
		by uint
		r  U128
	}{
		{u: u64(2), by: 1, r: u64(4)},
		{u: u64(1), by: 2, r: u64(4)},
		{u: u128s("18446744073709551615"), by: 1, r: u128s("36893488147419103230")}, // (1<<64) - 1
		{u: u64(1), by: 128, r: u64(0)},
		{u: MaxU128, by: 64, r: U128{hi: maxUint64}},

		// These cases were found by the fuzzer:
		{u: u128s("5080864651895"), by: 57, r: u128s("732229764895815899943471677440")},
		{u: u128s("63669103"), by: 85, r: u128s("2463079120908903847397520463364096")},
		{u: u128s("0x1f1ecfd29cb51500c1a0699657"), by: 104, r: u128s("0x69965700000000000000000000000000")},
		{u: u128s("0x4ff0d215cf8c26f26344"), by: 58, r: u128s("0xc348573e309bc98d1000000000000000")},
		{u: u128s("173760885"), by: 68, r: u128s("51285161209860430747989442560")},
		{u: u128s("213"), by: 65, r: u128s("7858312975400268988416")},
	} {
		t.Run(fmt.Sprintf("%d/%s<<%d=%s", idx, tc.u, tc.by, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)

			ub := tc.u.AsBigInt()
			ub.Lsh(ub, tc.by).And(ub, maxBigU128)

			ru := tc.u.Lsh(tc.by)
			tt.MustEqual(tc.r.String(), ru.String(), "%s != %s; big: %s", tc.r, ru, ub)
			tt.MustEqual(ub.String(), ru.String())
		})
	}
}

func TestU128Rsh(t *testing.T) {
	for _, tc := range []struct {
		u  U128
		by uint
		r  U128
	}{
		{u: u64(2), by: 1, r: u64(1)},
		{u: u64(1), by: 2, r: u64(0)},
		{u: u128s("36893488147419103232"), by: 1, r: u128s("18446744073709551616")}, // (1<<65) - 1
		{u: MaxU128, by: 128, r: u64(0)},
		{u: MaxU128, by: 64, r: u64(maxUint64)},

		// These test cases were found by the fuzzer:
		{u: u128s("2465608830469196860151950841431"), by: 104, r: u64(0)},
		{u: u128s("377509308958315595850564"), by: 58, r: u64(1309748)},
		{u: u128s("8504691434450337657905929307096"), by: 74, r: u128s("450234615")},
		{u: u128s("11595557904603123290159404941902684322"), by: 50, r: u128s("10298924295251697538375")},
		{u: u128s("3731491383344351937489898072501894878"), by: 112, r: u64(718)},
	} {
		t.Run(fmt.Sprintf("%s>>%d=%s", tc.u, tc.by, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)

			ub := tc.u.AsBigInt()
			ub.Rsh(ub, tc.by).And(ub, maxBigU128)

			ru := tc.u.Rsh(tc.by)
			tt.MustEqual(tc.r.String(), ru.String(), "%s != %s; big: %s", tc.r, ru, ub)
			tt.MustEqual(ub.String(), ru.String())
		})
	}
}

func TestU128Mul(t *testing.T) {
	tt := assert.WrapTB(t)

	u := U128From64(maxUint64)
	v := u.Mul(U128From64(maxUint64))

	var v1, v2 big.Int
	v1.SetUint64(maxUint64)
	v2.SetUint64(maxUint64)
	tt.MustEqual(v.String(), v1.Mul(&v1, &v2).String())
}

func TestU128MulRandom(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 5000; i++ {
		a, b := randU128(), randU128()
		expected := new(big.Int).Mul(a.AsBigInt(), b.AsBigInt())
		expected.And(expected, maxBigU128)
		tt.MustEqual(expected.String(), a.Mul(b).String(), "%s * %s", a, b)
	}
}

func TestU128Mul64Hi(t *testing.T) {
	tt := assert.WrapTB(t)

	check := func(u U128, n uint64) {
		expected := new(big.Int).Mul(u.AsBigInt(), bigU64(n))
		expected.Rsh(expected, 64)
		tt.MustEqual(expected.String(), bigU64(u.mul64Hi(n)).String(), "%s * %d", u, n)
	}

	// Multipliers are either below 1<<64 or exactly 1<<64 (divisor 1); anything
	// else with the high bit set would need 129 bits of product.
	check(U128{hi: 1}, maxUint64)
	check(U128{hi: 1}, 0)
	check(u64(maxUint64), maxUint64)

	for i := 0; i < 5000; i++ {
		u := u64(globalRNG.Uint64())
		if globalRNG.Intn(16) == 0 {
			u = U128{hi: 1}
		}
		check(u, globalRNG.Uint64())
	}

	for i := 0; i < 5000; i++ {
		d := globalRNG.Uint64() >> uint(globalRNG.Intn(64))
		if d == 0 {
			continue
		}
		check(ReduceU64(d).multiplier, globalRNG.Uint64())
	}
}

func TestU128QuoRem(t *testing.T) {
	for idx, tc := range []struct {
		u, by, q, r U128
	}{
		{u: u64(1), by: u64(2), q: u64(0), r: u64(1)},
		{u: u64(10), by: u64(3), q: u64(3), r: u64(1)},
		{u: MaxU128, by: u64(1), q: MaxU128, r: u64(0)},
		{u: MaxU128, by: u64(maxUint64), q: u128s("18446744073709551617"), r: u64(0)},

		// Investigate possible div/0 where lo of divisor is 0:
		{u: U128{hi: 0, lo: 1}, by: U128{hi: 1, lo: 0}, q: u64(0), r: u64(1)},

		// 128-bit 'cmp == 0' shortcut branch:
		{u128s("0x1234567890123456"), u128s("0x1234567890123456"), u64(1), u64(0)},

		// 128-bit 'cmp < 0' shortcut branch:
		{u128s("0x123456789012345678901234"), u128s("0x222222229012345678901234"), u64(0), u128s("0x123456789012345678901234")},

		// 128-bit 'cmp == 0' shortcut branch:
		{u128s("0x123456789012345678901234"), u128s("0x123456789012345678901234"), u64(1), u64(0)},

		// These test cases were found by the fuzzer and exposed a bug in the 128-bit divisor
		// branch of divmod128by128:
		{u128s("3289699161974853443944280720275488"), u128s("9261249991223143249760"), u128s("355211139435"), u128s("96980854802329989888")},
		{u128s("555579170280843546177"), u128s("21475569273528505412"), u64(25), u128s("18689938442630910877")},
	} {
		t.Run(fmt.Sprintf("%d/%s÷%s=%s,%s", idx, tc.u, tc.by, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)

			uBig := tc.u.AsBigInt()
			byBig := tc.by.AsBigInt()

			qBig, rBig := new(big.Int).QuoRem(uBig, byBig, new(big.Int))
			tt.MustEqual(tc.q.String(), qBig.String())
			tt.MustEqual(tc.r.String(), rBig.String())

			q, r := tc.u.QuoRem(tc.by)
			tt.MustEqual(tc.q.String(), q.String())
			tt.MustEqual(tc.r.String(), r.String())

			tt.MustEqual(q, tc.u.Quo(tc.by))
			tt.MustEqual(r, tc.u.Rem(tc.by))
		})
	}
}

func TestU128QuoRemRandom(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 5000; i++ {
		u, by := randU128(), randU128()
		if by.IsZero() {
			continue
		}
		qBig, rBig := new(big.Int).QuoRem(u.AsBigInt(), by.AsBigInt(), new(big.Int))
		q, r := u.QuoRem(by)
		tt.MustEqual(qBig.String(), q.String(), "%s / %s", u, by)
		tt.MustEqual(rBig.String(), r.String(), "%s %% %s", u, by)
	}
}

func TestU128QuoRemByZero(t *testing.T) {
	tt := assert.WrapTB(t)
	rec := expectPanic(func() { u64(1).QuoRem(zeroU128) })
	tt.MustEqual("u128: division by zero", rec)
}

func TestU128MarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 5000; i++ {
		u := randU128()

		bts, err := json.Marshal(u)
		tt.MustOK(err)

		var result U128
		tt.MustOK(json.Unmarshal(bts, &result))
		tt.MustAssert(result.Equal(u))
	}
}

func TestU128UnmarshalJSONInvalid(t *testing.T) {
	for idx, in := range []string{
		`"340282366920938463463374607431768211456"`,
		`"1`,
		`"-1"`,
		`"abc"`,
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			var u U128
			tt.MustAssert(u.UnmarshalJSON([]byte(in)) != nil)
		})
	}
}

func BenchmarkU128Mul(b *testing.B) {
	u := U128From64(maxUint64)
	for i := 0; i < b.N; i++ {
		BenchU128Result = u.Mul(u)
	}
}

func BenchmarkU128Mul64Hi(b *testing.B) {
	u := U128{hi: 1, lo: maxUint64}
	for i := 0; i < b.N; i++ {
		BenchUint64Result = u.mul64Hi(maxUint64)
	}
}

var benchQuoCases = []struct {
	dividend U128
	divisor  U128
}{
	// 128-bit divide by 1 branch:
	{MaxU128, u64(1)},

	// 128-bit divide by power of 2 branch:
	{MaxU128, u64(2)},

	// 64-bit divide by 1 branch:
	{u64(maxUint64), u64(1)},

	// 128-bit divisor branch:
	{u128s("0x123456789012345678901234567890"), u128s("0xFF0000000000000000000")},
	{u128s("0x12345678901234567890123456789012"), u128s("0x10000000000000000000000000000001")},

	// 128-bit 'cmp == 0' shortcut branch:
	{u128s("0x1234567890123456"), u128s("0x1234567890123456")},
}

func BenchmarkU128QuoRem(b *testing.B) {
	for _, bc := range benchQuoCases {
		b.Run(fmt.Sprintf("%s/%s", bc.dividend, bc.divisor), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU128Result, _ = bc.dividend.QuoRem(bc.divisor)
			}
		})
	}
}

func BenchmarkU128String(b *testing.B) {
	for _, bi := range []U128{
		u128s("0"),
		u128s("0xfedcba9876543210"),
		u128s("0xfedcba9876543210fedcba9876543210"),
	} {
		b.Run(fmt.Sprintf("%x", bi.AsBigInt()), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = bi.String()
			}
		})
	}
}
