package bitint

import (
	"bytes"
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestU24CarryAcrossLimbs(t *testing.T) {
	tt := assert.WrapTB(t)

	// 5 + 251 overflows the 8-bit limb into the 16-bit one.
	v, overflow := U24From64(5).OverflowingAdd(U24From64(251))
	tt.MustAssert(!overflow)
	tt.MustEqual(U24From64(256), v)
	tt.MustEqual("256", v.String())

	v, borrow := U24From64(257).OverflowingSub(U24From64(251))
	tt.MustAssert(!borrow)
	tt.MustEqual(U24From64(6), v)

	tt.MustEqual(U128From64(257), U24From64(257).AsU128())
}

func TestU80Overflow(t *testing.T) {
	tt := assert.WrapTB(t)

	v, overflow := MaxU80.OverflowingAdd(U80From8(1))
	tt.MustAssert(overflow)
	tt.MustEqual(MinU80, v)

	v, borrow := MinU80.OverflowingSub(U80From8(1))
	tt.MustAssert(borrow)
	tt.MustEqual(MaxU80, v)

	// Wrapped results are the true result modulo 2^80, not MIN plus the carry.
	v, overflow = MaxU80.OverflowingAdd(MaxU80)
	tt.MustAssert(overflow)
	tt.MustEqual(MaxU80.Dec(), v)
	tt.MustEqual("1208925819614629174706174", v.String())

	v, borrow = U80From8(3).OverflowingSub(U80From8(5))
	tt.MustAssert(borrow)
	tt.MustEqual(MaxU80.Dec(), v)
}

func TestLayouts(t *testing.T) {
	for _, tc := range []struct {
		layout Layout
		limbs  string
	}{
		{U24{}.Layout(), "[16 8]"},
		{U48{}.Layout(), "[32 16]"},
		{U80{}.Layout(), "[64 16]"},
		{U256{}.Layout(), "[128 128]"},
		{U512{}.Layout(), "[128 128 128 128]"},
	} {
		t.Run(tc.limbs, func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.limbs, tc.layout.String())
		})
	}
}

func TestSignedSourcesKeepTheirWidth(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(U24From64(0xFF), U24FromInt8(-1))
	tt.MustEqual(U24From64(0xFFFF), U24FromInt16(-1))
	tt.MustEqual(U24From64(0xFFFFFF), U24FromInt32(-1)) // truncated to the width
	tt.MustEqual(U80From64(maxUint64), U80FromInt64(-1))
	tt.MustEqual(U256From128(MaxU128), U256FromI128(I128From64(-1)))
	tt.MustEqual(U48From64(0x80), U48FromInt8(-128))
}

func TestNarrowingConversions(t *testing.T) {
	tt := assert.WrapTB(t)

	// Sources wider than the target are truncated.
	tt.MustAssert(U24From64(1 << 24).IsZero())
	tt.MustEqual(U24From64(0x123456), U24From64(0xAB123456))
	tt.MustEqual(U80From64(5), U80From128(U128FromRaw(1<<16, 5)))

	u := mustU256(t, bigs("0x1 0000000000000000 fedcba9876543210 0123456789abcdef"))
	tt.MustEqual(U128FromRaw(0xfedcba9876543210, 0x0123456789abcdef), u.AsU128())
	tt.MustEqual(uint64(0x0123456789abcdef), u.AsUint64())
	tt.MustEqual(uint32(0x89abcdef), u.AsUint32())
	tt.MustEqual(uint16(0xcdef), u.AsUint16())
	tt.MustEqual(uint8(0xef), u.AsUint8())
	tt.MustEqual(int8(-17), u.AsInt8())
	tt.MustEqual(int64(0x0123456789abcdef), u.AsInt64())
	tt.MustAssert(!u.IsU128())
	tt.MustAssert(!u.IsUint64())

	tt.MustEqual(int8(-1), U24From64(0xFF).AsInt8())
	tt.MustEqual(int16(-1), U24From64(0xFFFF).AsInt16())
	tt.MustEqual(int32(0xFFFFFF), MaxU24.AsInt32())
	tt.MustEqual(I128From64(-1), U256From128(MaxU128).AsI128())
}

func mustU256(t *testing.T, b *big.Int) U256 {
	t.Helper()
	u, acc := U256FromBigInt(b)
	if !acc {
		t.Fatalf("inaccurate u256 %s", b)
	}
	return u
}

func TestLimbBytes(t *testing.T) {
	tt := assert.WrapTB(t)

	u := U24FromLEBytes([3]byte{0x01, 0x02, 0x03})
	tt.MustEqual(U24From64(0x030201), u)
	tt.MustEqual([3]byte{0x01, 0x02, 0x03}, u.LEBytes())
	tt.MustEqual([3]byte{0x03, 0x02, 0x01}, u.BEBytes())
	tt.MustEqual(u, U24FromBEBytes([3]byte{0x03, 0x02, 0x01}))

	// The 16-bit limb of a U80 owns bytes 0-1, the 64-bit limb owns 2-9.
	u80 := U80FromLEBytes([10]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A})
	tt.MustEqual(uint16(0x0201), u80.l1)
	tt.MustEqual(uint64(0x0A09080706050403), u80.l0)
	tt.MustEqual("a090807060504030201", fmt.Sprintf("%x", u80))

	if nativeLittleEndian {
		tt.MustEqual(u80.LEBytes(), u80.NEBytes())
	} else {
		tt.MustEqual(u80.BEBytes(), u80.NEBytes())
	}
	tt.MustEqual(u80, U80FromNEBytes(u80.NEBytes()))
}

func TestStrings(t *testing.T) {
	tt := assert.WrapTB(t)

	v, acc, err := U80FromString("1208925819614629174706175")
	tt.MustOK(err)
	tt.MustAssert(acc)
	tt.MustEqual(MaxU80, v)

	v, acc, err = U80FromString("1208925819614629174706176")
	tt.MustOK(err)
	tt.MustAssert(!acc)
	tt.MustEqual(MaxU80, v)

	_, _, err = U80FromString("-1")
	tt.MustOK(err)

	_, _, err = U80FromString("12x")
	tt.MustAssert(err != nil)

	tt.MustEqual("ffffff", fmt.Sprintf("%x", MaxU24))
	tt.MustEqual("0XFFFFFF", fmt.Sprintf("%#X", MaxU24))
	tt.MustEqual("   42", fmt.Sprintf("%5d", U48From64(42)))
}

func TestFromBigIntClamps(t *testing.T) {
	tt := assert.WrapTB(t)

	v, acc := U48FromBigInt(bigs("-1"))
	tt.MustAssert(!acc)
	tt.MustEqual(MinU48, v)

	v, acc = U48FromBigInt(new(big.Int).Lsh(big1, 48))
	tt.MustAssert(!acc)
	tt.MustEqual(MaxU48, v)
}

func TestDivisionByZeroPanics(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("bitint: u24 division by zero", mustPanic(func() { U24From8(1).Quo(MinU24) }))
	tt.MustEqual("bitint: u80 division by zero", mustPanic(func() { U80From8(1).Rem(MinU80) }))
	tt.MustEqual("bitint: u4096 division by zero", mustPanic(func() { MaxU4096.OverflowingQuo(MinU4096) }))
}

func TestOperatorOverflow(t *testing.T) {
	tt := assert.WrapTB(t)

	add := func() { MaxU48.Add(U48From8(1)) }
	sub := func() { MinU48.Sub(U48From8(1)) }
	mul := func() { MaxU48.Mul(U48From8(2)) }
	inc := func() { MaxU48.Inc() }
	dec := func() { MinU48.Dec() }

	if StrictArithmetic {
		tt.MustEqual("bitint: u48 addition overflow", mustPanic(add))
		tt.MustEqual("bitint: u48 subtraction overflow", mustPanic(sub))
		tt.MustEqual("bitint: u48 multiplication overflow", mustPanic(mul))
		tt.MustEqual("bitint: u48 addition overflow", mustPanic(inc))
		tt.MustEqual("bitint: u48 subtraction overflow", mustPanic(dec))
	} else {
		tt.MustEqual(MinU48, MaxU48.Add(U48From8(1)))
		tt.MustEqual(MaxU48, MinU48.Sub(U48From8(1)))
		tt.MustEqual(MaxU48.Dec(), MaxU48.Mul(U48From8(2)))
		tt.MustEqual(MinU48, MaxU48.Inc())
		tt.MustEqual(MaxU48, MinU48.Dec())
	}
}

func TestGenericHelpers(t *testing.T) {
	tt := assert.WrapTB(t)

	a, b := U80From64(10), U80From64(3)
	tt.MustEqual(a, Larger(a, b))
	tt.MustEqual(a, Larger(b, a))
	tt.MustEqual(b, Smaller(a, b))
	tt.MustEqual(b, Smaller(b, a))
	tt.MustEqual(U80From64(7), Difference(a, b))
	tt.MustEqual(U80From64(7), Difference(b, a))
	tt.MustEqual(MaxU80, Difference(MinU80, MaxU80))
}

// testUintLaws checks the properties every width must share.
func testUintLaws[T Uint[T]](t *testing.T, name string, bits int, min, max T, from64 func(uint64) T, fromBig func(*big.Int) (T, bool)) {
	t.Run(name, func(t *testing.T) {
		tt := assert.WrapTB(t)
		one := from64(1)

		var zero T
		tt.MustEqual(min, zero)
		tt.MustAssert(min.IsZero())
		tt.MustEqual(bits, min.Bits())
		tt.MustEqual(bits, min.Layout().Bits())
		tt.MustEqual(bigMask(bits).String(), max.String())

		v, overflow := min.OverflowingAdd(one)
		tt.MustAssert(!overflow)
		tt.MustEqual(one, v)

		v, overflow = max.OverflowingAdd(one)
		tt.MustAssert(overflow)
		tt.MustEqual(min, v)

		v, overflow = min.OverflowingSub(one)
		tt.MustAssert(overflow)
		tt.MustEqual(max, v)

		v, overflow = max.OverflowingMul(from64(2))
		tt.MustAssert(overflow)
		v2, _ := max.OverflowingSub(one)
		tt.MustEqual(v2, v)

		v, overflow = max.OverflowingMul(one)
		tt.MustAssert(!overflow)
		tt.MustEqual(max, v)

		v, overflow = from64(10).OverflowingQuo(from64(3))
		tt.MustAssert(!overflow)
		tt.MustEqual(from64(3), v)

		v, overflow = from64(10).OverflowingRem(from64(3))
		tt.MustAssert(!overflow)
		tt.MustEqual(from64(1), v)

		q, r := max.QuoRem(max)
		tt.MustEqual(one, q)
		tt.MustAssert(r.IsZero())

		tt.MustAssert(min.LessThan(max))
		tt.MustAssert(max.GreaterThan(min))
		tt.MustAssert(max.GreaterOrEqualTo(max))
		tt.MustAssert(min.LessOrEqualTo(min))
		tt.MustEqual(-1, min.Cmp(max))
		tt.MustEqual(0, max.Cmp(max))

		tt.MustEqual(max, min.Not())
		tt.MustEqual(min, max.Xor(max))
		tt.MustEqual(min, max.AndNot(max))
		tt.MustEqual(max, min.Or(max))
		tt.MustEqual(uint(0), max.LeadingZeros())
		tt.MustEqual(uint(bits), min.LeadingZeros())
		tt.MustEqual(uint(bits-1), one.LeadingZeros())
		tt.MustEqual(uint(bits-1), one.Lsh(uint(bits-1)).TrailingZeros())
		tt.MustEqual(one, one.Lsh(uint(bits-1)).Rsh(uint(bits-1)))
		tt.MustAssert(one.Lsh(uint(bits)).IsZero())
		tt.MustEqual(bits, max.BitLen())

		le, be := max.Rsh(3).AppendLEBytes(nil), max.Rsh(3).AppendBEBytes(nil)
		tt.MustEqual(bits/8, len(le))
		reverseBytes(le)
		tt.MustAssert(bytes.Equal(le, be))

		back, acc := fromBig(max.AsBigInt())
		tt.MustAssert(acc)
		tt.MustEqual(max, back)

		var b big.Int
		from64(12345).IntoBigInt(&b)
		tt.MustEqual("12345", b.String())
		tt.MustEqual(uint64(12345), from64(12345).AsUint64())
		tt.MustAssert(from64(12345).IsUint64())
		tt.MustEqual(max.IsU128(), bits <= 128)
	})
}

func TestUintLaws(t *testing.T) {
	testUintLaws(t, "u24", U24Bits, MinU24, MaxU24, U24From64, U24FromBigInt)
	testUintLaws(t, "u48", U48Bits, MinU48, MaxU48, U48From64, U48FromBigInt)
	testUintLaws(t, "u80", U80Bits, MinU80, MaxU80, U80From64, U80FromBigInt)
	testUintLaws(t, "u256", U256Bits, MinU256, MaxU256, U256From64, U256FromBigInt)
	testUintLaws(t, "u512", U512Bits, MinU512, MaxU512, U512From64, U512FromBigInt)
	testUintLaws(t, "u1024", U1024Bits, MinU1024, MaxU1024, U1024From64, U1024FromBigInt)
	testUintLaws(t, "u2048", U2048Bits, MinU2048, MaxU2048, U2048From64, U2048FromBigInt)
	testUintLaws(t, "u4096", U4096Bits, MinU4096, MaxU4096, U4096From64, U4096FromBigInt)
}

var BenchU256Result U256

func BenchmarkU256Mul(b *testing.B) {
	x, y := MaxU256.Rsh(130), MaxU256.Rsh(140)
	for i := 0; i < b.N; i++ {
		BenchU256Result = x.Mul(y)
	}
}

func BenchmarkU256QuoRem(b *testing.B) {
	x, y := MaxU256, MaxU256.Rsh(100)
	for i := 0; i < b.N; i++ {
		BenchU256Result, _ = x.QuoRem(y)
	}
}

func BenchmarkU4096Add(b *testing.B) {
	x := MaxU4096.Rsh(1)
	for i := 0; i < b.N; i++ {
		_, _ = x.OverflowingAdd(x)
	}
}
