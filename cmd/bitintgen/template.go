package main

// typeSource is executed with a typeData. The output is passed through
// go/format, so whitespace here only needs to be close. It builds on the
// unexported limb and word helpers of package bitint and only compiles there.
const typeSource = `// Code generated by bitintgen. DO NOT EDIT.

package bitint

import (
	"fmt"
	"math/big"
)

// {{.Name}} is an unsigned {{.Bits}}-bit integer, stored as the limbs {{.Layout}},
// most significant first. The zero value is Min{{.Name}}.
type {{.Name}} struct {
{{- range .Limbs}}
	{{.Field}} {{.Type}}
{{- end}}
}

// {{.Name}}Bits is the width of {{.Name}} in bits.
const {{.Name}}Bits = {{.Bits}}

const (
	{{.Lower}}Bytes = {{.Bytes}}
	{{.Lower}}Words = {{.Words}}
)

var (
	Min{{.Name}} = {{.Name}}{}
	Max{{.Name}} = {{.Name}}{}.Not()

	{{.Lower}}Layout = MustPlan({{.Bits}})
	{{.Lower}}One = {{.Name}}From8(1)
)

// {{.Name}}From128 converts v to a {{.Name}}, discarding any bits above the
// {{.Bits}}th.
func {{.Name}}From128(v U128) {{.Name}} {
	w := [2]uint64{v.lo, v.hi}
	return {{.Lower}}FromWords(w[:])
}

func {{.Name}}From64(v uint64) {{.Name}} { return {{.Name}}From128(U128From64(v)) }
func {{.Name}}From32(v uint32) {{.Name}} { return {{.Name}}From128(U128From32(v)) }
func {{.Name}}From16(v uint16) {{.Name}} { return {{.Name}}From128(U128From16(v)) }
func {{.Name}}From8(v uint8) {{.Name}} { return {{.Name}}From128(U128From8(v)) }

// {{.Name}}FromInt64 reinterprets v as a uint64 before converting it, so
// negative values are not sign-extended past 64 bits. The other signed
// constructors do the same at their own width.
func {{.Name}}FromInt64(v int64) {{.Name}} { return {{.Name}}From64(uint64(v)) }
func {{.Name}}FromInt32(v int32) {{.Name}} { return {{.Name}}From32(uint32(v)) }
func {{.Name}}FromInt16(v int16) {{.Name}} { return {{.Name}}From16(uint16(v)) }
func {{.Name}}FromInt8(v int8) {{.Name}} { return {{.Name}}From8(uint8(v)) }
func {{.Name}}FromI128(v I128) {{.Name}} { return {{.Name}}From128(v.AsU128()) }

// {{.Name}}FromLEBytes decodes a little-endian buffer; b[0] is the least
// significant byte.
func {{.Name}}FromLEBytes(b [{{.Lower}}Bytes]byte) (u {{.Name}}) {
{{- range .LSB}}
{{- if .Wide}}
	u.{{.Field}} = u128FromLE(b[{{.Byte}}:])
{{- else if eq .Bits 8}}
	u.{{.Field}} = b[{{.Byte}}]
{{- else}}
	u.{{.Field}} = le{{.Bits}}(b[{{.Byte}}:])
{{- end}}
{{- end}}
	return u
}

// {{.Name}}FromBEBytes decodes a big-endian buffer; b[0] is the most
// significant byte.
func {{.Name}}FromBEBytes(b [{{.Lower}}Bytes]byte) {{.Name}} {
	reverseBytes(b[:])
	return {{.Name}}FromLEBytes(b)
}

// {{.Name}}FromNEBytes decodes a buffer in the host's byte order.
func {{.Name}}FromNEBytes(b [{{.Lower}}Bytes]byte) {{.Name}} {
	if nativeLittleEndian {
		return {{.Name}}FromLEBytes(b)
	}
	return {{.Name}}FromBEBytes(b)
}

// {{.Name}}FromBigInt creates a {{.Name}} from a big.Int. Overflow truncates to
// Max{{.Name}} and sets accurate to 'false'; negative values become 0.
func {{.Name}}FromBigInt(v *big.Int) (out {{.Name}}, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > {{.Name}}Bits {
		return Max{{.Name}}, false
	}
	var b [{{.Lower}}Bytes]byte
	v.FillBytes(b[:])
	return {{.Name}}FromBEBytes(b), true
}

// {{.Name}}FromString creates a {{.Name}} from a decimal string. Overflow
// truncates to Max{{.Name}} and sets accurate to 'false'.
func {{.Name}}FromString(s string) (out {{.Name}}, accurate bool, err error) {
	b, err := parseDecimal(s, "{{.Lower}}")
	if err != nil {
		return out, false, err
	}
	out, accurate = {{.Name}}FromBigInt(b)
	return out, accurate, nil
}

func {{.Lower}}FromWords(w []uint64) (u {{.Name}}) {
{{- range .LSB}}
{{- if .Wide}}
	u.{{.Field}} = getLimb128(w, {{.Offset}})
{{- else if eq .Bits 64}}
	u.{{.Field}} = getLimb(w, {{.Offset}}, 64)
{{- else}}
	u.{{.Field}} = {{.Type}}(getLimb(w, {{.Offset}}, {{.Bits}}))
{{- end}}
{{- end}}
	return u
}

func (u {{.Name}}) words() (w [{{.Lower}}Words]uint64) {
{{- range .LSB}}
{{- if .Wide}}
	putLimb128(w[:], {{.Offset}}, u.{{.Field}})
{{- else if eq .Bits 64}}
	putLimb(w[:], {{.Offset}}, 64, u.{{.Field}})
{{- else}}
	putLimb(w[:], {{.Offset}}, {{.Bits}}, uint64(u.{{.Field}}))
{{- end}}
{{- end}}
	return w
}

func (u {{.Name}}) Bits() int { return {{.Name}}Bits }

// Layout returns the limb plan {{.Name}} is built from.
func (u {{.Name}}) Layout() Layout { return {{.Lower}}Layout }

func (u {{.Name}}) IsZero() bool { return u == {{.Name}}{} }

// OverflowingAdd returns u + n modulo 2^{{.Bits}} and reports whether the sum
// needed more than {{.Bits}} bits.
func (u {{.Name}}) OverflowingAdd(n {{.Name}}) (v {{.Name}}, overflow bool) {
	var c uint64
{{- range .LSB}}
{{- if .Wide}}
	v.{{.Field}}, c = u.{{.Field}}.addc(n.{{.Field}}, c)
{{- else}}
	v.{{.Field}}, c = addLimb(u.{{.Field}}, n.{{.Field}}, c)
{{- end}}
{{- end}}
	return v, c != 0
}

// OverflowingSub returns u - n modulo 2^{{.Bits}} and reports whether n was
// larger than u.
func (u {{.Name}}) OverflowingSub(n {{.Name}}) (v {{.Name}}, borrow bool) {
	var b uint64
{{- range .LSB}}
{{- if .Wide}}
	v.{{.Field}}, b = u.{{.Field}}.subb(n.{{.Field}}, b)
{{- else}}
	v.{{.Field}}, b = subLimb(u.{{.Field}}, n.{{.Field}}, b)
{{- end}}
{{- end}}
	return v, b != 0
}

// OverflowingMul returns the low {{.Bits}} bits of u * n and reports whether
// the full product was larger.
func (u {{.Name}}) OverflowingMul(n {{.Name}}) (v {{.Name}}, overflow bool) {
	x, y := u.words(), n.words()
	var z [{{.Lower}}Words]uint64
	var p [2 * {{.Lower}}Words]uint64
	overflow = mulWords(z[:], x[:], y[:], p[:], {{.Name}}Bits)
	return {{.Lower}}FromWords(z[:]), overflow
}

// OverflowingQuo returns u / n. Division cannot overflow, so the flag is
// always false. It panics if n is zero.
func (u {{.Name}}) OverflowingQuo(n {{.Name}}) ({{.Name}}, bool) {
	q, _ := u.QuoRem(n)
	return q, false
}

// OverflowingRem returns u % n. Like OverflowingQuo, the flag is always false
// and a zero n panics.
func (u {{.Name}}) OverflowingRem(n {{.Name}}) ({{.Name}}, bool) {
	_, r := u.QuoRem(n)
	return r, false
}

// QuoRem returns the quotient and remainder of u / n. If n is zero, a
// division-by-zero run-time panic occurs.
func (u {{.Name}}) QuoRem(n {{.Name}}) (q, r {{.Name}}) {
	if n.IsZero() {
		divByZeroPanic("{{.Lower}}")
	}
	x, y := u.words(), n.words()
	var qw, rw [{{.Lower}}Words]uint64
	var scratch [2*{{.Lower}}Words + 1]uint64
	quoRemWords(qw[:], rw[:], x[:], y[:], scratch[:])
	return {{.Lower}}FromWords(qw[:]), {{.Lower}}FromWords(rw[:])
}

// Add returns u + n. Overflow wraps, unless built with the bitint_strict tag,
// in which case it panics.
func (u {{.Name}}) Add(n {{.Name}}) {{.Name}} {
	v, overflow := u.OverflowingAdd(n)
	if overflow && StrictArithmetic {
		overflowPanic("{{.Lower}}", "addition")
	}
	return v
}

// Sub returns u - n. Underflow wraps, unless built with the bitint_strict tag,
// in which case it panics.
func (u {{.Name}}) Sub(n {{.Name}}) {{.Name}} {
	v, borrow := u.OverflowingSub(n)
	if borrow && StrictArithmetic {
		overflowPanic("{{.Lower}}", "subtraction")
	}
	return v
}

// Mul returns u * n. Overflow wraps, unless built with the bitint_strict tag,
// in which case it panics.
func (u {{.Name}}) Mul(n {{.Name}}) {{.Name}} {
	v, overflow := u.OverflowingMul(n)
	if overflow && StrictArithmetic {
		overflowPanic("{{.Lower}}", "multiplication")
	}
	return v
}

func (u {{.Name}}) Quo(n {{.Name}}) {{.Name}} { q, _ := u.QuoRem(n); return q }
func (u {{.Name}}) Rem(n {{.Name}}) {{.Name}} { _, r := u.QuoRem(n); return r }
func (u {{.Name}}) Inc() {{.Name}} { return u.Add({{.Lower}}One) }
func (u {{.Name}}) Dec() {{.Name}} { return u.Sub({{.Lower}}One) }

// Cmp compares u and n and returns -1, 0 or +1.
func (u {{.Name}}) Cmp(n {{.Name}}) int {
{{- range .Limbs}}
{{- if .Last}}
{{- if .Wide}}
	return u.{{.Field}}.Cmp(n.{{.Field}})
{{- else}}
	return cmpLimb(u.{{.Field}}, n.{{.Field}})
{{- end}}
{{- else if .Wide}}
	if c := u.{{.Field}}.Cmp(n.{{.Field}}); c != 0 {
		return c
	}
{{- else}}
	if c := cmpLimb(u.{{.Field}}, n.{{.Field}}); c != 0 {
		return c
	}
{{- end}}
{{- end}}
}

func (u {{.Name}}) Equal(n {{.Name}}) bool { return u == n }
func (u {{.Name}}) GreaterThan(n {{.Name}}) bool { return u.Cmp(n) > 0 }
func (u {{.Name}}) GreaterOrEqualTo(n {{.Name}}) bool { return u.Cmp(n) >= 0 }
func (u {{.Name}}) LessThan(n {{.Name}}) bool { return u.Cmp(n) < 0 }
func (u {{.Name}}) LessOrEqualTo(n {{.Name}}) bool { return u.Cmp(n) <= 0 }

func (u {{.Name}}) And(n {{.Name}}) (v {{.Name}}) {
{{- range .Limbs}}
{{- if .Wide}}
	v.{{.Field}} = u.{{.Field}}.And(n.{{.Field}})
{{- else}}
	v.{{.Field}} = u.{{.Field}} & n.{{.Field}}
{{- end}}
{{- end}}
	return v
}

func (u {{.Name}}) Or(n {{.Name}}) (v {{.Name}}) {
{{- range .Limbs}}
{{- if .Wide}}
	v.{{.Field}} = u.{{.Field}}.Or(n.{{.Field}})
{{- else}}
	v.{{.Field}} = u.{{.Field}} | n.{{.Field}}
{{- end}}
{{- end}}
	return v
}

func (u {{.Name}}) Xor(n {{.Name}}) (v {{.Name}}) {
{{- range .Limbs}}
{{- if .Wide}}
	v.{{.Field}} = u.{{.Field}}.Xor(n.{{.Field}})
{{- else}}
	v.{{.Field}} = u.{{.Field}} ^ n.{{.Field}}
{{- end}}
{{- end}}
	return v
}

func (u {{.Name}}) Not() (v {{.Name}}) {
{{- range .Limbs}}
{{- if .Wide}}
	v.{{.Field}} = u.{{.Field}}.Not()
{{- else}}
	v.{{.Field}} = ^u.{{.Field}}
{{- end}}
{{- end}}
	return v
}

func (u {{.Name}}) AndNot(n {{.Name}}) {{.Name}} { return u.And(n.Not()) }

// Lsh returns u << n. Bits shifted past the {{.Bits}}th are dropped.
func (u {{.Name}}) Lsh(n uint) {{.Name}} {
	x := u.words()
	var z [{{.Lower}}Words]uint64
	shlWords(z[:], x[:], n)
	return {{.Lower}}FromWords(z[:])
}

// Rsh returns u >> n.
func (u {{.Name}}) Rsh(n uint) {{.Name}} {
	x := u.words()
	var z [{{.Lower}}Words]uint64
	shrWords(z[:], x[:], n)
	return {{.Lower}}FromWords(z[:])
}

func (u {{.Name}}) LeadingZeros() uint {
	x := u.words()
	return leadingZerosWords(x[:], {{.Name}}Bits)
}

func (u {{.Name}}) TrailingZeros() uint {
	x := u.words()
	return trailingZerosWords(x[:], {{.Name}}Bits)
}

// BitLen returns the minimum number of bits required to represent u.
func (u {{.Name}}) BitLen() int { return {{.Name}}Bits - int(u.LeadingZeros()) }

// AsU128 truncates u to its low 128 bits. See IsU128() if you want to check
// before you convert.
func (u {{.Name}}) AsU128() U128 {
	x := u.words()
	return wordsU128(x[:])
}

// AsUint64 truncates u to fit in a uint64. See IsUint64() if you want to check
// before you convert. The narrower As methods truncate the same way.
func (u {{.Name}}) AsUint64() uint64 { return u.AsU128().lo }
func (u {{.Name}}) AsUint32() uint32 { return uint32(u.AsUint64()) }
func (u {{.Name}}) AsUint16() uint16 { return uint16(u.AsUint64()) }
func (u {{.Name}}) AsUint8() uint8 { return uint8(u.AsUint64()) }

// AsInt64 truncates u to 64 bits and reinterprets them as two's complement.
// The narrower signed As methods do the same at their own width.
func (u {{.Name}}) AsInt64() int64 { return int64(u.AsUint64()) }
func (u {{.Name}}) AsInt32() int32 { return int32(u.AsUint64()) }
func (u {{.Name}}) AsInt16() int16 { return int16(u.AsUint64()) }
func (u {{.Name}}) AsInt8() int8 { return int8(u.AsUint64()) }
func (u {{.Name}}) AsI128() I128 { return u.AsU128().AsI128() }

// IsU128 reports whether u can be represented as a U128.
func (u {{.Name}}) IsU128() bool { return u.BitLen() <= 128 }

// IsUint64 reports whether u can be represented as a uint64.
func (u {{.Name}}) IsUint64() bool { return u.BitLen() <= 64 }

// LEBytes encodes u as a little-endian buffer; each limb owns the bytes at
// its own offset.
func (u {{.Name}}) LEBytes() (b [{{.Lower}}Bytes]byte) {
{{- range .LSB}}
{{- if .Wide}}
	u.{{.Field}}.putLE(b[{{.Byte}}:])
{{- else if eq .Bits 8}}
	b[{{.Byte}}] = u.{{.Field}}
{{- else}}
	putLE{{.Bits}}(b[{{.Byte}}:], u.{{.Field}})
{{- end}}
{{- end}}
	return b
}

// BEBytes encodes u as a big-endian buffer, the reverse of LEBytes.
func (u {{.Name}}) BEBytes() [{{.Lower}}Bytes]byte {
	b := u.LEBytes()
	reverseBytes(b[:])
	return b
}

// NEBytes encodes u in the host's byte order.
func (u {{.Name}}) NEBytes() [{{.Lower}}Bytes]byte {
	if nativeLittleEndian {
		return u.LEBytes()
	}
	return u.BEBytes()
}

func (u {{.Name}}) AppendLEBytes(dst []byte) []byte {
	b := u.LEBytes()
	return append(dst, b[:]...)
}

func (u {{.Name}}) AppendBEBytes(dst []byte) []byte {
	b := u.BEBytes()
	return append(dst, b[:]...)
}

func (u {{.Name}}) IntoBigInt(b *big.Int) {
	x := u.BEBytes()
	b.SetBytes(x[:])
}

func (u {{.Name}}) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u {{.Name}}) String() string {
	if u.IsUint64() {
		return fmt.Sprint(u.AsUint64())
	}
	return u.AsBigInt().String()
}

func (u {{.Name}}) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u {{.Name}}) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *{{.Name}}) UnmarshalText(bts []byte) (err error) {
	v, _, err := {{.Name}}FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u {{.Name}}) MarshalJSON() ([]byte, error) {
	return []byte("\"" + u.String() + "\""), nil
}

func (u *{{.Name}}) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(bts, "{{.Lower}}")
	if err != nil {
		return err
	}
	v, _, err := {{.Name}}FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
`
