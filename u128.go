package bitint

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// U128 is an unsigned 128-bit integer. Go has no native 128-bit type, so U128
// stands in for one: it is the storage for 128-bit limbs, and the widest
// native unsigned type the generated types convert to and from.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{lo: v} }
func U128From32(v uint32) U128       { return U128{lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{lo: uint64(v)} }

// U128FromString creates a U128 from a string. Overflow truncates to MaxU128
// and sets accurate to 'false'. Only decimal strings are currently supported.
func U128FromString(s string) (out U128, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("bitint: u128 string %q invalid", s)
	}
	out, accurate = U128FromBigInt(b)
	return out, accurate, nil
}

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'; negative values become 0.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > 128 {
		return MaxU128, false
	}
	var buf [16]byte
	v.FillBytes(buf[:])
	return U128{hi: be64(buf[:8]), lo: be64(buf[8:])}, true
}

func (u U128) IsZero() bool { return u.hi|u.lo == 0 }

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
	var buf [16]byte
	putBE64(buf[:8], u.hi)
	putBE64(buf[8:], u.lo)
	b.SetBytes(buf[:])
}

func (u U128) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsI128 performs a direct cast of a U128 to an I128, which will interpret it
// as a two's complement value.
func (u U128) AsI128() I128 { return I128{hi: u.hi, lo: u.lo} }

// AsUint64 truncates the U128 to fit in a uint64. See IsUint64() if you want
// to check before you convert.
func (u U128) AsUint64() uint64 { return u.lo }

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool { return u.hi == 0 }

func (u U128) Inc() U128 { v, _ := u.addc(U128{}, 1); return v }
func (u U128) Dec() U128 { v, _ := u.subb(U128{}, 1); return v }

// Add returns u + n, wrapping on overflow.
func (u U128) Add(n U128) U128 { v, _ := u.addc(n, 0); return v }

// Sub returns u - n, wrapping on underflow.
func (u U128) Sub(n U128) U128 { v, _ := u.subb(n, 0); return v }

// addc is the 128-bit limb adder: it returns u + n + carry and the carry out.
func (u U128) addc(n U128, carry uint64) (v U128, carryOut uint64) {
	v.lo, carry = bits.Add64(u.lo, n.lo, carry)
	v.hi, carryOut = bits.Add64(u.hi, n.hi, carry)
	return v, carryOut
}

// subb is the 128-bit limb subtractor: it returns u - n - borrow and the
// borrow out.
func (u U128) subb(n U128, borrow uint64) (v U128, borrowOut uint64) {
	v.lo, borrow = bits.Sub64(u.lo, n.lo, borrow)
	v.hi, borrowOut = bits.Sub64(u.hi, n.hi, borrow)
	return v, borrowOut
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

func (u U128) Equal(n U128) bool { return u == n }

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) GreaterOrEqualTo(n U128) bool { return !u.LessThan(n) }

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) LessOrEqualTo(n U128) bool { return !u.GreaterThan(n) }

func (u U128) And(n U128) U128    { return U128{hi: u.hi & n.hi, lo: u.lo & n.lo} }
func (u U128) AndNot(n U128) U128 { return U128{hi: u.hi &^ n.hi, lo: u.lo &^ n.lo} }
func (u U128) Or(n U128) U128     { return U128{hi: u.hi | n.hi, lo: u.lo | n.lo} }
func (u U128) Xor(n U128) U128    { return U128{hi: u.hi ^ n.hi, lo: u.lo ^ n.lo} }
func (u U128) Not() U128          { return U128{hi: ^u.hi, lo: ^u.lo} }

func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
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
	} else if n >= 128 {
		return v
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
func (u U128) Mul(n U128) (v U128) {
	v.hi, v.lo = bits.Mul64(u.lo, n.lo)
	v.hi += u.hi*n.lo + u.lo*n.hi
	return v
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.IsZero() {
		panic("bitint: division by zero")
	}
	if u.hi|by.hi == 0 {
		return U128{lo: u.lo / by.lo}, U128{lo: u.lo % by.lo}
	}
	if by.hi == 0 && u.hi < by.lo {
		q.lo, r.lo = bits.Div64(u.hi, u.lo, by.lo)
		return q, r
	}

	var qw, rw [2]uint64
	var scratch [5]uint64
	uw, bw := [2]uint64{u.lo, u.hi}, [2]uint64{by.lo, by.hi}
	quoRemWords(qw[:], rw[:], uw[:], bw[:], scratch[:])
	return U128{hi: qw[1], lo: qw[0]}, U128{hi: rw[1], lo: rw[0]}
}

func (u U128) Quo(by U128) U128 { q, _ := u.QuoRem(by); return q }
func (u U128) Rem(by U128) U128 { _, r := u.QuoRem(by); return r }

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

// putLE writes u to the first 16 bytes of b, least significant byte first.
func (u U128) putLE(b []byte) {
	putLE64(b[:8], u.lo)
	putLE64(b[8:16], u.hi)
}

func u128FromLE(b []byte) U128 {
	return U128{hi: le64(b[8:16]), lo: le64(b[:8])}
}

func (u U128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, _, err := U128FromString(string(bts))
	if err != nil {
		return err
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
	v, _, err := U128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
