package bitint

import (
	"fmt"
	"math/big"
)

// I128 is a signed 128-bit integer in two's complement form. It exists as a
// conversion source and target for the generated types, standing in for the
// native signed 128-bit integer Go lacks; it carries no arithmetic beyond
// negation.
type I128 struct {
	hi uint64
	lo uint64
}

const (
	signBit = 0x8000000000000000
)

// I128FromString creates a I128 from a string. Overflow truncates to
// MaxI128/MinI128 and sets accurate to 'false'. Only decimal strings are
// currently supported.
func I128FromString(s string) (out I128, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("bitint: i128 string %q invalid", s)
	}
	out, accurate = I128FromBigInt(b)
	return out, accurate, nil
}

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 { return I128{hi: hi, lo: lo} }

// I128From64 sign-extends v to 128 bits.
func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func I128From32(v int32) I128 { return I128From64(int64(v)) }
func I128From16(v int16) I128 { return I128From64(int64(v)) }
func I128From8(v int8) I128   { return I128From64(int64(v)) }

var (
	minI128AsAbsU128 = U128{hi: 0x8000000000000000, lo: 0}
	maxI128AsU128    = U128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
)

// I128FromBigInt creates an I128 from a big.Int. Values out of range clamp to
// MaxI128 or MinI128 and set accurate to 'false'.
func I128FromBigInt(v *big.Int) (out I128, accurate bool) {
	neg := v.Sign() < 0

	u, accurate := U128FromBigInt(new(big.Int).Abs(v))

	if !neg {
		if u.Cmp(maxI128AsU128) > 0 {
			return MaxI128, false
		}
		return u.AsI128(), accurate
	}

	if cmp := u.Cmp(minI128AsAbsU128); cmp == 0 {
		return MinI128, accurate
	} else if cmp > 0 {
		return MinI128, false
	}
	return u.AsI128().Neg(), accurate
}

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

func (i I128) IsZero() bool { return i.hi|i.lo == 0 }

// Sign returns -1, 0 or +1.
func (i I128) Sign() int {
	if i.hi|i.lo == 0 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

// Neg returns -i, wrapping for MinI128.
func (i I128) Neg() I128 {
	v, _ := U128{}.subb(i.AsU128(), 0)
	return v.AsI128()
}

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values greater than MaxI128.
func (i I128) AsU128() U128 { return U128{hi: i.hi, lo: i.lo} }

// IsU128 reports whether i can be represented in a U128.
func (i I128) IsU128() bool { return i.hi&signBit == 0 }

// AsInt64 truncates the I128 to fit in an int64.
func (i I128) AsInt64() int64 { return int64(i.lo) }

// IsInt64 reports whether i can be represented as an int64.
func (i I128) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.lo >= 0x8000000000000000
	}
	return i.hi == 0 && i.lo <= maxInt64
}

func (i I128) Cmp(n I128) int {
	if i == n {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		return i.AsU128().Cmp(n.AsU128())
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Equal(n I128) bool { return i == n }

func (i I128) IntoBigInt(b *big.Int) {
	neg := i.hi&signBit != 0
	if neg {
		i = i.Neg()
	}
	i.AsU128().IntoBigInt(b)
	if neg {
		b.Neg(b)
	}
}

func (i I128) AsBigInt() *big.Int {
	var v big.Int
	i.IntoBigInt(&v)
	return &v
}

func (i I128) String() string { return i.AsBigInt().String() }

func (i I128) Format(s fmt.State, c rune) { i.AsBigInt().Format(s, c) }

func (i I128) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *I128) UnmarshalText(bts []byte) (err error) {
	v, _, err := I128FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
