package bitint

import (
	"fmt"
	"math/big"
)

// Uint is the constraint satisfied by every generated fixed-width type. It
// lets code be written once for the whole family:
//
//	func sum[T bitint.Uint[T]](vs ...T) (out T, overflow bool) {
//		for _, v := range vs {
//			var o bool
//			out, o = out.OverflowingAdd(v)
//			overflow = overflow || o
//		}
//		return out, overflow
//	}
//
// Fixed-length byte conversions are not part of the constraint, as their
// array types differ per width; use AppendLEBytes and AppendBEBytes instead.
type Uint[T any] interface {
	comparable
	fmt.Stringer
	fmt.Formatter

	Bits() int
	Layout() Layout

	IsZero() bool
	Cmp(n T) int
	Equal(n T) bool
	LessThan(n T) bool
	LessOrEqualTo(n T) bool
	GreaterThan(n T) bool
	GreaterOrEqualTo(n T) bool

	OverflowingAdd(n T) (T, bool)
	OverflowingSub(n T) (T, bool)
	OverflowingMul(n T) (T, bool)
	OverflowingQuo(n T) (T, bool)
	OverflowingRem(n T) (T, bool)

	Add(n T) T
	Sub(n T) T
	Mul(n T) T
	Quo(n T) T
	Rem(n T) T
	QuoRem(n T) (T, T)
	Inc() T
	Dec() T

	And(n T) T
	AndNot(n T) T
	Or(n T) T
	Xor(n T) T
	Not() T
	Lsh(n uint) T
	Rsh(n uint) T
	LeadingZeros() uint
	TrailingZeros() uint
	BitLen() int

	AsU128() U128
	AsUint64() uint64
	IsU128() bool
	IsUint64() bool
	AsBigInt() *big.Int
	IntoBigInt(b *big.Int)
	AppendLEBytes(dst []byte) []byte
	AppendBEBytes(dst []byte) []byte
}
