package bitint

import (
	"encoding/binary"
)

// nativeLimb is the set of Go integer types that can store a limb directly.
// 128-bit limbs are U128 and have their own methods.
type nativeLimb interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// addLimb returns x + y + carry in the limb's own width, along with the carry
// out of that width. carry must be 0 or 1.
func addLimb[T nativeLimb](x, y T, carry uint64) (sum T, carryOut uint64) {
	sum = x + y
	if sum < x {
		carryOut = 1
	}
	if carry != 0 {
		// x + y cannot be all ones if it already overflowed, so at most one of
		// these two steps carries.
		sum++
		if sum == 0 {
			carryOut = 1
		}
	}
	return sum, carryOut
}

// subLimb returns x - y - borrow in the limb's own width, along with the
// borrow out of that width. borrow must be 0 or 1.
func subLimb[T nativeLimb](x, y T, borrow uint64) (diff T, borrowOut uint64) {
	diff = x - y
	if x < y {
		borrowOut = 1
	}
	if borrow != 0 {
		if diff == 0 {
			borrowOut = 1
		}
		diff--
	}
	return diff, borrowOut
}

func cmpLimb[T nativeLimb](x, y T) int {
	if x > y {
		return 1
	} else if x < y {
		return -1
	}
	return 0
}

// getLimb extracts width bits (width <= 64) starting at bit offset off from a
// little-endian word slice. Bits past the end of w read as zero.
func getLimb(w []uint64, off, width uint) uint64 {
	i, s := off/64, off%64
	if int(i) >= len(w) {
		return 0
	}
	v := w[i] >> s
	if s != 0 && s+width > 64 && int(i)+1 < len(w) {
		v |= w[i+1] << (64 - s)
	}
	if width < 64 {
		v &= 1<<width - 1
	}
	return v
}

// putLimb ORs the low width bits of v into w at bit offset off. The target
// bits must already be zero and must lie within w.
func putLimb(w []uint64, off, width uint, v uint64) {
	i, s := off/64, off%64
	w[i] |= v << s
	if s != 0 && s+width > 64 {
		w[i+1] |= v >> (64 - s)
	}
}

func getLimb128(w []uint64, off uint) U128 {
	return U128{hi: getLimb(w, off+64, 64), lo: getLimb(w, off, 64)}
}

func putLimb128(w []uint64, off uint, v U128) {
	putLimb(w, off, 64, v.lo)
	putLimb(w, off+64, 64, v.hi)
}

// wordsU128 reads the low 128 bits of a little-endian word slice.
func wordsU128(w []uint64) U128 {
	return getLimb128(w, 0)
}

func le16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func le32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
func le64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

func putLE16(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }
func putLE32(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }
func putLE64(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }

func be64(b []byte) uint64       { return binary.BigEndian.Uint64(b) }
func putBE64(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }
