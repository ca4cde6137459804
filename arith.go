package bitint

import (
	"math/bits"
)

// The functions in this file operate on little-endian slices of 64-bit words,
// so x[0] is the least significant. Every generated type flattens its limbs
// into a word array of the same length before calling them; the limbs
// themselves only ever see add, subtract and compare.

func cmpWords(x, y []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] > y[i] {
			return 1
		} else if x[i] < y[i] {
			return -1
		}
	}
	return 0
}

// significantWords returns the length of x without its leading zero words.
func significantWords(x []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i + 1
		}
	}
	return 0
}

func leadingZerosWords(x []uint64, nbits uint) uint {
	pad := uint(len(x))*64 - nbits
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return uint(len(x)-1-i)*64 + uint(bits.LeadingZeros64(x[i])) - pad
		}
	}
	return nbits
}

func trailingZerosWords(x []uint64, nbits uint) uint {
	for i, w := range x {
		if w != 0 {
			return uint(i)*64 + uint(bits.TrailingZeros64(w))
		}
	}
	return nbits
}

// shlWords sets z = x << n. z and x must not overlap. Bits shifted past the
// top of z are dropped; bits past the type's width are ignored by the caller.
func shlWords(z, x []uint64, n uint) {
	if n >= uint(len(x))*64 {
		clearWords(z)
		return
	}
	ws, bs := int(n/64), n%64
	for i := len(z) - 1; i >= 0; i-- {
		var v uint64
		if j := i - ws; j >= 0 {
			v = x[j] << bs
			if bs != 0 && j > 0 {
				v |= x[j-1] >> (64 - bs)
			}
		}
		z[i] = v
	}
}

// shrWords sets z = x >> n. z and x must not overlap.
func shrWords(z, x []uint64, n uint) {
	if n >= uint(len(x))*64 {
		clearWords(z)
		return
	}
	ws, bs := int(n/64), n%64
	for i := 0; i < len(z); i++ {
		var v uint64
		if j := i + ws; j < len(x) {
			v = x[j] >> bs
			if bs != 0 && j+1 < len(x) {
				v |= x[j+1] << (64 - bs)
			}
		}
		z[i] = v
	}
}

func clearWords(z []uint64) {
	for i := range z {
		z[i] = 0
	}
}

// mulWords sets z to x * y modulo 2^nbits, using p (at least 2*len(z)
// words) as scratch for the full product. Bits of z at and above nbits are
// zero. It reports whether the full product needs more than nbits bits.
func mulWords(z, x, y, p []uint64, nbits uint) (overflow bool) {
	n := len(z)
	p = p[:2*n]
	clearWords(p)

	for i := 0; i < n; i++ {
		if x[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < n; j++ {
			carry, p[i+j] = mulStep(p[i+j], x[i], y[j], carry)
		}
		p[i+n] = carry
	}

	for _, w := range p[n:] {
		if w != 0 {
			overflow = true
			break
		}
	}
	copy(z, p[:n])
	if rem := nbits % 64; rem != 0 {
		if z[n-1]>>rem != 0 {
			overflow = true
		}
		z[n-1] &= 1<<rem - 1
	}
	return overflow
}

// mulStep computes (hi * 2^64 + lo) = z + (x * y) + carry.
func mulStep(z, x, y, carry uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(x, y)
	lo, carry = bits.Add64(lo, carry, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	lo, carry = bits.Add64(lo, z, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	return hi, lo
}

// quoRemWords sets q = u / d and r = u % d. q, r, u and d must all have the
// same length and scratch must hold at least 2*len(u)+1 words. d must not be
// zero.
//
// This is Knuth's Algorithm D (TAOCP vol. 2, 4.3.1) over 64-bit digits.
func quoRemWords(q, r, u, d, scratch []uint64) {
	clearWords(q)
	clearWords(r)

	dLen := significantWords(d)
	if dLen == 0 {
		panic("bitint: division by zero")
	}

	if cmpWords(u, d) < 0 {
		copy(r, u) // it's 100% remainder
		return
	}

	uLen := significantWords(u)
	if uLen == 1 {
		// dLen must also be 1 here
		q[0], r[0] = u[0]/d[0], u[0]%d[0]
		return
	}

	shift := uint(bits.LeadingZeros64(d[dLen-1]))

	dn := scratch[:dLen]
	for i := dLen - 1; i > 0; i-- {
		dn[i] = (d[i] << shift) | (d[i-1] >> (64 - shift))
	}
	dn[0] = d[0] << shift

	un := scratch[dLen : dLen+uLen+1]
	un[uLen] = u[uLen-1] >> (64 - shift)
	for i := uLen - 1; i > 0; i-- {
		un[i] = (u[i] << shift) | (u[i-1] >> (64 - shift))
	}
	un[0] = u[0] << shift

	if dLen == 1 {
		rem := divremBy1(q, un, dn[0])
		r[0] = rem >> shift
		return
	}

	divremKnuth(q, un, dn)

	for i := 0; i < dLen-1; i++ {
		r[i] = (un[i] >> shift) | (un[i+1] << (64 - shift))
	}
	r[dLen-1] = un[dLen-1] >> shift
}

// divremBy1 divides u by a single normalized word d, storing the quotient
// in quot and returning the remainder.
func divremBy1(quot, u []uint64, d uint64) (rem uint64) {
	reciprocal := reciprocal2by1(d)
	rem = u[len(u)-1]
	for j := len(u) - 2; j >= 0; j-- {
		quot[j], rem = divrem2by1(rem, u[j], d, reciprocal)
	}
	return rem
}

// divremKnuth divides u by the normalized multi-word d. The quotient goes to
// quot (len(u)-len(d) words); u is left holding the remainder in its low
// len(d) words.
func divremKnuth(quot, u, d []uint64) {
	dh := d[len(d)-1]
	dl := d[len(d)-2]
	reciprocal := reciprocal2by1(dh)

	for j := len(u) - len(d) - 1; j >= 0; j-- {
		u2 := u[j+len(d)]
		u1 := u[j+len(d)-1]
		u0 := u[j+len(d)-2]

		var qhat, rhat uint64
		if u2 >= dh {
			qhat = ^uint64(0)
		} else {
			qhat, rhat = divrem2by1(u2, u1, dh, reciprocal)
			ph, pl := bits.Mul64(qhat, dl)
			if ph > rhat || (ph == rhat && pl > u0) {
				qhat--
			}
		}

		borrow := subMulTo(u[j:], d, qhat)
		u[j+len(d)] = u2 - borrow
		if u2 < borrow { // too much subtracted, add back
			qhat--
			u[j+len(d)] += addTo(u[j:], d)
		}

		quot[j] = qhat
	}
}

// addTo computes x += y and returns the carry. len(x) must be >= len(y).
func addTo(x, y []uint64) uint64 {
	var carry uint64
	for i := 0; i < len(y); i++ {
		x[i], carry = bits.Add64(x[i], y[i], carry)
	}
	return carry
}

// subMulTo computes x -= y * multiplier and returns the borrow. len(x) must
// be >= len(y).
func subMulTo(x, y []uint64, multiplier uint64) uint64 {
	var borrow uint64
	for i := 0; i < len(y); i++ {
		s, carry1 := bits.Sub64(x[i], borrow, 0)
		ph, pl := bits.Mul64(y[i], multiplier)
		t, carry2 := bits.Sub64(s, pl, 0)
		x[i] = t
		borrow = ph + carry1 + carry2
	}
	return borrow
}

// reciprocal2by1 computes <^d, ^0> / d.
func reciprocal2by1(d uint64) uint64 {
	reciprocal, _ := bits.Div64(^d, ^uint64(0), d)
	return reciprocal
}

// divrem2by1 divides <uh, ul> by d using d's precomputed reciprocal.
// See Möller & Granlund, "Improved division by invariant integers",
// Algorithm 4.
func divrem2by1(uh, ul, d, reciprocal uint64) (quot, rem uint64) {
	qh, ql := bits.Mul64(reciprocal, uh)
	ql, carry := bits.Add64(ql, ul, 0)
	qh, _ = bits.Add64(qh, uh, carry)
	qh++

	r := ul - qh*d

	if r > ql {
		qh--
		r += d
	}

	if r >= d {
		qh++
		r -= d
	}

	return qh, r
}
