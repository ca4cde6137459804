// Package limbplan decomposes a bit width into an ordered sequence of native
// word limbs.
package limbplan

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidWidth is returned (wrapped) by Plan for widths that are zero,
// negative or not a multiple of 8.
var ErrInvalidWidth = errors.New("width must be a positive multiple of 8")

// LimbWidth is the width in bits of a single native limb.
type LimbWidth uint8

const (
	Limb8   LimbWidth = 8
	Limb16  LimbWidth = 16
	Limb32  LimbWidth = 32
	Limb64  LimbWidth = 64
	Limb128 LimbWidth = 128
)

// candidates is searched largest first.
var candidates = [...]LimbWidth{Limb128, Limb64, Limb32, Limb16, Limb8}

func (w LimbWidth) Bits() int   { return int(w) }
func (w LimbWidth) Bytes() int  { return int(w) / 8 }
func (w LimbWidth) Valid() bool { return w == Limb8 || w == Limb16 || w == Limb32 || w == Limb64 || w == Limb128 }

// GoType returns the name of the Go type used to store a limb of this width.
// There is no native 128-bit integer, so 128-bit limbs are stored as U128.
func (w LimbWidth) GoType() string {
	if w == Limb128 {
		return "U128"
	}
	return "uint" + strconv.Itoa(int(w))
}

// Layout is the limb plan for one bit width. Limbs are held most significant
// first; Offset translates a limb index into its place value.
type Layout struct {
	bits    int
	limbs   []LimbWidth
	offsets []int
}

// Plan returns the limb layout for a width. It repeatedly takes the largest
// limb that fits in the remaining width, so the result never overshoots.
func Plan(bits int) (Layout, error) {
	if bits <= 0 || bits%8 != 0 {
		return Layout{}, fmt.Errorf("bitint: invalid width %d: %w", bits, ErrInvalidWidth)
	}

	var limbs []LimbWidth
	for rem := bits; rem != 0; {
		for _, c := range candidates {
			if c.Bits() <= rem {
				limbs = append(limbs, c)
				rem -= c.Bits()
				break
			}
		}
	}

	offsets := make([]int, len(limbs))
	off := 0
	for i := len(limbs) - 1; i >= 0; i-- {
		offsets[i] = off
		off += limbs[i].Bits()
	}

	return Layout{bits: bits, limbs: limbs, offsets: offsets}, nil
}

// MustPlan is like Plan but panics if bits is invalid.
func MustPlan(bits int) Layout {
	l, err := Plan(bits)
	if err != nil {
		panic(err)
	}
	return l
}

func (l Layout) Bits() int  { return l.bits }
func (l Layout) Bytes() int { return l.bits / 8 }
func (l Layout) Len() int   { return len(l.limbs) }

// Words is the number of 64-bit words needed to hold a value of this layout.
func (l Layout) Words() int { return (l.bits + 63) / 64 }

// Limb returns the width of limb i, where limb 0 is the most significant.
func (l Layout) Limb(i int) LimbWidth { return l.limbs[i] }

// Offset returns the bit offset of limb i, counted from the least
// significant bit of the value.
func (l Layout) Offset(i int) int { return l.offsets[i] }

// Limbs returns a copy of the limb widths, most significant first.
func (l Layout) Limbs() []LimbWidth {
	out := make([]LimbWidth, len(l.limbs))
	copy(out, l.limbs)
	return out
}

// MaxLimb returns the largest value a limb can hold, as a pair of uint64s.
// hi is only ever non-zero for 128-bit limbs.
func (w LimbWidth) MaxLimb() (hi, lo uint64) {
	switch w {
	case Limb128:
		return ^uint64(0), ^uint64(0)
	case Limb64:
		return 0, ^uint64(0)
	default:
		return 0, 1<<uint(w) - 1
	}
}

func (l Layout) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, w := range l.limbs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(w)))
	}
	sb.WriteByte(']')
	return sb.String()
}
