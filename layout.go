package bitint

import (
	"github.com/librypt/librypt-int/internal/limbplan"
)

type (
	// Layout is the limb plan for one bit width, most significant limb first.
	Layout = limbplan.Layout

	// LimbWidth is the width in bits of a single limb: 8, 16, 32, 64 or 128.
	LimbWidth = limbplan.LimbWidth
)

const (
	Limb8   = limbplan.Limb8
	Limb16  = limbplan.Limb16
	Limb32  = limbplan.Limb32
	Limb64  = limbplan.Limb64
	Limb128 = limbplan.Limb128
)

// ErrInvalidWidth is wrapped by errors returned from Plan.
var ErrInvalidWidth = limbplan.ErrInvalidWidth

// Plan decomposes a bit width into limbs, greedily taking the largest limb
// that fits. bits must be a positive multiple of 8.
func Plan(bits int) (Layout, error) { return limbplan.Plan(bits) }

// MustPlan is like Plan but panics if bits is invalid.
func MustPlan(bits int) Layout { return limbplan.MustPlan(bits) }
