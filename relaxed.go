//go:build !bitint_strict
// +build !bitint_strict

package bitint

// StrictArithmetic reports whether the operator methods (Add, Sub, Mul, Inc,
// Dec) panic on overflow. Without the bitint_strict build tag they wrap
// silently, like Go's native integers.
const StrictArithmetic = false
