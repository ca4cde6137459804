//go:build bitint_strict
// +build bitint_strict

package bitint

// StrictArithmetic reports whether the operator methods (Add, Sub, Mul, Inc,
// Dec) panic on overflow. It is true when built with -tags bitint_strict.
const StrictArithmetic = true
