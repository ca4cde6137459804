package bitint

import (
	"fmt"
	"math/big"
)

// Difference subtracts the smaller of a and b from the larger.
func Difference[T Uint[T]](a, b T) T {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func Larger[T Uint[T]](a, b T) T {
	if a.Cmp(b) < 0 {
		return b
	}
	return a
}

func Smaller[T Uint[T]](a, b T) T {
	if a.Cmp(b) > 0 {
		return b
	}
	return a
}

func overflowPanic(typ, op string) {
	panic(fmt.Sprintf("bitint: %s %s overflow", typ, op))
}

func divByZeroPanic(typ string) {
	panic(fmt.Sprintf("bitint: %s division by zero", typ))
}

func parseDecimal(s, typ string) (*big.Int, error) {
	// This deliberately limits the scope of what we accept as input just in case
	// we decide to hand-roll our own fast decimal-only parser:
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("bitint: %s string %q invalid", typ, s)
	}
	return b, nil
}

func unquoteJSON(bts []byte, typ string) ([]byte, error) {
	if len(bts) == 0 || string(bts) == "null" {
		return nil, fmt.Errorf("bitint: %s invalid JSON %q", typ, string(bts))
	}
	if bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return nil, fmt.Errorf("bitint: %s invalid JSON %q", typ, string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return bts, nil
}
