/*
Package bitint provides unsigned integers of fixed widths beyond the native
word sizes: any multiple of 8 bits. The package ships U24, U48, U80, U256,
U512, U1024, U2048 and U4096. Other widths are added to this package by
listing them on the go:generate line in generate.go, which runs cmd/bitintgen.

Each type is a value type built from native limbs. The limbs are chosen by
Plan, which takes the largest of 128, 64, 32, 16 and 8 bits that still fits,
so U80 is a 64-bit limb followed by a 16-bit limb. 128-bit limbs are stored as
U128, since Go has no native 128-bit integer; U128 and I128 also serve as the
128-bit native conversion types.

Simple example:

	a := U24From64(5)
	b := U24From64(251)
	fmt.Println(a.Add(b))
	// Output: 256

	_, overflow := MaxU80.OverflowingAdd(U80From8(1))
	fmt.Println(overflow)
	// Output: true

Values can be created from, and converted back to:

	U24From8/16/32/64(v)    U24FromInt8/16/32/64(v)
	U24From128(U128)        U24FromI128(I128)
	U24FromLEBytes([3]byte) U24FromBEBytes([3]byte) U24FromNEBytes([3]byte)
	U24FromBigInt(*big.Int) U24FromString(string)

Conversions to narrower native types truncate silently; see IsUint64 and
IsU128 to check first.

# Overflow

Every arithmetic operation has an Overflowing form that returns the wrapped
result and a flag. The operator forms (Add, Sub, Mul, Inc, Dec) wrap like
Go's native integers by default; build with -tags bitint_strict to make them
panic instead. Division by zero always panics.

All generated types implement fmt.Formatter, fmt.Stringer,
encoding.TextMarshaler, encoding.TextUnmarshaler, json.Marshaler and
json.Unmarshaler, and satisfy the Uint constraint.
*/
package bitint
