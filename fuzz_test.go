package bitint

import (
	"bytes"
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

type fuzzOp string
type fuzzType string

// This is the equivalent of passing -bitint.fuzziter=2000 to 'go test':
const fuzzDefaultIterations = 2000

// These ops are all enabled by default. You can instead pass them explicitly
// on the command line like so: '-bitint.fuzzop=add -bitint.fuzzop=sub', or you
// can use the short form '-bitint.fuzzop=add,sub,mul'.
//
// If you add a new op, search for the string 'NEWOP' in this file for all the
// places you need to update.
const (
	fuzzAdd              fuzzOp = "add"
	fuzzAnd              fuzzOp = "and"
	fuzzAndNot           fuzzOp = "andnot"
	fuzzAsU128           fuzzOp = "asu128"
	fuzzBitLen           fuzzOp = "bitlen"
	fuzzBytes            fuzzOp = "bytes"
	fuzzCmp              fuzzOp = "cmp"
	fuzzDec              fuzzOp = "dec"
	fuzzEqual            fuzzOp = "equal"
	fuzzGreaterOrEqualTo fuzzOp = "gte"
	fuzzGreaterThan      fuzzOp = "gt"
	fuzzInc              fuzzOp = "inc"
	fuzzLeadingZeros     fuzzOp = "lz"
	fuzzLessOrEqualTo    fuzzOp = "lte"
	fuzzLessThan         fuzzOp = "lt"
	fuzzLsh              fuzzOp = "lsh"
	fuzzMul              fuzzOp = "mul"
	fuzzNot              fuzzOp = "not"
	fuzzOr               fuzzOp = "or"
	fuzzQuo              fuzzOp = "quo"
	fuzzQuoRem           fuzzOp = "quorem"
	fuzzRem              fuzzOp = "rem"
	fuzzRsh              fuzzOp = "rsh"
	fuzzString           fuzzOp = "string"
	fuzzSub              fuzzOp = "sub"
	fuzzTrailingZeros    fuzzOp = "tz"
	fuzzXor              fuzzOp = "xor"
)

// These types are all enabled by default. You can instead pass them explicitly
// on the command line like so: '-bitint.fuzztype=u24 -bitint.fuzztype=u256'
const (
	fuzzTypeU24   fuzzType = "u24"
	fuzzTypeU48   fuzzType = "u48"
	fuzzTypeU80   fuzzType = "u80"
	fuzzTypeU256  fuzzType = "u256"
	fuzzTypeU512  fuzzType = "u512"
	fuzzTypeU1024 fuzzType = "u1024"
	fuzzTypeU2048 fuzzType = "u2048"
	fuzzTypeU4096 fuzzType = "u4096"
)

var allFuzzTypes = []fuzzType{
	fuzzTypeU24,
	fuzzTypeU48,
	fuzzTypeU80,
	fuzzTypeU256,
	fuzzTypeU512,
	fuzzTypeU1024,
	fuzzTypeU2048,
	fuzzTypeU4096,
}

// allFuzzOps are active by default.
//
// NEWOP: Update this list if a NEW op is added otherwise it won't be
// enabled by default.
//
// Please keep this list alphabetised.
var allFuzzOps = []fuzzOp{
	fuzzAdd,
	fuzzAnd,
	fuzzAndNot,
	fuzzAsU128,
	fuzzBitLen,
	fuzzBytes,
	fuzzCmp,
	fuzzDec,
	fuzzEqual,
	fuzzGreaterOrEqualTo,
	fuzzGreaterThan,
	fuzzInc,
	fuzzLeadingZeros,
	fuzzLessOrEqualTo,
	fuzzLessThan,
	fuzzLsh,
	fuzzMul,
	fuzzNot,
	fuzzOr,
	fuzzQuo,
	fuzzQuoRem,
	fuzzRem,
	fuzzRsh,
	fuzzString,
	fuzzSub,
	fuzzTrailingZeros,
	fuzzXor,
}

type fuzzImpl interface {
	Name() string
	Run(op fuzzOp) error
}

func newFuzzImpl(t fuzzType, source *rando) fuzzImpl {
	switch t {
	case fuzzTypeU24:
		return newFuzzUint(string(t), U24Bits, source, U24FromBigInt)
	case fuzzTypeU48:
		return newFuzzUint(string(t), U48Bits, source, U48FromBigInt)
	case fuzzTypeU80:
		return newFuzzUint(string(t), U80Bits, source, U80FromBigInt)
	case fuzzTypeU256:
		return newFuzzUint(string(t), U256Bits, source, U256FromBigInt)
	case fuzzTypeU512:
		return newFuzzUint(string(t), U512Bits, source, U512FromBigInt)
	case fuzzTypeU1024:
		return newFuzzUint(string(t), U1024Bits, source, U1024FromBigInt)
	case fuzzTypeU2048:
		return newFuzzUint(string(t), U2048Bits, source, U2048FromBigInt)
	case fuzzTypeU4096:
		return newFuzzUint(string(t), U4096Bits, source, U4096FromBigInt)
	default:
		panic(fmt.Errorf("unknown fuzz type %q", t))
	}
}

// classic rando!
type rando struct {
	operands []*big.Int
	rng      *rand.Rand
}

func (r *rando) Operands() []*big.Int { return r.operands }

func (r *rando) Clear() {
	for i := range r.operands {
		r.operands[i] = nil
	}
	r.operands = r.operands[:0]
}

func (r *rando) Uintn(n int) uint {
	v := uint(r.rng.Intn(n))
	r.operands = append(r.operands, new(big.Int).SetUint64(uint64(v)))
	return v
}

// samesies returns the number of arguments up to n - 1 that should be the same
// for this request. Only used for randos that are 'x2', 'x3', etc.
//
// We need this because the chance of even two random wide operands being the
// same is unfathomable.
func (r *rando) samesies(n int) int {
	const samesiesChance = 0.03
	if r.rng.Float64() < samesiesChance {
		return r.rng.Intn(n)
	}
	return 0
}

// BigUint returns a random value that fits in bits. The bit length is chosen
// uniformly first so that small values turn up as often as huge ones.
func (r *rando) BigUint(bits int) *big.Int {
	var v = new(big.Int)
	top := r.rng.Intn(bits+1) - 1 // +1 for "0 bits"
	if top >= 0 {
		v.Rand(r.rng, new(big.Int).Lsh(big1, uint(top)))
		v.SetBit(v, top, 1)
	}
	r.operands = append(r.operands, v)
	return v
}

func (r *rando) BigUintx2(bits int) (b1, b2 *big.Int) {
	b1 = r.BigUint(bits)
	if r.samesies(2) > 0 {
		b2 = new(big.Int).Set(b1)
		r.operands = append(r.operands, b2)
	} else {
		b2 = r.BigUint(bits)
	}
	return b1, b2
}

// fuzzUint checks every op of one generated type against math/big.
type fuzzUint[T Uint[T]] struct {
	name    string
	bits    int
	mask    *big.Int
	source  *rando
	fromBig func(*big.Int) (T, bool)
}

func newFuzzUint[T Uint[T]](name string, bits int, source *rando, fromBig func(*big.Int) (T, bool)) *fuzzUint[T] {
	return &fuzzUint[T]{
		name:    name,
		bits:    bits,
		mask:    bigMask(bits),
		source:  source,
		fromBig: fromBig,
	}
}

func (f *fuzzUint[T]) Name() string { return f.name }

func (f *fuzzUint[T]) value(b *big.Int) T {
	u, acc := f.fromBig(b)
	if !acc {
		panic(fmt.Errorf("bitint: inaccurate conversion to %s in fuzz tester for %s", f.name, b))
	}
	return u
}

func (f *fuzzUint[T]) values() (b1, b2 *big.Int, u1, u2 T) {
	b1, b2 = f.source.BigUintx2(f.bits)
	return b1, b2, f.value(b1), f.value(b2)
}

// wrap reduces b modulo 2^bits and reports whether that changed it.
func (f *fuzzUint[T]) wrap(b *big.Int) (*big.Int, bool) {
	overflow := b.Sign() < 0 || b.BitLen() > f.bits
	return new(big.Int).And(b, f.mask), overflow
}

func (f *fuzzUint[T]) checkEqual(u T, b *big.Int) error {
	if u.AsBigInt().Cmp(b) != 0 {
		return fmt.Errorf("%s(%s) != big(%s)\n%s", f.name, u, b, spew.Sdump(u))
	}
	return nil
}

func (f *fuzzUint[T]) checkOverflowing(u T, overflow bool, b *big.Int) error {
	want, wantOverflow := f.wrap(b)
	if err := f.checkEqual(u, want); err != nil {
		return err
	}
	return checkEqualBool(overflow, wantOverflow)
}

// checkOperator compares an operator form against its Overflowing result. In
// strict builds an overflowing operator must panic instead.
func (f *fuzzUint[T]) checkOperator(overflow bool, want T, op func() T) error {
	if overflow && StrictArithmetic {
		if msg := mustPanic(func() { op() }); !strings.HasPrefix(msg, "bitint: "+f.name) {
			return fmt.Errorf("expected overflow panic, found %q", msg)
		}
		return nil
	}
	if got := op(); got != want {
		return fmt.Errorf("operator(%s) != overflowing(%s)", got, want)
	}
	return nil
}

func checkEqualInt(u int, b int) error {
	if u != b {
		return fmt.Errorf("bitint(%v) != big(%v)", u, b)
	}
	return nil
}

func checkEqualBool(u bool, b bool) error {
	if u != b {
		return fmt.Errorf("bitint(%v) != big(%v)", u, b)
	}
	return nil
}

func checkEqualString(u string, b string) error {
	if u != b {
		return fmt.Errorf("bitint(%s) != big(%s)", u, b)
	}
	return nil
}

// NEWOP: add a new branch here in alphabetical order if a new op is added.
func (f *fuzzUint[T]) Run(op fuzzOp) error {
	switch op {
	case fuzzAdd:
		b1, b2, u1, u2 := f.values()
		v, overflow := u1.OverflowingAdd(u2)
		if err := f.checkOverflowing(v, overflow, new(big.Int).Add(b1, b2)); err != nil {
			return err
		}
		return f.checkOperator(overflow, v, func() T { return u1.Add(u2) })

	case fuzzAnd:
		b1, b2, u1, u2 := f.values()
		return f.checkEqual(u1.And(u2), new(big.Int).And(b1, b2))

	case fuzzAndNot:
		b1, b2, u1, u2 := f.values()
		return f.checkEqual(u1.AndNot(u2), new(big.Int).AndNot(b1, b2))

	case fuzzAsU128:
		b1 := f.source.BigUint(f.bits)
		u1 := f.value(b1)
		want := new(big.Int).And(b1, bigMask(128))
		if err := checkEqualString(u1.AsU128().String(), want.String()); err != nil {
			return err
		}
		if err := checkEqualBool(u1.IsU128(), b1.BitLen() <= 128); err != nil {
			return err
		}
		if err := checkEqualBool(u1.IsUint64(), b1.BitLen() <= 64); err != nil {
			return err
		}
		want.And(want, bigMask(64))
		return checkEqualString(fmt.Sprint(u1.AsUint64()), want.String())

	case fuzzBitLen:
		b1 := f.source.BigUint(f.bits)
		return checkEqualInt(f.value(b1).BitLen(), b1.BitLen())

	case fuzzBytes:
		b1 := f.source.BigUint(f.bits)
		u1 := f.value(b1)
		want := b1.FillBytes(make([]byte, f.bits/8))
		be := u1.AppendBEBytes(nil)
		if !bytes.Equal(be, want) {
			return fmt.Errorf("be bytes %x != big bytes %x", be, want)
		}
		le := u1.AppendLEBytes(nil)
		reverseBytes(le)
		if !bytes.Equal(le, want) {
			return fmt.Errorf("reversed le bytes %x != big bytes %x", le, want)
		}
		return nil

	case fuzzCmp:
		b1, b2, u1, u2 := f.values()
		return checkEqualInt(u1.Cmp(u2), b1.Cmp(b2))

	case fuzzDec:
		b1 := f.source.BigUint(f.bits)
		u1 := f.value(b1)
		want, overflow := f.wrap(new(big.Int).Sub(b1, big1))
		v, _ := u1.OverflowingSub(f.value(big1))
		if err := f.checkEqual(v, want); err != nil {
			return err
		}
		return f.checkOperator(overflow, v, u1.Dec)

	case fuzzEqual:
		b1, b2, u1, u2 := f.values()
		if err := checkEqualBool(u1.Equal(u2), b1.Cmp(b2) == 0); err != nil {
			return err
		}
		return checkEqualBool(u1 == u2, b1.Cmp(b2) == 0)

	case fuzzGreaterOrEqualTo:
		b1, b2, u1, u2 := f.values()
		return checkEqualBool(u1.GreaterOrEqualTo(u2), b1.Cmp(b2) >= 0)

	case fuzzGreaterThan:
		b1, b2, u1, u2 := f.values()
		return checkEqualBool(u1.GreaterThan(u2), b1.Cmp(b2) > 0)

	case fuzzInc:
		b1 := f.source.BigUint(f.bits)
		u1 := f.value(b1)
		want, overflow := f.wrap(new(big.Int).Add(b1, big1))
		v, _ := u1.OverflowingAdd(f.value(big1))
		if err := f.checkEqual(v, want); err != nil {
			return err
		}
		return f.checkOperator(overflow, v, u1.Inc)

	case fuzzLeadingZeros:
		b1 := f.source.BigUint(f.bits)
		return checkEqualInt(int(f.value(b1).LeadingZeros()), f.bits-b1.BitLen())

	case fuzzLessOrEqualTo:
		b1, b2, u1, u2 := f.values()
		return checkEqualBool(u1.LessOrEqualTo(u2), b1.Cmp(b2) <= 0)

	case fuzzLessThan:
		b1, b2, u1, u2 := f.values()
		return checkEqualBool(u1.LessThan(u2), b1.Cmp(b2) < 0)

	case fuzzLsh:
		b1 := f.source.BigUint(f.bits)
		by := f.source.Uintn(f.bits + f.bits/2)
		want := new(big.Int).Lsh(b1, by)
		return f.checkEqual(f.value(b1).Lsh(by), want.And(want, f.mask))

	case fuzzMul:
		b1, b2, u1, u2 := f.values()
		v, overflow := u1.OverflowingMul(u2)
		if err := f.checkOverflowing(v, overflow, new(big.Int).Mul(b1, b2)); err != nil {
			return err
		}
		return f.checkOperator(overflow, v, func() T { return u1.Mul(u2) })

	case fuzzNot:
		b1 := f.source.BigUint(f.bits)
		return f.checkEqual(f.value(b1).Not(), new(big.Int).Xor(b1, f.mask))

	case fuzzOr:
		b1, b2, u1, u2 := f.values()
		return f.checkEqual(u1.Or(u2), new(big.Int).Or(b1, b2))

	case fuzzQuo:
		b1, b2, u1, u2 := f.values()
		if b2.Sign() == 0 {
			return nil
		}
		v, overflow := u1.OverflowingQuo(u2)
		if err := checkEqualBool(overflow, false); err != nil {
			return err
		}
		return f.checkEqual(v, new(big.Int).Quo(b1, b2))

	case fuzzQuoRem:
		b1, b2, u1, u2 := f.values()
		if b2.Sign() == 0 {
			return nil
		}
		q, r := u1.QuoRem(u2)
		bq, br := new(big.Int).QuoRem(b1, b2, new(big.Int))
		if err := f.checkEqual(q, bq); err != nil {
			return err
		}
		return f.checkEqual(r, br)

	case fuzzRem:
		b1, b2, u1, u2 := f.values()
		if b2.Sign() == 0 {
			return nil
		}
		v, overflow := u1.OverflowingRem(u2)
		if err := checkEqualBool(overflow, false); err != nil {
			return err
		}
		return f.checkEqual(v, new(big.Int).Rem(b1, b2))

	case fuzzRsh:
		b1 := f.source.BigUint(f.bits)
		by := f.source.Uintn(f.bits + f.bits/2)
		return f.checkEqual(f.value(b1).Rsh(by), new(big.Int).Rsh(b1, by))

	case fuzzString:
		b1 := f.source.BigUint(f.bits)
		u1 := f.value(b1)
		if err := checkEqualString(u1.String(), b1.String()); err != nil {
			return err
		}
		return checkEqualString(fmt.Sprintf("%#x", u1), fmt.Sprintf("%#x", b1))

	case fuzzSub:
		b1, b2, u1, u2 := f.values()
		v, borrow := u1.OverflowingSub(u2)
		if err := f.checkOverflowing(v, borrow, new(big.Int).Sub(b1, b2)); err != nil {
			return err
		}
		return f.checkOperator(borrow, v, func() T { return u1.Sub(u2) })

	case fuzzTrailingZeros:
		b1 := f.source.BigUint(f.bits)
		want := f.bits
		if b1.Sign() != 0 {
			want = int(b1.TrailingZeroBits())
		}
		return checkEqualInt(int(f.value(b1).TrailingZeros()), want)

	case fuzzXor:
		b1, b2, u1, u2 := f.values()
		return f.checkEqual(u1.Xor(u2), new(big.Int).Xor(b1, b2))

	default:
		panic(fmt.Errorf("unsupported op %q", op))
	}
}

func TestFuzz(t *testing.T) {
	// fuzzOpsActive comes from the -bitint.fuzzop flag, in TestMain:
	var runFuzzOps = fuzzOpsActive

	// fuzzTypesActive comes from the -bitint.fuzztype flag, in TestMain:
	var runFuzzTypes = fuzzTypesActive

	var source = &rando{rng: globalRNG} // Classic rando!
	var totalFailures int

	for _, fuzzType := range runFuzzTypes {
		fuzzImpl := newFuzzImpl(fuzzType, source)
		var failures = make([]int, len(runFuzzOps))

		for opIdx, op := range runFuzzOps {
			for i := 0; i < fuzzIterations; i++ {
				source.Clear()
				if err := fuzzImpl.Run(op); err != nil {
					failures[opIdx]++
					t.Logf("%s %s: %s\n", fuzzImpl.Name(), op.Print(source.Operands()...), err)
				}
			}
		}

		for opIdx, cnt := range failures {
			if cnt > 0 {
				totalFailures += cnt
				t.Logf("impl %s, op %s: %d/%d failed", fuzzImpl.Name(), string(runFuzzOps[opIdx]), cnt, fuzzIterations)
			}
		}
	}

	if totalFailures > 0 {
		t.Fail()
	}
}

func (op fuzzOp) Print(operands ...*big.Int) string {
	// NEWOP: please add a human-readale format for your op here; this is used
	// for reporting errors and should show the operation, i.e. "2 + 2".
	//
	// It should be safe to assume the appropriate number of operands are set
	// in 'operands'; if not, it's a bug to be fixed elsewhere.
	switch op {
	case fuzzAsU128,
		fuzzBitLen,
		fuzzBytes,
		fuzzLeadingZeros,
		fuzzString,
		fuzzTrailingZeros:
		s := strings.TrimRight(op.String(), "()")
		return fmt.Sprintf("%s(%d)", s, operands[0])

	case fuzzInc, fuzzDec:
		return fmt.Sprintf("%d%s", operands[0], op.String())

	case fuzzNot:
		return fmt.Sprintf("%s%d", op.String(), operands[0])

	case fuzzAdd,
		fuzzAnd,
		fuzzAndNot,
		fuzzLessOrEqualTo,
		fuzzLessThan,
		fuzzLsh,
		fuzzMul,
		fuzzOr,
		fuzzQuo,
		fuzzQuoRem,
		fuzzRem,
		fuzzRsh,
		fuzzXor,
		fuzzCmp,
		fuzzEqual,
		fuzzGreaterOrEqualTo,
		fuzzGreaterThan,
		fuzzSub:

		// simple binary case:
		return fmt.Sprintf("%d %s %d", operands[0], op.String(), operands[1])

	default:
		return string(op)
	}
}

func (op fuzzOp) String() string {
	// NEWOP: please add a short string representation of this op, as if
	// the operands were in a sum (if that's possible)
	switch op {
	case fuzzAdd:
		return "+"
	case fuzzAnd:
		return "&"
	case fuzzAndNot:
		return "&^"
	case fuzzAsU128:
		return "u128()"
	case fuzzBitLen:
		return "bitlen()"
	case fuzzBytes:
		return "bytes()"
	case fuzzCmp:
		return "<=>"
	case fuzzDec:
		return "--"
	case fuzzEqual:
		return "=="
	case fuzzGreaterThan:
		return ">"
	case fuzzGreaterOrEqualTo:
		return ">="
	case fuzzInc:
		return "++"
	case fuzzLeadingZeros:
		return "lz()"
	case fuzzLessThan:
		return "<"
	case fuzzLessOrEqualTo:
		return "<="
	case fuzzLsh:
		return "<<"
	case fuzzMul:
		return "*"
	case fuzzNot:
		return "^"
	case fuzzOr:
		return "|"
	case fuzzQuo:
		return "/"
	case fuzzQuoRem:
		return "/%"
	case fuzzRem:
		return "%"
	case fuzzRsh:
		return ">>"
	case fuzzString:
		return "string()"
	case fuzzSub:
		return "-"
	case fuzzTrailingZeros:
		return "tz()"
	case fuzzXor:
		return "^"
	default:
		return string(op)
	}
}
