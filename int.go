package bigint

import (
	"fmt"
)

const debugBigint = true

// An Int is a signed arbitrary-precision integer stored as a sign flag
// and a little-endian decimal digit vector. The zero value for an Int
// represents the value 0.
//
// Operations always leave their result in canonical form: no trailing
// zero digits in the magnitude, and a zero value is never negative.
type Int struct {
	neg bool // sign: the value is negative iff neg is set and abs != 0
	abs mag  // magnitude, least-significant digit first
}

// Loop sentinels shared across the package. They are initialized during
// package initialization (single-threaded per the language spec) and
// must never be mutated afterwards.
var (
	intZero = New(0)
	intOne  = New(1)
	intTwo  = New(2)
)

// New returns a new Int set to x.
func New(x int64) *Int {
	return new(Int).SetInt64(x)
}

// SetInt64 sets z to x and returns z. The magnitude is built by repeated
// digit extraction; the conversion is exact for the whole int64 range,
// including math.MinInt64.
func (z *Int) SetInt64(x int64) *Int {
	u := uint64(x)
	if x < 0 {
		u = -u // two's complement negation; correct even for MinInt64
	}
	z.abs = z.abs.setUint64(u)
	z.neg = x < 0
	return z
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if debugBigint {
		x.validate()
	}
	if z != x {
		z.abs = z.abs.set(x.abs)
		z.neg = x.neg
	}
	return z.norm()
}

// norm restores z's canonical form: trailing zero digits are stripped
// from the magnitude (down to the single digit 0) and the sign is
// cleared whenever the magnitude is zero. It returns z.
func (z *Int) norm() *Int {
	z.abs = z.abs.norm()
	if z.abs.isZero() {
		z.neg = false
	}
	return z
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x *Int) Sign() int {
	if debugBigint {
		x.validate()
	}
	if x.abs.isZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x is 0.
func (x *Int) IsZero() bool {
	return x.abs.isZero()
}

// Digits returns the number of decimal digits in x's magnitude. It is 1
// for x == 0.
func (x *Int) Digits() int {
	if n := x.abs.sigLen(); n > 0 {
		return n
	}
	return 1
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	neg := !x.neg
	z.Set(x)
	z.neg = neg
	return z.norm()
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	z.neg = false
	return z
}

// CmpAbs compares the magnitudes of x and y, ignoring signs, and
// returns -1, 0, or 1.
func (x *Int) CmpAbs(y *Int) int {
	return x.abs.cmp(y.abs)
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// Differing signs resolve by sign alone; equal signs resolve by
// magnitude, with the direction flipped when both operands are negative.
func (x *Int) Cmp(y *Int) int {
	if debugBigint {
		x.validate()
		y.validate()
	}
	xs, ys := x.Sign(), y.Sign()
	if xs != ys {
		if xs < ys {
			return -1
		}
		return 1
	}
	if xs < 0 {
		return y.abs.cmp(x.abs)
	}
	return x.abs.cmp(y.abs)
}

// Add sets z to the sum x+y and returns z.
//
// Equal signs add magnitudes and keep the common sign. Mixed signs
// reduce to a subtraction of the smaller magnitude from the larger, the
// result taking the sign of the magnitude-larger operand.
func (z *Int) Add(x, y *Int) *Int {
	neg := x.neg
	if x.neg == y.neg {
		z.abs = z.abs.add(x.abs, y.abs)
	} else {
		if x.abs.cmp(y.abs) >= 0 {
			z.abs = z.abs.sub(x.abs, y.abs)
		} else {
			neg = !neg
			z.abs = z.abs.sub(y.abs, x.abs)
		}
	}
	z.neg = neg
	return z.norm()
}

// Sub sets z to the difference x-y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	neg := x.neg
	if x.neg != y.neg {
		z.abs = z.abs.add(x.abs, y.abs)
	} else {
		if x.abs.cmp(y.abs) >= 0 {
			z.abs = z.abs.sub(x.abs, y.abs)
		} else {
			neg = !neg
			z.abs = z.abs.sub(y.abs, x.abs)
		}
	}
	z.neg = neg
	return z.norm()
}

// Mul sets z to the product x*y and returns z. The result sign is the
// XOR of the operand signs; a zero product is never negative.
func (z *Int) Mul(x, y *Int) *Int {
	neg := x.neg != y.neg
	z.abs = z.abs.mul(x.abs, y.abs)
	z.neg = neg
	return z.norm()
}

// quoRem sets z to the quotient x/y and r to the remainder x%y with
// truncated division semantics and returns the pair (z, r). The divisor
// must be nonzero; QuoRem performs the zero check.
func (z *Int) quoRem(x, y, r *Int) (*Int, *Int) {
	qneg := x.neg != y.neg
	rneg := x.neg
	z.abs, r.abs = x.abs.divmod(y.abs)
	z.neg = qneg
	r.neg = rneg
	return z.norm(), r.norm()
}

// QuoRem sets z to the quotient x/y and r to the remainder x%y and
// returns the pair (z, r) for y != 0. For y == 0 it returns
// ErrDivisionByZero and leaves z and r unchanged.
//
// QuoRem implements T-division:
//
//	q = x/y with the quotient truncated towards zero
//	r = x - y*q with |r| < |y| and the sign of x
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int, error) {
	if y.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	q, m := z.quoRem(x, y, r)
	return q, m, nil
}

// Quo sets z to the quotient x/y for y != 0, truncated towards zero,
// and returns z. For y == 0 it returns ErrDivisionByZero.
func (z *Int) Quo(x, y *Int) (*Int, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}
	var r Int
	q, _ := z.quoRem(x, y, &r)
	return q, nil
}

// Rem sets z to the remainder x%y for y != 0 and returns z. The
// remainder carries the sign of x. For y == 0 it returns
// ErrDivisionByZero.
func (z *Int) Rem(x, y *Int) (*Int, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}
	var q Int
	_, r := q.quoRem(x, y, z)
	return r, nil
}

// Pow sets z to x**y using binary (square-and-multiply) exponentiation
// and returns z. A zero exponent yields 1 unconditionally, including
// 0**0 == 1. A negative exponent returns ErrInvalidInput and leaves z
// unchanged.
func (z *Int) Pow(x, y *Int) (*Int, error) {
	if y.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative exponent", ErrInvalidInput)
	}
	result := New(1)
	b := new(Int).Set(x)
	e := mag(nil).set(y.abs).norm()
	for !e.isZero() {
		if e.odd() {
			result.Mul(result, b)
		}
		b.Mul(b, b)
		e = e.half()
	}
	return z.Set(result), nil
}

// ModPow sets z to x**y mod m and returns z. Every intermediate product
// is reduced modulo m, so the magnitudes stay bounded by m's. The
// modulus must be strictly positive and the exponent non-negative;
// either violation returns ErrInvalidInput and leaves z unchanged.
//
// The base is first reduced with Rem, so a negative x yields residues
// carrying x's sign, matching the package's truncated division.
func (z *Int) ModPow(x, y, m *Int) (*Int, error) {
	if m.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus must be positive", ErrInvalidInput)
	}
	if y.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative exponent", ErrInvalidInput)
	}
	result := New(1)
	b := new(Int)
	var q Int
	q.quoRem(x, m, b)
	e := mag(nil).set(y.abs).norm()
	for !e.isZero() {
		if e.odd() {
			result.Mul(result, b)
			q.quoRem(result, m, result)
		}
		b.Mul(b, b)
		q.quoRem(b, m, b)
		e = e.half()
	}
	return z.Set(result), nil
}

// IsInt64 reports whether x can be represented as an int64.
func (x *Int) IsInt64() bool {
	_, err := x.Int64()
	return err == nil
}

// Int64 returns the int64 representation of x. If x cannot be
// represented as an int64, it returns ErrOutOfRange rather than
// truncating or wrapping.
func (x *Int) Int64() (int64, error) {
	n := x.abs.sigLen()
	if n > 19 { // MaxInt64 has 19 digits
		return 0, fmt.Errorf("%w: %d digits do not fit in int64", ErrOutOfRange, n)
	}
	var u uint64
	for i := n - 1; i >= 0; i-- {
		u = u*10 + uint64(x.abs[i])
	}
	if x.neg {
		if u > 1<<63 {
			return 0, fmt.Errorf("%w: value below math.MinInt64", ErrOutOfRange)
		}
		return -int64(u), nil
	}
	if u > 1<<63-1 {
		return 0, fmt.Errorf("%w: value above math.MaxInt64", ErrOutOfRange)
	}
	return int64(u), nil
}

// Min returns the smaller of a and b (a if equal).
func Min(a, b *Int) *Int {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}

// Max returns the larger of a and b (a if equal).
func Max(a, b *Int) *Int {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

func (x *Int) validate() {
	if !debugBigint {
		// avoid performance bugs
		panic("validate called but debugBigint is not set")
	}
	n := len(x.abs)
	if n == 0 {
		// zero value Int, read as 0
		if x.neg {
			panic("uninitialized Int with sign set")
		}
		return
	}
	if n > 1 && x.abs[n-1] == 0 {
		panic(fmt.Sprintf("trailing zero digits in %v", []byte(x.abs)))
	}
	if x.neg && x.abs.isZero() {
		panic("negative zero")
	}
	for _, d := range x.abs {
		if d > 9 {
			panic(fmt.Sprintf("digit %d out of range", d))
		}
	}
}
