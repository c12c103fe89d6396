package math

import (
	"github.com/db47h/bigint"
)

// GCD returns the greatest common divisor of a and b, computed with the
// classical Euclidean algorithm on absolute values. The result is always
// non-negative; GCD(0, 0) == 0.
func GCD(a, b *bigint.Int) *bigint.Int {
	x := new(bigint.Int).Abs(a)
	y := new(bigint.Int).Abs(b)
	for !y.IsZero() {
		x, y = y, rem(x, y)
	}
	return x
}

// LCM returns the least common multiple of a and b. It is 0 if either
// input is 0, and |a*b| / GCD(a, b) otherwise; the result is always
// non-negative.
func LCM(a, b *bigint.Int) *bigint.Int {
	if a.IsZero() || b.IsZero() {
		return bigint.New(0)
	}
	p := new(bigint.Int).Mul(a, b)
	p.Abs(p)
	q, _ := quoRem(p, GCD(a, b))
	return q
}
