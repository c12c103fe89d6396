// Package math provides number-theoretic functions over *bigint.Int
// values: greatest common divisor and least common multiple, factorial,
// Fibonacci and Catalan numbers, a demonstration-grade primality test,
// prime factorization, and proxies for the root package's
// exponentiation and square root.
package math

import (
	"github.com/db47h/bigint"
)

// constants
var (
	one     = bigint.New(1)
	two     = bigint.New(2)
	hundred = bigint.New(100)
)

// rem returns x % y for y != 0. The callers below only divide by values
// already checked (or known) to be nonzero, so the error path is
// unreachable.
func rem(x, y *bigint.Int) *bigint.Int {
	r, err := new(bigint.Int).Rem(x, y)
	if err != nil {
		panic(err)
	}
	return r
}

func quoRem(x, y *bigint.Int) (q, r *bigint.Int) {
	q = new(bigint.Int)
	r = new(bigint.Int)
	_, _, err := q.QuoRem(x, y, r)
	if err != nil {
		panic(err)
	}
	return q, r
}
