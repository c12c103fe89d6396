package math

import (
	"math/rand"
	"time"

	"github.com/db47h/bigint"
)

// fermatRounds is the default number of random-base rounds used by the
// probabilistic part of IsPrime.
const fermatRounds = 5

// defaultRand is the source used by IsPrime. The package model is
// single-threaded; callers needing determinism or concurrency pass
// their own source to IsPrimeRand.
var defaultRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// IsPrime reports whether x is probably prime, using the package's
// default random source and 5 probabilistic rounds. See IsPrimeRand for
// the exact test performed and its (considerable) limitations.
func IsPrime(x *bigint.Int) bool {
	return IsPrimeRand(x, defaultRand, fermatRounds)
}

// IsPrimeRand reports whether x is probably prime, drawing random bases
// from rnd.
//
// Values <= 1 are not prime, 2 is prime, and even values other than 2
// are not. Magnitudes up to 100 are settled exactly by trial division up
// to the integer square root. Larger magnitudes get rounds iterations of
// a Fermat-style check: a random base a in [2, 100] is drawn and x is
// rejected as composite if gcd(a, x) != 1.
//
// This is a weak, demonstration-grade test, not a Miller–Rabin witness
// test: composites whose prime factors all exceed 100 pass every round.
// Do not use it where an adversary chooses the input.
func IsPrimeRand(x *bigint.Int, rnd *rand.Rand, rounds int) bool {
	if x.Cmp(one) <= 0 {
		return false
	}
	if x.Cmp(two) == 0 {
		return true
	}
	if rem(x, two).IsZero() {
		return false
	}

	n := new(bigint.Int).Abs(x)
	if n.Cmp(hundred) <= 0 {
		// exact: trial division while i*i <= n
		i := bigint.New(2)
		sq := new(bigint.Int)
		for sq.Mul(i, i).Cmp(n) <= 0 {
			if rem(n, i).IsZero() {
				return false
			}
			i.Add(i, one)
		}
		return true
	}

	for r := 0; r < rounds; r++ {
		a := bigint.New(int64(2 + rnd.Intn(99))) // base in [2, 100]
		if GCD(a, n).Cmp(one) != 0 {
			return false
		}
	}
	return true
}

// A Factor is a prime divisor together with its multiplicity.
type Factor struct {
	Prime *bigint.Int
	Exp   int
}

// Factors returns the prime factorization of |x| in ascending prime
// order. Values <= 1 yield an empty list.
//
// The factor 2 is divided out first, then odd candidates from 3 upward
// are tried while the candidate does not exceed the integer square root
// of the shrinking remainder; any leftover above 1 is itself prime.
func Factors(x *bigint.Int) []Factor {
	n := new(bigint.Int).Abs(x)
	if n.Cmp(one) <= 0 {
		return nil
	}

	var factors []Factor
	count := 0
	for {
		q, r := quoRem(n, two)
		if !r.IsZero() {
			break
		}
		n = q
		count++
	}
	if count > 0 {
		factors = append(factors, Factor{Prime: bigint.New(2), Exp: count})
	}

	i := bigint.New(3)
	root := sqrt(n)
	for i.Cmp(root) <= 0 {
		count = 0
		for {
			q, r := quoRem(n, i)
			if !r.IsZero() {
				break
			}
			n = q
			count++
		}
		if count > 0 {
			factors = append(factors, Factor{Prime: new(bigint.Int).Set(i), Exp: count})
			root = sqrt(n) // the remainder shrank
		}
		i.Add(i, two)
	}
	if n.Cmp(one) > 0 {
		factors = append(factors, Factor{Prime: n, Exp: 1})
	}
	return factors
}

// sqrt returns ⌊√n⌋ for n >= 0.
func sqrt(n *bigint.Int) *bigint.Int {
	z, err := new(bigint.Int).Sqrt(n)
	if err != nil {
		panic(err)
	}
	return z
}
