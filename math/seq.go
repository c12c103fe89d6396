package math

import (
	"fmt"

	"github.com/db47h/bigint"
)

// Factorial returns n! for n >= 0. A negative n returns ErrInvalidInput.
// Factorial(0) == 1.
func Factorial(n int) (*bigint.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: factorial of negative number %d", bigint.ErrInvalidInput, n)
	}
	result := bigint.New(1)
	for i := int64(2); i <= int64(n); i++ {
		result.Mul(result, bigint.New(i))
	}
	return result, nil
}

// Fibonacci returns the n'th Fibonacci number for n >= 0, with
// Fibonacci(0) == 0 and Fibonacci(1) == 1. A negative n returns
// ErrInvalidInput.
func Fibonacci(n int) (*bigint.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: Fibonacci of negative number %d", bigint.ErrInvalidInput, n)
	}
	if n <= 1 {
		return bigint.New(int64(n)), nil
	}
	a, b := bigint.New(0), bigint.New(1)
	for i := 2; i <= n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return b, nil
}

// Catalan returns the n'th Catalan number (2n)! / ((n+1)! n!) for
// n >= 0. A negative n returns ErrInvalidInput.
func Catalan(n int) (*bigint.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: Catalan of negative number %d", bigint.ErrInvalidInput, n)
	}
	num, err := Factorial(2 * n)
	if err != nil {
		return nil, err
	}
	d1, err := Factorial(n + 1)
	if err != nil {
		return nil, err
	}
	d2, err := Factorial(n)
	if err != nil {
		return nil, err
	}
	q, _ := quoRem(num, d1.Mul(d1, d2))
	return q, nil
}
