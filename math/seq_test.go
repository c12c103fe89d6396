package math

import (
	"testing"

	"github.com/db47h/bigint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorial(t *testing.T) {
	for _, tc := range []struct {
		n    int
		want string
	}{
		{0, "1"},
		{1, "1"},
		{2, "2"},
		{5, "120"},
		{10, "3628800"},
		{15, "1307674368000"},
		{20, "2432902008176640000"},
		{25, "15511210043330985984000000"},
	} {
		z, err := Factorial(tc.n)
		require.NoError(t, err, "Factorial(%d)", tc.n)
		assert.Equal(t, tc.want, z.String(), "Factorial(%d)", tc.n)
	}

	_, err := Factorial(-1)
	assert.ErrorIs(t, err, bigint.ErrInvalidInput)
}

func TestFibonacci(t *testing.T) {
	for _, tc := range []struct {
		n    int
		want string
	}{
		{0, "0"},
		{1, "1"},
		{2, "1"},
		{3, "2"},
		{10, "55"},
		{30, "832040"},
		{40, "102334155"},
		{100, "354224848179261915075"},
	} {
		z, err := Fibonacci(tc.n)
		require.NoError(t, err, "Fibonacci(%d)", tc.n)
		assert.Equal(t, tc.want, z.String(), "Fibonacci(%d)", tc.n)
	}

	_, err := Fibonacci(-3)
	assert.ErrorIs(t, err, bigint.ErrInvalidInput)
}

// F(n) == F(n-1) + F(n-2)
func TestFibonacciRecurrence(t *testing.T) {
	for n := 2; n <= 60; n++ {
		a, err := Fibonacci(n - 2)
		require.NoError(t, err)
		b, err := Fibonacci(n - 1)
		require.NoError(t, err)
		c, err := Fibonacci(n)
		require.NoError(t, err)
		assert.Zero(t, new(bigint.Int).Add(a, b).Cmp(c), "F(%d)", n)
	}
}

func TestCatalan(t *testing.T) {
	want := []string{"1", "1", "2", "5", "14", "42", "132", "429", "1430", "4862", "16796"}
	for n, w := range want {
		z, err := Catalan(n)
		require.NoError(t, err, "Catalan(%d)", n)
		assert.Equal(t, w, z.String(), "Catalan(%d)", n)
	}

	_, err := Catalan(-1)
	assert.ErrorIs(t, err, bigint.ErrInvalidInput)
}
