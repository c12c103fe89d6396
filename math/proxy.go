package math

import "github.com/db47h/bigint"

// Pow sets z to base**exp and returns z. A negative exponent returns
// ErrInvalidInput. Pow(z, 0, 0) is 1.
//
// This function is a proxy for z.Pow(base, exp).
func Pow(z, base, exp *bigint.Int) (*bigint.Int, error) {
	return z.Pow(base, exp)
}

// ModPow sets z to base**exp mod m and returns z. The modulus must be
// strictly positive and the exponent non-negative.
//
// This function is a proxy for z.ModPow(base, exp, m).
func ModPow(z, base, exp, m *bigint.Int) (*bigint.Int, error) {
	return z.ModPow(base, exp, m)
}

// Sqrt sets z to the integer square root ⌊√x⌋ and returns z. A negative
// x returns ErrInvalidInput.
//
// This function is a proxy for z.Sqrt(x).
func Sqrt(z, x *bigint.Int) (*bigint.Int, error) {
	return z.Sqrt(x)
}
