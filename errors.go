package bigint

import "errors"

// Errors reported by this package and its math subpackage. Operations
// wrap these with contextual detail; match them with errors.Is.
var (
	// ErrInvalidInput reports a malformed textual literal or an argument
	// outside an operation's domain (negative exponent, non-positive
	// modulus, negative square root operand).
	ErrInvalidInput = errors.New("bigint: invalid input")

	// ErrDivisionByZero reports a zero divisor in Quo, Rem or QuoRem.
	ErrDivisionByZero = errors.New("bigint: division by zero")

	// ErrOutOfRange reports a value whose magnitude exceeds the target
	// type's representable range during a narrowing conversion.
	ErrOutOfRange = errors.New("bigint: value out of range")

	// ErrOverflow and ErrUnderflow are reserved for bounded-width fast
	// paths. The arbitrary-precision representation itself cannot
	// overflow, so the core arithmetic never returns them.
	ErrOverflow  = errors.New("bigint: overflow")
	ErrUnderflow = errors.New("bigint: underflow")
)
