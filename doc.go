// Copyright 2025 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigint implements arbitrary-precision signed integer arithmetic
over a decimal digit-vector representation, together with textual
conversion and the building blocks for the number-theoretic functions in
the companion math subpackage.

The magnitude of an Int is stored as a little-endian slice of single
decimal digits and all arithmetic is performed directly in base 10. This
is a reference-grade representation: addition and subtraction are linear
in digit count, multiplication is the quadratic schoolbook convolution,
and division extracts one quotient digit per step by repeated
subtraction. Every operation returns its result in canonical form (no
trailing zero digits, zero is never negative).

The zero value for an Int corresponds to 0. Thus, new values can be
declared in the usual ways and denote 0 without further initialization:

	x := new(Int)  // x is a *Int of value 0

Alternatively, new Int values can be allocated and initialized with the
functions

	func New(x int64) *Int
	func Parse(s string) (*Int, error)

Setters, numeric operations and predicates are represented as methods of
the form:

	func (z *Int) SetV(v V) *Int             // z = v
	func (z *Int) Unary(x *Int) *Int         // z = unary x
	func (z *Int) Binary(x, y *Int) *Int     // z = x binary y
	func (x *Int) Pred() P                   // p = pred(x)

For unary and binary operations, the result is the receiver (usually
named z in that case; see below); if it is one of the operands x or y it
may be safely overwritten (and its memory reused). For instance, given
three *Int values a, b and c, the invocation

	c.Add(a, b)

computes the sum a + b and stores the result in c, overwriting whatever
value was held in c before, and

	sum.Add(sum, x)

accumulates values x in a sum.

Notational convention: incoming method parameters (including the
receiver) are named consistently in the API to clarify their use.
Incoming operands are usually named x, y, a, b, and so on, but never z.
A parameter specifying the result is named z (typically the receiver).

Operations with a restricted domain return an explicit error alongside
the receiver: division and remainder reject a zero divisor, Pow rejects
negative exponents, ModPow additionally rejects a non-positive modulus,
Sqrt rejects negative operands, and Int64 rejects values outside the
int64 range. The returned errors wrap the package's sentinel errors
(ErrDivisionByZero, ErrInvalidInput, ErrOutOfRange) and are matched with
errors.Is. An operation either fully succeeds with a canonical value or
fails cleanly without partial results.

Finally, *Int satisfies the fmt package's Scanner interface for scanning
and the Formatter interface for formatted printing, and implements the
text, JSON and gob codec interfaces.
*/
package bigint
