// Copyright 2025 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"fmt"
)

// Sqrt sets z to ⌊√x⌋, the largest integer whose square does not exceed
// x, and returns z. A negative x returns ErrInvalidInput and leaves z
// unchanged.
//
// The root is found by binary search over [1, x]: each step squares the
// midpoint and narrows the range towards the largest midpoint whose
// square is <= x. This takes O(log x) multiplications, each quadratic in
// digit count; exact, with no floating-point seeding.
func (z *Int) Sqrt(x *Int) (*Int, error) {
	if x.Sign() < 0 {
		return nil, fmt.Errorf("%w: square root of negative number", ErrInvalidInput)
	}
	if x.Cmp(intOne) <= 0 {
		// √0 = 0, √1 = 1
		return z.Set(x), nil
	}

	lo := New(1)
	hi := new(Int).Set(x)
	res := New(1)
	var mid, sq, sum, junk Int
	for lo.Cmp(hi) <= 0 {
		sum.Add(lo, hi)
		mid.quoRem(&sum, intTwo, &junk)
		sq.Mul(&mid, &mid)
		if sq.Cmp(x) <= 0 {
			res.Set(&mid)
			lo.Add(&mid, intOne)
		} else {
			hi.Sub(&mid, intOne)
		}
	}
	return z.Set(res), nil
}
