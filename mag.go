// Copyright 2025 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// A mag is an unsigned integer magnitude x of the form
//
//	x = x[n-1]*10^(n-1) + x[n-2]*10^(n-2) + ... + x[1]*10 + x[0]
//
// with 0 <= x[i] <= 9, stored in a slice of length n with the decimal
// digits x[i] as the slice elements (least-significant digit first).
//
// A magnitude is normalized if it contains no trailing zero digits and
// has length >= 1; the normalized representation of 0 is the one-element
// slice mag{0}. During arithmetic operations denormalized magnitudes may
// occur but are always normalized before the final result is returned.
// A nil magnitude is read as 0 so that the zero value of Int is usable
// without initialization.
type mag []byte

// sigLen returns the number of significant digits in x, ignoring
// trailing zero digits. It is 0 if x == 0 (canonical or nil).
func (x mag) sigLen() int {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return i
}

func (x mag) isZero() bool {
	return x.sigLen() == 0
}

// norm returns x in canonical form: trailing zero digits stripped down
// to a minimum length of 1. norm is idempotent.
func (z mag) norm() mag {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return mag{0}
	}
	return z[:i]
}

func (z mag) make(n int) mag {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most magnitudes start small and stay that way; don't over-allocate.
		return make(mag, 1)
	}
	// Choosing a good value for e has significant performance impact
	// because it increases the chance that a value can be reused.
	const e = 4 // extra capacity
	return make(mag, n, n+e)
}

func (z mag) set(x mag) mag {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// setUint64 sets z to x by repeated extraction of the least-significant
// decimal digit.
func (z mag) setUint64(x uint64) mag {
	z = z.make(0)
	for {
		z = append(z, byte(x%10))
		x /= 10
		if x == 0 {
			break
		}
	}
	return z
}

// cmp compares the magnitudes x and y and returns -1, 0, or 1. Lengths
// are compared first (canonical form forbids spurious high digits), then
// digits from most-significant to least-significant.
func (x mag) cmp(y mag) int {
	m, n := x.sigLen(), y.sigLen()
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	for i := m - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// add sets z to the digit sum x+y with carry propagation and returns z
// in canonical form. z may alias x or y.
func (z mag) add(x, y mag) mag {
	m := max(len(x), len(y))
	z = z.make(m + 1)
	var c byte
	for i := 0; i < m; i++ {
		s := c
		if i < len(x) {
			s += x[i]
		}
		if i < len(y) {
			s += y[i]
		}
		z[i], c = s%10, s/10
	}
	z[m] = c
	return z.norm()
}

// sub sets z to the digit difference x-y with borrow propagation and
// returns z in canonical form. It requires x >= y; the signed cases are
// resolved by the caller. z may alias x or y.
func (z mag) sub(x, y mag) mag {
	if debugBigint && x.cmp(y) < 0 {
		panic("mag.sub: magnitude underflow")
	}
	n := len(x)
	z = z.make(n)
	var b byte
	for i := 0; i < n; i++ {
		d := int(x[i]) - int(b)
		if i < len(y) {
			d -= int(y[i])
		}
		if d < 0 {
			d += 10
			b = 1
		} else {
			b = 0
		}
		z[i] = byte(d)
	}
	return z.norm()
}

// mul returns the schoolbook convolution product x*y in canonical form.
// The result is accumulated into a fresh buffer of length len(x)+len(y),
// so the receiver's storage is never reused and x and y may alias
// anything.
func (z mag) mul(x, y mag) mag {
	m, n := x.sigLen(), y.sigLen()
	if m == 0 || n == 0 {
		return mag{0}
	}
	t := make(mag, m+n)
	for i := 0; i < m; i++ {
		var c int
		for j := 0; j < n || c != 0; j++ {
			p := int(t[i+j]) + c
			if j < n {
				p += int(x[i]) * int(y[j])
			}
			t[i+j], c = byte(p%10), p/10
		}
	}
	return t.norm()
}

// shift10 returns the magnitude r*10 + d as a fresh normalized slice.
// It is the remainder-building step of long division: the next dividend
// digit d is prepended (in most-significant-first reading order) to the
// running remainder. A fresh slice is built on every step so that no
// partially-updated remainder is ever shared.
func (r mag) shift10(d byte) mag {
	n := r.sigLen()
	t := make(mag, n+1)
	t[0] = d
	copy(t[1:], r[:n])
	return t.norm()
}

// divmod returns the quotient and remainder of u/v in canonical form.
// v must be nonzero. The dividend's digits are processed from
// most-significant to least-significant, maintaining a running remainder
// from which v is repeatedly subtracted; the subtraction count (at most
// 9) becomes the next quotient digit.
func (u mag) divmod(v mag) (q, r mag) {
	if debugBigint && v.isZero() {
		panic("mag.divmod: division by zero")
	}
	n := u.sigLen()
	if n == 0 {
		return mag{0}, mag{0}
	}
	q = make(mag, n)
	r = mag{0}
	for i := n - 1; i >= 0; i-- {
		r = r.shift10(u[i])
		var d byte
		for r.cmp(v) >= 0 {
			r = r.sub(r, v)
			d++
		}
		q[i] = d
	}
	return q.norm(), r.norm()
}

// half returns z/2 in canonical form, dividing digit by digit from the
// most-significant end. z may be denormalized on input.
func (z mag) half() mag {
	var r byte
	for i := z.sigLen() - 1; i >= 0; i-- {
		d := r*10 + z[i]
		z[i], r = d/2, d%2
	}
	return z.norm()
}

// odd reports whether x is odd. In a least-significant-first digit
// vector, parity is decided by the first digit alone.
func (x mag) odd() bool {
	return len(x) > 0 && x[0]%2 != 0
}
