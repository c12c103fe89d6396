package bigint

import (
	"fmt"
)

// Parse returns a new Int set to the value of the textual literal s.
// It is shorthand for new(Int).SetString(s).
func Parse(s string) (*Int, error) {
	return new(Int).SetString(s)
}

// SetString sets z to the value of s and returns z. The literal must
// consist of an optional leading '+' or '-' followed by one or more
// ASCII decimal digits; no base prefixes, grouping separators or
// whitespace are accepted. The sign defaults to positive and "-0"
// parses to the canonical, non-negative zero.
//
// An empty string, a bare sign, or any non-digit character returns
// ErrInvalidInput and leaves z unchanged.
func (z *Int) SetString(s string) (*Int, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidInput)
	}
	neg := false
	digits := s
	switch s[0] {
	case '-':
		neg = true
		digits = s[1:]
	case '+':
		digits = s[1:]
	}
	if len(digits) == 0 {
		return nil, fmt.Errorf("%w: %q has no digits", ErrInvalidInput, s)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, fmt.Errorf("%w: non-digit character %q in %q", ErrInvalidInput, digits[i], s)
		}
	}
	// store least-significant digit first: the input string is reversed
	abs := z.abs.make(len(digits))
	for i := 0; i < len(digits); i++ {
		abs[i] = digits[len(digits)-1-i] - '0'
	}
	z.abs = abs
	z.neg = neg
	return z.norm(), nil
}

// Append appends the canonical textual form of x to buf and returns the
// extended buffer: a '-' prefix iff x is negative, then the digits
// most-significant first with no leading zeros.
func (x *Int) Append(buf []byte) []byte {
	if debugBigint {
		x.validate()
	}
	n := x.abs.sigLen()
	if n == 0 {
		return append(buf, '0')
	}
	if x.neg {
		buf = append(buf, '-')
	}
	for i := n - 1; i >= 0; i-- {
		buf = append(buf, '0'+x.abs[i])
	}
	return buf
}

// String returns the canonical decimal representation of x.
func (x *Int) String() string {
	return string(x.Append(nil))
}

var _ fmt.Formatter = intZero // *Int must implement fmt.Formatter

// Format implements fmt.Formatter. It accepts the verbs 'd', 's' and
// 'v' and honors field width with left or right justification; all
// other verbs yield a %! error string.
func (x *Int) Format(s fmt.State, verb rune) {
	switch verb {
	case 'd', 's', 'v':
		// ok
	default:
		fmt.Fprintf(s, "%%!%c(*bigint.Int=%s)", verb, x.String())
		return
	}
	t := x.Append(nil)
	if w, ok := s.Width(); ok && w > len(t) {
		if s.Flag('-') {
			s.Write(t)
			writePad(s, w-len(t))
			return
		}
		writePad(s, w-len(t))
	}
	s.Write(t)
}

func writePad(s fmt.State, n int) {
	const pad = "        "
	for n > 0 {
		k := min(n, len(pad))
		s.Write([]byte(pad[:k]))
		n -= k
	}
}

var _ fmt.Scanner = intZero // *Int must implement fmt.Scanner

// Scan implements fmt.Scanner for the verbs 'd', 's' and 'v'. It skips
// leading whitespace, consumes one whitespace-delimited token and parses
// it as a textual literal; parse failures propagate as ErrInvalidInput.
func (z *Int) Scan(s fmt.ScanState, ch rune) error {
	switch ch {
	case 'd', 's', 'v':
		// ok
	default:
		return fmt.Errorf("%w: bad verb %%%c for *bigint.Int", ErrInvalidInput, ch)
	}
	tok, err := s.Token(true, nil)
	if err != nil {
		return err
	}
	_, err = z.SetString(string(tok))
	return err
}
