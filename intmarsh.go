// This file implements encoding/decoding of Ints.

package bigint

import (
	"fmt"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const intGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface. The encoding is a
// version byte, a sign byte, and the magnitude digits least-significant
// first.
func (x *Int) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	n := x.abs.sigLen()
	if n == 0 {
		n = 1
	}
	buf := make([]byte, 2, 2+n)
	buf[0] = intGobVersion
	if x.neg && !x.abs.isZero() {
		buf[1] = 1
	}
	if x.abs.isZero() {
		return append(buf, 0), nil
	}
	return append(buf, x.abs[:n]...), nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Int) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Int{}
		return nil
	}
	if buf[0] != intGobVersion {
		return fmt.Errorf("Int.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 3 {
		return fmt.Errorf("Int.GobDecode: buffer too small")
	}
	for _, d := range buf[2:] {
		if d > 9 {
			return fmt.Errorf("Int.GobDecode: digit %d out of range", d)
		}
	}
	z.abs = z.abs.set(mag(buf[2:]))
	z.neg = buf[1] != 0
	z.norm()
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x *Int) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.Append(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Int) UnmarshalText(text []byte) error {
	if _, err := z.SetString(string(text)); err != nil {
		return fmt.Errorf("bigint: cannot unmarshal %q into a *bigint.Int (%w)", text, err)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface. The value is
// emitted as a bare JSON number of arbitrary length.
func (x *Int) MarshalJSON() ([]byte, error) {
	if x == nil {
		return []byte("null"), nil
	}
	return x.Append(nil), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. Both bare
// numbers and quoted number strings are accepted.
func (z *Int) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		// no-op per convention
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return z.UnmarshalText(text)
}
