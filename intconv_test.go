package bigint

import (
	"errors"
	"fmt"
	"testing"
)

var setStringTests = []struct {
	in  string
	out string
	ok  bool
}{
	{"0", "0", true},
	{"+0", "0", true},
	{"-0", "0", true}, // canonical zero, never negative
	{"1", "1", true},
	{"+1", "1", true},
	{"-1", "-1", true},
	{"007", "7", true}, // leading zeros are dropped
	{"-000", "0", true},
	{"123456789123456789123456789", "123456789123456789123456789", true},
	{"-987654321", "-987654321", true},
	{"", "", false},
	{"-", "", false},
	{"+", "", false},
	{"12a3", "", false},
	{" 42", "", false},
	{"42 ", "", false},
	{"1_000", "", false},
	{"0x10", "", false},
	{"12.5", "", false},
}

func TestSetString(t *testing.T) {
	for i, a := range setStringTests {
		z, err := new(Int).SetString(a.in)
		if a.ok != (err == nil) {
			t.Errorf("#%d SetString(%q): got err = %v; want ok = %v", i, a.in, err, a.ok)
			continue
		}
		if !a.ok {
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("#%d SetString(%q): err = %v; want ErrInvalidInput", i, a.in, err)
			}
			continue
		}
		if s := z.String(); s != a.out {
			t.Errorf("#%d SetString(%q).String() = %q; want %q", i, a.in, s, a.out)
		}
	}
}

// a failed parse must leave the receiver untouched
func TestSetStringNoClobber(t *testing.T) {
	z := New(42)
	if _, err := z.SetString("not a number"); err == nil {
		t.Fatal("expected an error")
	}
	if z.String() != "42" {
		t.Errorf("receiver clobbered: got %s; want 42", z)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{
		"0", "1", "-1", "9", "10", "-10",
		"123456789", "-123456789",
		"10000000000000000000000000000001",
	} {
		x, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got := x.String(); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

var formatTests = []struct {
	in     string
	format string
	out    string
}{
	{"0", "%d", "0"},
	{"-42", "%d", "-42"},
	{"42", "%s", "42"},
	{"42", "%v", "42"},
	{"42", "%5d", "   42"},
	{"-42", "%5d", "  -42"},
	{"42", "%-5d|", "42   |"},
	{"42", "%1d", "42"}, // width smaller than value
	{"42", "%x", "%!x(*bigint.Int=42)"},
}

func TestFormat(t *testing.T) {
	for i, a := range formatTests {
		x, err := Parse(a.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", a.in, err)
		}
		if out := fmt.Sprintf(a.format, x); out != a.out {
			t.Errorf("#%d Sprintf(%q, %s) = %q; want %q", i, a.format, a.in, out, a.out)
		}
	}
}

func TestScan(t *testing.T) {
	var x, y Int
	n, err := fmt.Sscan("123456789123456789 -42", &x, &y)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("Sscan consumed %d items; want 2", n)
	}
	if x.String() != "123456789123456789" || y.String() != "-42" {
		t.Errorf("got %s, %s", &x, &y)
	}

	var z Int
	if _, err := fmt.Sscanf("abc", "%d", &z); err == nil {
		t.Error("Sscanf(abc) succeeded; want error")
	}
}

func TestAppend(t *testing.T) {
	x := New(-123)
	buf := x.Append([]byte("x = "))
	if string(buf) != "x = -123" {
		t.Errorf("got %q", buf)
	}
}

func BenchmarkIntString(b *testing.B) {
	x, _ := Parse("98765432109876543210987654321098765432109876543210")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.String()
	}
}

func BenchmarkSetString(b *testing.B) {
	const s = "98765432109876543210987654321098765432109876543210"
	var z Int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		z.SetString(s)
	}
}
