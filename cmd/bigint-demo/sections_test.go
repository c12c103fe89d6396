package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true // keep section output greppable
}

func TestRunArith(t *testing.T) {
	var buf bytes.Buffer
	if err := runArith(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"a + b = 1111111110",
		"a * b = 121932631112635269",
		"b / a = 8",
		"b % a = 9",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunFunctions(t *testing.T) {
	var buf bytes.Buffer
	if err := runFunctions(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"Factorial of 15 = 1307674368000",
		"Fibonacci(30) = 832040",
		"Catalan(8) = 1430",
		"GCD(48, 18) = 6",
		"LCM(48, 18) = 144",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunPrimes(t *testing.T) {
	var buf bytes.Buffer
	if err := runPrimes(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Square root of 100 = 10", "2^3", "3^2", "5^1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunBench(t *testing.T) {
	var buf bytes.Buffer
	if err := runBench(&buf, 50); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Total") {
		t.Errorf("timing table missing Total row:\n%s", buf.String())
	}
}
