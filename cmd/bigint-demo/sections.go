package main

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"

	"github.com/db47h/bigint"
	"github.com/db47h/bigint/math"
)

var headerColor = color.New(color.FgCyan, color.Bold)

func printHeader(out io.Writer, title string) {
	line := strings.Repeat("=", 60)
	fmt.Fprintf(out, "\n%s\n", line)
	headerColor.Fprintf(out, " %s\n", title)
	fmt.Fprintln(out, line)
}

func runArith(out io.Writer) error {
	printHeader(out, "BASIC ARITHMETIC OPERATIONS")

	a := bigint.New(123456789)
	b := bigint.New(987654321)

	fmt.Fprintf(out, "a = %s\n", a)
	fmt.Fprintf(out, "b = %s\n", b)
	fmt.Fprintf(out, "a + b = %s\n", new(bigint.Int).Add(a, b))
	fmt.Fprintf(out, "a - b = %s\n", new(bigint.Int).Sub(a, b))
	fmt.Fprintf(out, "a * b = %s\n", new(bigint.Int).Mul(a, b))

	var q, r bigint.Int
	if _, _, err := q.QuoRem(b, a, &r); err != nil {
		return err
	}
	fmt.Fprintf(out, "b / a = %s\n", &q)
	fmt.Fprintf(out, "b %% a = %s\n", &r)
	return nil
}

func runFunctions(out io.Writer) error {
	printHeader(out, "MATHEMATICAL FUNCTIONS")

	fact, err := math.Factorial(15)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Factorial of 15 = %s\n", fact)

	fib, err := math.Fibonacci(30)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Fibonacci(30) = %s\n", fib)

	cat, err := math.Catalan(8)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Catalan(8) = %s\n", cat)

	a, b := bigint.New(48), bigint.New(18)
	fmt.Fprintf(out, "GCD(%s, %s) = %s\n", a, b, math.GCD(a, b))
	fmt.Fprintf(out, "LCM(%s, %s) = %s\n", a, b, math.LCM(a, b))
	return nil
}

func runPrimes(out io.Writer) error {
	printHeader(out, "PRIMES AND FACTORIZATION")

	num := bigint.New(100)
	root, err := new(bigint.Int).Sqrt(num)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Square root of %s = %s\n", num, root)

	for _, n := range []int64{17, 100} {
		x := bigint.New(n)
		verdict := "not prime"
		if math.IsPrime(x) {
			verdict = "prime"
		}
		fmt.Fprintf(out, "%s is %s\n", x, verdict)
	}

	n := bigint.New(360)
	fmt.Fprintf(out, "Prime factorization of %s:", n)
	for _, f := range math.Factors(n) {
		fmt.Fprintf(out, " %s^%d", f.Prime, f.Exp)
	}
	fmt.Fprintln(out)
	return nil
}

func runBench(out io.Writer, factorial int64) error {
	printHeader(out, "PERFORMANCE DEMONSTRATION")

	n, err := safecast.Conv[int](factorial)
	if err != nil {
		return fmt.Errorf("bad --factorial value: %w", err)
	}

	t := NewTiming()

	fact, err := math.Factorial(n)
	if err != nil {
		return err
	}
	t.Sample(fmt.Sprintf("Factorial(%d)", n), fact.Digits())

	fib, err := math.Fibonacci(250)
	if err != nil {
		return err
	}
	t.Sample("Fibonacci(250)", fib.Digits())

	wide, err := bigint.Parse(strings.Repeat("987654321", 56))
	if err != nil {
		return err
	}
	prod := new(bigint.Int).Mul(wide, wide)
	t.Sample(fmt.Sprintf("Mul(%d digits)", wide.Digits()), prod.Digits())

	prime := bigint.New(1_000_000_007)
	math.IsPrime(prime)
	t.Sample(fmt.Sprintf("IsPrime(%s)", prime), prime.Digits())

	t.Print(out)
	return nil
}
