package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bigint-demo",
	Short: "Arbitrary-precision integer library demonstration",
	Long: `bigint-demo exercises the bigint library: basic arithmetic,
number-theoretic functions, primality and factorization, and a timed
benchmark of representative operations.

Run without arguments to execute every section in order.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if err := runArith(out); err != nil {
			return err
		}
		if err := runFunctions(out); err != nil {
			return err
		}
		if err := runPrimes(out); err != nil {
			return err
		}
		return runBench(out, benchFactorial)
	},
}

var arithCmd = &cobra.Command{
	Use:   "arith",
	Short: "Basic arithmetic operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runArith(cmd.OutOrStdout())
	},
}

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "Factorial, Fibonacci, Catalan, GCD and LCM",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFunctions(cmd.OutOrStdout())
	},
}

var primesCmd = &cobra.Command{
	Use:   "primes",
	Short: "Square root, primality and factorization",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPrimes(cmd.OutOrStdout())
	},
}

var benchFactorial int64

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Timed benchmark of representative operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBench(cmd.OutOrStdout(), benchFactorial)
	},
}

func main() {
	rootCmd.AddCommand(arithCmd)
	rootCmd.AddCommand(functionsCmd)
	rootCmd.AddCommand(primesCmd)
	rootCmd.AddCommand(benchCmd)

	rootCmd.PersistentFlags().Bool("no-color", false, "disable colorized output")
	benchCmd.Flags().Int64Var(&benchFactorial, "factorial", 50, "factorial argument for the benchmark")

	cobra.OnInitialize(func() {
		if noColor, _ := rootCmd.PersistentFlags().GetBool("no-color"); noColor {
			color.NoColor = true
		}
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
