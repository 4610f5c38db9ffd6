package main

import (
	"fmt"

	"github.com/sgostarter/libeasygo/cuserror"
	"github.com/sgostarter/libkata/generic"
	"github.com/sgostarter/libkata/numbers"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "katas",
		Short:        "Run the generic, functional and account query demos",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newBoxCommand(), newSquaresCommand(), newPrimesCommand(), newAccountsCommand())

	return rootCmd
}

func newBoxCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "box",
		Short: "Show typed boxes and the max holder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			intBox := generic.NewBox(123)
			intBox2 := generic.NewBox(321)
			fmt.Fprintf(out, "box sum: %d\n", intBox.Value()+intBox2.Value())

			intBox.SetValue(222)
			fmt.Fprintf(out, "box value: %d\n", intBox.Value())

			holder := generic.NewMaxHolder(5)
			for _, v := range []int{3, 9, 9} {
				holder.Put(v)
				fmt.Fprintf(out, "put %d, max %d\n", v, holder.Max())
			}

			return nil
		},
	}
}

func newSquaresCommand() *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "squares",
		Short: "Sum the squares of an inclusive range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sum, err := numbers.SumOfSquaresInRange(from, to)
			if err != nil {
				return fmt.Errorf("squares of [%d, %d]: %w", from, to, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "sum of squares in [%d, %d]: %d\n", from, to, sum)

			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 5, "first number of the range")
	cmd.Flags().IntVar(&to, "to", 10, "last number of the range")

	return cmd
}

func newPrimesCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "primes",
		Short: "Sum the first prime numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count <= 0 {
				return cuserror.NewWithErrorMsg(fmt.Sprintf("count must be positive: %d", count))
			}

			out := cmd.OutOrStdout()

			sum := numbers.SumOfFirstPrimes(count, func(prime int) {
				fmt.Fprintf(out, "%d ", prime)
			})
			fmt.Fprintf(out, "\nsum of first %d primes: %d\n", count, sum)

			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 20, "how many primes to sum")

	return cmd
}
