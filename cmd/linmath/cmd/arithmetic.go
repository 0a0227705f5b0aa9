// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/linmath/matrix"
	"github.com/spf13/cobra"
)

var transposeCmd = &cobra.Command{
	Use:   "transpose FILE",
	Short: "Print the transpose of a matrix",
	Args:  cobra.ExactArgs(1),
	RunE:  runTranspose,
}

var addCmd = &cobra.Command{
	Use:   "add A B",
	Short: "Print A + B",
	Args:  cobra.ExactArgs(2),
	RunE:  binary(matrix.Add[float64]),
}

var subCmd = &cobra.Command{
	Use:   "sub A B",
	Short: "Print A - B",
	Args:  cobra.ExactArgs(2),
	RunE:  binary(matrix.Sub[float64]),
}

var mulCmd = &cobra.Command{
	Use:   "mul A B",
	Short: "Print the matrix product A × B",
	Args:  cobra.ExactArgs(2),
	RunE:  binary(matrix.Mul[float64]),
}

var scaleCmd = &cobra.Command{
	Use:   "scale FILE K",
	Short: "Print the matrix multiplied by the scalar K",
	Args:  cobra.ExactArgs(2),
	RunE:  scalar(matrix.Scale[float64]),
}

var divideCmd = &cobra.Command{
	Use:   "divide FILE K",
	Short: "Print the matrix divided by the scalar K",
	Args:  cobra.ExactArgs(2),
	RunE:  scalar(matrix.Divide[float64]),
}

var equalCmd = &cobra.Command{
	Use:   "equal A B",
	Short: "Compare two matrices exactly and within [determinant] epsilon",
	Args:  cobra.ExactArgs(2),
	RunE:  runEqual,
}

var identityCmd = &cobra.Command{
	Use:   "identity N",
	Short: "Print the N×N identity matrix",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentity,
}

func init() {
	rootCmd.AddCommand(transposeCmd, addCmd, subCmd, mulCmd, scaleCmd, divideCmd, equalCmd, identityCmd)
}

func runTranspose(cmd *cobra.Command, args []string) error {
	m, err := loadMatrix(args[0])
	if err != nil {
		return err
	}

	return printMatrix(cmd.OutOrStdout(), m.Transpose())
}

func binary(op func(a, b *matrix.Matrix[float64]) (*matrix.Matrix[float64], error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, b, err := loadPair(args[0], args[1])
		if err != nil {
			return err
		}
		res, err := op(a, b)
		if err != nil {
			return err
		}

		return printMatrix(cmd.OutOrStdout(), res)
	}
}

func scalar(op func(m *matrix.Matrix[float64], k float64) (*matrix.Matrix[float64], error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		k, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("scalar %q: %w", args[1], err)
		}
		m, err := loadMatrix(args[0])
		if err != nil {
			return err
		}
		res, err := op(m, k)
		if err != nil {
			return err
		}

		return printMatrix(cmd.OutOrStdout(), res)
	}
}

func runEqual(cmd *cobra.Command, args []string) error {
	a, b, err := loadPair(args[0], args[1])
	if err != nil {
		return err
	}
	exact := matrix.Equal(a, b)
	approx, err := matrix.EqualApprox(a, b, determinantOptions()...)
	if err != nil {
		return err
	}

	return printFields(cmd.OutOrStdout(), map[string]any{"equal": exact, "approx": approx})
}

func runIdentity(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("size %q: %w", args[0], err)
	}
	m, err := matrix.Unity[float64](n)
	if err != nil {
		return err
	}

	return printMatrix(cmd.OutOrStdout(), m)
}
