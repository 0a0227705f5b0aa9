// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/katalvlaran/linmath/internal/matrixio"
	"github.com/spf13/cobra"
)

var (
	pivotCol    int
	pivotMinRow int
)

var eliminateCmd = &cobra.Command{
	Use:   "eliminate FILE",
	Short: "Reduce a matrix to diagonal form and report the row swaps",
	Args:  cobra.ExactArgs(1),
	RunE:  runEliminate,
}

var pivotCmd = &cobra.Command{
	Use:   "pivot FILE",
	Short: "Find the largest-magnitude element of a column",
	Long: `Searches column --col from row --min-row downwards for the element
with the greatest absolute value. Ties resolve to the earliest row.`,
	Args: cobra.ExactArgs(1),
	RunE: runPivot,
}

func init() {
	pivotCmd.Flags().IntVar(&pivotCol, "col", 0, "column to search")
	pivotCmd.Flags().IntVar(&pivotMinRow, "min-row", 0, "first row considered")
	rootCmd.AddCommand(eliminateCmd, pivotCmd)
}

type eliminationResult struct {
	Swaps  int               `yaml:"swaps" toml:"swaps"`
	Matrix matrixio.Document `yaml:"matrix" toml:"matrix"`
}

func runEliminate(cmd *cobra.Command, args []string) error {
	m, err := loadMatrix(args[0])
	if err != nil {
		return err
	}
	swaps, err := m.GaussJordanElimination()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if format == matrixio.Text {
		if err := printMatrix(w, m); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "swaps: %d\n", swaps)
		return err
	}

	return encodeValue(w, eliminationResult{Swaps: swaps, Matrix: matrixio.NewDocument(m)})
}

func runPivot(cmd *cobra.Command, args []string) error {
	m, err := loadMatrix(args[0])
	if err != nil {
		return err
	}
	row, val, err := m.MaxInColGreaterEq(pivotCol, pivotMinRow)
	if err != nil {
		return err
	}

	return printFields(cmd.OutOrStdout(), map[string]any{"row": row, "value": val})
}
