// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/katalvlaran/linmath/matrix"
	"github.com/spf13/cobra"
)

var detCmd = &cobra.Command{
	Use:   "det FILE",
	Short: "Print the determinant of a square matrix",
	Long: `Computes the determinant by Gauss-Jordan elimination with partial
pivoting. The sign is corrected for row swaps unless
[determinant] legacy_sign = true is set in the config.`,
	Args: cobra.ExactArgs(1),
	RunE: runDet,
}

func init() {
	rootCmd.AddCommand(detCmd)
}

func runDet(cmd *cobra.Command, args []string) error {
	m, err := loadMatrix(args[0])
	if err != nil {
		return err
	}
	det, err := matrix.Determinant(m, determinantOptions()...)
	if err != nil {
		return err
	}

	return printFields(cmd.OutOrStdout(), map[string]any{"determinant": det})
}
