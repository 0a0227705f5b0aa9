// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/linmath/internal/render"
	"github.com/spf13/cobra"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Draw a matrix as a heat map",
	Long: `Writes a heat map of the matrix. The image format follows the
extension of --out (png, svg, pdf, ...). Size and palette come from the
[render] config section.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output image (default: FILE with .png)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	m, err := loadMatrix(args[0])
	if err != nil {
		return err
	}

	out := renderOut
	if out == "" {
		out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
	}
	title := cfg.Render.Title
	if title == "" {
		title = filepath.Base(args[0])
	}

	err = render.HeatMap(m, out,
		render.WithSize(cfg.Render.WidthCM, cfg.Render.HeightCM),
		render.WithPaletteSize(cfg.Render.PaletteSize),
		render.WithTitle(title),
	)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

	return err
}
