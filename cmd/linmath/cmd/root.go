// SPDX-License-Identifier: MIT

// Package cmd holds the cobra commands of the linmath CLI.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	logging "github.com/ipfs/go-log/v2"
	"github.com/katalvlaran/linmath/internal/config"
	"github.com/katalvlaran/linmath/internal/matrixio"
	"github.com/katalvlaran/linmath/matrix"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var log = logging.Logger("linmath")

var (
	cfgFile   string
	logLevel  string
	outFormat string

	cfg    *config.Config
	format matrixio.Format
)

var rootCmd = &cobra.Command{
	Use:   "linmath",
	Short: "Dense matrix arithmetic and Gauss-Jordan determinants",
	Long: `linmath reads matrices from YAML or TOML documents and applies
arithmetic, transposition, pivot search, Gauss-Jordan elimination and
determinant computation to them.

A document is either flat:
  rows: 2
  cols: 2
  data: [1, 2, 3, 4]
or nested:
  values: [[1, 2], [3, 4]]`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command, cancelling on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides config")
	rootCmd.PersistentFlags().StringVarP(&outFormat, "format", "f", "", "output format (text, yaml, toml); overrides config")
}

// setup loads the configuration and applies flag overrides before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.General.LogLevel = logLevel
	}
	if outFormat != "" {
		loaded.Output.Format = outFormat
	}

	lvl, err := logging.LevelFromString(loaded.General.LogLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", loaded.General.LogLevel, err)
	}
	logging.SetAllLoggers(lvl)

	f, err := matrixio.ParseFormat(loaded.Output.Format)
	if err != nil {
		return err
	}

	cfg, format = loaded, f
	log.Debugw("configured", "config", cfgFile, "format", format, "level", loaded.General.LogLevel)

	return nil
}

func loadMatrix(path string) (*matrix.Matrix[float64], error) {
	m, err := matrixio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	log.Debugw("matrix loaded", "path", path, "rows", m.Rows(), "cols", m.Cols())

	return m, nil
}

func loadPair(a, b string) (*matrix.Matrix[float64], *matrix.Matrix[float64], error) {
	lhs, err := loadMatrix(a)
	if err != nil {
		return nil, nil, err
	}
	rhs, err := loadMatrix(b)
	if err != nil {
		return nil, nil, err
	}

	return lhs, rhs, nil
}

// determinantOptions maps the [determinant] config section to matrix options.
func determinantOptions() []matrix.Option {
	opts := []matrix.Option{matrix.WithEpsilon(cfg.Determinant.Epsilon)}
	if cfg.Determinant.LegacySign {
		opts = append(opts, matrix.WithLegacySign())
	}

	return opts
}

func printMatrix(w io.Writer, m *matrix.Matrix[float64]) error {
	return matrixio.Encode(w, m, format, cfg.Output.Precision)
}

// printFields writes named scalars; text output uses "key: value" lines in key order.
func printFields(w io.Writer, fields map[string]any) error {
	if format != matrixio.Text {
		return encodeValue(w, fields)
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteString(": ")
		switch v := fields[k].(type) {
		case float64:
			sb.WriteString(matrixio.FormatScalar(v, cfg.Output.Precision))
		default:
			fmt.Fprint(&sb, v)
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// encodeValue writes v as a YAML or TOML document.
func encodeValue(w io.Writer, v any) error {
	switch format {
	case matrixio.YAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case matrixio.TOML:
		return toml.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("structured output in %q: %w", format, matrixio.ErrUnknownFormat)
	}
}
