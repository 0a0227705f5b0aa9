// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/linmath/internal/matrixio"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout.
// Flag-bound globals persist between Execute calls and are reset here.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile, logLevel, outFormat = "", "", ""
	pivotCol, pivotMinRow, renderOut = 0, 0, ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return out.String(), err
}

func writeDoc(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// TestDetCommand covers sign policy via config and structured output.
func TestDetCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.yaml", "values: [[2, 1], [4, 3]]\n")

	out, err := run(t, "det", a)
	require.NoError(t, err)
	require.Equal(t, "determinant: 2\n", out)

	legacy := writeDoc(t, dir, "legacy.toml", "[determinant]\nlegacy_sign = true\n")
	out, err = run(t, "--config", legacy, "det", a)
	require.NoError(t, err)
	require.Equal(t, "determinant: -2\n", out)

	out, err = run(t, "--format", "toml", "det", a)
	require.NoError(t, err)
	require.Equal(t, "determinant = 2.0\n", out)

	rect := writeDoc(t, dir, "rect.yaml", "rows: 1\ncols: 2\ndata: [1, 2]\n")
	_, err = run(t, "det", rect)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not square")
}

// TestArithmeticCommands exercises the copy-then-compound operations.
func TestArithmeticCommands(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.yaml", "values: [[1, 2], [3, 4]]\n")
	b := writeDoc(t, dir, "b.toml", "values = [[10, 20], [30, 40]]\n")
	c := writeDoc(t, dir, "c.yaml", "values: [[1, 2, 3]]\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"add", []string{"add", a, b}, "[11, 22]\n[33, 44]\n"},
		{"sub", []string{"sub", b, a}, "[9, 18]\n[27, 36]\n"},
		{"mul", []string{"mul", a, b}, "[70, 100]\n[150, 220]\n"},
		{"scale", []string{"scale", a, "0.5"}, "[0.5, 1]\n[1.5, 2]\n"},
		{"divide", []string{"divide", b, "10"}, "[1, 2]\n[3, 4]\n"},
		{"transpose", []string{"transpose", c}, "[1]\n[2]\n[3]\n"},
		{"identity", []string{"identity", "2"}, "[1, 0]\n[0, 1]\n"},
		{"equal", []string{"equal", a, a}, "approx: true\nequal: true\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}

	_, err := run(t, "add", a, c)
	require.Error(t, err)
	_, err = run(t, "scale", a, "two")
	require.Error(t, err)
}

// TestYAMLOutputRoundTrips feeds structured output back into the decoder.
func TestYAMLOutputRoundTrips(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.yaml", "values: [[1, 2, 3], [4, 5, 6]]\n")

	out, err := run(t, "-f", "yaml", "transpose", a)
	require.NoError(t, err)
	m, err := matrixio.Decode(strings.NewReader(out), matrixio.YAML)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
}

// TestEliminateAndPivotCommands report swaps and pivot positions.
func TestEliminateAndPivotCommands(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.yaml", "values: [[2, 1], [4, 3]]\n")

	out, err := run(t, "eliminate", a)
	require.NoError(t, err)
	require.Equal(t, "[4, 0]\n[0, -0.5]\nswaps: 1\n", out)

	out, err = run(t, "-f", "yaml", "eliminate", a)
	require.NoError(t, err)
	require.Contains(t, out, "swaps: 1\n")
	require.Contains(t, out, "matrix:\n")

	out, err = run(t, "pivot", a, "--col", "1")
	require.NoError(t, err)
	require.Equal(t, "row: 1\nvalue: 3\n", out)

	out, err = run(t, "pivot", a, "--col", "0", "--min-row", "1")
	require.NoError(t, err)
	require.Equal(t, "row: 1\nvalue: 4\n", out)

	_, err = run(t, "pivot", a, "--col", "5")
	require.Error(t, err)
}

// TestRenderCommand writes an image next to the input by default.
func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.yaml", "values: [[1, 2], [3, 4]]\n")

	out, err := run(t, "render", a)
	require.NoError(t, err)
	want := filepath.Join(dir, "a.png")
	require.Equal(t, want+"\n", out)
	require.FileExists(t, want)

	svg := filepath.Join(dir, "b.svg")
	_, err = run(t, "render", a, "--out", svg)
	require.NoError(t, err)
	require.FileExists(t, svg)
}

// TestSetupRejectsBadFlags validates format and log level before running.
func TestSetupRejectsBadFlags(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.yaml", "values: [[1]]\n")

	_, err := run(t, "--format", "xml", "det", a)
	require.ErrorIs(t, err, matrixio.ErrUnknownFormat)

	_, err = run(t, "--log-level", "loud", "det", a)
	require.Error(t, err)

	_, err = run(t, "--config", filepath.Join(dir, "missing.toml"), "det", a)
	require.Error(t, err)
}

// syncBuffer guards a bytes.Buffer shared with the watch loop.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// TestWatchFileReportsChanges reports once on start and again after a write.
func TestWatchFileReportsChanges(t *testing.T) {
	cfgFile, logLevel, outFormat = "", "", ""
	require.NoError(t, setup(rootCmd, nil))

	dir := t.TempDir()
	path := writeDoc(t, dir, "w.yaml", "values: [[2, 0], [0, 3]]\n")

	ctx, cancel := context.WithCancel(context.Background())
	var out, errOut syncBuffer
	done := make(chan error, 1)
	go func() { done <- watchFile(ctx, path, &out, &errOut) }()

	require.Eventually(t, func() bool {
		return out.String() == "determinant: 6\n"
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("values: [[5, 0], [0, 3]]\n"), 0o600))
	require.Eventually(t, func() bool {
		return strings.HasSuffix(out.String(), "determinant: 15\n")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
