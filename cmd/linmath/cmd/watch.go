// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/katalvlaran/linmath/matrix"
	"github.com/spf13/cobra"
)

const watchDebounce = 200 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Recompute the determinant whenever FILE changes",
	Long: `Prints the determinant once, then again after every write to FILE
until interrupted. Parse errors are reported and watching continues.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	return watchFile(cmd.Context(), args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// watchFile reports the determinant of path to out on start and on each change.
// The parent directory is watched so that editors replacing the file by rename
// are still noticed. Returns when ctx is done.
func watchFile(ctx context.Context, path string, out, errOut io.Writer) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}
	log.Infow("watching", "file", abs)

	report := func() {
		if err := reportDeterminant(out, abs); err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", path, err)
		}
	}
	report()

	// trailing debounce: report once the file has been quiet for watchDebounce
	settle := time.NewTimer(watchDebounce)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-settle.C:
			report()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Debugw("file changed", "file", abs, "op", event.Op.String())
			settle.Reset(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorw("watcher error", "error", err)
		}
	}
}

func reportDeterminant(w io.Writer, path string) error {
	m, err := loadMatrix(path)
	if err != nil {
		return err
	}
	det, err := matrix.Determinant(m, determinantOptions()...)
	if err != nil {
		return err
	}

	return printFields(w, map[string]any{"determinant": det})
}
