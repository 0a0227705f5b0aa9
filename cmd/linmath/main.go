// SPDX-License-Identifier: MIT

// Command linmath evaluates matrix documents from the command line.
package main

import (
	"os"

	"github.com/katalvlaran/linmath/cmd/linmath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
