// Command enginedb inspects and edits Engine DJ library directories
// from the shell: create a fresh library, print its catalogue
// variant, and manage tracks/crates/playlists without a hardware
// controller attached.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

var logger *zap.Logger

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
