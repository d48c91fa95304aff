// Command prepkit is the command-line front end for the preprocessing
// transform library.
package main

import (
	"os"

	"github.com/halden-labs/prepkit-cli/internal/adapters/driving/cli"
)

func main() {
	// Cobra prints the error itself; the exit code is ours to set.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
