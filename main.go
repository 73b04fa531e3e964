// main is the entry point for the relgate CLI.
package main

import (
	"fmt"
	"os"

	"github.com/relgate/relgate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
