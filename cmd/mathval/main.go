// SPDX-License-Identifier: MIT

// Command mathval is a shell front end to the mathval value types.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/mathval/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
