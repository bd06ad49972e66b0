// Command dartlet is the CLI front-end for the dartlet interpreter.
package main

import (
	"fmt"
	"os"

	"github.com/dartlet-lang/dartlet/cmd/dartlet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
