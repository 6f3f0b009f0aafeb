// Package main is the entry point for the emp CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/emp/internal/cli"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	a := &app{}
	err := newRootCmd(a).Execute()
	a.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}
