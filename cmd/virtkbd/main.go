// Package main is the entry point for the virtkbd CLI.
package main

import (
	"fmt"
	"os"

	"github.com/dshills/virtkbd/internal/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
