// Package main is the sigplot entry point.
package main

import (
	"os"

	"github.com/basepair-labs/sigplot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
