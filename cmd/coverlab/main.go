// Package main is the entry point for the coverlab CLI.
//
// Usage:
//
//	coverlab [flags] <command>
//
// Commands:
//
//	connectivity - P(random graph is connected) vs edge count
//	approx       - approx1/2/3 ratio to the exact vertex cover
//	duality      - |MVC| + |MIS| = n check over random graphs
//	worstcase    - exhaustive approx1 worst case on all graphs with n nodes
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvcover/cmd/coverlab/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
