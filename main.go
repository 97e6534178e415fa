// Package main is the entry point for the neonshell demo compiler.
package main

import (
	"fmt"
	"os"

	"github.com/neonshell/neonshell/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
