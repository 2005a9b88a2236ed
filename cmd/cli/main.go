// Package main is the entry point for the webdev-cost CLI.
package main

import (
	"os"

	"webdev-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
