// Package main provides the greenbar review tool entry point: a CLI for
// listing, diffing, approving and rejecting pending approval-test outputs.
package main

import (
	"fmt"
	"os"

	"greenbar/cmd/greenbar/internal/cli"
)

func main() {
	app := cli.NewApp()
	rootCmd := app.CreateRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
