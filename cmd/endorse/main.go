// Package main provides the entry point for the endorse CLI.
package main

import (
	"fmt"
	"os"

	"github.com/Sumatoshi-tech/endorse/cmd/endorse/commands"
	"github.com/Sumatoshi-tech/endorse/pkg/version"
)

func main() {
	version.InitBinaryVersion()

	rootCmd := commands.NewAuditCommand()
	rootCmd.AddCommand(commands.NewVersionCommand())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
