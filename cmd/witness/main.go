package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "witness",
	Short:   "Run named checks against external commands",
	Long:    "Witness runs a suite of named checks, each an external command whose exit status decides pass or fail, and reports a final verdict.",
	Version: Version,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
