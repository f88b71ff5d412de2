package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "modelctl",
	Short: "Administration CLI for modelbase-backed services",
	Long: `modelctl manages the database schema, configuration, and test
fixtures of services built on the modelbase data-access layer.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
