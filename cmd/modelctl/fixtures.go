package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// fixturesCmd represents the fixtures command
var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Generate test fixtures",
	Long:  `Generate randomized, validation-passing test fixtures for the known models.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'fixtures' requires a subcommand (generate)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(fixturesCmd)
}
