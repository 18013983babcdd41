// Package main provides the roster CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// dataFile is the --file override for the active store file.
var dataFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Student record manager over a CSV or JSON file",
	Long: `roster maintains a flat list of student records in a single CSV or
JSON file: add, update, delete, search, display, and column management.

Run with no arguments for the interactive menu. Subcommands output JSON
by default for scripting; pass --human for tables and plain messages.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runMenu,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "Path to the store file (.csv or .json)")
	rootCmd.Version = Version
}
