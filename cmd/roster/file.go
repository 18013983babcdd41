package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roster-cli/roster/internal/config"
	"github.com/roster-cli/roster/internal/store"
)

func init() {
	rootCmd.AddCommand(fileCmd)
	fileCmd.AddCommand(fileShowCmd)
	fileCmd.AddCommand(fileSetCmd)
}

var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Show or change the bound store file",
}

var fileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active store file and its schema",
	Args:  cobra.NoArgs,
	RunE:  runFileShow,
}

func runFileShow(cmd *cobra.Command, args []string) error {
	s := openStore()

	if humanOutput {
		fmt.Printf("File:    %s\n", s.Path)
		fmt.Printf("Format:  %s\n", s.Format)
		fmt.Printf("Columns: %d\n", len(s.Columns))
		fmt.Printf("Records: %d\n", len(s.Records))
		return nil
	}

	outputJSON(FileResponse{
		Path:    s.Path,
		Format:  string(s.Format),
		Columns: s.Columns,
		Records: len(s.Records),
	})
	return nil
}

var fileSetCmd = &cobra.Command{
	Use:   "set <path>",
	Short: "Make a store file the default for future runs",
	Long: `Bind roster to a store file, creating it with the default schema
when it does not exist, and record it as default_file in the global
config. Data is not migrated from the previous file.

Example:
  roster file set ~/students/fall2026.json`,
	Args: cobra.ExactArgs(1),
	RunE: runFileSet,
}

func runFileSet(cmd *cobra.Command, args []string) error {
	path := config.ExpandPath(args[0])

	format, err := store.FormatForPath(path)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	s, err := store.Open(path, format)
	if err != nil {
		exitWithError(ExitError, "opening store: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	cfg.DefaultFile = path
	if err := cfg.Save(); err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("Default store file set to %s (%d records)\n", path, len(s.Records))
	} else {
		outputJSON(StatusResponse{Status: "set", Path: path})
	}
	return nil
}
