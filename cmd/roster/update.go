package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roster-cli/roster/internal/store"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update <id> <json>",
	Short: "Update a student record",
	Long: `Update the first record whose id matches.

Only the fields present in the JSON object are overwritten; keys
outside the schema are ignored.

Example:
  roster update 42 '{"grade":"B"}'`,
	Args: cobra.ExactArgs(2),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	fields, err := decodeRecord(args[1])
	if err != nil {
		exitWithError(ExitError, "invalid JSON: %v", err)
	}

	s := openStore()

	if err := s.UpdateRecord(args[0], fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			exitWithError(ExitNotFound, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}
	saveStore(s)

	if humanOutput {
		fmt.Printf("Updated student '%s'\n", args[0])
	} else {
		outputJSON(StatusResponse{Status: "updated", ID: args[0]})
	}
	return nil
}
