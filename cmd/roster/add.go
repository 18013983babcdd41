package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roster-cli/roster/internal/store"
)

var addAutoID bool

// AddResult is the response for the add command.
type AddResult struct {
	Status string       `json:"status"`
	Record store.Record `json:"record"`
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().BoolVar(&addAutoID, "auto-id", false, "Generate a UUID when id is empty")
}

var addCmd = &cobra.Command{
	Use:   "add <json>",
	Short: "Add a student record",
	Long: `Add a record to the store.

Fields are given as a JSON object mapping column names to values.
Schema columns left out are stored empty; keys outside the schema are
ignored.

Examples:
  roster add '{"id":"42","name":"John Doe","age":"21","grade":"A"}'
  roster add --auto-id '{"name":"Jane Doe"}'`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	fields, err := decodeRecord(args[0])
	if err != nil {
		exitWithError(ExitError, "invalid JSON: %v", err)
	}

	s := openStore()

	if addAutoID && fields[store.IDColumn] == "" {
		fields[store.IDColumn] = uuid.NewString()
	}

	s.AddRecord(fields)
	saveStore(s)

	added := s.Records[len(s.Records)-1]
	if humanOutput {
		fmt.Printf("Added student '%s' to %s\n", added[store.IDColumn], s.Path)
	} else {
		outputJSON(AddResult{Status: "added", Record: added})
	}
	return nil
}
