package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roster-cli/roster/internal/store"
)

var columnDefault string

// ColumnResult is the response for column add/remove commands.
type ColumnResult struct {
	Status  string   `json:"status"`
	Column  string   `json:"column"`
	Columns []string `json:"columns"`
}

func init() {
	rootCmd.AddCommand(columnCmd)
	columnCmd.AddCommand(columnAddCmd)
	columnCmd.AddCommand(columnRemoveCmd)
	columnCmd.AddCommand(columnListCmd)
	columnAddCmd.Flags().StringVar(&columnDefault, "default", "", "Value set on existing records")
}

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Manage schema columns",
}

var columnAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a column to the schema",
	Long: `Append a column to the schema and set a default value on every
existing record. Column names are normalized to lower case.

Examples:
  roster column add email
  roster column add gpa --default "0.0"`,
	Args: cobra.ExactArgs(1),
	RunE: runColumnAdd,
}

func runColumnAdd(cmd *cobra.Command, args []string) error {
	name := strings.ToLower(strings.TrimSpace(args[0]))
	s := openStore()

	if err := s.AddColumn(name, columnDefault); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	saveStore(s)

	if humanOutput {
		fmt.Printf("Added column '%s'\n", name)
	} else {
		outputJSON(ColumnResult{Status: "added", Column: name, Columns: s.Columns})
	}
	return nil
}

var columnRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a column from the schema",
	Long: `Remove a column from the schema and delete it from every record.
The id column cannot be removed.

Example:
  roster column remove email`,
	Args: cobra.ExactArgs(1),
	RunE: runColumnRemove,
}

func runColumnRemove(cmd *cobra.Command, args []string) error {
	s := openStore()

	if err := s.RemoveColumn(args[0]); err != nil {
		if errors.Is(err, store.ErrUnknownColumn) {
			exitWithError(ExitNotFound, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}
	saveStore(s)

	if humanOutput {
		fmt.Printf("Removed column '%s'\n", args[0])
	} else {
		outputJSON(ColumnResult{Status: "removed", Column: args[0], Columns: s.Columns})
	}
	return nil
}

var columnListCmd = &cobra.Command{
	Use:   "list",
	Short: "List schema columns in order",
	Args:  cobra.NoArgs,
	RunE:  runColumnList,
}

func runColumnList(cmd *cobra.Command, args []string) error {
	s := openStore()

	if humanOutput {
		fmt.Println(strings.Join(s.Columns, ", "))
	} else {
		outputJSON(s.Columns)
	}
	return nil
}
