package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roster-cli/roster/internal/store"
)

var listColumns string

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listColumns, "columns", "", "Comma-separated columns to show")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List student records",
	Long: `List every record in the store, in insertion order.

Examples:
  roster list
  roster list --human
  roster list --columns id,name --human`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	s := openStore()

	cols := s.Columns
	if listColumns != "" {
		cols = splitColumns(listColumns)
	}

	rows, err := s.SelectColumns(cols)
	if err != nil {
		if errors.Is(err, store.ErrUnknownColumn) {
			exitWithError(ExitNotFound, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		if len(rows) == 0 {
			fmt.Println("No students found")
			return nil
		}
		renderTable(os.Stdout, cols, rows)
		fmt.Printf("\nTotal: %d students\n", len(rows))
		return nil
	}

	projected := make([]store.Record, 0, len(rows))
	for _, row := range rows {
		rec := make(store.Record, len(cols))
		for i, col := range cols {
			rec[col] = row[i]
		}
		projected = append(projected, rec)
	}
	outputJSON(projected)
	return nil
}
