package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roster-cli/roster/internal/store"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <json>",
	Short: "Search student records",
	Long: `Search records by column values.

Criteria are given as a JSON object mapping column names to patterns.
A record matches when every criterion column's value contains the
pattern (case-sensitive substring match). An empty object matches
every record. Criteria columns outside the schema are reported as a
warning and match nothing.

Examples:
  roster search '{"name":"John"}'
  roster search '{"grade":"A","age":"21"}' --human`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

// warnUnknownCriteria reports criteria columns missing from the schema.
// Such criteria never match any record.
func warnUnknownCriteria(w io.Writer, s *store.Store, criteria map[string]string) {
	for col := range criteria {
		if !s.HasColumn(col) {
			fmt.Fprintf(w, "warning: unknown column %q in search criteria\n", col)
		}
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	criteria, err := decodeCriteria(args[0])
	if err != nil {
		exitWithError(ExitError, "invalid JSON: %v", err)
	}

	s := openStore()
	warnUnknownCriteria(os.Stderr, s, criteria)

	results := s.Search(criteria)

	if humanOutput {
		if len(results) == 0 {
			fmt.Println("No matching students found")
			return nil
		}
		renderTable(os.Stdout, s.Columns, recordRows(s.Columns, results))
		fmt.Printf("\nTotal: %d students\n", len(results))
		return nil
	}

	outputJSON(results)
	return nil
}
