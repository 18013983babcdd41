package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roster-cli/roster/internal/config"
	"github.com/roster-cli/roster/internal/store"
)

// menu is the interactive loop. It owns a store bound to one file at a
// time; every mutating choice is persisted before the next prompt.
type menu struct {
	in    *bufio.Scanner
	out   io.Writer
	store *store.Store
	eof   bool
}

func runMenu(cmd *cobra.Command, args []string) error {
	m := &menu{in: bufio.NewScanner(os.Stdin), out: os.Stdout}
	return m.run()
}

func (m *menu) run() error {
	for {
		path := m.prompt("Enter the file path (CSV or JSON) or press Enter for default: ")
		if m.eof {
			return nil
		}
		if err := m.bindFile(path); err != nil {
			fmt.Fprintf(m.out, "Error: %v\n", err)
			continue
		}
		break
	}

	for {
		m.printMenu()
		choice := m.prompt("Enter your choice (1-10): ")
		if m.eof {
			return nil
		}

		switch choice {
		case "1":
			m.addStudent()
		case "2":
			m.viewAll()
		case "3":
			m.viewColumns()
		case "4":
			m.updateStudent()
		case "5":
			m.deleteStudent()
		case "6":
			m.addColumn()
		case "7":
			m.removeColumn()
		case "8":
			m.changeFile()
		case "9":
			m.searchStudents()
		case "10":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice! Please try again.")
		}
	}
}

func (m *menu) printMenu() {
	fmt.Fprint(m.out, `
Student Management System
1. Add Student
2. View All Students
3. View Specific Columns
4. Update Student
5. Delete Student
6. Add Column
7. Remove Column
8. Change File
9. Search Students
10. Exit
`)
}

// prompt prints a label and reads one trimmed line. Returns "" and
// flags eof when input is exhausted.
func (m *menu) prompt(label string) string {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		m.eof = true
		return ""
	}
	return strings.TrimSpace(m.in.Text())
}

// bindFile opens path (default resolution when empty) and swaps the
// menu's store to it.
func (m *menu) bindFile(path string) error {
	if path == "" {
		path = resolveFile()
	} else {
		path = config.ExpandPath(path)
	}

	format, err := store.FormatForPath(path)
	if err != nil {
		return err
	}

	s, err := store.Open(path, format)
	if err != nil {
		return err
	}
	m.store = s
	return nil
}

// persist saves the store and reports failure to the operator. The
// current operation is aborted; the menu loop continues.
func (m *menu) persist() bool {
	if err := m.store.Save(); err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return false
	}
	return true
}

func (m *menu) addStudent() {
	fields := make(store.Record, len(m.store.Columns))
	for _, col := range m.store.Columns {
		fields[col] = m.prompt(fmt.Sprintf("Enter student %s: ", col))
	}

	m.store.AddRecord(fields)
	if m.persist() {
		fmt.Fprintln(m.out, "Student added successfully!")
	}
}

func (m *menu) viewAll() {
	if len(m.store.Records) == 0 {
		fmt.Fprintln(m.out, "No students found!")
		return
	}
	fmt.Fprintln(m.out, "\nStudent Records:")
	renderTable(m.out, m.store.Columns, recordRows(m.store.Columns, m.store.Records))
}

func (m *menu) viewColumns() {
	fmt.Fprintf(m.out, "Available columns: %s\n", strings.Join(m.store.Columns, ", "))
	cols := splitColumns(m.prompt("Enter column names (comma-separated): "))
	if len(cols) == 0 {
		fmt.Fprintln(m.out, "No columns selected!")
		return
	}

	rows, err := m.store.SelectColumns(cols)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	if len(rows) == 0 {
		fmt.Fprintln(m.out, "No students found!")
		return
	}
	fmt.Fprintln(m.out, "\nSelected Student Records:")
	renderTable(m.out, cols, rows)
}

func (m *menu) updateStudent() {
	id := m.prompt("Enter student ID to update: ")

	fields := make(store.Record)
	for _, col := range m.store.Columns {
		if v := m.prompt(fmt.Sprintf("Enter new %s (press enter to skip): ", col)); v != "" {
			fields[col] = v
		}
	}

	if err := m.store.UpdateRecord(id, fields); err != nil {
		fmt.Fprintln(m.out, "Student not found!")
		return
	}
	if m.persist() {
		fmt.Fprintln(m.out, "Student updated successfully!")
	}
}

func (m *menu) deleteStudent() {
	id := m.prompt("Enter student ID to delete: ")

	if err := m.store.DeleteRecord(id); err != nil {
		fmt.Fprintln(m.out, "Student not found!")
		return
	}
	if m.persist() {
		fmt.Fprintln(m.out, "Student deleted successfully!")
	}
}

func (m *menu) addColumn() {
	name := strings.ToLower(m.prompt("Enter new column name: "))

	if err := m.store.AddColumn(name, ""); err != nil {
		if errors.Is(err, store.ErrDuplicateColumn) {
			fmt.Fprintln(m.out, "Column already exists!")
		} else {
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
		return
	}
	if m.persist() {
		fmt.Fprintf(m.out, "Column '%s' added successfully!\n", name)
	}
}

func (m *menu) removeColumn() {
	fmt.Fprintf(m.out, "Available columns: %s\n", strings.Join(m.store.Columns, ", "))
	name := m.prompt("Enter column name to remove: ")

	if err := m.store.RemoveColumn(name); err != nil {
		switch {
		case errors.Is(err, store.ErrProtectedColumn):
			fmt.Fprintln(m.out, "Cannot remove ID column!")
		case errors.Is(err, store.ErrUnknownColumn):
			fmt.Fprintln(m.out, "Column does not exist!")
		default:
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
		return
	}
	if m.persist() {
		fmt.Fprintf(m.out, "Column '%s' removed successfully!\n", name)
	}
}

func (m *menu) changeFile() {
	path := m.prompt("Enter new file path (CSV or JSON): ")
	if err := m.bindFile(path); err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "File changed successfully!")
}

func (m *menu) searchStudents() {
	criteria := make(map[string]string)
	fmt.Fprintln(m.out, "\nEnter search criteria (press Enter to skip a field):")
	for _, col := range m.store.Columns {
		if v := m.prompt(fmt.Sprintf("Search by %s: ", col)); v != "" {
			criteria[col] = v
		}
	}
	if len(criteria) == 0 {
		fmt.Fprintln(m.out, "No search criteria provided!")
		return
	}

	results := m.store.Search(criteria)
	if len(results) == 0 {
		fmt.Fprintln(m.out, "No matching students found!")
		return
	}
	fmt.Fprintln(m.out, "\nSearch Results:")
	renderTable(m.out, m.store.Columns, recordRows(m.store.Columns, results))
}
