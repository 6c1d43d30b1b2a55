package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arprax/algos/profiler"
)

// listEntry is the JSON shape of one catalog row.
type listEntry struct {
	Algorithm   string `json:"algorithm"`
	Kind        string `json:"kind"`
	Input       string `json:"input"`
	Expected    string `json:"expected"`
	Description string `json:"description"`
}

// listRow is one catalog row, whichever catalog backs the subject.
type listRow struct {
	name, kind, input, desc string
	expected                profiler.Class
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the profilable algorithms",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// catalogRows merges slice and graph subjects, name-sorted.
func catalogRows() []listRow {
	rows := make([]listRow, 0, len(catalog)+len(graphCatalog))
	for _, s := range catalog {
		rows = append(rows, listRow{name: s.name, kind: s.kind, input: string(s.shape), desc: s.desc, expected: s.expected})
	}
	for _, s := range graphCatalog {
		rows = append(rows, listRow{name: s.name, kind: s.kind, input: string(s.shape), desc: s.desc, expected: s.expected})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })
	return rows
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	rows := catalogRows()

	if viper.GetBool("json") {
		entries := make([]listEntry, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, listEntry{
				Algorithm:   row.name,
				Kind:        row.kind,
				Input:       row.input,
				Expected:    row.expected.String(),
				Description: row.desc,
			})
		}
		return writeJSON(out, entries)
	}

	fmt.Fprintln(out, styles.Title.Render("arprof · catalog"))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%-14s   %-7s   %-14s   %-12s   %s\n", "ALGORITHM", "KIND", "INPUT", "EXPECTED", "DESCRIPTION")
	for _, row := range rows {
		// Pad before styling so ANSI escapes stay out of the width math.
		expected := classStyle(row.expected).Render(fmt.Sprintf("%-12s", row.expected))
		fmt.Fprintf(out, "%-14s   %-7s   %-14s   %s   %s\n", row.name, row.kind, row.input, expected, row.desc)
	}
	return nil
}
