package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrled/suns/textval/internal/model"
	"github.com/mrled/suns/textval/internal/presenter"
)

type historyFlags struct {
	Operations []string
	IDs        []string
	Failures   bool
	Format     string
	SortBy     string
}

func newHistoryCmd(a *app) *cobra.Command {
	var flags historyFlags

	cmd := &cobra.Command{
		Use:     "history",
		Short:   "Show recorded checks",
		GroupID: "history",
		Long: `Display recorded checks, optionally filtered by operation or failure.

History is only kept when a store is configured with --file,
--dynamodb-table, or the config file.

Examples:
  # Show all records
  textval history --file ./history.json

  # Show failed divisions
  textval history --file ./history.json --operation divide --failures

  # Show records in compact format, grouped by operation
  textval history --file ./history.json --format compact --sort operation

  # Show or delete a single record
  textval history show --file ./history.json <id>
  textval history delete --file ./history.json <id>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sortBy, ok := model.ParseSortBy(strings.ToLower(flags.SortBy))
			if !ok {
				return ExitWithCode(ExitInvalidArgument, fmt.Errorf("invalid sort %q, must be one of: %s", flags.SortBy, sortNames()))
			}

			filter := model.RecordFilter{OnlyFailures: flags.Failures, IDs: flags.IDs}
			for _, name := range flags.Operations {
				op, ok := model.ParseOperation(strings.ToLower(name))
				if !ok {
					return ExitWithCode(ExitInvalidArgument, fmt.Errorf("invalid operation %q, must be one of: %s", name, operationNames()))
				}
				filter.Operations = append(filter.Operations, op)
			}

			records, err := a.service.History(cmd.Context(), filter, string(sortBy))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No records found matching the specified criteria.")
				return nil
			}

			switch flags.Format {
			case "compact":
				displayRecordsCompact(out, records)
			default: // "detailed" or empty
				displayRecordsDetailed(out, records)
			}

			fmt.Fprintf(out, "\nTotal records: %d\n", len(records))
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&flags.Operations, "operation", "o", nil, "Filter by operation ("+operationNames()+"); repeatable")
	cmd.Flags().StringSliceVar(&flags.IDs, "id", nil, "Filter by record ID; repeatable")
	cmd.Flags().BoolVar(&flags.Failures, "failures", false, "Show only checks that returned an error")
	cmd.Flags().StringVar(&flags.Format, "format", "detailed", "Output format: detailed or compact")
	cmd.Flags().StringVar(&flags.SortBy, "sort", "", "Sort by: "+sortNames()+" (default newest first)")

	cmd.AddCommand(newHistoryShowCmd(a))
	cmd.AddCommand(newHistoryDeleteCmd(a))

	return cmd
}

func newHistoryShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recorded check",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := a.service.Record(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			displayRecord(cmd.OutOrStdout(), record)
			return nil
		},
	}
}

func newHistoryDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one recorded check",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.service.DeleteRecord(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted record %s\n", args[0])
			return nil
		},
	}
}

// displayRecordsDetailed displays one block per record
func displayRecordsDetailed(w io.Writer, records []*model.CheckRecord) {
	fmt.Fprintln(w, "=== Check Records ===")

	for _, record := range records {
		fmt.Fprintln(w)
		displayRecord(w, record)
	}
}

func displayRecord(w io.Writer, record *model.CheckRecord) {
	fmt.Fprintf(w, "ID: %s\n", record.ID)
	fmt.Fprintf(w, "Operation: %s\n", record.Operation)
	fmt.Fprintf(w, "Input: %s\n", strings.Join(quoteAll(record.Input), " "))
	if record.Failed() {
		fmt.Fprintf(w, "Error: %s\n", record.Error)
	} else {
		fmt.Fprintf(w, "Result: %s\n", record.Result)
	}
	fmt.Fprintf(w, "Checked: %s (rev: %d)\n", presenter.FormatTimeSince(record.CheckTime), record.Rev)
}

// displayRecordsCompact displays records as a table
func displayRecordsCompact(w io.Writer, records []*model.CheckRecord) {
	fmt.Fprintln(w, "=== Check Records (Compact) ===")
	fmt.Fprintf(w, "%-38s %-12s %-30s %-30s %s\n", "ID", "Operation", "Input", "Result", "Checked")
	fmt.Fprintln(w, strings.Repeat("-", 125))

	for _, record := range records {
		result := record.Result
		if record.Failed() {
			result = "error: " + record.Error
		}

		fmt.Fprintf(w, "%-38s %-12s %-30s %-30s %s\n",
			record.ID,
			record.Operation,
			truncateString(strings.Join(quoteAll(record.Input), " "), 28),
			truncateString(result, 28),
			presenter.FormatTimeSinceCompact(record.CheckTime))
	}
}

// truncateString truncates a string to maxLen runes with an ellipsis
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

func quoteAll(values []string) []string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return quoted
}

// operationNames returns a comma-separated list of operation names
func operationNames() string {
	names := make([]string, 0, len(model.Operations))
	for _, op := range model.Operations {
		names = append(names, string(op))
	}
	return strings.Join(names, ", ")
}

// sortNames returns a comma-separated list of sort keys
func sortNames() string {
	names := make([]string, 0, len(model.SortByValues))
	for _, v := range model.SortByValues {
		names = append(names, string(v))
	}
	return strings.Join(names, ", ")
}
