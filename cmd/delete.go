package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/1cbyc/time-tracker/internal/cli"
	"github.com/1cbyc/time-tracker/internal/report"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <n>",
	Short: "Delete a time entry from today's list",
	Long: `Delete time entry n, as numbered by the default listing. Deleting the
running entry stops the timer without recording an end time.

Examples:
  time-tracker delete 3`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deleteEntry(args[0])
	},
}

func deleteEntry(arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid entry number %q\n", arg)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: List today's entries with 'time-tracker' to see numbers")
		deps.Exit(1)
		return
	}

	e, err := openEnv()
	if err != nil {
		failEnv(err)
		return
	}
	defer e.flush()

	now := e.store.Now()
	items := report.ItemsForDate(e.store.Tasks(), now, now)
	if n > len(items) {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Entry %d is out of range\n", n)
		if len(items) == 0 {
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: There are no entries today")
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Valid range: 1-%d\n", len(items))
		}
		deps.Exit(1)
		return
	}

	item := items[n-1]
	wasRunning := item.Range.Open()
	if err := e.store.RemoveTimeRange(item.Task.Key, item.Index); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to delete the entry")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Deleted: %s  %s\n", cli.FormatRangeSpan(item.Range), item.Task.Title)
	if wasRunning {
		_, _ = fmt.Fprintln(deps.Stdout, "(The running timer was stopped)")
	}
}
