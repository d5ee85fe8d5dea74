// Package cli provides shared output formatting for the command-line and
// TUI presentation layers.
package cli

import (
	"fmt"
	"time"

	"github.com/1cbyc/time-tracker/internal/report"
	"github.com/1cbyc/time-tracker/internal/task"
)

// FormatClock formats a duration as HH:MM:SS, the running-timer display.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// FormatDuration formats a duration as a human-readable string.
// Examples: "30m", "2h", "1h 30m".
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatRangeSpan formats a time range as "15:04 - 15:42", with
// "running..." in place of the end of an open range.
func FormatRangeSpan(r task.TimeRange) string {
	if r.Open() {
		return fmt.Sprintf("%s - running...", r.Start.Format("15:04"))
	}
	return fmt.Sprintf("%s - %s", r.Start.Format("15:04"), r.End.Format("15:04"))
}

// FormatItem formats one time item as a list line:
// "09:00 - 09:45  Fix login bug (45m)".
func FormatItem(item report.TimeItem, now time.Time) string {
	return fmt.Sprintf("%s  %s (%s)",
		FormatRangeSpan(item.Range),
		item.Task.Title,
		FormatDuration(item.Range.Duration(now)))
}

// FormatTaskTitle formats a title with its project for display:
// "Fix login bug [@Website]". Tasks without a project print bare.
func FormatTaskTitle(title, projectTitle string) string {
	if projectTitle == "" {
		return title
	}
	return fmt.Sprintf("%s [@%s]", title, projectTitle)
}
