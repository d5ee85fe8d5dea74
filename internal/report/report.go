// Package report computes derived time from task histories: duration
// aggregation over dates and ranges, and the flattened time-item listing.
// Every function is pure and takes the evaluation instant explicitly, so
// an open range queried against "now" yields a continuously increasing
// value without any ticking mutation.
package report

import (
	"sort"
	"time"

	"github.com/1cbyc/time-tracker/internal/task"
	"github.com/1cbyc/time-tracker/internal/timeutil"
)

// TotalDuration sums the elapsed time of every range of the task, with
// an open range evaluated against now.
func TotalDuration(t *task.Task, now time.Time) time.Duration {
	var total time.Duration
	for _, r := range t.Time {
		total += r.Duration(now)
	}
	return total
}

// DurationForDate sums, across every range of the task, the overlap
// between [start, end ?? now) and the 24-hour window containing date. A
// range spanning midnight contributes only its portion inside the
// window; the remainder is attributed to the neighboring day with no
// loss or double-count.
func DurationForDate(t *task.Task, date, now time.Time) time.Duration {
	start, end := timeutil.DayWindow(date)
	return DurationInRange(t, start, end, now)
}

// DurationInRange sums the task's overlap with the half-open window
// [from, to). Negative contributions are clamped to zero.
func DurationInRange(t *task.Task, from, to, now time.Time) time.Duration {
	var total time.Duration
	for _, r := range t.Time {
		total += timeutil.Overlap(r.Start, r.EndOr(now), from, to)
	}
	return total
}

// TimeItem pairs a time range with its owning task and its index within
// the task's history, so callers can address "remove this entry".
type TimeItem struct {
	Task  *task.Task
	Range task.TimeRange
	Index int
}

// ItemsForDate flattens the tasks' ranges intersecting the 24-hour
// window containing date into a chronological listing.
func ItemsForDate(tasks []*task.Task, date, now time.Time) []TimeItem {
	start, end := timeutil.DayWindow(date)
	return ItemsInRange(tasks, start, end, now)
}

// ItemsInRange emits one item per range intersecting [from, to). Ranges
// are not split at window edges: a range that started before the window
// appears with its original start time even though the duration queries
// only count the in-window portion. Output is ordered by range start
// ascending, stable across equal starts.
func ItemsInRange(tasks []*task.Task, from, to, now time.Time) []TimeItem {
	var items []TimeItem
	for _, t := range tasks {
		for i, r := range t.Time {
			if timeutil.Intersects(r.Start, r.EndOr(now), from, to) {
				items = append(items, TimeItem{Task: t, Range: r, Index: i})
			}
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Range.Start.Before(items[j].Range.Start)
	})
	return items
}
