// Package timeutil provides day/week/month windows and interval overlap
// helpers for duration aggregation. Windows are half-open: [start, end).
package timeutil

import "time"

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns midnight of the following day, the exclusive upper
// bound of the day's window.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// DayWindow returns the half-open 24-hour window containing t.
func DayWindow(t time.Time) (start, end time.Time) {
	return StartOfDay(t), EndOfDay(t)
}

// StartOfWeek returns midnight of the first day of the week containing t.
// weekStart is typically time.Monday (ISO) or time.Sunday.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	diff := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return StartOfDay(t).AddDate(0, 0, -diff)
}

// WeekWindow returns the half-open seven-day window containing t.
func WeekWindow(t time.Time, weekStart time.Weekday) (start, end time.Time) {
	s := StartOfWeek(t, weekStart)
	return s, s.AddDate(0, 0, 7)
}

// StartOfMonth returns midnight of the first day of the month containing t.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthWindow returns the half-open window of the month containing t.
// Using the first day of the next month as the bound handles month
// lengths of 28-31 days automatically.
func MonthWindow(t time.Time) (start, end time.Time) {
	s := StartOfMonth(t)
	return s, s.AddDate(0, 1, 0)
}

// Intersects reports whether the interval [aStart, aEnd) overlaps the
// interval [bStart, bEnd).
func Intersects(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Overlap returns the duration of the intersection of [aStart, aEnd) and
// [bStart, bEnd), clamped to zero when the intervals are disjoint or
// either interval is inverted.
func Overlap(aStart, aEnd, bStart, bEnd time.Time) time.Duration {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	if !start.Before(end) {
		return 0
	}
	return end.Sub(start)
}
