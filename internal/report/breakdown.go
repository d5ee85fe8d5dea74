package report

import (
	"sort"
	"time"

	"github.com/1cbyc/time-tracker/internal/task"
)

// TaskTotal is the aggregated time of a single task within a window.
type TaskTotal struct {
	Task  *task.Task
	Total time.Duration
}

// ProjectTotal is the aggregated time of a project within a window.
// Tasks without a project group under an empty ProjectID.
type ProjectTotal struct {
	ProjectID string
	Total     time.Duration
	TaskCount int
}

// TaskTotals returns per-task totals for the window, omitting tasks with
// zero in-window time, sorted by total descending.
func TaskTotals(tasks []*task.Task, from, to, now time.Time) []TaskTotal {
	var totals []TaskTotal
	for _, t := range tasks {
		if d := DurationInRange(t, from, to, now); d > 0 {
			totals = append(totals, TaskTotal{Task: t, Total: d})
		}
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})
	return totals
}

// ProjectTotals groups per-task totals by project, sorted by total
// descending.
func ProjectTotals(tasks []*task.Task, from, to, now time.Time) []ProjectTotal {
	byProject := make(map[string]*ProjectTotal)
	var order []string
	for _, t := range tasks {
		d := DurationInRange(t, from, to, now)
		if d == 0 {
			continue
		}
		pt, ok := byProject[t.ProjectID]
		if !ok {
			pt = &ProjectTotal{ProjectID: t.ProjectID}
			byProject[t.ProjectID] = pt
			order = append(order, t.ProjectID)
		}
		pt.Total += d
		pt.TaskCount++
	}

	totals := make([]ProjectTotal, 0, len(order))
	for _, id := range order {
		totals = append(totals, *byProject[id])
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})
	return totals
}
