// Package task defines the task and time-range model shared by the store,
// the aggregation queries, and the presentation layers.
package task

import (
	"time"

	"github.com/google/uuid"
)

// TimeRange is one contiguous interval of work on a task.
// A nil End means the range is still running.
type TimeRange struct {
	Start       time.Time  `json:"start"`
	End         *time.Time `json:"end,omitempty"`
	Description string     `json:"description,omitempty"`
}

// Open reports whether the range is still running.
func (r TimeRange) Open() bool {
	return r.End == nil
}

// EndOr returns the range's end, or now for an open range.
func (r TimeRange) EndOr(now time.Time) time.Time {
	if r.End != nil {
		return *r.End
	}
	return now
}

// Duration returns the elapsed time of the range, evaluating an open range
// against now. Negative results (clock skew) are clamped to zero.
func (r TimeRange) Duration(now time.Time) time.Duration {
	d := r.EndOr(now).Sub(r.Start)
	if d < 0 {
		return 0
	}
	return d
}

// Task is a unit of trackable work with a history of time ranges.
// The outline fields (Checked, Expanded, Details, Children, Parent,
// DatesInProgress) are not part of the timer contract but round-trip
// through persistence unchanged.
type Task struct {
	Key       string      `json:"key"`
	Title     string      `json:"title"`
	ProjectID string      `json:"projectId,omitempty"`
	Time      []TimeRange `json:"time"`
	Active    bool        `json:"active"`

	Checked         bool     `json:"checked"`
	Expanded        bool     `json:"expanded,omitempty"`
	Details         string   `json:"details,omitempty"`
	Children        []string `json:"children,omitempty"`
	Parent          string   `json:"parent,omitempty"`
	DatesInProgress []string `json:"datesInProgress,omitempty"`
}

// New creates a task with a fresh key and an empty time-range history.
func New(title, projectID string) *Task {
	return &Task{
		Key:       uuid.NewString(),
		Title:     title,
		ProjectID: projectID,
		Time:      []TimeRange{},
		Expanded:  true,
	}
}

// OpenRange returns the index of the task's open range, if any.
// By invariant an active task has exactly one, and it is the last element.
func (t *Task) OpenRange() (int, bool) {
	for i := len(t.Time) - 1; i >= 0; i-- {
		if t.Time[i].Open() {
			return i, true
		}
	}
	return -1, false
}

// Clone returns a deep copy of the task, suitable for persistence
// snapshots that outlive the current mutation.
func (t *Task) Clone() *Task {
	c := *t
	c.Time = make([]TimeRange, len(t.Time))
	for i, r := range t.Time {
		c.Time[i] = r
		if r.End != nil {
			end := *r.End
			c.Time[i].End = &end
		}
	}
	if t.Children != nil {
		c.Children = append([]string(nil), t.Children...)
	}
	if t.DatesInProgress != nil {
		c.DatesInProgress = append([]string(nil), t.DatesInProgress...)
	}
	return &c
}
