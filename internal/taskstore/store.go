// Package taskstore owns the in-memory task collection and the timer
// state machine. All mutations validate first, apply in memory, notify
// subscribers synchronously, then request an asynchronous save through
// the persistence repository (optimistic local-first: a failed save never
// rolls back memory).
//
// The store is owned by a single goroutine; queries and mutations are
// not safe for concurrent use. The save queue inside the repository is
// the only asynchronous boundary, and it only ever sees deep-copied
// snapshots.
package taskstore

import (
	"fmt"
	"time"

	"github.com/1cbyc/time-tracker/internal/task"
	"github.com/1cbyc/time-tracker/internal/timeutil"
)

// Repository is the persistence collaborator consumed by the store.
type Repository interface {
	Restore(defaultValue []task.Task) []task.Task
	Save(data []task.Task)
}

// Store is the aggregate of all tasks plus the active-timer reference.
type Store struct {
	repo Repository

	tasks     []*task.Task
	byKey     map[string]*task.Task
	activeKey string

	subs []func()

	// Now is the clock used for timer transitions and range queries.
	// Tests replace it with a fixed clock.
	Now func() time.Time
}

// New restores the task collection from the repository and rebuilds the
// active-task reference from the per-task flags. Inconsistent flags from
// an interrupted save (an active task without an open range, or more
// than one active task) are repaired rather than propagated.
func New(repo Repository) *Store {
	s := &Store{
		repo:  repo,
		byKey: make(map[string]*task.Task),
		Now:   time.Now,
	}

	for _, t := range repo.Restore([]task.Task{}) {
		c := t.Clone()
		if c.Time == nil {
			c.Time = []task.TimeRange{}
		}
		s.tasks = append(s.tasks, c)
		s.byKey[c.Key] = c
	}

	for _, t := range s.tasks {
		if !t.Active {
			continue
		}
		if _, ok := t.OpenRange(); ok && s.activeKey == "" {
			s.activeKey = t.Key
		} else {
			t.Active = false
		}
	}
	return s
}

// Subscribe registers fn to be called synchronously after every
// in-memory mutation, before the asynchronous save is requested.
func (s *Store) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

// Tasks returns the task collection in insertion order. Callers must
// treat the returned tasks as read-only.
func (s *Store) Tasks() []*task.Task {
	return s.tasks
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns the task with the given key.
func (s *Store) Get(key string) (*task.Task, error) {
	t, ok := s.byKey[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return t, nil
}

// ActiveTask returns the task currently accumulating time, or nil.
func (s *Store) ActiveTask() *task.Task {
	if s.activeKey == "" {
		return nil
	}
	return s.byKey[s.activeKey]
}

// Add inserts a new task. A duplicate key is rejected with
// ErrDuplicateKey, invalid fields with a *task.ValidationError.
func (s *Store) Add(t *task.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, ok := s.byKey[t.Key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, t.Key)
	}
	if t.Time == nil {
		t.Time = []task.TimeRange{}
	}
	s.tasks = append(s.tasks, t)
	s.byKey[t.Key] = t
	s.commit()
	return nil
}

// Patch is a partial task update. Nil fields are left unchanged.
type Patch struct {
	Title     *string
	ProjectID *string
	Details   *string
	Checked   *bool
	Expanded  *bool
}

// Update applies a partial field update to the task with the given key.
// Validation failures leave the task untouched.
func (s *Store) Update(key string, p Patch) error {
	t, err := s.Get(key)
	if err != nil {
		return err
	}
	if p.Title != nil {
		if errs := task.ValidateTitle(*p.Title); errs != nil {
			return &task.ValidationError{Errors: errs}
		}
	}

	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.ProjectID != nil {
		t.ProjectID = *p.ProjectID
	}
	if p.Details != nil {
		t.Details = *p.Details
	}
	if p.Checked != nil {
		t.Checked = *p.Checked
	}
	if p.Expanded != nil {
		t.Expanded = *p.Expanded
	}
	s.commit()
	return nil
}

// Remove deletes the task and all its time ranges. Removing the active
// task implicitly stops the timer first.
func (s *Store) Remove(key string) error {
	t, err := s.Get(key)
	if err != nil {
		return err
	}
	if s.activeKey == key {
		s.closeOpenRange(t, s.Now())
		t.Active = false
		s.activeKey = ""
	}
	delete(s.byKey, key)
	for i, cur := range s.tasks {
		if cur.Key == key {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	s.commit()
	return nil
}

// TasksByDate returns tasks with at least one time range intersecting
// the 24-hour window containing date.
func (s *Store) TasksByDate(date time.Time) []*task.Task {
	start, end := timeutil.DayWindow(date)
	return s.TasksInRange(start, end)
}

// TasksInRange returns tasks with at least one time range intersecting
// the half-open window [from, to). Open ranges are evaluated against the
// store clock.
func (s *Store) TasksInRange(from, to time.Time) []*task.Task {
	now := s.Now()
	var out []*task.Task
	for _, t := range s.tasks {
		for _, r := range t.Time {
			if timeutil.Intersects(r.Start, r.EndOr(now), from, to) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// commit notifies subscribers and requests a save of a deep-copied
// snapshot. The snapshot is taken on the caller's goroutine, so later
// mutations cannot race the serialized write.
func (s *Store) commit() {
	for _, fn := range s.subs {
		fn()
	}
	snapshot := make([]task.Task, len(s.tasks))
	for i, t := range s.tasks {
		snapshot[i] = *t.Clone()
	}
	s.repo.Save(snapshot)
}
