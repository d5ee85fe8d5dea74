package taskstore

import (
	"fmt"
	"time"

	"github.com/1cbyc/time-tracker/internal/task"
)

// StartTimer starts the timer on the task with the given key. Any other
// running timer is stopped first (its open range closed at the same
// instant), so two timers never run at once. Starting the already-active
// task restarts it: the open range is closed and a fresh one opened.
func (s *Store) StartTimer(key string) error {
	t, err := s.Get(key)
	if err != nil {
		return err
	}

	now := s.Now()
	if prev := s.ActiveTask(); prev != nil {
		s.closeOpenRange(prev, now)
		prev.Active = false
	}

	t.Time = append(t.Time, task.TimeRange{Start: now})
	t.Active = true
	s.activeKey = t.Key
	s.commit()
	return nil
}

// StopTimer closes the active task's open range at the current instant
// and clears the active reference. Returns the stopped task.
func (s *Store) StopTimer() (*task.Task, error) {
	t := s.ActiveTask()
	if t == nil {
		return nil, ErrNoTimerRunning
	}
	s.closeOpenRange(t, s.Now())
	t.Active = false
	s.activeKey = ""
	s.commit()
	return t, nil
}

// RemoveTimeRange deletes the time range at index from the task's
// history. Deleting the open range of the active task is permitted and
// acts as an implicit stop with no end timestamp recorded: the active
// flag and the store's active reference are cleared.
func (s *Store) RemoveTimeRange(key string, index int) error {
	t, err := s.Get(key)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(t.Time) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(t.Time))
	}

	wasOpen := t.Time[index].Open()
	t.Time = append(t.Time[:index], t.Time[index+1:]...)
	if wasOpen && s.activeKey == key {
		t.Active = false
		s.activeKey = ""
	}
	s.commit()
	return nil
}

// closeOpenRange sets the end of the task's open range, if any. A clock
// running backwards is clamped so no range ever ends before it starts.
func (s *Store) closeOpenRange(t *task.Task, now time.Time) {
	i, ok := t.OpenRange()
	if !ok {
		return
	}
	end := now
	if end.Before(t.Time[i].Start) {
		end = t.Time[i].Start
	}
	t.Time[i].End = &end
}
